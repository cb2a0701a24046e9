package store

import (
	"slices"
	"sync"

	"github.com/localnerve/gestorinmo/internal/models"
)

// Collection names one of the synchronized entity collections
type Collection string

const (
	Properties Collection = "properties"
	Tenants    Collection = "tenants"
	Expenses   Collection = "expenses"
)

// Collections lists every synchronized collection
var Collections = []Collection{Properties, Tenants, Expenses}

// Snapshot is the full current contents of all collections.
// Slices are owned by the receiver and may be modified freely.
type Snapshot struct {
	Properties []models.Property
	Tenants    []models.Tenant
	Expenses   []models.Expense
}

// Listener receives the snapshot produced by a publish and the collection that changed.
// Listeners must not publish.
type Listener func(snap Snapshot, changed Collection)

// Store holds the latest published snapshot of each collection.
// Every publish replaces a collection wholesale, there are no partial updates.
type Store struct {
	mu       sync.RWMutex
	snap     Snapshot
	versions map[Collection]uint64

	// notifyMu serializes listener calls so they observe publishes in order
	notifyMu  sync.Mutex
	listeners map[uint64]Listener
	nextID    uint64
}

// New creates an empty store
func New() *Store {
	return &Store{
		versions:  make(map[Collection]uint64),
		listeners: make(map[uint64]Listener),
	}
}

// PublishProperties replaces the property collection
func (s *Store) PublishProperties(records []models.Property) {
	s.publish(Properties, func(snap *Snapshot) { snap.Properties = slices.Clone(records) })
}

// PublishTenants replaces the tenant collection
func (s *Store) PublishTenants(records []models.Tenant) {
	s.publish(Tenants, func(snap *Snapshot) { snap.Tenants = slices.Clone(records) })
}

// PublishExpenses replaces the expense collection
func (s *Store) PublishExpenses(records []models.Expense) {
	s.publish(Expenses, func(snap *Snapshot) { snap.Expenses = slices.Clone(records) })
}

func (s *Store) publish(changed Collection, apply func(*Snapshot)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	apply(&s.snap)
	s.versions[changed]++
	snap := s.snap.Clone()
	s.mu.Unlock()

	for _, id := range s.listenerIDs() {
		if fn, ok := s.listener(id); ok {
			fn(snap.Clone(), changed)
		}
	}
}

// Snapshot returns a copy of the current contents
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Version returns how many times a collection has been published
func (s *Store) Version(c Collection) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[c]
}

// Reset empties every collection and notifies listeners once per collection
func (s *Store) Reset() {
	s.PublishProperties(nil)
	s.PublishTenants(nil)
	s.PublishExpenses(nil)
}

// Subscribe registers a listener for every subsequent publish.
// The returned function removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) listenerIDs() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) listener(id uint64) (Listener, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.listeners[id]
	return fn, ok
}

// Clone copies the collection slices of a snapshot
func (snap Snapshot) Clone() Snapshot {
	return Snapshot{
		Properties: slices.Clone(snap.Properties),
		Tenants:    slices.Clone(snap.Tenants),
		Expenses:   slices.Clone(snap.Expenses),
	}
}
