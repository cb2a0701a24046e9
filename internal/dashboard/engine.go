// engine.go
//
// Property management dashboard service for small landlords
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of gestorinmo.
// gestorinmo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// gestorinmo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with gestorinmo.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package dashboard

import (
	"sync"
	"time"

	"github.com/localnerve/gestorinmo/internal/store"
)

// View is everything the dashboard shows, derived from one snapshot
type View struct {
	Metrics      Metrics     `json:"metrics"`
	Alerts       []Alert     `json:"alerts"`
	RentByTenant []RentPoint `json:"rentByTenant"`
	ComputedAt   time.Time   `json:"computedAt"`
}

// Compute derives a full view from a snapshot
func Compute(snap store.Snapshot, now time.Time) View {
	return View{
		Metrics:      ComputeMetrics(snap, now),
		Alerts:       Alerts(snap.Tenants, now),
		RentByTenant: RentByTenant(snap.Tenants),
		ComputedAt:   now,
	}
}

// Observer is called with every view recomputed after a publish
type Observer func(View)

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now as the engine's notion of the current instant
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// Engine keeps the dashboard view current with the store.
// It recomputes on every publish, and again on read once the calendar day has moved on.
type Engine struct {
	clock       func() time.Time
	unsubscribe func()

	mu        sync.RWMutex
	snap      store.Snapshot
	view      View
	observers []Observer
}

// NewEngine computes the initial view from the store and subscribes to its publishes
func NewEngine(s *store.Store, opts ...Option) *Engine {
	e := &Engine{clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	e.snap = s.Snapshot()
	e.view = Compute(e.snap, e.clock())
	e.unsubscribe = s.Subscribe(e.onPublish)
	return e
}

func (e *Engine) onPublish(snap store.Snapshot, _ store.Collection) {
	view := Compute(snap, e.clock())

	e.mu.Lock()
	e.snap = snap
	e.view = view
	observers := append([]Observer(nil), e.observers...)
	e.mu.Unlock()

	for _, fn := range observers {
		fn(view)
	}
}

// View returns the latest view
func (e *Engine) View() View {
	now := e.clock()

	e.mu.RLock()
	view := e.view
	e.mu.RUnlock()

	if sameDay(view.ComputedAt, now) {
		return view
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !sameDay(e.view.ComputedAt, now) {
		e.view = Compute(e.snap, now)
	}
	return e.view
}

// Snapshot returns the snapshot the current view was computed from
func (e *Engine) Snapshot() store.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap.Clone()
}

// Financials rolls up one property from the latest snapshot.
// The boolean is false when the property is not in the snapshot.
func (e *Engine) Financials(propertyID string) (PropertyFinancials, bool) {
	snap := e.Snapshot()
	for _, p := range snap.Properties {
		if p.ID == propertyID {
			return ComputePropertyFinancials(propertyID, snap.Tenants, snap.Expenses), true
		}
	}
	return PropertyFinancials{}, false
}

// Observe registers fn for every view recomputed after a publish.
// fn is called right away with the current view.
func (e *Engine) Observe(fn Observer) {
	e.mu.Lock()
	e.observers = append(e.observers, fn)
	view := e.view
	e.mu.Unlock()

	fn(view)
}

// Close stops following the store
func (e *Engine) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
