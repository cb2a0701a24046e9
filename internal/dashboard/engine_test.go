package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func TestEngineRecomputesOnPublish(t *testing.T) {
	clock := &fakeClock{now: day("2024-05-01")}
	s := store.New()
	e := NewEngine(s, WithClock(clock.Now))
	defer e.Close()

	assert.Equal(t, Metrics{}, e.View().Metrics)

	s.PublishProperties([]models.Property{{ID: "p1", Status: models.PropertyStatusRented}, {ID: "p2"}})
	s.PublishTenants([]models.Tenant{{ID: "t1", Name: "Juan Pérez", MonthlyRent: 1000, ContractEnd: "2024-06-15", PropertyID: strPtr("p1")}})
	s.PublishExpenses([]models.Expense{{ID: "e1", PropertyID: "p1", Amount: 250, Date: "2024-05-03"}})

	view := e.View()
	assert.Equal(t, Metrics{
		MonthlyIncome:   1000,
		MonthlyExpenses: 250,
		NetProfit:       750,
		OccupancyRate:   50,
	}, view.Metrics)
	require.Len(t, view.Alerts, 1)
	assert.Equal(t, []RentPoint{{Name: "Juan", Rent: 1000}}, view.RentByTenant)

	fin, ok := e.Financials("p1")
	require.True(t, ok)
	assert.Equal(t, 12000.0, fin.AnnualRevenueEstimate)
	assert.Equal(t, 250.0, fin.TotalExpenses)

	_, ok = e.Financials("missing")
	assert.False(t, ok)
}

func TestEngineRecomputesOnNewDay(t *testing.T) {
	clock := &fakeClock{now: day("2024-04-30")}
	s := store.New()
	s.PublishTenants([]models.Tenant{{Name: "Juan", CPIAdjustmentMonth: 5}})
	e := NewEngine(s, WithClock(clock.Now))
	defer e.Close()

	assert.Empty(t, e.View().Alerts)

	clock.Set(day("2024-05-01"))
	view := e.View()
	require.Len(t, view.Alerts, 1)
	assert.Equal(t, AlertCPI, view.Alerts[0].Type)
	assert.Equal(t, day("2024-05-01"), view.ComputedAt)
}

func TestEngineObservers(t *testing.T) {
	s := store.New()
	e := NewEngine(s, WithClock(func() time.Time { return day("2024-05-01") }))

	var seen []float64
	e.Observe(func(v View) { seen = append(seen, v.Metrics.MonthlyIncome) })

	s.PublishTenants([]models.Tenant{{MonthlyRent: 10}})
	s.PublishTenants([]models.Tenant{{MonthlyRent: 10}, {MonthlyRent: 5}})
	e.Close()
	s.PublishTenants(nil)

	assert.Equal(t, []float64{0, 10, 15}, seen)
}

func TestEngineResetClearsView(t *testing.T) {
	s := store.New()
	s.PublishProperties([]models.Property{{ID: "p1", Status: models.PropertyStatusRented}})
	e := NewEngine(s, WithClock(func() time.Time { return day("2024-05-01") }))
	defer e.Close()

	assert.Equal(t, 100.0, e.View().Metrics.OccupancyRate)
	s.Reset()
	assert.Equal(t, Compute(store.Snapshot{}, day("2024-05-01")), e.View())
}
