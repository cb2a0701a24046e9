package dashboard

import (
	"testing"
	"time"

	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(store.Snapshot{}, day("2024-05-01"))
	assert.Equal(t, Metrics{}, m)
}

func TestMonthlyIncomeSumsEveryTenant(t *testing.T) {
	tenants := []models.Tenant{
		{Name: "Juan", MonthlyRent: 800, ContractEnd: "2020-01-01"},
		{Name: "María", MonthlyRent: 1200},
	}
	assert.Equal(t, 2000.0, MonthlyIncome(tenants))
}

func TestMonthlyExpensesOnlyCurrentMonth(t *testing.T) {
	now := day("2024-05-20")
	expenses := []models.Expense{
		{ID: "a", Amount: 100.10, Date: "2024-05-01"},
		{ID: "b", Amount: 0.20, Date: "2024-05-31"},
		{ID: "c", Amount: 999, Date: "2024-04-30"},
		{ID: "d", Amount: 999, Date: "2023-05-10"},
		{ID: "e", Amount: 999, Date: "not a date"},
		{ID: "f", Amount: 999, Date: ""},
	}
	assert.Equal(t, 100.30, MonthlyExpenses(expenses, now))
}

func TestNetProfitAggregatesNegatives(t *testing.T) {
	now := day("2024-05-20")
	snap := store.Snapshot{
		Tenants:  []models.Tenant{{MonthlyRent: 500}, {MonthlyRent: -100}},
		Expenses: []models.Expense{{Amount: 450, Date: "2024-05-02"}},
	}
	m := ComputeMetrics(snap, now)
	assert.Equal(t, 400.0, m.MonthlyIncome)
	assert.Equal(t, 450.0, m.MonthlyExpenses)
	assert.Equal(t, -50.0, m.NetProfit)
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(nil))

	props := []models.Property{
		{Status: models.PropertyStatusRented},
		{Status: models.PropertyStatusRented},
		{Status: models.PropertyStatusVacant},
	}
	assert.InDelta(t, 66.6667, OccupancyRate(props), 0.001)

	props[2].Status = models.PropertyStatusRented
	assert.Equal(t, 100.0, OccupancyRate(props))
}

func TestComputeMetricsIsIdempotent(t *testing.T) {
	now := day("2024-05-20")
	snap := store.Snapshot{
		Properties: []models.Property{{ID: "p1", Status: models.PropertyStatusRented}},
		Tenants:    []models.Tenant{{MonthlyRent: 700}},
		Expenses:   []models.Expense{{Amount: 30, Date: "2024-05-03"}},
	}
	assert.Equal(t, ComputeMetrics(snap, now), ComputeMetrics(snap, now))
}

func TestComputePropertyFinancials(t *testing.T) {
	tenants := []models.Tenant{
		{ID: "t1", MonthlyRent: 1200, PropertyID: strPtr("p1")},
		{ID: "t2", MonthlyRent: 900, PropertyID: strPtr("p2")},
		{ID: "t3", MonthlyRent: 300},
	}
	expenses := []models.Expense{
		{ID: "e1", PropertyID: "p1", Amount: 50, Date: "2024-01-10"},
		{ID: "e2", PropertyID: "p2", Amount: 75, Date: "2024-02-10"},
		{ID: "e3", PropertyID: "p1", Amount: 150, Date: "2024-03-05"},
	}

	got := ComputePropertyFinancials("p1", tenants, expenses)
	assert.Equal(t, 200.0, got.TotalExpenses)
	assert.Equal(t, 14400.0, got.AnnualRevenueEstimate)
	require.Len(t, got.Expenses, 2)
	assert.Equal(t, "e3", got.Expenses[0].ID)
	assert.Equal(t, "e1", got.Expenses[1].ID)

	// input order is left alone
	assert.Equal(t, "e1", expenses[0].ID)
}

func TestComputePropertyFinancialsUndatedLast(t *testing.T) {
	expenses := []models.Expense{
		{ID: "bad", PropertyID: "p1", Amount: 1, Date: "??"},
		{ID: "old", PropertyID: "p1", Amount: 1, Date: "2023-01-01"},
		{ID: "new", PropertyID: "p1", Amount: 1, Date: "2024-01-01"},
	}
	got := ComputePropertyFinancials("p1", nil, expenses)
	ids := []string{got.Expenses[0].ID, got.Expenses[1].ID, got.Expenses[2].ID}
	assert.Equal(t, []string{"new", "old", "bad"}, ids)
}

func TestComputePropertyFinancialsUnknownProperty(t *testing.T) {
	got := ComputePropertyFinancials("nope", nil, []models.Expense{{PropertyID: "p1", Amount: 5}})
	assert.Zero(t, got.TotalExpenses)
	assert.Zero(t, got.AnnualRevenueEstimate)
	assert.Empty(t, got.Expenses)
	assert.NotNil(t, got.Expenses)
}

func TestRentByTenant(t *testing.T) {
	points := RentByTenant([]models.Tenant{
		{Name: "Juan Pérez", MonthlyRent: 800},
		{Name: "  María  García", MonthlyRent: 1200},
		{Name: "", MonthlyRent: 10},
	})
	assert.Equal(t, []RentPoint{
		{Name: "Juan", Rent: 800},
		{Name: "María", Rent: 1200},
		{Name: "", Rent: 10},
	}, points)
}

func TestResolvePropertyAddress(t *testing.T) {
	props := []models.Property{{ID: "p1", Address: "Calle Mayor 1"}}

	assert.Equal(t, "Calle Mayor 1", ResolvePropertyAddress(props, strPtr("p1")))
	assert.Equal(t, UnassignedProperty, ResolvePropertyAddress(props, strPtr("gone")))
	assert.Equal(t, UnassignedProperty, ResolvePropertyAddress(props, nil))
}
