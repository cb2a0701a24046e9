package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/shopspring/decimal"
)

// UnassignedProperty is shown for tenants without a resolvable property
const UnassignedProperty = "Sin asignar"

// Metrics are the dashboard headline figures
type Metrics struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	NetProfit       float64 `json:"netProfit"`
	OccupancyRate   float64 `json:"occupancyRate"`
}

// PropertyFinancials is the per-property rollup shown in the financial detail view
type PropertyFinancials struct {
	PropertyID            string           `json:"propertyId"`
	TotalExpenses         float64          `json:"totalExpenses"`
	AnnualRevenueEstimate float64          `json:"annualRevenueEstimate"`
	Expenses              []models.Expense `json:"expenses"`
}

// RentPoint is one bar of the rent-by-tenant chart
type RentPoint struct {
	Name string  `json:"name"`
	Rent float64 `json:"rent"`
}

// ComputeMetrics derives the headline figures from a snapshot at the given instant
func ComputeMetrics(snap store.Snapshot, now time.Time) Metrics {
	income := sumRent(snap.Tenants)
	expenses := monthExpenses(snap.Expenses, now)

	return Metrics{
		MonthlyIncome:   income.InexactFloat64(),
		MonthlyExpenses: expenses.InexactFloat64(),
		NetProfit:       income.Sub(expenses).InexactFloat64(),
		OccupancyRate:   OccupancyRate(snap.Properties),
	}
}

// MonthlyIncome sums the rent of every tenant.
// Contract windows are not taken into account.
func MonthlyIncome(tenants []models.Tenant) float64 {
	return sumRent(tenants).InexactFloat64()
}

// MonthlyExpenses sums the expenses dated in the calendar month of now
func MonthlyExpenses(expenses []models.Expense, now time.Time) float64 {
	return monthExpenses(expenses, now).InexactFloat64()
}

// OccupancyRate is the percentage of properties marked as rented, 0 without properties
func OccupancyRate(properties []models.Property) float64 {
	if len(properties) == 0 {
		return 0
	}
	rented := 0
	for _, p := range properties {
		if p.Status == models.PropertyStatusRented {
			rented++
		}
	}
	return float64(rented) / float64(len(properties)) * 100
}

// ComputePropertyFinancials rolls up the expenses and the rent of one property.
// Expenses are returned newest first, undated ones last.
func ComputePropertyFinancials(propertyID string, tenants []models.Tenant, expenses []models.Expense) PropertyFinancials {
	out := PropertyFinancials{
		PropertyID: propertyID,
		Expenses:   []models.Expense{},
	}

	total := decimal.Zero
	for _, e := range expenses {
		if e.PropertyID != propertyID {
			continue
		}
		out.Expenses = append(out.Expenses, e)
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	sortNewestFirst(out.Expenses)

	revenue := decimal.Zero
	twelve := decimal.NewFromInt(12)
	for _, t := range tenants {
		if t.AssignedTo(propertyID) {
			revenue = revenue.Add(decimal.NewFromFloat(t.MonthlyRent).Mul(twelve))
		}
	}

	out.TotalExpenses = total.InexactFloat64()
	out.AnnualRevenueEstimate = revenue.InexactFloat64()
	return out
}

// RentByTenant lists each tenant's first name and rent in collection order
func RentByTenant(tenants []models.Tenant) []RentPoint {
	points := make([]RentPoint, 0, len(tenants))
	for _, t := range tenants {
		name := t.Name
		if fields := strings.Fields(t.Name); len(fields) > 0 {
			name = fields[0]
		}
		points = append(points, RentPoint{Name: name, Rent: t.MonthlyRent})
	}
	return points
}

// ResolvePropertyAddress returns the address of the referenced property,
// or UnassignedProperty when the reference is empty or dangling
func ResolvePropertyAddress(properties []models.Property, propertyID *string) string {
	if propertyID == nil {
		return UnassignedProperty
	}
	for _, p := range properties {
		if p.ID == *propertyID {
			return p.Address
		}
	}
	return UnassignedProperty
}

func sumRent(tenants []models.Tenant) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tenants {
		total = total.Add(decimal.NewFromFloat(t.MonthlyRent))
	}
	return total
}

func monthExpenses(expenses []models.Expense, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		d, ok := parseDate(e.Date, now.Location())
		if !ok || !sameMonth(d, now) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}

func sortNewestFirst(expenses []models.Expense) {
	type dated struct {
		expense models.Expense
		at      time.Time
		ok      bool
	}
	rows := make([]dated, len(expenses))
	for i, e := range expenses {
		at, ok := parseDate(e.Date, time.UTC)
		rows[i] = dated{expense: e, at: at, ok: ok}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ok != rows[j].ok {
			return rows[i].ok
		}
		return rows[i].at.After(rows[j].at)
	})
	for i := range rows {
		expenses[i] = rows[i].expense
	}
}
