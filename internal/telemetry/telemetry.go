package telemetry

import (
	"fmt"

	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gestorinmo"

// Gauges exposes the dashboard figures as Prometheus gauges
type Gauges struct {
	monthlyIncome   prometheus.Gauge
	monthlyExpenses prometheus.Gauge
	netProfit       prometheus.Gauge
	occupancyRate   prometheus.Gauge
	alerts          *prometheus.GaugeVec
}

// NewGauges creates the dashboard gauges and registers them with reg
func NewGauges(reg prometheus.Registerer) (*Gauges, error) {
	g := &Gauges{
		monthlyIncome: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monthly_income",
			Help:      "Sum of the monthly rent of every tenant.",
		}),
		monthlyExpenses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monthly_expenses",
			Help:      "Sum of the expenses dated in the current month.",
		}),
		netProfit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "net_profit",
			Help:      "Monthly income minus monthly expenses.",
		}),
		occupancyRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupancy_rate_percent",
			Help:      "Percentage of properties marked as rented.",
		}),
		alerts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alerts",
			Help:      "Active dashboard alerts by type.",
		}, []string{"type"}),
	}

	collectors := []prometheus.Collector{
		g.monthlyIncome, g.monthlyExpenses, g.netProfit, g.occupancyRate, g.alerts,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register dashboard gauge: %w", err)
		}
	}
	return g, nil
}

// Observe sets every gauge from a dashboard view
func (g *Gauges) Observe(v dashboard.View) {
	g.monthlyIncome.Set(v.Metrics.MonthlyIncome)
	g.monthlyExpenses.Set(v.Metrics.MonthlyExpenses)
	g.netProfit.Set(v.Metrics.NetProfit)
	g.occupancyRate.Set(v.Metrics.OccupancyRate)

	counts := map[dashboard.AlertType]int{
		dashboard.AlertExpire: 0,
		dashboard.AlertCPI:    0,
	}
	for _, a := range v.Alerts {
		counts[a.Type]++
	}
	for t, n := range counts {
		g.alerts.WithLabelValues(string(t)).Set(float64(n))
	}
}
