package dashboard

import (
	"fmt"
	"time"

	"github.com/localnerve/gestorinmo/internal/models"
)

// AlertType classifies an alert
type AlertType string

// Priority ranks an alert for display
type Priority string

const (
	AlertExpire AlertType = "expire"
	AlertCPI    AlertType = "cpi"

	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// ExpiryWindowDays is the horizon for contract expiry alerts
const ExpiryWindowDays = 60

// Alert is one entry of the dashboard alert list
type Alert struct {
	Type     AlertType `json:"type"`
	Text     string    `json:"text"`
	Priority Priority  `json:"priority"`
	TenantID string    `json:"tenantId"`
}

// Alerts derives the contract expiry and CPI review alerts for the tenants at now.
// Alerts follow tenant order, with a tenant's expiry alert ahead of its CPI alert.
func Alerts(tenants []models.Tenant, now time.Time) []Alert {
	alerts := []Alert{}

	for _, t := range tenants {
		if end, ok := parseDate(t.ContractEnd, now.Location()); ok && end.After(now) {
			if days := daysBetween(end, now); days < ExpiryWindowDays {
				alerts = append(alerts, Alert{
					Type:     AlertExpire,
					Text:     fmt.Sprintf("Contrato de %s vence en %d días", t.Name, days),
					Priority: PriorityHigh,
					TenantID: t.ID,
				})
			}
		}

		if int(now.Month()) == t.CPIAdjustmentMonth {
			alerts = append(alerts, Alert{
				Type:     AlertCPI,
				Text:     fmt.Sprintf("Revisión IPC para %s este mes", t.Name),
				Priority: PriorityMedium,
				TenantID: t.ID,
			})
		}
	}

	return alerts
}
