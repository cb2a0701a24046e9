package admin

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", filepath.Join(t.TempDir(), "admin.db"))
	t.Setenv("AUTHZ_URL", "")
	t.Setenv("AUTHZ_CLIENT_ID", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMigrateSeedAlerts(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Migrations applied")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 3 properties, 2 tenants, 4 expenses")

	out, err = run(t, "alerts", "--at", "2024-05-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Contrato de María García vence en 17 días")

	out, err = run(t, "alerts", "--at", "2024-06-10", "--json")
	require.NoError(t, err)
	var alerts []dashboard.Alert
	require.NoError(t, json.Unmarshal([]byte(out), &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, dashboard.AlertCPI, alerts[0].Type)
}

func TestAlertsWithoutData(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "migrate")
	require.NoError(t, err)

	out, err := run(t, "alerts")
	require.NoError(t, err)
	assert.Contains(t, out, "No alerts")
}

func TestAlertsBadDate(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "alerts", "--at", "15/05/2024")
	assert.Error(t, err)
}

func TestHealthcheckNeedsAuthorizer(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "healthcheck")
	assert.Error(t, err)
}
