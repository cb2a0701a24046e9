package handlers_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/ai"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/database"
	"github.com/localnerve/gestorinmo/internal/feed"
	"github.com/localnerve/gestorinmo/internal/handlers"
	"github.com/localnerve/gestorinmo/internal/middleware"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeModel struct {
	reply string
}

func (m *fakeModel) Generate(context.Context, string) (string, error) {
	return m.reply, nil
}

func (m *fakeModel) GenerateWithImage(context.Context, string, string, []byte) (string, error) {
	return m.reply, nil
}

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// setupApp wires the full route table with sessions always accepted
func setupApp(t *testing.T, model ai.Model) *fiber.App {
	db := setupTestDB(t)
	s := store.New()
	engine := dashboard.NewEngine(s, dashboard.WithClock(func() time.Time {
		return time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	}))
	t.Cleanup(engine.Close)

	log := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.RegisterRoutes(app, handlers.Deps{
		Config: &config.Config{DBType: "sqlite3", DBDatabase: ":memory:", AuthzURL: "http://127.0.0.1:1"},
		DB:     db,
		Data:   services.NewDataService(db, 0),
		Engine: engine,
		Sync:   feed.New(db, s, log, time.Minute),
		AI:     ai.NewService(model, log),
		Log:    log,
	}, func(c *fiber.Ctx) error { return c.Next() })
	app.Use(handlers.NotFound)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func createdID(t *testing.T, data []byte) string {
	t.Helper()
	var result struct {
		IDs []string `json:"ids"`
	}
	if err := json.Unmarshal(data, &result); err != nil || len(result.IDs) == 0 {
		t.Fatalf("Expected ids in response, got %s", data)
	}
	return result.IDs[0]
}

var propertyBody = map[string]interface{}{
	"address":       "Calle Mayor 12, 3A",
	"city":          "Madrid",
	"type":          "Piso",
	"status":        "Alquilado",
	"purchasePrice": 250000,
}

func TestPropertyRoutes(t *testing.T) {
	app := setupApp(t, nil)

	resp, data := doJSON(t, app, "POST", "/api/properties", propertyBody)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, data)
	}
	id := createdID(t, data)

	resp, data = doJSON(t, app, "GET", "/api/properties", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var props []map[string]interface{}
	if err := json.Unmarshal(data, &props); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(props) != 1 || props[0]["id"] != id {
		t.Fatalf("Expected the created property, got %s", data)
	}

	replaced := map[string]interface{}{}
	for k, v := range propertyBody {
		replaced[k] = v
	}
	replaced["status"] = "Vacío"
	resp, _ = doJSON(t, app, "PUT", "/api/properties/"+id, replaced)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "PUT", "/api/properties/missing", replaced)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	replaced["type"] = "Castillo"
	resp, data = doJSON(t, app, "PUT", "/api/properties/"+id, replaced)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
	var envelope map[string]interface{}
	_ = json.Unmarshal(data, &envelope)
	if envelope["ok"] != false || envelope["type"] != "data.validation.input" {
		t.Errorf("Expected validation error envelope, got %s", data)
	}

	resp, data = doJSON(t, app, "POST", "/api/properties/"+id+"/documents", map[string]interface{}{
		"name": "Escritura Compraventa", "type": "Escritura", "date": "2020-01-15",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, data)
	}
	docID := createdID(t, data)

	resp, _ = doJSON(t, app, "DELETE", "/api/properties/"+id+"/documents/"+docID, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/properties/"+id, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	_, data = doJSON(t, app, "GET", "/api/properties", nil)
	if string(data) != "[]" {
		t.Errorf("Expected no properties after delete, got %s", data)
	}
}

func TestTenantsResolvePropertyAddress(t *testing.T) {
	app := setupApp(t, nil)

	_, data := doJSON(t, app, "POST", "/api/properties", propertyBody)
	propID := createdID(t, data)

	for _, tenant := range []map[string]interface{}{
		{"name": "Juan Pérez", "monthlyRent": 1200, "cpiAdjustmentMonth": 1, "propertyId": propID},
		{"name": "María García", "monthlyRent": 850, "cpiAdjustmentMonth": 6, "propertyId": "gone"},
	} {
		resp, data := doJSON(t, app, "POST", "/api/tenants", tenant)
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, data)
		}
	}

	_, data = doJSON(t, app, "GET", "/api/tenants", nil)
	var tenants []handlers.TenantView
	if err := json.Unmarshal(data, &tenants); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(tenants) != 2 {
		t.Fatalf("Expected 2 tenants, got %d", len(tenants))
	}
	addresses := map[string]string{}
	for _, v := range tenants {
		addresses[v.Name] = v.PropertyAddress
	}
	if addresses["Juan Pérez"] != "Calle Mayor 12, 3A" {
		t.Errorf("Expected resolved address, got %q", addresses["Juan Pérez"])
	}
	if addresses["María García"] != dashboard.UnassignedProperty {
		t.Errorf("Expected %q, got %q", dashboard.UnassignedProperty, addresses["María García"])
	}

	resp, _ := doJSON(t, app, "POST", "/api/tenants", map[string]interface{}{
		"name": "Sin Mes", "monthlyRent": 100, "cpiAdjustmentMonth": 13,
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestDashboardAndFinancials(t *testing.T) {
	app := setupApp(t, nil)

	_, data := doJSON(t, app, "POST", "/api/properties", propertyBody)
	propID := createdID(t, data)

	doJSON(t, app, "POST", "/api/tenants", map[string]interface{}{
		"name": "Juan Pérez", "monthlyRent": 1200, "cpiAdjustmentMonth": 5,
		"contractEnd": "2024-06-15", "propertyId": propID,
	})

	resp, data := doJSON(t, app, "POST", "/api/expenses", []map[string]interface{}{
		{"propertyId": propID, "amount": 50, "category": "Comunidad", "date": "2024-05-01"},
		{"propertyId": propID, "amount": 150, "category": "Reparación", "date": "2024-04-10"},
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, data)
	}
	resp, data = doJSON(t, app, "POST", "/api/expenses",
		map[string]interface{}{"propertyId": "other", "amount": 20, "category": "Seguro", "date": "2024-05-02"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, data)
	}

	_, data = doJSON(t, app, "GET", "/api/dashboard", nil)
	var view dashboard.View
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	want := dashboard.Metrics{MonthlyIncome: 1200, MonthlyExpenses: 70, NetProfit: 1130, OccupancyRate: 100}
	if view.Metrics != want {
		t.Errorf("Expected metrics %+v, got %+v", want, view.Metrics)
	}
	if len(view.Alerts) != 2 || view.Alerts[0].Type != dashboard.AlertExpire || view.Alerts[1].Type != dashboard.AlertCPI {
		t.Errorf("Expected expiry then CPI alert, got %+v", view.Alerts)
	}
	if len(view.RentByTenant) != 1 || view.RentByTenant[0].Name != "Juan" {
		t.Errorf("Expected rent point for Juan, got %+v", view.RentByTenant)
	}

	_, data = doJSON(t, app, "GET", "/api/alerts", nil)
	var alerts []dashboard.Alert
	_ = json.Unmarshal(data, &alerts)
	if len(alerts) != 2 || alerts[0].Text != "Contrato de Juan Pérez vence en 31 días" {
		t.Errorf("Unexpected alerts %s", data)
	}

	_, data = doJSON(t, app, "GET", "/api/properties/"+propID+"/financials", nil)
	var fin dashboard.PropertyFinancials
	if err := json.Unmarshal(data, &fin); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if fin.TotalExpenses != 200 || fin.AnnualRevenueEstimate != 14400 {
		t.Errorf("Unexpected financials %+v", fin)
	}
	if len(fin.Expenses) != 2 || fin.Expenses[0].Date != "2024-05-01" {
		t.Errorf("Expected newest expense first, got %+v", fin.Expenses)
	}

	resp, _ = doJSON(t, app, "GET", "/api/properties/missing/financials", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	_, data = doJSON(t, app, "GET", "/api/expenses?propertyId=other", nil)
	var filtered []map[string]interface{}
	_ = json.Unmarshal(data, &filtered)
	if len(filtered) != 1 {
		t.Errorf("Expected 1 expense for property other, got %d", len(filtered))
	}
}

func TestExpenseValidation(t *testing.T) {
	app := setupApp(t, nil)

	resp, _ := doJSON(t, app, "POST", "/api/expenses",
		map[string]interface{}{"amount": 20, "category": "Luz", "date": "2024-05-02"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/api/expenses", []interface{}{})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/expenses/missing", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestSeedRoute(t *testing.T) {
	app := setupApp(t, nil)

	resp, data := doJSON(t, app, "POST", "/api/admin/seed", nil)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, data)
	}

	_, data = doJSON(t, app, "GET", "/api/dashboard", nil)
	var view dashboard.View
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if view.Metrics.MonthlyIncome != 2050 {
		t.Errorf("Expected monthly income 2050, got %v", view.Metrics.MonthlyIncome)
	}
	// 50 + 150 + 80 dated May 2024
	if view.Metrics.MonthlyExpenses != 280 {
		t.Errorf("Expected monthly expenses 280, got %v", view.Metrics.MonthlyExpenses)
	}
}

func receiptPNG(t *testing.T) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.New(40, 60, color.White)); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestReceiptRoute(t *testing.T) {
	app := setupApp(t, &fakeModel{reply: "```json\n{\"amount\": \"45,90\", \"category\": \"seguro\", \"date\": \"2024-05-03\"}\n```"})

	resp, data := doJSON(t, app, "POST", "/api/ai/receipt", map[string]string{
		"image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(receiptPNG(t)),
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, data)
	}
	var guess ai.ReceiptGuess
	if err := json.Unmarshal(data, &guess); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if guess.Amount == nil || *guess.Amount != 45.90 {
		t.Errorf("Expected amount 45.90, got %v", guess.Amount)
	}
	if guess.Category == nil || *guess.Category != "Seguro" {
		t.Errorf("Expected category Seguro, got %v", guess.Category)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("receipt", "ticket.png")
	part.Write(receiptPNG(t))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/ai/receipt", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200 for multipart upload, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/api/ai/receipt", map[string]string{"image": "not-base64!"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestReceiptRouteUnreadable(t *testing.T) {
	app := setupApp(t, &fakeModel{reply: "No veo ningún recibo"})

	resp, data := doJSON(t, app, "POST", "/api/ai/receipt", map[string]string{
		"image": base64.StdEncoding.EncodeToString(receiptPNG(t)),
	})
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", resp.StatusCode)
	}
	var envelope map[string]interface{}
	_ = json.Unmarshal(data, &envelope)
	if envelope["message"] != handlers.MsgManualEntry {
		t.Errorf("Expected manual entry message, got %v", envelope["message"])
	}
}

func TestAIDisabled(t *testing.T) {
	app := setupApp(t, nil)

	resp, _ := doJSON(t, app, "POST", "/api/ai/receipt", map[string]string{"image": "aGk="})
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}

	resp, data := doJSON(t, app, "POST", "/api/ai/email", handlers.EmailRequest{TenantName: "Juan", Topic: "IPC"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var email handlers.EmailResponse
	_ = json.Unmarshal(data, &email)
	if email.Text != ai.MsgNotConfigured {
		t.Errorf("Expected not configured message, got %q", email.Text)
	}
}

func TestEmailRouteResolvesTenant(t *testing.T) {
	model := &fakeModel{reply: "Asunto: Renovación"}
	app := setupApp(t, model)

	_, data := doJSON(t, app, "POST", "/api/tenants", map[string]interface{}{
		"name": "María García", "monthlyRent": 850, "cpiAdjustmentMonth": 6,
	})
	id := createdID(t, data)

	resp, data := doJSON(t, app, "POST", "/api/ai/email", handlers.EmailRequest{TenantID: id, Topic: "Renovación"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, data)
	}
	var email handlers.EmailResponse
	_ = json.Unmarshal(data, &email)
	if email.Text != model.reply {
		t.Errorf("Expected draft %q, got %q", model.reply, email.Text)
	}

	resp, _ = doJSON(t, app, "POST", "/api/ai/email", handlers.EmailRequest{TenantID: "missing", Topic: "x"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestHealthAndNotFound(t *testing.T) {
	app := setupApp(t, nil)

	resp, data := doJSON(t, app, "GET", "/health", nil)
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("Expected status 503 with unreachable authorizer, got %d", resp.StatusCode)
	}
	var health services.HealthCheckResult
	_ = json.Unmarshal(data, &health)
	if health.Database != "ok" {
		t.Errorf("Expected database ok, got %q", health.Database)
	}

	resp, _ = doJSON(t, app, "GET", "/nowhere", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestAuthGuardsAPI(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	db := setupTestDB(t)
	s := store.New()
	engine := dashboard.NewEngine(s)
	defer engine.Close()

	handlers.RegisterRoutes(app, handlers.Deps{
		Config: &config.Config{AuthzURL: "http://127.0.0.1:1"},
		DB:     db,
		Data:   services.NewDataService(db, 0),
		Engine: engine,
		AI:     ai.NewService(nil, nil),
		Log:    zap.NewNop(),
	}, middleware.RequireSession(func(string, []string) (interface{}, error) {
		return nil, io.EOF
	}, "user"))

	resp, data := doJSON(t, app, "GET", "/api/dashboard", nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("Expected status 403, got %d", resp.StatusCode)
	}
	var envelope map[string]interface{}
	_ = json.Unmarshal(data, &envelope)
	if envelope["type"] != "data.authorization.user" {
		t.Errorf("Expected authorization error type, got %v", envelope["type"])
	}
}
