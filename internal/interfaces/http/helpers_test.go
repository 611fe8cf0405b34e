package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/easypalm-console/internal/application/analytics"
	"github.com/jhoicas/easypalm-console/internal/application/auth"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
	"github.com/jhoicas/easypalm-console/internal/domain/menu"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/backend"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/memory"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/easypalm-console/internal/interfaces/http"
	"github.com/jhoicas/easypalm-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso: imita las rutas del backend Flask que usa la consola
// ──────────────────────────────────────────────────────────────────────────────

// usuarios del backend falso: username → e_role tal como lo guarda el backend.
var backendUsers = map[string]string{
	"admin":     "admin",
	"compras":   "Purchasing",
	"bodega":    "Warehouse",
	"ventas":    "sales",
	"contador":  "Accountant",
	"ejecutivo": "Executive",
	"finanzas":  "Finance",
}

type fakeFlask struct {
	*httptest.Server

	mu        sync.Mutex
	calls     map[string]int
	lastPrice json.RawMessage
	lastQuery string
}

func newFakeFlask(t *testing.T) *fakeFlask {
	t.Helper()
	f := &fakeFlask{calls: map[string]int{}}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		f.count("login")
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		role, ok := backendUsers[in.Username]
		if !ok || in.Password != "secreto" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"user":    map[string]any{"e_id": 7, "e_name": "สมชาย " + in.Username, "e_role": role},
		})
	})

	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		f.count("products")
		writeJSON(w, http.StatusOK, []map[string]any{
			{"p_id": 1, "p_name": "ปาล์มทะลาย", "price_per_unit": "5.40", "effective_date": "2025-01-10"},
			{"p_id": 2, "p_name": "ปาล์มร่วง", "price_per_unit": 7, "effective_date": nil},
		})
	})

	mux.HandleFunc("PUT /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.count("update_price")
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.lastPrice = body
		f.mu.Unlock()
		var in struct {
			PricePerUnit json.Number `json:"price_per_unit"`
		}
		_ = json.Unmarshal(body, &in)
		writeJSON(w, http.StatusOK, map[string]any{
			"p_id": r.PathValue("id"), "p_name": "ปาล์มทะลาย", "price_per_unit": in.PricePerUnit, "effective_date": "2025-01-11",
		})
	})

	mux.HandleFunc("GET /stock", func(w http.ResponseWriter, r *http.Request) {
		f.count("stock")
		writeJSON(w, http.StatusOK, []map[string]any{
			{"product_id": 1, "product_name": "ปาล์มทะลาย", "warehouse_id": 1, "warehouse_name": "คลัง A", "quantity": "1200.5"},
			{"product_id": 2, "product_name": "ปาล์มร่วง", "warehouse_id": 1, "warehouse_name": "คลัง A", "quantity": 0},
			{"product_id": 1, "product_name": "ปาล์มทะลาย", "warehouse_id": 2, "warehouse_name": "คลัง B", "quantity": 1},
		})
	})

	mux.HandleFunc("GET /api/reports/profit-loss", func(w http.ResponseWriter, r *http.Request) {
		f.count("profit_loss")
		q := r.URL.Query()
		writeJSON(w, http.StatusOK, map[string]any{
			"start_date":    q.Get("start_date"),
			"end_date":      q.Get("end_date"),
			"total_revenue": "150000.00",
			"total_cogs":    "120000.50",
			"gross_profit":  "29999.50",
		})
	})

	mux.HandleFunc("GET /purchaseorders", func(w http.ResponseWriter, r *http.Request) {
		f.count("purchase_orders")
		f.mu.Lock()
		f.lastQuery = r.URL.RawQuery
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, []map[string]any{{
			"purchase_order_number": "PO002", "f_id": "F01", "farmer_name": "สมศรี",
			"b_date": "2025-01-09T08:15:00.123456", "b_total_price": 5400.0,
			"payment_status": "Unpaid", "stock_status": "Not Received",
			"created_by_name": "สมชาย compras", "paid_by_name": nil, "paid_date": nil,
			"items": []map[string]any{{"product_name": "ปาล์มทะลาย", "quantity": 1000, "price_per_unit": 5.4}},
		}})
	})

	mux.HandleFunc("GET /purchaseorders/{number}", func(w http.ResponseWriter, r *http.Request) {
		f.count("purchase_order")
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "404 Not Found"})
	})

	salesOrder := map[string]any{
		"sale_order_number": "SO001", "customer_name": "โรงงานน้ำมัน", "s_date": "2025-01-08T10:00:00",
		"s_total_price": 12000, "shipment_status": "Shipped", "delivery_status": "Delivered", "payment_status": "Unpaid",
		"items": []map[string]any{{"p_id": "P01", "product_name": "น้ำมันปาล์มดิบ", "quantity": 400, "price_per_unit": 30}},
	}
	mux.HandleFunc("GET /salesorders", func(w http.ResponseWriter, r *http.Request) {
		f.count("sales_orders")
		writeJSON(w, http.StatusOK, []map[string]any{salesOrder})
	})
	mux.HandleFunc("GET /salesorders/pending-payment", func(w http.ResponseWriter, r *http.Request) {
		f.count("pending_payment")
		writeJSON(w, http.StatusOK, []map[string]any{salesOrder})
	})
	mux.HandleFunc("GET /salesorders/{number}", func(w http.ResponseWriter, r *http.Request) {
		f.count("sales_order")
		writeJSON(w, http.StatusOK, salesOrder)
	})

	mux.HandleFunc("GET /executive/dashboard-summary", func(w http.ResponseWriter, r *http.Request) {
		f.count("executive")
		today := time.Now().Format("2006-01-02")
		writeJSON(w, http.StatusOK, map[string]any{
			"kpis": map[string]any{
				"total_revenue": 12000.0, "gross_profit": 2000.5, "total_purchase_cost": 5400.0, "current_stock_value": 800,
			},
			"chart_data":       []map[string]any{{"date": today, "sales": 12000.0, "purchases": 0}},
			"recent_sales":     []map[string]any{salesOrder},
			"recent_purchases": []map[string]any{},
		})
	})

	mux.HandleFunc("DELETE /warehouses/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.count("delete_warehouse")
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Warehouse has stock"})
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeFlask) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeFlask) lastOrderQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

func (f *fakeFlask) callsTo(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consola completa sobre el backend falso
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "easypalm-console-test"
	testExpMin    = 60
)

type consoleOptions struct {
	loginRPS   float64
	loginBurst int
}

func buildConsole(t *testing.T, baseURL string, opts ...consoleOptions) *fiber.App {
	t.Helper()
	opt := consoleOptions{}
	if len(opts) > 0 {
		opt = opts[0]
	}

	log := logger.Nop()
	client := backend.NewClient(baseURL, 2*time.Second, log)
	registry := appanalytics.NewProfitLossRegistry(client, 2*time.Second, log)
	authUC := auth.NewAuthUseCase(
		client,
		memory.NewSessionRepository(),
		menu.NewResolver(menu.AdminLayoutExtended),
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		log,
		registry,
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    usecase.NewProductUseCase(client, "th"),
		FarmerUC:     usecase.NewFarmerUseCase(client),
		IndustryUC:   usecase.NewIndustryUseCase(client),
		StockUC:      usecase.NewStockUseCase(client),
		EmployeeUC:   usecase.NewEmployeeUseCase(client),
		WarehouseUC:  usecase.NewWarehouseUseCase(client),
		OrderUC:      usecase.NewOrderUseCase(client),
		DashboardUC:  appanalytics.NewDashboardUseCase(client, time.Now),
		ExecutiveUC:  appanalytics.NewExecutiveDashboardUseCase(client, time.Now),
		ProfitLossUC: appanalytics.NewProfitLossUseCase(registry, pdf.NewMarotoPDFGenerator("th"), "th"),
		JWTSecret:    testJWTSecret,
		LoginRPS:     opt.loginRPS,
		LoginBurst:   opt.loginBurst,
		Log:          log,
	})
	return app
}

// call lanza la petición contra la app; body nil = sin cuerpo.
func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// login inicia sesión con el usuario del backend falso y devuelve el token.
func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username, "password": "secreto",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s", username)
	out := decode[struct {
		Token string `json:"token"`
	}](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}
