package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/abaya-api/internal/application/analytics"
	"github.com/jhoicas/abaya-api/internal/application/auth"
	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/application/usecase"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	apphttp "github.com/jhoicas/abaya-api/internal/interfaces/http"
	"github.com/jhoicas/abaya-api/internal/infrastructure/pdf"
	"github.com/jhoicas/abaya-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre SQLite en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testAPI struct {
	t         *testing.T
	app       *fiber.App
	rootToken string // admin sembrado, como cmd/seed_users
}

func newTestAPI(t *testing.T, openRegistration bool) *testAPI {
	t.Helper()
	ctx := context.Background()
	store, err := sqlstore.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(ctx))

	log := logger.Nop()
	authUC := auth.NewAuthUseCase(store.Users(), auth.NewMemoryDenylist(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		OrderUC:          usecase.NewOrderUseCase(store.Orders(), nil),
		DesignUC:         usecase.NewDesignUseCase(store.Designs(), nil),
		CustomerUC:       usecase.NewCustomerUseCase(store.Orders()),
		DashboardUC:      analytics.NewDashboardUseCase(store.Orders(), store.Designs(), nil),
		SalesUC:          analytics.NewSalesUseCase(store.Orders(), store.Designs(), pdf.NewSalesReportGenerator(), "Abaya Atelier", nil),
		JWTSecret:        testJWTSecret,
		OpenRegistration: openRegistration,
		Logger:           log,
	})
	_, err = authUC.Register(ctx, entity.RoleAdmin, dto.RegisterRequest{Username: "root", Password: "123456", Role: entity.RoleAdmin})
	require.NoError(t, err)
	root, err := authUC.Login(ctx, dto.LoginRequest{Username: "root", Password: "123456"})
	require.NoError(t, err)

	return &testAPI{t: t, app: app, rootToken: root.Token}
}

func (a *testAPI) do(method, path, token string, body interface{}) *http.Response {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	return resp
}

func (a *testAPI) decode(resp *http.Response, wantStatus int, out interface{}) {
	a.t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	require.Equal(a.t, wantStatus, resp.StatusCode, string(raw))
	if out != nil {
		require.NoError(a.t, json.Unmarshal(raw, out))
	}
}

func (a *testAPI) status(resp *http.Response) int {
	a.t.Helper()
	defer resp.Body.Close()
	return resp.StatusCode
}

// registerAndLogin registra por la API; las cuentas admin las crea el admin sembrado.
func (a *testAPI) registerAndLogin(username, role string) string {
	a.t.Helper()
	caller := ""
	if role == entity.RoleAdmin {
		caller = a.rootToken
	}
	var reg dto.RegisterResponse
	a.decode(a.do(http.MethodPost, "/api/register", caller, fiber.Map{
		"username": username, "password": "123456", "role": role,
	}), http.StatusCreated, &reg)
	require.Equal(a.t, role, reg.User.Role)

	var login dto.LoginResponse
	a.decode(a.do(http.MethodPost, "/api/login", "", fiber.Map{
		"username": username, "password": "123456",
	}), http.StatusOK, &login)
	require.NotEmpty(a.t, login.Token)
	return login.Token
}

func orderBody(customer, code string, price, deposit float64) fiber.Map {
	return fiber.Map{
		"customerName":     customer,
		"phone":            "0501234567",
		"abayaCode":        code,
		"length":           "56",
		"width":            "30",
		"sleeveLength":     "24",
		"deliveryLocation": "Dubai Mall",
		"price":            price,
		"deposit":          deposit,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginCredencialesInvalidas(t *testing.T) {
	api := newTestAPI(t, true)
	api.registerAndLogin("fatima", "user")

	var e dto.ErrorResponse
	api.decode(api.do(http.MethodPost, "/api/login", "", fiber.Map{
		"username": "fatima", "password": "incorrecta",
	}), http.StatusUnauthorized, &e)
	assert.Equal(t, "UNAUTHORIZED", e.Code)

	api.decode(api.do(http.MethodPost, "/api/login", "", fiber.Map{
		"username": "nadie", "password": "123456",
	}), http.StatusUnauthorized, &e)
}

func TestAPI_RegistroDuplicado(t *testing.T) {
	api := newTestAPI(t, true)
	api.registerAndLogin("fatima", "user")

	var e dto.ErrorResponse
	api.decode(api.do(http.MethodPost, "/api/register", "", fiber.Map{
		"username": "fatima", "password": "otra",
	}), http.StatusBadRequest, &e)
	assert.Equal(t, "DUPLICATE", e.Code)
}

func TestAPI_RegistroCerradoRequiereAdmin(t *testing.T) {
	api := newTestAPI(t, false)
	assert.Equal(t, http.StatusUnauthorized, api.status(api.do(http.MethodPost, "/api/register", "", fiber.Map{
		"username": "fatima", "password": "123456",
	})))
}

func TestAPI_RegistroAbiertoNoCreaAdminAnonimo(t *testing.T) {
	api := newTestAPI(t, true)

	var e dto.ErrorResponse
	api.decode(api.do(http.MethodPost, "/api/register", "", fiber.Map{
		"username": "mallory", "password": "123456", "role": "admin",
	}), http.StatusForbidden, &e)
	assert.Equal(t, "FORBIDDEN", e.Code)

	// la cuenta no existe: no hay token admin que obtener
	api.decode(api.do(http.MethodPost, "/api/login", "", fiber.Map{
		"username": "mallory", "password": "123456",
	}), http.StatusUnauthorized, &e)

	// un user tampoco puede crear admins
	user := api.registerAndLogin("staff", "user")
	api.decode(api.do(http.MethodPost, "/api/register", user, fiber.Map{
		"username": "mallory", "password": "123456", "role": "admin",
	}), http.StatusForbidden, &e)

	// token inválido en registro abierto es 401, no anónimo
	api.decode(api.do(http.MethodPost, "/api/register", "token.invalido", fiber.Map{
		"username": "mallory", "password": "123456",
	}), http.StatusUnauthorized, &e)

	// con token admin sí
	admin := api.registerAndLogin("owner", "admin")
	assert.Equal(t, http.StatusOK, api.status(api.do(http.MethodGet, "/api/dashboard/summary", admin, nil)))
}

func TestAPI_LogoutRevocaToken(t *testing.T) {
	api := newTestAPI(t, true)
	token := api.registerAndLogin("fatima", "user")

	assert.Equal(t, http.StatusOK, api.status(api.do(http.MethodGet, "/api/orders", token, nil)))
	assert.Equal(t, http.StatusOK, api.status(api.do(http.MethodPost, "/api/logout", token, nil)))

	var e dto.ErrorResponse
	api.decode(api.do(http.MethodGet, "/api/orders", token, nil), http.StatusUnauthorized, &e)
	assert.Equal(t, "REVOKED_TOKEN", e.Code)
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	api := newTestAPI(t, true)
	for _, path := range []string{"/api/orders", "/api/designs", "/api/customers", "/api/dashboard/summary", "/api/sales/summary"} {
		assert.Equal(t, http.StatusUnauthorized, api.status(api.do(http.MethodGet, path, "", nil)), path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_PedidosCRUD(t *testing.T) {
	api := newTestAPI(t, true)
	admin := api.registerAndLogin("owner", "admin")
	user := api.registerAndLogin("staff", "user")

	var created dto.OrderResponse
	api.decode(api.do(http.MethodPost, "/api/orders", user, orderBody("Fatima", "ABY-1", 100, 30)), http.StatusCreated, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New", created.Status)
	assert.Equal(t, "New", created.DisplayStatus)
	assert.False(t, created.IsDelivered)
	assert.True(t, dec("100").Equal(created.Price))

	var e dto.ErrorResponse
	invalid := orderBody("Fatima", "ABY-1", 100, 30)
	delete(invalid, "phone")
	api.decode(api.do(http.MethodPost, "/api/orders", user, invalid), http.StatusBadRequest, &e)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "phone")

	// entrega
	var updated dto.OrderResponse
	api.decode(api.do(http.MethodPut, "/api/orders/"+created.ID, user, fiber.Map{"isDelivered": true}), http.StatusOK, &updated)
	assert.True(t, updated.IsDelivered)
	assert.Equal(t, "Delivered", updated.Status)
	assert.Equal(t, "Fatima", updated.CustomerName, "los campos ausentes no cambian")

	// revertir entrega
	api.decode(api.do(http.MethodPut, "/api/orders/"+created.ID, user, fiber.Map{"isDelivered": false}), http.StatusOK, &updated)
	assert.False(t, updated.IsDelivered)
	assert.Equal(t, "New", updated.Status)

	var list []dto.OrderResponse
	api.decode(api.do(http.MethodGet, "/api/orders?q=fat", user, nil), http.StatusOK, &list)
	require.Len(t, list, 1)
	api.decode(api.do(http.MethodGet, "/api/orders?delivered=true", user, nil), http.StatusOK, &list)
	assert.Empty(t, list)

	// borrar: solo admin
	api.decode(api.do(http.MethodDelete, "/api/orders/"+created.ID, user, nil), http.StatusForbidden, &e)
	assert.Equal(t, "FORBIDDEN", e.Code)

	var msg dto.MessageResponse
	api.decode(api.do(http.MethodDelete, "/api/orders/"+created.ID, admin, nil), http.StatusOK, &msg)
	assert.Equal(t, "Order deleted", msg.Message)

	api.decode(api.do(http.MethodGet, "/api/orders/"+created.ID, admin, nil), http.StatusNotFound, &e)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.Equal(t, http.StatusNotFound, api.status(api.do(http.MethodDelete, "/api/orders/"+created.ID, admin, nil)))
}

func TestAPI_PedidoConFormularioOriginal(t *testing.T) {
	api := newTestAPI(t, true)
	token := api.registerAndLogin("staff", "user")

	// importes como texto y anticipo vacío, tal como los envía el formulario de alta
	form := fiber.Map{
		"customerName":     "Aisha",
		"phone":            "0501234567",
		"abayaCode":        "ABY-1",
		"length":           "56",
		"width":            "30",
		"sleeveLength":     "24",
		"deliveryLocation": "Sharjah",
		"notes":            "",
		"price":            "25",
		"deposit":          "",
		"status":           "New",
		"createdAt":        "2026-03-01T00:00:00.000Z",
	}
	var created dto.OrderResponse
	api.decode(api.do(http.MethodPost, "/api/orders", token, form), http.StatusCreated, &created)
	assert.True(t, dec("25").Equal(created.Price))
	assert.True(t, created.Deposit.IsZero())

	// sin precio: error de validación, no de cuerpo
	form["price"] = ""
	var e dto.ErrorResponse
	api.decode(api.do(http.MethodPost, "/api/orders", token, form), http.StatusBadRequest, &e)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "price")
}

func TestAPI_CuerpoInvalido(t *testing.T) {
	api := newTestAPI(t, true)
	token := api.registerAndLogin("staff", "user")

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)

	var e dto.ErrorResponse
	api.decode(resp, http.StatusBadRequest, &e)
	assert.Equal(t, "INVALID_BODY", e.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Diseños
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DisenosCostoSegunRol(t *testing.T) {
	api := newTestAPI(t, true)
	admin := api.registerAndLogin("owner", "admin")
	user := api.registerAndLogin("staff", "user")

	var created dto.DesignResponse
	api.decode(api.do(http.MethodPost, "/api/designs", admin, fiber.Map{
		"code": "ABY-1", "costPrice": 60, "sellingPrice": 100, "image": "https://img/aby1.jpg",
	}), http.StatusCreated, &created)
	require.NotNil(t, created.CostPrice)
	assert.True(t, dec("60").Equal(*created.CostPrice))

	// user no ve el costo
	resp := api.do(http.MethodGet, "/api/designs/"+created.ID, user, nil)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(raw), "costPrice")

	// user no puede enviar costo
	var e dto.ErrorResponse
	api.decode(api.do(http.MethodPost, "/api/designs", user, fiber.Map{
		"code": "ABY-2", "costPrice": 10, "sellingPrice": 50, "image": "https://img/aby2.jpg",
	}), http.StatusForbidden, &e)

	// código duplicado
	api.decode(api.do(http.MethodPost, "/api/designs", admin, fiber.Map{
		"code": "ABY-1", "costPrice": 1, "sellingPrice": 2, "image": "https://img/otra.jpg",
	}), http.StatusBadRequest, &e)
	assert.Equal(t, "DUPLICATE", e.Code)

	var list []dto.DesignResponse
	api.decode(api.do(http.MethodGet, "/api/designs?q=aby", admin, nil), http.StatusOK, &list)
	require.Len(t, list, 1)

	assert.Equal(t, http.StatusForbidden, api.status(api.do(http.MethodDelete, "/api/designs/"+created.ID, user, nil)))
	assert.Equal(t, http.StatusOK, api.status(api.do(http.MethodDelete, "/api/designs/"+created.ID, admin, nil)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ClientesDashboardYVentas(t *testing.T) {
	api := newTestAPI(t, true)
	admin := api.registerAndLogin("owner", "admin")
	user := api.registerAndLogin("staff", "user")

	api.decode(api.do(http.MethodPost, "/api/designs", admin, fiber.Map{
		"code": "ABY-1", "costPrice": 60, "sellingPrice": 100, "image": "https://img/aby1.jpg",
	}), http.StatusCreated, nil)

	var first dto.OrderResponse
	api.decode(api.do(http.MethodPost, "/api/orders", user, orderBody("Fatima", "ABY-1", 100, 30)), http.StatusCreated, &first)
	api.decode(api.do(http.MethodPost, "/api/orders", user, orderBody("Maryam", "ABY-9", 80, 20)), http.StatusCreated, nil)
	api.decode(api.do(http.MethodPost, "/api/orders", user, orderBody("Fatima", "ABY-1", 120, 0)), http.StatusCreated, nil)
	api.decode(api.do(http.MethodPut, "/api/orders/"+first.ID, user, fiber.Map{"isDelivered": true}), http.StatusOK, nil)

	var customers dto.CustomersResponse
	api.decode(api.do(http.MethodGet, "/api/customers", user, nil), http.StatusOK, &customers)
	assert.Equal(t, 2, customers.Total)
	assert.ElementsMatch(t, []string{"Fatima", "Maryam"}, customers.Customers)

	// solo admin
	assert.Equal(t, http.StatusForbidden, api.status(api.do(http.MethodGet, "/api/dashboard/summary", user, nil)))
	assert.Equal(t, http.StatusForbidden, api.status(api.do(http.MethodGet, "/api/sales/summary", user, nil)))

	// total = 100 (entregado) + 20 + 0 (anticipos); ganancia = 100 - 60
	var summary dto.SalesSummaryDTO
	api.decode(api.do(http.MethodGet, "/api/sales/summary", admin, nil), http.StatusOK, &summary)
	assert.True(t, dec("120").Equal(summary.Total), summary.Total.String())
	assert.True(t, dec("40").Equal(summary.Profit), summary.Profit.String())
	require.Len(t, summary.ByDesign, 1)
	assert.Equal(t, "ABY-1", summary.ByDesign[0].Code)
	assert.Equal(t, 1, summary.ByDesign[0].Count)

	var dash dto.DashboardSummaryDTO
	api.decode(api.do(http.MethodGet, "/api/dashboard/summary", admin, nil), http.StatusOK, &dash)
	assert.Equal(t, 3, dash.TotalOrders)
	assert.Equal(t, 2, dash.TotalCustomers)
	assert.Equal(t, 1, dash.TotalDesigns)
	assert.Equal(t, "Fatima", dash.MostActiveCustomer)
	assert.Equal(t, "ABY-1", dash.MostOrderedDesign)
	require.NotNil(t, dash.TopDesign)
	assert.Equal(t, "ABY-1", dash.TopDesign.Code)
	require.Len(t, dash.MonthlySales, 1)
	assert.True(t, dec("300").Equal(dash.MonthlySales[0].Total))
	assert.Len(t, dash.RecentOrders, 3)

	resp := api.do(http.MethodGet, "/api/sales/report.pdf", admin, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestAPI_DashboardVacio(t *testing.T) {
	api := newTestAPI(t, true)
	admin := api.registerAndLogin("owner", "admin")

	var dash dto.DashboardSummaryDTO
	api.decode(api.do(http.MethodGet, "/api/dashboard/summary", admin, nil), http.StatusOK, &dash)
	assert.Equal(t, 0, dash.TotalOrders)
	assert.Equal(t, "-", dash.MostActiveCustomer)
	assert.Equal(t, "-", dash.MostOrderedDesign)
	assert.Nil(t, dash.TopDesign)
	assert.True(t, dash.TotalSales.IsZero())
}

func TestAPI_RutaInexistente(t *testing.T) {
	api := newTestAPI(t, true)
	var e dto.ErrorResponse
	api.decode(api.do(http.MethodGet, "/api/nada", "", nil), http.StatusNotFound, &e)
	assert.Equal(t, "NOT_FOUND", e.Code)
}
