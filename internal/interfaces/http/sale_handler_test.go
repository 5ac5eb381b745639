package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/pos-api/internal/application/auth"
	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/application/pos"
	"github.com/clinivet/pos-api/internal/domain/entity"
	"github.com/clinivet/pos-api/internal/infrastructure/memory"
	infrapdf "github.com/clinivet/pos-api/internal/infrastructure/pdf"
	apphttp "github.com/clinivet/pos-api/internal/interfaces/http"
	pkgjwt "github.com/clinivet/pos-api/pkg/jwt"
	"github.com/clinivet/pos-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "clinivet-pos-test"
	testExpMin    = 60
)

// buildApp arma la aplicación completa sobre el store en memoria, con el
// inventario y cliente que usan los tests de venta.
func buildApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.New()
	store.SeedItem(entity.InventoryItem{ID: "item-1", Name: "Antipulgas perro", Stock: 10, Price: decimal.RequireFromString("50.00")})
	store.SeedItem(entity.InventoryItem{ID: "item-2", Name: "Shampoo medicado", Stock: 5, Price: decimal.RequireFromString("30.00")})
	store.SeedClient(entity.Client{ID: "client-1", Name: "Laura Gómez", Email: "laura@example.com"})

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	createUC := pos.NewCreateSaleUseCase(store, store.ItemRepo())
	queryUC := pos.NewSaleQueryUseCase(store.SaleRepo(), store.ClientRepo())
	receiptUC := pos.NewReceiptUseCase(store.SaleRepo(), store.ClientRepo(), store.ItemRepo(),
		infrapdf.NewReceiptGenerator("CliniVet Test"))
	inventoryUC := pos.NewInventoryQueryUseCase(store.ItemRepo())
	authUC := auth.NewAuthUseCase(store.UserRepo(), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CreateSale: createUC,
		SaleQuery:  queryUC,
		Receipt:    receiptUC,
		Inventory:  inventoryUC,
		AuthUC:     authUC,
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return app, store
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const validSaleBody = `{
	"clientId": "client-1",
	"items": [
		{"inventoryItemId": "item-1", "quantity": 2, "unitPrice": "50.00"},
		{"inventoryItemId": "item-2", "quantity": 1, "unitPrice": "30.00"}
	],
	"paymentMethod": "CASH"
}`

func TestCreateSaleHandler_Exitosa(t *testing.T) {
	app, store := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", validSaleBody, bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body dto.CreateSaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Sale.ID)
	assert.True(t, body.Sale.Total.Equal(decimal.RequireFromString("130.00")),
		"total esperado 130.00, got %s", body.Sale.Total)
	assert.Len(t, body.Sale.Items, 2)

	it, _ := store.Item("item-1")
	assert.Equal(t, 8, it.Stock)
}

func TestCreateSaleHandler_CuerpoMalformado(t *testing.T) {
	app, _ := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", `{"clientId": `, bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "formato")
}

func TestCreateSaleHandler_CamposRequeridos(t *testing.T) {
	app, _ := buildApp(t)
	body := `{"items": [{"inventoryItemId": "item-1", "quantity": 1, "unitPrice": "50.00"}], "paymentMethod": "CASH"}`
	resp := doJSON(t, app, http.MethodPost, "/api/sales", body, bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "requeridos")
}

func TestCreateSaleHandler_SinLineas(t *testing.T) {
	app, _ := buildApp(t)
	body := `{"clientId": "client-1", "items": [], "paymentMethod": "CASH"}`
	resp := doJSON(t, app, http.MethodPost, "/api/sales", body, bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "al menos un producto")
}

func TestCreateSaleHandler_StockInsuficiente(t *testing.T) {
	app, store := buildApp(t)
	body := `{"clientId": "client-1", "items": [{"inventoryItemId": "item-2", "quantity": 50, "unitPrice": "30.00"}], "paymentMethod": "CASH"}`
	resp := doJSON(t, app, http.MethodPost, "/api/sales", body, bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INSUFFICIENT_STOCK")
	assert.Contains(t, string(raw), "Stock insuficiente")

	it, _ := store.Item("item-2")
	assert.Equal(t, 5, it.Stock, "el stock no debe cambiar en una venta rechazada")
}

func TestCreateSaleHandler_ProductoInexistente(t *testing.T) {
	app, _ := buildApp(t)
	body := `{"clientId": "client-1", "items": [{"inventoryItemId": "no-existe", "quantity": 1, "unitPrice": "10.00"}], "paymentMethod": "CASH"}`
	resp := doJSON(t, app, http.MethodPost, "/api/sales", body, bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "no encontrado")
}

func TestCreateSaleHandler_SinToken(t *testing.T) {
	app, _ := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", validSaleBody, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateSaleHandler_RolSinPermisoDeCaja(t *testing.T) {
	app, _ := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", validSaleBody, bearerFor(t, entity.RoleVeterinario))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListSalesHandler_Paginacion(t *testing.T) {
	app, _ := buildApp(t)
	token := bearerFor(t, entity.RoleAdmin)

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/sales", validSaleBody, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/sales?page=1&limit=2", "", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SaleListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Sales, 2)
	assert.Equal(t, dto.Pagination{Total: 3, Page: 1, Limit: 2, TotalPages: 2}, body.Pagination)
	assert.Equal(t, "Laura Gómez", body.Sales[0].ClientName)
}

func TestGetSaleHandler_NoExiste(t *testing.T) {
	app, _ := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/sales/no-existe", "", bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "no encontrado")
}

func TestReceiptHandler_GeneraPDF(t *testing.T) {
	app, _ := buildApp(t)
	token := bearerFor(t, entity.RoleVendedor)

	created := doJSON(t, app, http.MethodPost, "/api/sales", validSaleBody, token)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	var body dto.CreateSaleResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&body))
	created.Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/sales/"+body.Sale.ID+"/receipt", "", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"), "la respuesta debe ser un PDF")
}

func TestInventoryHandler_Lista(t *testing.T) {
	app, _ := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/inventory", "", bearerFor(t, entity.RoleVendedor))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.InventoryListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Antipulgas perro", body.Items[0].Name)
}
