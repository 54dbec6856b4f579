package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/application/usecase"
	"github.com/jhoicas/papelaria/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/papelaria/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	validCPF   = "11144477735"
	validPhone = "(11) 98765-4321"
)

// buildTestApp construye la API completa sobre el almacenamiento en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore(time.Second)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:    usecase.NewCustomerUseCase(store.Customers(), nil, nil),
		ProductUC:     usecase.NewProductUseCase(store.Products(), nil, nil),
		SaleUC:        inventory.NewSaleUseCase(store, store.Customers(), store.Sales(), nil, nil),
		ProductFinder: inventory.NewProductFinder(store.Products()),
	})
	return app
}

// do lanza la petición y decodifica el cuerpo JSON en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "el cuerpo debe ser JSON")
	}
	return resp.StatusCode
}

func registerCustomer(t *testing.T, app *fiber.App) {
	t.Helper()
	status := do(t, app, http.MethodPost, "/api/customers", dto.RegisterCustomerRequest{
		NationalID: validCPF, Name: "Ana", Email: "ana@example.com", Phone: validPhone,
	}, nil)
	require.Equal(t, fiber.StatusCreated, status)
}

func registerProduct(t *testing.T, app *fiber.App, name string, stock int64) int64 {
	t.Helper()
	var out dto.ProductResponse
	status := do(t, app, http.MethodPost, "/api/products",
		map[string]any{"name": name, "price": "2.50", "stock": stock}, &out)
	require.Equal(t, fiber.StatusCreated, status)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_RegisterAndGet(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app)

	var got dto.CustomerResponse
	status := do(t, app, http.MethodGet, "/api/customers/"+validCPF, nil, &got)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "11987654321", got.Phone, "el teléfono se guarda solo con dígitos")
	assert.Zero(t, got.PurchasedQuantity)
}

func TestCustomers_Duplicate(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app)

	var errBody dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/customers", dto.RegisterCustomerRequest{
		NationalID: validCPF, Name: "Otra", Phone: validPhone,
	}, &errBody)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestCustomers_Validation(t *testing.T) {
	app := buildTestApp(t)
	cases := map[string]dto.RegisterCustomerRequest{
		"cpf inválido":      {NationalID: "11144477736", Name: "Ana", Phone: validPhone},
		"nombre vacío":      {NationalID: validCPF, Name: "   ", Phone: validPhone},
		"nombre numérico":   {NationalID: validCPF, Name: "12345", Phone: validPhone},
		"teléfono inválido": {NationalID: validCPF, Name: "Ana", Phone: "1234"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			var errBody dto.ErrorResponse
			status := do(t, app, http.MethodPost, "/api/customers", in, &errBody)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION", errBody.Code)
		})
	}
}

func TestCustomers_InvalidBody(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errBody.Code)
}

func TestCustomers_NotFound(t *testing.T) {
	app := buildTestApp(t)
	var errBody dto.ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/api/customers/"+validCPF, nil, &errBody))
	assert.Equal(t, "NOT_FOUND", errBody.Code)
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/api/customers/"+validCPF+"/sales", nil, &errBody))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_Search(t *testing.T) {
	app := buildTestApp(t)
	pen := registerProduct(t, app, "Pen", 10)
	registerProduct(t, app, "Pencil", 3)
	registerProduct(t, app, "Notebook", 5)

	var list dto.ProductListResponse
	require.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/products?q=pen", nil, &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, pen, list.Items[0].ID, "los candidatos se ordenan por id")

	require.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/products", nil, &list))
	assert.Len(t, list.Items, 3, "sin fragmento se listan todos")

	var errBody dto.ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/api/products?q=eraser", nil, &errBody))
	assert.Equal(t, "NO_MATCH", errBody.Code)
}

func TestProducts_GetByID(t *testing.T) {
	app := buildTestApp(t)
	id := registerProduct(t, app, "Pen", 10)

	var got dto.ProductResponse
	require.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &got))
	assert.Equal(t, "Pen", got.Name)
	assert.Equal(t, "2.5", got.Price.String())

	var errBody dto.ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/api/products/999", nil, &errBody))
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, http.MethodGet, "/api/products/abc", nil, &errBody))
}

func TestProducts_Validation(t *testing.T) {
	app := buildTestApp(t)
	var errBody dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/products",
		map[string]any{"name": "Pen", "price": "1.00", "stock": -1}, &errBody)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_EndToEnd(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app)
	pen := registerProduct(t, app, "Pen", 10)

	var sale dto.SaleResponse
	status := do(t, app, http.MethodPost, "/api/sales", dto.SellRequest{
		ProductID: pen, CustomerNationalID: validCPF, Quantity: 3,
	}, &sale)
	require.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, sale.TransactionID)

	var gotSale dto.SaleResponse
	require.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, fmt.Sprintf("/api/sales/%d", sale.ID), nil, &gotSale))
	assert.Equal(t, int64(3), gotSale.Quantity)

	var product dto.ProductResponse
	do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", pen), nil, &product)
	assert.Equal(t, int64(7), product.Stock)

	var customer dto.CustomerResponse
	do(t, app, http.MethodGet, "/api/customers/"+validCPF, nil, &customer)
	assert.Equal(t, int64(3), customer.PurchasedQuantity)

	var errBody dto.ErrorResponse
	status = do(t, app, http.MethodPost, "/api/sales", dto.SellRequest{
		ProductID: pen, CustomerNationalID: validCPF, Quantity: 8,
	}, &errBody)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)

	var sales dto.SaleListResponse
	require.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/customers/"+validCPF+"/sales", nil, &sales))
	assert.Len(t, sales.Items, 1, "la venta rechazada no deja rastro")
}

func TestSales_Errors(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app)
	pen := registerProduct(t, app, "Pen", 10)

	cases := []struct {
		name   string
		in     dto.SellRequest
		status int
		code   string
	}{
		{"cantidad cero", dto.SellRequest{ProductID: pen, CustomerNationalID: validCPF, Quantity: 0}, fiber.StatusBadRequest, "VALIDATION"},
		{"producto inexistente", dto.SellRequest{ProductID: 999, CustomerNationalID: validCPF, Quantity: 1}, fiber.StatusNotFound, "NOT_FOUND"},
		{"cliente inexistente", dto.SellRequest{ProductID: pen, CustomerNationalID: "52998224725", Quantity: 1}, fiber.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var errBody dto.ErrorResponse
			assert.Equal(t, tc.status, do(t, app, http.MethodPost, "/api/sales", tc.in, &errBody))
			assert.Equal(t, tc.code, errBody.Code)
		})
	}
}

// Dos ventas concurrentes de 6 sobre stock 10: exactamente una se confirma.
func TestSales_ConcurrentOversell(t *testing.T) {
	app := buildTestApp(t)
	registerCustomer(t, app)
	pen := registerProduct(t, app, "Pen", 10)

	statuses := make([]int, 2)
	var wg sync.WaitGroup
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i] = do(t, app, http.MethodPost, "/api/sales", dto.SellRequest{
				ProductID: pen, CustomerNationalID: validCPF, Quantity: 6,
			}, nil)
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{fiber.StatusCreated, fiber.StatusConflict}, statuses)

	var product dto.ProductResponse
	do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", pen), nil, &product)
	assert.Equal(t, int64(4), product.Stock)
}
