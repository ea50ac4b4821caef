package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleops/lux-inventory/internal/application/inventory"
	"github.com/galleops/lux-inventory/internal/domain/entity"
	"github.com/galleops/lux-inventory/internal/infrastructure/storage"
	apphttp "github.com/galleops/lux-inventory/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber con el ledger sobre un store
// en memoria y un producto de prueba ya creado.
func buildTestApp(t *testing.T) (*fiber.App, *entity.Product, *entity.Variant) {
	t.Helper()
	svc := inventory.NewService(storage.NewMemoryStore(), inventory.DefaultPolicy())
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Ledger: svc})

	p := &entity.Product{
		Name: "Tobillera de prueba",
		Variants: []*entity.Variant{{
			ID:        uuid.New().String(),
			Name:      "Única / Dorado",
			SKU:       "TOB-TST-UNI-DOR",
			StockByWh: map[string]int64{"W1": 10},
			Cost:      decimal.NewFromInt(100),
			Price:     decimal.NewFromInt(180),
			Enabled:   true,
		}},
	}
	saved, err := svc.UpsertProduct(context.Background(), p)
	require.NoError(t, err)
	return app, saved, saved.Variants[0]
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Registrar un movimiento válido devuelve 201 con el movimiento persistido;
// el ID lo genera el motor aunque el cliente envíe uno.
func TestRegisterMovement_Creado(t *testing.T) {
	app, p, v := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"id":        "id-del-cliente",
		"productId": p.ID,
		"variantId": v.ID,
		"type":      "in",
		"qty":       5,
		"toWh":      "W1",
		"unitCost":  100,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var mov entity.Movement
	decodeBody(t, resp, &mov)
	assert.NotEmpty(t, mov.ID)
	assert.NotEqual(t, "id-del-cliente", mov.ID)
	assert.Equal(t, int64(5), mov.Qty)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	app, _, v := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"productId": "no-existe",
		"variantId": v.ID,
		"type":      "out",
		"qty":       1,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	app, p, v := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"productId": p.ID,
		"variantId": v.ID,
		"type":      "devolución",
		"qty":       1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterMovement_WarrantyNoProcesable(t *testing.T) {
	app, p, v := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"productId": p.ID,
		"variantId": v.ID,
		"type":      "warranty",
		"qty":       1,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Método de costeo y valoración
// ──────────────────────────────────────────────────────────────────────────────

func TestSetCostMethod(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/cost-method", fiber.Map{"method": "fifo"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/inventory/cost-method", fiber.Map{"method": "lifo"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValuation(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/valuation", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var val struct {
		Unidades  int64           `json:"unidades"`
		Valor     decimal.Decimal `json:"valor"`
		CostoProm decimal.Decimal `json:"costoProm"`
		Agotado   int             `json:"agotado"`
	}
	decodeBody(t, resp, &val)
	// Incluye el seed (36 uds) más el producto de prueba (10 uds a costo 100)
	assert.Equal(t, int64(46), val.Unidades)
	assert.False(t, val.Valor.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y bodegas
// ──────────────────────────────────────────────────────────────────────────────

func TestListWarehouses(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/warehouses", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Total      int                 `json:"total"`
		Warehouses []*entity.Warehouse `json:"warehouses"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, 2, out.Total)
}

// Borrar el producto elimina también sus movimientos del historial.
func TestDeleteProduct_Cascada(t *testing.T) {
	app, p, v := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"productId": p.ID,
		"variantId": v.ID,
		"type":      "in",
		"qty":       2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%s", p.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Total     int                `json:"total"`
		Movements []*entity.Movement `json:"movements"`
	}
	decodeBody(t, resp, &out)
	assert.Zero(t, out.Total)
}

func TestUpsertProduct_CuerpoInvalido(t *testing.T) {
	app, _, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
