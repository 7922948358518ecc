package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/adapter/storage"
	"github.com/rl1809/stockledger/internal/core/service"
)

const (
	testUser int64 = 1
	pizzaID  int64 = 100
)

type testEnv struct {
	store     *storage.MemoryStore
	orders    *service.OrderService
	inventory *service.InventoryService
	cheeseID  int64
	doughID   int64
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := storage.NewMemoryStore()
	store.AddUser(testUser)

	cheese, err := store.AddMaterial("Cheese", "kg", dec("5.0"))
	require.NoError(t, err)
	dough, err := store.AddMaterial("Dough", "pcs", dec("3"))
	require.NoError(t, err)
	_, err = store.AddRecipeLine(pizzaID, dough, dec("1"))
	require.NoError(t, err)

	log := zap.NewNop()
	resolver := service.NewRecipeResolver(store)
	checker := service.NewAvailabilityChecker(store)
	engine := service.NewDeductionEngine(store, store, log)
	return &testEnv{
		store:     store,
		orders:    service.NewOrderService(resolver, checker, engine, store, nil, log),
		inventory: service.NewInventoryService(resolver, engine, store, log),
		cheeseID:  cheese,
		doughID:   dough,
	}
}

func (e *testEnv) router() http.Handler {
	log := zap.NewNop()
	return NewRouter(NewHTTPHandler(e.orders, e.inventory, log), log, 5*time.Second)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.router(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDeductAddons_Success(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()

	rec := do(t, h, http.MethodPost, "/api/inventory/addons/deduct", map[string]any{
		"names":   []string{"Cheese"},
		"amounts": []string{"3.0"},
		"user_id": testUser,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[MessageResponse](t, rec)
	assert.Equal(t, 1, resp.Applied)

	rec = do(t, h, http.MethodGet, "/api/materials/"+strconv.FormatInt(env.cheeseID, 10)+"/ledger", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]LedgerEntryResponse](t, rec)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].QuantityDelta.Equal(dec("-3")))
	assert.Equal(t, "Auto Deduction(Addons)", entries[0].Reason)
}

func TestDeductAddons_ShortfallRollsBack(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.router(), http.MethodPost, "/api/inventory/addons/deduct", map[string]any{
		"names":   []string{"Cheese", "Truffle"},
		"amounts": []string{"6", "1"},
		"user_id": testUser,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "batch_rejected", resp.Error)
	assert.Equal(t, []string{"not enough stock for Cheese", "material not found: Truffle"}, resp.Failures)

	m, err := env.store.GetMaterial(t.Context(), env.cheeseID)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(dec("5")))
}

func TestDeductAddons_BadRequest(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()

	rec := do(t, h, http.MethodPost, "/api/inventory/addons/deduct", map[string]any{
		"names":   []string{"Cheese"},
		"amounts": []string{},
		"user_id": testUser,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/addons/deduct", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rec = do(t, h, http.MethodPost, "/api/inventory/addons/deduct", map[string]any{
		"names":   []string{"Cheese"},
		"amounts": []string{"1"},
		"user_id": 999,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_user", decode[ErrorResponse](t, rec).Error)
}

func TestDeductIngredients(t *testing.T) {
	env := newTestEnv(t)
	lines, err := env.store.RecipeLinesFor(t.Context(), pizzaID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	rec := do(t, env.router(), http.MethodPost, "/api/inventory/ingredients/deduct", map[string]any{
		"items":   []map[string]any{{"menu_ingredient_id": lines[0].ID, "amount": "2"}},
		"user_id": testUser,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m, err := env.store.GetMaterial(t.Context(), env.doughID)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(dec("1")))
}

func TestCreateOrder_Flow(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()

	rec := do(t, h, http.MethodPost, "/api/orders", map[string]any{
		"user_id":      testUser,
		"items":        []map[string]any{{"id": pizzaID, "quantity": 2}},
		"total_amount": "19.90",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[OrderResponse](t, rec)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "Cash", created.PaymentMethod)
	assert.True(t, created.StockDeducted)

	rec = do(t, h, http.MethodGet, "/api/orders/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[OrderResponse](t, rec).TotalAmount.Equal(dec("19.9")))

	rec = do(t, h, http.MethodPatch, "/api/orders/"+created.ID+"/status", map[string]string{"status": "processing"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/orders/"+created.ID+"/status", map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/orders/"+created.ID+"/status", map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/orders/"+created.ID+"/payment", map[string]string{
		"payment_method": "Card",
		"payment_status": "paid",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/orders?user_id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]OrderResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "processing", list[0].Status)
	assert.Equal(t, "paid", list[0].PaymentStatus)
}

func TestCreateOrder_Shortfall(t *testing.T) {
	env := newTestEnv(t)

	rec := do(t, env.router(), http.MethodPost, "/api/orders", map[string]any{
		"user_id": testUser,
		"items":   []map[string]any{{"id": pizzaID, "quantity": 4}},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "insufficient_stock", resp.Error)
	require.Len(t, resp.Shortfalls, 1)
	assert.Equal(t, "Dough", resp.Shortfalls[0].Name)
	assert.True(t, resp.Shortfalls[0].Needed.Equal(dec("4")))
	assert.True(t, resp.Shortfalls[0].Available.Equal(dec("3")))
}

func TestQuoteProcessAndAvailability(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()

	rec := do(t, h, http.MethodPost, "/api/orders/quote", map[string]any{
		"user_id": testUser,
		"items":   []map[string]any{{"id": pizzaID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	quoted := decode[OrderResponse](t, rec)
	assert.False(t, quoted.StockDeducted)
	assert.Equal(t, "available", quoted.Availability)

	rec = do(t, h, http.MethodPost, "/api/orders/"+quoted.ID+"/availability", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	av := decode[AvailabilityResponse](t, rec)
	assert.True(t, av.Sufficient)
	assert.Equal(t, "available", av.UpdatedAvailability)

	rec = do(t, h, http.MethodPost, "/api/orders/"+quoted.ID+"/process", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	processed := decode[OrderResponse](t, rec)
	assert.Equal(t, "processing", processed.Status)
	assert.True(t, processed.StockDeducted)

	rec = do(t, h, http.MethodGet, "/api/materials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, m := range decode[[]MaterialResponse](t, rec) {
		if m.ID == env.doughID {
			assert.True(t, m.Quantity.Equal(dec("1")))
		}
	}
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()

	rec := do(t, h, http.MethodGet, "/api/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/materials/999/ledger", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/materials/abc/ledger", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStockEntries(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()
	path := "/api/materials/" + strconv.FormatInt(env.cheeseID, 10) + "/entries"

	rec := do(t, h, http.MethodPost, path, map[string]any{"quantity": "2.5", "expiration_date": "2026-12-31"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry := decode[StockEntryResponse](t, rec)
	require.NotNil(t, entry.ExpirationDate)
	assert.Equal(t, "2026-12-31", *entry.ExpirationDate)

	rec = do(t, h, http.MethodPut, "/api/stock-entries/"+strconv.FormatInt(entry.ID, 10),
		map[string]any{"quantity": "3", "expiration_date": ""})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/materials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	materials := decode[[]MaterialResponse](t, rec)
	require.Len(t, materials, 2)
	assert.True(t, materials[0].Quantity.Equal(dec("5")))
	require.Len(t, materials[0].Entries, 1)
	assert.True(t, materials[0].Entries[0].Quantity.Equal(dec("3")))
	assert.Nil(t, materials[0].Entries[0].ExpirationDate)
	assert.Empty(t, materials[1].Entries)

	rec = do(t, h, http.MethodPut, "/api/stock-entries/999", map[string]any{"quantity": "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "entry_not_found", decode[ErrorResponse](t, rec).Error)

	rec = do(t, h, http.MethodPost, path, map[string]any{"quantity": "1", "expiration_date": "31/12/2026"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/materials/999/entries", map[string]any{"quantity": "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
