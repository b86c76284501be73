package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/restomesa/restomesa/internal/catalog"
	"github.com/restomesa/restomesa/internal/invoices"
	"github.com/restomesa/restomesa/internal/orders"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	handler *Handler
	router  http.Handler
	catalog *catalog.Service
	orders  *orders.Service
}

func newTestEnv() *testEnv {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // Reduce noise in tests

	catalogSvc := catalog.NewService(logger)
	orderSvc := orders.NewService(logger)
	invoiceSvc := invoices.NewService(orderSvc, logger)
	handler := NewHandler(catalogSvc, orderSvc, invoiceSvc, logger)

	return &testEnv{
		handler: handler,
		router:  handler.Router(),
		catalog: catalogSvc,
		orders:  orderSvc,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestCreateFood(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, "POST", "/products/food", map[string]interface{}{
		"name": "Sopa", "price": 5.0, "kind": "entrada", "vegetarian": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "food", resp["type"])
	assert.InDelta(t, 5.0, resp["final_price"], 1e-9)
}

func TestCreateFoodRejectsBadInput(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, "POST", "/products/food", map[string]interface{}{
		"name": "Sopa", "price": -1.0, "kind": "entrada",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/products/food", map[string]interface{}{
		"name": "  ", "price": 5.0, "kind": "entrada",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 0, env.catalog.Count())
}

func TestCreateComboResolvesItems(t *testing.T) {
	env := newTestEnv()
	env.do(t, "POST", "/products/food", map[string]interface{}{
		"name": "Pizza", "price": 20.0, "kind": "principal",
	})

	rec := env.do(t, "POST", "/products/combo", map[string]interface{}{
		"name": "Combo Solo", "discount_percent": 10.0, "items": []string{"pizza"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 18.0, resp["final_price"], 1e-9)
}

func TestCreateComboUnknownItem(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, "POST", "/products/combo", map[string]interface{}{
		"name": "Combo Solo", "discount_percent": 10.0, "items": []string{"nada"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, env.catalog.Count(), "bad item list must not insert the combo")
}

func TestListProductsByType(t *testing.T) {
	env := newTestEnv()
	env.catalog.Seed()

	rec := env.do(t, "GET", "/products?type=drink", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, "GET", "/products/nada", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv()
	env.catalog.Seed()

	// Create the order for a customer.
	rec := env.do(t, "POST", "/orders", map[string]interface{}{"customer_name": "Ana"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, "customer", order["origin"])
	assert.Equal(t, "pending", order["status"])

	// Add a product by catalog name.
	rec = env.do(t, "POST", "/orders/1/items", map[string]interface{}{"product": "Coca-Cola"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.InDelta(t, 3.0, order["total"], 1e-9) // 2.50 * 1.2

	// Issue the invoice.
	rec = env.do(t, "POST", "/invoices", map[string]interface{}{
		"order_id": 1, "customer_name": "Ana",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var invoice map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &invoice))
	assert.Equal(t, float64(1), invoice["number"])
	assert.InDelta(t, 3.0, invoice["total"], 1e-9)

	// The order is now completed; a second issuance conflicts.
	rec = env.do(t, "POST", "/invoices", map[string]interface{}{
		"order_id": 1, "customer_name": "Ana",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, "GET", "/orders/1", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "completed", order["status"])
}

func TestIssueInvoiceUnknownOrder(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, "POST", "/invoices", map[string]interface{}{
		"order_id": 999, "customer_name": "Ana",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIssueInvoiceEmptyOrder(t *testing.T) {
	env := newTestEnv()
	order := env.orders.Create()

	rec := env.do(t, "POST", "/invoices", map[string]interface{}{
		"order_id": order.ID(), "customer_name": "Ana",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddItemToMissingOrder(t *testing.T) {
	env := newTestEnv()
	env.catalog.Seed()

	rec := env.do(t, "POST", "/orders/999/items", map[string]interface{}{"product": "Coca-Cola"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReceiptEndpoint(t *testing.T) {
	env := newTestEnv()
	env.catalog.Seed()

	env.do(t, "POST", "/orders", nil)
	env.do(t, "POST", "/orders/1/items", map[string]interface{}{"product": "Tiramisú"})
	rec := env.do(t, "POST", "/invoices", map[string]interface{}{
		"order_id": 1, "customer_name": "Ana",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, "GET", "/invoices/1/receipt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))

	body := rec.Body.String()
	assert.Contains(t, body, "FACTURA #1")
	assert.Contains(t, body, "Cliente: Ana")
	assert.Contains(t, body, fmt.Sprintf("TOTAL: $%.2f", 6.99))
}

func TestGetInvoiceNotFound(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, "GET", "/invoices/41", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoiceSummary(t *testing.T) {
	env := newTestEnv()
	env.catalog.Seed()

	env.do(t, "POST", "/orders", nil)
	env.do(t, "POST", "/orders/1/items", map[string]interface{}{"product": "Agua Mineral"})
	env.do(t, "POST", "/invoices", map[string]interface{}{"order_id": 1, "customer_name": "Ana"})

	rec := env.do(t, "GET", "/invoices/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, float64(1), summary["count"])
	assert.InDelta(t, 1.50, summary["total_billed"], 1e-9)
	assert.NotNil(t, summary["highest"])
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv()
	order := env.orders.Create()

	rec := env.do(t, "PUT", fmt.Sprintf("/orders/%d/status", order.ID()),
		map[string]interface{}{"status": "cancelled"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body["status"])

	rec = env.do(t, "PUT", "/orders/999/status", map[string]interface{}{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
