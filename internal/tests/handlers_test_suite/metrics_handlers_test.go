package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	api "github.com/magazyn-io/magazyn/internal/http"
	handler "github.com/magazyn-io/magazyn/internal/http/handlers"
)

func seedWarehouse(r http.Handler) {
	fruits := mustCreateCatalog(r, "Fruits")
	baking := mustCreateCatalog(r, "Baking")

	createProduct(r, handler.ProductRequest{Name: "Apple", CategoryID: fruits, Quantity: 3, Price: decimal.NewFromFloat(2.5)})
	createProduct(r, handler.ProductRequest{Name: "Flour", CategoryID: baking, Quantity: 20, Price: decimal.NewFromFloat(4.0)})
	createProduct(r, handler.ProductRequest{Name: "Salt", CategoryID: baking, Quantity: 0, Price: decimal.NewFromFloat(1.2)})
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seedWarehouse(r)

	w := doGet(r, "/metrics/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.DashboardResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", resp.TotalProducts)
	}
	if resp.TotalUnits != 23 {
		t.Errorf("expected 23 units, got %d", resp.TotalUnits)
	}
	if !resp.TotalValue.Equal(decimal.NewFromFloat(87.5)) {
		t.Errorf("expected total value 87.5, got %s", resp.TotalValue)
	}
	if resp.Threshold != 5 {
		t.Errorf("expected default threshold 5, got %d", resp.Threshold)
	}
	if resp.LowStockCount != 2 || len(resp.LowStock) != 2 {
		t.Errorf("expected 2 low-stock products, got count=%d rows=%d", resp.LowStockCount, len(resp.LowStock))
	}
}

func TestGetDashboardMetricsHandler_CustomThreshold(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seedWarehouse(r)

	w := doGet(r, "/metrics/dashboard?threshold=0")
	var resp handler.DashboardResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.LowStockCount != 1 {
		t.Errorf("expected only the out-of-stock product at threshold 0, got %d", resp.LowStockCount)
	}
	if len(resp.LowStock) != 1 || resp.LowStock[0].Name != "Salt" {
		t.Errorf("expected Salt to be the only low-stock product, got %+v", resp.LowStock)
	}
	if resp.LowStock[0].Status != "out_of_stock" {
		t.Errorf("expected out_of_stock status, got %q", resp.LowStock[0].Status)
	}
}

func TestGetDashboardMetricsHandler_InvalidThreshold(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	for _, q := range []string{"threshold=-1", "threshold=abc"} {
		w := doGet(r, "/metrics/dashboard?"+q)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request for %q, got %d", q, w.Code)
		}
	}
}

func TestGetLowStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seedWarehouse(r)

	w := doGet(r, "/products/low-stock?threshold=20")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductsSearchResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 3 {
		t.Errorf("expected all 3 products at threshold 20, got %d", resp.Meta.TotalCount)
	}

	w = doGet(r, "/products/low-stock")
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Meta.TotalCount != 2 {
		t.Errorf("expected 2 products at the default threshold, got %d", resp.Meta.TotalCount)
	}
}

// End-to-end walk of the basic flow: one category, one product, metrics.
func TestDashboardEndToEnd(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCatalog(r, "Fruits")
	if catID != 1 {
		t.Fatalf("expected first category id 1, got %d", catID)
	}

	var created handler.ProductResponse
	json.NewDecoder(createProduct(r, handler.ProductRequest{
		Name: "Apple", CategoryID: catID, Quantity: 3, Price: decimal.NewFromFloat(2.5),
	}).Body).Decode(&created)
	if created.Id != 1 {
		t.Fatalf("expected first product id 1, got %d", created.Id)
	}

	var low handler.ProductsSearchResult
	json.NewDecoder(doGet(r, "/products/low-stock?threshold=5").Body).Decode(&low)
	if len(low.Data) != 1 || low.Data[0].Name != "Apple" {
		t.Errorf("expected Apple in the low-stock list, got %+v", low.Data)
	}

	var dash handler.DashboardResponse
	json.NewDecoder(doGet(r, "/metrics/dashboard").Body).Decode(&dash)
	if !dash.TotalValue.Equal(decimal.NewFromFloat(7.5)) {
		t.Errorf("expected inventory value 7.5, got %s", dash.TotalValue)
	}
}
