package handlers_test_suite

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	api "github.com/magazyn-io/magazyn/internal/http"
	handler "github.com/magazyn-io/magazyn/internal/http/handlers"
)

func TestExportProductsHandler_CSV(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seedWarehouse(r)

	w := doGet(r, "/products/export")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv content type, got %q", ct)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("error parsing CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d records", len(records))
	}

	header := records[0]
	for i, col := range []string{"name", "category", "quantity", "price"} {
		if header[i] != col {
			t.Errorf("expected header column %d to be %q, got %q", i, col, header[i])
		}
	}

	apple := records[1]
	if apple[0] != "Apple" || apple[1] != "Fruits" || apple[2] != "3" || apple[3] != "2.5" {
		t.Errorf("unexpected Apple row: %v", apple)
	}
}

func TestExportProductsHandler_UnknownCategory(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	catID := mustCreateCatalog(r, "Fruits")
	createProduct(r, handler.ProductRequest{
		Name: "Apple", CategoryID: catID, Quantity: 3, Price: decimal.NewFromFloat(2.5),
	})

	// Simulate a stale reference: the category snapshot no longer holds
	// the product's category.
	categoryRepo.Clear()

	w := doGet(r, "/products/export")
	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("error parsing CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(records))
	}
	if records[1][1] != "Unknown" {
		t.Errorf("expected Unknown category for stale reference, got %q", records[1][1])
	}
}

func TestExportProductsHandler_JSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	seedWarehouse(r)

	w := doGet(r, "/products/export?format=json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var rows []handler.ExportedProduct
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Name != "Apple" || rows[0].Category != "Fruits" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Category != "Baking" || rows[2].Category != "Baking" {
		t.Errorf("expected Baking category for Flour and Salt, got %+v", rows[1:])
	}
}

func TestExportProductsHandler_InvalidFormat(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doGet(r, "/products/export?format=xml")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
