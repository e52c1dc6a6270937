package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/magazyn-io/magazyn/internal/metrics"
)

// ExportProductsHandler godoc
// @Summary Export the product list with resolved category names
// @Tags export
// @Produce text/csv, application/json
// @Param format query string false "Export format (csv or json, default csv)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid format"
// @Failure 500 {string} string "Internal error"
// @Router /products/export [get]
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	names := metrics.CategoryNameMap(categories)

	rows := make([]ExportedProduct, len(products))
	for i, p := range products {
		rows[i] = ExportedProduct{
			Name:     p.Name,
			Category: metrics.CategoryNameFor(p, names),
			Quantity: p.Quantity,
			Price:    p.Price,
		}
	}

	if format == "json" {
		if err := writeJSON(w, http.StatusOK, rows); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"name", "category", "quantity", "price"})
	for _, row := range rows {
		writer.Write([]string{
			row.Name,
			row.Category,
			strconv.Itoa(row.Quantity),
			row.Price.String(),
		})
	}
}
