package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/magazyn-io/magazyn/internal/metrics"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics computed from the current product snapshot
// @Tags metrics
// @Produce json
// @Param threshold query int false "Low-stock threshold (default from configuration)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {string} string "Invalid threshold"
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := thresholdFromQuery(r)
	if !ok {
		http.Error(w, "threshold must be a non-negative integer", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	summary := metrics.Summarize(products, threshold)
	low := metrics.LowStock(products, threshold)

	resp := DashboardResponse{
		TotalProducts: summary.TotalProducts,
		TotalUnits:    summary.TotalUnits,
		TotalValue:    summary.TotalValue,
		LowStockCount: summary.LowStockCount,
		Threshold:     threshold,
		LowStock:      make([]ProductResponse, len(low)),
	}
	for i, p := range low {
		resp.LowStock[i] = toProductResponse(p, threshold)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetLowStockHandler godoc
// @Summary List products at or below the low-stock threshold
// @Tags metrics
// @Produce json
// @Param threshold query int false "Low-stock threshold (default from configuration)"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid threshold"
// @Failure 500 {string} string "Internal error"
// @Router /products/low-stock [get]
func GetLowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := thresholdFromQuery(r)
	if !ok {
		http.Error(w, "threshold must be a non-negative integer", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	low := metrics.LowStock(products, threshold)
	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(low)),
		Meta: Meta{TotalCount: len(low)},
	}
	for i, p := range low {
		resp.Data[i] = toProductResponse(p, threshold)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
