package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/magazyn-io/magazyn/internal/alert"
	"github.com/magazyn-io/magazyn/internal/metrics"
)

// SendLowStockAlertHandler godoc
// @Summary Send a low-stock alert email
// @Description Manual trigger; emails the configured recipient one line per low-stock product
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param threshold query int false "Low-stock threshold (default from configuration)"
// @Success 200 {object} AlertResult
// @Failure 400 {string} string "Invalid threshold"
// @Failure 502 {string} string "Delivery failed"
// @Failure 503 {string} string "Mailer not configured"
// @Router /alerts/low-stock [post]
func SendLowStockAlertHandler(w http.ResponseWriter, r *http.Request) {
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
	if len(low) == 0 {
		writeJSON(w, http.StatusOK, AlertResult{
			Message:   "no products at or below threshold, nothing to send",
			ItemCount: 0,
		})
		return
	}

	if err := alertSender.SendLowStock(low); err != nil {
		if errors.Is(err, alert.ErrNotConfigured) {
			http.Error(w, "alert mailer is not configured", http.StatusServiceUnavailable)
			return
		}
		log.Printf("Failed to send low-stock alert: %v", err)
		http.Error(w, "could not deliver alert email", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, AlertResult{
		Message:   "low-stock alert sent",
		ItemCount: len(low),
	})
}
