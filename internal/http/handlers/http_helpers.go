package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// thresholdFromQuery reads an optional non-negative threshold query
// parameter, falling back to the configured default. The bool reports
// whether the value was valid.
func thresholdFromQuery(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("threshold")
	if raw == "" {
		return defaultThreshold, true
	}
	t, err := strconv.Atoi(raw)
	if err != nil || t < 0 {
		return 0, false
	}
	return t, true
}
