package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HealthStatus is the /health response body
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func healthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := &HealthStatus{
			Status:  "healthy",
			Service: "yt-fetch",
			Version: version,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			slog.Default().Error("Failed to encode health response", "error", err)
		}
	}
}
