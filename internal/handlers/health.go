package handlers

import "net/http"

// HealthResponse reports service liveness and the configured port.
type HealthResponse struct {
	Status string `json:"status"`
	Port   int    `json:"port"`
}

// Health returns a liveness handler bound to the configured port.
func Health(port int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status: "Server is running",
			Port:   port,
		})
	}
}
