package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Aayushkhairnar2101/Billing-system/internal/services"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// writeServiceError maps a service failure onto its HTTP status. Anything
// that is not a typed service error is a storage failure and answers 500.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		writeError(w, statusForKind(svcErr.Kind), svcErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, fallback)
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindAuth:
		return http.StatusUnauthorized
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// parsePathID normalizes a numeric path parameter. A non-numeric value
// parses to zero, which matches no stored record.
func parsePathID(r *http.Request, key string) int64 {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ErrorResponse is the failure payload shared by every route.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the payload for mutations with no entity to return.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
