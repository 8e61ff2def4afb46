package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aayushkhairnar2101/Billing-system/internal/services"
	"github.com/Aayushkhairnar2101/Billing-system/types"
	"github.com/go-chi/chi/v5"
)

// InvoiceHandler provides endpoints for creating and listing invoices.
type InvoiceHandler struct {
	billing *services.BillingService
}

// NewInvoiceHandler constructs a handler with the provided service.
func NewInvoiceHandler(billing *services.BillingService) *InvoiceHandler {
	return &InvoiceHandler{billing: billing}
}

// InvoiceRouter registers invoice routes on the given router.
func InvoiceRouter(r chi.Router, billing *services.BillingService) {
	handler := NewInvoiceHandler(billing)

	r.Post("/", handler.CreateInvoice)
	r.Get("/{userID}", handler.ListInvoices)
}

// ListInvoices returns every invoice owned by the user in the path.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	userID := parsePathID(r, "userID")

	invoices, err := h.billing.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load invoices")
		return
	}

	writeJSON(w, http.StatusOK, invoices)
}

// CreateInvoice appends an invoice snapshot for the caller.
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req InvoiceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.billing.Create(r.Context(), services.CreateInvoiceParams{
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		Items:        req.Items,
		Subtotal:     req.Subtotal,
		GST:          req.GST,
		Total:        req.Total,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to save invoice")
		return
	}

	writeJSON(w, http.StatusOK, InvoiceResponse{
		Success: true,
		Message: "Invoice saved",
		Invoice: invoice,
	})
}

// InvoiceCreateRequest is the JSON payload for creating an invoice.
// Items are taken verbatim; totals are optional and never recomputed.
type InvoiceCreateRequest struct {
	UserID       types.FlexInt64 `json:"userId"`
	CustomerName string          `json:"customerName"`
	Items        json.RawMessage `json:"items"`
	Subtotal     *float64        `json:"subtotal"`
	GST          *float64        `json:"gst"`
	Total        *float64        `json:"total"`
}

// InvoiceResponse is the success payload for invoice creation.
type InvoiceResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Invoice types.Invoice `json:"invoice"`
}
