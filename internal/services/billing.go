package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Aayushkhairnar2101/Billing-system/types"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]types.Invoice, error)
	Create(ctx context.Context, invoice types.Invoice) (types.Invoice, error)
}

// BillingService encapsulates invoice use-cases.
type BillingService struct {
	repo InvoiceRepository
}

func NewBillingService(repo InvoiceRepository) *BillingService {
	return &BillingService{repo: repo}
}

// CreateInvoiceParams carries the fields of an invoice creation request.
// Items and totals arrive computed by the client and are stored verbatim;
// absent totals stay absent in the stored record.
type CreateInvoiceParams struct {
	UserID       types.FlexInt64
	CustomerName string
	Items        json.RawMessage
	Subtotal     *float64
	GST          *float64
	Total        *float64
}

// ListByUser returns the user's invoices in insertion order.
func (s *BillingService) ListByUser(ctx context.Context, userID int64) ([]types.Invoice, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create validates required fields and appends the new invoice.
func (s *BillingService) Create(ctx context.Context, p CreateInvoiceParams) (types.Invoice, error) {
	if p.UserID == 0 || p.CustomerName == "" || !itemsPresent(p.Items) {
		return types.Invoice{}, validationError("Missing required fields")
	}

	return s.repo.Create(ctx, types.Invoice{
		UserID:       p.UserID.Int64(),
		CustomerName: p.CustomerName,
		Items:        p.Items,
		Subtotal:     p.Subtotal,
		GST:          p.GST,
		Total:        p.Total,
	})
}

func itemsPresent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}
