package store

import (
	"context"
	"time"

	"github.com/Aayushkhairnar2101/Billing-system/types"
)

// InvoiceRepository handles persistence for invoices. Invoices are
// append-only; no update or delete exists.
type InvoiceRepository struct {
	db *DB
}

func NewInvoiceRepository(db *DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// ListByUser returns all invoices owned by the user in storage order.
func (r *InvoiceRepository) ListByUser(ctx context.Context, userID int64) ([]types.Invoice, error) {
	mu := r.db.lock(invoicesFile)
	mu.Lock()
	defer mu.Unlock()

	matches := make([]types.Invoice, 0)
	for _, invoice := range loadCollection[types.Invoice](r.db, invoicesFile) {
		if invoice.UserID == userID {
			matches = append(matches, invoice)
		}
	}
	return matches, nil
}

// Create appends the invoice to the collection, assigning the id and
// creation timestamp.
func (r *InvoiceRepository) Create(ctx context.Context, invoice types.Invoice) (types.Invoice, error) {
	mu := r.db.lock(invoicesFile)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	invoice.ID = now.UnixMilli()
	invoice.CreatedAt = now

	invoices := append(loadCollection[types.Invoice](r.db, invoicesFile), invoice)
	if err := saveCollection(r.db, invoicesFile, invoices); err != nil {
		return types.Invoice{}, err
	}
	return invoice, nil
}
