package services

import (
	"context"
	"errors"

	"github.com/Aayushkhairnar2101/Billing-system/internal/store"
	"github.com/Aayushkhairnar2101/Billing-system/types"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]types.Product, error)
	Create(ctx context.Context, product types.Product) (types.Product, error)
	Update(ctx context.Context, id int64, patch types.ProductPatch) (types.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogService encapsulates product use-cases.
type CatalogService struct {
	repo ProductRepository
}

func NewCatalogService(repo ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// CreateProductParams carries the fields of a product creation request.
// UserID and Price accept JSON numbers or numeric strings; a price that
// never parses normalizes to NaN and is stored as-is.
type CreateProductParams struct {
	UserID types.FlexInt64
	Name   string
	Price  *types.FlexFloat64
	Image  *string
}

// ListByUser returns the user's products in insertion order.
func (s *CatalogService) ListByUser(ctx context.Context, userID int64) ([]types.Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create validates required fields and appends the new product.
func (s *CatalogService) Create(ctx context.Context, p CreateProductParams) (types.Product, error) {
	if p.UserID == 0 || p.Name == "" || p.Price == nil || *p.Price == 0 {
		return types.Product{}, validationError("Missing required fields")
	}

	return s.repo.Create(ctx, types.Product{
		UserID: p.UserID.Int64(),
		Name:   p.Name,
		Price:  *p.Price,
		Image:  p.Image,
	})
}

// Update applies a partial update to the product with the given id.
func (s *CatalogService) Update(ctx context.Context, productID int64, patch types.ProductPatch) (types.Product, error) {
	product, err := s.repo.Update(ctx, productID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Product{}, notFoundError("Product not found")
		}
		return types.Product{}, err
	}
	return product, nil
}

// Delete removes the product with the given id. Removing an id that does
// not exist still succeeds.
func (s *CatalogService) Delete(ctx context.Context, productID int64) error {
	return s.repo.Delete(ctx, productID)
}
