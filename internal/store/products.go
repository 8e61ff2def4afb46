package store

import (
	"context"
	"time"

	"github.com/Aayushkhairnar2101/Billing-system/types"
)

// ProductRepository handles persistence for products.
type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListByUser returns all products owned by the user in storage order.
func (r *ProductRepository) ListByUser(ctx context.Context, userID int64) ([]types.Product, error) {
	mu := r.db.lock(productsFile)
	mu.Lock()
	defer mu.Unlock()

	matches := make([]types.Product, 0)
	for _, product := range loadCollection[types.Product](r.db, productsFile) {
		if product.UserID == userID {
			matches = append(matches, product)
		}
	}
	return matches, nil
}

// Create appends the product to the collection, assigning the id and
// creation timestamp.
func (r *ProductRepository) Create(ctx context.Context, product types.Product) (types.Product, error) {
	mu := r.db.lock(productsFile)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	product.ID = now.UnixMilli()
	product.CreatedAt = now

	products := append(loadCollection[types.Product](r.db, productsFile), product)
	if err := saveCollection(r.db, productsFile, products); err != nil {
		return types.Product{}, err
	}
	return product, nil
}

// Update applies the patch to the first product with a matching id.
// Patch fields that are absent or falsy (empty name or image, zero
// price) leave the stored value unchanged.
func (r *ProductRepository) Update(ctx context.Context, id int64, patch types.ProductPatch) (types.Product, error) {
	mu := r.db.lock(productsFile)
	mu.Lock()
	defer mu.Unlock()

	products := loadCollection[types.Product](r.db, productsFile)
	for i := range products {
		if products[i].ID != id {
			continue
		}

		if patch.Name != "" {
			products[i].Name = patch.Name
		}
		if patch.Price != nil && *patch.Price != 0 {
			products[i].Price = *patch.Price
		}
		if patch.Image != nil && *patch.Image != "" {
			products[i].Image = patch.Image
		}

		if err := saveCollection(r.db, productsFile, products); err != nil {
			return types.Product{}, err
		}
		return products[i], nil
	}
	return types.Product{}, ErrNotFound
}

// Delete removes every product with a matching id. Deleting an id that
// does not exist is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	mu := r.db.lock(productsFile)
	mu.Lock()
	defer mu.Unlock()

	products := loadCollection[types.Product](r.db, productsFile)
	remaining := make([]types.Product, 0, len(products))
	for _, product := range products {
		if product.ID != id {
			remaining = append(remaining, product)
		}
	}
	return saveCollection(r.db, productsFile, remaining)
}
