package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Aayushkhairnar2101/Billing-system/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(t.TempDir(), logger)
	require.NoError(t, err)
	return db
}

func strptr(s string) *string { return &s }

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	products, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoadCorruptFileYieldsEmpty(t *testing.T) {
	db := newTestDB(t)
	path := filepath.Join(db.dir, productsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewProductRepository(db)
	products, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, products)

	// A subsequent write replaces the corrupt file with a valid collection.
	_, err = repo.Create(context.Background(), types.Product{UserID: 1, Name: "Widget", Price: 5})
	require.NoError(t, err)

	products, err = repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Create(context.Background(), types.User{Username: "ana", Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(db.dir, usersFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"))
	assert.Contains(t, string(data), "\n    \"username\": \"ana\"")
}

func TestUserRepositoryLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.User{Username: "ana", Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byName, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	// Username matching is exact and case-sensitive.
	_, err = repo.GetByUsername(ctx, "Ana")
	assert.ErrorIs(t, err, ErrNotFound)

	byCreds, err := repo.GetByCredentials(ctx, "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCreds.ID)

	_, err = repo.GetByCredentials(ctx, "ana", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProductUpdateSkipsFalsyFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.Product{UserID: 7, Name: "Widget", Price: 5, Image: strptr("w.png")})
	require.NoError(t, err)

	zero := types.FlexFloat64(0)
	updated, err := repo.Update(ctx, created.ID, types.ProductPatch{Name: "", Price: &zero, Image: strptr("")})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, types.FlexFloat64(5), updated.Price)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "w.png", *updated.Image)

	price := types.FlexFloat64(9.99)
	updated, err = repo.Update(ctx, created.ID, types.ProductPatch{Name: "Gadget", Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, types.FlexFloat64(9.99), updated.Price)

	_, err = repo.Update(ctx, created.ID+1, types.ProductPatch{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.Product{UserID: 7, Name: "Widget", Price: 5})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	kept, err := repo.Create(ctx, types.Product{UserID: 7, Name: "Gadget", Price: 6})
	require.NoError(t, err)

	// Unknown id: nothing removed, still no error.
	require.NoError(t, repo.Delete(ctx, created.ID+kept.ID))
	products, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	require.NoError(t, repo.Delete(ctx, created.ID))
	products, err = repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, kept.ID, products[0].ID)
}

func TestProductNaNPricePersistsAsNull(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, types.Product{UserID: 7, Name: "Widget", Price: types.FlexFloat64(math.NaN())})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(db.dir, productsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"price\": null")

	products, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, math.IsNaN(products[0].Price.Float64()))
}

func TestInvoiceRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	subtotal := 10.0
	created, err := repo.Create(ctx, types.Invoice{
		UserID:       1,
		CustomerName: "Acme",
		Items:        json.RawMessage(`[{"name":"Widget","qty":2,"price":5}]`),
		Subtotal:     &subtotal,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	invoices, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "Acme", invoices[0].CustomerName)
	assert.JSONEq(t, `[{"name":"Widget","qty":2,"price":5}]`, string(invoices[0].Items))
	require.NotNil(t, invoices[0].Subtotal)
	assert.Equal(t, 10.0, *invoices[0].Subtotal)
	assert.Nil(t, invoices[0].GST)

	// Totals that were never supplied stay absent in the stored file.
	data, err := os.ReadFile(filepath.Join(db.dir, invoicesFile))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\"gst\"")

	other, err := repo.ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}
