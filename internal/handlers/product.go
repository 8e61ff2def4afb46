package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aayushkhairnar2101/Billing-system/internal/services"
	"github.com/Aayushkhairnar2101/Billing-system/types"
	"github.com/go-chi/chi/v5"
)

// ProductHandler provides CRUD endpoints for a user's catalog.
type ProductHandler struct {
	catalog *services.CatalogService
}

// NewProductHandler constructs a handler with the provided service.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ProductRouter registers product routes on the given router.
func ProductRouter(r chi.Router, catalog *services.CatalogService) {
	handler := NewProductHandler(catalog)

	r.Post("/", handler.CreateProduct)
	r.Get("/{userID}", handler.ListProducts)
	r.Put("/{productID}", handler.UpdateProduct)
	r.Delete("/{productID}", handler.DeleteProduct)
}

// ListProducts returns every product owned by the user in the path.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	userID := parsePathID(r, "userID")

	products, err := h.catalog.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// CreateProduct appends a product to the caller's catalog.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalog.Create(r.Context(), services.CreateProductParams{
		UserID: req.UserID,
		Name:   req.Name,
		Price:  req.Price,
		Image:  req.Image,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to save product")
		return
	}

	writeJSON(w, http.StatusOK, ProductResponse{
		Success: true,
		Message: "Product added",
		Product: product,
	})
}

// UpdateProduct applies a partial update to the product in the path.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := parsePathID(r, "productID")

	var req ProductUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalog.Update(r.Context(), productID, types.ProductPatch{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to save product")
		return
	}

	writeJSON(w, http.StatusOK, ProductResponse{
		Success: true,
		Message: "Product updated",
		Product: product,
	})
}

// DeleteProduct removes the product in the path. Deleting an unknown id
// still reports success.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := parsePathID(r, "productID")

	if err := h.catalog.Delete(r.Context(), productID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save products")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Product deleted",
	})
}

// ProductUpsertRequest is the JSON payload for creating or updating a
// product. UserID and Price tolerate numeric strings.
type ProductUpsertRequest struct {
	UserID types.FlexInt64    `json:"userId"`
	Name   string             `json:"name"`
	Price  *types.FlexFloat64 `json:"price"`
	Image  *string            `json:"image"`
}

// ProductResponse is the success payload for product mutations.
type ProductResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Product types.Product `json:"product"`
}
