package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
	"storefront-api/internal/repository"
)

// ProductStore is the catalog persistence surface the handler needs.
// *repository.ProductRepository satisfies it.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) (string, error)
	List(ctx context.Context, category string) ([]models.StoredProduct, error)
	Replace(ctx context.Context, id string, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// adminProduct is the admin-facing shape: the catalog payload plus the
// store identifier as an opaque string.
type adminProduct struct {
	ID string `json:"id"`
	models.Product
}

// List handles GET /products. Identifiers are never exposed here.
func (h *ProductHandler) List(c *gin.Context) {
	stored, err := h.store.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch products"})
		return
	}

	products := make([]models.Product, 0, len(stored))
	for _, p := range stored {
		products = append(products, p.Product)
	}
	c.JSON(http.StatusOK, products)
}

// AdminList handles GET /admin/products.
func (h *ProductHandler) AdminList(c *gin.Context) {
	stored, err := h.store.List(c.Request.Context(), "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch products"})
		return
	}

	products := make([]adminProduct, 0, len(stored))
	for _, p := range stored {
		products = append(products, adminProduct{ID: p.ID.Hex(), Product: p.Product})
	}
	c.JSON(http.StatusOK, products)
}

// Create handles POST /admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.store.Create(c.Request.Context(), &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Update handles PUT /admin/products/:id. Full replace of mutable fields.
func (h *ProductHandler) Update(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.Replace(c.Request.Context(), c.Param("id"), &product); err != nil {
		respondStoreError(c, err, "could not update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// Delete handles DELETE /admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "could not delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// respondStoreError maps repository errors to distinct statuses: a malformed
// identifier is the caller's fault, a missing record is 404, anything else
// is the store failing.
func respondStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
