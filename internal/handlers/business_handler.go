package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
)

// BusinessStore is the singleton-profile persistence surface.
// *repository.BusinessRepository satisfies it.
type BusinessStore interface {
	Find(ctx context.Context) (*models.StoredBusiness, error)
	Upsert(ctx context.Context, business *models.Business) (created bool, err error)
}

type BusinessHandler struct {
	store BusinessStore
}

func NewBusinessHandler(store BusinessStore) *BusinessHandler {
	return &BusinessHandler{store: store}
}

type adminBusiness struct {
	ID string `json:"id"`
	models.Business
}

// Get handles GET /business. An unconfigured profile is not an error: the
// response is 200 with a null body.
func (h *BusinessHandler) Get(c *gin.Context) {
	business, err := h.store.Find(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch business"})
		return
	}
	if business == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, business.Business)
}

// AdminGet handles GET /admin/business.
func (h *BusinessHandler) AdminGet(c *gin.Context) {
	business, err := h.store.Find(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch business"})
		return
	}
	if business == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, adminBusiness{ID: business.ID.Hex(), Business: business.Business})
}

// Upsert handles PUT /admin/business. This is the only way to mutate the
// profile; there is deliberately no separate create endpoint.
func (h *BusinessHandler) Upsert(c *gin.Context) {
	var business models.Business
	if err := c.ShouldBindJSON(&business); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.store.Upsert(c.Request.Context(), &business)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not save business"})
		return
	}
	if created {
		c.JSON(http.StatusOK, gin.H{"created": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
