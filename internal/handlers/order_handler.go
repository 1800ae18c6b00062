package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/models"
)

// OrderStore appends ink orders. *repository.OrderRepository satisfies it.
type OrderStore interface {
	Create(ctx context.Context, order *models.InkOrder) (string, error)
}

// NotificationScheduler queues an order notification without blocking.
// *mailer.Dispatcher satisfies it.
type NotificationScheduler interface {
	Enqueue(order models.InkOrder, business models.Business) bool
}

type OrderHandler struct {
	orders    OrderStore
	business  BusinessStore
	scheduler NotificationScheduler
}

func NewOrderHandler(orders OrderStore, business BusinessStore, scheduler NotificationScheduler) *OrderHandler {
	return &OrderHandler{orders: orders, business: business, scheduler: scheduler}
}

// Create handles POST /orders/ink. The order is persisted before anything
// else happens; notification is scheduled only after the response is written
// and can never turn a stored order into a failure.
func (h *OrderHandler) Create(c *gin.Context) {
	var order models.InkOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.orders.Create(c.Request.Context(), &order); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not store order"})
		return
	}

	business, err := h.business.Find(c.Request.Context())
	if err != nil {
		log.Printf("[orders] business lookup failed, skipping notification: %v", err)
	}
	if business == nil {
		// Order is stored; there is simply no notification target.
		c.JSON(http.StatusOK, gin.H{"status": "stored", "email": "not_configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})

	// The response is already written. A full queue only costs the email.
	if !h.scheduler.Enqueue(order, business.Business) {
		log.Printf("[orders] notification queue full, dropping notification for %s", order.CustomerEmail)
	}
}
