package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler serves the liveness message and the store diagnostics read.
// Diagnostics are failure-opaque: probe errors are rendered inside the
// response body, never as an HTTP error.
type HealthHandler struct {
	db            *mongo.Database
	uriConfigured bool
}

func NewHealthHandler(db *mongo.Database, uriConfigured bool) *HealthHandler {
	return &HealthHandler{db: db, uriConfigured: uriConfigured}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Storefront backend running"})
}

// Diagnostics handles GET /test. Always 200.
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "available"
	resp["database_name"] = h.db.Name()
	resp["connection_status"] = "connected"
	if h.uriConfigured {
		resp["database_url"] = "set"
	} else {
		resp["database_url"] = "not set"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		resp["database"] = fmt.Sprintf("connected but error: %.80s", err.Error())
		c.JSON(http.StatusOK, resp)
		return
	}

	if len(names) > 10 {
		names = names[:10]
	}
	resp["database"] = "connected"
	resp["collections"] = names
	c.JSON(http.StatusOK, resp)
}
