package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-api/internal/models"
)

// A malformed identifier must fail before any store round trip. The nil
// collection makes that structural: reaching the store would panic.
func TestReplaceInvalidIDFailsFast(t *testing.T) {
	r := NewProductRepository(nil)

	price := 10.0
	product := &models.Product{Title: "Ink", Price: &price, Category: "ink"}
	err := r.Replace(context.Background(), "not-a-hex-id", product)

	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDeleteInvalidIDFailsFast(t *testing.T) {
	r := NewProductRepository(nil)

	err := r.Delete(context.Background(), "xyz")

	assert.ErrorIs(t, err, ErrInvalidID)
}
