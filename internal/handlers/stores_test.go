package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/internal/models"
)

// In-memory fakes for the handler-side store interfaces.

type fakeProductStore struct {
	products   []models.StoredProduct
	createErr  error
	listErr    error
	replaceErr error
	deleteErr  error

	lastCategory string
}

func (f *fakeProductStore) Create(_ context.Context, product *models.Product) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	product.Normalize()
	stored := models.StoredProduct{ID: primitive.NewObjectID(), Product: *product}
	f.products = append(f.products, stored)
	return stored.ID.Hex(), nil
}

func (f *fakeProductStore) List(_ context.Context, category string) ([]models.StoredProduct, error) {
	f.lastCategory = category
	if f.listErr != nil {
		return nil, f.listErr
	}
	if category == "" {
		return f.products, nil
	}
	out := make([]models.StoredProduct, 0)
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) Replace(_ context.Context, id string, product *models.Product) error {
	return f.replaceErr
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	return f.deleteErr
}

type fakeBusinessStore struct {
	business  *models.StoredBusiness
	findErr   error
	upsertErr error
}

func (f *fakeBusinessStore) Find(_ context.Context) (*models.StoredBusiness, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.business, nil
}

func (f *fakeBusinessStore) Upsert(_ context.Context, business *models.Business) (bool, error) {
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	if f.business == nil {
		f.business = &models.StoredBusiness{ID: primitive.NewObjectID(), Business: *business}
		return true, nil
	}
	f.business.Business = *business
	return false, nil
}

type fakeOrderStore struct {
	orders    []models.InkOrder
	createErr error
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.InkOrder) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.orders = append(f.orders, *order)
	return primitive.NewObjectID().Hex(), nil
}

type fakeScheduler struct {
	enqueued []models.InkOrder
	full     bool
}

func (f *fakeScheduler) Enqueue(order models.InkOrder, business models.Business) bool {
	if f.full {
		return false
	}
	f.enqueued = append(f.enqueued, order)
	return true
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
