package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusinessRouter(store *fakeBusinessStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBusinessHandler(store)
	router.GET("/business", h.Get)
	router.GET("/admin/business", h.AdminGet)
	router.PUT("/admin/business", h.Upsert)
	return router
}

func TestGetBusinessUnconfigured(t *testing.T) {
	router := newBusinessRouter(&fakeBusinessStore{})

	w := doGet(router, "/business")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestUpsertBusinessCreatesThenUpdates(t *testing.T) {
	store := &fakeBusinessStore{}
	router := newBusinessRouter(store)

	first := `{"name":"Laxmi Enterprise","email":"owner@example.com","phone":"111"}`
	w := doJSON(router, http.MethodPut, "/admin/business", first)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"created":true}`, w.Body.String())

	second := `{"name":"Laxmi Enterprise","email":"owner@example.com","phone":"222"}`
	w = doJSON(router, http.MethodPut, "/admin/business", second)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":true}`, w.Body.String())

	// Still exactly one record, reflecting the second payload.
	require.NotNil(t, store.business)
	assert.Equal(t, "222", store.business.Phone)

	w = doGet(router, "/business")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "222", resp["phone"])
	assert.NotContains(t, resp, "id", "public read must not expose identity")
}

func TestAdminGetBusinessIncludesID(t *testing.T) {
	store := &fakeBusinessStore{}
	router := newBusinessRouter(store)

	doJSON(router, http.MethodPut, "/admin/business", `{"name":"Shop","email":"owner@example.com"}`)

	w := doGet(router, "/admin/business")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, store.business.ID.Hex(), resp["id"])
}

func TestUpsertBusinessValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"owner@example.com"}`},
		{"missing email", `{"name":"Shop"}`},
		{"bad email", `{"name":"Shop","email":"not-an-email"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeBusinessStore{}
			router := newBusinessRouter(store)

			w := doJSON(router, http.MethodPut, "/admin/business", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, store.business)
		})
	}
}
