package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/keianmejia/maribelle-api/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShopProductsSearch(t *testing.T) {
	router := setupRouter(t, storefrontBackend())

	recorder := doJSON(t, router, http.MethodGet, "/shop/products?search=blue", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	products := decodeBody(t, recorder)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].(map[string]any)["id"])
}

func TestGetShopProductsStaleQueryAnswersNoContent(t *testing.T) {
	backend := storefrontBackend()
	router := setupRouter(t, backend)

	backend.onQuery = func() {
		// The same visitor fires a newer query while this one is in flight.
		backend.onQuery = nil
		_, err := Catalog.FetchProducts(context.Background(), catalog.FetchOptions{Client: "visitor-1"})
		require.NoError(t, err)
	}

	recorder := doJSON(t, router, http.MethodGet, "/shop/products", nil, visitorCookie())

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestGetShopProductsUnaffectedByOtherVisitors(t *testing.T) {
	backend := storefrontBackend()
	router := setupRouter(t, backend)

	backend.onQuery = func() {
		// A different visitor queries while this one is in flight. Their
		// fetch must not supersede ours.
		backend.onQuery = nil
		_, err := Catalog.FetchProducts(context.Background(), catalog.FetchOptions{Client: "visitor-2"})
		require.NoError(t, err)
	}

	recorder := doJSON(t, router, http.MethodGet, "/shop/products", nil, visitorCookie())
	require.Equal(t, http.StatusOK, recorder.Code)

	products := decodeBody(t, recorder)["products"].([]any)
	assert.Len(t, products, 2)
}

func TestGetShopProductNotFound(t *testing.T) {
	router := setupRouter(t, storefrontBackend())

	recorder := doJSON(t, router, http.MethodGet, "/shop/products/missing", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Product not found", decodeBody(t, recorder)["message"])
}

func TestGetShopCategories(t *testing.T) {
	router := setupRouter(t, storefrontBackend())

	recorder := doJSON(t, router, http.MethodGet, "/shop/categories", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	categories := decodeBody(t, recorder)["categories"].([]any)
	assert.Equal(t, []any{"bottoms", "tops"}, categories)
}
