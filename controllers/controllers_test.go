package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/keianmejia/maribelle-api/catalog"
	"github.com/keianmejia/maribelle-api/middlewares"
	"github.com/keianmejia/maribelle-api/models"
	"github.com/stretchr/testify/require"
)

type memSlots struct {
	values map[string]string
}

func (m *memSlots) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memSlots) Set(key, value string) error {
	m.values[key] = value
	return nil
}

type stubBackend struct {
	products []models.Product
	created  []models.NewProduct
	updated  map[string]map[string]any
	deleted  []string
	inserted []models.ProductImage
	onQuery  func()
}

func (s *stubBackend) QueryProducts(context.Context, string) ([]models.Product, error) {
	if s.onQuery != nil {
		s.onQuery()
	}
	return s.products, nil
}

func (s *stubBackend) GetProduct(_ context.Context, id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (s *stubBackend) CreateProduct(_ context.Context, product models.NewProduct) (string, error) {
	s.created = append(s.created, product)
	return "new-id", nil
}

func (s *stubBackend) UpdateProduct(_ context.Context, id string, fields map[string]any) error {
	if s.updated == nil {
		s.updated = map[string]map[string]any{}
	}
	s.updated[id] = fields
	return nil
}

func (s *stubBackend) DeleteProduct(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBackend) InsertImage(_ context.Context, image models.ProductImage) error {
	s.inserted = append(s.inserted, image)
	return nil
}

func setupRouter(t *testing.T, backend catalog.Backend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	CartStorage = &memSlots{values: map[string]string{}}
	Backend = backend
	Catalog = catalog.NewAdapter(backend)
	Images = nil

	router := gin.New()
	router.GET("/shop/products", GetShopProducts)
	router.GET("/shop/products/:id", GetShopProduct)
	router.GET("/shop/categories", GetShopCategories)
	router.GET("/cart", GetCart)
	router.GET("/cart/count", GetCartCount)
	router.POST("/cart/items", AddCartItem)
	router.PATCH("/cart/items/:id", UpdateCartItem)
	router.DELETE("/cart/items/:id", RemoveCartItem)
	router.DELETE("/cart", ClearCart)
	router.POST("/checkout/preview", PreviewOrder)
	router.POST("/checkout/order", CopyOrder)

	gated := router.Group("/admin", middlewares.RequireSession())
	gated.GET("/session", GetSession)
	gated.POST("/products", CreateProduct)
	gated.PATCH("/products/:id", UpdateProduct)
	gated.POST("/products/:id/toggle-sold-out", ToggleSoldOut)
	gated.DELETE("/products/:id", DeleteProduct)
	gated.POST("/products/:id/images", UploadProductImages)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func newRecorder(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func visitorCookie() *http.Cookie {
	return &http.Cookie{Name: CartCookie, Value: "visitor-1"}
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := generateSessionToken(models.User{Fullname: "Admin", Email: "admin@example.com"})
	require.NoError(t, err)
	return &http.Cookie{Name: middlewares.SessionCookie, Value: token}
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
