package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/controllers"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProductService struct {
	products []models.Product
	slugErr  *services.ServiceError
}

func (f *fakeProductService) ListProducts(context.Context) ([]models.Product, *services.ServiceError) {
	return f.products, nil
}

func (f *fakeProductService) GetProductBySlug(_ context.Context, slug string) (*models.Product, *services.ServiceError) {
	if f.slugErr != nil {
		return nil, f.slugErr
	}
	for i := range f.products {
		if f.products[i].Slug == slug {
			return &f.products[i], nil
		}
	}
	return nil, &services.ServiceError{StatusCode: 404, Message: "Product not found"}
}

// nil cache: every lookup goes straight to the service.
func productRouter(svc *fakeProductService) *gin.Engine {
	r := gin.New()
	pc := controllers.NewProductController(svc, nil)
	r.GET("/api/products", pc.GetProducts)
	r.GET("/api/products/:slug", pc.GetProductBySlug)
	return r
}

func TestGetProducts_OK(t *testing.T) {
	svc := &fakeProductService{products: []models.Product{
		{ID: 1, Slug: "tee-black", Title: "TEE — BLACK", Price: 40},
		{ID: 2, Slug: "tee-white", Title: "TEE — WHITE", Price: 40},
	}}
	router := productRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "tee-black")
	assert.Contains(t, w.Body.String(), "tee-white")
}

func TestGetProductBySlug_OK(t *testing.T) {
	svc := &fakeProductService{products: []models.Product{
		{ID: 1, Slug: "tee-black", Title: "TEE — BLACK", Price: 40},
	}}
	router := productRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products/tee-black", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"tee-black"`)
}

func TestGetProductBySlug_NotFound(t *testing.T) {
	svc := &fakeProductService{}
	router := productRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products/no-such-slug", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}
