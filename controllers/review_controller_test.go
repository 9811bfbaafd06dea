package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-backend/controllers"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeReviewService struct {
	reviews   []models.Review
	created   *models.Review
	createErr *services.ServiceError
	deleteErr *services.ServiceError
	calls     int
}

func (f *fakeReviewService) ListReviews(context.Context, *uint) ([]models.Review, *services.ServiceError) {
	f.calls++
	return f.reviews, nil
}

func (f *fakeReviewService) CreateReview(context.Context, *models.CreateReviewRequest) (*models.Review, *services.ServiceError) {
	f.calls++
	return f.created, f.createErr
}

func (f *fakeReviewService) DeleteReview(context.Context, uint) *services.ServiceError {
	f.calls++
	return f.deleteErr
}

func reviewRouter(svc *fakeReviewService) *gin.Engine {
	r := gin.New()
	rc := controllers.NewReviewController(svc)
	r.GET("/api/reviews", rc.GetReviews)
	r.POST("/api/reviews", rc.CreateReview)
	r.DELETE("/api/reviews/:id", rc.DeleteReview)
	return r
}

func TestGetReviews_OK(t *testing.T) {
	svc := &fakeReviewService{reviews: []models.Review{{ID: 1, ProductID: 3, Rating: 5}}}
	router := reviewRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews?productId=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestGetReviews_BadProductID(t *testing.T) {
	svc := &fakeReviewService{}
	router := reviewRouter(svc)

	for _, raw := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/reviews?productId="+raw, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "productId=%s", raw)
	}
	assert.Equal(t, 0, svc.calls)
}

func TestCreateReview_Created(t *testing.T) {
	svc := &fakeReviewService{created: &models.Review{ID: 9, ProductID: 3, Rating: 5}}
	router := reviewRouter(svc)

	body := `{"productId":3,"authorName":"Ana","rating":5,"comment":"Fits perfectly, great fabric."}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestCreateReview_BindingRejectsOutOfRangeRating(t *testing.T) {
	svc := &fakeReviewService{}
	router := reviewRouter(svc)

	body := `{"productId":3,"authorName":"Ana","rating":6,"comment":"Fits perfectly, great fabric."}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestDeleteReview_NotFound(t *testing.T) {
	svc := &fakeReviewService{deleteErr: &services.ServiceError{StatusCode: 404, Message: "Review not found"}}
	router := reviewRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReview_BadID(t *testing.T) {
	svc := &fakeReviewService{}
	router := reviewRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}
