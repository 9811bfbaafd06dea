package controllers

import (
	"net/http"
	"strconv"

	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
)

// ReviewController handles HTTP requests for product reviews.
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController.
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetReviews handles GET /api/reviews?productId=.
func (rc *ReviewController) GetReviews(ctx *gin.Context) {
	var productID *uint
	if raw := ctx.Query("productId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Product ID must be a positive integer"})
			return
		}
		v := uint(id)
		productID = &v
	}

	reviews, svcErr := rc.reviewService.ListReviews(ctx.Request.Context(), productID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// CreateReview handles POST /api/reviews.
func (rc *ReviewController) CreateReview(ctx *gin.Context) {
	var req models.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review, svcErr := rc.reviewService.CreateReview(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"review":  review,
		"message": "Review created successfully",
	})
}

// DeleteReview handles DELETE /api/reviews/:id.
func (rc *ReviewController) DeleteReview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	if svcErr := rc.reviewService.DeleteReview(ctx.Request.Context(), uint(id)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted"})
}
