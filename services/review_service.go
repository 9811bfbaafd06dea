package services

import (
	"context"
	"errors"

	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewService defines the interface for review business logic.
type ReviewService interface {
	ListReviews(ctx context.Context, productID *uint) ([]models.Review, *ServiceError)
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, *ServiceError)
	DeleteReview(ctx context.Context, id uint) *ServiceError
}

type reviewServiceImpl struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{reviews: reviews, products: products, logger: logger}
}

// ListReviews returns reviews, optionally filtered by product, newest
// first.
func (s *reviewServiceImpl) ListReviews(ctx context.Context, productID *uint) ([]models.Review, *ServiceError) {
	var (
		reviews []models.Review
		err     error
	)
	if productID != nil {
		reviews, err = s.reviews.FindByProduct(ctx, *productID)
	} else {
		reviews, err = s.reviews.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch reviews"}
	}
	return reviews, nil
}

// CreateReview stores a review after verifying the product exists.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, *ServiceError) {
	exists, err := s.products.Exists(ctx, req.ProductID)
	if err != nil {
		s.logger.Error("Failed to verify product for review", zap.Uint("product_id", req.ProductID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create review"}
	}
	if !exists {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	review := &models.Review{
		ProductID:  req.ProductID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Uint("product_id", req.ProductID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create review"}
	}

	s.logger.Info("Review created", zap.Uint("review_id", review.ID), zap.Uint("product_id", review.ProductID))
	return review, nil
}

// DeleteReview removes a review by id.
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id uint) *ServiceError {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Review not found"}
		}
		s.logger.Error("Failed to delete review", zap.Uint("review_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete review"}
	}
	return nil
}
