package repository

import (
	"context"

	"storefront-backend/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	FindByProduct(ctx context.Context, productID uint) ([]models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository.
func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByProduct returns reviews for one product, newest first.
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindAll returns all reviews, newest first.
func (r *GormReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts a new review.
func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Delete removes a review by id. Returns gorm.ErrRecordNotFound when no
// row matched.
func (r *GormReviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
