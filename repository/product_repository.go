package repository

import (
	"context"

	"storefront-backend/models"

	"gorm.io/gorm"
)

// ProductRepository defines the interface for catalog reads.
type ProductRepository interface {
	FindAll(ctx context.Context, limit int) ([]models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns up to limit products ordered by id.
func (r *GormProductRepository) FindAll(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindBySlug retrieves a single product by its slug.
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Exists reports whether a product with the given id exists.
func (r *GormProductRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
