package services

import (
	"context"
	"errors"

	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxProductListSize caps the product listing.
const MaxProductListSize = 100

// ProductService defines the interface for catalog reads.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, *ServiceError)
}

type productServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, logger: logger}
}

// ListProducts returns the catalog, id-ascending.
func (s *productServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx, MaxProductListSize)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch products"}
	}
	return products, nil
}

// GetProductBySlug retrieves one product by slug.
func (s *productServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*models.Product, *ServiceError) {
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.String("slug", slug), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}
	return product, nil
}
