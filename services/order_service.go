package services

import (
	"context"
	"errors"

	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService defines the interface for order reads.
type OrderService interface {
	GetOrderByReference(ctx context.Context, reference string) (*models.Order, *ServiceError)
}

// orderServiceImpl implements OrderService with the two-tier read: the
// durable store first, then the in-memory fallback. A write may have
// landed in either tier, so the reference must resolve through whichever
// one holds it.
type orderServiceImpl struct {
	orders   repository.OrderRepository
	fallback *repository.MemoryOrderStore
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repository.OrderRepository, fallback *repository.MemoryOrderStore, logger *zap.Logger) OrderService {
	return &orderServiceImpl{orders: orders, fallback: fallback, logger: logger}
}

// GetOrderByReference resolves an order by its reference. Durable-store
// errors are treated like a miss: the fallback tier is consulted before
// reporting not-found.
func (s *orderServiceImpl) GetOrderByReference(ctx context.Context, reference string) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByReference(ctx, reference)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("Durable order lookup failed, consulting fallback store",
			zap.String("reference", reference), zap.Error(err))
	}

	if s.fallback != nil {
		if order, ok := s.fallback.Get(reference); ok {
			return order, nil
		}
	}
	return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
}
