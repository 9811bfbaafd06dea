package repository

import (
	"context"

	"storefront-backend/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for durable order data access.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order) error
	FindByReference(ctx context.Context, reference string) (*models.Order, error)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateWithItems inserts the order row and its items inside one
// transaction. The item insert is a second, batched statement because each
// item row needs the order's generated id. Any failure rolls back; the
// connection is returned to the pool on every exit path.
func (r *GormOrderRepository) CreateWithItems(ctx context.Context, order *models.Order) error {
	items := order.Items
	order.Items = nil
	defer func() { order.Items = items }()

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		// No connection acquired; nothing to roll back.
		return tx.Error
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// FindByReference loads an order with its items in a single aggregated
// query. Returns gorm.ErrRecordNotFound when the reference is unknown.
func (r *GormOrderRepository) FindByReference(ctx context.Context, reference string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("reference = ?", reference).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
