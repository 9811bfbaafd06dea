package models

import (
	"time"
)

// OrderStatus is the lifecycle state of an order. Orders are created as
// pending; later transitions belong to fulfillment, not this service.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an order row in Postgres. The reference is the external
// identifier; the numeric ID is store-local and not unique across the
// durable and in-memory tiers.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Reference     string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Total         float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Currency      string      `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CustomerPhone *string     `gorm:"type:varchar(20)" json:"customer_phone,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is a line item. Price is the unit price the caller sent at
// order time; it is stored as-is, never re-derived from the catalog.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ProductID *uint   `json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// CheckoutItem is one cart line in a checkout request. ProductID may be
// absent; older storefront builds send the product id under "id".
type CheckoutItem struct {
	ProductID *uint   `json:"productId"`
	LegacyID  *uint   `json:"id"`
	Title     string  `json:"title"`
	Qty       int     `json:"qty" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// Customer is the optional contact block on a checkout request.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,phone"`
}

// CheckoutRequest is the payload for the WhatsApp checkout endpoint and
// for plain order creation.
type CheckoutRequest struct {
	Items    []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	Total    float64        `json:"total" binding:"required,gt=0"`
	Customer *Customer      `json:"customer"`
}

// CheckoutResponse reports the checkout outcome. Success reflects request
// validity; Persisted specifically reflects the durable write. A valid
// order can come back with Persisted=false.
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	Persisted   bool   `json:"persisted"`
	Reference   string `json:"reference"`
	OrderID     *int64 `json:"orderId"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// CreateOrderResponse is the response for plain (non-checkout) order
// creation.
type CreateOrderResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	OrderID   int64  `json:"orderId"`
}
