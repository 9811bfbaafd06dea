package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"storefront-backend/metrics"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.uber.org/zap"
)

// PersistTier identifies which store accepted an order write.
type PersistTier string

const (
	PersistTierDurable  PersistTier = "durable"
	PersistTierFallback PersistTier = "fallback"
	PersistTierNone     PersistTier = "none"
)

// PersistResult is the tagged outcome of the write protocol: exactly one
// tier holds the order, or none. OrderID is only meaningful when Tier is
// not PersistTierNone.
type PersistResult struct {
	Tier    PersistTier
	OrderID int64
}

// phonePattern accepts an optional leading + and common separators before
// normalization.
var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-\.]{7,20}$`)

// mobileUAPattern decides between the mobile and web WhatsApp endpoints.
var mobileUAPattern = regexp.MustCompile(`(?i)Mobi|Android`)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone reduces a phone number to digits only. The leading + is
// stripped, not preserved; "+1 (555) 123-4567" becomes "15551234567".
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// CheckoutService defines the interface for the order creation flow.
type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest, userAgent string) (*models.CheckoutResponse, *ServiceError)
	CreateOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CreateOrderResponse, *ServiceError)
}

// checkoutServiceImpl implements CheckoutService.
type checkoutServiceImpl struct {
	orders     repository.OrderRepository
	fallback   *repository.MemoryOrderStore
	shopNumber string
	logger     *zap.Logger
	metrics    *metrics.Registry
}

// NewCheckoutService creates a new CheckoutService. shopNumber is the
// WhatsApp number orders are sent to; empty means the link carries no
// phone parameter.
func NewCheckoutService(
	orders repository.OrderRepository,
	fallback *repository.MemoryOrderStore,
	shopNumber string,
	logger *zap.Logger,
	reg *metrics.Registry,
) CheckoutService {
	return &checkoutServiceImpl{
		orders:     orders,
		fallback:   fallback,
		shopNumber: NormalizePhone(shopNumber),
		logger:     logger,
		metrics:    reg,
	}
}

// Checkout runs the full WhatsApp checkout: validate, assign the
// reference, persist (durable first, in-memory second), and build the
// contact link. Persistence failure degrades the response but never
// blocks it; the customer still gets the link.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, req *models.CheckoutRequest, userAgent string) (*models.CheckoutResponse, *ServiceError) {
	phone, svcErr := s.validate(req)
	if svcErr != nil {
		return nil, svcErr
	}

	reference := GenerateReference()
	result := s.persist(ctx, reference, req, phone)

	resp := &models.CheckoutResponse{
		Success:     true,
		Persisted:   result.Tier == PersistTierDurable,
		Reference:   reference,
		WhatsAppURL: s.buildWhatsAppURL(reference, req, userAgent),
	}
	if result.Tier != PersistTierNone {
		id := result.OrderID
		resp.OrderID = &id
	}
	return resp, nil
}

// CreateOrder persists an order in the durable store only, with no
// fallback and no contact link. Used by the plain orders endpoint.
func (s *checkoutServiceImpl) CreateOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CreateOrderResponse, *ServiceError) {
	phone, svcErr := s.validate(req)
	if svcErr != nil {
		return nil, svcErr
	}

	reference := GenerateReference()
	order := buildOrder(reference, req, phone)
	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.String("reference", reference), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	if s.metrics != nil {
		s.metrics.OrdersPersisted.WithLabelValues(string(PersistTierDurable)).Inc()
	}
	return &models.CreateOrderResponse{
		Success:   true,
		Reference: reference,
		OrderID:   int64(order.ID),
	}, nil
}

// validate rejects invalid requests before any persistence attempt and
// returns the normalized customer phone.
func (s *checkoutServiceImpl) validate(req *models.CheckoutRequest) (*string, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "No items in cart"}
	}
	for _, item := range req.Items {
		if item.Qty < 1 {
			return nil, &ServiceError{StatusCode: 400, Message: "Item quantity must be at least 1"}
		}
		if item.Price <= 0 {
			return nil, &ServiceError{StatusCode: 400, Message: "Item price must be greater than zero"}
		}
	}
	if req.Total <= 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Order total must be greater than zero"}
	}

	if req.Customer == nil || req.Customer.Phone == "" {
		return nil, nil
	}
	if !phonePattern.MatchString(req.Customer.Phone) {
		return nil, &ServiceError{StatusCode: 400, Message: "Invalid phone format"}
	}
	normalized := NormalizePhone(req.Customer.Phone)
	if len(normalized) < 7 || len(normalized) > 15 {
		return nil, &ServiceError{StatusCode: 400, Message: "Invalid phone format"}
	}
	return &normalized, nil
}

// persist runs the write protocol: one durable attempt, then one fallback
// attempt. No retries. The reference is fixed before the first attempt so
// both tiers store the same external identifier.
func (s *checkoutServiceImpl) persist(ctx context.Context, reference string, req *models.CheckoutRequest, phone *string) PersistResult {
	order := buildOrder(reference, req, phone)
	err := s.orders.CreateWithItems(ctx, order)
	if err == nil {
		if s.metrics != nil {
			s.metrics.OrdersPersisted.WithLabelValues(string(PersistTierDurable)).Inc()
		}
		return PersistResult{Tier: PersistTierDurable, OrderID: int64(order.ID)}
	}

	s.logger.Warn("Durable order write failed, falling back to in-memory store",
		zap.String("reference", reference), zap.Error(err))

	if s.fallback == nil {
		// Order is lost from both stores. The checkout still succeeds;
		// this counter and log line are the only trace.
		s.logger.Error("Order lost: durable write failed and no fallback store configured",
			zap.String("reference", reference))
		if s.metrics != nil {
			s.metrics.OrdersLost.Inc()
		}
		return PersistResult{Tier: PersistTierNone}
	}

	saved := s.fallback.Save(repository.OrderDraft{
		Reference:     reference,
		Total:         req.Total,
		CustomerPhone: phone,
		Items:         req.Items,
	})
	if s.metrics != nil {
		s.metrics.OrdersPersisted.WithLabelValues(string(PersistTierFallback)).Inc()
	}
	return PersistResult{Tier: PersistTierFallback, OrderID: int64(saved.ID)}
}

// buildOrder maps a checkout request to an order row with pending status.
func buildOrder(reference string, req *models.CheckoutRequest, phone *string) *models.Order {
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		productID := it.ProductID
		if productID == nil {
			productID = it.LegacyID
		}
		items = append(items, models.OrderItem{
			ProductID: productID,
			Quantity:  it.Qty,
			Price:     it.Price,
		})
	}
	return &models.Order{
		Reference:     reference,
		Status:        models.OrderStatusPending,
		Total:         req.Total,
		Currency:      "USD",
		CustomerPhone: phone,
		Items:         items,
	}
}

// buildWhatsAppURL composes the pre-filled message deep link. Built
// regardless of persistence outcome.
func (s *checkoutServiceImpl) buildWhatsAppURL(reference string, req *models.CheckoutRequest, userAgent string) string {
	var lines []string
	for _, item := range req.Items {
		lines = append(lines, fmt.Sprintf("%dx %s @ $%s", item.Qty, item.Title, formatAmount(item.Price)))
	}
	message := fmt.Sprintf("New Order - %s\n\nItems:\n%s\n\nTotal: $%s",
		reference, strings.Join(lines, "\n"), formatAmount(req.Total))

	base := "https://web.whatsapp.com/send"
	if mobileUAPattern.MatchString(userAgent) {
		base = "https://api.whatsapp.com/send"
	}

	params := url.Values{}
	if s.shopNumber != "" {
		params.Set("phone", s.shopNumber)
	}
	params.Set("text", message)
	return base + "?" + params.Encode()
}

// formatAmount renders prices the way the storefront shows them: no
// trailing zeros ($40, $32.5).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
