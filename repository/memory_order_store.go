package repository

import (
	"sync"
	"time"

	"storefront-backend/models"
)

// OrderDraft is the input to the in-memory store: an order the durable
// tier failed to accept, keyed by the reference that was already assigned.
type OrderDraft struct {
	Reference     string
	Total         float64
	Currency      string
	CustomerPhone *string
	Items         []models.CheckoutItem
}

// MemoryOrderStore is the process-lifetime fallback for order writes when
// Postgres is unreachable. It holds fully materialized orders keyed by
// reference and cannot fail. Ids restart at 1 on process restart, so the
// reference is the only identifier trusted across tiers.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	refs   []string
	seq    uint
}

// NewMemoryOrderStore creates an empty fallback store.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string]*models.Order)}
}

// Save materializes and stores the draft, assigning the next local id.
// The id increment and map insert are one atomic step, so concurrent
// saves always get distinct ids.
func (s *MemoryOrderStore) Save(draft OrderDraft) *models.Order {
	currency := draft.Currency
	if currency == "" {
		currency = "USD"
	}

	items := make([]models.OrderItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		productID := it.ProductID
		if productID == nil {
			productID = it.LegacyID
		}
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ProductID: productID,
			Quantity:  qty,
			Price:     it.Price,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	order := &models.Order{
		ID:            s.seq,
		Reference:     draft.Reference,
		Status:        models.OrderStatusPending,
		Total:         draft.Total,
		Currency:      currency,
		CustomerPhone: draft.CustomerPhone,
		CreatedAt:     time.Now().UTC(),
		Items:         items,
	}
	s.orders[draft.Reference] = order
	s.refs = append(s.refs, draft.Reference)
	return order
}

// Get looks up an order by reference.
func (s *MemoryOrderStore) Get(reference string) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[reference]
	return order, ok
}

// List returns a snapshot of all stored orders in insertion order.
func (s *MemoryOrderStore) List() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Order, 0, len(s.refs))
	for _, ref := range s.refs {
		out = append(out, s.orders[ref])
	}
	return out
}

// Clear empties the store. Test utility; never called on the request path.
func (s *MemoryOrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[string]*models.Order)
	s.refs = nil
}
