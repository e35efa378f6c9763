// Package checkout turns a session cart into a ledger order.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/devanbrand/storefront-backend/internal/cart"
	"github.com/devanbrand/storefront-backend/internal/catalog"
	"github.com/devanbrand/storefront-backend/internal/order"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// InsufficientStockError reports a cart entry whose quantity can no longer be
// covered by the catalog. Stock is re-validated here so checkout fails
// instead of driving stock negative when the cart ceiling was bypassed.
type InsufficientStockError struct {
	ProductID int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Service is the checkout orchestrator: validate the cart, decrement stock,
// append the order, clear the cart.
type Service struct {
	catalog  *catalog.Service
	orders   *order.Service
	sessions *cart.Sessions
	now      func() time.Time
}

func NewService(catalogService *catalog.Service, orderService *order.Service, sessions *cart.Sessions) *Service {
	return &Service{
		catalog:  catalogService,
		orders:   orderService,
		sessions: sessions,
		now:      time.Now,
	}
}

// Checkout completes the purchase for the given session. On success the
// returned order has already been appended to the ledger and the session cart
// is empty. Each call produces a distinct order and a fresh stock decrement,
// repeat purchases are never merged.
func (s *Service) Checkout(sessionID string, method order.PaymentMethod, customerName, customerAddress, customerPhone string) (order.Order, error) {
	ct := s.sessions.Cart(sessionID)
	if ct.Len() == 0 {
		return order.Order{}, ErrEmptyCart
	}

	items := ct.Items()
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	current, err := s.catalog.ListByIDs(ids)
	if err != nil {
		return order.Order{}, err
	}
	stockByID := make(map[int]int, len(current))
	for _, p := range current {
		stockByID[p.ID] = p.Stock
	}

	// re-validate against live stock before touching anything
	for _, it := range items {
		available, ok := stockByID[it.ID]
		if !ok {
			// product removed since it entered the cart
			return order.Order{}, &InsufficientStockError{ProductID: it.ID, Requested: it.Quantity}
		}
		if it.Quantity > available {
			return order.Order{}, &InsufficientStockError{ProductID: it.ID, Requested: it.Quantity, Available: available}
		}
	}

	// decrement per item; if any step fails, put back what was already taken
	// so a failed checkout leaves the catalog untouched
	decremented := make([]cart.CartItem, 0, len(items))
	for _, it := range items {
		if _, err := s.catalog.AdjustStock(it.ID, -it.Quantity); err != nil {
			s.restoreStock(decremented)
			return order.Order{}, err
		}
		decremented = append(decremented, it)
	}

	ord := order.Order{
		ID:              s.orders.NewUniqueID(),
		Items:           items,
		Total:           ct.Total(),
		PaymentMethod:   method,
		Date:            s.now().Format(order.DateLayout),
		CustomerName:    customerName,
		CustomerAddress: customerAddress,
		CustomerPhone:   customerPhone,
	}
	if err := s.orders.Append(ord); err != nil {
		s.restoreStock(decremented)
		return order.Order{}, err
	}

	ct.Clear()
	return ord, nil
}

// restoreStock re-adds quantities taken by a checkout that failed partway.
// Best effort: a store that just failed may fail the compensation too, and
// there is nothing further to do about it here.
func (s *Service) restoreStock(items []cart.CartItem) {
	for _, it := range items {
		s.catalog.AdjustStock(it.ID, it.Quantity)
	}
}
