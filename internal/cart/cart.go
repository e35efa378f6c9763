package cart

import (
	"sync"

	"github.com/devanbrand/storefront-backend/internal/catalog"
)

// CartItem is a frozen copy of the product at the moment it entered the cart,
// plus the selected quantity. Later catalog edits do not reach items already
// in a cart or in the order ledger.
type CartItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart holds the in-progress selection for one shopping session. It is not
// persisted; it lives and dies with the session. Requests for the same
// session run on concurrent goroutines, so the cart guards its own contents.
type Cart struct {
	mu    sync.RWMutex
	items []CartItem
}

// Add puts one unit of the product into the cart. Out-of-stock products and
// increments past the product's stock are silent no-ops.
func (c *Cart) Add(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.Stock <= 0 {
		return
	}
	for i := range c.items {
		if c.items[i].ID == p.ID {
			if c.items[i].Quantity >= p.Stock {
				return
			}
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity adjusts the entry's quantity by delta, removing the entry
// when the quantity would reach zero or less. The stock ceiling is a
// caller-level constraint; this method does not clamp.
func (c *Cart) UpdateQuantity(id int, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return
		}
	}
}

// Remove deletes the entry irrespective of quantity.
func (c *Cart) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Total is the sum of price×quantity over all entries, recomputed on every
// call.
func (c *Cart) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sum := 0
	for _, it := range c.items {
		sum += it.Price * it.Quantity
	}
	return sum
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cart) Get(id int) (CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
