package store

import (
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartKeeper = (*Cart)(nil)

// Cart owns the productID->quantity collection. Quantities stay in
// [domain.MinQuantity, domain.MaxQuantity], a drop to zero removes
// the entry. Quote-only products never enter the cart.
type Cart struct {
	kv      port.KeyValue
	catalog port.Catalog
	mu      sync.Mutex
	notifier
}

func NewCart(kv port.KeyValue, catalog port.Catalog) *Cart {
	return &Cart{kv: kv, catalog: catalog}
}

func (c *Cart) Get() domain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Add increments the existing quantity by qty, or inserts the entry.
// The result is clamped to the allowed range.
func (c *Cart) Add(productID string, qty int) error {
	const op = "Cart.Add"

	p, err := c.catalog.ByID(productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if p.RequiresQuote {
		return fmt.Errorf("%s: %q: %w", op, productID, domain.ErrQuoteOnly)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.load()
	cart[productID] = clampQuantity(cart[productID] + qty)
	return c.save(op, cart)
}

// SetQuantity upserts the entry with qty clamped to the allowed
// range. A non-positive qty removes the entry entirely.
func (c *Cart) SetQuantity(productID string, qty int) error {
	const op = "Cart.SetQuantity"

	if _, err := c.catalog.ByID(productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.load()
	if qty <= 0 {
		delete(cart, productID)
	} else {
		cart[productID] = clampQuantity(qty)
	}
	return c.save(op, cart)
}

func (c *Cart) load() domain.Cart {
	var cart domain.Cart
	if !c.kv.Read(cartKey, &cart) || cart == nil {
		return domain.Cart{}
	}
	// A legacy or tampered payload must not leak invalid quantities.
	for id, qty := range cart {
		if qty < domain.MinQuantity {
			delete(cart, id)
			continue
		}
		if qty > domain.MaxQuantity {
			cart[id] = domain.MaxQuantity
		}
	}
	return cart
}

func (c *Cart) save(op string, cart domain.Cart) error {
	if err := c.kv.Write(cartKey, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.publish(domain.ChangeEvent{
		Store: domain.StoreCart,
		Size:  cart.TotalQuantity(),
	})
	return nil
}
