// Package store implements the persistent domain stores layered on
// the key-value port: cart quantities, wishlist membership, compare
// membership and display preferences. Every mutation persists the
// whole collection and emits a single change event.
package store

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Persisted store keys. Each is independently versioned, a schema
// change introduces a new key instead of migrating old payloads.
const (
	cartKey     = "cart_v1"
	wishlistKey = "wishlist_v1"
	compareKey  = "compare_v1"
	currencyKey = "currency_v1"
	langKey     = "lang_v1"
)

type notifier struct {
	mu   sync.Mutex
	subs []func(domain.ChangeEvent)
}

// Subscribe registers fn for every subsequent change event.
func (n *notifier) Subscribe(fn func(domain.ChangeEvent)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *notifier) publish(ev domain.ChangeEvent) {
	n.mu.Lock()
	subs := n.subs
	n.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func clampQuantity(qty int) int {
	return min(max(qty, domain.MinQuantity), domain.MaxQuantity)
}
