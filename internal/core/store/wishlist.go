package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.WishlistKeeper = (*Wishlist)(nil)

// Wishlist owns the ordered product id set. Toggle is an involution:
// two toggles of the same id restore the prior membership.
type Wishlist struct {
	kv      port.KeyValue
	catalog port.Catalog
	mu      sync.Mutex
	notifier
}

func NewWishlist(kv port.KeyValue, catalog port.Catalog) *Wishlist {
	return &Wishlist{kv: kv, catalog: catalog}
}

func (w *Wishlist) Get() domain.Wishlist {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.load()
}

func (w *Wishlist) Toggle(productID string) error {
	const op = "Wishlist.Toggle"

	if _, err := w.catalog.ByID(productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	list := w.load()
	if i := slices.Index(list, productID); i >= 0 {
		list = slices.Delete(list, i, i+1)
	} else {
		list = append(list, productID)
	}
	return w.save(op, list)
}

func (w *Wishlist) load() domain.Wishlist {
	var list domain.Wishlist
	if !w.kv.Read(wishlistKey, &list) || list == nil {
		return domain.Wishlist{}
	}
	return dedupe(list)
}

func (w *Wishlist) save(op string, list domain.Wishlist) error {
	if err := w.kv.Write(wishlistKey, list); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	w.publish(domain.ChangeEvent{
		Store: domain.StoreWishlist,
		Size:  len(list),
	})
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
