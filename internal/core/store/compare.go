package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CompareKeeper = (*Compare)(nil)

// Compare owns the ordered comparison sequence, capped at
// [domain.CompareLimit] members with no duplicates.
type Compare struct {
	kv      port.KeyValue
	catalog port.Catalog
	mu      sync.Mutex
	notifier
}

func NewCompare(kv port.KeyValue, catalog port.Catalog) *Compare {
	return &Compare{kv: kv, catalog: catalog}
}

func (c *Compare) Get() domain.CompareSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Toggle removes a present id. An absent id is appended unless the
// set is already full, then the mutation is rejected with
// [domain.ErrCompareFull] and the set stays unchanged.
func (c *Compare) Toggle(productID string) error {
	const op = "Compare.Toggle"

	if _, err := c.catalog.ByID(productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	set := c.load()
	if i := slices.Index(set, productID); i >= 0 {
		set = slices.Delete(set, i, i+1)
	} else {
		if len(set) >= domain.CompareLimit {
			return fmt.Errorf("%s: %q: %w", op, productID, domain.ErrCompareFull)
		}
		set = append(set, productID)
	}
	return c.save(op, set)
}

func (c *Compare) load() domain.CompareSet {
	var set domain.CompareSet
	if !c.kv.Read(compareKey, &set) || set == nil {
		return domain.CompareSet{}
	}
	set = dedupe(set)
	if len(set) > domain.CompareLimit {
		set = set[:domain.CompareLimit]
	}
	return set
}

func (c *Compare) save(op string, set domain.CompareSet) error {
	if err := c.kv.Write(compareKey, set); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.publish(domain.ChangeEvent{
		Store: domain.StoreCompare,
		Size:  len(set),
	})
	return nil
}
