package domain

const (
	MinQuantity = 1
	MaxQuantity = 99

	CompareLimit = 4
)

// Cart maps product id to quantity. A persisted cart never holds a
// non-positive quantity, removal deletes the key.
type Cart map[string]int

func (c Cart) TotalQuantity() int {
	var n int
	for _, qty := range c {
		n += qty
	}
	return n
}

// Wishlist keeps product ids in insertion order. Order is preserved
// for display only.
type Wishlist []string

func (w Wishlist) Contains(id string) bool {
	for _, v := range w {
		if v == id {
			return true
		}
	}
	return false
}

// CompareSet is an ordered sequence of product ids held for
// side-by-side comparison, at most [CompareLimit] members.
type CompareSet []string

func (s CompareSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

type Preferences struct {
	Currency CurrencyCode
	Language string
}

// ChangeEvent is emitted once per domain store mutation. Size carries
// the badge value of the mutated store.
type ChangeEvent struct {
	Store string
	Size  int
}

const (
	StoreCart        = "cart"
	StoreWishlist    = "wishlist"
	StoreCompare     = "compare"
	StorePreferences = "preferences"
)
