package port

import "github.com/niksmo/storefront/internal/core/domain"

// KeyValue is the durable medium. Read reports false on a missing key
// or an undecodable payload, callers must fall back to their typed
// default and treat v as undefined. Write replaces the whole payload.
type KeyValue interface {
	Read(key string, v any) bool
	Write(key string, v any) error
}

// Catalog is the static product collection. All returns products in
// declaration order.
type Catalog interface {
	All() []domain.Product
	ByID(id string) (domain.Product, error)
}

type Subscribable interface {
	Subscribe(fn func(domain.ChangeEvent))
}

type CartKeeper interface {
	Subscribable
	Get() domain.Cart
	Add(productID string, qty int) error
	SetQuantity(productID string, qty int) error
}

type WishlistKeeper interface {
	Subscribable
	Get() domain.Wishlist
	Toggle(productID string) error
}

type CompareKeeper interface {
	Subscribable
	Get() domain.CompareSet
	Toggle(productID string) error
}

type PreferencesKeeper interface {
	Subscribable
	Get() domain.Preferences
	SetCurrency(code domain.CurrencyCode) error
	SetLanguage(lang string) error
}

// Inbound ports, implemented by the core service and consumed by the
// HTTP adapter.

type ProductBrowser interface {
	Browse(f domain.FilterState) []domain.Product
	Product(id string) (domain.Product, error)
	DisplayPrice(amountBase int64) (int64, domain.CurrencyCode)
}

type CartOperator interface {
	AddToCart(productID string, qty int) error
	SetCartQuantity(productID string, qty int) error
	CartView() domain.CartView
}

type WishlistOperator interface {
	ToggleWishlist(productID string) error
	WishlistView() []domain.Product
}

type CompareOperator interface {
	ToggleCompare(productID string) error
	CompareView() ([]domain.Product, []domain.CompareRow)
}

type PreferencesOperator interface {
	Preferences() domain.Preferences
	SetCurrency(code domain.CurrencyCode) error
	SetLanguage(lang string) error
}

type OrderRequester interface {
	RequestQuote(productID string) (domain.QuoteRequest, error)
	OneClickOrder(productID string, qty int) (domain.OrderRequest, error)
}

type BadgeCounter interface {
	Badges() domain.Badges
}
