package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductBrowser = (*Service)(nil)
var _ port.CartOperator = (*Service)(nil)
var _ port.WishlistOperator = (*Service)(nil)
var _ port.CompareOperator = (*Service)(nil)
var _ port.PreferencesOperator = (*Service)(nil)
var _ port.OrderRequester = (*Service)(nil)
var _ port.BadgeCounter = (*Service)(nil)

// Service orchestrates the storefront core: catalog browsing through
// the filter pipeline, the three persistent collections, display
// preferences and the order/quote stubs. All collaborators come in as
// explicit dependencies, nothing reads ambient state.
type Service struct {
	catalog  port.Catalog
	cart     port.CartKeeper
	wishlist port.WishlistKeeper
	compare  port.CompareKeeper
	prefs    port.PreferencesKeeper
	rates    domain.RateTable
}

func New(
	catalog port.Catalog,
	cart port.CartKeeper,
	wishlist port.WishlistKeeper,
	compare port.CompareKeeper,
	prefs port.PreferencesKeeper,
	rates domain.RateTable,
) Service {
	return Service{
		catalog:  catalog,
		cart:     cart,
		wishlist: wishlist,
		compare:  compare,
		prefs:    prefs,
		rates:    rates,
	}
}

// Subscribe registers fn with every domain store. Each mutation
// arrives as a single change event.
func (s Service) Subscribe(fn func(domain.ChangeEvent)) {
	s.cart.Subscribe(fn)
	s.wishlist.Subscribe(fn)
	s.compare.Subscribe(fn)
	s.prefs.Subscribe(fn)
}

// Browse applies the filter state to the catalog and returns the
// ordered result set.
func (s Service) Browse(f domain.FilterState) []domain.Product {
	return domain.ApplyFilter(s.catalog.All(), f)
}

func (s Service) Product(id string) (domain.Product, error) {
	const op = "Service.Product"

	p, err := s.catalog.ByID(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// DisplayPrice converts a base-currency amount into the currently
// selected display currency, rounded to whole units.
func (s Service) DisplayPrice(amountBase int64) (int64, domain.CurrencyCode) {
	cur := s.prefs.Get().Currency
	return s.rates.Convert(amountBase, cur), cur
}

func (s Service) AddToCart(productID string, qty int) error {
	const op = "Service.AddToCart"

	if err := s.cart.Add(productID, qty); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) SetCartQuantity(productID string, qty int) error {
	const op = "Service.SetCartQuantity"

	if err := s.cart.SetQuantity(productID, qty); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CartView resolves the cart against the catalog in declaration
// order. Entries whose product left the catalog are skipped.
func (s Service) CartView() domain.CartView {
	cart := s.cart.Get()

	var view domain.CartView
	for _, p := range s.catalog.All() {
		qty, ok := cart[p.ID]
		if !ok {
			continue
		}
		view.Items = append(view.Items, domain.CartItem{
			Product:  p,
			Quantity: qty,
		})
		view.TotalBase += p.PriceBase * int64(qty)
	}
	return view
}

func (s Service) ToggleWishlist(productID string) error {
	const op = "Service.ToggleWishlist"

	if err := s.wishlist.Toggle(productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) WishlistView() []domain.Product {
	return domain.ResolveProducts(s.wishlist.Get(), s.catalog.ByID)
}

func (s Service) ToggleCompare(productID string) error {
	const op = "Service.ToggleCompare"

	if err := s.compare.Toggle(productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CompareView returns the compared products in their toggle order
// together with the attribute matrix.
func (s Service) CompareView() ([]domain.Product, []domain.CompareRow) {
	ps := domain.ResolveProducts(s.compare.Get(), s.catalog.ByID)
	return ps, domain.BuildCompareMatrix(ps)
}

func (s Service) Preferences() domain.Preferences {
	return s.prefs.Get()
}

func (s Service) SetCurrency(code domain.CurrencyCode) error {
	const op = "Service.SetCurrency"

	if err := s.prefs.SetCurrency(code); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) SetLanguage(lang string) error {
	const op = "Service.SetLanguage"

	if err := s.prefs.SetLanguage(lang); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RequestQuote registers a quote request stub and returns its
// reference. The actual delivery to a manager is a future concern.
func (s Service) RequestQuote(productID string) (domain.QuoteRequest, error) {
	const op = "Service.RequestQuote"

	p, err := s.catalog.ByID(productID)
	if err != nil {
		return domain.QuoteRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	req := domain.QuoteRequest{
		Reference: uuid.NewString(),
		ProductID: p.ID,
	}
	slog.Info("quote requested",
		"op", op, "product", p.ID, "ref", req.Reference)
	return req, nil
}

// OneClickOrder registers a one-click order stub and returns its
// reference. Quote-only products are rejected the same way the cart
// rejects them.
func (s Service) OneClickOrder(productID string, qty int) (domain.OrderRequest, error) {
	const op = "Service.OneClickOrder"

	p, err := s.catalog.ByID(productID)
	if err != nil {
		return domain.OrderRequest{}, fmt.Errorf("%s: %w", op, err)
	}
	if p.RequiresQuote {
		return domain.OrderRequest{}, fmt.Errorf("%s: %q: %w", op, p.ID, domain.ErrQuoteOnly)
	}

	if qty < domain.MinQuantity {
		qty = domain.MinQuantity
	}
	if qty > domain.MaxQuantity {
		qty = domain.MaxQuantity
	}

	req := domain.OrderRequest{
		Reference: uuid.NewString(),
		ProductID: p.ID,
		Quantity:  qty,
	}
	slog.Info("one-click order requested",
		"op", op, "product", p.ID, "qty", qty, "ref", req.Reference)
	return req, nil
}

// Badges returns the counters every surface renders next to the
// cart, wishlist and compare controls.
func (s Service) Badges() domain.Badges {
	return domain.Badges{
		Cart:     s.cart.Get().TotalQuantity(),
		Wishlist: len(s.wishlist.Get()),
		Compare:  len(s.compare.Get()),
	}
}
