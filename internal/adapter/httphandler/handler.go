package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/query"
)

// GET  /v1/products?q=&cat=&brand=&stock=&sort=&min=&max=&cpu=...
// GET  /v1/products/{id}
// GET  /v1/cart            POST /v1/cart/items   PUT /v1/cart/items/{id}
// GET  /v1/wishlist        POST /v1/wishlist/{id}/toggle
// GET  /v1/compare         POST /v1/compare/{id}/toggle
// GET  /v1/prefs           PUT  /v1/prefs
// POST /v1/quotes          POST /v1/orders/one-click
// GET  /v1/badges

type CatalogHandler struct {
	browser port.ProductBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.ProductBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

// ListProducts treats the request query string as the shareable
// filter state wire format.
func (h CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListProducts"

	f := query.Decode(r.URL.RawQuery)
	ps := h.browser.Browse(f)

	resp := ProductList{Products: make([]Product, 0, len(ps)), Total: len(ps)}
	for _, p := range ps {
		resp.Products = append(resp.Products, h.toResponse(p))
	}
	writeJSON(w, op, http.StatusOK, resp)
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"

	p, err := h.browser.Product(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, h.toResponse(p))
}

func (h CatalogHandler) toResponse(p domain.Product) Product {
	resp := Product{
		ID:            p.ID,
		Category:      string(p.Category),
		Brand:         p.Brand,
		Name:          p.Name,
		Price:         h.toPrice(p.PriceBase),
		Availability:  string(p.Availability),
		Tags:          p.Tags,
		Specs:         p.Specs,
		RequiresQuote: p.RequiresQuote,
		NoticeText:    p.NoticeText,
	}
	if p.Availability == domain.Preorder {
		resp.PreorderDays = p.PreorderDays
	}
	if p.Discounted() {
		old := h.toPrice(p.OldPriceBase)
		resp.OldPrice = &old
	}
	return resp
}

func (h CatalogHandler) toPrice(amountBase int64) Price {
	display, cur := h.browser.DisplayPrice(amountBase)
	return Price{
		AmountBase:    amountBase,
		AmountDisplay: display,
		Currency:      string(cur),
	}
}

type CartHandler struct {
	cart    port.CartOperator
	browser port.ProductBrowser
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartOperator, browser port.ProductBrowser,
) {
	h := CartHandler{cart, browser}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.SetQuantity)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	writeJSON(w, op, http.StatusOK, h.view())
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var m CartMutation
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	qty := m.Quantity
	if qty == 0 {
		qty = 1
	}
	if err := h.cart.AddToCart(m.ProductID, qty); err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, h.view())
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.SetQuantity"
	log := slog.With("op", op)

	var m CartMutation
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.cart.SetCartQuantity(r.PathValue("id"), m.Quantity)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, h.view())
}

func (h CartHandler) view() CartView {
	v := h.cart.CartView()
	ch := CatalogHandler{h.browser}

	resp := CartView{
		Items: make([]CartItem, 0, len(v.Items)),
		Total: ch.toPrice(v.TotalBase),
	}
	for _, it := range v.Items {
		resp.Items = append(resp.Items, CartItem{
			Product:  ch.toResponse(it.Product),
			Quantity: it.Quantity,
		})
	}
	return resp
}

type ListsHandler struct {
	wishlist port.WishlistOperator
	compare  port.CompareOperator
	browser  port.ProductBrowser
}

func RegisterLists(
	mux *http.ServeMux,
	wishlist port.WishlistOperator,
	compare port.CompareOperator,
	browser port.ProductBrowser,
) {
	h := ListsHandler{wishlist, compare, browser}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/{id}/toggle", h.ToggleWishlist)
	mux.HandleFunc("GET /v1/compare", h.GetCompare)
	mux.HandleFunc("POST /v1/compare/{id}/toggle", h.ToggleCompare)
}

func (h ListsHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "ListsHandler.GetWishlist"
	writeJSON(w, op, http.StatusOK, h.wishlistView())
}

func (h ListsHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "ListsHandler.ToggleWishlist"

	if err := h.wishlist.ToggleWishlist(r.PathValue("id")); err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, h.wishlistView())
}

func (h ListsHandler) GetCompare(w http.ResponseWriter, r *http.Request) {
	const op = "ListsHandler.GetCompare"
	writeJSON(w, op, http.StatusOK, h.compareView())
}

func (h ListsHandler) ToggleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "ListsHandler.ToggleCompare"

	if err := h.compare.ToggleCompare(r.PathValue("id")); err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, h.compareView())
}

func (h ListsHandler) wishlistView() WishlistView {
	ch := CatalogHandler{h.browser}
	ps := h.wishlist.WishlistView()

	resp := WishlistView{Products: make([]Product, 0, len(ps))}
	for _, p := range ps {
		resp.Products = append(resp.Products, ch.toResponse(p))
	}
	return resp
}

func (h ListsHandler) compareView() CompareView {
	ch := CatalogHandler{h.browser}
	ps, rows := h.compare.CompareView()

	resp := CompareView{
		Products: make([]Product, 0, len(ps)),
		Rows:     make([]CompareRow, 0, len(rows)),
	}
	for _, p := range ps {
		resp.Products = append(resp.Products, ch.toResponse(p))
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, CompareRow{
			Key:     row.Key,
			Values:  row.Values,
			Differs: row.Differs,
		})
	}
	return resp
}

type PrefsHandler struct {
	prefs port.PreferencesOperator
}

func RegisterPrefs(mux *http.ServeMux, prefs port.PreferencesOperator) {
	h := PrefsHandler{prefs}
	mux.HandleFunc("GET /v1/prefs", h.GetPrefs)
	mux.HandleFunc("PUT /v1/prefs", h.PutPrefs)
}

func (h PrefsHandler) GetPrefs(w http.ResponseWriter, r *http.Request) {
	const op = "PrefsHandler.GetPrefs"

	p := h.prefs.Preferences()
	writeJSON(w, op, http.StatusOK, Preferences{
		Currency: string(p.Currency),
		Language: p.Language,
	})
}

// PutPrefs updates only the fields present in the payload.
func (h PrefsHandler) PutPrefs(w http.ResponseWriter, r *http.Request) {
	const op = "PrefsHandler.PutPrefs"
	log := slog.With("op", op)

	var p Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if p.Currency != "" {
		err := h.prefs.SetCurrency(domain.CurrencyCode(p.Currency))
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
	}
	if p.Language != "" {
		if err := h.prefs.SetLanguage(p.Language); err != nil {
			writeDomainError(w, op, err)
			return
		}
	}
	h.GetPrefs(w, r)
}

type OrdersHandler struct {
	orders port.OrderRequester
}

func RegisterOrders(mux *http.ServeMux, orders port.OrderRequester) {
	h := OrdersHandler{orders}
	mux.HandleFunc("POST /v1/quotes", h.RequestQuote)
	mux.HandleFunc("POST /v1/orders/one-click", h.OneClick)
}

func (h OrdersHandler) RequestQuote(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.RequestQuote"
	log := slog.With("op", op)

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	q, err := h.orders.RequestQuote(req.ProductID)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusAccepted, OrderReference{
		Reference: q.Reference,
		ProductID: q.ProductID,
	})
}

func (h OrdersHandler) OneClick(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.OneClick"
	log := slog.With("op", op)

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	o, err := h.orders.OneClickOrder(req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusAccepted, OrderReference{
		Reference: o.Reference,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
	})
}

type BadgesHandler struct {
	badges port.BadgeCounter
}

func RegisterBadges(mux *http.ServeMux, badges port.BadgeCounter) {
	h := BadgesHandler{badges}
	mux.HandleFunc("GET /v1/badges", h.GetBadges)
}

func (h BadgesHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	const op = "BadgesHandler.GetBadges"

	b := h.badges.Badges()
	writeJSON(w, op, http.StatusOK, Badges{
		Cart:     b.Cart,
		Wishlist: b.Wishlist,
		Compare:  b.Compare,
	})
}

func writeJSON(w http.ResponseWriter, op string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func writeDomainError(w http.ResponseWriter, op string, err error) {
	log := slog.With("op", op)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("unknown product", "err", err)
	case errors.Is(err, domain.ErrQuoteOnly):
		http.Error(w, "available by quote request only", http.StatusConflict)
		log.Info("quote-only product rejected", "err", err)
	case errors.Is(err, domain.ErrCompareFull):
		http.Error(w, "compare set is full", http.StatusConflict)
		log.Info("compare capacity reached", "err", err)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("unexpected failure", "err", err)
	}
}
