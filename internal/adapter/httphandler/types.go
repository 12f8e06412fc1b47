package httphandler

type (
	Product struct {
		ID            string            `json:"id"`
		Category      string            `json:"category"`
		Brand         string            `json:"brand"`
		Name          string            `json:"name"`
		Price         Price             `json:"price"`
		OldPrice      *Price            `json:"old_price,omitempty"`
		Availability  string            `json:"availability"`
		PreorderDays  int               `json:"preorder_days,omitempty"`
		Tags          []string          `json:"tags"`
		Specs         map[string]string `json:"specs"`
		RequiresQuote bool              `json:"requires_quote"`
		NoticeText    string            `json:"notice_text,omitempty"`
	}

	// Price carries the base amount plus the amount converted into
	// the visitor's display currency.
	Price struct {
		AmountBase    int64  `json:"amount_base"`
		AmountDisplay int64  `json:"amount_display"`
		Currency      string `json:"currency"`
	}
)

type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type CartView struct {
	Items []CartItem `json:"items"`
	Total Price      `json:"total"`
}

type CartMutation struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type WishlistView struct {
	Products []Product `json:"products"`
}

type CompareRow struct {
	Key     string   `json:"key"`
	Values  []string `json:"values"`
	Differs bool     `json:"differs"`
}

type CompareView struct {
	Products []Product    `json:"products"`
	Rows     []CompareRow `json:"rows"`
}

type Preferences struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
}

type Badges struct {
	Cart     int `json:"cart"`
	Wishlist int `json:"wishlist"`
	Compare  int `json:"compare"`
}

type OrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
}

type OrderReference struct {
	Reference string `json:"reference"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
}
