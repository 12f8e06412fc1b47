package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

//go:embed products.json
var productsJSON []byte

type product struct {
	ID            string            `json:"id"`
	Category      string            `json:"category"`
	Brand         string            `json:"brand"`
	Name          string            `json:"name"`
	PriceBase     int64             `json:"price_base"`
	OldPriceBase  int64             `json:"old_price_base"`
	Availability  string            `json:"availability"`
	PreorderDays  int               `json:"preorder_days"`
	Tags          []string          `json:"tags"`
	Specs         map[string]string `json:"specs"`
	RequiresQuote bool              `json:"requires_quote"`
	NoticeText    string            `json:"notice_text"`
}

// Catalog is the fixed product set, loaded once from the embedded
// data and read-only afterwards.
type Catalog struct {
	products []domain.Product
	index    map[string]int
}

func New() (Catalog, error) {
	const op = "Catalog"

	var raw []product
	if err := json.Unmarshal(productsJSON, &raw); err != nil {
		return Catalog{}, fmt.Errorf("%s: failed to decode products: %w", op, err)
	}

	c := Catalog{index: make(map[string]int, len(raw))}
	for i, v := range raw {
		if _, ok := c.index[v.ID]; ok {
			return Catalog{}, fmt.Errorf("%s: duplicate product id %q", op, v.ID)
		}
		c.products = append(c.products, toDomain(v))
		c.index[v.ID] = i
	}
	return c, nil
}

// All returns the products in declaration order. The result is a copy,
// the catalog itself stays immutable.
func (c Catalog) All() []domain.Product {
	return slices.Clone(c.products)
}

func (c Catalog) ByID(id string) (domain.Product, error) {
	const op = "Catalog.ByID"

	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %q: %w", op, id, domain.ErrNotFound)
	}
	return c.products[i], nil
}

func toDomain(v product) domain.Product {
	days := v.PreorderDays
	if days == 0 {
		days = domain.DefaultPreorderDays
	}
	return domain.Product{
		ID:            v.ID,
		Category:      domain.Category(v.Category),
		Brand:         v.Brand,
		Name:          v.Name,
		PriceBase:     v.PriceBase,
		OldPriceBase:  v.OldPriceBase,
		Availability:  domain.Availability(v.Availability),
		PreorderDays:  days,
		Tags:          v.Tags,
		Specs:         v.Specs,
		RequiresQuote: v.RequiresQuote,
		NoticeText:    v.NoticeText,
	}
}
