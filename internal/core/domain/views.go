package domain

import "slices"

// Renderer-facing snapshots. The core produces data only, markup is an
// external concern.

type CartItem struct {
	Product  Product
	Quantity int
}

type CartView struct {
	Items     []CartItem
	TotalBase int64
}

type Badges struct {
	Cart     int
	Wishlist int
	Compare  int
}

// CompareRow is one attribute row of the comparison matrix. Differs is
// set when the compared products disagree on the value.
type CompareRow struct {
	Key     string
	Values  []string
	Differs bool
}

// compareMissing marks an attribute a compared product does not have.
const compareMissing = "—"

// BuildCompareMatrix collects the union of spec keys over ps, sorted,
// and resolves every product's value per key. A product without any
// specs contributes the generic "type" key.
func BuildCompareMatrix(ps []Product) []CompareRow {
	if len(ps) == 0 {
		return nil
	}

	keySet := make(map[string]struct{})
	for _, p := range ps {
		for k := range p.Specs {
			keySet[k] = struct{}{}
		}
		if len(p.Specs) == 0 {
			keySet["type"] = struct{}{}
		}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([]CompareRow, 0, len(keys))
	for _, k := range keys {
		vals := make([]string, len(ps))
		for i, p := range ps {
			if v, ok := p.Specs[k]; ok {
				vals[i] = v
			} else {
				vals[i] = compareMissing
			}
		}
		differs := false
		for _, v := range vals[1:] {
			if v != vals[0] {
				differs = true
				break
			}
		}
		rows = append(rows, CompareRow{Key: k, Values: vals, Differs: differs})
	}
	return rows
}

type QuoteRequest struct {
	Reference string
	ProductID string
}

type OrderRequest struct {
	Reference string
	ProductID string
	Quantity  int
}

// ResolveProducts maps ids to catalog products keeping order, ids
// missing from the index are dropped.
func ResolveProducts(ids []string, byID func(string) (Product, error)) []Product {
	ps := make([]Product, 0, len(ids))
	for _, id := range ids {
		p, err := byID(id)
		if err != nil {
			continue
		}
		ps = append(ps, p)
	}
	return slices.Clip(ps)
}
