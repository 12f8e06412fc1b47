package domain

import (
	"cmp"
	"slices"
	"strings"
)

type SortMode string

const (
	SortPopular   SortMode = "popular"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortNew       SortMode = "new"
)

// FilterState is the canonical filter/sort state derived from the URL
// query string. Zero values mean "not set", the zero Sort is treated
// as [SortPopular].
type FilterState struct {
	Query        string
	Category     Category
	Brand        string
	Availability Availability
	Sort         SortMode
	PriceMin     *int64
	PriceMax     *int64

	// Laptop attribute sub-filter, exact match per non-empty key.
	CPU    string
	GPU    string
	RAM    string
	SSD    string
	Screen string
	Hz     string
}

func (f FilterState) laptopAttrs() [6][2]string {
	return [6][2]string{
		{SpecCPU, f.CPU},
		{SpecGPU, f.GPU},
		{SpecRAM, f.RAM},
		{SpecSSD, f.SSD},
		{SpecScreen, f.Screen},
		{SpecHz, f.Hz},
	}
}

// LaptopFilterActive reports whether at least one laptop attribute is set.
func (f FilterState) LaptopFilterActive() bool {
	for _, kv := range f.laptopAttrs() {
		if kv[1] != "" {
			return true
		}
	}
	return false
}

// ApplyFilter runs the filter pipeline over ps and returns a new
// ordered slice. Stages are AND-combined and an unset field makes its
// stage a no-op. The inputs are not mutated.
func ApplyFilter(ps []Product, f FilterState) []Product {
	list := slices.Clone(ps)

	if f.Category != "" && f.Category != CategoryB2B {
		list = keep(list, func(p Product) bool {
			return p.Category == f.Category
		})
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		list = keep(list, func(p Product) bool {
			return strings.Contains(searchHaystack(p), q)
		})
	}

	if f.Brand != "" {
		list = keep(list, func(p Product) bool {
			return strings.EqualFold(p.Brand, f.Brand)
		})
	}

	if f.Availability != "" {
		list = keep(list, func(p Product) bool {
			return p.Availability == f.Availability
		})
	}

	if f.PriceMin != nil {
		list = keep(list, func(p Product) bool {
			return p.PriceBase >= *f.PriceMin
		})
	}
	if f.PriceMax != nil {
		list = keep(list, func(p Product) bool {
			return p.PriceBase <= *f.PriceMax
		})
	}

	if f.LaptopFilterActive() {
		list = keep(list, func(p Product) bool {
			return p.Category == CategoryLaptops
		})
		for _, kv := range f.laptopAttrs() {
			key, want := kv[0], kv[1]
			if want == "" {
				continue
			}
			list = keep(list, func(p Product) bool {
				return p.Spec(key) == want
			})
		}
	}

	sortProducts(list, f.Sort)
	return list
}

func keep(ps []Product, pred func(Product) bool) []Product {
	out := ps[:0]
	for _, p := range ps {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func searchHaystack(p Product) string {
	hay := p.Name + " " + p.Brand + " " + strings.Join(p.Tags, " ") + " "
	return strings.ToLower(hay)
}

func sortProducts(list []Product, mode SortMode) {
	switch mode {
	case SortPriceAsc:
		slices.SortStableFunc(list, func(a, b Product) int {
			return cmp.Compare(a.PriceBase, b.PriceBase)
		})
	case SortPriceDesc:
		slices.SortStableFunc(list, func(a, b Product) int {
			return cmp.Compare(b.PriceBase, a.PriceBase)
		})
	case SortNew:
		// The catalog has no creation date, reverse-lexicographic id
		// is the documented placeholder for "newest first".
		slices.SortStableFunc(list, func(a, b Product) int {
			return strings.Compare(b.ID, a.ID)
		})
	default:
		// Default browsing order: stable partition pushing discounted
		// products after the rest, then a global reverse. Discounted
		// items end up first, the remainder in reverse catalog order.
		slices.SortStableFunc(list, func(a, b Product) int {
			return cmp.Compare(discountRank(a), discountRank(b))
		})
		slices.Reverse(list)
	}
}

func discountRank(p Product) int {
	if p.Discounted() {
		return 1
	}
	return 0
}
