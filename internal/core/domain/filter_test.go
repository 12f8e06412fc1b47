package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "lap-911x-4060",
			Category:     domain.CategoryLaptops,
			Brand:        "THUNDEROBOT",
			Name:         "THUNDEROBOT 911X — RTX 4060 / Ryzen 7",
			PriceBase:    649000,
			OldPriceBase: 699000,
			Availability: domain.Preorder,
			Tags:         []string{"RTX 4060", "Ryzen 7", "16GB"},
			Specs: map[string]string{
				"cpu": "Ryzen 7", "gpu": "RTX 4060", "ram": "16GB",
				"ssd": "512GB", "screen": "15.6", "hz": "165",
			},
		},
		{
			ID:           "lap-g15-4070",
			Category:     domain.CategoryLaptops,
			Brand:        "THUNDEROBOT",
			Name:         "THUNDEROBOT G15 — RTX 4070 / i7",
			PriceBase:    899000,
			Availability: domain.InStock,
			Tags:         []string{"RTX 4070", "i7", "32GB"},
			Specs: map[string]string{
				"cpu": "Core i7", "gpu": "RTX 4070", "ram": "32GB",
				"ssd": "1TB", "screen": "16", "hz": "240",
			},
		},
		{
			ID:           "per-mouse-x1",
			Category:     domain.CategoryPeriphery,
			Brand:        "LogiPro",
			Name:         "Gaming mouse X1 (RGB)",
			PriceBase:    18990,
			OldPriceBase: 24990,
			Availability: domain.InStock,
			Tags:         []string{"Mouse", "RGB", "12000 DPI"},
			Specs:        map[string]string{"type": "mouse"},
		},
		{
			ID:            "med-ecg-12",
			Category:      domain.CategoryMedical,
			Brand:         "MedLine",
			Name:          "ECG device 12ch",
			PriceBase:     890000,
			Availability:  domain.Preorder,
			Tags:          []string{"Certificates"},
			Specs:         map[string]string{"type": "medical_device"},
			RequiresQuote: true,
		},
	}
}

func ids(ps []domain.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyFilter(t *testing.T) {

	t.Run("DefaultPopularSort", func(t *testing.T) {
		// Discounted products surface first, the rest follow in
		// reverse catalog order.
		got := domain.ApplyFilter(testProducts(), domain.FilterState{})
		assert.Equal(t,
			[]string{"per-mouse-x1", "lap-911x-4060", "med-ecg-12", "lap-g15-4070"},
			ids(got),
		)
	})

	t.Run("PopularOrdersDiscountedFirst", func(t *testing.T) {
		ps := testProducts()[:2] // 649000 discounted, 899000 not
		got := domain.ApplyFilter(ps, domain.FilterState{Sort: domain.SortPopular})
		require.Len(t, got, 2)
		assert.Equal(t, int64(649000), got[0].PriceBase)
		assert.Equal(t, int64(899000), got[1].PriceBase)
	})

	t.Run("Deterministic", func(t *testing.T) {
		f := domain.FilterState{Query: "rtx", Sort: domain.SortPriceAsc}
		first := domain.ApplyFilter(testProducts(), f)
		for range 5 {
			assert.Equal(t, ids(first), ids(domain.ApplyFilter(testProducts(), f)))
		}
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		ps := testProducts()
		domain.ApplyFilter(ps, domain.FilterState{Sort: domain.SortPriceDesc})
		assert.Equal(t, ids(testProducts()), ids(ps))
	})

	t.Run("CategoryExact", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Category: domain.CategoryPeriphery,
		})
		assert.Equal(t, []string{"per-mouse-x1"}, ids(got))
	})

	t.Run("CategoryB2BMatchesAll", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Category: domain.CategoryB2B,
		})
		assert.Len(t, got, len(testProducts()))
	})

	t.Run("FreeTextCaseInsensitive", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Query: "  rTx 4070 ",
		})
		assert.Equal(t, []string{"lap-g15-4070"}, ids(got))
	})

	t.Run("FreeTextMatchesTags", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Query: "12000 dpi",
		})
		assert.Equal(t, []string{"per-mouse-x1"}, ids(got))
	})

	t.Run("BrandCaseInsensitive", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Brand: "thunderobot",
			Sort:  domain.SortPriceAsc,
		})
		assert.Equal(t, []string{"lap-911x-4060", "lap-g15-4070"}, ids(got))
	})

	t.Run("Availability", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Availability: domain.Preorder,
			Sort:         domain.SortPriceAsc,
		})
		assert.Equal(t, []string{"lap-911x-4060", "med-ecg-12"}, ids(got))
	})

	t.Run("PriceBoundsInclusive", func(t *testing.T) {
		minP := int64(18990)
		maxP := int64(649000)
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			PriceMin: &minP,
			PriceMax: &maxP,
			Sort:     domain.SortPriceAsc,
		})
		assert.Equal(t, []string{"per-mouse-x1", "lap-911x-4060"}, ids(got))
	})

	t.Run("InvertedPriceRangeYieldsEmpty", func(t *testing.T) {
		minP := int64(900000)
		maxP := int64(100)
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			PriceMin: &minP,
			PriceMax: &maxP,
		})
		assert.Empty(t, got)
	})

	t.Run("LaptopFilterExactMatch", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Category: domain.CategoryLaptops,
			GPU:      "RTX 4060",
		})
		require.Len(t, got, 1)
		assert.Equal(t, "lap-911x-4060", got[0].ID)
	})

	t.Run("LaptopFilterNoMatchYieldsEmpty", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Category: domain.CategoryLaptops,
			GPU:      "RTX 5090",
		})
		assert.Empty(t, got)
	})

	t.Run("LaptopFilterOverridesCategory", func(t *testing.T) {
		// Any laptop attribute restricts the set to laptops even when
		// another category is requested.
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Category: domain.CategoryPeriphery,
			RAM:      "32GB",
		})
		assert.Equal(t, []string{"lap-g15-4070"}, ids(got))
	})

	t.Run("MissingSpecKeyFailsFilter", func(t *testing.T) {
		ps := testProducts()
		delete(ps[1].Specs, "hz")
		got := domain.ApplyFilter(ps, domain.FilterState{Hz: "240"})
		assert.Empty(t, got)
	})

	t.Run("SortPriceAsc", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Sort: domain.SortPriceAsc,
		})
		assert.Equal(t,
			[]string{"per-mouse-x1", "lap-911x-4060", "med-ecg-12", "lap-g15-4070"},
			ids(got),
		)
	})

	t.Run("SortPriceDesc", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Sort: domain.SortPriceDesc,
		})
		assert.Equal(t,
			[]string{"lap-g15-4070", "med-ecg-12", "lap-911x-4060", "per-mouse-x1"},
			ids(got),
		)
	})

	t.Run("SortPriceStableOnTies", func(t *testing.T) {
		ps := testProducts()
		ps[2].PriceBase = 649000 // same as lap-911x-4060
		got := domain.ApplyFilter(ps, domain.FilterState{Sort: domain.SortPriceAsc})
		// Ties keep catalog relative order.
		assert.Equal(t,
			[]string{"lap-911x-4060", "per-mouse-x1", "med-ecg-12", "lap-g15-4070"},
			ids(got),
		)
	})

	t.Run("SortNewReverseLexicographic", func(t *testing.T) {
		got := domain.ApplyFilter(testProducts(), domain.FilterState{
			Sort: domain.SortNew,
		})
		assert.Equal(t,
			[]string{"per-mouse-x1", "med-ecg-12", "lap-g15-4070", "lap-911x-4060"},
			ids(got),
		)
	})
}
