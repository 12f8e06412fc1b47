package query_test

import (
	"net/url"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {

	t.Run("EmptyQueryYieldsDefaults", func(t *testing.T) {
		f := query.Decode("")
		assert.Empty(t, f.Query)
		assert.Empty(t, f.Category)
		assert.Empty(t, f.Brand)
		assert.Empty(t, f.Availability)
		assert.Equal(t, domain.SortPopular, f.Sort)
		assert.Nil(t, f.PriceMin)
		assert.Nil(t, f.PriceMax)
	})

	t.Run("AllFields", func(t *testing.T) {
		raw := "q=rtx&cat=laptops&brand=THUNDEROBOT&stock=preorder" +
			"&sort=price_desc&min=10000&max=900000" +
			"&cpu=Ryzen+7&gpu=RTX+4060&ram=16GB&ssd=512GB&screen=15.6&hz=165"
		f := query.Decode(raw)

		assert.Equal(t, "rtx", f.Query)
		assert.Equal(t, domain.CategoryLaptops, f.Category)
		assert.Equal(t, "THUNDEROBOT", f.Brand)
		assert.Equal(t, domain.Preorder, f.Availability)
		assert.Equal(t, domain.SortPriceDesc, f.Sort)
		require.NotNil(t, f.PriceMin)
		assert.Equal(t, int64(10000), *f.PriceMin)
		require.NotNil(t, f.PriceMax)
		assert.Equal(t, int64(900000), *f.PriceMax)
		assert.Equal(t, "Ryzen 7", f.CPU)
		assert.Equal(t, "RTX 4060", f.GPU)
		assert.Equal(t, "16GB", f.RAM)
		assert.Equal(t, "512GB", f.SSD)
		assert.Equal(t, "15.6", f.Screen)
		assert.Equal(t, "165", f.Hz)
	})

	t.Run("MalformedNumbersTreatedAsAbsent", func(t *testing.T) {
		f := query.Decode("min=abc&max=12abc")
		assert.Nil(t, f.PriceMin)
		assert.Nil(t, f.PriceMax)
	})

	t.Run("UnrecognizedParamsIgnored", func(t *testing.T) {
		f := query.Decode("utm_source=mail&q=mouse")
		assert.Equal(t, "mouse", f.Query)
	})
}

func TestEncode(t *testing.T) {

	t.Run("PatchOverlaysCurrent", func(t *testing.T) {
		got := query.Encode(query.Patch{"sort": "price_asc"}, "q=rtx&sort=popular")
		vs, err := url.ParseQuery(got)
		require.NoError(t, err)
		assert.Equal(t, "rtx", vs.Get("q"))
		assert.Equal(t, "price_asc", vs.Get("sort"))
	})

	t.Run("EmptyValueRemovesParam", func(t *testing.T) {
		got := query.Encode(query.Patch{"q": ""}, "q=rtx&cat=laptops")
		vs, err := url.ParseQuery(got)
		require.NoError(t, err)
		assert.False(t, vs.Has("q"))
		assert.Equal(t, "laptops", vs.Get("cat"))
	})

	t.Run("UnmentionedParamsPreservedVerbatim", func(t *testing.T) {
		got := query.Encode(query.Patch{"brand": "LogiPro"}, "utm_source=mail&q=mouse")
		vs, err := url.ParseQuery(got)
		require.NoError(t, err)
		assert.Equal(t, "mail", vs.Get("utm_source"))
		assert.Equal(t, "mouse", vs.Get("q"))
		assert.Equal(t, "LogiPro", vs.Get("brand"))
	})

	t.Run("RoundTripReproducesPatchedFields", func(t *testing.T) {
		raw := "q=rtx&cat=laptops&min=10000"

		patched := query.Encode(query.Patch{"gpu": "RTX 4060", "min": ""}, raw)
		f := query.Decode(patched)

		assert.Equal(t, "RTX 4060", f.GPU)
		assert.Nil(t, f.PriceMin)
		// Untouched fields equal their plain-decode value.
		plain := query.Decode(raw)
		assert.Equal(t, plain.Query, f.Query)
		assert.Equal(t, plain.Category, f.Category)

		// Re-encoding an empty patch converges.
		assert.Equal(t, patched, query.Encode(nil, patched))
	})
}
