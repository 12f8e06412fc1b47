// Package query maps the shareable URL query string to and from
// [domain.FilterState]. Decoding rebuilds the whole state, encoding
// is a patch merge over the current raw query so callers compose
// incremental changes without knowing the full state.
package query

import (
	"net/url"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Recognized parameters. Unrecognized ones are preserved by Encode
// and ignored by Decode.
const (
	ParamQuery    = "q"
	ParamCategory = "cat"
	ParamBrand    = "brand"
	ParamStock    = "stock"
	ParamSort     = "sort"
	ParamPriceMin = "min"
	ParamPriceMax = "max"
	ParamCPU      = "cpu"
	ParamGPU      = "gpu"
	ParamRAM      = "ram"
	ParamSSD      = "ssd"
	ParamScreen   = "screen"
	ParamHz       = "hz"
)

// Decode parses rawQuery into a FilterState. Every field is optional:
// an absent parameter yields the zero value, an absent sort yields
// [domain.SortPopular]. Malformed numeric input is treated as absent,
// never as an error.
func Decode(rawQuery string) domain.FilterState {
	vs, _ := url.ParseQuery(rawQuery)

	f := domain.FilterState{
		Query:        vs.Get(ParamQuery),
		Category:     domain.Category(vs.Get(ParamCategory)),
		Brand:        vs.Get(ParamBrand),
		Availability: domain.Availability(vs.Get(ParamStock)),
		Sort:         domain.SortPopular,
		PriceMin:     parseNum(vs.Get(ParamPriceMin)),
		PriceMax:     parseNum(vs.Get(ParamPriceMax)),
		CPU:          vs.Get(ParamCPU),
		GPU:          vs.Get(ParamGPU),
		RAM:          vs.Get(ParamRAM),
		SSD:          vs.Get(ParamSSD),
		Screen:       vs.Get(ParamScreen),
		Hz:           vs.Get(ParamHz),
	}

	if s := vs.Get(ParamSort); s != "" {
		f.Sort = domain.SortMode(s)
	}
	return f
}

// Patch is a set of parameter overrides for Encode. An empty value
// removes the parameter from the query string.
type Patch map[string]string

// Encode overlays patch onto rawQuery and returns the new query
// string. Parameters not mentioned in the patch are preserved
// verbatim, including unrecognized ones.
func Encode(patch Patch, rawQuery string) string {
	vs, _ := url.ParseQuery(rawQuery)

	for k, v := range patch {
		if v == "" {
			vs.Del(k)
			continue
		}
		vs.Set(k, v)
	}
	return vs.Encode()
}

func parseNum(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Lenient by policy: malformed numbers act as "not set".
		return nil
	}
	return &n
}
