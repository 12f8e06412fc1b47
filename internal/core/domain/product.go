package domain

type Category string

const (
	CategoryLaptops    Category = "laptops"
	CategoryPeriphery  Category = "periphery"
	CategoryAppliances Category = "appliances"
	CategoryCosmetic   Category = "cosmetic"
	CategoryMedical    Category = "medical"

	// CategoryB2B is a synthetic grouping, it matches every product.
	CategoryB2B Category = "b2b"
)

type Availability string

const (
	InStock  Availability = "in_stock"
	Preorder Availability = "preorder"
)

const DefaultPreorderDays = 8

// Laptop spec attribute keys.
const (
	SpecCPU    = "cpu"
	SpecGPU    = "gpu"
	SpecRAM    = "ram"
	SpecSSD    = "ssd"
	SpecScreen = "screen"
	SpecHz     = "hz"
	SpecMatrix = "matrix"
	SpecOS     = "os"
)

type Product struct {
	ID           string
	Category     Category
	Brand        string
	Name         string
	PriceBase    int64
	OldPriceBase int64 // zero when the product is not discounted
	Availability Availability
	PreorderDays int
	Tags         []string
	Specs        map[string]string
	// RequiresQuote products never enter the cart, only a quote
	// request is valid for them.
	RequiresQuote bool
	NoticeText    string
}

func (p Product) Discounted() bool {
	return p.OldPriceBase > 0
}

// Spec returns the attribute value, missing keys behave as "".
func (p Product) Spec(key string) string {
	return p.Specs[key]
}
