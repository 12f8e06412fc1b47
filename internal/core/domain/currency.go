package domain

import "math"

type CurrencyCode string

const (
	CurrencyKZT CurrencyCode = "KZT" // base currency, catalog prices
	CurrencyRUB CurrencyCode = "RUB"
	CurrencyUSD CurrencyCode = "USD"
)

const (
	DefaultCurrency = CurrencyKZT
	DefaultLanguage = "ru"
)

// RateTable maps a currency code to its per-unit rate from the base
// currency. An unknown code converts at rate 1.
type RateTable map[CurrencyCode]float64

func DefaultRates() RateTable {
	// Demo coefficients, real rates are a future concern.
	return RateTable{
		CurrencyKZT: 1,
		CurrencyRUB: 0.20,
		CurrencyUSD: 0.0022,
	}
}

// Convert returns the display amount in whole units of the target
// currency. Rounding happens here, before any presentation formatting.
func (t RateTable) Convert(amountBase int64, code CurrencyCode) int64 {
	rate, ok := t[code]
	if !ok {
		rate = 1
	}
	return int64(math.Round(float64(amountBase) * rate))
}
