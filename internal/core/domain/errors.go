package domain

import "errors"

var (
	ErrNotFound    = errors.New("product not found")
	ErrQuoteOnly   = errors.New("product is sold by quote request only")
	ErrCompareFull = errors.New("compare set is full")
)
