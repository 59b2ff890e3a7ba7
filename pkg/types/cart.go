package types

import "github.com/shopspring/decimal"

// CartLine is one row of the active cart: product X, quantity Y.
// The cart holds at most one line per product; repeat adds merge into
// the existing line instead of inserting a duplicate.
type CartLine struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CartEntry is a denormalized cart row for display: the line joined to a
// snapshot of its product.
type CartEntry struct {
	LineID    int64           `json:"line_id"`
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// LineTotal returns quantity times unit price, unrounded.
func (e CartEntry) LineTotal() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity))
}
