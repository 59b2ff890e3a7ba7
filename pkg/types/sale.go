package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one completed sale in the append-only ledger. UnitPrice
// is captured at the time of sale; later catalog price edits do not
// rewrite history.
type SalesRecord struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SoldAt    time.Time       `json:"sold_at"`
}

// Total returns quantity times the captured unit price, unrounded.
func (r SalesRecord) Total() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(r.Quantity))
}

// SalesFilter narrows a ledger listing. The zero value returns every
// record, newest first.
type SalesFilter struct {
	// ProductID limits the listing to one product when nonzero.
	ProductID int64
}
