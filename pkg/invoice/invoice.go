// Package invoice assembles printable invoices from line items. It is a
// pure computation over its inputs: it never touches a repository.
//
// Rounding policy: per-line amounts and the grand total are kept exact and
// rounded to two decimals only when formatted, and the total is summed
// from the unrounded amounts so per-line rounding never drifts it.
package invoice

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

// LineItem is the input triple for one invoice line.
type LineItem struct {
	Title     string          `json:"title"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Line is one assembled invoice line. Amount is quantity times unit price,
// unrounded.
type Line struct {
	Title     string          `json:"title"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// Invoice is the assembled result handed to the rendering collaborator.
type Invoice struct {
	Number   string          `json:"number"`
	IssuedAt time.Time       `json:"issued_at"`
	Lines    []Line          `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// Build assembles an invoice from line items. The total is the exact sum
// of the exact per-line amounts.
func Build(items []LineItem) Invoice {
	inv := Invoice{
		Number:   newNumber(),
		IssuedAt: time.Now().UTC(),
		Lines:    make([]Line, 0, len(items)),
		Total:    decimal.Zero,
	}
	for _, it := range items {
		amount := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		inv.Lines = append(inv.Lines, Line{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    amount,
		})
		inv.Total = inv.Total.Add(amount)
	}
	return inv
}

// FromCart converts cart entries into invoice line items.
func FromCart(entries []types.CartEntry) []LineItem {
	items := make([]LineItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LineItem{
			Title:     e.Title,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
		})
	}
	return items
}

// FromSales converts ledger records into invoice line items, resolving
// titles through the given lookup.
func FromSales(records []types.SalesRecord, title func(productID int64) string) []LineItem {
	items := make([]LineItem, 0, len(records))
	for _, r := range records {
		items = append(items, LineItem{
			Title:     title(r.ProductID),
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
		})
	}
	return items
}

// DisplayAmount formats a line amount for presentation, rounded to two
// decimals.
func (l Line) DisplayAmount() string {
	return l.Amount.StringFixed(2)
}

// DisplayTotal formats the grand total for presentation. The rounding
// happens here, once, after the exact summation.
func (inv Invoice) DisplayTotal() string {
	return inv.Total.StringFixed(2)
}

// newNumber generates an INV-prefixed invoice number from a UUID.
func newNumber() string {
	id := uuid.New().String()
	return "INV-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:9])
}
