package types

import "github.com/shopspring/decimal"

// Product is one catalog entry. Quantity is the stock on hand, decremented
// by recorded sales and never allowed below zero.
type Product struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int64           `json:"quantity"`
}

// Validate checks the domain constraints on a product. Parsing raw user
// text into typed fields is the caller's job; this only checks ranges.
func (p Product) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// ProductUpdate carries a partial update. Nil fields are left untouched.
type ProductUpdate struct {
	Title    *string
	Price    *decimal.Decimal
	Image    *string
	Quantity *int64
}

// Empty reports whether the update would change nothing.
func (u ProductUpdate) Empty() bool {
	return u.Title == nil && u.Price == nil && u.Image == nil && u.Quantity == nil
}

// Validate checks the provided fields against the same domain constraints
// as Product.Validate.
func (u ProductUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return ErrEmptyTitle
	}
	if u.Price != nil && u.Price.IsNegative() {
		return ErrNegativePrice
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// ProductSort selects the ordering of a catalog listing.
type ProductSort string

// Catalog orderings. SortNone keeps insertion order.
const (
	SortNone      ProductSort = ""
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
)

// ProductFilter narrows and orders a catalog listing. The zero value
// returns every product in insertion order.
type ProductFilter struct {
	// TitleContains is a case-insensitive substring match on the title.
	TitleContains string

	Sort ProductSort
}
