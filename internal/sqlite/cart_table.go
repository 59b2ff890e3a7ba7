// This file implements the cart repository. The central invariant is
// merge-on-add: at most one cart line per product, enforced by the unique
// product_id index and the upsert's conflict clause together.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

// CartTable is the active-cart repository. Obtain one via Store.Cart.
type CartTable struct {
	store *Store
}

// AddOrIncrement adds a product to the cart. If a line for the product
// already exists its quantity grows by delta; otherwise a new line is
// inserted with quantity delta. Returns ErrNotFound when the product does
// not exist.
func (ct *CartTable) AddOrIncrement(productID int64, delta int64) error {
	if productID <= 0 {
		return types.ErrInvalidID
	}
	if delta < 1 {
		return types.ErrQuantityTooLow
	}

	// Resolve a missing product to ErrNotFound instead of a raw foreign
	// key violation.
	var one int
	err := ct.store.db.QueryRow("SELECT 1 FROM products WHERE id = ?", productID).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking product %d: %w", productID, err)
	}

	_, err = ct.store.db.Exec(
		`INSERT INTO cart_lines (product_id, quantity) VALUES (?, ?)
		 ON CONFLICT(product_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adding product %d to cart: %w", productID, err)
	}
	return nil
}

// SetQuantity replaces a line's quantity. The floor is 1: decrementing to
// zero is rejected, removal is an explicit separate action.
func (ct *CartTable) SetQuantity(lineID int64, quantity int64) error {
	if lineID <= 0 {
		return types.ErrInvalidID
	}
	if quantity < 1 {
		return types.ErrQuantityTooLow
	}

	res, err := ct.store.db.Exec(
		"UPDATE cart_lines SET quantity = ? WHERE id = ?", quantity, lineID,
	)
	if err != nil {
		return fmt.Errorf("setting quantity on cart line %d: %w", lineID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking cart line update: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Remove deletes one cart line. Returns ErrNotFound if no row exists.
func (ct *CartTable) Remove(lineID int64) error {
	if lineID <= 0 {
		return types.ErrInvalidID
	}

	res, err := ct.store.db.Exec("DELETE FROM cart_lines WHERE id = ?", lineID)
	if err != nil {
		return fmt.Errorf("removing cart line %d: %w", lineID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking cart line removal: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Clear empties the cart. A single DELETE, atomic by itself.
func (ct *CartTable) Clear() error {
	if _, err := ct.store.db.Exec("DELETE FROM cart_lines"); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}

// List returns the cart joined to product snapshots, in insertion order.
func (ct *CartTable) List() ([]types.CartEntry, error) {
	rows, err := ct.store.db.Query(
		`SELECT cl.id, cl.product_id, p.title, p.price, cl.quantity
		 FROM cart_lines cl
		 INNER JOIN products p ON p.id = cl.product_id
		 ORDER BY cl.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	defer rows.Close()

	var entries []types.CartEntry
	for rows.Next() {
		var e types.CartEntry
		var price string
		if err := rows.Scan(&e.LineID, &e.ProductID, &e.Title, &price, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning cart line: %w", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parsing price %q: %w", price, err)
		}
		e.UnitPrice = d
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart lines: %w", err)
	}
	return entries, nil
}

// Total sums the exact line totals across the cart. It matches the total
// the invoice assembler computes from the same entries.
func (ct *CartTable) Total() (decimal.Decimal, error) {
	entries, err := ct.List()
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.LineTotal())
	}
	return total, nil
}
