// This file implements the append-only sales ledger. A sale and its stock
// decrement commit in one transaction; the unit price is captured as given
// so historical sales survive later catalog price edits.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

// SalesTable is the sales ledger. Obtain one via Store.Sales.
type SalesTable struct {
	store *Store
}

// Record appends one sale and decrements the product's stock atomically.
// Fails with ErrInsufficientStock when the stock cannot cover the sale,
// with ErrNotFound when the product does not exist; in either case nothing
// is written.
func (st *SalesTable) Record(productID int64, quantity int64, unitPrice decimal.Decimal) error {
	if productID <= 0 {
		return types.ErrInvalidID
	}
	if quantity < 1 {
		return types.ErrQuantityTooLow
	}
	if unitPrice.IsNegative() {
		return types.ErrNegativePrice
	}

	tx, err := st.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Resolve a missing product to ErrNotFound before the insert would
	// trip the foreign key.
	var one int
	err = tx.QueryRow("SELECT 1 FROM products WHERE id = ?", productID).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking product %d: %w", productID, err)
	}

	soldAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		"INSERT INTO sales (product_id, quantity, unit_price, sold_at) VALUES (?, ?, ?, ?)",
		productID, quantity, unitPrice.String(), soldAt,
	); err != nil {
		return fmt.Errorf("recording sale for product %d: %w", productID, err)
	}

	// The decrement runs after the insert; when the stock cannot cover the
	// sale the rollback takes the ledger row down with it.
	if err := decrementStockTx(tx, productID, quantity); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sale: %w", err)
	}
	return nil
}

// List returns ledger records matching the filter, newest first.
func (st *SalesTable) List(f types.SalesFilter) ([]types.SalesRecord, error) {
	query := "SELECT id, product_id, quantity, unit_price, sold_at FROM sales"
	var args []any
	if f.ProductID != 0 {
		query += " WHERE product_id = ?"
		args = append(args, f.ProductID)
	}
	query += " ORDER BY sold_at DESC, id DESC"

	rows, err := st.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var records []types.SalesRecord
	for rows.Next() {
		var r types.SalesRecord
		var price, soldAt string
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Quantity, &price, &soldAt); err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parsing unit price %q: %w", price, err)
		}
		r.UnitPrice = d
		r.SoldAt, err = time.Parse(time.RFC3339, soldAt)
		if err != nil {
			return nil, fmt.Errorf("parsing sold_at %q: %w", soldAt, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}
	return records, nil
}

// CheckoutCart sells the whole cart in one transaction: for every cart
// line a sale is recorded at the current catalog price, the stock is
// decremented, and the cart is cleared. Returns the recorded sales. If any
// line cannot be covered by stock, the entire checkout rolls back and the
// cart is left untouched.
func (st *SalesTable) CheckoutCart() ([]types.SalesRecord, error) {
	entries, err := st.store.Cart().List()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	tx, err := st.store.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	soldAt := now.Format(time.RFC3339)

	records := make([]types.SalesRecord, 0, len(entries))
	for _, e := range entries {
		res, err := tx.Exec(
			"INSERT INTO sales (product_id, quantity, unit_price, sold_at) VALUES (?, ?, ?, ?)",
			e.ProductID, e.Quantity, e.UnitPrice.String(), soldAt,
		)
		if err != nil {
			return nil, fmt.Errorf("recording sale for product %d: %w", e.ProductID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("reading sale ID: %w", err)
		}

		if err := decrementStockTx(tx, e.ProductID, e.Quantity); err != nil {
			return nil, err
		}

		records = append(records, types.SalesRecord{
			ID:        id,
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
			SoldAt:    now,
		})
	}

	if _, err := tx.Exec("DELETE FROM cart_lines"); err != nil {
		return nil, fmt.Errorf("clearing cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing checkout: %w", err)
	}
	return records, nil
}
