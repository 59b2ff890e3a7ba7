// This file implements the product catalog repository. Prices are stored
// as exact decimal text; numeric ordering casts in SQL instead of trusting
// lexicographic order.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

// ProductsTable is the catalog repository. Obtain one via Store.Products.
type ProductsTable struct {
	store *Store
}

// Add validates and inserts a new product, returning its assigned ID.
func (pt *ProductsTable) Add(p types.Product) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	res, err := pt.store.db.Exec(
		"INSERT INTO products (title, price, image, quantity) VALUES (?, ?, ?, ?)",
		p.Title, p.Price.String(), p.Image, p.Quantity,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading product ID: %w", err)
	}
	return id, nil
}

// Get retrieves a product by ID. Returns ErrNotFound if no row exists.
func (pt *ProductsTable) Get(id int64) (*types.Product, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := pt.store.db.QueryRow(
		"SELECT id, title, price, image, quantity FROM products WHERE id = ?", id,
	)
	p, err := hydrateProduct(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}
	return p, nil
}

// Update applies a partial update. Nil fields keep their current value.
// Returns ErrNotFound if the product does not exist, and validates every
// provided field before touching the row.
func (pt *ProductsTable) Update(id int64, upd types.ProductUpdate) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if err := upd.Validate(); err != nil {
		return err
	}
	if upd.Empty() {
		// Nothing to change; still report a missing row.
		return pt.exists(id)
	}

	var sets []string
	var args []any
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, upd.Price.String())
	}
	if upd.Image != nil {
		sets = append(sets, "image = ?")
		args = append(args, *upd.Image)
	}
	if upd.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *upd.Quantity)
	}
	args = append(args, id)

	res, err := pt.store.db.Exec(
		"UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return fmt.Errorf("updating product %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking product update: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes a product together with its dependent cart lines and
// sales records in one transaction, so no orphaned references survive.
func (pt *ProductsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if err := pt.exists(id); err != nil {
		return err
	}

	tx, err := pt.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// The foreign keys declare ON DELETE CASCADE; the explicit deletes
	// keep the cascade visible and correct even on a database file that
	// predates the constraint.
	if _, err := tx.Exec("DELETE FROM cart_lines WHERE product_id = ?", id); err != nil {
		return fmt.Errorf("deleting cart lines for product %d: %w", id, err)
	}
	if _, err := tx.Exec("DELETE FROM sales WHERE product_id = ?", id); err != nil {
		return fmt.Errorf("deleting sales for product %d: %w", id, err)
	}
	if _, err := tx.Exec("DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing product deletion: %w", err)
	}
	return nil
}

// List returns a snapshot of the catalog matching the filter. The zero
// filter returns everything in insertion order.
func (pt *ProductsTable) List(f types.ProductFilter) ([]types.Product, error) {
	query := "SELECT id, title, price, image, quantity FROM products"
	var args []any

	if f.TitleContains != "" {
		query += " WHERE instr(lower(title), lower(?)) > 0"
		args = append(args, f.TitleContains)
	}

	switch f.Sort {
	case types.SortPriceAsc:
		query += " ORDER BY CAST(price AS REAL) ASC, id ASC"
	case types.SortPriceDesc:
		query += " ORDER BY CAST(price AS REAL) DESC, id ASC"
	default:
		query += " ORDER BY id ASC"
	}

	rows, err := pt.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var results []types.Product
	for rows.Next() {
		p, err := hydrateProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return results, nil
}

// DecrementStock lowers a product's quantity on hand by amount. Fails with
// ErrInsufficientStock if the result would be negative, leaving the stock
// unchanged.
func (pt *ProductsTable) DecrementStock(id int64, amount int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if amount < 1 {
		return types.ErrQuantityTooLow
	}

	tx, err := pt.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := decrementStockTx(tx, id, amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing stock decrement: %w", err)
	}
	return nil
}

// exists reports ErrNotFound when the product row is missing.
func (pt *ProductsTable) exists(id int64) error {
	var one int
	err := pt.store.db.QueryRow("SELECT 1 FROM products WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking product %d: %w", id, err)
	}
	return nil
}

// decrementStockTx performs the guarded stock decrement inside the
// caller's transaction. Shared with the sales ledger so a sale and its
// decrement commit together.
func decrementStockTx(tx *sql.Tx, id int64, amount int64) error {
	var have int64
	err := tx.QueryRow("SELECT quantity FROM products WHERE id = ?", id).Scan(&have)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading stock for product %d: %w", id, err)
	}
	if amount > have {
		return types.ErrInsufficientStock
	}

	if _, err := tx.Exec(
		"UPDATE products SET quantity = quantity - ? WHERE id = ?", amount, id,
	); err != nil {
		return fmt.Errorf("decrementing stock for product %d: %w", id, err)
	}
	return nil
}

// hydrateProduct converts one row into a *types.Product. The scan func
// lets it serve both sql.Row and sql.Rows.
func hydrateProduct(scan func(dest ...any) error) (*types.Product, error) {
	var p types.Product
	var price string
	if err := scan(&p.ID, &p.Title, &price, &p.Image, &p.Quantity); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing price %q: %w", price, err)
	}
	p.Price = d
	return &p, nil
}
