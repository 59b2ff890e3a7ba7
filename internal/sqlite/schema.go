// Schema DDL and the versioned migration runner. The schema version lives
// in SQLite's user_version pragma; pending migrations run inside a single
// transaction so a partial upgrade is never visible.
package sqlite

import (
	"database/sql"
	"fmt"
)

// schemaVersion is the version the database is brought up to on open.
const schemaVersion = 2

const (
	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    price TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0)
);`

	createCartLines = `CREATE TABLE IF NOT EXISTS cart_lines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL UNIQUE REFERENCES products(id) ON DELETE CASCADE,
    quantity INTEGER NOT NULL CHECK (quantity >= 1)
);`

	createSales = `CREATE TABLE IF NOT EXISTS sales (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    unit_price TEXT NOT NULL,
    sold_at TEXT NOT NULL
);`

	idxProductsTitle = `CREATE INDEX IF NOT EXISTS idx_products_title ON products(title);`
	idxCartLinesProd = `CREATE INDEX IF NOT EXISTS idx_cart_lines_product ON cart_lines(product_id);`
	idxSalesProduct  = `CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id);`
	idxSalesSoldAt   = `CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at);`
)

// migration is one schema version step, applied in order.
type migration struct {
	version    int
	statements []string
}

// migrations lists every step in ascending version order. Version 1 is the
// catalog and cart; version 2 adds the sales ledger.
var migrations = []migration{
	{
		version: 1,
		statements: []string{
			createProducts,
			createCartLines,
			idxProductsTitle,
			idxCartLinesProd,
		},
	},
	{
		version: 2,
		statements: []string{
			createSales,
			idxSalesProduct,
			idxSalesSoldAt,
		},
	},
}

// ensureSchema brings the database up to schemaVersion. Safe to call on
// every open: an up-to-date database is left untouched, and every DDL
// statement is IF NOT EXISTS. All pending steps and the version bump
// commit as one transaction.
func ensureSchema(db *sql.DB) error {
	current, err := currentVersion(db)
	if err != nil {
		return err
	}
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		for _, stmt := range m.statements {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("applying schema version %d: %w", m.version, err)
			}
		}
	}

	// PRAGMA does not accept bind parameters; schemaVersion is a constant.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}
	return nil
}

// currentVersion reads the last-applied schema version.
func currentVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}
