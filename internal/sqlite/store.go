// Package sqlite implements the Storix persistence layer on an embedded
// SQLite database: the versioned schema, the product catalog, the active
// cart, and the sales ledger. Callers open one Store at startup, pass it
// down, and close it on shutdown; repositories are reached through the
// Products, Cart, and Sales accessors.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

// Store owns the database handle. One UI process, one Store, one writer.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// Open creates DataDir if needed, opens (or creates) the database file
// with foreign-key enforcement and WAL journaling, and brings the schema
// up to the current version. A schema failure is fatal: the handle is
// closed and the error returned.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, cfg.File())
	dsn := "file:" + path +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Single active writer; also keeps every statement on the connection
	// that ran the pragmas.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Products returns the catalog repository.
func (s *Store) Products() *ProductsTable {
	return &ProductsTable{store: s}
}

// Cart returns the cart repository.
func (s *Store) Cart() *CartTable {
	return &CartTable{store: s}
}

// Sales returns the sales ledger.
func (s *Store) Sales() *SalesTable {
	return &SalesTable{store: s}
}
