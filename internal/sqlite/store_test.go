// Tests for store lifecycle and schema management: open/close, schema
// idempotence, and version tracking.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

// setupStore opens a store on a fresh temp directory, ready for use.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// dec parses a decimal literal for test fixtures.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{DataDir: filepath.Join(dir, "nested")})
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(s.Path())
	assert.NoError(t, err, "database file should exist after Open")
}

func TestOpenRejectsPathlikeDatabaseFile(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir(), DatabaseFile: "sub/dir.db"})
	assert.ErrorIs(t, err, types.ErrDatabaseFileIsPath)
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	tables := func(s *Store) []string {
		rows, err := s.db.Query(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name",
		)
		require.NoError(t, err)
		defer rows.Close()

		var names []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			names = append(names, name)
		}
		require.NoError(t, rows.Err())
		return names
	}

	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	first := tables(s)

	// Run the migration path again on the already-migrated handle.
	require.NoError(t, ensureSchema(s.db))
	require.NoError(t, ensureSchema(s.db))
	assert.Equal(t, first, tables(s))
	require.NoError(t, s.Close())

	// Reopening the same file must also change nothing.
	s2, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s2.Close()
	assert.Equal(t, first, tables(s2))

	v, err := currentVersion(s2.db)
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, v)
}

func TestSchemaCreatesExpectedTables(t *testing.T) {
	s := setupStore(t)

	for _, table := range []string{"products", "cart_lines", "sales"} {
		var one int
		err := s.db.QueryRow(
			"SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&one)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	id, err := s.Products().Add(types.Product{Title: "Tea Pack", Price: dec(t, "120"), Quantity: 5})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s2.Close()

	p, err := s2.Products().Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Tea Pack", p.Title)
	assert.Equal(t, int64(5), p.Quantity)
}
