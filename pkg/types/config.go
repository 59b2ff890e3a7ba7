// Package types defines the catalog, cart, and sales entities, the filter
// and partial-update value types, and the standard errors shared between
// the storage layer and its callers.
package types

import "errors"

// DefaultDatabaseFile is the database file name created inside DataDir
// when Config.DatabaseFile is empty.
const DefaultDatabaseFile = "storix.db"

// Config holds the parameters needed to open the store.
type Config struct {
	// DataDir is the directory holding the database file. Created on
	// open if it does not exist. Empty means the current directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DatabaseFile overrides the database file name inside DataDir.
	DatabaseFile string `json:"database_file" yaml:"database_file"`
}

// ErrDatabaseFileIsPath rejects file names that try to escape DataDir.
var ErrDatabaseFileIsPath = errors.New("database_file must be a bare file name")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	for _, r := range c.DatabaseFile {
		if r == '/' || r == '\\' {
			return ErrDatabaseFileIsPath
		}
	}
	return nil
}

// File returns the effective database file name.
func (c Config) File() string {
	if c.DatabaseFile == "" {
		return DefaultDatabaseFile
	}
	return c.DatabaseFile
}
