// Shared helpers for storix CLI commands: store wiring, input parsing,
// error-to-exit-code mapping, and output formatting.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Rudraksh121a/Storix/internal/sqlite"
	"github.com/Rudraksh121a/Storix/pkg/types"
)

// openStore resolves the data directory and opens the store. The returned
// handle is the single database handle for the process; commands close it
// when done.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(types.Config{DataDir: dataDir})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// fail prints the error and exits with a code matching its kind: user
// errors for validation, missing rows, and empty stock; system errors for
// everything else (storage failures).
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInsufficientStock):
		os.Exit(exitUserError)
	default:
		os.Exit(exitSysError)
	}
}

// parseID parses a positive integer ID from a CLI argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// parsePrice parses a decimal price from raw user text.
func parsePrice(arg string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", types.ErrValidation, arg)
	}
	return d, nil
}

// parseQuantity parses an integer quantity from raw user text.
func parseQuantity(arg string) (int64, error) {
	q, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q", types.ErrValidation, arg)
	}
	return q, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// newTabWriter returns a tabwriter on stdout for aligned table output.
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
