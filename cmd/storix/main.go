// Package main provides the storix CLI: a small retail helper that
// manages a product catalog, an active cart, and a sales ledger backed by
// a single local SQLite file, and prints invoices from the cart.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
