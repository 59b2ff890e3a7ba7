// Invoice and checkout commands. "invoice" prints an invoice for the
// current cart without selling anything; "checkout" sells the whole cart
// through the ledger and prints the resulting invoice.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rudraksh121a/Storix/internal/sqlite"
	"github.com/Rudraksh121a/Storix/pkg/invoice"
	"github.com/Rudraksh121a/Storix/pkg/types"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Print an invoice for the current cart",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail("invoice", err)
		}
		defer store.Close()

		entries, err := store.Cart().List()
		if err != nil {
			fail("invoice", err)
		}

		inv := invoice.Build(invoice.FromCart(entries))
		renderInvoice(inv)
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Sell the whole cart: record sales, decrement stock, clear cart",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail("checkout", err)
		}
		defer store.Close()

		// Titles must be captured before checkout clears the cart.
		titles, err := productTitles(store)
		if err != nil {
			fail("checkout", err)
		}

		records, err := store.Sales().CheckoutCart()
		if err != nil {
			fail("checkout", err)
		}
		if len(records) == 0 {
			fmt.Println("cart is empty")
			return
		}

		inv := invoice.Build(invoice.FromSales(records, func(productID int64) string {
			return titles[productID]
		}))
		renderInvoice(inv)
	},
}

// productTitles builds a product-ID-to-title map from the catalog.
func productTitles(store *sqlite.Store) (map[int64]string, error) {
	products, err := store.Products().List(types.ProductFilter{})
	if err != nil {
		return nil, err
	}
	titles := make(map[int64]string, len(products))
	for _, p := range products {
		titles[p.ID] = p.Title
	}
	return titles, nil
}

// renderInvoice prints an invoice as JSON or as an aligned text table.
func renderInvoice(inv invoice.Invoice) {
	if flagJSON {
		if err := printJSON(inv); err != nil {
			fail("invoice", err)
		}
		return
	}

	fmt.Printf("%s  %s\n", inv.Number, inv.IssuedAt.Format("2006-01-02"))
	w := newTabWriter()
	fmt.Fprintln(w, "TITLE\tQTY\tUNIT\tAMOUNT")
	for _, l := range inv.Lines {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			l.Title, l.Quantity, l.UnitPrice.StringFixed(2), l.DisplayAmount())
	}
	w.Flush()
	fmt.Printf("Total: %s\n", inv.DisplayTotal())
}
