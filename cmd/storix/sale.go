// Sale subcommands: recording single sales and browsing the ledger.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

var saleProductID int64

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and browse sales",
}

func init() {
	saleListCmd.Flags().Int64Var(&saleProductID, "product", 0, "limit to one product")

	saleCmd.AddCommand(saleRecordCmd)
	saleCmd.AddCommand(saleListCmd)
}

var saleRecordCmd = &cobra.Command{
	Use:   "record <product-id> <quantity> <unit-price>",
	Short: "Record a sale and decrement stock atomically",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		productID, err := parseID(args[0])
		if err != nil {
			fail("sale record", err)
		}
		quantity, err := parseQuantity(args[1])
		if err != nil {
			fail("sale record", err)
		}
		unitPrice, err := parsePrice(args[2])
		if err != nil {
			fail("sale record", err)
		}

		store, err := openStore()
		if err != nil {
			fail("sale record", err)
		}
		defer store.Close()

		if err := store.Sales().Record(productID, quantity, unitPrice); err != nil {
			fail("sale record", err)
		}
		fmt.Printf("recorded sale: product %d, qty %d at %s\n",
			productID, quantity, unitPrice.StringFixed(2))
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger records, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail("sale list", err)
		}
		defer store.Close()

		records, err := store.Sales().List(types.SalesFilter{ProductID: saleProductID})
		if err != nil {
			fail("sale list", err)
		}

		if flagJSON {
			if err := printJSON(records); err != nil {
				fail("sale list", err)
			}
			return
		}

		w := newTabWriter()
		fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tUNIT\tTOTAL\tSOLD AT")
		for _, r := range records {
			fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n",
				r.ID, r.ProductID, r.Quantity,
				r.UnitPrice.StringFixed(2), r.Total().StringFixed(2),
				r.SoldAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
	},
}
