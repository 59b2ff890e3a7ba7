// Cart subcommands: add-or-increment, quantity change, removal, listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cartDelta int64

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the active cart",
}

func init() {
	cartAddCmd.Flags().Int64Var(&cartDelta, "qty", 1, "quantity to add")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	cartCmd.AddCommand(cartShowCmd)
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart, merging into an existing line",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		productID, err := parseID(args[0])
		if err != nil {
			fail("cart add", err)
		}

		store, err := openStore()
		if err != nil {
			fail("cart add", err)
		}
		defer store.Close()

		if err := store.Cart().AddOrIncrement(productID, cartDelta); err != nil {
			fail("cart add", err)
		}
		fmt.Printf("added product %d to cart\n", productID)
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <line-id> <quantity>",
	Short: "Set a cart line's quantity (minimum 1; use remove to delete)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		lineID, err := parseID(args[0])
		if err != nil {
			fail("cart set", err)
		}
		quantity, err := parseQuantity(args[1])
		if err != nil {
			fail("cart set", err)
		}

		store, err := openStore()
		if err != nil {
			fail("cart set", err)
		}
		defer store.Close()

		if err := store.Cart().SetQuantity(lineID, quantity); err != nil {
			fail("cart set", err)
		}
		fmt.Printf("cart line %d set to %d\n", lineID, quantity)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <line-id>",
	Short: "Remove one line from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lineID, err := parseID(args[0])
		if err != nil {
			fail("cart remove", err)
		}

		store, err := openStore()
		if err != nil {
			fail("cart remove", err)
		}
		defer store.Close()

		if err := store.Cart().Remove(lineID); err != nil {
			fail("cart remove", err)
		}
		fmt.Printf("removed cart line %d\n", lineID)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every line from the cart",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail("cart clear", err)
		}
		defer store.Close()

		if err := store.Cart().Clear(); err != nil {
			fail("cart clear", err)
		}
		fmt.Println("cart cleared")
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart with line totals and the running total",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail("cart show", err)
		}
		defer store.Close()

		entries, err := store.Cart().List()
		if err != nil {
			fail("cart show", err)
		}
		total, err := store.Cart().Total()
		if err != nil {
			fail("cart show", err)
		}

		if flagJSON {
			out := struct {
				Lines any    `json:"lines"`
				Total string `json:"total"`
			}{entries, total.StringFixed(2)}
			if err := printJSON(out); err != nil {
				fail("cart show", err)
			}
			return
		}

		w := newTabWriter()
		fmt.Fprintln(w, "LINE\tPRODUCT\tTITLE\tQTY\tUNIT\tTOTAL")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%s\n",
				e.LineID, e.ProductID, e.Title, e.Quantity,
				e.UnitPrice.StringFixed(2), e.LineTotal().StringFixed(2))
		}
		w.Flush()
		fmt.Printf("Total: %s\n", total.StringFixed(2))
	},
}
