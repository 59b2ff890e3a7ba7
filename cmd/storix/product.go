// Product subcommands: catalog CRUD and stock decrement.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rudraksh121a/Storix/pkg/types"
)

var (
	productTitle    string
	productPrice    string
	productQuantity string
	productImage    string
	productSearch   string
	productSort     string
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

func init() {
	productAddCmd.Flags().StringVar(&productTitle, "title", "", "product title (required)")
	productAddCmd.Flags().StringVar(&productPrice, "price", "0", "unit price")
	productAddCmd.Flags().StringVar(&productQuantity, "quantity", "0", "stock on hand")
	productAddCmd.Flags().StringVar(&productImage, "image", "", "image reference")

	productUpdateCmd.Flags().StringVar(&productTitle, "title", "", "new title")
	productUpdateCmd.Flags().StringVar(&productPrice, "price", "", "new unit price")
	productUpdateCmd.Flags().StringVar(&productQuantity, "quantity", "", "new stock on hand")
	productUpdateCmd.Flags().StringVar(&productImage, "image", "", "new image reference")

	productListCmd.Flags().StringVar(&productSearch, "search", "", "case-insensitive title substring")
	productListCmd.Flags().StringVar(&productSort, "sort", "", "price_asc or price_desc (default: insertion order)")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	productCmd.AddCommand(productDecrementCmd)
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		price, err := parsePrice(productPrice)
		if err != nil {
			fail("product add", err)
		}
		quantity, err := parseQuantity(productQuantity)
		if err != nil {
			fail("product add", err)
		}

		store, err := openStore()
		if err != nil {
			fail("product add", err)
		}
		defer store.Close()

		id, err := store.Products().Add(types.Product{
			Title:    productTitle,
			Price:    price,
			Image:    productImage,
			Quantity: quantity,
		})
		if err != nil {
			fail("product add", err)
		}

		if flagJSON {
			p, err := store.Products().Get(id)
			if err != nil {
				fail("product add", err)
			}
			if err := printJSON(p); err != nil {
				fail("product add", err)
			}
			return
		}
		fmt.Printf("added product %d\n", id)
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail("product list", err)
		}
		defer store.Close()

		products, err := store.Products().List(types.ProductFilter{
			TitleContains: productSearch,
			Sort:          types.ProductSort(productSort),
		})
		if err != nil {
			fail("product list", err)
		}

		if flagJSON {
			if err := printJSON(products); err != nil {
				fail("product list", err)
			}
			return
		}

		w := newTabWriter()
		fmt.Fprintln(w, "ID\tTITLE\tPRICE\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Title, p.Price.StringFixed(2), p.Quantity)
		}
		w.Flush()
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update product fields; unset flags keep current values",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fail("product update", err)
		}

		var upd types.ProductUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &productTitle
		}
		if cmd.Flags().Changed("price") {
			price, err := parsePrice(productPrice)
			if err != nil {
				fail("product update", err)
			}
			upd.Price = &price
		}
		if cmd.Flags().Changed("quantity") {
			quantity, err := parseQuantity(productQuantity)
			if err != nil {
				fail("product update", err)
			}
			upd.Quantity = &quantity
		}
		if cmd.Flags().Changed("image") {
			upd.Image = &productImage
		}

		store, err := openStore()
		if err != nil {
			fail("product update", err)
		}
		defer store.Close()

		if err := store.Products().Update(id, upd); err != nil {
			fail("product update", err)
		}
		fmt.Printf("updated product %d\n", id)
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product and its cart and ledger references",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fail("product delete", err)
		}

		store, err := openStore()
		if err != nil {
			fail("product delete", err)
		}
		defer store.Close()

		if err := store.Products().Delete(id); err != nil {
			fail("product delete", err)
		}
		fmt.Printf("deleted product %d\n", id)
	},
}

var productDecrementCmd = &cobra.Command{
	Use:   "decrement <id> <amount>",
	Short: "Decrement a product's stock on hand",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fail("product decrement", err)
		}
		amount, err := parseQuantity(args[1])
		if err != nil {
			fail("product decrement", err)
		}

		store, err := openStore()
		if err != nil {
			fail("product decrement", err)
		}
		defer store.Close()

		if err := store.Products().DecrementStock(id, amount); err != nil {
			fail("product decrement", err)
		}
		fmt.Printf("decremented product %d by %d\n", id, amount)
	},
}
