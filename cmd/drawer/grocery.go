// Grocery command builds a grocery list from stored recipes.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

var (
	groceryCount int
	groceryTag   string
	groceryOut   string
)

var groceryCmd = &cobra.Command{
	Use:   "grocery",
	Short: "Generate a grocery list",
	Long: `Grocery flattens recipe ingredients into a shopping list. By
default every recipe is included; --count draws a random subset instead.
Quantities for the same ingredient name are listed together for display
but never summed.

Example:
  drawer grocery
  drawer grocery --count 3 --out grocery.txt`,
	RunE: runGrocery,
}

func init() {
	groceryCmd.Flags().IntVarP(&groceryCount, "count", "n", 0, "number of random recipes (0 = all)")
	groceryCmd.Flags().StringVarP(&groceryTag, "tag", "t", "", "restrict to recipes with this tag")
	groceryCmd.Flags().StringVarP(&groceryOut, "out", "o", "", "output file (default: stdout)")
}

func runGrocery(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var recipes []types.Recipe
	if groceryCount > 0 {
		recipes, err = s.Random(groceryCount, groceryTag)
	} else {
		recipes, err = s.List()
		if err == nil && groceryTag != "" {
			kept := recipes[:0]
			for _, r := range recipes {
				if r.HasTag(groceryTag) {
					kept = append(kept, r)
				}
			}
			recipes = kept
		}
	}
	if err != nil {
		return fmt.Errorf("select recipes: %w", err)
	}

	lines := types.GroceryLines(recipes)

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), lines)
	}

	var w io.Writer = cmd.OutOrStdout()
	if groceryOut != "" {
		f, err := os.Create(groceryOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", groceryOut, err)
		}
		defer f.Close()
		w = f
	}

	writeGroceryList(w, lines)

	if groceryOut != "" {
		fmt.Printf("Grocery list written to %s\n", groceryOut)
	}
	return nil
}

// writeGroceryList groups quantities by ingredient name in first-appearance
// order, one "name - qty1, qty2" line each. Display-only: the underlying
// lines stay unmerged.
func writeGroceryList(w io.Writer, lines []types.GroceryLine) {
	order := []string{}
	grouped := map[string][]string{}
	for _, l := range lines {
		if _, seen := grouped[l.Name]; !seen {
			order = append(order, l.Name)
		}
		grouped[l.Name] = append(grouped[l.Name], l.Quantity)
	}
	for _, name := range order {
		fmt.Fprintf(w, "%s - %s\n", name, strings.Join(grouped[name], ", "))
	}
}
