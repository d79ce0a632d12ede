// List command prints all recipes.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes",
	Long: `List fetches every recipe and displays them. The file backend
preserves insertion order; the SQLite backend orders by title.

Example:
  drawer list
  drawer list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	recipes, err := s.List()
	if err != nil {
		return fmt.Errorf("list recipes: %w", err)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), recipes)
	}

	printRecipeTable(recipes)
	return nil
}

// printRecipeTable prints recipes in a human-readable table format.
func printRecipeTable(recipes []types.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "TITLE\tTAGS\tINGREDIENTS\tSTEPS")
	fmt.Fprintln(w, "-----\t----\t-----------\t-----")
	for _, r := range recipes {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
			title,
			strings.Join(r.Tags, ","),
			len(r.Ingredients),
			len(r.Steps),
		)
	}
	w.Flush()

	// Print output, trimming trailing whitespace from each line.
	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d recipe(s)\n", len(recipes))
}
