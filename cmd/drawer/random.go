// Random command picks recipes uniformly at random.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	randomCount int
	randomTag   string
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick random recipe(s), optionally by tag",
	Long: `Random draws up to --count recipes uniformly without replacement,
optionally restricted to recipes carrying --tag. Fewer recipes are
returned when the pool is smaller than the requested count.

Example:
  drawer random
  drawer random --count 3 --tag vegetarian`,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of recipes")
	randomCmd.Flags().StringVarP(&randomTag, "tag", "t", "", "restrict the pool to recipes with this tag")
}

func runRandom(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	picks, err := s.Random(randomCount, randomTag)
	if err != nil {
		return fmt.Errorf("pick recipes: %w", err)
	}
	if len(picks) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), picks)
	}

	for _, r := range picks {
		printRecipe(cmd.OutOrStdout(), r)
	}
	return nil
}
