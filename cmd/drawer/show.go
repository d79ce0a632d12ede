// Show command prints a single recipe by title.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show one recipe",
	Long: `Show prints the recipe with the given title. Matching is
case-insensitive and ignores surrounding whitespace.

Example:
  drawer show "Quick Pancakes"
  drawer show toast --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	rec, ok, err := s.Get(args[0])
	if err != nil {
		return fmt.Errorf("get recipe: %w", err)
	}
	if !ok {
		fmt.Printf("Recipe %q not found.\n", args[0])
		return nil
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), rec)
	}

	printRecipe(cmd.OutOrStdout(), rec)
	return nil
}
