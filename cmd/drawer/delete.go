// Delete command removes a recipe by title.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a recipe by title",
	Long: `Delete removes the recipe with the given title. Matching is
case-insensitive and ignores surrounding whitespace. A missing title is
reported but is not an error.

Example:
  drawer delete "Chicken Salad"`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	removed, err := s.Delete(args[0])
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if !removed {
		fmt.Printf("Recipe %q not found.\n", args[0])
		return nil
	}

	if err := s.Save(); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	fmt.Printf("Recipe %q deleted.\n", args[0])
	return nil
}
