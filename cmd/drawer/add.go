// Add command creates a new recipe.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/internal/format"
	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

var (
	addTitle       string
	addIngredients string
	addSteps       string
	addTags        string
	addServings    string
	addSourceURL   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new recipe",
	Long: `Add creates a new recipe in the store.

Ingredients are comma-separated name:quantity pairs, steps are separated
by pipes, tags by commas. Quantities are free text; nothing is parsed.

Example:
  drawer add --title "Toast" --ingredients "bread:2 slices" --steps "Toast it" --tags breakfast
  drawer add -t "Pancakes" -i "flour:200g,milk:250ml" -s "Mix|Cook on griddle"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "recipe title (required)")
	addCmd.Flags().StringVarP(&addIngredients, "ingredients", "i", "", `comma-separated name:quantity pairs, e.g. "flour:200g,milk:250ml"`)
	addCmd.Flags().StringVarP(&addSteps, "steps", "s", "", "pipe-separated steps in order")
	addCmd.Flags().StringVarP(&addTags, "tags", "g", "", "comma-separated tags (optional)")
	addCmd.Flags().StringVar(&addServings, "servings", "", "servings (optional)")
	addCmd.Flags().StringVar(&addSourceURL, "source-url", "", "source URL (optional)")
	_ = addCmd.MarkFlagRequired("title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ings, err := format.ParseIngredients(addIngredients)
	if err != nil {
		return err
	}

	rec := types.Recipe{
		Title:       addTitle,
		Ingredients: ings,
		Steps:       format.ParseSteps(addSteps),
		Tags:        format.ParseTags(addTags),
		Servings:    addServings,
		SourceURL:   addSourceURL,
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Add(rec); err != nil {
		return fmt.Errorf("add recipe: %w", err)
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	fmt.Printf("Recipe %q added.\n", rec.Title)
	return nil
}
