// Import command bulk-loads recipes from a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/internal/format"
)

var (
	importFormat string
	importFile   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk import recipes from a file",
	Long: `Import reads recipes from a file and adds every one whose title
is not already in the store. Re-running the same import never creates
duplicates. A parse error aborts the whole import; nothing is saved.

Formats:
  json   a JSON array of recipe objects
  jsonl  one JSON recipe object per line
  csv    header row with at least title,ingredients,steps
         (ingredients "name:qty,..." / steps "a|b" / tags "x,y")

Example:
  drawer import --fmt csv --file recipes.csv
  drawer import --fmt json --file backup.json --store dinner.db`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "fmt", "", "input format: json, jsonl, or csv (required)")
	importCmd.Flags().StringVar(&importFile, "file", "", "input file (required)")
	_ = importCmd.MarkFlagRequired("fmt")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(importFile)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	recs, err := format.Reader(importFormat, f)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	added, err := s.Import(recs)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	path, _ := resolveStorePath()
	fmt.Printf("Imported %d new recipe(s) into %s\n", added, path)
	return nil
}
