// Export command serializes the full store to a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/internal/format"
	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all recipes to a file",
	Long: `Export serializes every recipe in store order, either as a
pretty-printed JSON array (json) or one object per line (jsonl).

Example:
  drawer export --fmt json --out backup.json
  drawer export --fmt jsonl --out recipes.jsonl`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "fmt", format.JSON, "output format: json or jsonl")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (required)")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	switch exportFormat {
	case format.JSONL:
		err = format.WriteJSONL(f, s.Export())
	case format.JSON:
		err = format.WriteJSONArray(f, s.Export())
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownFormat, exportFormat)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Exported to %s\n", exportOut)
	return nil
}
