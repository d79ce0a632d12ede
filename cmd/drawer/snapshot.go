// Snapshot command writes the denormalized publishing shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/internal/format"
)

var snapshotOut string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a denormalized JSON snapshot for publishing",
	Long: `Snapshot emits a single-file JSON array where each recipe's
ingredients are rendered as {name, amount} objects instead of a map.
The shape is for publishing only; import does not read it back.

Example:
  drawer snapshot --out site/recipes.json`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotOut, "out", "", "output file (required)")
	_ = snapshotCmd.MarkFlagRequired("out")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	recipes, err := s.List()
	if err != nil {
		return fmt.Errorf("list recipes: %w", err)
	}

	f, err := os.Create(snapshotOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := format.WriteSnapshot(f, recipes); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Printf("Wrote snapshot: %s\n", snapshotOut)
	return nil
}
