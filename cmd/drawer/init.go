// Init command seeds the store with the built-in sample recipes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/internal/seed"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the store with sample recipes",
	Long: `Init seeds the store with the built-in sample recipes. A sample
recipe that already exists in the store is refreshed in place; other
recipes are left alone.

With --force the store file is removed first, so only the samples remain.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "remove the existing store before seeding")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initForce {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		fmt.Println("Removed existing store.")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := seed.Apply(s); err != nil {
		return fmt.Errorf("seed samples: %w", err)
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	fmt.Println("Initialized store with sample recipes.")
	return nil
}
