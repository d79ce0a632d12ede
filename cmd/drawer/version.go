package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/pkg/drawer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the drawer version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "drawer v%s\n", drawer.Version)
		return nil
	},
}
