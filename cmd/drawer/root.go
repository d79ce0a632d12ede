// Root command for the drawer CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipedrawer/internal/paths"
	"github.com/mesh-intelligence/recipedrawer/pkg/drawer"
)

// Global flag values.
var (
	flagConfigDir string
	flagStore     string
	flagJSON      bool
)

// configStore holds the store value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configStore string

var rootCmd = &cobra.Command{
	Use:   "drawer",
	Short: "Drawer is a personal recipe manager",
	Long: `Drawer stores recipes in a line-delimited JSON file or a SQLite
database, selected by the store path's extension. It can list, show,
randomly pick, bulk import and export recipes, and turn them into
grocery lists.`,
	Version:      drawer.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configStore = cfg.GetString(cfgKeyStore)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "store path (.jsonl file backend, .db/.sqlite/.sqlite3 SQLite backend; default: $(CWD)/recipes.jsonl)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(groceryCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// resolveStorePath returns the store path following the precedence:
// --store flag > config.yaml store > DRAWER_STORE env > $(CWD)/recipes.jsonl.
func resolveStorePath() (string, error) {
	return paths.ResolveStorePath(flagStore, configStore)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DRAWER_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
