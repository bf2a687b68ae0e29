package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd groups the code generators for the catalog store
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate code for the catalog store",
	Long: `generate code derived from the catalog schema.

Run a subcommand such as "schema" to rebuild the typed query builders
after adding a migration.`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
