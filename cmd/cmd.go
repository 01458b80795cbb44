// Package cmd defines the command-line interface for authortrend.
package cmd

import (
	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().BoolP("percent", "p", false, "Display counts as percentages of each month's total")
	rootCmd.PersistentFlags().Bool("by-volume", false, "Sort rows by total attributed lines instead of alphabetically")
	rootCmd.PersistentFlags().Bool("show-excluded", false, "Print the excluded files and the reason each was skipped")
	rootCmd.PersistentFlags().StringP("branch", "b", "", "Branch to analyze (defaults to the repository's default branch)")
	rootCmd.PersistentFlags().String("before", "", "Only look at commits at or before this date: YYYY-MM-DD")
	rootCmd.PersistentFlags().Int("workers", schema.DefaultWorkers, "Number of concurrent blame workers per month")
	rootCmd.PersistentFlags().Int("precision", schema.DefaultPrecision, "Decimal precision for percentage cells")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("generated-prefixes", contract.DefaultGeneratedPrefixes, "Comma-separated path prefixes treated as generated output")
	rootCmd.PersistentFlags().String("imported-prefixes", contract.DefaultImportedPrefixes, "Comma-separated path prefixes treated as imported/vendored code")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
