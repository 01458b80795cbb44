package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattmahin/authortrend/core"
	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/internal/iocache"
	"github.com/mattmahin/authortrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd runs the attribution report; subcommands cover diagnostics.
var rootCmd = &cobra.Command{
	Use:   "authortrend [repo-path]",
	Short: "Track how many lines of code each author is attributed with over time.",
	Long: `Authortrend samples a repository at monthly snapshots and blames every
eligible file at each snapshot, producing an author-by-month matrix of
attributed line counts.

Periods run from January 2016 through the current month. Months before the
repository existed are skipped. Rows are authors (spelling variants like
"jane-doe" and "Jane_Doe" merge into one canonical name), columns are months,
cells are line counts or percentages of the month's total.

Examples:
  # Report for the repository containing the current directory
  authortrend

  # Percentages on a specific branch, busiest authors first
  authortrend --branch main --percent --by-volume ~/src/project

  # See which files are being skipped and why
  authortrend --show-excluded

  # Stop sampling at a historical date
  authortrend --before 2022-06-30`,
	Args:               cobra.MaximumNArgs(1),
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Version:            version,
	PreRunE:            sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Errors surface through Execute so main can close the cache
		// store before exiting.
		if err := core.ExecuteAuthorTrend(rootCtx, cfg, iocache.Manager); err != nil {
			return fmt.Errorf("cannot run attribution report: %w", err)
		}
		return nil
	},
}

// configureConfigSource points viper at the config file to use: an explicit
// --config path, or .authortrend.yaml discovered in . and $HOME.
func configureConfigSource() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".authortrend") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configureConfigSource()

	// Set environment variable prefix
	viper.SetEnvPrefix("AUTHORTREND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("workers", schema.DefaultWorkers)
	viper.SetDefault("precision", schema.DefaultPrecision)
	viper.SetDefault("color", "yes")
	viper.SetDefault("generated-prefixes", contract.DefaultGeneratedPrefixes)
	viper.SetDefault("imported-prefixes", contract.DefaultImportedPrefixes)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	configureConfigSource()

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	client := contract.NewLocalGitClient()
	if err := contract.ProcessAndValidate(ctx, cfg, client, input); err != nil {
		return err
	}

	// 5. Initialize the blame cache with validated config
	if err := iocache.InitStore(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize blame cache: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
