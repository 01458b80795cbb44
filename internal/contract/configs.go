package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mattmahin/authortrend/schema"
)

// Config holds the validated, final configuration for a report run.
type Config struct {
	RepoPath     string    // Absolute path to the repository root
	Branch       string    // Branch to analyze; empty means the default branch
	Before       time.Time // Global upper date bound; zero means no bound
	Workers      int       // Cap on the per-period blame worker pool
	Precision    int       // Decimal precision for percentage cells
	ByVolume     bool      // Sort rows by total lines instead of alphabetically
	AsPercent    bool      // Render cells as percentages of the column total
	ShowExcluded bool      // Print the excluded-files diagnostic table
	Width        int       // Terminal width override (0 = auto-detect)
	UseColors    bool      // Colored reason labels in the excluded table

	// Path prefixes treated as generated output or imported/vendored code.
	GeneratedPrefixes []string
	ImportedPrefixes  []string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Branch            string `mapstructure:"branch"`
	Before            string `mapstructure:"before"`
	Workers           int    `mapstructure:"workers"`
	Precision         int    `mapstructure:"precision"`
	ByVolume          bool   `mapstructure:"by-volume"`
	Percent           bool   `mapstructure:"percent"`
	ShowExcluded      bool   `mapstructure:"show-excluded"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	GeneratedPrefixes string `mapstructure:"generated-prefixes"`
	ImportedPrefixes  string `mapstructure:"imported-prefixes"`
	CacheBackend      string `mapstructure:"cache-backend"`
	CacheDBConnect    string `mapstructure:"cache-db-connect"`
}

// Default path prefixes, matching the layout this tool was first built for.
const (
	DefaultGeneratedPrefixes = "cache/"
	DefaultImportedPrefixes  = "xip/"
)

// ProcessAndValidate populates cfg from the raw input, resolving the
// repository root through the git client and validating every field.
// Validation failures here are fatal conditions.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := resolveRepoRoot(ctx, cfg, client, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processBeforeDate(cfg, input); err != nil {
		return err
	}
	return validateBackendConfig(cfg, input)
}

// resolveRepoRoot turns the positional path into the repository root.
func resolveRepoRoot(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	root, err := client.GetRepoRoot(ctx, input.RepoPathStr)
	if err != nil {
		return fmt.Errorf("target %q is not inside a version-controlled repository: %w", input.RepoPathStr, err)
	}
	cfg.RepoPath = root
	return nil
}

// validateSimpleInputs handles fields that need only range or enum checks.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 0 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	cfg.Branch = strings.TrimSpace(input.Branch)
	cfg.ByVolume = input.ByVolume
	cfg.AsPercent = input.Percent
	cfg.ShowExcluded = input.ShowExcluded

	useColors, err := parseBoolFlag(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value %q: use yes/no/true/false/1/0", input.Color)
	}
	cfg.UseColors = useColors

	cfg.GeneratedPrefixes = splitPrefixes(input.GeneratedPrefixes)
	cfg.ImportedPrefixes = splitPrefixes(input.ImportedPrefixes)
	return nil
}

// processBeforeDate parses the optional global upper date bound.
func processBeforeDate(cfg *Config, input *ConfigRawInput) error {
	if input.Before == "" {
		return nil
	}
	t, err := time.Parse(schema.DateOnlyFormat, input.Before)
	if err != nil {
		return fmt.Errorf("invalid --before date %q: expected YYYY-MM-DD", input.Before)
	}
	cfg.Before = t
	return nil
}

// validateBackendConfig checks the cache backend selection.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(input.CacheBackend)
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		// sqlite defaults its own file path; none needs nothing
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(input.CacheDBConnect) == "" {
			return fmt.Errorf("cache backend %s requires --cache-db-connect", backend)
		}
	default:
		return fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect
	return nil
}

// parseBoolFlag accepts the human-friendly spellings used by the color flag.
func parseBoolFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "":
		return true, nil
	case "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized boolean: %s", s)
}

// splitPrefixes parses a comma-separated prefix list, dropping empties.
func splitPrefixes(s string) []string {
	var prefixes []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}
