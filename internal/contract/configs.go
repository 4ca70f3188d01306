package contract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/streakhq/streak/schema"
)

// MaxWidth caps the terminal width override to keep table layouts sane.
const MaxWidth = 500

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for contribution aggregation.
// This struct remains the "final, validated" config.
type Config struct {
	Email        string
	RegistryPath string
	Excludes     []string
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output messages
	UseColors bool // Enable colored cells in graph output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	EmailArg string

	// --- Fields from rootCmd.PersistentFlags() ---
	Email            string `mapstructure:"email"`
	Registry         string `mapstructure:"registry"`
	Exclude          string `mapstructure:"exclude"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := resolveRegistryPath(cfg, input); err != nil {
		return err
	}
	if err := resolveEmail(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a db-connect string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a db-connect string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Validate that cache and history use different databases
		if cfg.CacheBackend == cfg.HistoryBackend && cfg.CacheBackend != schema.NoneBackend {
			// For SQLite, resolve to actual file paths to catch default path conflicts
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				historyDBPath := cfg.HistoryDBConnect
				if historyDBPath == "" {
					historyDBPath = GetHistoryDBFilePath()
				}
				if cacheDBPath == historyDBPath {
					return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-git related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Width Validation ---
	if input.Width < 0 || input.Width > MaxWidth {
		return fmt.Errorf("width must be between 0 and %d (received %d)", MaxWidth, input.Width)
	}
	cfg.Width = input.Width

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 3. Excludes Processing ---
	defaults := []string{
		"node_modules/", "vendor/", ".venv/", ".cache/",
		"dist/", "build/", "out/", "target/",
	}
	cfg.Excludes = defaults // Set defaults first

	if input.Exclude != "" {
		parts := strings.SplitSeq(input.Exclude, ",")
		for p := range parts {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	return nil
}

// resolveRegistryPath resolves the repository registry file location.
func resolveRegistryPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.Registry)
	if path == "" {
		cfg.RegistryPath = GetRegistryFilePath()
		return nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	cfg.RegistryPath = filepath.Clean(absPath)
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveEmail picks the author email to aggregate: the positional argument
// wins, then the --email flag or config file, then the email git itself has
// configured for the working directory.
func resolveEmail(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if email := strings.TrimSpace(input.EmailArg); email != "" {
		cfg.Email = email
		return nil
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		cfg.Email = email
		return nil
	}

	email, err := client.ConfiguredEmail(ctx, ".")
	if err != nil || strings.TrimSpace(email) == "" {
		return errors.New("no author email found. Pass one as an argument, set --email, or run 'git config --global user.email you@example.com'")
	}
	cfg.Email = strings.TrimSpace(email)
	return nil
}
