package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultLookbackDays = 30
	DefaultMaxRepos     = 50
	DefaultExportDir    = "exports"
	MaxLookbackDays     = 3650
	MaxRepoLimit        = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DefaultExcludes are directory names never descended during a scan.
var DefaultExcludes = []string{".git", "node_modules", "venv", "__pycache__"}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a scan.
// This struct remains the "final, validated" config.
type Config struct {
	ScanRoots    []string  // Directories walked for repositories, in order
	LookbackDays int       // Days in the trailing activity window
	CutoffTime   time.Time // Commits at/after this instant count toward the window
	MaxRepos     int       // Upper bound of repositories located per scan
	Excludes     []string  // Directory names skipped by exact match
	ExportJSON   bool      // Write the JSON export instead of the dashboard
	ExportDir    string    // Directory receiving export documents
	Width        int       // Terminal width override (0 = auto-detect)
	UseColors    bool      // Enable colored output on the dashboard
	UseEmojis    bool      // Enable emojis in output headers

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Emoji            string `mapstructure:"emoji"`
	ExportDir        string `mapstructure:"export-dir"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from scanCmd.Flags() ---
	Path                string   `mapstructure:"path"`
	Days                int      `mapstructure:"days"`
	ExportJSON          bool     `mapstructure:"export-json"`
	Exclude             []string `mapstructure:"exclude"`
	NoExcludeFromConfig bool     `mapstructure:"no-exclude-from-config"`
	MaxRepos            int      `mapstructure:"max-repos"`

	// --- Fields only read from the config file ---
	ScanDirectories []string `mapstructure:"scan_directories"`
	ExcludePatterns []string `mapstructure:"exclude_patterns"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ScanRoots != nil {
		clone.ScanRoots = make([]string, len(c.ScanRoots))
		copy(clone.ScanRoots, c.ScanRoots)
	}
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// CloneWithWindow creates a copy of the Config with a new lookback window
// anchored at the given time.
func (c *Config) CloneWithWindow(days int, now time.Time) *Config {
	clone := c.Clone()
	clone.LookbackDays = days
	clone.CutoffTime = now.AddDate(0, 0, -days)
	return clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWindow(cfg, input); err != nil {
		return err
	}
	if err := processExcludes(cfg, input); err != nil {
		return err
	}
	if err := resolveScanRoots(cfg, input); err != nil {
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
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
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
	// An empty history backend leaves scan tracking disabled.
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Cache and history must not share a SQLite database file.
		if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
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

	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.ExportJSON = input.ExportJSON
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// --- 1. MaxRepos Validation ---
	if input.MaxRepos <= 0 || input.MaxRepos > MaxRepoLimit {
		return fmt.Errorf("max-repos must be greater than 0 and cannot exceed %d (received %d)", MaxRepoLimit, input.MaxRepos)
	}
	cfg.MaxRepos = input.MaxRepos

	// --- 2. Export Directory Validation ---
	exportDir := strings.TrimSpace(input.ExportDir)
	if exportDir == "" {
		exportDir = DefaultExportDir
	}
	cfg.ExportDir = exportDir

	// --- 3. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	return nil
}

// processWindow validates the lookback window and derives the cutoff time.
func processWindow(cfg *Config, input *ConfigRawInput) error {
	if input.Days <= 0 || input.Days > MaxLookbackDays {
		return fmt.Errorf("days must be greater than 0 and cannot exceed %d (received %d)", MaxLookbackDays, input.Days)
	}
	cfg.LookbackDays = input.Days
	cfg.CutoffTime = time.Now().AddDate(0, 0, -input.Days)
	return nil
}

// RevalidateWindow applies a new lookback window to an already validated
// config. Embedded callers such as the MCP handlers use this when a request
// overrides the window.
func RevalidateWindow(cfg *Config, days int) error {
	if days <= 0 || days > MaxLookbackDays {
		return fmt.Errorf("days must be greater than 0 and cannot exceed %d (received %d)", MaxLookbackDays, days)
	}
	cfg.LookbackDays = days
	cfg.CutoffTime = time.Now().AddDate(0, 0, -days)
	return nil
}

// processExcludes merges the built-in, config-supplied, and flag-supplied
// exclude names into one deduplicated list.
func processExcludes(cfg *Config, input *ConfigRawInput) error {
	merged := make([]string, 0, len(DefaultExcludes)+len(input.ExcludePatterns)+len(input.Exclude))
	seen := make(map[string]struct{})

	add := func(names []string) {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}

	add(DefaultExcludes)
	if !input.NoExcludeFromConfig {
		add(input.ExcludePatterns)
	}
	add(input.Exclude)

	cfg.Excludes = merged
	return nil
}

// resolveScanRoots picks the directories to walk. A positional argument wins
// over --path, which wins over config scan_directories, which falls back to
// the current directory. Roots are made absolute; missing roots are left for
// the locator to skip.
func resolveScanRoots(cfg *Config, input *ConfigRawInput) error {
	var roots []string
	switch {
	case strings.TrimSpace(input.RootPathStr) != "":
		roots = []string{input.RootPathStr}
	case strings.TrimSpace(input.Path) != "":
		roots = []string{input.Path}
	case len(input.ScanDirectories) > 0:
		roots = input.ScanDirectories
	default:
		roots = []string{"."}
	}

	cfg.ScanRoots = make([]string, 0, len(roots))
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("cannot resolve scan root %q: %w", root, err)
		}
		cfg.ScanRoots = append(cfg.ScanRoots, filepath.Clean(absRoot))
	}
	if len(cfg.ScanRoots) == 0 {
		return fmt.Errorf("no scan roots resolved from inputs")
	}
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
