package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/debtmap/debtmap/schema"
)

// Default values for configuration.
const (
	DefaultLimit     = 0 // 0 means all rows
	MaxLimit         = 100000
	DefaultPrecision = 2
	MaxPrecision     = 6
)

// DefaultWorkers is the default number of concurrent scoring workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for an analysis run.
// This struct is the "final, validated" config.
type Config struct {
	TargetDir  string
	Since      string // empty means full history
	Extensions []string
	Excludes   []string
	Workers    int
	Output     schema.OutputMode
	OutputFile string
	SortBy     schema.SortField
	Limit      int
	Deleted    bool // include entries with unset maintainability
	JSONList   bool // mi/changes listing as JSON
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TargetDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Since      string `mapstructure:"since"`
	Ext        string `mapstructure:"ext"`
	Exclude    string `mapstructure:"exclude"`
	Workers    int    `mapstructure:"workers"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from reportCmd.Flags() ---
	Sort    string `mapstructure:"sort"`
	Limit   int    `mapstructure:"limit"`
	Deleted bool   `mapstructure:"deleted"`

	// --- Fields from mi/changes Flags() ---
	JSON bool `mapstructure:"json"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Extensions != nil {
		clone.Extensions = make([]string, len(c.Extensions))
		copy(clone.Extensions, c.Extensions)
	}
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. Invalid values are rejected here,
// at the configuration boundary, before any analysis starts.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSince(cfg, input); err != nil {
		return err
	}
	if err := processExtensions(cfg, input); err != nil {
		return err
	}
	processExcludes(cfg, input)
	return resolveTargetDir(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Deleted = input.Deleted
	cfg.JSONList = input.JSON
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit < 0 || input.Limit > MaxLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if !schema.ValidOutputModes[cfg.Output] {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetMode && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	cfg.SortBy = schema.SortField(strings.ToLower(input.Sort))
	if !schema.ValidSortFields[cfg.SortBy] {
		return fmt.Errorf("invalid sort field '%s'. must be path, kind, maintainability, changes, hotspot", input.Sort)
	}

	return nil
}

// processSince validates the --since date. Only the strict YYYY-MM-DD layout
// is accepted; anything else is rejected before git ever sees it.
func processSince(cfg *Config, input *ConfigRawInput) error {
	since := strings.TrimSpace(input.Since)
	if since == "" {
		cfg.Since = ""
		return nil
	}
	t, err := time.Parse(schema.SinceDateFormat, since)
	if err != nil || t.Format(schema.SinceDateFormat) != since {
		return fmt.Errorf("invalid --since date '%s'. expected YYYY-MM-DD", input.Since)
	}
	cfg.Since = since
	return nil
}

// processExtensions parses the comma-separated --ext list, lowercasing and
// adding a leading dot where missing. An empty flag keeps the default set.
func processExtensions(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.Ext) == "" {
		cfg.Extensions = append([]string(nil), schema.DefaultExtensions...)
		return nil
	}
	var exts []string
	for part := range strings.SplitSeq(input.Ext, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return fmt.Errorf("invalid --ext value '%s'. expected comma-separated extensions", input.Ext)
	}
	cfg.Extensions = exts
	return nil
}

// processExcludes splits and normalizes the comma-separated --exclude list.
func processExcludes(cfg *Config, input *ConfigRawInput) {
	cfg.Excludes = nil
	for part := range strings.SplitSeq(input.Exclude, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			cfg.Excludes = append(cfg.Excludes, NormalizePath(trimmed))
		}
	}
}

// resolveTargetDir checks that the analysis target exists and is a directory.
func resolveTargetDir(cfg *Config, input *ConfigRawInput) error {
	target := input.TargetDirStr
	if target == "" {
		target = "."
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot access target directory %q: %w", target, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("target %q is not a directory", target)
	}
	cfg.TargetDir = filepath.Clean(target)
	return nil
}
