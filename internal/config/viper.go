// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Taxonomy struct {
		// File is the path to the taxonomy YAML (vendor aliases, vendor
		// rules, category keywords). Empty means compiled-in defaults.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"taxonomy" yaml:"taxonomy"`

	Classification struct {
		// ConfidenceDivisor scales raw keyword scores into [0,1]. The
		// divisor is a tunable, not a contract; only the cap at 1.0 and
		// the monotonic behavior matter.
		ConfidenceDivisor float64 `mapstructure:"confidence_divisor" yaml:"confidence_divisor"`
	} `mapstructure:"classification" yaml:"classification"`

	Pipeline struct {
		// ExcludedReps are sales reps whose rows are dropped before
		// enrichment (house accounts, internal test reps).
		ExcludedReps []string `mapstructure:"excluded_reps" yaml:"excluded_reps"`
		// ExcludedActivities are order activity tags dropped before
		// enrichment (e.g. Projects).
		ExcludedActivities []string `mapstructure:"excluded_activities" yaml:"excluded_activities"`
		// WebRep is the sales rep whose orders are always counted Online.
		WebRep string `mapstructure:"web_rep" yaml:"web_rep"`
		// KeepIdentitylessRows keeps rows with neither SKU nor description.
		// The upstream system dropped them; the reference workbook keeps
		// them, so the policy is explicit here.
		KeepIdentitylessRows bool `mapstructure:"keep_identityless_rows" yaml:"keep_identityless_rows"`
		// HighROIThreshold flags lines whose ROI exceeds it for QC review.
		HighROIThreshold float64 `mapstructure:"high_roi_threshold" yaml:"high_roi_threshold"`
	} `mapstructure:"pipeline" yaml:"pipeline"`

	Compare struct {
		// SampleLimit bounds how many mismatch examples each category of
		// the reconciliation report carries.
		SampleLimit int `mapstructure:"sample_limit" yaml:"sample_limit"`
		// Fields is the list of columns compared for matched keys.
		Fields []string `mapstructure:"fields" yaml:"fields"`
	} `mapstructure:"compare" yaml:"compare"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config file, then DASH_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.dash-etl")
	v.AddConfigPath(".dash-etl")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// API key always comes from the unprefixed env var
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("taxonomy.file", "")

	v.SetDefault("classification.confidence_divisor", 3.0)

	v.SetDefault("pipeline.excluded_reps", []string{})
	v.SetDefault("pipeline.excluded_activities", []string{"Projects"})
	v.SetDefault("pipeline.web_rep", "")
	v.SetDefault("pipeline.keep_identityless_rows", false)
	v.SetDefault("pipeline.high_roi_threshold", 0.70)

	v.SetDefault("compare.sample_limit", 10)
	v.SetDefault("compare.fields", []string{
		"Order Quantity", "Sales Each", "Sales Total",
		"Cost Each", "Cost Total", "ROI",
	})

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
}

// validateConfig checks configuration values for consistency.
func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}

	if len(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", c.CSV.Delimiter)
	}

	if c.Classification.ConfidenceDivisor <= 0 {
		return fmt.Errorf("classification confidence divisor must be positive, got %v", c.Classification.ConfidenceDivisor)
	}

	if c.Compare.SampleLimit < 1 {
		return fmt.Errorf("compare sample limit must be at least 1, got %d", c.Compare.SampleLimit)
	}

	return nil
}
