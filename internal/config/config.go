// Package config provides Viper-based hierarchical configuration management
// for the statement pipeline: defaults, an optional config.yaml, and
// FINPARSE_-prefixed environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Model            string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CombinedAnalysis bool   `mapstructure:"combined_analysis" yaml:"combined_analysis"`
		SampleRows       int    `mapstructure:"sample_rows" yaml:"sample_rows"`
		APIKey           string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`

	Taxonomy struct {
		CustomCategoriesFile string `mapstructure:"custom_categories_file" yaml:"custom_categories_file"`
	} `mapstructure:"taxonomy" yaml:"taxonomy"`
}

// ValidationConfig holds the correction penalties and manual-review
// thresholds. The values are product constants carried over unchanged;
// they are configuration so product can tune them without a rebuild,
// not per-call parameters.
type ValidationConfig struct {
	PenaltyTotalUnmarked   float64 `mapstructure:"penalty_total_unmarked" yaml:"penalty_total_unmarked"`
	PenaltyTotalMarked     float64 `mapstructure:"penalty_total_marked" yaml:"penalty_total_marked"`
	PenaltyHeaderFix       float64 `mapstructure:"penalty_header_fix" yaml:"penalty_header_fix"`
	PenaltyGenericImproved float64 `mapstructure:"penalty_generic_improved" yaml:"penalty_generic_improved"`
	PenaltyPolarityFix     float64 `mapstructure:"penalty_polarity_fix" yaml:"penalty_polarity_fix"`
	MaxHighWarnings        int     `mapstructure:"max_high_warnings" yaml:"max_high_warnings"`
	MaxCorrections         int     `mapstructure:"max_corrections" yaml:"max_corrections"`
	MaxCriticalCorrections int     `mapstructure:"max_critical_corrections" yaml:"max_critical_corrections"`
	MaxConfidenceShift     float64 `mapstructure:"max_confidence_shift" yaml:"max_confidence_shift"`
}

// Default validation constants. Not derived from any documented
// calibration; flagged for product-level tuning.
const (
	DefaultPenaltyTotalUnmarked   = -0.05
	DefaultPenaltyTotalMarked     = -0.03
	DefaultPenaltyHeaderFix       = -0.02
	DefaultPenaltyGenericImproved = -0.02
	DefaultPenaltyPolarityFix     = -0.02
	DefaultMaxHighWarnings        = 2
	DefaultMaxCorrections         = 10
	DefaultMaxCriticalCorrections = 5
	DefaultMaxConfidenceShift     = -0.2
)

// DefaultValidationConfig returns the stock penalties and thresholds.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		PenaltyTotalUnmarked:   DefaultPenaltyTotalUnmarked,
		PenaltyTotalMarked:     DefaultPenaltyTotalMarked,
		PenaltyHeaderFix:       DefaultPenaltyHeaderFix,
		PenaltyGenericImproved: DefaultPenaltyGenericImproved,
		PenaltyPolarityFix:     DefaultPenaltyPolarityFix,
		MaxHighWarnings:        DefaultMaxHighWarnings,
		MaxCorrections:         DefaultMaxCorrections,
		MaxCriticalCorrections: DefaultMaxCriticalCorrections,
		MaxConfidenceShift:     DefaultMaxConfidenceShift,
	}
}

// Initialize loads configuration with hierarchical precedence:
// defaults < config file < environment variables.
func Initialize() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finparse")
	v.AddConfigPath(".finparse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINPARSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars; a broken config file
			// should not make the pipeline unusable.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the environment, unprefixed.
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("ai.combined_analysis", false)
	v.SetDefault("ai.sample_rows", 25)

	v.SetDefault("validation.penalty_total_unmarked", DefaultPenaltyTotalUnmarked)
	v.SetDefault("validation.penalty_total_marked", DefaultPenaltyTotalMarked)
	v.SetDefault("validation.penalty_header_fix", DefaultPenaltyHeaderFix)
	v.SetDefault("validation.penalty_generic_improved", DefaultPenaltyGenericImproved)
	v.SetDefault("validation.penalty_polarity_fix", DefaultPenaltyPolarityFix)
	v.SetDefault("validation.max_high_warnings", DefaultMaxHighWarnings)
	v.SetDefault("validation.max_corrections", DefaultMaxCorrections)
	v.SetDefault("validation.max_critical_corrections", DefaultMaxCriticalCorrections)
	v.SetDefault("validation.max_confidence_shift", DefaultMaxConfidenceShift)

	v.SetDefault("taxonomy.custom_categories_file", "custom_categories.yaml")
}

func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive, got %d", c.AI.TimeoutSeconds)
	}
	if c.AI.SampleRows <= 0 {
		return fmt.Errorf("ai.sample_rows must be positive, got %d", c.AI.SampleRows)
	}
	if c.Validation.MaxCorrections <= 0 || c.Validation.MaxHighWarnings <= 0 {
		return fmt.Errorf("validation review thresholds must be positive")
	}
	return nil
}

// LoadEnv loads environment variables from a .env file when one exists in
// the working directory or the project root.
func LoadEnv() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// ConfigureLogging builds a logrus logger from the Log section.
func ConfigureLogging(c *Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(c.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
