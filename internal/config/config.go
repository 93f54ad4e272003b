package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/propcfg/internal/logging"
	"github.com/eugenenazirov/propcfg/internal/properties"
	"github.com/eugenenazirov/propcfg/internal/subst"
	"github.com/eugenenazirov/propcfg/internal/textenc"
)

const (
	defaultReportRateLimit = 10.0
	defaultReportBurst     = 20
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	PropertiesFile     string
	Encoding           textenc.Encoding
	RaiseOnOpenFailure bool
	MaxIncludeDepth    int
	Substitution       subst.Flags
	LogLevel           string
	ReportRateLimit    float64
	ReportBurst        int
}

// LoadFlags returns the properties load flags described by cfg.
func (c Config) LoadFlags() properties.LoadFlags {
	return properties.LoadFlags{
		Encoding:           c.Encoding,
		RaiseOnOpenFailure: c.RaiseOnOpenFailure,
	}
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	PropertiesFile     string           `yaml:"properties_file"`
	Encoding           string           `yaml:"encoding"`
	RaiseOnOpenFailure *bool            `yaml:"raise_on_open_failure"`
	MaxIncludeDepth    int              `yaml:"max_include_depth"`
	Substitution       yamlSubstitution `yaml:"substitution"`
	LogLevel           string           `yaml:"log_level"`
	Report             yamlReport       `yaml:"report"`
}

// yamlSubstitution represents the substitution section in YAML.
type yamlSubstitution struct {
	AllowEmpty *bool `yaml:"allow_empty"`
	Shadow     *bool `yaml:"shadow_environment"`
	Recursive  *bool `yaml:"recursive"`
}

// yamlReport represents the error report throttling section in YAML.
type yamlReport struct {
	RateLimit *float64 `yaml:"rate_limit"`
	Burst     *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides. Nil fields are not set.
type CLIOverrides struct {
	ConfigFile         string
	PropertiesFile     *string
	Encoding           *string
	RaiseOnOpenFailure *bool
	MaxIncludeDepth    *int
	AllowEmpty         *bool
	Shadow             *bool
	Recursive          *bool
	LogLevel           *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		MaxIncludeDepth: properties.DefaultMaxIncludeDepth,
		LogLevel:        logging.DefaultLevel,
		ReportRateLimit: defaultReportRateLimit,
		ReportBurst:     defaultReportBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.PropertiesFile != "" {
		cfg.PropertiesFile = yamlCfg.PropertiesFile
	}

	if yamlCfg.Encoding != "" {
		enc, err := textenc.Parse(yamlCfg.Encoding)
		if err != nil {
			return fmt.Errorf("parse YAML encoding: %w", err)
		}
		cfg.Encoding = enc
	}

	setBool(&cfg.RaiseOnOpenFailure, yamlCfg.RaiseOnOpenFailure)

	if yamlCfg.MaxIncludeDepth > 0 {
		cfg.MaxIncludeDepth = yamlCfg.MaxIncludeDepth
	}

	setBool(&cfg.Substitution.AllowEmptySubstitution, yamlCfg.Substitution.AllowEmpty)
	setBool(&cfg.Substitution.ShadowEnvironmentWithStore, yamlCfg.Substitution.Shadow)
	setBool(&cfg.Substitution.RecursiveExpansion, yamlCfg.Substitution.Recursive)

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.Report.RateLimit != nil {
		cfg.ReportRateLimit = *yamlCfg.Report.RateLimit
	}

	if yamlCfg.Report.Burst != nil {
		cfg.ReportBurst = *yamlCfg.Report.Burst
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if file := strings.TrimSpace(os.Getenv("PROPCTL_FILE")); file != "" {
		cfg.PropertiesFile = file
	}

	if raw := strings.TrimSpace(os.Getenv("PROPCTL_ENCODING")); raw != "" {
		enc, err := textenc.Parse(raw)
		if err != nil {
			return fmt.Errorf("PROPCTL_ENCODING: %w", err)
		}
		cfg.Encoding = enc
	}

	envBool("PROPCTL_RAISE_ON_OPEN_FAILURE", &cfg.RaiseOnOpenFailure)
	envBool("PROPCTL_ALLOW_EMPTY", &cfg.Substitution.AllowEmptySubstitution)
	envBool("PROPCTL_SHADOW_ENVIRONMENT", &cfg.Substitution.ShadowEnvironmentWithStore)
	envBool("PROPCTL_RECURSIVE", &cfg.Substitution.RecursiveExpansion)

	if depth := strings.TrimSpace(os.Getenv("PROPCTL_MAX_INCLUDE_DEPTH")); depth != "" {
		if value, err := strconv.Atoi(depth); err == nil && value > 0 {
			cfg.MaxIncludeDepth = value
		}
	}

	if level := strings.TrimSpace(os.Getenv("PROPCTL_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.PropertiesFile != nil && *overrides.PropertiesFile != "" {
		cfg.PropertiesFile = *overrides.PropertiesFile
	}

	if overrides.Encoding != nil && *overrides.Encoding != "" {
		enc, err := textenc.Parse(*overrides.Encoding)
		if err != nil {
			return fmt.Errorf("parse encoding: %w", err)
		}
		cfg.Encoding = enc
	}

	setBool(&cfg.RaiseOnOpenFailure, overrides.RaiseOnOpenFailure)
	setBool(&cfg.Substitution.AllowEmptySubstitution, overrides.AllowEmpty)
	setBool(&cfg.Substitution.ShadowEnvironmentWithStore, overrides.Shadow)
	setBool(&cfg.Substitution.RecursiveExpansion, overrides.Recursive)

	if overrides.MaxIncludeDepth != nil && *overrides.MaxIncludeDepth > 0 {
		cfg.MaxIncludeDepth = *overrides.MaxIncludeDepth
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.MaxIncludeDepth <= 0 {
		return fmt.Errorf("max include depth must be > 0")
	}
	if cfg.ReportRateLimit < 0 {
		return fmt.Errorf("report rate limit must be >= 0")
	}
	if cfg.ReportBurst < 0 {
		return fmt.Errorf("report burst must be >= 0")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// envBool sets dst from the named variable when it holds a boolean token.
func envBool(name string, dst *bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return
	}
	if value, ok := properties.ParseBool(raw); ok {
		*dst = value
	}
}
