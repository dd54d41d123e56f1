package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CONTACTFORM_"

// Config holds the CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Form    FormConfig    `yaml:"form"`
	Output  OutputConfig  `yaml:"output"`
	Prompt  PromptConfig  `yaml:"prompt"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FormConfig selects the form definition. An empty Definition means the
// embedded contact form.
type FormConfig struct {
	Definition string `yaml:"definition"`
	Operation  string `yaml:"operation"`
	Mode       string `yaml:"mode"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// PromptConfig tunes the interactive session.
type PromptConfig struct {
	RevealSecrets bool `yaml:"revealSecrets"`
	MaxAttempts   int  `yaml:"maxAttempts"`
}

// ThemeConfig overrides the HTML palette.
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
}

// LoadOptions points Load at optional files. Missing EnvFile is only an
// error when it was set explicitly.
type LoadOptions struct {
	File    string
	EnvFile string
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validFormats = []string{"json", "form", "pretty"}
	validModes   = []string{"onSubmit", "onBlur", "onChange"}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Form:    FormConfig{Mode: "onSubmit"},
		Output:  OutputConfig{Format: "json"},
		Prompt:  PromptConfig{MaxAttempts: 0},
	}
}

// Load builds the configuration from defaults, an optional YAML file, the
// .env file and CONTACTFORM_* environment variables, in that order.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.File != "" {
		if err := cfg.mergeFile(opts.File); err != nil {
			return nil, err
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("config: load env file %q: %w", opts.EnvFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
	c.Form.Definition = getEnv("DEFINITION", c.Form.Definition)
	c.Form.Operation = getEnv("OPERATION", c.Form.Operation)
	c.Form.Mode = getEnv("MODE", c.Form.Mode)
	c.Output.Format = getEnv("OUTPUT_FORMAT", c.Output.Format)
	c.Output.Path = getEnv("OUTPUT_PATH", c.Output.Path)
	c.Theme.Name = getEnv("THEME", c.Theme.Name)
	c.Theme.Variant = getEnv("THEME_VARIANT", c.Theme.Variant)

	if raw, ok := lookupEnv("REVEAL_SECRETS"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("config: %sREVEAL_SECRETS: %w", EnvPrefix, err)
		}
		c.Prompt.RevealSecrets = v
	}
	if raw, ok := lookupEnv("MAX_ATTEMPTS"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %sMAX_ATTEMPTS: %w", EnvPrefix, err)
		}
		c.Prompt.MaxAttempts = v
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	if !oneOf(c.Logging.Level, validLevels) {
		errs = append(errs, fmt.Errorf("config: invalid log level %q", c.Logging.Level))
	}
	if !oneOf(c.Output.Format, validFormats) {
		errs = append(errs, fmt.Errorf("config: invalid output format %q", c.Output.Format))
	}
	if !oneOf(c.Form.Mode, validModes) {
		errs = append(errs, fmt.Errorf("config: invalid mode %q", c.Form.Mode))
	}
	if c.Prompt.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("config: max attempts must be >= 0, got %d", c.Prompt.MaxAttempts))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func oneOf(value string, allowed []string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}
