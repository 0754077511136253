package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"langfield/internal/domain"
)

const (
	defaultLocale           = "en"
	defaultMaxSubstitutions = 1024
	defaultLogLevel         = "info"
)

type Config struct {
	DefaultLocale    string
	MaxSubstitutions int
	LogLevel         string
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DefaultLocale: strings.TrimSpace(getenv("LANGFIELD_DEFAULT_LOCALE")),
		LogLevel:      strings.ToLower(strings.TrimSpace(getenv("LANGFIELD_LOG_LEVEL"))),
	}

	if raw := strings.TrimSpace(getenv("LANGFIELD_MAX_SUBSTITUTIONS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: LANGFIELD_MAX_SUBSTITUTIONS invalide (%q): %w", raw, domain.ErrInvalidConfig)
		}
		cfg.MaxSubstitutions = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies defaults and checks every field.
func (c *Config) validate() error {
	if c.DefaultLocale == "" {
		c.DefaultLocale = defaultLocale
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: LANGFIELD_DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, domain.ErrInvalidConfig)
	}

	if c.MaxSubstitutions == 0 {
		c.MaxSubstitutions = defaultMaxSubstitutions
	}
	if c.MaxSubstitutions < 0 {
		return fmt.Errorf("config: LANGFIELD_MAX_SUBSTITUTIONS doit être positif (%d): %w", c.MaxSubstitutions, domain.ErrInvalidConfig)
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LANGFIELD_LOG_LEVEL invalide (%q): %w", c.LogLevel, domain.ErrInvalidConfig)
	}

	return nil
}
