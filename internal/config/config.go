// Package config loads sheetcard settings from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/spf13/cast"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig
	Limits   LimitsConfig
	Defaults ViewDefaults
	LogLevel string `validate:"omitempty,oneof=ERROR WARN INFO DEBUG error warn info debug"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Addr     string        `validate:"required"`
	GinMode  string        `validate:"omitempty,oneof=debug release test"`
	StoreTTL time.Duration `validate:"gt=0"`
	// MaxWorkbooks bounds how many parsed workbooks the server keeps.
	MaxWorkbooks int `validate:"gte=1"`
}

// LimitsConfig holds the upload and sheet ceilings.
type LimitsConfig struct {
	MaxFileSize int64 `validate:"gte=1"`
	MaxRows     int   `validate:"gte=1"`
	MaxCols     int   `validate:"gte=1"`
}

// ViewDefaults holds the defaults applied when a request omits them.
type ViewDefaults struct {
	HeaderRows int    `validate:"gte=1"`
	HeaderMode string `validate:"oneof=single composite"`
	ViewMode   string `validate:"oneof=table pivoted"`
}

var validate = validator.New()

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:         getEnvOrDefault("SHEETCARD_ADDR", ":8080"),
			GinMode:      os.Getenv("GIN_MODE"),
			StoreTTL:     cast.ToDuration(getEnvOrDefault("SHEETCARD_STORE_TTL", "30m")),
			MaxWorkbooks: getEnvIntOrDefault("SHEETCARD_MAX_WORKBOOKS", 64),
		},
		Limits: LimitsConfig{
			MaxFileSize: cast.ToInt64(decimal(getEnvOrDefault("SHEETCARD_MAX_FILE_SIZE", cast.ToString(sheetcard.DefaultMaxFileSize)))),
			MaxRows:     getEnvIntOrDefault("SHEETCARD_MAX_ROWS", sheetcard.DefaultMaxRows),
			MaxCols:     getEnvIntOrDefault("SHEETCARD_MAX_COLS", sheetcard.DefaultMaxCols),
		},
		Defaults: ViewDefaults{
			HeaderRows: getEnvIntOrDefault("SHEETCARD_HEADER_ROWS", 1),
			HeaderMode: getEnvOrDefault("SHEETCARD_HEADER_MODE", "single"),
			ViewMode:   getEnvOrDefault("SHEETCARD_VIEW_MODE", "pivoted"),
		},
		LogLevel: os.Getenv("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.KindConfig, err, "configuration validation failed")
	}
	return nil
}

// LoadLimits converts the configured ceilings for sheetcard.Load.
func (c *Config) LoadLimits() sheetcard.Limits {
	return sheetcard.Limits{
		MaxFileSize: c.Limits.MaxFileSize,
		MaxRows:     c.Limits.MaxRows,
		MaxCols:     c.Limits.MaxCols,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := cast.ToIntE(decimal(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// decimal strips leading zeros so cast does not read "010" as octal.
func decimal(s string) string {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if t := strings.TrimLeft(s, "0"); t != "" {
		return sign + t
	}
	if s == "" {
		return sign
	}
	return "0"
}
