package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RecordsPaths []string `validate:"required,min=1,dive,required"` // files or directories
	Format       string   `validate:"oneof=auto hcl yaml json"`

	Output   string `validate:"oneof=text json yaml flat"`
	Color    string `validate:"oneof=auto always never"`
	MaxDepth int    `validate:"min=0"`

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
}

var configValidate = validator.New()

// NewConfig fills in defaults for empty fields and validates the result.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = "auto"
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := configValidate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
