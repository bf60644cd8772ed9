// Package config provides environment-backed configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultPort       = 8080
	DefaultUploadRoot = "./uploads"
	DefaultJobTimeout = 5 * time.Minute
)

// Config holds everything the service reads from its environment. The Gemini
// key is deliberately not required here: the generation backend initializes
// lazily, and a missing credential fails the job that first needs it rather
// than the process.
type Config struct {
	Port         int           `validate:"required,min=1,max=65535"`
	UploadRoot   string        `validate:"required"`
	GeminiAPIKey string        `validate:"-"`
	Tesseract    string        // binary name or absolute path; empty means "tesseract"
	OCRLanguage  string        `validate:"required"`
	JobTimeout   time.Duration `validate:"min=0"` // 0 disables the per-job bound
	LogLevel     string        `validate:"oneof=debug info warn error"`
	LogFormat    string        `validate:"oneof=console json"`
}

// FromEnv reads the configuration from the process environment, applying
// defaults for unset values, and validates it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         DefaultPort,
		UploadRoot:   DefaultUploadRoot,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Tesseract:    os.Getenv("TESSERACT_PATH"),
		OCRLanguage:  "eng",
		JobTimeout:   DefaultJobTimeout,
		LogLevel:     "info",
		LogFormat:    "console",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: PORT is not a number: %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("UPLOAD_ROOT"); v != "" {
		cfg.UploadRoot = v
	}
	if v := os.Getenv("OCR_LANGUAGE"); v != "" {
		cfg.OCRLanguage = v
	}
	if v := os.Getenv("JOB_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config error: JOB_TIMEOUT is not a duration: %q", v)
		}
		cfg.JobTimeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
