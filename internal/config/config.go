// Package config loads formctl settings from struct defaults, FORMCTL_
// environment variables (optionally seeded from .env files) and explicit
// overrides, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-formctl/internal/logger"
	"github.com/goliatone/go-formctl/pkg/htmlform"
	"github.com/goliatone/go-formctl/pkg/submit"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FORMCTL_"

// DefaultBannerDuration matches the controller default.
const DefaultBannerDuration = 5 * time.Second

// ErrEndpointRequired is returned by RequireEndpoint when no valid submission
// endpoint is configured.
var ErrEndpointRequired = errors.New("config: a valid endpoint is required")

// Config holds every setting the CLI needs.
type Config struct {
	Endpoint       string        `koanf:"endpoint" validate:"omitempty,url"`
	FormID         string        `koanf:"form_id" validate:"required"`
	BannerDuration time.Duration `koanf:"banner_duration" validate:"gt=0"`
	ContentType    string        `koanf:"content_type" validate:"required"`
	UserAgent      string        `koanf:"user_agent"`
	SubmitGuard    bool          `koanf:"submit_guard"`
	LogLevel       string        `koanf:"log_level" validate:"oneof=debug info warn error fatal"`
	LogJSON        bool          `koanf:"log_json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FormID:         htmlform.DefaultFormID,
		BannerDuration: DefaultBannerDuration,
		ContentType:    submit.DefaultContentType,
		UserAgent:      "formctl",
		LogLevel:       "info",
	}
}

// LoadDotEnv seeds the process environment from the given .env files, or
// from ./.env when none are given. Missing files are ignored and variables
// already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return nil
}

// Load resolves the configuration. Overrides are keyed by koanf name (for
// example "endpoint" or "banner_duration") and win over the environment.
// Empty string overrides are ignored so unset flags keep lower layers.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	for key, value := range overrides {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("config: override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnvKey maps FORMCTL_BANNER_DURATION to banner_duration.
func transformEnvKey(key, value string) (string, any) {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

var validate = validator.New()

// Validate checks the struct rules.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: configuration cannot be nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	return nil
}

// RequireEndpoint reports ErrEndpointRequired unless Endpoint is an absolute
// URL. Commands that post call it; read-only commands do not.
func (c *Config) RequireEndpoint() error {
	if err := validate.Var(c.Endpoint, "required,url"); err != nil {
		return fmt.Errorf("%w: %q", ErrEndpointRequired, c.Endpoint)
	}
	return nil
}

// Logger returns the logger settings derived from c.
func (c *Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.JSON = c.LogJSON
	return cfg
}
