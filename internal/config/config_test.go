package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Default()
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(cfg.RequireEndpoint(), config.ErrEndpointRequired) {
		t.Fatalf("expected endpoint to be required")
	}
}

func TestLoad_EnvironmentAndOverrides(t *testing.T) {
	t.Setenv("FORMCTL_ENDPOINT", "https://env.example.com/submit")
	t.Setenv("FORMCTL_BANNER_DURATION", "2s")
	t.Setenv("FORMCTL_SUBMIT_GUARD", "true")
	t.Setenv("FORMCTL_LOG_LEVEL", "DEBUG")
	t.Setenv("FORMCTL_FORM_ID", "contact")

	cfg, err := config.Load(map[string]any{
		"endpoint": "https://flag.example.com/submit",
		"form_id":  "",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "https://flag.example.com/submit" {
		t.Fatalf("expected override to win, got %q", cfg.Endpoint)
	}
	if cfg.FormID != "contact" {
		t.Fatalf("expected empty override to keep env value, got %q", cfg.FormID)
	}
	if cfg.BannerDuration != 2*time.Second {
		t.Fatalf("unexpected banner duration %s", cfg.BannerDuration)
	}
	if !cfg.SubmitGuard {
		t.Fatalf("expected submit guard from env")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected normalised log level, got %q", cfg.LogLevel)
	}
	if err := cfg.RequireEndpoint(); err != nil {
		t.Fatalf("require endpoint: %v", err)
	}
	if got := cfg.Logger().Level; got != "debug" {
		t.Fatalf("unexpected logger level %q", got)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("FORMCTL_ENDPOINT", "not a url")
	if _, err := config.Load(nil); err == nil {
		t.Fatalf("expected invalid endpoint to fail validation")
	}
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	if _, err := config.Load(map[string]any{"log_level": "verbose"}); err == nil {
		t.Fatalf("expected unknown log level to fail validation")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FORMCTL_USER_AGENT=dotenv-agent\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("FORMCTL_USER_AGENT", "")
	os.Unsetenv("FORMCTL_USER_AGENT")

	if err := config.LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UserAgent != "dotenv-agent" {
		t.Fatalf("expected user agent from .env, got %q", cfg.UserAgent)
	}
}
