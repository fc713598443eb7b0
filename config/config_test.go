package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Timeout:        600 * time.Second,
		ConnectTimeout: 30 * time.Second,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Webhook: WebhookConfig{
			Addr: ":8080",
			Path: "/",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:    "Valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:        "Invalid logging level",
			mutate:      func(c *Config) { c.Logging.Level = "verbose" },
			wantErr:     true,
			errContains: "invalid logging level",
		},
		{
			name:        "Invalid logging format",
			mutate:      func(c *Config) { c.Logging.Format = "xml" },
			wantErr:     true,
			errContains: "invalid logging format",
		},
		{
			name:        "Zero timeout",
			mutate:      func(c *Config) { c.Timeout = 0 },
			wantErr:     true,
			errContains: "timeout",
		},
		{
			name:        "Webhook key without url",
			mutate:      func(c *Config) { c.Webhook.Key = "secret" },
			wantErr:     true,
			errContains: "webhook.url",
		},
		{
			name: "Webhook key with url",
			mutate: func(c *Config) {
				c.Webhook.Key = "secret"
				c.Webhook.URL = "https://hooks.example.com/"
			},
			wantErr: false,
		},
		{
			name:        "Relative webhook path",
			mutate:      func(c *Config) { c.Webhook.Path = "hooks" },
			wantErr:     true,
			errContains: "webhook.path",
		},
		{
			name:    "Valid named filter",
			mutate:  func(c *Config) { c.Filters = FilterConfig{"healthy": "reputation > 50"} },
			wantErr: false,
		},
		{
			name:        "Broken named filter",
			mutate:      func(c *Config) { c.Filters = FilterConfig{"broken": "reputation >"} },
			wantErr:     true,
			errContains: "filters.broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("validate() error = %v, want it to mention %q", err, tt.errContains)
			}
		})
	}
}

// isolate runs the test in an empty working and home directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadWithoutConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}
	if cfg.BaseURL != "https://mandrillapp.com/api/1.0/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 600*time.Second || cfg.ConnectTimeout != 30*time.Second {
		t.Errorf("timeouts = %v / %v", cfg.Timeout, cfg.ConnectTimeout)
	}
	if cfg.Logging.Level != "info" || cfg.Webhook.Addr != ":8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)

	content := `
api_key: file-key
base_url: http://localhost:9000/api/1.0
timeout: 90s
logging:
  level: debug
  format: json
filters:
  healthy: reputation > 50
webhook:
  addr: 127.0.0.1:9999
  key: hook-key
  url: https://hooks.example.com/mandrill
`
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
	if cfg.Filters["healthy"] != "reputation > 50" {
		t.Errorf("Filters = %v", cfg.Filters)
	}
	if cfg.Webhook.Key != "hook-key" || cfg.Webhook.URL != "https://hooks.example.com/mandrill" {
		t.Errorf("Webhook = %+v", cfg.Webhook)
	}
}

func TestLoadSearchPath(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("debug: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true from ./config.yaml")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MANDRILL_BASE_URL", "http://env.example.com/")
	t.Setenv("MANDRILL_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://env.example.com/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("MANDRILL_WEBHOOK_ADDR", "")
	os.Unsetenv("MANDRILL_WEBHOOK_ADDR")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MANDRILL_WEBHOOK_ADDR=:7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Webhook.Addr != ":7070" {
		t.Errorf("Webhook.Addr = %q, want value from .env", cfg.Webhook.Addr)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("Load() expected error for a missing explicit config file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("Load() error = %v, want invalid configuration", err)
	}
}
