package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orangic/orangic-go/pkg/orangic"
)

// clearEnv unsets all ORANGIC_* variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ORANGIC_API_KEY", "ORANGIC_BASE_URL", "ORANGIC_TIMEOUT",
		"ORANGIC_MAX_RETRIES", "ORANGIC_DEBUG", "ORANGIC_LOG_LEVEL",
		"ORANGIC_CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent explicit config file")
	}

	// Without an explicit path, defaults apply.
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Client.BaseURL != orangic.DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", orangic.DefaultBaseURL, cfg.Client.BaseURL)
	}
	if cfg.Client.TimeoutSeconds != 600 {
		t.Errorf("expected default timeout 600s, got %d", cfg.Client.TimeoutSeconds)
	}
	if cfg.Client.MaxRetries != 2 {
		t.Errorf("expected default max retries 2, got %d", cfg.Client.MaxRetries)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected default log level INFO, got %q", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "orangic.yaml")
	content := `
client:
  base_url: https://staging.orangic.chat/
  timeout_seconds: 30
logging:
  debug: client,streaming
  level: DEBUG
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Client.BaseURL != "https://staging.orangic.chat/" {
		t.Errorf("unexpected base URL %q", cfg.Client.BaseURL)
	}
	if cfg.Client.TimeoutSeconds != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.Client.TimeoutSeconds)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Client.MaxRetries != 2 {
		t.Errorf("expected default max retries 2, got %d", cfg.Client.MaxRetries)
	}
	if cfg.Logging.Debug != "client,streaming" {
		t.Errorf("unexpected debug categories %q", cfg.Logging.Debug)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "orangic.yaml")
	if err := os.WriteFile(path, []byte("client:\n  base_url: https://file.example.com\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("ORANGIC_BASE_URL", "https://env.example.com")
	t.Setenv("ORANGIC_TIMEOUT", "42")
	t.Setenv("ORANGIC_API_KEY", "sk-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Client.BaseURL != "https://env.example.com" {
		t.Errorf("env override lost: base URL %q", cfg.Client.BaseURL)
	}
	if cfg.Client.TimeoutSeconds != 42 {
		t.Errorf("env override lost: timeout %d", cfg.Client.TimeoutSeconds)
	}
	if cfg.Client.APIKey != "sk-env" {
		t.Errorf("env override lost: api key %q", cfg.Client.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.Client.BaseURL = "" }, true},
		{"zero timeout", func(c *Config) { c.Client.TimeoutSeconds = 0 }, true},
		{"negative retries", func(c *Config) { c.Client.MaxRetries = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToClient(t *testing.T) {
	cfg := Defaults()
	cfg.Client.APIKey = "sk-test"
	cfg.Client.TimeoutSeconds = 30

	clientCfg := cfg.ToClient()
	if clientCfg.APIKey != "sk-test" {
		t.Errorf("unexpected api key %q", clientCfg.APIKey)
	}
	if clientCfg.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", clientCfg.Timeout)
	}
	if clientCfg.MaxRetries != 2 {
		t.Errorf("expected max retries 2, got %d", clientCfg.MaxRetries)
	}
}
