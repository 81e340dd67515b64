package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_PageSizes(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Catalog: CatalogConfig{DefaultPageSize: 200, MaxPageSize: 100},
	}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
	if !strings.Contains(err.Error(), "catalog.default_page_size") {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "WARN", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8080}, Logging: LoggingConfig{Level: level}}
			cfg.ApplyDefaults()
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for level %q: %v", level, err)
			}
		})
	}

	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Logging: LoggingConfig{Level: "loud"}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestValidate_CORSOrigins(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080, CORSAllowedOrigins: []string{"http://localhost:3000", " "}}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty origin")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Catalog.MaxQueryLength != 256 {
		t.Errorf("expected MaxQueryLength=256, got %d", cfg.Catalog.MaxQueryLength)
	}
	if cfg.Catalog.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Catalog.DefaultPageSize)
	}
	if cfg.Catalog.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Catalog.MaxPageSize)
	}
	if cfg.Catalog.SeedFile != "" {
		t.Errorf("expected empty SeedFile, got %q", cfg.Catalog.SeedFile)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Catalog: CatalogConfig{MaxQueryLength: 64, DefaultPageSize: 10, MaxPageSize: 50},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	l := cfg.Catalog.Limits()
	if l.MaxQueryLength != 64 || l.DefaultPageSize != 10 || l.MaxPageSize != 50 {
		t.Errorf("unexpected limits: %+v", l)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CATALOG_TEST_PORT", "9090")

	tests := []struct {
		in   string
		want string
	}{
		{"port: ${CATALOG_TEST_PORT}", "port: 9090"},
		{"port: ${CATALOG_TEST_PORT:-1}", "port: 9090"},
		{"port: ${CATALOG_TEST_UNSET:-8080}", "port: 8080"},
		{"seed: ${CATALOG_TEST_UNSET}", "seed: "},
	}
	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("CATALOG_TEST_SEED", "/data/seed.yaml")
	path := filepath.Join(t.TempDir(), "test.yaml")
	data := `
http:
  port: 8081
catalog:
  seed_file: ${CATALOG_TEST_SEED}
  max_page_size: 40
logging:
  level: info
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.HTTP.Port != 8081 || cfg.Catalog.SeedFile != "/data/seed.yaml" || cfg.Catalog.MaxPageSize != 40 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Catalog.DefaultPageSize != 20 {
		t.Errorf("defaults not applied: %+v", cfg.Catalog)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load(local): %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTP.Port)
	}
}

func TestLoad_UnknownEnv(t *testing.T) {
	if _, err := Load("nope"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
