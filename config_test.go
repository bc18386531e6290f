package folio

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Blog" || cfg.Addr != ":3000" || cfg.SnapshotKey != DefaultSnapshotKey {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReadTime != DefaultReadTime || cfg.SubmitLimit != 10 || cfg.PostCacheTTL != 5*time.Minute {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Categories, DefaultCategories) {
		t.Errorf("Categories = %v", cfg.Categories)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	data := []byte(`
name: Notes
url: https://example.com/
categories: [Go, Rust]
read_time: 3 min read
post_cache_ttl: 30s
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_SITE_NAME", "Env Notes")
	t.Setenv("FOLIO_SUBMIT_LIMIT", "3")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Env Notes" {
		t.Errorf("Name = %q, env should win", cfg.Name)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q, trailing slash should be trimmed", cfg.URL)
	}
	if !reflect.DeepEqual(cfg.Categories, []string{"Go", "Rust"}) {
		t.Errorf("Categories = %v", cfg.Categories)
	}
	if cfg.ReadTime != "3 min read" || cfg.PostCacheTTL != 30*time.Second || cfg.SubmitLimit != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}

	t.Setenv("FOLIO_SUBMIT_LIMIT", "many")
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected an error for a non-numeric FOLIO_SUBMIT_LIMIT")
	}
}

func TestSiteConfigValidate(t *testing.T) {
	cfg := SiteConfig{LogLevel: "info"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing SessionSecret should fail")
	}
	cfg.SessionSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log level should fail")
	}
}

func TestSiteConfigLogger(t *testing.T) {
	cfg := SiteConfig{LogLevel: "warn"}
	if got := cfg.Logger().Level(); got != log.WARN {
		t.Fatalf("Level() = %v, want WARN", got)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("FOLIO_TEST_ENV_OR", "set")
	if got := EnvOr("FOLIO_TEST_ENV_OR", "fallback"); got != "set" {
		t.Errorf("EnvOr = %q", got)
	}
	if got := EnvOr("FOLIO_TEST_ENV_OR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("EnvOr = %q", got)
	}
}
