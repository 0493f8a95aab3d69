package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pkgconfig "github.com/starford/note/pkg/config"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := NewDefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled || cfg.AuthEnabled() {
		t.Errorf("mode = %q", cfg.Mode)
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: AuthModeToken}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: AuthModeToken, Token: "s3cret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_JWTModeRequiresSecret(t *testing.T) {
	cfg := AuthConfig{Mode: AuthModeJWT}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "jwt_secret is empty") {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.JWTSecret = "k3y"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("jwt mode with secret should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("jwt mode should be enabled")
	}
}

func TestHTTPConfig_WriteLimits(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.HTTP.WriteRate = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative write rate should fail validation")
	}
	cfg.App.HTTP.WriteRate = 5
	cfg.App.HTTP.WriteBurst = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero write burst should fail validation")
	}
}

func TestApplicationConfig_InvalidLogFormat(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid log format should fail validation")
	}
}

func TestSQLiteConfig_EmptyFilename(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SQLite.Filename = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty sqlite filename should fail validation")
	}
}

func TestNotesConfig_NegativeDefault(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Notes.DefaultCollection = -3
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative default collection should fail validation")
	}
}

func TestConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  log_level: debug
  log_format: json
sqlite:
  filename: other.db
  busy_timeout: 2s
notes:
  default_collection: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.App.LogLevel)
	}
	if cfg.App.LogFormat != LogFormatJSON {
		t.Errorf("log format = %q", cfg.App.LogFormat)
	}
	if cfg.SQLite.Filename != "other.db" || cfg.SQLite.BusyTimeout != 2*time.Second {
		t.Errorf("sqlite = %+v", cfg.SQLite)
	}
	if cfg.Notes.DefaultCollection != 4 {
		t.Errorf("default collection = %d", cfg.Notes.DefaultCollection)
	}
	if cfg.App.HTTP.Port != 8080 {
		t.Errorf("http port default lost: %d", cfg.App.HTTP.Port)
	}
}
