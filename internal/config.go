package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/note/internal/metadir"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
	AuthModeJWT      = "jwt"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
	Notes  NotesConfig       `yaml:"notes"`
	Auth   AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	HTTP      HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// HTTPConfig holds configuration for the serve command. WriteRate is the
// sustained number of POST requests per second; zero disables throttling.
type HTTPConfig struct {
	Port       int     `yaml:"port"`
	WriteRate  float64 `yaml:"write_rate"`
	WriteBurst int     `yaml:"write_burst"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.WriteRate, validation.Min(0.0)),
		validation.Field(&c.WriteBurst, validation.Required, validation.Min(1)),
	)
}

// SQLiteConfig holds SQLite database configuration. Filename is resolved
// inside the metadata directory.
type SQLiteConfig struct {
	Filename    string        `yaml:"filename"`
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Filename, validation.Required),
		validation.Field(&c.BusyTimeout, validation.Min(time.Duration(0))),
	)
}

// NotesConfig holds note defaults. DefaultCollection is the target of
// `note new`; zero means unset.
type NotesConfig struct {
	DefaultCollection int64 `yaml:"default_collection"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultCollection, validation.Min(int64(0))),
	)
}

// AuthConfig holds authentication configuration for the serve command.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required.
//   - "token": Bearer token authentication; Token must be non-empty.
//   - "jwt": Bearer HS256 JWT signed with JWTSecret.
type AuthConfig struct {
	Mode      string `yaml:"mode"`
	Token     string `yaml:"token"`
	JWTSecret string `yaml:"jwt_secret"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken, AuthModeJWT)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	if c.Mode == AuthModeJWT && c.JWTSecret == "" {
		return fmt.Errorf("auth: mode is %q but jwt_secret is empty", AuthModeJWT)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken || c.Mode == AuthModeJWT
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelWarn,
			LogFormat: LogFormatText,
			HTTP: HTTPConfig{
				Port:       8080,
				WriteBurst: 20,
			},
		},
		SQLite: SQLiteConfig{
			Filename:    metadir.DatabaseFile,
			BusyTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
