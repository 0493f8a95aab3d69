// Package metadir locates and creates the directory holding the note database.
package metadir

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/note/internal/apperr"
)

const (
	// DirName is the metadata directory created under the user's home.
	DirName = ".note-app"
	// DatabaseFile is the default database filename inside the metadata directory.
	DatabaseFile = "note.db"
	// ConfigFile is the optional config file inside the metadata directory.
	ConfigFile = "config.yaml"
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// Resolve returns the metadata directory. A non-empty override wins over the
// home-derived default.
func Resolve(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: unable to determine home directory: %w", apperr.ErrEnvironment, err)
	}
	if home == "" {
		return "", fmt.Errorf("%w: unable to determine home directory", apperr.ErrEnvironment)
	}
	return filepath.Join(home, DirName), nil
}

// Ensure creates dir if it does not exist yet. It reports whether the
// directory was created by this call.
func Ensure(dir string, logger *slog.Logger) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		logger.Debug("found existing metadir", slog.String("metadir", dir))
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%w: metadir %s is not a directory", apperr.ErrEnvironment, dir)
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("%w: stat metadir: %w", apperr.ErrEnvironment, err)
	}

	logger.Debug("creating metadir", slog.String("metadir", dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("%w: create metadir: %w", apperr.ErrEnvironment, err)
	}
	return true, nil
}

// DatabasePath returns the database file inside dir. An empty filename means
// DatabaseFile.
func DatabasePath(dir, filename string) string {
	if filename == "" {
		filename = DatabaseFile
	}
	return filepath.Join(dir, filename)
}

// ConfigPath returns the default config file inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}
