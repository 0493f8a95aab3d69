package metadir

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/note/internal/apperr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestResolve_Override(t *testing.T) {
	got, err := Resolve("/tmp/somewhere/../notes")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "/tmp/notes" {
		t.Errorf("Resolve = %q, want /tmp/notes", got)
	}
}

func TestResolve_Home(t *testing.T) {
	orig := userHomeDir
	t.Cleanup(func() { userHomeDir = orig })
	userHomeDir = func() (string, error) { return "/home/alice", nil }

	got, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != filepath.Join("/home/alice", DirName) {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolve_NoHome(t *testing.T) {
	orig := userHomeDir
	t.Cleanup(func() { userHomeDir = orig })
	userHomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }

	_, err := Resolve("")
	if !errors.Is(err, apperr.ErrEnvironment) {
		t.Errorf("error = %v, want ErrEnvironment", err)
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DirName)

	created, err := Ensure(dir, discard)
	if err != nil {
		t.Fatalf("first Ensure: %v", err)
	}
	if !created {
		t.Error("first Ensure should create the directory")
	}

	created, err = Ensure(dir, discard)
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if created {
		t.Error("second Ensure should be a no-op")
	}
}

func TestEnsure_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Ensure(path, discard)
	if !errors.Is(err, apperr.ErrEnvironment) {
		t.Errorf("error = %v, want ErrEnvironment", err)
	}
}

func TestDatabasePath(t *testing.T) {
	if got := DatabasePath("/m", ""); got != "/m/note.db" {
		t.Errorf("default = %q", got)
	}
	if got := DatabasePath("/m", "other.db"); got != "/m/other.db" {
		t.Errorf("custom = %q", got)
	}
	if got := ConfigPath("/m"); got != "/m/config.yaml" {
		t.Errorf("config = %q", got)
	}
}
