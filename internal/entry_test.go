package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/note/internal/sse"
)

func openTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home")

	rt, err := Open(WithConfig(NewDefaultConfig()), WithHome(home), WithLogOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })
	return rt
}

func TestOpen_RequiresConfig(t *testing.T) {
	_, err := Open(WithHome(t.TempDir()))
	require.Error(t, err)
}

func TestOpen_CreatesMetadirAndDatabase(t *testing.T) {
	rt := openTestRuntime(t)

	assert.DirExists(t, rt.Home)
	assert.Equal(t, filepath.Join(rt.Home, "note.db"), rt.DBPath)
	assert.FileExists(t, rt.DBPath)

	installed, err := rt.API.Installed(context.Background())
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestOpen_CustomFilename(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SQLite.Filename = "other.db"
	home := t.TempDir()

	rt, err := Open(WithConfig(cfg), WithHome(home), WithLogOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, filepath.Join(home, "other.db"), rt.DBPath)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(ApplicationConfig{LogLevel: slog.LevelInfo, LogFormat: LogFormatJSON}, &buf)

	logger.Debug("hidden")
	logger.Info("hello", slog.String("k", "v"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestNewLogger_TextHasNoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(ApplicationConfig{LogLevel: slog.LevelWarn, LogFormat: LogFormatText}, &buf)

	logger.Info("hidden")
	logger.Warn("careful", slog.Int("n", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "n=3")
	assert.NotContains(t, out, "\x1b[")
}

func TestServerHandler_Health(t *testing.T) {
	rt := openTestRuntime(t)
	broker := sse.NewBroker()
	defer broker.Close()
	h := NewServerHandler(rt, broker)

	get := func(path string) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get("/health/live"))
	assert.Equal(t, http.StatusServiceUnavailable, get("/health/ready"))

	require.NoError(t, rt.API.Install(context.Background()))
	assert.Equal(t, http.StatusOK, get("/health/ready"))
}

func TestServerHandler_APIMounted(t *testing.T) {
	rt := openTestRuntime(t)
	require.NoError(t, rt.API.Install(context.Background()))
	broker := sse.NewBroker()
	defer broker.Close()
	h := NewServerHandler(rt, broker)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader(`{"name":"work"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/collections", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"work"`)
}
