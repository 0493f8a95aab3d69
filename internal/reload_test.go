package internal

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	require.NoError(t, os.WriteFile(path, []byte("app:\n  log_level: debug\n"), 0o644))
	applyConfig(path, level, logger)
	assert.Equal(t, slog.LevelDebug, level.Level())

	// invalid file keeps the current level
	require.NoError(t, os.WriteFile(path, []byte("app:\n  log_format: xml\n"), 0o644))
	applyConfig(path, level, logger)
	assert.Equal(t, slog.LevelDebug, level.Level())

	require.NoError(t, os.Remove(path))
	applyConfig(path, level, logger)
	assert.Equal(t, slog.LevelWarn, level.Level())
}

func TestWatchConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchConfig(ctx, path, level, logger) }()

	// Give the watcher time to register before the write.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("app:\n  log_level: error\n"), 0o644))

	assert.Eventually(t, func() bool {
		return level.Level() == slog.LevelError
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfig_MissingDir(t *testing.T) {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), level, logger)
	assert.Error(t, err)
}
