package display

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockwall/internal/config"
	"github.com/oshokin/clockwall/internal/logger"
	"github.com/oshokin/clockwall/internal/render/terminal"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// String returns the buffer contents.
func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// TestRun_DrawsUntilCancelled runs the live clock on a fake clock and stops it.
//
//nolint:paralleltest // Run replaces the global logger.
func TestRun_DrawsUntilCancelled(t *testing.T) {
	previous, previousLevel := logger.Logger(), logger.Level()

	t.Cleanup(func() {
		logger.SetLogger(previous)
		logger.SetLevel(previousLevel)
	})

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "clockwall.yaml")
	logPath := filepath.Join(dir, "clockwall.log")

	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = logPath
	require.NoError(t, config.Save(cfgPath, cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runCtx, stop := context.WithCancel(ctx)

	var out syncBuffer

	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 9, 5, 7, 0, time.Local))
	done := make(chan error, 1)

	go func() {
		done <- Run(runCtx, &Options{
			ConfigPath: cfgPath,
			Output:     &out,
			Clock:      clock,
			Random:     func() int { return 0 },
		})
	}()

	// Surface ticker and startup timer.
	require.NoError(t, clock.BlockUntilContext(ctx, 2))

	// Leave startup: the wall samples the time and sleeps until the next second.
	clock.Advance(config.DefaultStartupDelay)
	require.Eventually(t, func() bool {
		logs, err := os.ReadFile(logPath)

		return err == nil && strings.Contains(string(logs), "09:05:07")
	}, 2*time.Second, 10*time.Millisecond)

	stop()
	require.NoError(t, <-done)

	screen := out.String()
	require.Contains(t, screen, "\x1b[?25l")
	require.Contains(t, screen, "·")
	require.True(t, strings.HasSuffix(screen, "\x1b[?25h\n"))

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logs), "Clock wall starting")
	require.Contains(t, string(logs), "Showing time")
	require.Contains(t, string(logs), "Clock wall stopped")
}

// TestRun_KeepsStderrQuietWhileDrawing runs without a log file and checks that
// only the entries before and after drawing reach stderr.
//
//nolint:paralleltest // Run replaces the global logger and the test swaps os.Stderr.
func TestRun_KeepsStderrQuietWhileDrawing(t *testing.T) {
	previous, previousLevel := logger.Logger(), logger.Level()
	previousStderr := os.Stderr

	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	os.Stderr = writer

	t.Cleanup(func() {
		os.Stderr = previousStderr
		logger.SetLogger(previous)
		logger.SetLevel(previousLevel)
	})

	captured := make(chan string, 1)

	go func() {
		data, _ := io.ReadAll(reader)
		captured <- string(data)
	}()

	cfgPath := filepath.Join(t.TempDir(), "clockwall.yaml")

	cfg := config.Default()
	cfg.LogLevel = "debug"
	require.NoError(t, config.Save(cfgPath, cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runCtx, stop := context.WithCancel(ctx)

	var out syncBuffer

	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 9, 5, 7, 0, time.Local))
	done := make(chan error, 1)

	go func() {
		done <- Run(runCtx, &Options{
			ConfigPath: cfgPath,
			Output:     &out,
			Clock:      clock,
			Random:     func() int { return 0 },
		})
	}()

	// Surface ticker and startup timer.
	require.NoError(t, clock.BlockUntilContext(ctx, 2))

	// The wall is back to two waiters once it has sampled and armed the next second.
	clock.Advance(config.DefaultStartupDelay)
	require.NoError(t, clock.BlockUntilContext(ctx, 2))

	stop()
	require.NoError(t, <-done)

	os.Stderr = previousStderr
	require.NoError(t, writer.Close())

	logs := <-captured
	require.NoError(t, reader.Close())

	require.Contains(t, logs, "Clock wall starting")
	require.Contains(t, logs, "Clock wall stopped")
	require.NotContains(t, logs, "Showing time")
	require.NotContains(t, logs, "Time sampled")
	require.NotContains(t, logs, "Startup spin")
	require.True(t, strings.HasSuffix(out.String(), "\x1b[?25h\n"))
}

// TestRun_RejectsBadConfig fails before touching the terminal.
func TestRun_RejectsBadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clockwall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame_rate: 0.5\n"), config.DefaultFilePermissions))

	var out bytes.Buffer

	err := Run(context.Background(), &Options{ConfigPath: path, Output: &out})
	require.Error(t, err)
	require.Empty(t, out.String())
}

// TestCheckTerminal accepts buffers and forced output but not plain files.
func TestCheckTerminal(t *testing.T) {
	t.Parallel()

	require.NoError(t, checkTerminal(&bytes.Buffer{}, false))

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	defer func() {
		_ = file.Close()
	}()

	require.ErrorIs(t, checkTerminal(file, false), terminal.ErrNotTerminal)
	require.NoError(t, checkTerminal(file, true))
}
