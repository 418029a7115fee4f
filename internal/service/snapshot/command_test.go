package snapshot

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// TestParseTime accepts clock times and timestamps.
func TestParseTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "empty", value: "", want: now},
		{name: "seconds", value: "09:05:07", want: time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC)},
		{name: "minutes", value: " 23:59 ", want: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)},
		{name: "rfc3339", value: "2025-06-30T18:30:15Z", want: time.Date(2025, 6, 30, 18, 30, 15, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTime(tc.value, now)
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseTime("25:61", now)
	require.ErrorIs(t, err, ErrBadTime)
}

// TestResolveFormat picks formats from flags and extensions.
func TestResolveFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format, path, want string
	}{
		{format: "", path: "", want: FormatSVG},
		{format: "", path: "wall.PNG", want: FormatPNG},
		{format: "", path: "wall.svg", want: FormatSVG},
		{format: "png", path: "wall.svg", want: FormatPNG},
	}

	for _, tc := range cases {
		got, err := resolveFormat(tc.format, tc.path)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := resolveFormat("gif", "")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = resolveFormat("", "wall.jpg")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

// TestRun_SVGToStdout writes an SVG document for the requested time.
func TestRun_SVGToStdout(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		At:         "09:05:07",
		Stdout:     &out,
		Clock:      clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "clockwall 09:05:07")
	require.Equal(t, 144, strings.Count(out.String(), "<circle"))
}

// TestRun_PNGToFile writes a decodable PNG with the requested face size.
func TestRun_PNGToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "wall.png")

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		OutputPath: path,
		FaceSize:   12,
	})
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)

	defer func() {
		_ = file.Close()
	}()

	img, err := png.Decode(file)
	require.NoError(t, err)
	require.Positive(t, img.Bounds().Dx())
}

// TestRun_Errors rejects bad times and formats without writing anything.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		At:         "noon",
		Stdout:     &out,
	})
	require.ErrorIs(t, err, ErrBadTime)

	err = Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		Format:     "bmp",
		Stdout:     &out,
	})
	require.ErrorIs(t, err, ErrUnknownFormat)
	require.Empty(t, out.String())

	err = Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		OutputPath: filepath.Join(dir, "no", "such", "dir", "wall.svg"),
	})
	require.Error(t, err)
}
