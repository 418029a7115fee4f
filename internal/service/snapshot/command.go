package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/clockwall/internal/config"
	"github.com/oshokin/clockwall/internal/logger"
	"github.com/oshokin/clockwall/internal/render/layout"
	"github.com/oshokin/clockwall/internal/render/raster"
	"github.com/oshokin/clockwall/internal/render/svg"
	"github.com/oshokin/clockwall/internal/service/common"
	"github.com/oshokin/clockwall/internal/wall"
)

// Supported image formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// Options controls a snapshot.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// At is the time to draw: "15:04:05", "15:04" (today) or RFC 3339.
	// Empty means now.
	At string
	// Format is svg or png. Empty means the output extension, or svg.
	Format string
	// OutputPath is the destination file; empty or "-" writes to Stdout.
	OutputPath string
	// FaceSize overrides the configured face diameter when positive.
	FaceSize int
	// Stdout receives the image when no output file is set. Defaults to os.Stdout.
	Stdout io.Writer
	// Clock provides "now" and today's date, mostly for tests.
	Clock clockwork.Clock
}

var (
	// ErrUnknownFormat is returned for formats other than svg and png.
	ErrUnknownFormat = errors.New("unknown image format")
	// ErrBadTime is returned when At cannot be parsed.
	ErrBadTime = errors.New("cannot parse time")
)

// Run draws the wall for the requested instant and writes the image.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := common.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Snapshots log to stderr; only the level is taken from the settings.
	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "snapshot")

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	at, err := ParseTime(opts.At, clock.Now())
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.Format, opts.OutputPath)
	if err != nil {
		return err
	}

	faceSize := cfg.FaceSize
	if opts.FaceSize > 0 {
		faceSize = opts.FaceSize
	}

	grid := layout.New(faceSize)

	out, closeOut, err := openOutput(opts)
	if err != nil {
		return err
	}

	var surface wall.Surface

	switch format {
	case FormatPNG:
		surface = raster.New(out, grid)
	default:
		surface = svg.New(out, grid)
	}

	frame := wall.Compose(at, 0)

	if err = surface.Draw(ctx, frame); err != nil {
		_ = closeOut()

		return fmt.Errorf("draw %s: %w", format, err)
	}

	if err = closeOut(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.InfoKV(ctx, "Snapshot written",
		"time", frame.Digits.String(),
		"format", format,
		"output", displayPath(opts.OutputPath),
	)

	return nil
}

// ParseTime parses a clock time or an RFC 3339 timestamp. Clock times take
// the date and location of now; an empty value returns now.
func ParseTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(now.Location()), nil
	}

	for _, clockLayout := range []string{time.TimeOnly, "15:04"} {
		t, err := time.Parse(clockLayout, value)
		if err != nil {
			continue
		}

		year, month, day := now.Date()

		return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTime, value)
}

// resolveFormat picks the image format from the flag or the file extension.
func resolveFormat(format, path string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	switch strings.ToLower(format) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// openOutput returns the destination writer and its close function.
func openOutput(opts *Options) (io.Writer, func() error, error) {
	if opts.OutputPath == "" || opts.OutputPath == stdoutPath {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}

		return out, func() error { return nil }, nil
	}

	file, err := os.OpenFile(filepath.Clean(opts.OutputPath), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return file, file.Close, nil
}

// displayPath names the output in logs.
func displayPath(path string) string {
	if path == "" || path == stdoutPath {
		return "stdout"
	}

	return path
}
