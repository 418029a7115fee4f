package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/oshokin/clockwall/internal/logger"
	"github.com/oshokin/clockwall/internal/render/terminal"
	"github.com/oshokin/clockwall/internal/service/common"
	"github.com/oshokin/clockwall/internal/wall"
)

// Options controls the live clock.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Output receives the terminal output. Defaults to stdout.
	Output io.Writer
	// Force skips the terminal size check.
	Force bool
	// Clock overrides the time source, mostly for tests.
	Clock clockwork.Clock
	// Random overrides the startup angle source, mostly for tests.
	Random wall.RandomFunc
}

// Run shows the clock until ctx is cancelled.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := common.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	closeLog, err := common.SetupLogging(cfg)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "clockwall")

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if err = checkTerminal(out, opts.Force); err != nil {
		logger.ErrorKV(ctx, "Terminal check failed", "error", err)

		return err
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	surface := terminal.New(out,
		terminal.WithClock(clock),
		terminal.WithFrameRate(cfg.FrameRate),
	)

	clockWall := wall.New(surface,
		wall.WithClock(clock),
		wall.WithRandom(opts.Random),
		wall.WithStartupDelay(cfg.StartupDelay),
		wall.WithStartupTransition(cfg.StartupTransition),
		wall.WithRunningTransition(cfg.RunningTransition),
	)

	logger.InfoKV(ctx, "Clock wall starting",
		"frame_rate", cfg.FrameRate,
		"startup_delay", cfg.StartupDelay.String(),
		"running_transition", cfg.RunningTransition.String(),
	)

	group, groupCtx := errgroup.WithContext(ctx)

	// Stderr shares the screen with the wall, so routine entries would land
	// under the clock or scroll it.
	drawCtx := groupCtx
	if cfg.LogFile == "" {
		logger.Info(ctx, "Logs go to stderr, only warnings are shown while drawing; set log_file for more")

		drawCtx = logger.WithMinLevel(groupCtx, zapcore.WarnLevel)
	}

	group.Go(func() error {
		return surface.Run(drawCtx)
	})

	group.Go(func() error {
		return clockWall.Run(drawCtx)
	})

	if err = group.Wait(); err != nil {
		logger.ErrorKV(ctx, "Clock wall failed", "error", err)

		return err
	}

	logger.Info(ctx, "Clock wall stopped")

	return nil
}

// checkTerminal verifies that out is a terminal the wall fits in.
// Outputs that are not files, such as buffers, are accepted as they are.
func checkTerminal(out io.Writer, force bool) error {
	if force {
		return nil
	}

	file, ok := out.(*os.File)
	if !ok {
		return nil
	}

	err := terminal.CheckSize(int(file.Fd())) //nolint:gosec // File descriptors fit in int.
	if errors.Is(err, terminal.ErrNotTerminal) {
		return fmt.Errorf("%w: use --force to draw anyway", err)
	}

	return err
}
