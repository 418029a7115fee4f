package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oshokin/clockwall/internal/config"
	"github.com/oshokin/clockwall/internal/service/display"
	"github.com/oshokin/clockwall/internal/version"
)

// defaultEnvFile is the dotenv file read before anything else.
const defaultEnvFile = ".env"

var (
	// configPath to the configuration YAML file.
	configPath string
	// envFile is the dotenv file with CLOCKWALL_* overrides.
	envFile string
	// force draws even when stdout is not a large enough terminal.
	force bool

	// rootCmd represents the base command showing the live clock.
	rootCmd = &cobra.Command{
		Use:   "clockwall",
		Short: "Show the time as a wall of tiny analog clocks.",
		Long: `Shows the current time in the terminal as a wall of 144 small analog clocks.

Every digit of HH:MM:SS is drawn by 24 clock faces whose hands line up into
the digit's strokes. On start the hands spin to random positions and then
sweep, always forward, into the current time. The wall is redrawn on every
second boundary and needs a terminal of at least 79x18 characters.

Settings are read from the YAML file given by --config (all optional) and can
be overridden by CLOCKWALL_* variables, also loaded from a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return display.Run(ctx, &display.Options{
				ConfigPath: configPath,
				Output:     cmd.OutOrStdout(),
				Force:      force,
			})
		},
	}
)

// Execute runs the clockwall CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnvFile loads path into the environment unless it does not exist.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file with CLOCKWALL_* overrides")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "draw even if stdout is not a large enough terminal")

	rootCmd.AddCommand(newSnapshotCommand(), newConfigCommand())
}
