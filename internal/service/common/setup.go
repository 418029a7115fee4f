//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"

	"github.com/oshokin/clockwall/internal/config"
	"github.com/oshokin/clockwall/internal/logger"
)

// LoadConfig reads settings from path, falling back to defaults when the file
// is missing, and applies environment overrides.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if err = config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	return cfg, nil
}

// SetupLogging points the global logger at the configured sink and level.
// The returned function flushes and closes the sink.
func SetupLogging(cfg *config.Config) (func(), error) {
	level, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	sink, closeSink, err := logger.OpenSink(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	logger.SetLogger(logger.New(nil, sink))
	logger.SetLevel(level)

	return func() {
		//nolint:errcheck // Nothing useful to do if the final flush fails.
		logger.Logger().Sync()
		_ = closeSink()
	}, nil
}
