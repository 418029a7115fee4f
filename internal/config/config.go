package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/clockwall/internal/logger"
)

// Config holds the settings shared by the clockwall commands.
type Config struct {
	// LogLevel is the minimum level of log entries (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFile is where logs go. Empty means stderr.
	LogFile string `yaml:"log_file"`
	// StartupDelay is how long the random startup spin lasts.
	StartupDelay time.Duration `yaml:"startup_delay"`
	// StartupTransition is the hand animation duration of the startup spin.
	StartupTransition time.Duration `yaml:"startup_transition"`
	// RunningTransition is the hand animation duration while showing the time.
	RunningTransition time.Duration `yaml:"running_transition"`
	// FrameRate is how many times per second the terminal is repainted.
	FrameRate int `yaml:"frame_rate"`
	// FaceSize is the diameter of one clock face in snapshot pixels.
	FaceSize int `yaml:"face_size"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "clockwall.yaml"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultStartupDelay is how long the startup spin lasts by default.
	DefaultStartupDelay = 600 * time.Millisecond

	// DefaultStartupTransition is the default startup animation duration.
	DefaultStartupTransition = time.Second

	// DefaultRunningTransition is the default animation duration while running.
	DefaultRunningTransition = 400 * time.Millisecond

	// DefaultFrameRate is the default terminal repaint rate.
	DefaultFrameRate = 30

	// DefaultFaceSize is the default face diameter of snapshots.
	DefaultFaceSize = 48

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// maxFrameRate caps the terminal repaint rate.
	maxFrameRate = 120
	// minFaceSize and maxFaceSize bound the snapshot face diameter.
	minFaceSize = 8
	maxFaceSize = 512
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel  = "CLOCKWALL_LOG_LEVEL"
	EnvLogFile   = "CLOCKWALL_LOG_FILE"
	EnvFrameRate = "CLOCKWALL_FRAME_RATE"
	EnvFaceSize  = "CLOCKWALL_FACE_SIZE"
)

var (
	// ErrNotFound is returned by Load when the settings file does not exist.
	ErrNotFound = errors.New("settings file not found")
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeDuration is returned for durations below zero.
	errNegativeDuration = errors.New("duration must not be negative")
	// errFrameRate is returned for a frame rate outside the supported range.
	errFrameRate = errors.New("frame rate out of range")
	// errFaceSize is returned for a face size outside the supported range.
	errFaceSize = errors.New("face size out of range")
	// errLogLevel is returned for an unknown log level.
	errLogLevel = errors.New("unknown log level")
)

// Default returns settings with every field set to its default.
func Default() *Config {
	return &Config{
		LogLevel:          DefaultLogLevel,
		StartupDelay:      DefaultStartupDelay,
		StartupTransition: DefaultStartupTransition,
		RunningTransition: DefaultRunningTransition,
		FrameRate:         DefaultFrameRate,
		FaceSize:          DefaultFaceSize,
	}
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Keys missing from the file keep their defaults, explicit zeros stay zero.
	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file is missing.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Write encodes settings as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	return nil
}

// Validate fills in defaults for an empty log level, frame rate and face size
// and rejects invalid values. Zero durations are valid: no startup spin or
// no hand animation.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errLogLevel, cfg.LogLevel)
	}

	durations := map[string]time.Duration{
		"startup_delay":      cfg.StartupDelay,
		"startup_transition": cfg.StartupTransition,
		"running_transition": cfg.RunningTransition,
	}

	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s: %w", name, errNegativeDuration)
		}
	}

	if cfg.FrameRate == 0 {
		cfg.FrameRate = DefaultFrameRate
	}

	if cfg.FrameRate < 1 || cfg.FrameRate > maxFrameRate {
		return fmt.Errorf("%w: %d not in [1, %d]", errFrameRate, cfg.FrameRate, maxFrameRate)
	}

	if cfg.FaceSize == 0 {
		cfg.FaceSize = DefaultFaceSize
	}

	if cfg.FaceSize < minFaceSize || cfg.FaceSize > maxFaceSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", errFaceSize, cfg.FaceSize, minFaceSize, maxFaceSize)
	}

	return nil
}

// ApplyEnv overrides settings from CLOCKWALL_* environment variables and
// validates the result.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}

	ints := map[string]*int{
		EnvFrameRate: &cfg.FrameRate,
		EnvFaceSize:  &cfg.FaceSize,
	}

	for name, field := range ints {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}

		*field = n
	}

	return Validate(cfg)
}
