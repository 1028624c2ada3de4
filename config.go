package rx

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	// Config controls the package-wide diagnostics of rx. Streams carry no
	// configuration of their own
	Config struct {
		// Logger receives diagnostics. When nil, a console logger writing to
		// stderr at LogLevel is built
		Logger *zap.Logger `env:"-"`

		// OnUnhandled receives errors delivered to Observers that have no
		// OnError callback. When nil, they are logged at Warn
		OnUnhandled func(error) `env:"-"`

		// LogLevel is the minimum level of the default logger
		LogLevel string `env:"RX_LOG_LEVEL"`

		// StrictContract turns notifications that follow a terminal
		// notification into panics instead of silently dropping them
		StrictContract bool `env:"RX_STRICT_CONTRACT"`
	}

	settings struct {
		logger      *zap.Logger
		onUnhandled func(error)
		strict      bool
	}
)

const (
	DefaultLogLevel   = "warn"
	DefaultReplaySize = 0
)

var (
	// ErrContractViolation is raised in strict mode when a Subscriber is
	// notified after it has already terminated
	ErrContractViolation = errors.New("notification after terminal")

	// ErrInvalidLogLevel is returned by Configure for unknown log levels
	ErrInvalidLogLevel = errors.New("invalid log level")
)

var current atomic.Pointer[settings]

func init() {
	if err := Configure(DefaultConfig()); err != nil {
		panic(err)
	}
}

// DefaultConfig returns the configuration installed at package
// initialization
func DefaultConfig() Config {
	return Config{
		LogLevel:       DefaultLogLevel,
		StrictContract: false,
	}
}

// LoadConfig returns DefaultConfig overridden by the RX_LOG_LEVEL and
// RX_STRICT_CONTRACT environment variables
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Configure installs cfg as the package-wide configuration
func Configure(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		l, err := newConsoleLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = l
	}
	current.Store(&settings{
		logger:      logger.Named("rx"),
		onUnhandled: cfg.OnUnhandled,
		strict:      cfg.StrictContract,
	})
	return nil
}

// SetLogger replaces only the logger of the installed configuration
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := *current.Load()
	s.logger = logger.Named("rx")
	current.Store(&s)
}

// Logger returns the logger rx reports diagnostics to
func Logger() *zap.Logger {
	return current.Load().logger
}

func newConsoleLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl)
	return zap.New(core), nil
}

func unhandled(err error) {
	s := current.Load()
	if s.onUnhandled != nil {
		s.onUnhandled(err)
		return
	}
	s.logger.Warn("unhandled stream error", zap.Error(err))
}

func violation(kind Kind) {
	s := current.Load()
	s.logger.Debug("dropped notification after terminal",
		zap.Stringer("kind", kind),
	)
	if s.strict {
		panic(fmt.Errorf("%w: %s", ErrContractViolation, kind))
	}
}
