package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Mearkatz/beetle-nonzero/configuration"
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	zapCfg := zap.Config{
		Level:             level,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	if zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return logger, nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the "logger" path of the provided configuration.
// Settings that are not part of the configuration keep the values of DefaultCfg.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*zap.Logger, error) {
	cfg := DefaultCfg
	// decoding into a non-nil slice would overwrite the elements of DefaultCfg.OutputPaths
	cfg.OutputPaths = nil

	if err := config.Unmarshal("logger", &cfg); err != nil {
		return nil, err
	}

	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = DefaultCfg.OutputPaths
	}

	return NewRootLogger(cfg)
}
