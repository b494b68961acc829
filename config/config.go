package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sartorproj/statshypo/sample"
)

// Config holds the analysis settings shared by every command.
type Config struct {
	// Significance level for tests and empirical p-values.
	Alpha float64 `yaml:"alpha" env:"ALPHA"`
	// Tail mode for bootstrap p-values: one-tail or two-tail.
	Tail string `yaml:"tail" env:"TAIL"`

	Bootstrap BootstrapConfig `yaml:"bootstrap" env:"BOOTSTRAP"`
	Density   DensityConfig   `yaml:"density" env:"DENSITY"`
	Log       LogConfig       `yaml:"log" env:"LOG"`
}

// BootstrapConfig configures resampling.
type BootstrapConfig struct {
	Iterations int     `yaml:"iterations" env:"ITERATIONS"`
	Ratio      float64 `yaml:"ratio" env:"RATIO"`
	// 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"SEED"`
}

// DensityConfig configures kernel density estimation.
type DensityConfig struct {
	CovarianceFactor float64 `yaml:"covariance_factor" env:"COVARIANCE_FACTOR"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// debug, info, warn or error
	Level string `yaml:"level" env:"LEVEL"`
	// console or json
	Format string `yaml:"format" env:"FORMAT"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	bc := sample.DefaultBootstrapConfig()
	return &Config{
		Alpha: 0.05,
		Tail:  string(sample.OneTail),
		Bootstrap: BootstrapConfig{
			Iterations: bc.Iterations,
			Ratio:      bc.Ratio,
			Seed:       bc.Seed,
		},
		Density: DensityConfig{
			CovarianceFactor: sample.DefaultCovarianceFactor,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := sample.ValidateAlpha(c.Alpha); err != nil {
		return fmt.Errorf("alpha: %w", err)
	}
	if _, err := sample.ParseTail(c.Tail); err != nil {
		return fmt.Errorf("tail: %w", err)
	}
	if err := c.BootstrapConfig().Validate(); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if !(c.Density.CovarianceFactor > 0) {
		return fmt.Errorf("density: %w: covariance factor %v must be positive",
			sample.ErrInvalidInput, c.Density.CovarianceFactor)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log: unsupported format %q", c.Log.Format)
	}
	return nil
}

// TailMode returns the parsed tail mode.
func (c *Config) TailMode() (sample.Tail, error) {
	return sample.ParseTail(c.Tail)
}

// BootstrapConfig converts the bootstrap section for sample.NewResampler.
func (c *Config) BootstrapConfig() sample.BootstrapConfig {
	return sample.BootstrapConfig{
		Iterations: c.Bootstrap.Iterations,
		Ratio:      c.Bootstrap.Ratio,
		Seed:       c.Bootstrap.Seed,
	}
}

// NewLogger builds a zap logger writing to stderr.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if c.Format == "json" {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig := zap.Config{
		Level:            level,
		Development:      c.Format != "json",
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if c.Format == "json" {
		zapConfig.Encoding = "json"
	}

	return zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}
