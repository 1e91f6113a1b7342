// Package config loads spectra CLI settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/fft"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPECTRA_"

// Config is the top-level CLI configuration.
type Config struct {
	LogLevel string         `yaml:"log_level"` // debug, info, warn or error.
	Analysis AnalysisConfig `yaml:"analysis"`
}

// AnalysisConfig holds the spectrum analysis settings.
type AnalysisConfig struct {
	FFTSize    int    `yaml:"fft_size"`    // Transform length, a power of two.
	Window     string `yaml:"window"`      // Window shape name, see window.ParseShape.
	Backend    string `yaml:"backend"`     // FFT backend name, see fft.ParseBackend.
	SampleRate int    `yaml:"sample_rate"` // Rate in Hz for generated signals.
	TopBins    int    `yaml:"top_bins"`    // Number of strongest bins to report.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Analysis: AnalysisConfig{
			FFTSize:    1024,
			Window:     "hann",
			Backend:    fft.BackendAlgoFFT.String(),
			SampleRate: 44100,
			TopBins:    5,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies SPECTRA_*
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: log_level %q: %w", c.LogLevel, core.ErrInvalidParameter))
	}
	if c.Analysis.FFTSize <= 0 || !core.IsPowerOfTwo(c.Analysis.FFTSize) {
		errs = append(errs, fmt.Errorf("config: analysis.fft_size must be a power of two: %d (try %d): %w",
			c.Analysis.FFTSize, core.NextPowerOfTwo(c.Analysis.FFTSize), core.ErrInvalidParameter))
	}
	if _, err := c.WindowShape(); err != nil {
		errs = append(errs, fmt.Errorf("config: analysis.window: %w", err))
	}
	if _, err := c.FFTBackend(); err != nil {
		errs = append(errs, fmt.Errorf("config: analysis.backend: %w", err))
	}
	if c.Analysis.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("config: analysis.sample_rate must be > 0: %d: %w",
			c.Analysis.SampleRate, core.ErrInvalidParameter))
	}
	if c.Analysis.TopBins < 0 {
		errs = append(errs, fmt.Errorf("config: analysis.top_bins must be >= 0: %d: %w",
			c.Analysis.TopBins, core.ErrInvalidParameter))
	}

	return errors.Join(errs...)
}

// WindowShape resolves Analysis.Window.
func (c *Config) WindowShape() (window.Shape, error) {
	return window.ParseShape(c.Analysis.Window)
}

// FFTBackend resolves Analysis.Backend.
func (c *Config) FFTBackend() (fft.Backend, error) {
	return fft.ParseBackend(c.Analysis.Backend)
}

func (c *Config) applyEnvOverrides() error {
	if val, ok := lookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(val)
	}
	if val, ok := lookupEnv("WINDOW"); ok {
		c.Analysis.Window = val
	}
	if val, ok := lookupEnv("BACKEND"); ok {
		c.Analysis.Backend = val
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"FFT_SIZE", &c.Analysis.FFTSize},
		{"SAMPLE_RATE", &c.Analysis.SampleRate},
		{"TOP_BINS", &c.Analysis.TopBins},
	}
	for _, o := range ints {
		val, ok := lookupEnv(o.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("config: %s%s=%q is not an integer: %w", EnvPrefix, o.key, val, core.ErrInvalidParameter)
		}
		*o.dst = n
	}

	return nil
}

func lookupEnv(key string) (string, bool) {
	val, ok := os.LookupEnv(EnvPrefix + key)
	return strings.TrimSpace(val), ok
}
