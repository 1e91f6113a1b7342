package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/fft"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spectra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	shape, err := cfg.WindowShape()
	require.NoError(t, err)
	assert.Equal(t, window.ShapeHann, shape)

	backend, err := cfg.FFTBackend()
	require.NoError(t, err)
	assert.Equal(t, fft.BackendAlgoFFT, backend)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
analysis:
  fft_size: 4096
  window: blackman
  backend: gonum
  top_bins: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4096, cfg.Analysis.FFTSize)
	assert.Equal(t, "blackman", cfg.Analysis.Window)
	assert.Equal(t, "gonum", cfg.Analysis.Backend)
	assert.Equal(t, 3, cfg.Analysis.TopBins)
	assert.Equal(t, 44100, cfg.Analysis.SampleRate, "unset fields keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "analysis:\n  fft_size: 256\n  window: hamming\n")

	t.Setenv("SPECTRA_FFT_SIZE", "2048")
	t.Setenv("SPECTRA_WINDOW", "welch")
	t.Setenv("SPECTRA_LOG_LEVEL", "WARN")
	t.Setenv("SPECTRA_SAMPLE_RATE", " 48000 ")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.Analysis.FFTSize)
	assert.Equal(t, "welch", cfg.Analysis.Window)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 48000, cfg.Analysis.SampleRate)
}

func TestEnvNotAnInteger(t *testing.T) {
	t.Setenv("SPECTRA_TOP_BINS", "many")

	_, err := Load("")
	require.ErrorIs(t, err, core.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "SPECTRA_TOP_BINS")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "analysis: [not, a, map"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"fft size", func(c *Config) { c.Analysis.FFTSize = 1000 }, "fft_size"},
		{"zero fft size", func(c *Config) { c.Analysis.FFTSize = 0 }, "fft_size"},
		{"window", func(c *Config) { c.Analysis.Window = "kaiser" }, "analysis.window"},
		{"backend", func(c *Config) { c.Analysis.Backend = "fftw" }, "analysis.backend"},
		{"sample rate", func(c *Config) { c.Analysis.SampleRate = -1 }, "sample_rate"},
		{"top bins", func(c *Config) { c.Analysis.TopBins = -2 }, "top_bins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, core.ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Analysis.FFTSize = 3
	cfg.Analysis.SampleRate = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fft_size")
	assert.Contains(t, err.Error(), "sample_rate")
}
