package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-spectra/dsp/analyzer"
	"github.com/cwbudde/algo-spectra/internal/config"
)

// app carries state shared by all subcommands once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "spectra",
		Short:         "Windowed FFT spectrum analysis",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")

	root.AddCommand(
		newWindowsCmd(a),
		newToneCmd(a),
		newAnalyzeCmd(a),
	)

	return root
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.cfg = cfg
	a.log = newLogger(logOut, level)
	a.log.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("fft_size", cfg.Analysis.FFTSize),
		zap.String("window", cfg.Analysis.Window),
		zap.String("backend", cfg.Analysis.Backend),
	)

	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}

// newAnalyzer builds an Analyzer from the loaded config, with size overriding
// analysis.fft_size when > 0.
func (a *app) newAnalyzer(size int) (*analyzer.Analyzer, error) {
	if size <= 0 {
		size = a.cfg.Analysis.FFTSize
	}

	shape, err := a.cfg.WindowShape()
	if err != nil {
		return nil, err
	}
	backend, err := a.cfg.FFTBackend()
	if err != nil {
		return nil, err
	}

	an, err := analyzer.New(size, analyzer.WithWindow(shape), analyzer.WithBackend(backend))
	if err != nil {
		return nil, err
	}

	a.log.Debug("analyzer ready",
		zap.Int("size", an.Size()),
		zap.Stringer("window", shape),
		zap.Stringer("backend", an.Backend()),
	)

	return an, nil
}
