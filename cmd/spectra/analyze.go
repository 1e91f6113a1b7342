package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/signal"
)

type analyzeOptions struct {
	channel int
	offset  int
	size    int
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var o analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <file.wav>",
		Short: "Analyze one frame of a WAV file",
		Long: "Reads one FFT-sized frame from a channel of a PCM WAV file, applies the\n" +
			"configured window and prints the peak and strongest bins.\n" +
			"Frames running past the end of the file are zero-padded.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.offset < 0 {
				return fmt.Errorf("offset must be >= 0: %d: %w", o.offset, core.ErrInvalidParameter)
			}

			an, err := a.newAnalyzer(o.size)
			if err != nil {
				return err
			}

			wf, err := readWAVChannel(args[0], o.channel)
			if err != nil {
				return err
			}

			a.log.Debug("wav decoded",
				zap.String("file", args[0]),
				zap.Int("sample_rate", wf.sampleRate),
				zap.Int("channels", wf.channels),
				zap.Int("bit_depth", wf.bitDepth),
				zap.Int("frames", len(wf.samples)),
			)

			frame := make([]float64, an.Size())
			var n int
			if o.offset < len(wf.samples) {
				n = copy(frame, wf.samples[o.offset:])
			}
			if n < len(frame) {
				a.log.Warn("frame zero-padded",
					zap.Int("available", n),
					zap.Int("size", len(frame)),
				)
			}

			sig, err := signal.New(frame, wf.sampleRate)
			if err != nil {
				return err
			}
			a.log.Info("frame level",
				zap.Float64("rms_dbfs", core.LinearToDB(sig.RMS())),
				zap.Float64("peak_dbfs", core.LinearToDB(sig.Peak())),
				zap.Float64("crest", sig.CrestFactor()),
				zap.Float64("dc", sig.Mean()),
				zap.Int("zero_crossings", sig.ZeroCrossings()),
			)

			res, err := an.Analyze(sig)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), res, a.cfg.Analysis.TopBins)
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.channel, "channel", 0, "channel index")
	f.IntVar(&o.offset, "offset", 0, "first sample frame to analyze")
	f.IntVarP(&o.size, "size", "n", 0, "FFT size (default analysis.fft_size)")

	return cmd
}
