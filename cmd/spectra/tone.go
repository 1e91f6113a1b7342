package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/signal"
)

type toneOptions struct {
	freq  float64
	amp   float64
	noise float64
	seed  int64
	rate  int
	size  int
}

func newToneCmd(a *app) *cobra.Command {
	var o toneOptions

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Generate a sine and report the detected peak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := a.newAnalyzer(o.size)
			if err != nil {
				return err
			}

			rate := o.rate
			if rate <= 0 {
				rate = a.cfg.Analysis.SampleRate
			}

			sig, err := synthesize(o, rate, an.Size())
			if err != nil {
				return err
			}

			res, err := an.Analyze(sig)
			if err != nil {
				return err
			}

			a.log.Info("tone analyzed",
				zap.Float64("freq", o.freq),
				zap.Float64("peak_freq", res.PeakFreq),
				zap.Float64("error_hz", res.PeakFreq-o.freq),
			)

			return printResult(cmd.OutOrStdout(), res, a.cfg.Analysis.TopBins)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.freq, "freq", 440, "tone frequency in Hz")
	f.Float64Var(&o.amp, "amp", 1, "tone amplitude")
	f.Float64Var(&o.noise, "noise", 0, "white noise amplitude added to the tone")
	f.Int64Var(&o.seed, "seed", 1, "noise seed")
	f.IntVar(&o.rate, "rate", 0, "sample rate in Hz (default analysis.sample_rate)")
	f.IntVarP(&o.size, "size", "n", 0, "FFT size (default analysis.fft_size)")

	return cmd
}

func synthesize(o toneOptions, rate, n int) (*signal.Signal, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(rate)},
		signal.WithSeed(o.seed),
	)

	tone, err := gen.Sine(o.freq, o.amp, n)
	if err != nil {
		return nil, err
	}
	if o.noise <= 0 {
		return tone, nil
	}

	noise, err := gen.WhiteNoise(o.noise, n)
	if err != nil {
		return nil, err
	}

	mixed := tone.Samples()
	for i := range mixed {
		mixed[i] += noise.At(i)
	}

	return signal.New(mixed, rate)
}
