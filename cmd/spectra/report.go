package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/dsp/analyzer"
	"github.com/cwbudde/algo-spectra/dsp/core"
)

func printResult(w io.Writer, res analyzer.Result, top int) error {
	spec := res.Spectrum

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sample rate\t%d Hz\n", spec.SampleRate())
	fmt.Fprintf(tw, "FFT size\t%d\n", spec.SampleSize())
	fmt.Fprintf(tw, "Bin width\t%.4f Hz\n", spec.BinWidth())
	fmt.Fprintf(tw, "Nyquist\t%.1f Hz\n", spec.MaxFreq())
	fmt.Fprintf(tw, "Peak\t%.2f Hz\n", res.PeakFreq)
	fmt.Fprintf(tw, "Peak level\t%.2f dBFS\n", core.LinearToDB(res.PeakAmplitude))

	feat := spec.Features()
	fmt.Fprintf(tw, "Centroid\t%.2f Hz\n", feat.Centroid)
	fmt.Fprintf(tw, "Spread\t%.2f Hz\n", feat.Spread)
	fmt.Fprintf(tw, "Flatness\t%.4f\n", feat.Flatness)
	fmt.Fprintf(tw, "Rolloff 85%%\t%.2f Hz\n", feat.Rolloff)
	fmt.Fprintf(tw, "BW -3 dB\t%.2f Hz\n", feat.Bandwidth)

	dist := res.Distortion(0)
	fmt.Fprintf(tw, "THD\t%.4f %% (%.2f dB)\n", 100*dist.THD, dist.THDdB)
	fmt.Fprintf(tw, "THD+N\t%.4f %% (%.2f dB)\n", 100*dist.THDN, dist.THDNdB)
	fmt.Fprintf(tw, "SINAD\t%.2f dB\n", dist.SINAD)
	if err := tw.Flush(); err != nil {
		return err
	}

	peaks := res.TopBins(top)
	if len(peaks) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [Hz]\tMagnitude\tLevel [dBFS]\n")
	fmt.Fprintf(tw, "---\t---------\t---------\t------------\n")
	for _, p := range peaks {
		fmt.Fprintf(tw, "%d\t%.2f\t%.4f\t%.2f\n", p.Bin, p.Freq, p.Magnitude, core.LinearToDB(p.Amplitude))
	}

	return tw.Flush()
}
