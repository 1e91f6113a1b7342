package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectra/dsp/window"
)

func newWindowsCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "windows [shape ...]",
		Short: "Print spectral properties of window shapes",
		Long:  "Prints coherent gain, ENBW, bandwidth, sidelobe level, first null and scallop loss.\nWithout arguments every shape is listed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				size = a.cfg.Analysis.FFTSize
			}

			shapes := window.Shapes()
			if len(args) > 0 {
				shapes = shapes[:0:0]
				for _, name := range args {
					s, err := window.ParseShape(name)
					if err != nil {
						return err
					}
					shapes = append(shapes, s)
				}
			}

			return printWindowTable(cmd.OutOrStdout(), shapes, size)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "window length in samples (default analysis.fft_size)")

	return cmd
}

func printWindowTable(w io.Writer, shapes []window.Shape, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t-------------\t--------------\t------------\n")

	for _, s := range shapes {
		win, err := window.Make(s, size, 0, size)
		if err != nil {
			return err
		}
		an := win.Analyze()

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			s,
			size,
			an.CoherentGain,
			an.ENBW,
			an.Bandwidth3dB,
			an.HighestSidelobedB,
			an.FirstMinimumBins,
			an.ScallopLossdB,
		)
	}

	return tw.Flush()
}
