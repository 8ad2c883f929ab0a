package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"fluxsim/internal/sims/flux"
)

func newRunCmd(wf *worldFlags) *cobra.Command {
	var (
		ticks int
		every int
		plot  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "step a world headlessly and print a census table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.world(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, describe(w))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "tick\tmoved\tstatic\theavy\tfloaty\theavy row\tfloaty row\t")
			writeRow(tw, w.Snapshot())
			for t := 1; t <= ticks; t++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				w.Step()
				if (every > 0 && t%every == 0) || t == ticks {
					writeRow(tw, w.Snapshot())
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if plot && len(w.Trace()) > 1 {
				plotTrace(out, w.Trace())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 200, "number of ticks to run")
	cmd.Flags().IntVar(&every, "every", 20, "print a table row every N ticks (0 prints only the last)")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot moved particles and mean rows per tick")
	return cmd
}

func writeRow(w io.Writer, s flux.Sample) {
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t\n",
		s.Tick, s.Moved, s.Census.Static, s.Census.Heavy, s.Census.Floaty, s.HeavyRow, s.FloatyRow)
}

func plotTrace(out io.Writer, trace []flux.Sample) {
	moved, heavy, floaty := flux.Series(trace)
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(moved,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("particles moved per tick")))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.PlotMany([][]float64{heavy, floaty},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Yellow, asciigraph.Red),
		asciigraph.Caption("mean row: heavy (yellow), floaty (red)")))
}
