package main

import (
	"fmt"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fluxsim/internal/ensemble"
)

func newEnsembleCmd(wf *worldFlags) *cobra.Command {
	var (
		runs    int
		workers int
		ticks   int
	)
	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run one configuration under consecutive seeds in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wf.config(cmd)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d runs x %d ticks on %d workers\n", heading.Render("ensemble"), runs, ticks, workers)

			results, err := ensemble.Run(cmd.Context(), cfg, ensemble.Options{
				Seeds:   ensemble.Seeds(cfg.Seed, runs),
				Ticks:   ticks,
				Workers: workers,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "seed\tsettled\tlast moved\theavy row\tfloaty row\t")
			for _, r := range results {
				settled := "-"
				if r.SettledAt >= 0 {
					settled = strconv.Itoa(r.SettledAt)
				}
				last := 0
				if len(r.Moved) > 0 {
					last = r.Moved[len(r.Moved)-1]
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%.2f\t\n", r.Seed, settled, last, r.HeavyRow, r.FloatyRow)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			s := ensemble.Summarize(results)
			fmt.Fprintf(out, "settled %d/%d\n", s.Settled, s.Runs)
			fmt.Fprintf(out, "last moved  mean %.2f  min %.0f  max %.0f\n", s.LastMoved.Mean, s.LastMoved.Min, s.LastMoved.Max)
			fmt.Fprintf(out, "heavy row   mean %.2f  min %.2f  max %.2f\n", s.HeavyRow.Mean, s.HeavyRow.Min, s.HeavyRow.Max)
			fmt.Fprintf(out, "floaty row  mean %.2f  min %.2f  max %.2f\n", s.FloatyRow.Mean, s.FloatyRow.Min, s.FloatyRow.Max)
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 8, "number of seeds to run")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().IntVar(&ticks, "ticks", 200, "ticks per run")
	return cmd
}
