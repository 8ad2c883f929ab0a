package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fluxsim/internal/render"
)

func newGIFCmd(wf *worldFlags) *cobra.Command {
	var (
		ticks  int
		every  int
		scale  int
		delay  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "gif",
		Short: "record a run as an animated GIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.world(cmd)
			if err != nil {
				return err
			}
			if every <= 0 {
				every = 1
			}

			rec := render.NewRecorder(scale, delay)
			rec.Capture(w.Grid())
			for t := 1; t <= ticks; t++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				w.Step()
				if t%every == 0 {
					rec.Capture(w.Grid())
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := rec.Encode(f); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nwrote %d frames to %s\n", describe(w), rec.Len(), output)
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 200, "number of ticks to run")
	cmd.Flags().IntVar(&every, "every", 2, "capture a frame every N ticks")
	cmd.Flags().IntVar(&scale, "scale", 1, "pixels per cell")
	cmd.Flags().IntVar(&delay, "delay", 4, "frame delay in hundredths of a second")
	cmd.Flags().StringVarP(&output, "output", "o", "fluxsim.gif", "output file")
	return cmd
}
