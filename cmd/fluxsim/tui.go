package main

import (
	"github.com/spf13/cobra"

	"fluxsim/internal/tui"
)

func newTUICmd(wf *worldFlags) *cobra.Command {
	var tps int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "watch a world in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wf.world(cmd)
			if err != nil {
				return err
			}
			return tui.Run(w, tps)
		},
	}
	cmd.Flags().IntVar(&tps, "tps", 30, "simulation ticks per second")
	return cmd
}
