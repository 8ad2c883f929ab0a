package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fluxsim/internal/scene"
)

func newScenesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "list preset scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIZE\tDESCRIPTION")
			for _, name := range scene.Names() {
				s, err := scene.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%dx%d\t%s\n", s.Name, s.Width, s.Height, s.Description)
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "print a preset or scene file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Resolve(args[0])
			if err != nil {
				return err
			}
			data, err := scene.Marshal(s)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return cmd
}
