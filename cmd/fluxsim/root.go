package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"fluxsim/internal/core"
	"fluxsim/internal/sims/flux"
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	faint   = lipgloss.NewStyle().Faint(true)
)

// worldFlags are shared by every command that builds a world.
type worldFlags struct {
	scene  string
	image  string
	seed   int64
	width  int
	height int
	set    []string
}

func newRootCmd() *cobra.Command {
	wf := &worldFlags{}
	def := flux.DefaultConfig()

	root := &cobra.Command{
		Use:          "fluxsim",
		Short:        "falling-sand particle automaton",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&wf.scene, "scene", def.Scene, "preset name or path to a .yaml scene")
	pf.StringVar(&wf.image, "image", "", "seed the grid from a PNG or GIF (overrides --scene)")
	pf.Int64Var(&wf.seed, "seed", def.Seed, "random seed for lateral drift")
	pf.IntVar(&wf.width, "width", 0, "grid width (0 uses the scene's)")
	pf.IntVar(&wf.height, "height", 0, "grid height (0 uses the scene's)")
	pf.StringArrayVar(&wf.set, "set", nil, "world option in key=value form (repeatable)")

	root.AddCommand(
		newRunCmd(wf),
		newGIFCmd(wf),
		newTUICmd(wf),
		newScenesCmd(),
		newEnsembleCmd(wf),
	)
	return root
}

// config layers defaults, --set pairs and explicit flags, in that order.
func (wf *worldFlags) config(cmd *cobra.Command) flux.Config {
	cfg := flux.FromMap(core.ParseKV(wf.set))
	flags := cmd.Flags()
	if flags.Changed("scene") {
		cfg.Scene = wf.scene
	}
	if flags.Changed("image") {
		cfg.Image = wf.image
	}
	if flags.Changed("seed") {
		cfg.Seed = wf.seed
	}
	if flags.Changed("width") && wf.width > 0 {
		cfg.Width = wf.width
	}
	if flags.Changed("height") && wf.height > 0 {
		cfg.Height = wf.height
	}
	return cfg
}

func (wf *worldFlags) world(cmd *cobra.Command) (*flux.World, error) {
	return flux.NewWithConfig(wf.config(cmd))
}

func describe(w *flux.World) string {
	cfg := w.Config()
	source := cfg.Scene
	if cfg.Image != "" {
		source = cfg.Image
	}
	if source == "" {
		source = "empty"
	}
	s := w.Size()
	return fmt.Sprintf("%s %s %s", heading.Render("fluxsim"), source,
		faint.Render(fmt.Sprintf("%dx%d seed %d", s.W, s.H, cfg.Seed)))
}
