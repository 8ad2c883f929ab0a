package main

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxsim/internal/scene"
	"fluxsim/internal/sims/flux"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunPrintsCensusTable(t *testing.T) {
	out, err := execute(t, "run", "--scene", "column", "--ticks", "10", "--every", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, out)
	assert.Contains(t, lines[0], "column")
	assert.Contains(t, lines[1], "floaty row")
	for _, line := range lines[2:] {
		assert.Contains(t, line, "3840")
	}
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[4]), "10 "), lines[4])
}

func TestRunPlot(t *testing.T) {
	out, err := execute(t, "run", "--scene", "column", "--ticks", "6", "--plot")
	require.NoError(t, err)
	assert.Contains(t, out, "particles moved per tick")
	assert.Contains(t, out, "mean row")
}

func TestRunUnknownScene(t *testing.T) {
	_, err := execute(t, "run", "--scene", "nope", "--ticks", "1")
	assert.ErrorIs(t, err, scene.ErrUnknownScene)
}

func probeConfig(t *testing.T, args ...string) flux.Config {
	t.Helper()
	var got flux.Config
	wf := &worldFlags{}
	cmd := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = wf.config(cmd)
			return nil
		},
	}
	cmd.Flags().StringVar(&wf.scene, "scene", "classic", "")
	cmd.Flags().StringVar(&wf.image, "image", "", "")
	cmd.Flags().Int64Var(&wf.seed, "seed", 42, "")
	cmd.Flags().IntVar(&wf.width, "width", 0, "")
	cmd.Flags().IntVar(&wf.height, "height", 0, "")
	cmd.Flags().StringArrayVar(&wf.set, "set", nil, "")
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return got
}

func TestConfigLayering(t *testing.T) {
	got := probeConfig(t, "--set", "scene=rain", "--set", "seed=7", "--set", "brush=floaty", "--width", "90")
	assert.Equal(t, "rain", got.Scene)
	assert.Equal(t, int64(7), got.Seed)
	assert.Equal(t, 90, got.Width)
	assert.Equal(t, "floaty", got.Brush.String())

	got = probeConfig(t, "--set", "scene=rain", "--scene", "cavern", "--seed", "3", "--height", "-4")
	assert.Equal(t, "cavern", got.Scene)
	assert.Equal(t, int64(3), got.Seed)
	assert.Equal(t, 0, got.Height)

	assert.Equal(t, flux.DefaultConfig(), probeConfig(t))
}

func TestGIFWritesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	out, err := execute(t, "gif", "--scene", "column", "--ticks", "6", "--every", "2", "--scale", "2", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 4 frames")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 4)
	assert.Equal(t, 128, anim.Image[0].Bounds().Dx())
}

func TestScenesListAndShow(t *testing.T) {
	out, err := execute(t, "scenes")
	require.NoError(t, err)
	for _, name := range scene.Names() {
		assert.Contains(t, out, name)
	}

	out, err = execute(t, "scenes", "show", "classic")
	require.NoError(t, err)
	s, err := scene.Parse([]byte(out))
	require.NoError(t, err)
	want, _ := scene.Lookup("classic")
	assert.Equal(t, want, s)
}

func TestEnsembleCommand(t *testing.T) {
	out, err := execute(t, "ensemble", "--scene", "column", "--runs", "3", "--workers", "2", "--ticks", "5", "--seed", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "settled 0/3")

	var seeds []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 5 && fields[0] != "seed" {
			seeds = append(seeds, fields[0])
		}
	}
	assert.Equal(t, []string{"10", "11", "12"}, seeds)
}
