package ensemble

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxsim/internal/sims/flux"
)

func columnConfig() flux.Config {
	cfg := flux.DefaultConfig()
	cfg.Scene = "column"
	return cfg
}

func TestRunReturnsResultsInSeedOrder(t *testing.T) {
	seeds := []int64{9, 3, 7, 1}
	results, err := Run(context.Background(), columnConfig(), Options{Seeds: seeds, Ticks: 15, Workers: 3})
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, r := range results {
		assert.Equal(t, seeds[i], r.Seed)
		assert.Equal(t, 15, r.Ticks)
		assert.Len(t, r.Moved, 15)
		assert.Equal(t, 480, r.Final.Heavy)
		assert.Equal(t, 480, r.Final.Floaty)
	}
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	opts := Options{Seeds: Seeds(100, 5), Ticks: 20, Workers: 1}
	serial, err := Run(context.Background(), columnConfig(), opts)
	require.NoError(t, err)

	opts.Workers = 5
	parallel, err := Run(context.Background(), columnConfig(), opts)
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("results depend on worker count (-serial +parallel):\n%s", diff)
	}
}

func TestRunMatchesSingleWorld(t *testing.T) {
	cfg := columnConfig()
	results, err := Run(context.Background(), cfg, Options{Seeds: []int64{42}, Ticks: 10})
	require.NoError(t, err)

	cfg.Seed = 42
	w, err := flux.NewWithConfig(cfg)
	require.NoError(t, err)
	w.Run(10)

	assert.Equal(t, w.Grid().Census(), results[0].Final)
	for i, s := range w.Trace() {
		assert.Equal(t, s.Moved, results[0].Moved[i], "tick %d", s.Tick)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), columnConfig(), Options{})
	assert.ErrorIs(t, err, ErrNoSeeds)

	cfg := columnConfig()
	cfg.Scene = "missing"
	_, err = Run(context.Background(), cfg, Options{Seeds: Seeds(1, 3), Ticks: 1})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, columnConfig(), Options{Seeds: Seeds(1, 4), Ticks: 50})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSettledAtDetectsQuiescence(t *testing.T) {
	cfg := flux.DefaultConfig()
	cfg.Scene = ""
	cfg.Width, cfg.Height = 4, 4
	results, err := Run(context.Background(), cfg, Options{Seeds: []int64{1}, Ticks: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, results[0].SettledAt)
	assert.Equal(t, []int{0, 0, 0}, results[0].Moved)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]Result{
		{Moved: []int{5, 2}, SettledAt: -1, HeavyRow: 10, FloatyRow: 4},
		{Moved: []int{3, 0}, SettledAt: 2, HeavyRow: 20, FloatyRow: 2},
	})
	want := Summary{
		Runs:      2,
		Settled:   1,
		LastMoved: Stat{Mean: 1, Min: 0, Max: 2},
		HeavyRow:  Stat{Mean: 15, Min: 10, Max: 20},
		FloatyRow: Stat{Mean: 3, Min: 2, Max: 4},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []int64{5, 6, 7}, Seeds(5, 3))
	assert.Empty(t, Seeds(5, 0))
}

func TestRunRecordsEveryTickPastTraceWindow(t *testing.T) {
	cfg := flux.DefaultConfig()
	cfg.Scene = ""
	cfg.Width, cfg.Height = 1, 1
	const ticks = 70000

	results, err := Run(context.Background(), cfg, Options{Seeds: []int64{1}, Ticks: ticks})
	require.NoError(t, err)
	r := results[0]
	assert.Equal(t, ticks, r.Ticks)
	assert.Len(t, r.Moved, ticks)
	assert.Equal(t, 1, r.SettledAt)
}
