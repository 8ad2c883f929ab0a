// Package ensemble runs one flux configuration under many seeds in parallel
// and summarises how the runs settled.
package ensemble

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fluxsim/internal/sims/flux"
	"fluxsim/pkg/particle"
)

// ErrNoSeeds is returned when Options carries no seeds.
var ErrNoSeeds = errors.New("ensemble: no seeds")

// Options controls an ensemble run.
type Options struct {
	Seeds   []int64
	Ticks   int
	Workers int
}

// Result describes one finished run.
type Result struct {
	Seed  int64
	Ticks int
	Final particle.Census
	Moved []int
	// SettledAt is the first tick that moved nothing, or -1.
	SettledAt int
	HeavyRow  float64
	FloatyRow float64
}

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	out := make([]int64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, base+int64(i))
	}
	return out
}

// Run executes one world per seed with at most opts.Workers running at once.
// Results are returned in seed order. Each world stays on the goroutine that
// built it.
func Run(ctx context.Context, cfg flux.Config, opts Options) ([]Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range opts.Seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := runOne(gctx, cfg, seed, opts.Ticks)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg flux.Config, seed int64, ticks int) (Result, error) {
	cfg.Seed = seed
	w, err := flux.NewWithConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{Seed: seed, SettledAt: -1, Moved: make([]int, 0, max(ticks, 0))}
	for t := 0; t < ticks; t++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		w.Step()
		trace := w.Trace()
		s := trace[len(trace)-1]
		res.Moved = append(res.Moved, s.Moved)
		if s.Moved == 0 && res.SettledAt < 0 {
			res.SettledAt = s.Tick
		}
	}
	res.Ticks = w.Tick()
	res.Final = w.Grid().Census()
	res.HeavyRow, _ = w.Grid().MeanRow(particle.Heavy)
	res.FloatyRow, _ = w.Grid().MeanRow(particle.Floaty)
	return res, nil
}

// Stat is a mean/min/max triple.
type Stat struct {
	Mean float64
	Min  float64
	Max  float64
}

// Summary aggregates a set of results.
type Summary struct {
	Runs      int
	Settled   int
	LastMoved Stat
	HeavyRow  Stat
	FloatyRow Stat
}

// Summarize reduces results to per-field statistics. An empty input yields a
// zero Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	last := make([]float64, len(results))
	heavy := make([]float64, len(results))
	floaty := make([]float64, len(results))
	for i, r := range results {
		if len(r.Moved) > 0 {
			last[i] = float64(r.Moved[len(r.Moved)-1])
		}
		heavy[i] = r.HeavyRow
		floaty[i] = r.FloatyRow
		if r.SettledAt >= 0 {
			s.Settled++
		}
	}
	s.LastMoved = statOf(last)
	s.HeavyRow = statOf(heavy)
	s.FloatyRow = statOf(floaty)
	return s
}

func statOf(values []float64) Stat {
	st := Stat{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range values {
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	st.Mean = sum / float64(len(values))
	return st
}
