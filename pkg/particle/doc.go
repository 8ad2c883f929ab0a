// Package particle implements a falling-sand style particle automaton.
//
// A [Grid] holds at most one particle per cell. Each tick, [Step] moves
// [Heavy] particles down, [Floaty] particles up and both sideways at random,
// while [Static] particles stay put:
//
//	g := particle.NewGrid(64, 64)
//	g.AddRect(particle.Heavy, particle.Coord{X: 10}, 20, 5)
//	rng := core.NewRNG(42)
//	for i := 0; i < 100; i++ {
//		g = particle.Step(g, rng)
//	}
//
// # Ordering
//
// Particles are visited in row-major order (y ascending, then x ascending)
// and movement is tested against both the frozen pre-step grid and the cells
// already claimed during the current tick. When two particles want the same
// cell, the one visited first gets it. Results are reproducible for a given
// grid and [Bias] sequence, but a different visiting order would produce a
// different (equally valid) outcome.
//
// # Thread Safety
//
// A Grid is not safe for concurrent use. Drivers that render while
// simulating must snapshot it with [Grid.Clone].
package particle
