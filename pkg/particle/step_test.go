package particle

import (
	"testing"

	"fluxsim/pkg/core"

	"github.com/google/go-cmp/cmp"
)

// seqBias replays a fixed sequence of lateral draws, cycling when exhausted.
type seqBias struct {
	vals []int
	n    int
}

func (s *seqBias) Lateral() int {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}

func fixed(v int) Bias { return BiasFunc(func() int { return v }) }

func snapshot(g *Grid) map[Coord]Kind {
	out := map[Coord]Kind{}
	for loc, k := range g.Particles() {
		out[loc] = k
	}
	return out
}

func mustAdd(t *testing.T, g *Grid, k Kind, loc Coord) {
	t.Helper()
	if err := g.Add(k, loc); err != nil {
		t.Fatalf("add %v at %v: %v", k, loc, err)
	}
}

func TestStepEmptyGridIsNoop(t *testing.T) {
	g := NewGrid(8, 8)
	next := Step(g, core.NewRNG(1))
	if next.Len() != 0 || !next.Equal(g) {
		t.Fatalf("empty grid changed after a step: len=%d", next.Len())
	}
	if next.Width() != 8 || next.Height() != 8 {
		t.Fatalf("step changed dimensions to %dx%d", next.Width(), next.Height())
	}
}

func TestStepDoesNotMutateSource(t *testing.T) {
	g := NewGrid(5, 5)
	g.AddRect(Heavy, Coord{X: 1}, 3, 2)
	before := g.Clone()
	Step(g, core.NewRNG(3))
	if !g.Equal(before) {
		t.Fatal("Step mutated its input grid")
	}
}

func TestHeavyFallsWhenUnobstructed(t *testing.T) {
	cases := []struct {
		name string
		bias int
		want Coord
	}{
		{"straight", 0, Coord{X: 2, Y: 1}},
		{"left", -1, Coord{X: 1, Y: 1}},
		{"right", 1, Coord{X: 3, Y: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(5, 4)
			mustAdd(t, g, Heavy, Coord{X: 2, Y: 0})
			next := Step(g, fixed(tc.bias))
			want := map[Coord]Kind{tc.want: Heavy}
			if diff := cmp.Diff(want, snapshot(next)); diff != "" {
				t.Fatalf("unexpected grid (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeavyNeverRisesWithRandomBias(t *testing.T) {
	rng := core.NewRNG(11)
	for i := 0; i < 200; i++ {
		g := NewGrid(5, 4)
		mustAdd(t, g, Heavy, Coord{X: 2, Y: 0})
		next := Step(g, rng)
		for loc := range next.Particles() {
			if loc.Y != 1 || loc.X < 1 || loc.X > 3 {
				t.Fatalf("heavy particle landed at %v", loc)
			}
		}
	}
}

func TestFloatyRisesWhenUnobstructed(t *testing.T) {
	for _, bias := range []int{-1, 0, 1} {
		g := NewGrid(9, 8)
		mustAdd(t, g, Floaty, Coord{X: 4, Y: 5})
		next := Step(g, fixed(bias))
		want := map[Coord]Kind{{X: 4 + bias, Y: 4}: Floaty}
		if diff := cmp.Diff(want, snapshot(next)); diff != "" {
			t.Fatalf("bias %d: unexpected grid (-want +got):\n%s", bias, diff)
		}
	}
}

func TestBlockedFallStaysInRow(t *testing.T) {
	for _, bias := range []int{-1, 0, 1} {
		g := NewGrid(5, 5)
		mustAdd(t, g, Static, Coord{X: 2, Y: 3})
		mustAdd(t, g, Heavy, Coord{X: 2, Y: 2})
		next := Step(g, fixed(bias))
		if next.At(Coord{X: 2, Y: 3}) != Static {
			t.Fatal("static particle moved")
		}
		want := Coord{X: 2 + bias, Y: 2}
		if next.At(want) != Heavy {
			t.Fatalf("bias %d: heavy not at %v, grid=%v", bias, want, snapshot(next))
		}
	}
}

func TestParticlesStayInsideAtEdges(t *testing.T) {
	g := NewGrid(3, 3)
	mustAdd(t, g, Heavy, Coord{X: 2, Y: 2})
	mustAdd(t, g, Floaty, Coord{X: 0, Y: 0})

	next := Step(g, &seqBias{vals: []int{-1, 1}})
	// Floaty at (0,0) is visited first and draws -1; heavy draws +1.
	want := map[Coord]Kind{{X: 0, Y: 0}: Floaty, {X: 2, Y: 2}: Heavy}
	if diff := cmp.Diff(want, snapshot(next)); diff != "" {
		t.Fatalf("edge particles escaped (-want +got):\n%s", diff)
	}
}

func TestEarlierParticleWinsContestedCell(t *testing.T) {
	g := NewGrid(3, 2)
	mustAdd(t, g, Heavy, Coord{X: 0, Y: 0})
	mustAdd(t, g, Heavy, Coord{X: 2, Y: 0})

	// (0,0) is visited first and drifts right into (1,1); (2,0) then wants
	// to drift left into the same cell and keeps its column instead.
	next := Step(g, &seqBias{vals: []int{1, -1}})
	want := map[Coord]Kind{{X: 1, Y: 1}: Heavy, {X: 2, Y: 1}: Heavy}
	if diff := cmp.Diff(want, snapshot(next)); diff != "" {
		t.Fatalf("contested cell resolved wrongly (-want +got):\n%s", diff)
	}
}

func TestOccupancyUsesPreStepGrid(t *testing.T) {
	g := NewGrid(3, 3)
	mustAdd(t, g, Heavy, Coord{X: 1, Y: 0})
	mustAdd(t, g, Heavy, Coord{X: 1, Y: 1})

	// The lower particle falls, but the upper one still sees the cell as
	// occupied because it was occupied when the tick began.
	next := Step(g, fixed(0))
	want := map[Coord]Kind{{X: 1, Y: 0}: Heavy, {X: 1, Y: 2}: Heavy}
	if diff := cmp.Diff(want, snapshot(next)); diff != "" {
		t.Fatalf("unexpected grid (-want +got):\n%s", diff)
	}
}

func TestOpposingParticlesDoNotSwap(t *testing.T) {
	g := NewGrid(1, 2)
	mustAdd(t, g, Floaty, Coord{X: 0, Y: 1})
	mustAdd(t, g, Heavy, Coord{X: 0, Y: 0})
	next := Step(g, fixed(0))
	if !next.Equal(g) {
		t.Fatalf("heavy above floaty should both stay, got %v", snapshot(next))
	}
}

func TestOutOfRangeBiasIsIgnored(t *testing.T) {
	g := NewGrid(5, 5)
	mustAdd(t, g, Heavy, Coord{X: 2, Y: 4})
	next := Step(g, fixed(2))
	if next.At(Coord{X: 2, Y: 4}) != Heavy {
		t.Fatalf("bias 2 should act as no drift, got %v", snapshot(next))
	}
	next = Step(g, nil)
	if next.At(Coord{X: 2, Y: 4}) != Heavy {
		t.Fatalf("nil bias should act as no drift, got %v", snapshot(next))
	}
}

func TestLateralDrawnOncePerMovingParticle(t *testing.T) {
	g := NewGrid(6, 6)
	g.AddRect(Static, Coord{X: 0, Y: 5}, 6, 1)
	g.AddRect(Heavy, Coord{X: 0, Y: 0}, 3, 1)
	g.AddRect(Floaty, Coord{X: 0, Y: 3}, 2, 1)

	bias := &seqBias{vals: []int{0}}
	Step(g, bias)
	if bias.n != 5 {
		t.Fatalf("expected 5 lateral draws, got %d", bias.n)
	}
}

func TestStepIntoReportsMoves(t *testing.T) {
	src := NewGrid(4, 4)
	mustAdd(t, src, Heavy, Coord{X: 0, Y: 0})
	mustAdd(t, src, Heavy, Coord{X: 3, Y: 3})
	mustAdd(t, src, Static, Coord{X: 2, Y: 0})

	dst := NewGrid(4, 4)
	dst.AddRect(Floaty, Coord{}, 4, 4)
	moved := StepInto(dst, src, fixed(0))
	if moved != 1 {
		t.Fatalf("moved = %d, want 1", moved)
	}
	if dst.Len() != 3 || dst.Census().Floaty != 0 {
		t.Fatalf("StepInto must discard previous destination contents, census=%+v", dst.Census())
	}
}

func TestStepIntoRejectsAliasing(t *testing.T) {
	g := NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when source and destination are the same grid")
		}
	}()
	StepInto(g, g, nil)
}

func TestStepIntoRejectsSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched grid sizes")
		}
	}()
	StepInto(NewGrid(2, 2), NewGrid(3, 2), nil)
}

func randomGrid(rng *core.RNG, w, h int) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.IntN(3) == 0 {
				continue
			}
			_ = g.Add(Kind(1+rng.IntN(3)), Coord{X: x, Y: y})
		}
	}
	return g
}

func TestStepInvariantsOverManyTicks(t *testing.T) {
	rng := core.NewRNG(2024)
	g := randomGrid(rng, 32, 24)
	census := g.Census()

	statics := map[Coord]bool{}
	for loc, k := range g.Particles() {
		if k == Static {
			statics[loc] = true
		}
	}

	next := NewGrid(g.Width(), g.Height())
	for tick := 0; tick < 300; tick++ {
		StepInto(next, g, rng)
		g, next = next, g

		if got := g.Census(); got != census {
			t.Fatalf("tick %d: census changed from %+v to %+v", tick, census, got)
		}
		if g.Len() != census.Total() {
			t.Fatalf("tick %d: len %d disagrees with census %d", tick, g.Len(), census.Total())
		}
		for loc := range statics {
			if g.At(loc) != Static {
				t.Fatalf("tick %d: static particle at %v moved", tick, loc)
			}
		}
		for loc := range g.Particles() {
			if !g.Contains(loc) {
				t.Fatalf("tick %d: particle at %v outside grid", tick, loc)
			}
		}
	}
}

func TestStepIsDeterministicForSeed(t *testing.T) {
	base := randomGrid(core.NewRNG(5), 16, 16)
	a, b := base.Clone(), base.Clone()
	ra, rb := core.NewRNG(77), core.NewRNG(77)
	for i := 0; i < 50; i++ {
		a = Step(a, ra)
		b = Step(b, rb)
	}
	if !a.Equal(b) {
		t.Fatal("identical seeds produced different grids")
	}
}

func TestHeavySettlesOnFloor(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddRect(Heavy, Coord{X: 0, Y: 0}, 10, 2)
	for i := 0; i < 20; i++ {
		g = Step(g, fixed(0))
	}
	want := NewGrid(10, 10)
	want.AddRect(Heavy, Coord{X: 0, Y: 8}, 10, 2)
	if !g.Equal(want) {
		t.Fatalf("heavy block did not settle on the floor: %v", snapshot(g))
	}
}
