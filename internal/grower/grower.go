// Package grower grows disjoint segments over a grid by noise-weighted
// frontier expansion.
package grower

import (
	"errors"
	"fmt"
	"math"

	"regiongrow/internal/core"
)

// Unassigned marks a cell that no segment has claimed.
const Unassigned = -1

// ErrEmptyFrontier is returned when a neighbor is requested from a segment
// that has nothing left to claim.
var ErrEmptyFrontier = errors.New("grower: empty frontier")

// Coord addresses a grid cell.
type Coord struct{ X, Y int }

// Rand is the random source consumed by the grower. The same source must be
// used for every draw of a run for results to be reproducible.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Grower owns the segment map, one frontier per segment and the done flags.
//
// Segments advance in ascending index order within a step, so when two
// segments border the same cell the lower index claims it first.
type Grower struct {
	labels    *core.Grid[int]
	weights   *core.Grid[float64]
	frontiers []*frontier
	done      []bool
	rng       Rand

	unassigned int
}

// New returns a grower for a w*h grid with n segments. weights may be nil, in
// which case every cell is weighted equally. No cells are assigned yet.
func New(w, h, n int, weights *core.Grid[float64], rng Rand) *Grower {
	labels := core.NewGrid[int](w, h)
	labels.Fill(Unassigned)
	if weights != nil && (weights.W != labels.W || weights.H != labels.H) {
		panic(fmt.Sprintf("grower: weights are %dx%d, grid is %dx%d", weights.W, weights.H, labels.W, labels.H))
	}
	if n < 0 {
		n = 0
	}
	g := &Grower{
		labels:     labels,
		weights:    weights,
		frontiers:  make([]*frontier, n),
		done:       make([]bool, n),
		rng:        rng,
		unassigned: labels.W * labels.H,
	}
	for i := range g.frontiers {
		g.frontiers[i] = newFrontier()
	}
	return g
}

// Segments reports the number of segments.
func (g *Grower) Segments() int { return len(g.frontiers) }

// Size reports the grid dimensions.
func (g *Grower) Size() core.Size { return core.Size{W: g.labels.W, H: g.labels.H} }

// Labels exposes the live segment map. Callers must not mutate it.
func (g *Grower) Labels() *core.Grid[int] { return g.labels }

// Label returns the segment owning c, or Unassigned.
func (g *Grower) Label(c Coord) int { return g.labels.At(c.X, c.Y) }

// Remaining reports how many cells have not been claimed.
func (g *Grower) Remaining() int { return g.unassigned }

// Done reports whether the segment has stopped growing.
func (g *Grower) Done(segment int) bool { return g.done[segment] }

// AllDone reports whether every segment has stopped growing.
func (g *Grower) AllDone() bool {
	for _, d := range g.done {
		if !d {
			return false
		}
	}
	return true
}

// Frontier returns a copy of the segment's frontier in enumeration order.
func (g *Grower) Frontier(segment int) []Coord {
	return append([]Coord(nil), g.frontiers[segment].cells...)
}

// Mark assigns c to segment, drops c from every frontier and adds the
// unassigned 4-neighbors of c to the segment's frontier. It reports whether
// the segment's frontier is now empty, in which case the segment is done.
//
// c is expected to be unassigned; marking an assigned cell relabels it.
func (g *Grower) Mark(c Coord, segment int) bool {
	if g.labels.At(c.X, c.Y) == Unassigned {
		g.unassigned--
	}
	g.labels.Set(c.X, c.Y, segment)

	for _, f := range g.frontiers {
		f.remove(c)
	}

	own := g.frontiers[segment]
	for _, nb := range [4]Coord{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	} {
		if !g.labels.InBounds(nb.X, nb.Y) {
			continue
		}
		if g.labels.At(nb.X, nb.Y) == Unassigned {
			own.add(nb)
		}
	}

	empty := own.len() == 0
	if empty {
		g.done[segment] = true
	}
	return empty
}

// ChooseNeighbor picks a frontier cell of segment with probability
// proportional to its weight. A single uniform draw is walked through the
// frontier in enumeration order. When the weights sum to zero the choice is
// uniform instead.
func (g *Grower) ChooseNeighbor(segment int) (Coord, error) {
	cells := g.frontiers[segment].cells
	if len(cells) == 0 {
		return Coord{}, fmt.Errorf("segment %d: %w", segment, ErrEmptyFrontier)
	}

	total := 0.0
	for _, c := range cells {
		total += g.weight(c)
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return cells[g.rng.IntN(len(cells))], nil
	}

	r := g.rng.Float64()
	cumulative := 0.0
	last := cells[len(cells)-1]
	for _, c := range cells {
		w := g.weight(c)
		if w == 0 {
			continue
		}
		cumulative += w / total
		if r < cumulative {
			return c, nil
		}
		last = c
	}
	// Rounding left the cumulative share just below 1.
	return last, nil
}

// Step advances every live segment by one cell, in ascending segment order.
// A segment whose frontier is empty is marked done instead.
func (g *Grower) Step() error {
	for i, f := range g.frontiers {
		if f.len() == 0 {
			g.done[i] = true
		}
		if g.done[i] {
			continue
		}
		c, err := g.ChooseNeighbor(i)
		if err != nil {
			return err
		}
		g.Mark(c, i)
	}
	return nil
}

func (g *Grower) weight(c Coord) float64 {
	if g.weights == nil {
		return 1
	}
	w := g.weights.At(c.X, c.Y)
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}
