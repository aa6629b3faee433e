package grower

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// frontier is an insertion-ordered set of coordinates. The order is the
// enumeration order used by weighted selection, so it must not depend on map
// iteration.
type frontier struct {
	cells  []Coord
	member mapset.Set[Coord]
}

func newFrontier() *frontier {
	return &frontier{member: mapset.New[Coord]()}
}

func (f *frontier) len() int { return len(f.cells) }

func (f *frontier) has(c Coord) bool { return f.member.Has(c) }

func (f *frontier) add(c Coord) {
	if f.member.Has(c) {
		return
	}
	f.member.Put(c)
	f.cells = append(f.cells, c)
}

// remove deletes c while preserving the order of the remaining cells.
func (f *frontier) remove(c Coord) {
	if !f.member.Has(c) {
		return
	}
	f.member.Remove(c)
	if i := slices.Index(f.cells, c); i >= 0 {
		f.cells = slices.Delete(f.cells, i, i+1)
	}
}
