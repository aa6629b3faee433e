package session

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// SegmentStats summarizes one segment of a snapshot.
type SegmentStats struct {
	Segment int
	Cells   int

	// Bounding box, inclusive. Zero when the segment owns no cells.
	MinX, MinY int
	MaxX, MaxY int

	// Neighbors lists the segments sharing at least one 4-connected edge,
	// in ascending order.
	Neighbors []int
}

// Report summarizes a snapshot.
type Report struct {
	Segments   []SegmentStats
	Unassigned int
}

// Largest returns the cell count of the biggest segment.
func (r Report) Largest() int {
	largest := 0
	for _, s := range r.Segments {
		largest = max(largest, s.Cells)
	}
	return largest
}

// Smallest returns the cell count of the smallest segment.
func (r Report) Smallest() int {
	if len(r.Segments) == 0 {
		return 0
	}
	smallest := r.Segments[0].Cells
	for _, s := range r.Segments[1:] {
		smallest = min(smallest, s.Cells)
	}
	return smallest
}

// Analyze computes per-segment sizes, extents and adjacency for st.
func Analyze(st State) Report {
	stats := make([]SegmentStats, st.Segments)
	adjacent := make([]mapset.Set[int], st.Segments)
	for i := range stats {
		stats[i] = SegmentStats{Segment: i, MinX: st.Width, MinY: st.Height, MaxX: -1, MaxY: -1}
		adjacent[i] = mapset.New[int]()
	}

	report := Report{}
	for y := 0; y < st.Height; y++ {
		for x := 0; x < st.Width; x++ {
			label := st.Label(x, y)
			if label < 0 || label >= st.Segments {
				report.Unassigned++
				continue
			}
			s := &stats[label]
			s.Cells++
			s.MinX = min(s.MinX, x)
			s.MinY = min(s.MinY, y)
			s.MaxX = max(s.MaxX, x)
			s.MaxY = max(s.MaxY, y)

			if x+1 < st.Width {
				link(adjacent, label, st.Label(x+1, y))
			}
			if y+1 < st.Height {
				link(adjacent, label, st.Label(x, y+1))
			}
		}
	}

	for i := range stats {
		s := &stats[i]
		if s.Cells == 0 {
			s.MinX, s.MinY, s.MaxX, s.MaxY = 0, 0, 0, 0
		}
		adjacent[i].Each(func(other int) {
			s.Neighbors = append(s.Neighbors, other)
		})
		slices.Sort(s.Neighbors)
	}
	report.Segments = stats
	return report
}

func link(adjacent []mapset.Set[int], a, b int) {
	if a == b || b < 0 || b >= len(adjacent) {
		return
	}
	adjacent[a].Put(b)
	adjacent[b].Put(a)
}
