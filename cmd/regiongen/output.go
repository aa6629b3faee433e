package main

import (
	"fmt"
	"io"
	"strings"

	"regiongrow/internal/grower"
	"regiongrow/internal/session"
)

const glyphs = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// glyph returns the character drawn for a label. Unassigned cells are '.'
// and labels past the glyph table are '#'.
func glyph(label int) byte {
	switch {
	case label < 0:
		return '.'
	case label >= len(glyphs):
		return '#'
	default:
		return glyphs[label]
	}
}

func writeMap(w io.Writer, st session.State) error {
	row := make([]byte, st.Width+1)
	row[st.Width] = '\n'
	for y := 0; y < st.Height; y++ {
		for x := 0; x < st.Width; x++ {
			row[x] = glyph(st.Label(x, y))
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	return nil
}

func printReport(w io.Writer, r session.Report, seeds []grower.Coord) {
	fmt.Fprintf(w, "%-4s %-4s %8s %-9s %-15s %s\n", "seg", "chr", "cells", "seed", "bounds", "neighbors")
	for _, s := range r.Segments {
		seed := "-"
		if s.Segment < len(seeds) {
			seed = fmt.Sprintf("%d,%d", seeds[s.Segment].X, seeds[s.Segment].Y)
		}
		bounds := fmt.Sprintf("%d,%d-%d,%d", s.MinX, s.MinY, s.MaxX, s.MaxY)
		fmt.Fprintf(w, "%-4d %-4c %8d %-9s %-15s %s\n", s.Segment, glyph(s.Segment), s.Cells, seed, bounds, joinInts(s.Neighbors))
	}
	if r.Unassigned > 0 {
		fmt.Fprintf(w, "unassigned: %d\n", r.Unassigned)
	}
}

func joinInts(v []int) string {
	if len(v) == 0 {
		return "-"
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}
