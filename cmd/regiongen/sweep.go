package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"regiongrow/internal/session"
)

type sweepResult struct {
	seed       int64
	steps      int
	collisions int
	smallest   int
	largest    int
}

// balance is the ratio of the smallest to the largest segment; 1 means every
// segment received the same number of cells.
func (r sweepResult) balance() float64 {
	if r.largest == 0 {
		return 0
	}
	return float64(r.smallest) / float64(r.largest)
}

// runSweep grows count maps from consecutive seeds starting at base.Seed.
// Each worker owns its session. Results are ordered by seed.
func runSweep(ctx context.Context, base session.Config, count, workers int) ([]sweepResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]sweepResult, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		g.Go(func() error {
			sess, err := session.New(cfg)
			if err != nil {
				return err
			}
			steps, err := sess.RunToCompletion(ctx)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			report := session.Analyze(sess.State())
			results[i] = sweepResult{
				seed:       cfg.Seed,
				steps:      steps,
				collisions: sess.Collisions(),
				smallest:   report.Smallest(),
				largest:    report.Largest(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printSweep(w io.Writer, results []sweepResult) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%-12s %7s %10s %9s %9s %8s\n", "seed", "steps", "collisions", "smallest", "largest", "balance")
	best := results[0]
	for _, r := range results {
		fmt.Fprintf(w, "%-12d %7d %10d %9d %9d %8.3f\n", r.seed, r.steps, r.collisions, r.smallest, r.largest, r.balance())
		if r.balance() > best.balance() {
			best = r
		}
	}
	fmt.Fprintf(w, "\nMost balanced: seed %d (smallest %d, largest %d, balance %.3f)\n", best.seed, best.smallest, best.largest, best.balance())
}
