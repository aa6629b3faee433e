// Command regiongen grows region maps without a window. It prints the map as
// text together with per-segment statistics, or sweeps a range of seeds in
// parallel and tabulates how evenly each one partitions the grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"regiongrow/internal/app"
	"regiongrow/internal/session"
	"regiongrow/internal/sims/regions"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("regiongen: ")

	def := regions.DefaultConfig()
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 32, "grid height")
	segments := flag.Int("n", def.Segments, "number of segments")
	seed := flag.Int64("seed", def.Seed, "seed for placement and noise")
	scale := flag.Float64("scale", def.Noise.Scale, "noise frequency across the grid")
	originX := flag.Float64("ox", def.Noise.OriginX, "noise sample origin x")
	originY := flag.Float64("oy", def.Noise.OriginY, "noise sample origin y")
	octaves := flag.Int("octaves", def.Noise.Octaves, "fractal noise octaves")
	policy := flag.String("policy", def.Placement.String(), "seed collision policy: retry or overwrite")
	timeout := flag.Duration("timeout", 30*time.Second, "time budget for the whole run")
	sweep := flag.Int("sweep", 0, "evaluate this many consecutive seeds instead of printing one map")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel sessions during a sweep")
	quiet := flag.Bool("quiet", false, "skip the map and print statistics only")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	placement, err := session.ParseSeedPolicy(*policy)
	if err != nil {
		log.Fatalf("invalid -policy: %v", err)
	}

	cfg := def
	cfg.Width = *width
	cfg.Height = *height
	cfg.Segments = *segments
	cfg.Seed = *seed
	cfg.Placement = placement
	cfg.Noise.Scale = *scale
	cfg.Noise.OriginX = *originX
	cfg.Noise.OriginY = *originY
	cfg.Noise.Octaves = *octaves
	if len(overrides) > 0 {
		cfg = regions.ApplyMap(cfg, overrides.Map())
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *sweep > 0 {
		results, err := runSweep(ctx, cfg, *sweep, *workers)
		if err != nil {
			log.Fatalf("sweep failed: %v", err)
		}
		printSweep(os.Stdout, results)
		return
	}

	start := time.Now()
	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	steps, err := sess.RunToCompletion(ctx)
	if err != nil {
		log.Fatalf("after %d steps: %v", steps, err)
	}
	st := sess.State()

	fmt.Printf("%dx%d, %d segments, seed %d: %d steps in %s, %d seed collisions\n",
		cfg.Width, cfg.Height, cfg.Segments, cfg.Seed, steps, time.Since(start).Round(time.Microsecond), sess.Collisions())
	if !*quiet {
		fmt.Println()
		if err := writeMap(os.Stdout, st); err != nil {
			log.Fatalf("print map: %v", err)
		}
	}
	fmt.Println()
	printReport(os.Stdout, session.Analyze(st), sess.Seeds())
}
