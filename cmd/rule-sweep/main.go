package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"lifegrid/internal/platform/config"
	"lifegrid/internal/sweep"
	"lifegrid/pkg/seed"
	"lifegrid/pkg/sims/life"
)

func main() {
	rulesFlag := flag.String("rules", "B3/S23,B36/S23,B2/S12,B4/S34,B6/S16,B3/S12345", "comma-separated birth/survival rules")
	size := flag.Int("n", 100, "grid size N")
	density := flag.Float64("density", 0.2, "random fill density in (0,1)")
	seedVal := flag.Int64("seed", 1337, "seed for the shared random grid")
	steps := flag.Int("steps", 500, "maximum generations per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of rules evaluated in parallel")
	flag.Parse()

	var rules []life.Rule
	for _, s := range strings.Split(*rulesFlag, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		r, err := life.ParseRule(s)
		if err != nil {
			config.Exitf("Error: %v", err)
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		config.Exitf("Error: no rules given")
	}

	p := seed.DefaultParams()
	p.Density = *density
	p.Seed = *seedVal
	grid, err := seed.Build(*size, seed.Random, p)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d rules (%d workers, %d steps, %dx%d at density %.2f)\n",
		len(rules), *workers, *steps, *size, *size, *density)

	start := time.Now()
	results, err := sweep.Run(ctx, grid, rules, *steps, *workers)
	if err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nResults by final population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range sweep.Ranked(results) {
		fmt.Printf("%2d) %-10s initial=%d final=%d peak=%d@%d steps=%d%s\n",
			i+1, res.Rule, res.Initial, res.Final, res.Peak, res.PeakStep, res.Steps, outcome(res))
	}
}

func outcome(res sweep.Result) string {
	switch {
	case res.ExtinctStep > 0:
		return fmt.Sprintf(" extinct@%d", res.ExtinctStep)
	case res.StableStep > 0:
		return fmt.Sprintf(" stable@%d", res.StableStep)
	default:
		return ""
	}
}
