// Package sweep runs one seed grid under many birth/survival rules in
// parallel and summarises how each population evolves.
package sweep

import (
	"context"
	"sort"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// Result summarises one rule's run.
type Result struct {
	Rule        life.Rule
	Initial     int
	Final       int
	Peak        int
	PeakStep    int
	StableStep  int // first step whose grid equals its predecessor, 0 if never
	ExtinctStep int // first step with no live cells, 0 if never
	Steps       int
}

// Run advances a copy of seed under every rule for up to steps generations.
// Results keep the order of rules. A run stops early once its grid is empty
// or unchanged between two generations.
func Run(ctx context.Context, seed *core.Grid, rules []life.Rule, steps, workers int) ([]Result, error) {
	if seed.Family() != core.Binary {
		return nil, core.InvalidParameterf("sweep needs a binary seed grid, got %s", seed.Family())
	}
	if steps < 0 {
		return nil, core.InvalidParameterf("steps %d must not be negative", steps)
	}

	results := make([]Result, len(rules))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, r := range rules {
		g.Go(func() error {
			res, err := runRule(ctx, seed.Clone(), r, steps)
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
	return results, nil
}

func runRule(ctx context.Context, cur *core.Grid, r life.Rule, steps int) (Result, error) {
	nxt := cur.Clone()
	live := cur.Count(core.On)
	res := Result{Rule: r, Initial: live, Final: live, Peak: live}
	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		life.Advance(nxt, cur, r)
		cur, nxt = nxt, cur
		res.Steps = step

		live = cur.Count(core.On)
		res.Final = live
		if live > res.Peak {
			res.Peak = live
			res.PeakStep = step
		}
		if live == 0 {
			res.ExtinctStep = step
			break
		}
		if cur.Equal(nxt) {
			res.StableStep = step
			break
		}
	}
	return res, nil
}

// Ranked returns a copy of results ordered by final population, largest first.
func Ranked(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Final > out[j].Final })
	return out
}
