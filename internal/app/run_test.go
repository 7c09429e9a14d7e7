package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	internalcore "lifegrid/internal/core"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/sims/briansbrain"
	_ "lifegrid/pkg/sims/life"
)

func TestRunPrintsEachGeneration(t *testing.T) {
	sim, err := core.New("life", map[string]string{"n": "12", "mode": "block"})
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	var out bytes.Buffer
	if err := Run(context.Background(), sim, RunOptions{Generations: 3, Quiet: true, Out: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"life  gen 0  live 4",
		"life  gen 1  live 4",
		"life  gen 2  live 4",
		"life  gen 3  live 4",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d=%q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunPrintsGrid(t *testing.T) {
	sim, err := core.New("briansbrain", map[string]string{"n": "9", "mode": "block"})
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	var out bytes.Buffer
	if err := Run(context.Background(), sim, RunOptions{Generations: 1, Out: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "#oo#.....") {
		t.Fatalf("expected refractory block in output:\n%s", out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim, err := core.New("life", map[string]string{"n": "12"})
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Run(ctx, sim, RunOptions{Generations: 5, Pacer: internalcore.NewFixedStep(time.Millisecond)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err=%v, want context.Canceled", err)
	}
	if sim.Generation() != 0 {
		t.Fatalf("no generation should run after cancel, got %d", sim.Generation())
	}
}

func TestParamAttributesFlattensGroups(t *testing.T) {
	snap := internalcore.ParameterSnapshot{Groups: []internalcore.ParameterGroup{
		{Name: "Grid", Params: []internalcore.Parameter{internalcore.IntParam("n", "Size", 20)}},
		{Name: "Rule", Params: []internalcore.Parameter{internalcore.StringParam("rule", "Rule", "B3/S23")}},
	}}
	attrs := paramAttributes(snap)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if string(attrs[1].Key) != "param.rule" || attrs[1].Value.AsString() != "B3/S23" {
		t.Fatalf("unexpected attribute %v", attrs[1])
	}
}
