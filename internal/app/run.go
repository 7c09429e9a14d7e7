package app

import (
	"context"
	"fmt"
	"io"

	internalcore "lifegrid/internal/core"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "lifegrid/internal/app"

type gridProvider interface {
	Grid() *core.Grid
}

// RunOptions controls a headless run.
type RunOptions struct {
	Generations int
	Pacer       *internalcore.FixedStep
	Quiet       bool
	Out         io.Writer
}

// Run prints the seed generation and then steps sim opts.Generations times,
// printing each result. It stops early when ctx is cancelled.
func Run(ctx context.Context, sim core.Sim, opts RunOptions) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "run",
		trace.WithAttributes(
			attribute.String("sim", sim.Name()),
			attribute.Int("size", sim.Size().W),
			attribute.Int("generations", opts.Generations),
		))
	defer span.End()
	if pp, ok := sim.(internalcore.ParameterProvider); ok {
		span.SetAttributes(paramAttributes(pp.Parameters())...)
	}

	pacer := opts.Pacer
	if pacer == nil {
		pacer = internalcore.NewFixedStep(0)
	}
	if err := emit(opts, sim); err != nil {
		return err
	}
	for i := 0; i < opts.Generations; i++ {
		if err := pacer.Wait(ctx); err != nil {
			span.SetAttributes(attribute.Int("completed", sim.Generation()))
			return fmt.Errorf("run interrupted at generation %d: %w", sim.Generation(), err)
		}
		sim.Step()
		if err := emit(opts, sim); err != nil {
			return err
		}
	}
	span.SetAttributes(
		attribute.Int("completed", sim.Generation()),
		attribute.Int("live", ui.Live(sim.Cells())),
	)
	return nil
}

func paramAttributes(snap internalcore.ParameterSnapshot) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			attrs = append(attrs, attribute.String("param."+p.Key, p.Value))
		}
	}
	return attrs
}

func emit(opts RunOptions, sim core.Sim) error {
	if opts.Out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(opts.Out, ui.Status(sim)); err != nil {
		return err
	}
	if opts.Quiet {
		return nil
	}
	gp, ok := sim.(gridProvider)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(opts.Out, gp.Grid().String())
	return err
}
