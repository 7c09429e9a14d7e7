// Command lifegrid seeds a grid and prints successive generations as text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifegrid/internal/app"
	internalcore "lifegrid/internal/core"
	"lifegrid/internal/platform/config"
	"lifegrid/internal/platform/otel"
	"lifegrid/internal/random"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/sims/briansbrain"
	_ "lifegrid/pkg/sims/life"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	flag.StringVar(&cfg.Sim, "sim", cfg.Sim, "simulation to run (life, briansbrain)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random fill (0 = random)")
	cfg.BindSeeding(flag.CommandLine)
	cfg.BindRun(flag.CommandLine)
	flag.Parse()

	if err := execute(cfg); err != nil {
		config.Exitf("lifegrid: %v", err)
	}
}

func execute(cfg *app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "lifegrid")
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return run(ctx, cfg)
}

func run(ctx context.Context, cfg *app.Config) error {
	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	sim, err := core.New(cfg.Sim, cfg.SimConfig(seed))
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		log.Printf("%s seed=%d", sim.Name(), seed)
	}
	return app.Run(ctx, sim, app.RunOptions{
		Generations: cfg.Generations,
		Pacer:       internalcore.NewFixedStep(cfg.Interval),
		Quiet:       cfg.Quiet,
		Out:         os.Stdout,
	})
}
