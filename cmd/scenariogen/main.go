package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"sonicseer/cmd/scenariogen/engine"
	"sonicseer/internal/forecast"
)

func main() {
	scenario := flag.String("scenario", engine.ScenarioUniform, "Scenario to generate: uniform, viral, drift")
	outDir := flag.String("out", "./fixtures", "Output directory for fixture files")
	count := flag.Int("count", 200, "Number of parameter sets to generate")
	seed := flag.Int64("seed", 1, "Seed for parameter sampling")
	workers := flag.Int("workers", runtime.NumCPU(), "Maximum concurrent pipeline runs")
	celebrity := flag.Bool("celebrity-boost", false, "Apply the celebrity multiplier to forecasts")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Seed:     *seed,
		Workers:  *workers,
		Now:      time.Now(),
	}

	switch cfg.Scenario {
	case engine.ScenarioUniform, engine.ScenarioViral, engine.ScenarioDrift:
	default:
		fmt.Fprintf(os.Stderr, "Unknown scenario %q\n", cfg.Scenario)
		os.Exit(2)
	}

	fmt.Printf("Generating scenario '%s' (Count: %d, Seed: %d) to %s...\n", cfg.Scenario, cfg.Count, cfg.Seed, *outDir)

	svc := forecast.NewService(forecast.Options{
		CelebrityBoost: *celebrity,
		Now:            func() time.Time { return cfg.Now },
	}, nil)

	requests, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate scenarios: %v\n", err)
		os.Exit(1)
	}
	reports, err := engine.Run(context.Background(), cfg, svc, requests)
	if err != nil {
		fmt.Printf("Failed to run scenarios: %v\n", err)
		os.Exit(1)
	}

	manifest := engine.NewManifest(cfg, reports)
	if err := engine.Save(*outDir, manifest, reports); err != nil {
		fmt.Printf("Failed to save fixtures: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Run %s, mean virality %.1f\n", manifest.RunID, manifest.MeanVirality)
}
