package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sonicseer/internal/forecast"
	"sonicseer/internal/params"
	"sonicseer/internal/stats"
)

const (
	ScenarioUniform = "uniform"
	ScenarioViral   = "viral"
	ScenarioDrift   = "drift"
)

// viralFields are pushed into the upper part of their range by the viral scenario.
var viralFields = map[string]bool{
	"emotional_intensity": true,
	"neural_connection":   true,
	"meme_potential":      true,
	"algorithmic_boost":   true,
}

type GeneratorConfig struct {
	Scenario string // "uniform", "viral" or "drift"
	Count    int
	Seed     int64
	Workers  int
	Now      time.Time
}

type Manifest struct {
	RunID        string         `json:"run_id"`
	Scenario     string         `json:"scenario"`
	Count        int            `json:"count"`
	Seed         int64          `json:"seed"`
	GeneratedAt  time.Time      `json:"generated_at"`
	Genres       map[string]int `json:"genres"`
	MeanVirality float64        `json:"mean_virality"`
	MaxVirality  float64        `json:"max_virality"`
}

// Generate samples cfg.Count valid requests. The same seed yields the same requests.
func Generate(cfg GeneratorConfig) ([]forecast.Request, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	genres := params.Genres()
	regions := params.Regions()

	requests := make([]forecast.Request, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		v := params.Defaults()

		// 1. Categorical choices
		v.Genre = genres[rng.Intn(len(genres))]
		perm := rng.Perm(len(regions))
		v.Regions = nil
		for _, idx := range perm[:1+rng.Intn(3)] {
			v.Regions = append(v.Regions, regions[idx])
		}

		// 2. Numeric sliders
		progress := 0.0
		if cfg.Count > 1 {
			progress = float64(i) / float64(cfg.Count-1)
		}
		for _, r := range params.Ranges() {
			u := sampleUnit(rng, cfg.Scenario, r.Field, progress)
			if err := v.Set(r.Field, r.Clamp(r.Min+u*(r.Max-r.Min))); err != nil {
				return nil, fmt.Errorf("scenario %d: %w", i, err)
			}
		}

		// 3. Per-request seed keeps each report reproducible on its own
		seed := rng.Int63()
		requests = append(requests, forecast.Request{Parameters: v, Seed: &seed})
	}
	return requests, nil
}

// sampleUnit returns a position in [0, 1] within a field's range.
func sampleUnit(rng *rand.Rand, scenario, field string, progress float64) float64 {
	switch scenario {
	case ScenarioViral:
		if viralFields[field] {
			return 0.7 + rng.Float64()*0.3
		}
	case ScenarioDrift:
		// Shift from the low end to the high end across the run with a little jitter
		u := progress + (rng.Float64()-0.5)*0.2
		return min(1, max(0, u))
	}
	return rng.Float64()
}

// Run executes the pipeline for every request with at most cfg.Workers in flight.
// Reports keep the order of requests.
func Run(ctx context.Context, cfg GeneratorConfig, svc *forecast.Service, requests []forecast.Request) ([]*forecast.Report, error) {
	reports := make([]*forecast.Report, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))

	for i, req := range requests {
		g.Go(func() error {
			report, err := svc.Run(ctx, req)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func NewManifest(cfg GeneratorConfig, reports []*forecast.Report) Manifest {
	m := Manifest{
		RunID:       uuid.NewString(),
		Scenario:    cfg.Scenario,
		Count:       len(reports),
		Seed:        cfg.Seed,
		GeneratedAt: cfg.Now,
		Genres:      make(map[string]int),
	}

	scores := make([]float64, 0, len(reports))
	for _, r := range reports {
		m.Genres[r.Parameters.Genre]++
		scores = append(scores, r.Metrics.ViralityScore)
		m.MaxVirality = max(m.MaxVirality, r.Metrics.ViralityScore)
	}
	m.MeanVirality = stats.Mean(scores)
	return m
}

func Save(outDir string, manifest Manifest, reports []*forecast.Report) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	jsonlPath := filepath.Join(outDir, fmt.Sprintf("%s.jsonl", manifest.RunID))
	manifestPath := filepath.Join(outDir, fmt.Sprintf("%s_manifest.json", manifest.RunID))

	// Save Reports
	f, err := os.Create(jsonlPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report %s: %w", r.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// Save Manifest
	fm, err := os.Create(manifestPath)
	if err != nil {
		return err
	}
	defer fm.Close()

	encM := json.NewEncoder(fm)
	encM.SetIndent("", "  ")
	return encM.Encode(manifest)
}
