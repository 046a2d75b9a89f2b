package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sonicseer/internal/forecast"
)

func testConfig(scenario string, count int) GeneratorConfig {
	return GeneratorConfig{
		Scenario: scenario,
		Count:    count,
		Seed:     2024,
		Workers:  4,
		Now:      time.Date(2040, time.August, 1, 0, 0, 0, 0, time.UTC),
	}
}

func mustGenerate(t *testing.T, cfg GeneratorConfig) []forecast.Request {
	t.Helper()
	requests, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return requests
}

func TestGenerate_ValidAndDeterministic(t *testing.T) {
	for _, scenario := range []string{ScenarioUniform, ScenarioViral, ScenarioDrift} {
		t.Run(scenario, func(t *testing.T) {
			cfg := testConfig(scenario, 50)
			a, err := Generate(cfg)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			b := mustGenerate(t, cfg)

			if len(a) != cfg.Count {
				t.Fatalf("Expected %d requests, got %d", cfg.Count, len(a))
			}
			for i := range a {
				if err := a[i].Parameters.Validate(); err != nil {
					t.Errorf("Request %d invalid: %v", i, err)
				}
				if a[i].Seed == nil || *a[i].Seed != *b[i].Seed || a[i].Parameters.Genre != b[i].Parameters.Genre {
					t.Errorf("Request %d differs between runs with the same seed", i)
				}
				if n := len(a[i].Parameters.Regions); n < 1 || n > 3 {
					t.Errorf("Request %d has %d regions", i, n)
				}
			}
		})
	}
}

func TestGenerate_ViralRaisesDrivers(t *testing.T) {
	for i, req := range mustGenerate(t, testConfig(ScenarioViral, 30)) {
		p := req.Parameters
		if p.MemePotential < 0.7 || p.EmotionalIntensity < 7 || p.NeuralConnection < 0.7 {
			t.Errorf("Request %d not in the viral band: %+v", i, p)
		}
	}
}

func TestGenerate_DriftIncreases(t *testing.T) {
	reqs := mustGenerate(t, testConfig(ScenarioDrift, 40))
	first, last := reqs[0].Parameters, reqs[len(reqs)-1].Parameters
	if first.Tempo >= last.Tempo || first.MemePotential >= last.MemePotential {
		t.Errorf("Expected parameters to drift upwards: first=%+v last=%+v", first, last)
	}
}

func TestRunAndSave(t *testing.T) {
	cfg := testConfig(ScenarioUniform, 12)
	svc := forecast.NewService(forecast.Options{Now: func() time.Time { return cfg.Now }}, nil)

	requests := mustGenerate(t, cfg)
	reports, err := Run(context.Background(), cfg, svc, requests)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(reports) != cfg.Count {
		t.Fatalf("Expected %d reports, got %d", cfg.Count, len(reports))
	}
	for i, r := range reports {
		if r.Seed != *requests[i].Seed {
			t.Errorf("Report %d out of order", i)
		}
	}

	manifest := NewManifest(cfg, reports)
	total := 0
	for _, n := range manifest.Genres {
		total += n
	}
	if total != cfg.Count {
		t.Errorf("Genre histogram covers %d reports, want %d", total, cfg.Count)
	}
	if manifest.MaxVirality < manifest.MeanVirality {
		t.Errorf("Max virality %.2f below mean %.2f", manifest.MaxVirality, manifest.MeanVirality)
	}

	dir := t.TempDir()
	if err := Save(dir, manifest, reports); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, manifest.RunID+".jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var r forecast.Report
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			t.Fatalf("Line %d is not a report: %v", lines, err)
		}
		lines++
	}
	if lines != cfg.Count {
		t.Errorf("Expected %d JSONL lines, got %d", cfg.Count, lines)
	}

	raw, err := os.ReadFile(filepath.Join(dir, manifest.RunID+"_manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	var saved Manifest
	if err := json.Unmarshal(raw, &saved); err != nil {
		t.Fatal(err)
	}
	if saved.RunID != manifest.RunID || saved.Count != cfg.Count {
		t.Errorf("Unexpected manifest: %+v", saved)
	}
}

func TestRun_PropagatesErrors(t *testing.T) {
	cfg := testConfig(ScenarioUniform, 3)
	svc := forecast.NewService(forecast.Options{}, nil)

	requests := mustGenerate(t, cfg)
	requests[1].Parameters.Tempo = 0

	if _, err := Run(context.Background(), cfg, svc, requests); err == nil {
		t.Fatal("Expected invalid request to fail the run")
	}
}
