package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sonicseer/internal/forecast"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("LOGS_FOLDER", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestForecastCommand_JSON(t *testing.T) {
	out, err := execute(t, "forecast",
		"--genre", "NeuroWave",
		"--region", "Asian Collective,Oceanic Dream Web",
		"--forecast-days", "5",
		"--meme-potential", "0.9",
		"--tempo", "140",
		"--seed", "3",
		"--format", "json",
	)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}

	var report forecast.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Output is not a report: %v\n%s", err, out)
	}

	p := report.Parameters
	if p.Genre != "NeuroWave" || len(p.Regions) != 2 || p.ForecastDays != 5 || p.MemePotential != 0.9 || p.Tempo != 140 {
		t.Errorf("Flags not applied: %+v", p)
	}
	if report.Seed != 3 {
		t.Errorf("Expected seed 3, got %d", report.Seed)
	}
	if len(report.Series.Forecast()) != 6 {
		t.Errorf("Expected 6 forecast points, got %d", len(report.Series.Forecast()))
	}
}

func TestForecastCommand_Markdown(t *testing.T) {
	out, err := execute(t, "forecast", "--seed", "3", "--format", "markdown")
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}

	for _, want := range []string{"## Forecast Metrics", "```mermaid", "## Artist Recommendations", "## Marketing Projections"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in markdown output:\n%s", want, out)
		}
	}
}

func TestForecastCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"forecast", "--format", "yaml"}, "unsupported format"},
		{"out of range", []string{"forecast", "--format", "json", "--tempo", "400"}, "tempo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "sonicseer dev") {
		t.Errorf("Unexpected version output %q", out)
	}
}
