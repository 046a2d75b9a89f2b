package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentChange(t *testing.T) {
	got := PercentChange([]float64{100, 150, 0, 50})
	want := []float64{0, 0.5, -1, 0}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("PercentChange()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRollingMean(t *testing.T) {
	got := RollingMean([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{1, 1.5, 2, 3, 4}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("RollingMean()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMomentum(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		window   int
		expected float64
	}{
		{"TooShort", []float64{1, 2}, 7, 0},
		{"Doubling", []float64{10, 12, 14, 20}, 4, 1},
		{"ZeroReference", []float64{0, 5, 10}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Momentum(tt.values, tt.window); !almostEqual(got, tt.expected) {
				t.Errorf("Momentum() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStability(t *testing.T) {
	flat := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	if got := Stability(flat, 7); !almostEqual(got, 1) {
		t.Errorf("Stability(flat) = %v, want 1", got)
	}

	if got := Stability([]float64{1, 2, 3}, 7); got != defaultStability {
		t.Errorf("Stability(short) = %v, want %v", got, defaultStability)
	}

	spiky := []float64{1, 100, 1, 100, 1, 100, 1, 100}
	if got := Stability(spiky, 7); got >= 0.5 {
		t.Errorf("Stability(spiky) = %v, expected a volatile series to score low", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]int{100, 110, 120, 130, 140, 150, 160, 200})

	if s.Max != 200 {
		t.Errorf("Max = %d, want 200", s.Max)
	}
	if !almostEqual(s.OverallGrowth, 1) {
		t.Errorf("OverallGrowth = %v, want 1", s.OverallGrowth)
	}
	if !almostEqual(s.Median, 135) {
		t.Errorf("Median = %v, want 135", s.Median)
	}
	// 200 / 110 - 1
	if !almostEqual(s.Momentum, 200.0/110.0-1) {
		t.Errorf("Momentum = %v, want %v", s.Momentum, 200.0/110.0-1)
	}
	if len(s.Growth) != 8 || len(s.Rolling3) != 8 || len(s.Rolling7) != 8 {
		t.Errorf("Expected per-day slices of length 8, got %d/%d/%d", len(s.Growth), len(s.Rolling3), len(s.Rolling7))
	}
	if s.Stability <= 0 || s.Stability > 1 {
		t.Errorf("Stability = %v, want within (0, 1]", s.Stability)
	}

	empty := Summarize(nil)
	if empty.Stability != defaultStability || empty.Mean != 0 {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
}
