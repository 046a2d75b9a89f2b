package params

import (
	"errors"
	"math"
	"testing"
)

func TestDefaults_AreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults() should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Vector)
		field  string
	}{
		{"UnknownGenre", func(v *Vector) { v.Genre = "Polka" }, "genre"},
		{"NoRegions", func(v *Vector) { v.Regions = nil }, "regions"},
		{"UnknownRegion", func(v *Vector) { v.Regions = []string{"Atlantis"} }, "regions"},
		{"DuplicateRegion", func(v *Vector) { v.Regions = []string{"Asian Collective", "Asian Collective"} }, "regions"},
		{"TempoTooLow", func(v *Vector) { v.Tempo = 59 }, "tempo"},
		{"TempoTooHigh", func(v *Vector) { v.Tempo = 201 }, "tempo"},
		{"EmotionalZero", func(v *Vector) { v.EmotionalIntensity = 0 }, "emotional_intensity"},
		{"NeuralAboveOne", func(v *Vector) { v.NeuralConnection = 1.01 }, "neural_connection"},
		{"NeuralNaN", func(v *Vector) { v.NeuralConnection = math.NaN() }, "neural_connection"},
		{"MemeInf", func(v *Vector) { v.MemePotential = math.Inf(1) }, "meme_potential"},
		{"VocalNegative", func(v *Vector) { v.SyntheticVocalPct = -1 }, "synthetic_vocal_pct"},
		{"MemeNegative", func(v *Vector) { v.MemePotential = -0.1 }, "meme_potential"},
		{"BoostEleven", func(v *Vector) { v.AlgorithmicBoost = 11 }, "algorithmic_boost"},
		{"NoveltyAboveOne", func(v *Vector) { v.NoveltyFactor = 2 }, "novelty_factor"},
		{"CulturalNegative", func(v *Vector) { v.CulturalResonance = -1 }, "cultural_resonance"},
		{"CelebrityAboveOne", func(v *Vector) { v.CelebrityInfluence = 1.5 }, "celebrity_influence"},
		{"ForecastZero", func(v *Vector) { v.ForecastDays = 0 }, "forecast_days"},
		{"ForecastTooLong", func(v *Vector) { v.ForecastDays = 61 }, "forecast_days"},
		{"DaysBackZero", func(v *Vector) { v.DaysBack = 0 }, "days_back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Defaults()
			tt.mutate(&v)

			err := v.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected *InvalidParameterError, got %T", err)
			}
			if ipe.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, ipe.Field)
			}
		})
	}
}

func TestValidate_BoundsInclusive(t *testing.T) {
	v := Defaults()
	v.Tempo = 200
	v.EmotionalIntensity = 1
	v.NeuralConnection = 0
	v.MemePotential = 1
	v.ForecastDays = 60
	if err := v.Validate(); err != nil {
		t.Errorf("boundary values should be accepted, got %v", err)
	}
}

func TestPrimaryRegion(t *testing.T) {
	v := Defaults()
	v.Regions = []string{"Asian Collective", "Orbital Habitat Collective", "Mars Outpost Stream"}
	if got := v.PrimaryRegion(); got != "Orbital Habitat Collective" {
		t.Errorf("PrimaryRegion() = %q", got)
	}

	v.Regions = nil
	if got := v.PrimaryRegion(); got != "" {
		t.Errorf("PrimaryRegion() with no regions = %q, want empty", got)
	}
}

func TestRangeFor(t *testing.T) {
	r, ok := RangeFor("tempo")
	if !ok || r.Min != 60 || r.Max != 200 || !r.Integer {
		t.Errorf("unexpected tempo range: %+v (found=%v)", r, ok)
	}
	if _, ok := RangeFor("volume"); ok {
		t.Error("expected unknown field to be missing")
	}
}

func TestSet(t *testing.T) {
	v := Defaults()
	if err := v.Set("tempo", 141.6); err != nil {
		t.Fatalf("Set(tempo) failed: %v", err)
	}
	if v.Tempo != 142 {
		t.Errorf("Expected integer field to be rounded to 142, got %d", v.Tempo)
	}

	if err := v.Set("meme_potential", 0.33); err != nil {
		t.Fatalf("Set(meme_potential) failed: %v", err)
	}
	if v.MemePotential != 0.33 {
		t.Errorf("Expected 0.33, got %v", v.MemePotential)
	}

	err := v.Set("volume", 3)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for unknown field, got %v", err)
	}
}

func TestRangeValueMatchesSet(t *testing.T) {
	v := Defaults()
	for _, r := range Ranges() {
		if err := v.Set(r.Field, r.Max); err != nil {
			t.Fatalf("Set(%s) failed: %v", r.Field, err)
		}
		if got := r.Value(v); got != r.Max {
			t.Errorf("%s: Value() = %v after Set(%v)", r.Field, got, r.Max)
		}
	}
	if err := v.Validate(); err != nil {
		t.Errorf("Vector at every maximum should validate: %v", err)
	}
}

func TestRangeClamp(t *testing.T) {
	tempo, _ := RangeFor("tempo")
	meme, _ := RangeFor("meme_potential")

	tests := []struct {
		name string
		r    Range
		in   float64
		want float64
	}{
		{"below min", tempo, 10, 60},
		{"above max", tempo, 999, 200},
		{"snaps to step", tempo, 120.4, 120},
		{"fraction kept", meme, 0.5, 0.5},
		{"fraction above max", meme, 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Clamp(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
