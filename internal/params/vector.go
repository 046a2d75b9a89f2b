package params

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidParameter is matched by every validation failure in this package.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError names the offending field of a Vector.
type InvalidParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Vector is the full set of tuning inputs for one forecast.
type Vector struct {
	Genre              string   `json:"genre"`
	Regions            []string `json:"regions"`
	Tempo              int      `json:"tempo"`
	EmotionalIntensity int      `json:"emotional_intensity"`
	NeuralConnection   float64  `json:"neural_connection"`
	SyntheticVocalPct  int      `json:"synthetic_vocal_pct"`
	MemePotential      float64  `json:"meme_potential"`
	AlgorithmicBoost   int      `json:"algorithmic_boost"`
	NoveltyFactor      float64  `json:"novelty_factor"`
	CulturalResonance  float64  `json:"cultural_resonance"`
	CelebrityInfluence float64  `json:"celebrity_influence"`
	ForecastDays       int      `json:"forecast_days"`
	DaysBack           int      `json:"days_back"`
}

// Defaults returns the initial dashboard slider positions.
func Defaults() Vector {
	return Vector{
		Genre:              genres[0],
		Regions:            []string{regions[0]},
		Tempo:              120,
		EmotionalIntensity: 7,
		NeuralConnection:   0.8,
		SyntheticVocalPct:  40,
		MemePotential:      0.7,
		AlgorithmicBoost:   7,
		NoveltyFactor:      0.6,
		CulturalResonance:  0.75,
		CelebrityInfluence: 0.5,
		ForecastDays:       14,
		DaysBack:           DefaultDaysBack,
	}
}

// Validate checks enumerations and slider ranges. It returns the first violation found.
func (v Vector) Validate() error {
	if !slices.Contains(genres, v.Genre) {
		return &InvalidParameterError{Field: "genre", Value: v.Genre, Reason: "unknown genre"}
	}
	if len(v.Regions) == 0 {
		return &InvalidParameterError{Field: "regions", Value: v.Regions, Reason: "at least one region is required"}
	}
	seen := make(map[string]bool, len(v.Regions))
	for _, r := range v.Regions {
		if !slices.Contains(regions, r) {
			return &InvalidParameterError{Field: "regions", Value: r, Reason: "unknown region"}
		}
		if seen[r] {
			return &InvalidParameterError{Field: "regions", Value: r, Reason: "duplicate region"}
		}
		seen[r] = true
	}

	for _, rg := range ranges {
		val := rg.get(v)
		if math.IsNaN(val) || val < rg.Min || val > rg.Max {
			return &InvalidParameterError{
				Field:  rg.Field,
				Value:  val,
				Reason: fmt.Sprintf("must be within [%g, %g]", rg.Min, rg.Max),
			}
		}
	}
	return nil
}

// PrimaryRegion returns the region with the longest name, first one winning ties.
func (v Vector) PrimaryRegion() string {
	best := ""
	for _, r := range v.Regions {
		if len(r) > len(best) {
			best = r
		}
	}
	return best
}
