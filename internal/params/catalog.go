package params

import "math"

// DefaultDaysBack is the length of the simulated history when the caller does not set one.
const DefaultDaysBack = 30

var genres = []string{
	"Synth-Neural Pop",
	"Quantum Trap",
	"NeuroWave",
	"Holographic Folk",
	"Bio-Electronic",
	"Orbital Ambient",
	"Virtual Reality Metal",
	"AI-Generated Classical",
	"Memory-Infused Jazz",
	"Biofeedback House",
}

var regions = []string{
	"Global Neural Network",
	"North American Consciousness",
	"European Thought-Sphere",
	"Asian Collective",
	"African Harmony Nexus",
	"South American Flow",
	"Oceanic Dream Web",
	"Lunar Colony Network",
	"Mars Outpost Stream",
	"Orbital Habitat Collective",
}

// Range describes the allowed interval of one numeric field.
type Range struct {
	Field   string  `json:"field"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Integer bool    `json:"integer"`

	get func(Vector) float64
	set func(*Vector, float64)
}

var ranges = []Range{
	{Field: "tempo", Label: "Quantum Rhythm Frequency (BPM)", Min: 60, Max: 200, Step: 1, Integer: true,
		get: func(v Vector) float64 { return float64(v.Tempo) },
		set: func(v *Vector, x float64) { v.Tempo = int(math.Round(x)) }},
	{Field: "emotional_intensity", Label: "Emotional Resonance Factor", Min: 1, Max: 10, Step: 1, Integer: true,
		get: func(v Vector) float64 { return float64(v.EmotionalIntensity) },
		set: func(v *Vector, x float64) { v.EmotionalIntensity = int(math.Round(x)) }},
	{Field: "neural_connection", Label: "Neural Connection Strength", Min: 0, Max: 1, Step: 0.01,
		get: func(v Vector) float64 { return v.NeuralConnection },
		set: func(v *Vector, x float64) { v.NeuralConnection = x }},
	{Field: "synthetic_vocal_pct", Label: "Synthetic Vocal Integration (%)", Min: 0, Max: 100, Step: 1, Integer: true,
		get: func(v Vector) float64 { return float64(v.SyntheticVocalPct) },
		set: func(v *Vector, x float64) { v.SyntheticVocalPct = int(math.Round(x)) }},
	{Field: "meme_potential", Label: "Meme Potential Score", Min: 0, Max: 1, Step: 0.01,
		get: func(v Vector) float64 { return v.MemePotential },
		set: func(v *Vector, x float64) { v.MemePotential = x }},
	{Field: "algorithmic_boost", Label: "Platform Algorithm Boost Factor", Min: 1, Max: 10, Step: 1, Integer: true,
		get: func(v Vector) float64 { return float64(v.AlgorithmicBoost) },
		set: func(v *Vector, x float64) { v.AlgorithmicBoost = int(math.Round(x)) }},
	{Field: "novelty_factor", Label: "Novelty Vector Magnitude", Min: 0, Max: 1, Step: 0.01,
		get: func(v Vector) float64 { return v.NoveltyFactor },
		set: func(v *Vector, x float64) { v.NoveltyFactor = x }},
	{Field: "cultural_resonance", Label: "Cultural Wavelength Resonance", Min: 0, Max: 1, Step: 0.01,
		get: func(v Vector) float64 { return v.CulturalResonance },
		set: func(v *Vector, x float64) { v.CulturalResonance = x }},
	{Field: "celebrity_influence", Label: "Celebrity Neural-Network Influence", Min: 0, Max: 1, Step: 0.01,
		get: func(v Vector) float64 { return v.CelebrityInfluence },
		set: func(v *Vector, x float64) { v.CelebrityInfluence = x }},
	{Field: "forecast_days", Label: "Forecast Horizon (days)", Min: 1, Max: 60, Step: 1, Integer: true,
		get: func(v Vector) float64 { return float64(v.ForecastDays) },
		set: func(v *Vector, x float64) { v.ForecastDays = int(math.Round(x)) }},
	{Field: "days_back", Label: "History Window (days)", Min: 1, Max: 365, Step: 1, Integer: true,
		get: func(v Vector) float64 { return float64(v.DaysBack) },
		set: func(v *Vector, x float64) { v.DaysBack = int(math.Round(x)) }},
}

// Genres lists the selectable base genres in display order.
func Genres() []string {
	return append([]string(nil), genres...)
}

// Regions lists the selectable target markets in display order.
func Regions() []string {
	return append([]string(nil), regions...)
}

// Ranges lists the numeric fields with their bounds in display order.
func Ranges() []Range {
	return append([]Range(nil), ranges...)
}

// RangeFor looks up the bounds of a numeric field by its JSON name.
func RangeFor(field string) (Range, bool) {
	for _, r := range ranges {
		if r.Field == field {
			return r, true
		}
	}
	return Range{}, false
}

// Value reads this field from v.
func (r Range) Value(v Vector) float64 {
	return r.get(v)
}

// Set assigns a numeric field by its JSON name. Integer fields are rounded.
// The value is not range checked; call Validate afterwards.
func (v *Vector) Set(field string, value float64) error {
	r, ok := RangeFor(field)
	if !ok {
		return &InvalidParameterError{Field: field, Value: value, Reason: "unknown field"}
	}
	r.set(v, value)
	return nil
}

// Clamp limits value to the range and snaps it to the field's step.
func (r Range) Clamp(value float64) float64 {
	value = math.Max(r.Min, math.Min(r.Max, value))
	if r.Step > 0 {
		value = r.Min + math.Round((value-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, value))
}
