// Package insights turns a parameter vector into presentation-ready advice and scores.
package insights

import "sonicseer/internal/params"

// Axis is one dimension of the sonic profile, scored 0-100.
type Axis struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Profile rates the track on the six radar axes.
func Profile(p params.Vector) []Axis {
	return []Axis{
		{"Rhythm Impact", float64(p.Tempo) / 200 * 100},
		{"Emotional Resonance", float64(p.EmotionalIntensity) / 10 * 100},
		{"Sonic Novelty", p.NoveltyFactor * 100},
		{"Neural Hook Strength", p.NeuralConnection * 100},
		{"Memetic Potential", p.MemePotential * 100},
		{"Algorithm Appeal", float64(p.AlgorithmicBoost) / 10 * 100},
	}
}
