package distribution

import (
	"sort"

	"sonicseer/internal/params"
)

// Platform estimates where engagement will concentrate, largest share first.
// Ties keep their declaration order.
func Platform(p params.Vector) (Distribution, error) {
	tempo := float64(p.Tempo)
	emotional := float64(p.EmotionalIntensity)
	vocal := float64(p.SyntheticVocalPct)

	weights := []weight{
		{"HoloTok", 0.4 + p.MemePotential*0.6 + p.NoveltyFactor*0.3 - p.CulturalResonance*0.1},
		{"NeuraVerse", 0.2 + p.NeuralConnection*0.6 + emotional*0.05},
		{"SenseStream", 0.15 + p.CulturalResonance*0.4 + emotional*0.03},
		{"BrainBeats", 0.1 + tempo/200*0.3 + vocal/100*0.2},
		{"OmniGroove", 0.05 + p.CelebrityInfluence*0.3 + emotional*0.02},
		{"NeuroClips", 0.1 + p.NoveltyFactor*0.2 + p.MemePotential*0.15},
	}

	// In-range inputs keep every weight positive; out-of-range ones must not yield negative shares.
	for i := range weights {
		weights[i].value = max(0, weights[i].value)
	}

	dist, err := normalize(weights)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Value > dist[j].Value
	})
	return dist, nil
}
