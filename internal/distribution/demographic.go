package distribution

import (
	"sonicseer/internal/params"
)

// MinDemographicShare is the smallest share any age band may receive.
const MinDemographicShare = 0.01

// Demographic estimates the audience split across age bands, in band order.
//
// Bands whose proportional share falls below MinDemographicShare are pinned to
// exactly that floor and the remaining mass is shared among the other bands in
// proportion to their weights. Pinning repeats until no free band is below the
// floor, so every share is >= MinDemographicShare and the total stays 1.
func Demographic(p params.Vector) (Distribution, error) {
	tempo := float64(p.Tempo)
	emotional := float64(p.EmotionalIntensity)

	weights := []weight{
		{"13-17", 0.15 + p.NoveltyFactor*0.3 - emotional*0.05},
		{"18-24", 0.25 + p.MemePotential*0.4 + tempo/200*0.1},
		{"25-34", 0.3 + p.NeuralConnection*0.2 + emotional*0.1},
		{"35-44", 0.2 + p.CulturalResonance*0.3 - p.NoveltyFactor*0.1},
		{"45+", 0.1 + p.CelebrityInfluence*0.2 - p.MemePotential*0.1},
	}

	dist, err := normalize(weights)
	if err != nil {
		return nil, err
	}

	pinned := make([]bool, len(dist))
	for {
		free := 1.0
		freeWeight := 0.0
		for i, w := range weights {
			if pinned[i] {
				free -= MinDemographicShare
			} else {
				freeWeight += w.value
			}
		}

		changed := false
		for i, w := range weights {
			if pinned[i] {
				dist[i].Value = MinDemographicShare
				continue
			}
			dist[i].Value = free * w.value / freeWeight
			if dist[i].Value < MinDemographicShare {
				pinned[i] = true
				changed = true
			}
		}
		if !changed {
			return dist, nil
		}
	}
}
