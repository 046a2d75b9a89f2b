package insights

import (
	"slices"
	"testing"

	"sonicseer/internal/params"
)

func TestProfile(t *testing.T) {
	p := params.Defaults()
	p.Tempo = 100
	p.EmotionalIntensity = 5
	p.NoveltyFactor = 0.25
	p.NeuralConnection = 0.5
	p.MemePotential = 1
	p.AlgorithmicBoost = 10

	expected := map[string]float64{
		"Rhythm Impact":        50,
		"Emotional Resonance":  50,
		"Sonic Novelty":        25,
		"Neural Hook Strength": 50,
		"Memetic Potential":    100,
		"Algorithm Appeal":     100,
	}

	axes := Profile(p)
	if len(axes) != 6 {
		t.Fatalf("Expected 6 axes, got %d", len(axes))
	}
	for _, a := range axes {
		if a.Score != expected[a.Name] {
			t.Errorf("%s = %v, want %v", a.Name, a.Score, expected[a.Name])
		}
	}
}

func TestRecommendations(t *testing.T) {
	p := params.Defaults()
	p.Genre = "Quantum Trap"
	p.Regions = []string{"Asian Collective", "Lunar Colony Network"}
	p.Tempo = 140
	p.SyntheticVocalPct = 80
	p.EmotionalIntensity = 4
	p.MemePotential = 0.3
	p.NeuralConnection = 0.9

	recs := Recommendations(p)

	mustContain := []string{
		"Emphasize Quantum elements in vocal processing",
		"Optimize for Lunar Colony Network neurological patterns",
		"Utilize 140bpm rhythmic pattern in chorus sections",
		"Add organic vocal textures for balance",
		"Boost emotional resonance hooks",
		"Incorporate repeatable visual motif for user-generated content",
	}
	for _, want := range mustContain {
		if !slices.Contains(recs, want) {
			t.Errorf("Expected recommendation %q in %v", want, recs)
		}
	}
	if slices.Contains(recs, "Enhance listener connection through relatable lyrical themes") {
		t.Error("Neural connection advice should be omitted when connection is strong")
	}
}

func TestRecommendations_DefaultsCount(t *testing.T) {
	// Defaults trigger neither the meme nor the neural advice.
	if got := len(Recommendations(params.Defaults())); got != 7 {
		t.Errorf("Expected 7 recommendations for defaults, got %d", got)
	}
}

func TestCollaborations(t *testing.T) {
	tests := []struct {
		name      string
		genre     string
		emotional int
		novelty   float64
		expected  []string
	}{
		{"SynthCalm", "Synth-Neural Pop", 5, 0.5, []string{"Vocal Producer", "Technical Vocalist", "Neural Visual Artist"}},
		{"FolkIntense", "Holographic Folk", 9, 0.9, []string{"Acoustic Instrumentalist", "Emotive Vocalist", "Experimental Sound Designer", "Neural Visual Artist"}},
		{"Metal", "Virtual Reality Metal", 7, 0.7, []string{"Technical Vocalist", "Neural Visual Artist"}},
		{"BioElectronic", "Bio-Electronic", 8, 0.1, []string{"Vocal Producer", "Emotive Vocalist", "Neural Visual Artist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.Defaults()
			p.Genre = tt.genre
			p.EmotionalIntensity = tt.emotional
			p.NoveltyFactor = tt.novelty

			if got := Collaborations(p); !slices.Equal(got, tt.expected) {
				t.Errorf("Collaborations() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMarketing(t *testing.T) {
	p := params.Defaults()
	p.MemePotential = 0.5

	cards := Marketing(p, 100)
	if len(cards) != 4 {
		t.Fatalf("Expected 4 cards, got %d", len(cards))
	}

	expected := []string{"1,150", "80%", "41,000 µ-credits", "13%"}
	for i, want := range expected {
		if cards[i].Display != want {
			t.Errorf("%s display = %q, want %q", cards[i].Title, cards[i].Display, want)
		}
	}
}
