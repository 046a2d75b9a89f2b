package insights

import (
	"fmt"
	"strings"

	"sonicseer/internal/params"
)

// Recommendations lists creative advice for the artist, most general first.
func Recommendations(p params.Vector) []string {
	genreTerm := p.Genre
	if fields := strings.Fields(p.Genre); len(fields) > 0 {
		genreTerm = fields[0]
	}
	region := p.PrimaryRegion()
	if region == "" {
		region = "Global"
	}

	recs := []string{
		fmt.Sprintf("Emphasize %s elements in vocal processing", genreTerm),
		fmt.Sprintf("Optimize for %s neurological patterns", region),
		"Incorporate neural-hook at 0:45 timestamp",
		fmt.Sprintf("Utilize %dbpm rhythmic pattern in chorus sections", p.Tempo),
		"Structure for 15-second viral loop compatibility",
	}

	if p.SyntheticVocalPct < 50 {
		recs = append(recs, "Increase synthetic vocal elements")
	} else {
		recs = append(recs, "Add organic vocal textures for balance")
	}

	if p.EmotionalIntensity < 7 {
		recs = append(recs, "Boost emotional resonance hooks")
	} else {
		recs = append(recs, "Balance emotional intensity with novelty factors")
	}

	if p.MemePotential < 0.6 {
		recs = append(recs, "Incorporate repeatable visual motif for user-generated content")
	}
	if p.NeuralConnection < 0.7 {
		recs = append(recs, "Enhance listener connection through relatable lyrical themes")
	}

	return recs
}

// Collaborations suggests collaborator roles that suit the genre and parameters.
func Collaborations(p params.Vector) []string {
	var roles []string

	if strings.Contains(p.Genre, "Synth") || strings.Contains(p.Genre, "Electronic") {
		roles = append(roles, "Vocal Producer")
	}
	if strings.Contains(p.Genre, "Folk") || strings.Contains(p.Genre, "Ambient") {
		roles = append(roles, "Acoustic Instrumentalist")
	}

	if p.EmotionalIntensity > 7 {
		roles = append(roles, "Emotive Vocalist")
	} else {
		roles = append(roles, "Technical Vocalist")
	}

	if p.NoveltyFactor > 0.7 {
		roles = append(roles, "Experimental Sound Designer")
	}

	// Visual content is always needed
	return append(roles, "Neural Visual Artist")
}
