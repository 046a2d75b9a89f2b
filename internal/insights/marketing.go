package insights

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"sonicseer/internal/params"
)

// MarketingMetric is a single card in the marketing opportunities row.
type MarketingMetric struct {
	Title       string  `json:"title"`
	Value       float64 `json:"value"`
	Display     string  `json:"display"`
	Description string  `json:"description"`
}

// Marketing derives the four marketing cards from the parameters and the forecast's virality score.
func Marketing(p params.Vector, viralityScore float64) []MarketingMetric {
	resonance := int(p.NeuralConnection*1000 + float64(p.EmotionalIntensity)*50)
	synergy := int(65 + p.MemePotential*30)
	collab := int(1000 + viralityScore*400)
	conversion := int(5 + p.NeuralConnection*10)

	return []MarketingMetric{
		{
			Title:       "Cognitive Resonance Score",
			Value:       float64(resonance),
			Display:     humanize.Comma(int64(resonance)),
			Description: "Mind-share potential in target demographics",
		},
		{
			Title:       "Cross-Platform Synergy",
			Value:       float64(synergy),
			Display:     fmt.Sprintf("%d%%", synergy),
			Description: "Potential for multi-platform virality",
		},
		{
			Title:       "Creator Collaboration Value",
			Value:       float64(collab),
			Display:     humanize.Comma(int64(collab)) + " µ-credits",
			Description: "Estimated collaboration market value",
		},
		{
			Title:       "Neural Stream Conversion",
			Value:       float64(conversion),
			Display:     fmt.Sprintf("%d%%", conversion),
			Description: "Viral views to sustained listener conversion",
		},
	}
}
