package simulation

import (
	"errors"
	"math"
	"time"

	"sonicseer/internal/params"
)

// ErrEmptyForecast is returned when metrics are requested for a series without forecast points.
var ErrEmptyForecast = errors.New("series has no forecast entries")

const defaultViralityScore = 50

// Metrics summarises the forecast segment of a series.
type Metrics struct {
	PeakEngagement  int       `json:"peak_engagement"`
	PeakDay         time.Time `json:"peak_day"`
	TotalEngagement int       `json:"total_engagement"`
	ViralityScore   float64   `json:"virality_score"`
	TrendDuration   int       `json:"trend_duration"`
}

// PeakDayLabel renders the peak day the way metric cards show it.
func (m Metrics) PeakDayLabel() string {
	return m.PeakDay.Format("Jan 02")
}

// DeriveMetrics computes peak, total, virality and expected duration for the forecast segment.
func DeriveMetrics(series Series, p params.Vector) (Metrics, error) {
	forecast := series.Forecast()
	if len(forecast) == 0 {
		return Metrics{}, ErrEmptyForecast
	}
	historical := series.Historical()

	var m Metrics
	m.PeakEngagement = forecast[0].Engagement
	m.PeakDay = forecast[0].Date
	for _, pt := range forecast {
		if pt.Engagement > m.PeakEngagement {
			m.PeakEngagement = pt.Engagement
			m.PeakDay = pt.Date
		}
		m.TotalEngagement += pt.Engagement
	}

	m.ViralityScore = defaultViralityScore
	if len(historical) > 0 && historical[len(historical)-1].Engagement > 0 {
		last := float64(forecast[len(forecast)-1].Engagement)
		baseline := float64(historical[len(historical)-1].Engagement)
		avgGrowth := last/baseline - 1
		m.ViralityScore = clamp(avgGrowth*25*float64(p.EmotionalIntensity)*p.MemePotential*100, 0, 100)
	}

	duration := int(math.Round(10 * p.NeuralConnection * p.CulturalResonance))
	m.TrendDuration = min(30, max(3, duration))

	return m, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
