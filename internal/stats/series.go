package stats

import (
	"slices"
)

const (
	shortWindow = 3
	longWindow  = 7

	// defaultStability is reported for series too short to measure volatility.
	defaultStability = 0.5
)

// SeriesSummary describes the shape of an engagement series.
type SeriesSummary struct {
	Mean          float64   `json:"mean"`
	StdDev        float64   `json:"std_dev"`
	Median        float64   `json:"median"`
	Max           int       `json:"max"`
	OverallGrowth float64   `json:"overall_growth"`
	Momentum      float64   `json:"momentum"`
	Stability     float64   `json:"stability"`
	Growth        []float64 `json:"growth"`
	Rolling3      []float64 `json:"rolling_avg_3d"`
	Rolling7      []float64 `json:"rolling_avg_7d"`
}

// Summarize derives day-over-day growth, rolling averages and stability for a series.
func Summarize(values []int) SeriesSummary {
	if len(values) == 0 {
		return SeriesSummary{Stability: defaultStability}
	}
	floats := toFloats(values)

	s := SeriesSummary{
		Mean:     Mean(floats),
		StdDev:   StdDev(floats),
		Median:   CalculateMedianDiscrete(values),
		Max:      slices.Max(values),
		Growth:   PercentChange(floats),
		Rolling3: RollingMean(floats, shortWindow),
		Rolling7: RollingMean(floats, longWindow),
		Momentum: Momentum(floats, longWindow),
	}
	if floats[0] > 0 {
		s.OverallGrowth = floats[len(floats)-1]/floats[0] - 1
	}
	s.Stability = Stability(floats, longWindow)
	return s
}

// PercentChange returns (v[i]-v[i-1])/v[i-1]; the first entry and any step from zero are 0.
func PercentChange(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			out[i] = (values[i] - values[i-1]) / values[i-1]
		}
	}
	return out
}

// RollingMean averages each value with up to window-1 predecessors.
func RollingMean(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	for i := range values {
		start := max(0, i-window+1)
		out[i] = Mean(values[start : i+1])
	}
	return out
}

// Momentum compares the last value with the one window-1 steps earlier.
func Momentum(values []float64, window int) float64 {
	if window < 1 || len(values) < window {
		return 0
	}
	ref := values[len(values)-window]
	if ref == 0 {
		return 0
	}
	return values[len(values)-1]/ref - 1
}

// Stability is 1 minus the mean rolling standard deviation relative to the mean, floored at 0.
func Stability(values []float64, window int) float64 {
	if window < 2 || len(values) < window {
		return defaultStability
	}
	mean := Mean(values)
	if mean == 0 {
		return defaultStability
	}

	var stds []float64
	for i := window; i <= len(values); i++ {
		stds = append(stds, StdDev(values[i-window:i]))
	}
	volatility := Mean(stds) / mean
	return 1 - min(volatility, 1)
}
