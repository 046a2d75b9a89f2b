package simulation

import (
	"sort"
	"time"

	"sonicseer/internal/params"
)

// MaxEnsembleTrials caps the number of repeated simulations per ensemble.
const MaxEnsembleTrials = 1000

// Percentiles summarises the spread of a value across ensemble trials.
type Percentiles struct {
	P10 int `json:"p10"`
	P50 int `json:"p50"`
	P90 int `json:"p90"`
}

// Band is the engagement spread for one forecast day.
type Band struct {
	Date time.Time `json:"date"`
	Percentiles
}

// Ensemble holds the spread of repeated noisy forecasts for the same parameters.
type Ensemble struct {
	Trials   int              `json:"trials"`
	Bands    []Band           `json:"bands"`
	Peak     Percentiles      `json:"peak_engagement"`
	Total    Percentiles      `json:"total_engagement"`
	Virality ScorePercentiles `json:"virality_score"`
}

// ScorePercentiles is Percentiles for fractional scores.
type ScorePercentiles struct {
	P10 float64 `json:"p10"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
}

// RunEnsemble repeats Simulate trials times with the engine's random source and
// reports per-day and per-metric percentiles of the forecast segment.
func (e *Engine) RunEnsemble(p params.Vector, trials int) (*Ensemble, error) {
	if trials < 1 || trials > MaxEnsembleTrials {
		return nil, &params.InvalidParameterError{Field: "ensemble_trials", Value: trials, Reason: "must be within [1, 1000]"}
	}

	// Pin the clock so every trial shares the same dates
	now := e.now()
	clock := e.now
	e.now = func() time.Time { return now }
	defer func() { e.now = clock }()

	var dates []time.Time
	var daily [][]int
	peaks := make([]int, trials)
	totals := make([]int, trials)
	virality := make([]float64, trials)

	for t := 0; t < trials; t++ {
		series, err := e.Simulate(p)
		if err != nil {
			return nil, err
		}
		m, err := DeriveMetrics(series, p)
		if err != nil {
			return nil, err
		}

		forecast := series.Forecast()
		if daily == nil {
			daily = make([][]int, len(forecast))
			dates = make([]time.Time, len(forecast))
			for i, pt := range forecast {
				dates[i] = pt.Date
				daily[i] = make([]int, trials)
			}
		}
		for i, pt := range forecast {
			daily[i][t] = pt.Engagement
		}

		peaks[t] = m.PeakEngagement
		totals[t] = m.TotalEngagement
		virality[t] = m.ViralityScore
	}

	ens := &Ensemble{
		Trials: trials,
		Bands:  make([]Band, len(daily)),
		Peak:   intPercentiles(peaks),
		Total:  intPercentiles(totals),
	}
	for i, values := range daily {
		ens.Bands[i] = Band{Date: dates[i], Percentiles: intPercentiles(values)}
	}

	sort.Float64s(virality)
	ens.Virality = ScorePercentiles{
		P10: virality[percentileIndex(trials, 0.10)],
		P50: virality[percentileIndex(trials, 0.50)],
		P90: virality[percentileIndex(trials, 0.90)],
	}

	return ens, nil
}

func intPercentiles(values []int) Percentiles {
	sort.Ints(values)
	n := len(values)
	return Percentiles{
		P10: values[percentileIndex(n, 0.10)],
		P50: values[percentileIndex(n, 0.50)],
		P90: values[percentileIndex(n, 0.90)],
	}
}

func percentileIndex(n int, q float64) int {
	return min(n-1, int(float64(n)*q))
}
