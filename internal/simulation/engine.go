package simulation

import (
	"math"
	"math/rand"
	"time"

	"sonicseer/internal/params"
)

// Options toggles optional behaviour of the trend simulation.
type Options struct {
	// CelebrityBoost multiplies forecast days 4 through 9 by (1 + celebrity_influence)
	// when celebrity_influence is above 0.7.
	CelebrityBoost bool
}

// Engine generates synthetic engagement trends.
type Engine struct {
	opts Options
	rng  *rand.Rand
	now  func() time.Time
}

func NewEngine(opts Options) *Engine {
	return &Engine{
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// SetSeed makes subsequent simulations reproducible.
func (e *Engine) SetSeed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetClock replaces the reference time used to date the series.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Simulate produces days_back historical points ending yesterday followed by
// forecast_days+1 projected points starting today.
func (e *Engine) Simulate(p params.Vector) (Series, error) {
	if p.DaysBack < 1 {
		return nil, &params.InvalidParameterError{Field: "days_back", Value: p.DaysBack, Reason: "must be at least 1"}
	}
	if p.ForecastDays < 0 {
		return nil, &params.InvalidParameterError{Field: "forecast_days", Value: p.ForecastDays, Reason: "must not be negative"}
	}

	now := e.now()
	series := make(Series, 0, p.DaysBack+p.ForecastDays+1)

	// 1. History: linear drift with proportional noise
	baseLevel := 1000 + p.Tempo*10
	growth := 200 + p.EmotionalIntensity*30

	current := baseLevel
	for x := p.DaysBack; x > 0; x-- {
		current = current + growth + e.noise(float64(current), 0.1)
		series = append(series, Point{
			Date:       now.AddDate(0, 0, -x),
			Engagement: max(0, current),
		})
	}

	// 2. Forecast: power-law growth on top of the last observed value
	baseProjection := float64(series[len(series)-1].Engagement)
	futureGrowth := (float64(p.Tempo) / 100) *
		(float64(p.EmotionalIntensity) / 5) *
		p.NeuralConnection *
		(p.NoveltyFactor * 2) *
		(p.MemePotential * 3)
	algoInfluence := float64(p.AlgorithmicBoost) / 5
	exponent := 1.2 + algoInfluence*0.2

	for i := 0; i <= p.ForecastDays; i++ {
		dayValue := baseProjection + math.Pow(float64(i), exponent)*futureGrowth*200

		if e.opts.CelebrityBoost && i > 3 && i < 10 && p.CelebrityInfluence > 0.7 {
			dayValue *= 1 + p.CelebrityInfluence
		}

		dayValue += float64(e.noise(dayValue, 0.05))
		series = append(series, Point{
			Date:       now.AddDate(0, 0, i),
			Engagement: max(0, int(dayValue)),
			IsForecast: true,
		})
	}

	return series, nil
}

// noise draws an integer uniformly from [-int(v*ratio), +int(v*ratio)].
func (e *Engine) noise(v, ratio float64) int {
	bound := int(math.Abs(v * ratio))
	if bound == 0 {
		return 0
	}
	return e.rng.Intn(2*bound+1) - bound
}
