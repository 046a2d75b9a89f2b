// Package forecast runs the full simulate, derive and distribute pipeline for one request.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sonicseer/internal/distribution"
	"sonicseer/internal/insights"
	"sonicseer/internal/metrics"
	"sonicseer/internal/params"
	"sonicseer/internal/simulation"
	"sonicseer/internal/stats"
	"sonicseer/internal/visuals"
)

// Recorder receives the outcome of every pipeline run.
type Recorder interface {
	ObserveForecast(genre, status string, took time.Duration, viralityScore float64)
}

// Options configures a Service.
type Options struct {
	CelebrityBoost bool
	// Seed applies to requests without their own seed. Zero means time-based.
	Seed   int64
	Charts bool
	Now    func() time.Time
}

// Request is one user-triggered computation.
type Request struct {
	Parameters    params.Vector `json:"parameters"`
	Seed          *int64        `json:"seed,omitempty"`
	IncludeCharts bool          `json:"include_charts,omitempty"`

	// EnsembleTrials adds percentile bands from that many extra noisy simulations. Zero disables.
	EnsembleTrials int `json:"ensemble_trials,omitempty"`
}

// Report bundles every output of a pipeline run.
type Report struct {
	ID              string                     `json:"id"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	Seed            int64                      `json:"seed"`
	Parameters      params.Vector              `json:"parameters"`
	Series          simulation.Series          `json:"series"`
	Metrics         simulation.Metrics         `json:"metrics"`
	PeakDayLabel    string                     `json:"peak_day_label"`
	Platforms       distribution.Distribution  `json:"platforms"`
	Demographics    distribution.Distribution  `json:"demographics"`
	Profile         []insights.Axis            `json:"profile"`
	Recommendations []string                   `json:"recommendations"`
	Collaborations  []string                   `json:"collaborations"`
	Marketing       []insights.MarketingMetric `json:"marketing"`
	Summary         stats.SeriesSummary        `json:"summary"`
	Ensemble        *simulation.Ensemble       `json:"ensemble,omitempty"`
	Charts          *Charts                    `json:"charts,omitempty"`
}

// Charts holds Mermaid renderings of the report.
type Charts struct {
	Trend        string `json:"trend"`
	Platforms    string `json:"platforms"`
	Demographics string `json:"demographics"`
	Profile      string `json:"profile"`
	Metrics      string `json:"metrics"`
	Ensemble     string `json:"ensemble,omitempty"`
}

// Service is stateless apart from its options; each Run builds its own engine.
type Service struct {
	opts     Options
	recorder Recorder
}

func NewService(opts Options, recorder Recorder) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{opts: opts, recorder: recorder}
}

// genreLabel keeps the metrics label set bounded to the catalog.
func genreLabel(genre string) string {
	if slices.Contains(params.Genres(), genre) {
		return genre
	}
	return metrics.UnknownGenre
}

// Run validates the request and produces a report.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	p := req.Parameters

	report, err := s.run(ctx, req)

	status := metrics.StatusSuccess
	virality := 0.0
	switch {
	case err == nil:
		virality = report.Metrics.ViralityScore
	case errors.Is(err, params.ErrInvalidParameter):
		status = metrics.StatusInvalid
	default:
		status = metrics.StatusError
	}
	if s.recorder != nil {
		s.recorder.ObserveForecast(genreLabel(p.Genre), status, time.Since(start), virality)
	}

	if err != nil {
		log.Debug().Err(err).Str("genre", p.Genre).Str("status", status).Msg("Forecast rejected")
		return nil, err
	}

	log.Debug().
		Str("id", report.ID).
		Str("genre", p.Genre).
		Int64("seed", report.Seed).
		Float64("virality", report.Metrics.ViralityScore).
		Dur("took", time.Since(start)).
		Msg("Forecast generated")
	return report, nil
}

func (s *Service) run(ctx context.Context, req Request) (*Report, error) {
	p := req.Parameters
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.opts.Now()
	seed := s.resolveSeed(req, now)

	// 1. Simulate
	engine := simulation.NewEngine(simulation.Options{CelebrityBoost: s.opts.CelebrityBoost})
	engine.SetSeed(seed)
	engine.SetClock(func() time.Time { return now })

	series, err := engine.Simulate(p)
	if err != nil {
		return nil, fmt.Errorf("simulate trend: %w", err)
	}

	// 2. Derive metrics
	m, err := simulation.DeriveMetrics(series, p)
	if err != nil {
		return nil, fmt.Errorf("derive metrics: %w", err)
	}

	var ensemble *simulation.Ensemble
	if req.EnsembleTrials != 0 {
		if ensemble, err = engine.RunEnsemble(p, req.EnsembleTrials); err != nil {
			return nil, fmt.Errorf("ensemble: %w", err)
		}
	}

	// 3. Distributions
	platforms, err := distribution.Platform(p)
	if err != nil {
		return nil, fmt.Errorf("platform distribution: %w", err)
	}
	demographics, err := distribution.Demographic(p)
	if err != nil {
		return nil, fmt.Errorf("demographic distribution: %w", err)
	}

	// 4. Insights
	report := &Report{
		ID:              uuid.NewString(),
		GeneratedAt:     now,
		Seed:            seed,
		Parameters:      p,
		Series:          series,
		Metrics:         m,
		PeakDayLabel:    m.PeakDayLabel(),
		Platforms:       platforms,
		Demographics:    demographics,
		Profile:         insights.Profile(p),
		Recommendations: insights.Recommendations(p),
		Collaborations:  insights.Collaborations(p),
		Marketing:       insights.Marketing(p, m.ViralityScore),
		Summary:         stats.Summarize(series.Values()),
		Ensemble:        ensemble,
	}

	// 5. Charts
	if s.opts.Charts || req.IncludeCharts {
		report.Charts = &Charts{
			Trend:        visuals.GenerateTrendChart(p.Genre, series),
			Platforms:    visuals.GeneratePlatformChart(platforms),
			Demographics: visuals.GenerateDemographicChart(demographics),
			Profile:      visuals.GenerateProfileChart(report.Profile),
			Metrics:      visuals.GenerateMetricsTable(m),
		}
		if ensemble != nil {
			report.Charts.Ensemble = visuals.GenerateEnsembleChart(p.Genre, ensemble)
		}
	}

	return report, nil
}

func (s *Service) resolveSeed(req Request, now time.Time) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	if s.opts.Seed != 0 {
		return s.opts.Seed
	}
	return now.UnixNano()
}
