package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"sonicseer/internal/distribution"
	"sonicseer/internal/forecast"
	"sonicseer/internal/params"
	"sonicseer/internal/visuals"
)

func (s *Server) handleForecastTrend(ctx context.Context, _ *sdk.CallToolRequest, in TrendInput) (*sdk.CallToolResult, any, error) {
	report, err := s.runForecast(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	res := map[string]any{
		"report": report,
		"_guidance": []string{
			"Entries with is_forecast=true are projections; the rest are simulated history ending yesterday.",
			"virality_score compares the final forecast value with the last historical value and is clamped to 0-100.",
			"Platform and demographic shares each sum to 1.",
		},
	}
	return textResult(res), nil, nil
}

func (s *Server) handleSimulateTrend(ctx context.Context, _ *sdk.CallToolRequest, in TrendInput) (*sdk.CallToolResult, any, error) {
	report, err := s.runForecast(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	res := map[string]any{
		"seed":           report.Seed,
		"series":         report.Series,
		"metrics":        report.Metrics,
		"peak_day_label": report.PeakDayLabel,
		"summary":        report.Summary,
	}
	if report.Ensemble != nil {
		res["ensemble"] = report.Ensemble
	}
	if report.Charts != nil {
		res["visual_trend_chart"] = report.Charts.Trend
		res["visual_metrics_table"] = report.Charts.Metrics
		if report.Charts.Ensemble != "" {
			res["visual_ensemble_chart"] = report.Charts.Ensemble
		}
	}
	return textResult(res), nil, nil
}

func (s *Server) handleAudienceDistribution(_ context.Context, _ *sdk.CallToolRequest, in TrendInput) (*sdk.CallToolResult, any, error) {
	p := s.toVector(in)
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	platforms, err := distribution.Platform(p)
	if err != nil {
		return nil, nil, fmt.Errorf("platform distribution: %w", err)
	}
	demographics, err := distribution.Demographic(p)
	if err != nil {
		return nil, nil, fmt.Errorf("demographic distribution: %w", err)
	}

	res := map[string]any{
		"platforms":    platforms,
		"demographics": demographics,
	}
	if s.enableMermaidCharts || in.IncludeCharts {
		res["visual_platform_chart"] = visuals.GeneratePlatformChart(platforms)
		res["visual_demographic_chart"] = visuals.GenerateDemographicChart(demographics)
	}

	s.logger.Debug().Str("genre", p.Genre).Msg("Audience distribution computed")
	return textResult(res), nil, nil
}

func (s *Server) handleListParameters(_ context.Context, _ *sdk.CallToolRequest, _ ListParametersInput) (*sdk.CallToolResult, any, error) {
	defaults := params.Defaults()
	if s.daysBack > 0 {
		defaults.DaysBack = s.daysBack
	}

	res := map[string]any{
		"genres":   params.Genres(),
		"regions":  params.Regions(),
		"ranges":   params.Ranges(),
		"defaults": defaults,
	}
	return textResult(res), nil, nil
}

func (s *Server) runForecast(ctx context.Context, in TrendInput) (*forecast.Report, error) {
	req := forecast.Request{
		Parameters:     s.toVector(in),
		Seed:           in.Seed,
		IncludeCharts:  s.enableMermaidCharts || in.IncludeCharts,
		EnsembleTrials: in.EnsembleTrials,
	}

	report, err := s.forecaster.Run(ctx, req)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Forecast tool call failed")
		return nil, err
	}
	return report, nil
}

func textResult(data any) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: formatResult(data)}},
	}
}

func formatResult(data any) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
