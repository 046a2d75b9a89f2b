package mcp

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"sonicseer/internal/params"
	"sonicseer/internal/simulation"
)

// TrendInput carries the slider values of a forecast. Omitted fields take the dashboard defaults.
type TrendInput struct {
	Genre              string   `json:"genre,omitempty" jsonschema:"Base genre of the track"`
	Regions            []string `json:"regions,omitempty" jsonschema:"Target markets; the longest name is treated as the primary market"`
	Tempo              *int     `json:"tempo,omitempty"`
	EmotionalIntensity *int     `json:"emotional_intensity,omitempty"`
	NeuralConnection   *float64 `json:"neural_connection,omitempty"`
	SyntheticVocalPct  *int     `json:"synthetic_vocal_pct,omitempty"`
	MemePotential      *float64 `json:"meme_potential,omitempty"`
	AlgorithmicBoost   *int     `json:"algorithmic_boost,omitempty"`
	NoveltyFactor      *float64 `json:"novelty_factor,omitempty"`
	CulturalResonance  *float64 `json:"cultural_resonance,omitempty"`
	CelebrityInfluence *float64 `json:"celebrity_influence,omitempty"`
	ForecastDays       *int     `json:"forecast_days,omitempty"`
	DaysBack           *int     `json:"days_back,omitempty"`
	Seed               *int64   `json:"seed,omitempty" jsonschema:"Fixes the random noise so repeated calls return the same series"`
	IncludeCharts      bool     `json:"include_charts,omitempty" jsonschema:"Attach Mermaid charts to the result"`
	EnsembleTrials     int      `json:"ensemble_trials,omitempty" jsonschema:"Repeat the noisy forecast this many times and report P10/P50/P90 bands"`
}

// ListParametersInput takes no arguments.
type ListParametersInput struct{}

func (s *Server) registerTools() {
	trendSchema := mustSchema(trendInputSchema())

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "forecast_trend",
		Description: "Run the full trend forecast for a parameter set: simulated engagement series, forecast metrics (peak, total, virality score, trend duration), platform and demographic distributions, sonic profile, artist recommendations and marketing projections. Guidance: pass a seed when results must be reproducible.",
		InputSchema: trendSchema,
	}, s.handleForecastTrend)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "simulate_trend",
		Description: "Simulate only the engagement series (history plus forecast) and its derived metrics and series statistics. Set ensemble_trials to get P10/P50/P90 forecast bands. Use 'forecast_trend' for audience and marketing insights.",
		InputSchema: trendSchema,
	}, s.handleSimulateTrend)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "audience_distribution",
		Description: "Predict the platform and demographic audience split for a parameter set. Deterministic: seed and forecast horizon have no effect.",
		InputSchema: trendSchema,
	}, s.handleAudienceDistribution)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_parameters",
		Description: "List the selectable genres and regions, every numeric parameter with its bounds, and the default parameter set. Call this first to discover valid inputs.",
	}, s.handleListParameters)
}

// trendInputSchema derives the schema from TrendInput and annotates it with the catalog bounds.
func trendInputSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[TrendInput](nil)
	if err != nil {
		return nil, fmt.Errorf("infer trend input schema: %w", err)
	}

	if prop, ok := schema.Properties["genre"]; ok {
		prop.Enum = toAnySlice(params.Genres())
	}
	if prop, ok := schema.Properties["regions"]; ok && prop.Items != nil {
		prop.Items.Enum = toAnySlice(params.Regions())
	}

	if prop, ok := schema.Properties["ensemble_trials"]; ok {
		lo, hi := 0.0, float64(simulation.MaxEnsembleTrials)
		prop.Minimum = &lo
		prop.Maximum = &hi
	}

	for _, r := range params.Ranges() {
		prop, ok := schema.Properties[r.Field]
		if !ok {
			continue
		}
		lo, hi := r.Min, r.Max
		prop.Minimum = &lo
		prop.Maximum = &hi
		if prop.Description == "" {
			prop.Description = r.Label
		}
	}
	return schema, nil
}

// toVector overlays the supplied fields on the defaults.
func (s *Server) toVector(in TrendInput) params.Vector {
	v := params.Defaults()
	if s.daysBack > 0 {
		v.DaysBack = s.daysBack
	}

	if in.Genre != "" {
		v.Genre = in.Genre
	}
	if in.Regions != nil {
		v.Regions = in.Regions
	}
	setIfPresent(&v.Tempo, in.Tempo)
	setIfPresent(&v.EmotionalIntensity, in.EmotionalIntensity)
	setIfPresent(&v.NeuralConnection, in.NeuralConnection)
	setIfPresent(&v.SyntheticVocalPct, in.SyntheticVocalPct)
	setIfPresent(&v.MemePotential, in.MemePotential)
	setIfPresent(&v.AlgorithmicBoost, in.AlgorithmicBoost)
	setIfPresent(&v.NoveltyFactor, in.NoveltyFactor)
	setIfPresent(&v.CulturalResonance, in.CulturalResonance)
	setIfPresent(&v.CelebrityInfluence, in.CelebrityInfluence)
	setIfPresent(&v.ForecastDays, in.ForecastDays)
	setIfPresent(&v.DaysBack, in.DaysBack)
	return v
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func mustSchema(schema *jsonschema.Schema, err error) *jsonschema.Schema {
	if err != nil {
		panic(err)
	}
	return schema
}
