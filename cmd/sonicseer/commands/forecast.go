package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sonicseer/internal/forecast"
	"sonicseer/internal/params"
)

var (
	forecastGenre   string
	forecastRegions []string
	forecastSeed    int64
	forecastFormat  string
	forecastCharts  bool
	forecastTrials  int

	// sliderFlags maps each numeric flag to the parameter field it sets.
	sliderFlags = map[string]*float64{}
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Run a single forecast from flags and print the report",
	Example: `  sonicseer forecast --genre "Quantum Trap" --region "Asian Collective" --meme-potential 0.9 --seed 7
  sonicseer forecast --format markdown --forecast-days 21`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if forecastFormat != "json" && forecastFormat != "markdown" {
			return fmt.Errorf("unsupported format %q (want json or markdown)", forecastFormat)
		}

		req, err := buildRequest(cmd)
		if err != nil {
			return err
		}

		report, err := newForecaster(nil).Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		if forecastFormat == "markdown" {
			return writeMarkdown(cmd.OutOrStdout(), report)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func buildRequest(cmd *cobra.Command) (forecast.Request, error) {
	v := params.Defaults()
	v.DaysBack = cfg.DaysBack

	if cmd.Flags().Changed("genre") {
		v.Genre = forecastGenre
	}
	if cmd.Flags().Changed("region") {
		v.Regions = forecastRegions
	}
	for _, r := range params.Ranges() {
		name := flagName(r.Field)
		if !cmd.Flags().Changed(name) {
			continue
		}
		if err := v.Set(r.Field, *sliderFlags[name]); err != nil {
			return forecast.Request{}, err
		}
	}

	req := forecast.Request{
		Parameters:     v,
		IncludeCharts:  forecastCharts || forecastFormat == "markdown",
		EnsembleTrials: forecastTrials,
	}
	if cmd.Flags().Changed("seed") {
		seed := forecastSeed
		req.Seed = &seed
	}
	return req, nil
}

func writeMarkdown(w io.Writer, r *forecast.Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s forecast for %s\n\n", r.Parameters.Genre, strings.Join(r.Parameters.Regions, ", "))
	fmt.Fprintf(&sb, "_Report %s, seed %d, generated %s_\n\n", r.ID, r.Seed, r.GeneratedAt.Format("2006-01-02 15:04"))

	if r.Charts != nil {
		sb.WriteString("## Forecast Metrics\n\n")
		sb.WriteString(r.Charts.Metrics)
		sb.WriteString("\n")
		for _, chart := range []string{r.Charts.Trend, r.Charts.Ensemble, r.Charts.Platforms, r.Charts.Demographics, r.Charts.Profile} {
			if chart == "" {
				continue
			}
			sb.WriteString(chart)
			sb.WriteString("\n\n")
		}
	}

	sb.WriteString("## Artist Recommendations\n\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}

	sb.WriteString("\n## Collaboration Opportunities\n\n")
	for _, c := range r.Collaborations {
		fmt.Fprintf(&sb, "- %s\n", c)
	}

	sb.WriteString("\n## Marketing Projections\n\n")
	for _, m := range r.Marketing {
		fmt.Fprintf(&sb, "- **%s**: %s (%s)\n", m.Title, m.Display, m.Description)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func init() {
	defaults := params.Defaults()

	f := forecastCmd.Flags()
	f.StringVar(&forecastGenre, "genre", defaults.Genre, "base genre ("+strings.Join(params.Genres(), ", ")+")")
	f.StringSliceVar(&forecastRegions, "region", defaults.Regions, "target market, repeatable")
	f.Int64Var(&forecastSeed, "seed", 0, "fix the simulation noise (default from SIMULATION_SEED, else time-based)")
	f.StringVar(&forecastFormat, "format", "json", "output format: json or markdown")
	f.BoolVar(&forecastCharts, "charts", false, "include Mermaid charts in JSON output")
	f.IntVar(&forecastTrials, "ensemble", 0, "add P10/P50/P90 bands from this many extra simulations")

	for _, r := range params.Ranges() {
		name := flagName(r.Field)
		sliderFlags[name] = f.Float64(name, r.Value(defaults), fmt.Sprintf("%s [%g-%g]", r.Label, r.Min, r.Max))
	}

	rootCmd.AddCommand(forecastCmd)
}
