package visuals

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"sonicseer/internal/distribution"
	"sonicseer/internal/insights"
	"sonicseer/internal/simulation"
)

// GenerateTrendChart creates a Mermaid xychart of the engagement trajectory.
// The second line holds the last observed value so forecast growth reads against it.
func GenerateTrendChart(genre string, series simulation.Series) string {
	if len(series) == 0 {
		return ""
	}

	baseline := 0
	if hist := series.Historical(); len(hist) > 0 {
		baseline = hist[len(hist)-1].Engagement
	}

	var labels []string
	var values []string
	var baselines []string
	maxVal := 0

	for _, pt := range series {
		label := pt.Date.Format("Jan 02")
		if pt.IsForecast {
			label += "*"
		}
		labels = append(labels, fmt.Sprintf("\"%s\"", label))
		values = append(values, fmt.Sprintf("%d", pt.Engagement))
		baselines = append(baselines, fmt.Sprintf("%d", baseline))
		if pt.Engagement > maxVal {
			maxVal = pt.Engagement
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Predicted Viral Trajectory for %s\"\n", genre))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Engagement\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.1))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(baselines, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GeneratePlatformChart creates a Mermaid bar chart of platform shares in percent.
func GeneratePlatformChart(dist distribution.Distribution) string {
	if len(dist) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0.0
	for _, s := range dist {
		labels = append(labels, fmt.Sprintf("\"%s\"", s.Label))
		values = append(values, fmt.Sprintf("%.1f", s.Value*100))
		maxVal = math.Max(maxVal, s.Value*100)
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Platform Distribution Prediction\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Virality Potential (%%)\" 0 --> %d\n", int(maxVal)+int(math.Max(1, maxVal*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateDemographicChart creates a Mermaid pie of age band shares.
func GenerateDemographicChart(dist distribution.Distribution) string {
	if len(dist) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie showData\n")
	sb.WriteString("    title Demographic Neural Resonance\n")
	for _, s := range dist {
		sb.WriteString(fmt.Sprintf("    \"%s\" : %.1f\n", s.Label, s.Value*100))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateProfileChart creates a Mermaid bar chart standing in for the sonic radar.
func GenerateProfileChart(axes []insights.Axis) string {
	if len(axes) == 0 {
		return ""
	}

	var labels []string
	var values []string
	for _, a := range axes {
		labels = append(labels, fmt.Sprintf("\"%s\"", a.Name))
		values = append(values, fmt.Sprintf("%.0f", a.Score))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Neural-Sonic Pattern Analysis\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Score\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateMetricsTable renders the forecast metric cards as a Markdown table.
func GenerateMetricsTable(m simulation.Metrics) string {
	var sb strings.Builder
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Virality Score | %.1f/100 |\n", m.ViralityScore))
	sb.WriteString(fmt.Sprintf("| Peak Engagement | %s |\n", humanize.Comma(int64(m.PeakEngagement))))
	sb.WriteString(fmt.Sprintf("| Peak Day | %s |\n", m.PeakDayLabel()))
	sb.WriteString(fmt.Sprintf("| Total Forecast Engagement | %s |\n", humanize.Comma(int64(m.TotalEngagement))))
	sb.WriteString(fmt.Sprintf("| Trend Duration | %d days |\n", m.TrendDuration))
	return sb.String()
}

// GenerateEnsembleChart plots the P10, P50 and P90 engagement bands of an ensemble forecast.
func GenerateEnsembleChart(genre string, ens *simulation.Ensemble) string {
	if ens == nil || len(ens.Bands) == 0 {
		return ""
	}

	var labels, p10, p50, p90 []string
	maxVal := 0
	for _, b := range ens.Bands {
		labels = append(labels, fmt.Sprintf("\"%s\"", b.Date.Format("Jan 02")))
		p10 = append(p10, fmt.Sprintf("%d", b.P10))
		p50 = append(p50, fmt.Sprintf("%d", b.P50))
		p90 = append(p90, fmt.Sprintf("%d", b.P90))
		maxVal = max(maxVal, b.P90)
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Forecast Range for %s (%d trials, P10/P50/P90)\"\n", genre, ens.Trials))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Engagement\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.1))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(p10, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(p50, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(p90, ", ")))
	sb.WriteString("```")
	return sb.String()
}
