package render

import (
	"fmt"
	"strings"

	"stride/internal/analysis"
)

// SessionComparison renders the windowed comparison report.
func SessionComparison(r *analysis.SessionComparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🏃 Running Comparison (last %d sessions)\n\n", len(r.Sessions))

	b.WriteString("| Date | Name | Distance | Time | Pace | Avg HR |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, s := range r.Sessions {
		fmt.Fprintf(&b, "| %s | %s | %.2f km | %.0f min | %s | %s |\n",
			s.Date, s.Name, s.Metrics.DistanceKm, s.Metrics.TimeMin,
			optionalPace(s.Metrics.Pace), optionalHR(s.Metrics.AvgHR))
	}

	b.WriteString("\n### Trend: recent 3 vs previous 3\n\n")
	if len(r.Comparisons) == 0 {
		b.WriteString("Not enough measurable data to compare trends.\n")
	}
	for _, c := range r.Comparisons {
		fmt.Fprintf(&b, "- **%s:** %s vs %s (%s, %s)\n",
			c.Metric, formatMetricValue(c.Metric, c.RecentMean),
			formatMetricValue(c.Metric, c.OlderMean),
			signedPercent(c.Delta.PercentChange), labelText(c.Delta.Label))
	}

	b.WriteString("\n" + verdictText(r.Verdict, r.Improvements) + "\n")
	return b.String()
}

// PairComparison renders the head-to-head comparison of two runs.
func PairComparison(r *analysis.PairComparison) string {
	var b strings.Builder
	b.WriteString("## 🏃 Run Comparison\n\n")
	fmt.Fprintf(&b, "**%s** (%s) vs **%s** (%s)\n\n",
		r.First.Name, r.First.Date, r.Second.Name, r.Second.Date)

	fmt.Fprintf(&b, "| Metric | %s | %s | Change |\n", r.First.Date, r.Second.Date)
	b.WriteString("|---|---|---|---|\n")
	rowPair(&b, "Distance", optionalKm(r.First.Metrics.DistanceKm), optionalKm(r.Second.Metrics.DistanceKm), deltaFor(r, analysis.MetricDistance))
	fmt.Fprintf(&b, "| Time | %.0f min | %.0f min | - |\n", r.First.Metrics.TimeMin, r.Second.Metrics.TimeMin)
	rowPair(&b, "Pace", optionalPace(r.First.Metrics.Pace), optionalPace(r.Second.Metrics.Pace), deltaFor(r, analysis.MetricPace))
	rowPair(&b, "Speed", optionalSpeed(r.First.Metrics.Speed), optionalSpeed(r.Second.Metrics.Speed), deltaFor(r, analysis.MetricSpeed))
	rowPair(&b, "Avg HR", optionalHR(r.First.Metrics.AvgHR), optionalHR(r.Second.Metrics.AvgHR), deltaFor(r, analysis.MetricHeartRate))
	fmt.Fprintf(&b, "| Elevation | %.0f m | %.0f m | - |\n",
		r.First.Metrics.ElevationGain, r.Second.Metrics.ElevationGain)

	b.WriteString("\n### Analysis\n\n")
	for _, d := range r.Deltas {
		if d.Delta == nil {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s, %s\n",
			d.Metric, signedPercent(d.Delta.PercentChange), labelText(d.Delta.Label))
	}
	if r.DistanceGapKm > 2 {
		fmt.Fprintf(&b, "\n⚠️ These runs differ by %.1f km; pace and heart rate comparisons are less meaningful across distances.\n",
			r.DistanceGapKm)
	}

	b.WriteString("\n" + verdictText(r.Verdict, r.Improvements) + "\n")
	return b.String()
}

// TrainingPlan renders a training recommendation.
func TrainingPlan(p *analysis.TrainingPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🎯 Training Plan: %s\n\n", goalText(p.Goal))
	fmt.Fprintf(&b, "**Level:** %s (%.1f sessions/week over %d recent runs)\n\n",
		p.Level, p.Summary.WeeklyFrequency, p.Summary.Sessions)

	fmt.Fprintf(&b, "- **Average distance:** %.1f km (longest %.1f km)\n",
		p.Summary.AvgDistanceKm, p.Summary.MaxDistanceKm)
	if p.Summary.AvgPace != nil {
		fmt.Fprintf(&b, "- **Average pace:** %s\n", Pace(*p.Summary.AvgPace))
	}
	if p.Summary.AvgHR != nil {
		fmt.Fprintf(&b, "- **Average heart rate:** %.0f bpm\n", *p.Summary.AvgHR)
	}

	fmt.Fprintf(&b, "\n**Focus:** %s\n\n", p.Focus)

	b.WriteString("### Weekly Template\n\n")
	b.WriteString("| Day | Workout |\n|---|---|\n")
	for _, d := range p.Week {
		fmt.Fprintf(&b, "| %s | %s |\n", d.Day, d.Workout)
	}

	if len(p.Zones) > 0 {
		fmt.Fprintf(&b, "\n### Heart Rate Zones (est. max %.0f bpm)\n\n", p.EstMaxHR)
		b.WriteString("| Zone | Range |\n|---|---|\n")
		for _, z := range p.Zones {
			fmt.Fprintf(&b, "| %s | %.0f-%.0f bpm |\n", z.Name, z.Low, z.High)
		}
	}

	if len(p.Notes) > 0 {
		b.WriteString("\n### Notes\n\n")
		for _, n := range p.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}
	return b.String()
}

func rowPair(b *strings.Builder, label, first, second string, d *analysis.Delta) {
	change := "-"
	if d != nil {
		change = signedPercent(d.PercentChange)
	}
	fmt.Fprintf(b, "| %s | %s | %s | %s |\n", label, first, second, change)
}

func deltaFor(r *analysis.PairComparison, m analysis.Metric) *analysis.Delta {
	for _, d := range r.Deltas {
		if d.Metric == m {
			return d.Delta
		}
	}
	return nil
}

func formatMetricValue(m analysis.Metric, v float64) string {
	switch m {
	case analysis.MetricPace:
		return Pace(v)
	case analysis.MetricDistance:
		return fmt.Sprintf("%.2f km", v)
	case analysis.MetricHeartRate:
		return fmt.Sprintf("%.0f bpm", v)
	case analysis.MetricSpeed:
		return fmt.Sprintf("%.1f km/h", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func labelText(l analysis.Label) string {
	switch l {
	case analysis.LabelImprovement:
		return "improving ✅"
	case analysis.LabelDecline:
		return "declining 🔻"
	default:
		return "stable ➖"
	}
}

func verdictText(v analysis.Verdict, improvements int) string {
	switch v {
	case analysis.VerdictExcellent:
		return fmt.Sprintf("🎉 **Excellent progress!** %d metrics improved.", improvements)
	case analysis.VerdictGood:
		return "👍 **Good progress.** One metric improved; keep building."
	default:
		return "💪 **Stay consistent.** No big changes yet; steady training pays off."
	}
}

func goalText(g analysis.Goal) string {
	switch g {
	case analysis.GoalDistance:
		return "Increase Distance"
	case analysis.GoalPace:
		return "Improve Pace"
	case analysis.GoalEndurance:
		return "Build Endurance"
	default:
		return "Improve Performance"
	}
}

func optionalPace(v *float64) string {
	if v == nil {
		return "-"
	}
	return Pace(*v)
}

func optionalHR(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f bpm", *v)
}

func optionalSpeed(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f km/h", *v)
}

func optionalKm(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f km", v)
}
