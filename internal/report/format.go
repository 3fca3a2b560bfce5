package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rehearse-dev/rehearse/internal/ui"
)

// ChartTitle is the heading of the per-question coverage chart.
const ChartTitle = "Keyword Coverage per Question"

// ChartPoints converts the report series for ui.BarChart.
func ChartPoints(r SessionReport) []ui.BarPoint {
	points := make([]ui.BarPoint, len(r.Series))
	for i, p := range r.Series {
		points[i] = ui.BarPoint{Label: p.Label, Value: p.Covered, Max: p.Total}
	}
	return points
}

// FormatReport produces a terminal-friendly, human-readable summary string.
func FormatReport(r SessionReport) string {
	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString("  Practice Session Report\n")
	b.WriteString("========================================\n")
	b.WriteString("\n")

	if r.Complete() {
		fmt.Fprintf(&b, "Session completed! Your score: %d\n", r.CoveredKeywords)
	} else {
		fmt.Fprintf(&b, "Session ended early (%d of %d answered). Your score: %d\n", r.Answered, r.Questions, r.CoveredKeywords)
	}
	fmt.Fprintf(&b, "Total Keywords Covered: %d / %d (%.0f%%)\n", r.CoveredKeywords, r.TotalKeywords, r.CoverageRatio*100)
	fmt.Fprintf(&b, "Tier:        %s\n", r.Tier)
	fmt.Fprintf(&b, "             %s\n", r.Tier.Message())
	if r.TimedOut > 0 {
		fmt.Fprintf(&b, "Timed out:   %d question(s)\n", r.TimedOut)
	}
	if r.Duration > 0 {
		fmt.Fprintf(&b, "Duration:    %s\n", formatDuration(r.Duration))
	}
	b.WriteString("\n")

	for i, row := range r.Rows {
		fmt.Fprintf(&b, "Q%d. %s\n", i+1, row.Question)
		answer := row.YourAnswer
		if strings.TrimSpace(answer) == "" {
			answer = "(no answer)"
		}
		fmt.Fprintf(&b, "  Your answer:   %s\n", answer)
		fmt.Fprintf(&b, "  Feedback:      %s\n", row.Feedback)
		fmt.Fprintf(&b, "  Sample answer: %s\n", row.SampleAnswer)
		b.WriteString("\n")
	}

	if chart := ui.BarChart(ChartTitle, ChartPoints(r), 20); chart != "" {
		b.WriteString(chart)
		b.WriteString("\n")
	}

	b.WriteString("========================================\n")

	return b.String()
}

// formatDuration produces a human-readable duration string such as "5m 32s"
// or "1h 12m 5s". Sub-second durations are shown as "< 1s".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
