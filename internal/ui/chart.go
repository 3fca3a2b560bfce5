package ui

import (
	"fmt"
	"strings"
)

// BarPoint is one bar of a coverage chart.
type BarPoint struct {
	Label string
	Value int
	Max   int
}

// BarChart renders "Keyword Coverage per Question" as horizontal text bars,
// one line per point. Bars are scaled against the largest Max so questions
// with more keywords draw longer tracks.
func BarChart(title string, points []BarPoint, width int) string {
	if len(points) == 0 {
		return ""
	}
	scale := 0
	labelWidth := 0
	for _, p := range points {
		if p.Max > scale {
			scale = p.Max
		}
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
	}
	if width <= 0 {
		width = 20
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n")
	}
	for _, p := range points {
		filled, track := 0, 0
		if scale > 0 {
			filled = p.Value * width / scale
			track = p.Max * width / scale
		}
		if filled > track {
			filled = track
		}
		fmt.Fprintf(&b, "%-*s %s%s %d/%d\n",
			labelWidth, p.Label,
			strings.Repeat("█", filled),
			strings.Repeat("░", track-filled),
			p.Value, p.Max)
	}
	return b.String()
}
