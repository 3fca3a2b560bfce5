package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBar(t *testing.T) {
	tests := []struct {
		value, max, width int
		want              string
	}{
		{60, 60, 10, "[##########]"},
		{30, 60, 10, "[#####.....]"},
		{0, 60, 10, "[..........]"},
		{90, 60, 4, "[####]"},
		{5, 0, 3, "[...]"},
		{1, 1, 0, "[]"},
	}
	for _, tt := range tests {
		if got := Bar(tt.value, tt.max, tt.width); got != tt.want {
			t.Errorf("Bar(%d, %d, %d) = %q, want %q", tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestProgressDisplayPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressDisplay(&buf)
	p.AddQuestion("Tell me about yourself.", 4)
	p.AddQuestion("What are your strengths?", 5)

	p.Ask(0, 60, 60)
	p.Finish(0, 3, false, 12*time.Second)
	p.Ask(1, 60, 60)
	p.Finish(1, 0, true, 60*time.Second)
	p.Summary()

	out := buf.String()
	for _, want := range []string{
		"Question 1/2: Tell me about yourself.",
		"Time remaining:",
		"[ANSWERED] Q1: 3/4 keywords covered [12s]",
		"[TIME UP] Q2: 0/5 keywords covered [1m0s]",
		"Done: 1/2 answered, 1 timed out",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("plain output should not contain ANSI escapes")
	}
}

func TestProgressDisplayIgnoresUnknownIndex(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressDisplay(&buf)
	p.Ask(3, 10, 10)
	p.Finish(-1, 0, false, 0)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestBarChart(t *testing.T) {
	chart := BarChart("Keyword Coverage per Question", []BarPoint{
		{Label: "Q1", Value: 2, Max: 4},
		{Label: "Q10", Value: 5, Max: 5},
	}, 10)

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title plus 2 bars, got %d lines:\n%s", len(lines), chart)
	}
	if lines[0] != "Keyword Coverage per Question" {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Q1  ████░░░░ 2/4") {
		t.Errorf("Q1 bar = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Q10 ██████████ 5/5") {
		t.Errorf("Q10 bar = %q", lines[2])
	}
	if BarChart("x", nil, 10) != "" {
		t.Error("empty chart should render as empty string")
	}
}
