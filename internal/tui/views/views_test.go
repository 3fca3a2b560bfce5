package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/evaluate"
	"github.com/rehearse-dev/rehearse/internal/report"
	"github.com/rehearse-dev/rehearse/internal/session"
	"github.com/rehearse-dev/rehearse/internal/tui"
)

var strengths = bank.Question{
	ID:           "strengths",
	Text:         "What are your strengths?",
	Keywords:     []string{"teamwork", "communication"},
	SampleAnswer: "Teamwork and communication.",
}

func TestPracticeSubmitCarriesIndex(t *testing.T) {
	m := NewPracticeModel(100, 40)
	m.SetQuestion(2, 5, strengths, time.Minute)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("teamwork")})
	if m.Value() != "teamwork" {
		t.Fatalf("Value = %q", m.Value())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s produced no command")
	}
	msg, ok := cmd().(tui.SubmitMsg)
	if !ok {
		t.Fatalf("got %T, want SubmitMsg", msg)
	}
	if msg.Index != 2 || msg.Answer != "teamwork" {
		t.Errorf("SubmitMsg = %+v", msg)
	}
}

func TestPracticeCountdown(t *testing.T) {
	m := NewPracticeModel(100, 40)
	m.SetQuestion(0, 1, strengths, time.Minute)

	tests := []struct {
		remaining time.Duration
		want      int
	}{
		{time.Minute, 60},
		{41500 * time.Millisecond, 42},
		{time.Millisecond, 1},
		{0, 0},
	}
	for _, tt := range tests {
		m.SetRemaining(tt.remaining)
		if got := m.RemainingSeconds(); got != tt.want {
			t.Errorf("RemainingSeconds(%v) = %d, want %d", tt.remaining, got, tt.want)
		}
	}

	m.SetRemaining(42 * time.Second)
	view := m.View()
	for _, want := range []string{"Question 1 of 1", "What are your strengths?", "Time remaining: 42s", "ctrl+s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPracticeShowsLastFeedback(t *testing.T) {
	m := NewPracticeModel(100, 40)
	m.SetQuestion(1, 2, strengths, time.Minute)
	fb := evaluate.Evaluate("teamwork", strengths.Keywords)
	m.SetLast(&session.Record{
		Index:        0,
		Feedback:     fb,
		CoveredCount: fb.CoveredCount(),
		Reason:       session.ReasonTimeout,
	})

	view := m.View()
	for _, want := range []string{"Q1: 1/2 keywords covered (time up)", "teamwork", "communication"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func sampleReport() report.SessionReport {
	return report.SessionReport{
		SessionID:       "abc",
		Answered:        2,
		Questions:       2,
		TotalKeywords:   5,
		CoveredKeywords: 4,
		CoverageRatio:   0.8,
		Tier:            report.TierExcellent,
		Rows: []report.Row{
			{Question: "What are your strengths?", YourAnswer: "teamwork", Feedback: "Covered: teamwork, Missing: communication"},
			{Question: "How do you handle stress?", YourAnswer: "calm", Feedback: "Covered: calm"},
		},
		Series: []report.Point{
			{Label: "Q1", Covered: 1, Total: 2},
			{Label: "Q2", Covered: 1, Total: 1},
		},
	}
}

func TestSummaryRows(t *testing.T) {
	rows := summaryRows(sampleReport())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "Q1" || rows[0][2] != "1/2" || rows[1][3] != "Covered: calm" {
		t.Errorf("rows = %v", rows)
	}
}

func TestSummaryColumnsFitWidth(t *testing.T) {
	for _, width := range []int{60, 104} {
		cols := summaryColumns(width)
		total := 0
		for _, c := range cols {
			total += c.Width
		}
		if total > width {
			t.Errorf("width %d: columns use %d", width, total)
		}
	}
}

func TestSummaryKeys(t *testing.T) {
	m := NewSummaryModel(sampleReport(), 140, 50)

	tests := []struct {
		key  tea.KeyMsg
		want tea.Msg
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}, tui.ExportRequestMsg{}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, tui.NewSessionMsg{}},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, tui.NewSessionMsg{}},
		{tea.KeyMsg{Type: tea.KeyEsc}, tui.QuitMsg{}},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tt.key)
		if cmd == nil {
			t.Errorf("%s produced no command", tt.key)
			continue
		}
		if got := cmd(); got != tt.want {
			t.Errorf("%s: got %#v, want %#v", tt.key, got, tt.want)
		}
	}
}

func TestSummaryView(t *testing.T) {
	m := NewSummaryModel(sampleReport(), 140, 50)
	m.SetExport("/tmp/session_report.csv", nil)

	view := m.View()
	for _, want := range []string{
		"Session completed! Your score: 4",
		"Total Keywords Covered: 4 / 5 (80%)",
		"Excellent",
		report.TierExcellent.Message(),
		"Keyword Coverage per Question",
		"Report saved to /tmp/session_report.csv",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
