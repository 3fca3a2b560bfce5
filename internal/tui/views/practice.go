// Package views provides TUI view components for the rehearse application.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/evaluate"
	"github.com/rehearse-dev/rehearse/internal/session"
	"github.com/rehearse-dev/rehearse/internal/tui"
)

// ============================================================================
// PracticeModel
// ============================================================================

// maxPracticeWidth is the maximum width for the practice box.
const maxPracticeWidth = 90

// PracticeModel is the view model for answering one question at a time.
type PracticeModel struct {
	index     int
	total     int
	question  bank.Question
	remaining time.Duration
	limit     time.Duration
	last      *session.Record

	input textarea.Model
	bar   progress.Model
	help  help.Model
	keys  tui.KeyMap

	ctrlCPending bool
	width        int
	height       int
}

// NewPracticeModel creates an empty PracticeModel. Call SetQuestion before
// rendering.
func NewPracticeModel(width, height int) PracticeModel {
	ta := textarea.New()
	ta.Placeholder = "Type your answer..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.Focus()

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	m := PracticeModel{
		input: ta,
		bar:   bar,
		help:  help.New(),
		keys:  tui.DefaultKeyMap,
	}
	m.resize(width, height)
	return m
}

// Init returns the cursor blink command.
func (m PracticeModel) Init() tea.Cmd {
	return textarea.Blink
}

// SetQuestion shows question index of total and clears the answer box.
func (m *PracticeModel) SetQuestion(index, total int, q bank.Question, limit time.Duration) {
	m.index = index
	m.total = total
	m.question = q
	m.limit = limit
	m.remaining = limit
	m.input.Reset()
	m.input.Focus()
}

// SetRemaining updates the countdown.
func (m *PracticeModel) SetRemaining(d time.Duration) {
	m.remaining = d
}

// SetLast shows the feedback for the previously finalized question.
// Pass nil to hide it.
func (m *PracticeModel) SetLast(rec *session.Record) {
	m.last = rec
}

// SetCtrlCPending updates the Ctrl+C hint.
func (m *PracticeModel) SetCtrlCPending(pending bool) {
	m.ctrlCPending = pending
}

// Index returns the question index shown.
func (m PracticeModel) Index() int {
	return m.index
}

// Value returns the current answer text.
func (m PracticeModel) Value() string {
	return m.input.Value()
}

// Update handles messages for the practice view.
func (m PracticeModel) Update(msg tea.Msg) (PracticeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			submit := tui.SubmitMsg{Index: m.index, Answer: m.input.Value()}
			return m, func() tea.Msg { return submit }
		case key.Matches(msg, m.keys.NewSession):
			return m, func() tea.Msg { return tui.NewSessionMsg{} }
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PracticeModel) resize(width, height int) {
	m.width = width
	m.height = height
	inner := m.boxWidth() - 6
	if inner < 20 {
		inner = 20
	}
	m.input.SetWidth(inner)
	m.bar.Width = inner
}

func (m PracticeModel) boxWidth() int {
	w := maxPracticeWidth
	if m.width-4 < w {
		w = m.width - 4
	}
	return max(w, 40)
}

// RemainingSeconds rounds the countdown up to whole seconds.
func (m PracticeModel) RemainingSeconds() int {
	return int((m.remaining + time.Second - 1) / time.Second)
}

// View renders the practice view.
func (m PracticeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, m.total)))
	b.WriteString("\n\n")
	b.WriteString(tui.QuestionStyle.Render(m.question.Text))
	b.WriteString("\n\n")

	// Countdown
	ratio := 0.0
	if m.limit > 0 {
		ratio = float64(m.remaining) / float64(m.limit)
	}
	secs := m.RemainingSeconds()
	limitSecs := int(m.limit / time.Second)
	b.WriteString(m.bar.ViewAs(ratio))
	b.WriteString("\n")
	b.WriteString(tui.CountdownStyle(secs, limitSecs).Render(fmt.Sprintf("Time remaining: %ds", secs)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(renderLast(*m.last))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(tui.PracticeHelp{Keys: m.keys}))
	if m.ctrlCPending {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render("Press Ctrl+C again to exit"))
	}

	return tui.BoxStyle.Width(m.boxWidth()).Render(b.String())
}

// renderLast summarizes the previous answer with per-keyword icons.
func renderLast(rec session.Record) string {
	var b strings.Builder
	header := fmt.Sprintf("Q%d: %d/%d keywords covered", rec.Index+1, rec.CoveredCount, len(rec.Feedback))
	if rec.TimedOut() {
		header += " (time up)"
	}
	b.WriteString(tui.DimStyle.Render(header))
	b.WriteString("\n")
	for i, e := range rec.Feedback {
		if i > 0 {
			b.WriteString("  ")
		}
		icon := tui.KeywordMissing
		if e.Status == evaluate.Covered {
			icon = tui.KeywordCovered
		}
		b.WriteString(icon + " " + e.Keyword)
	}
	return b.String()
}
