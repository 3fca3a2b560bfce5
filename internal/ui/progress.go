// Package ui provides plain terminal output for rehearse.
// This file implements the progress display shown by the line-based
// practice driver.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// QuestionStatus represents where a question is in a practice session.
type QuestionStatus int

const (
	StatusPending   QuestionStatus = iota // Not reached yet
	StatusAnswering                       // Currently shown
	StatusAnswered                        // Submitted by the user
	StatusTimedOut                        // Finalized by the timer
)

// QuestionState holds the display state of a single question.
type QuestionState struct {
	Number   int
	Text     string
	Status   QuestionStatus
	Covered  int
	Keywords int
	Elapsed  time.Duration
}

// ProgressDisplay prints question progress and countdowns for the plain
// driver. On a TTY it uses ANSI colors; otherwise it writes bare lines.
type ProgressDisplay struct {
	out       io.Writer
	isTTY     bool
	width     int
	questions []*QuestionState
}

// NewProgressDisplay creates a ProgressDisplay writing to out.
func NewProgressDisplay(out io.Writer) *ProgressDisplay {
	p := &ProgressDisplay{out: out, width: 60}
	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		p.isTTY = term.IsTerminal(fd)
		if p.isTTY {
			if w, _, err := term.GetSize(fd); err == nil && w > 20 {
				p.width = w
			}
		}
	}
	return p
}

// AddQuestion registers a question for progress tracking.
func (p *ProgressDisplay) AddQuestion(text string, keywords int) {
	p.questions = append(p.questions, &QuestionState{
		Number:   len(p.questions) + 1,
		Text:     text,
		Keywords: keywords,
	})
}

// Ask marks question i as current and prints its header.
func (p *ProgressDisplay) Ask(i int, remainingSeconds, limitSeconds int) {
	q := p.at(i)
	if q == nil {
		return
	}
	q.Status = StatusAnswering

	header := fmt.Sprintf("Question %d/%d: %s", q.Number, len(p.questions), q.Text)
	if p.isTTY {
		header = "\033[1m" + header + "\033[0m"
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, header)
	fmt.Fprintln(p.out, p.Countdown(remainingSeconds, limitSeconds))
}

// Finish records the outcome for question i and prints a one-line summary.
func (p *ProgressDisplay) Finish(i int, covered int, timedOut bool, elapsed time.Duration) {
	q := p.at(i)
	if q == nil {
		return
	}
	q.Covered = covered
	q.Elapsed = elapsed
	q.Status = StatusAnswered
	if timedOut {
		q.Status = StatusTimedOut
	}
	fmt.Fprintln(p.out, p.formatLine(q))
}

// Countdown renders the remaining time as a bar, e.g. "[#######...] 42s".
func (p *ProgressDisplay) Countdown(remainingSeconds, limitSeconds int) string {
	barWidth := p.width - 12
	if barWidth > 40 {
		barWidth = 40
	}
	return fmt.Sprintf("Time remaining: %s %ds", Bar(remainingSeconds, limitSeconds, barWidth), remainingSeconds)
}

// Summary prints the final answered/timed-out counts.
func (p *ProgressDisplay) Summary() {
	answered, timedOut := 0, 0
	for _, q := range p.questions {
		switch q.Status {
		case StatusAnswered:
			answered++
		case StatusTimedOut:
			timedOut++
		}
	}
	fmt.Fprintf(p.out, "\nDone: %d/%d answered", answered, len(p.questions))
	if timedOut > 0 {
		fmt.Fprintf(p.out, ", %d timed out", timedOut)
	}
	fmt.Fprintln(p.out)
}

func (p *ProgressDisplay) at(i int) *QuestionState {
	if i < 0 || i >= len(p.questions) {
		return nil
	}
	return p.questions[i]
}

// formatLine formats a finished question, with colors on a TTY.
func (p *ProgressDisplay) formatLine(q *QuestionState) string {
	var status string
	switch q.Status {
	case StatusAnswered:
		status = "ANSWERED"
	case StatusTimedOut:
		status = "TIME UP"
	case StatusAnswering:
		status = "ANSWERING"
	default:
		status = "PENDING"
	}
	line := fmt.Sprintf("[%s] Q%d: %d/%d keywords covered [%s]", status, q.Number, q.Covered, q.Keywords, formatDuration(q.Elapsed))
	if !p.isTTY {
		return line
	}
	switch q.Status {
	case StatusAnswered:
		return "\033[32m" + line + "\033[0m"
	case StatusTimedOut:
		return "\033[33m" + line + "\033[0m"
	default:
		return "\033[90m" + line + "\033[0m"
	}
}

// Bar renders value/max as a fixed-width bar of '#' and '.'.
func Bar(value, max, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled > width {
			filled = width
		}
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", h, m, s)
}
