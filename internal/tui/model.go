package tui

import (
	"time"

	"github.com/rehearse-dev/rehearse/internal/log"
	"github.com/rehearse-dev/rehearse/internal/session"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StatePractice ViewState = iota
	StateSummary
)

// String returns the state name.
func (s ViewState) String() string {
	if s == StateSummary {
		return "summary"
	}
	return "practice"
}

// Model holds state shared by the app and its views.
type Model struct {
	State   ViewState
	Session *session.Session
	Err     error

	// Configuration
	ExportDir    string
	TickInterval time.Duration
	Logger       *log.Logger

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // True when waiting for second Ctrl+C press
}

// NewModel creates a Model driving s.
func NewModel(s *session.Session) *Model {
	return &Model{
		State:        StatePractice,
		Session:      s,
		TickInterval: 250 * time.Millisecond,
		Width:        80,
		Height:       24,
	}
}
