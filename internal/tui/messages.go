package tui

import "time"

// ============================================================================
// Practice Messages
// ============================================================================

// TickMsg polls the question timer. Gen identifies the tick loop that
// produced it; ticks from a loop that was replaced are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// SubmitMsg requests a manual finalize of the question at Index.
type SubmitMsg struct {
	Index  int
	Answer string
}

// NewSessionMsg requests a reset to the first question.
type NewSessionMsg struct{}

// ============================================================================
// Summary Messages
// ============================================================================

// ExportRequestMsg asks the app to write the CSV report.
type ExportRequestMsg struct{}

// ExportedMsg reports the result of a CSV export. Warning is set when the
// report was written but the event log could not record it.
type ExportedMsg struct {
	Path    string
	Err     error
	Warning error
}

// QuitMsg asks the app to exit.
type QuitMsg struct{}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
