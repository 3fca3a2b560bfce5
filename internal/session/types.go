// Package session implements the timed practice session state machine.
//
// A Session is owned by a single driver (the TUI app or the plain console
// loop). Each user interaction is dispatched as one command: Tick observes
// the timer, Finalize locks in an answer, Reset starts over. Timeouts are
// detected by polling Tick; nothing mutates a session on its own.
package session

import (
	"time"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/evaluate"
)

// Phase is the session lifecycle state.
type Phase int

const (
	InProgress Phase = iota
	Completed
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Completed {
		return "completed"
	}
	return "in_progress"
}

// FinalizeReason records what locked in an answer.
type FinalizeReason string

const (
	ReasonManual  FinalizeReason = "manual"
	ReasonTimeout FinalizeReason = "timeout"
)

// Record is a finalized question. It is created once and never modified.
type Record struct {
	Index        int
	Question     bank.Question
	Answer       string
	Feedback     evaluate.Feedback
	CoveredCount int
	Reason       FinalizeReason
	Elapsed      time.Duration
	FinalizedAt  time.Time
}

// TimedOut reports whether the record was finalized by the timer.
func (r Record) TimedOut() bool {
	return r.Reason == ReasonTimeout
}

func (r Record) clone() Record {
	r.Question = r.Question.Clone()
	r.Feedback = r.Feedback.Clone()
	return r
}

// State is a snapshot of a session. Mutating it does not affect the session.
type State struct {
	ID            string
	CurrentIndex  int
	Score         int
	Records       []Record
	QuestionStart time.Time
	Phase         Phase
}

// EventKind identifies a session lifecycle event.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventFinalized EventKind = "finalized"
	EventCompleted EventKind = "completed"
	EventReset     EventKind = "reset"
)

// Event is delivered to an Observer after a transition is applied.
type Event struct {
	Kind      EventKind
	SessionID string
	Index     int
	Score     int
	Record    *Record
	At        time.Time
}

// Observer receives session events.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
