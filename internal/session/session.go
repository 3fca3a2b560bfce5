package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/evaluate"
	"github.com/rehearse-dev/rehearse/internal/report"
)

// DefaultTimeLimit is the per-question answer time.
const DefaultTimeLimit = 60 * time.Second

var (
	// ErrEmptyBank is returned by New when the bank has no questions.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrNotCompleted is returned by Report before every question is finalized.
	ErrNotCompleted = errors.New("session is not completed")
)

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source. Defaults to the wall clock.
func WithClock(c Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithTimeLimit sets the per-question limit. Non-positive values keep the default.
func WithTimeLimit(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.limit = d
		}
	}
}

// WithObserver registers an observer for lifecycle events.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// Session is the practice state machine for one user.
type Session struct {
	bank     *bank.Bank
	clock    Clock
	limit    time.Duration
	observer Observer

	id      string
	index   int
	score   int
	records []Record
	start   time.Time
	phase   Phase
	draft   string
}

// New starts a session at the first question of b.
func New(b *bank.Bank, opts ...Option) (*Session, error) {
	if b.Len() == 0 {
		return nil, ErrEmptyBank
	}
	s := &Session{
		bank:  b,
		clock: systemClock{},
		limit: DefaultTimeLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restart()
	s.emit(Event{Kind: EventStarted})
	return s, nil
}

// Dispatch applies one command and reports what happened.
func (s *Session) Dispatch(cmd Command) Outcome {
	switch c := cmd.(type) {
	case Tick:
		return s.tick()
	case Finalize:
		return s.finalize(c)
	case Reset:
		s.restart()
		s.emit(Event{Kind: EventReset})
		return Outcome{Applied: true, Remaining: s.limit}
	}
	return Outcome{}
}

func (s *Session) tick() Outcome {
	if s.phase != InProgress {
		return Outcome{}
	}
	remaining := s.Remaining()
	return Outcome{Applied: true, Remaining: remaining, Expired: remaining == 0}
}

func (s *Session) finalize(c Finalize) Outcome {
	if s.phase != InProgress || c.Index != s.index {
		return Outcome{}
	}
	reason := c.Reason
	if reason == "" {
		reason = ReasonManual
	}
	if reason == ReasonTimeout && !s.Expired() {
		return Outcome{Remaining: s.Remaining()}
	}

	now := s.clock.Now()
	q := s.bank.Questions[s.index]
	feedback := evaluate.Evaluate(c.Answer, q.Keywords)
	rec := Record{
		Index:        s.index,
		Question:     q.Clone(),
		Answer:       c.Answer,
		Feedback:     feedback,
		CoveredCount: feedback.CoveredCount(),
		Reason:       reason,
		Elapsed:      now.Sub(s.start),
		FinalizedAt:  now,
	}

	s.records = append(s.records, rec)
	s.score += rec.CoveredCount
	s.index++
	s.start = now
	s.draft = ""

	out := rec.clone()
	s.emit(Event{Kind: EventFinalized, Index: rec.Index, Record: &out})
	if s.index == s.bank.Len() {
		s.phase = Completed
		s.emit(Event{Kind: EventCompleted, Index: rec.Index})
	}

	result := rec.clone()
	return Outcome{
		Applied:   true,
		Remaining: s.Remaining(),
		Record:    &result,
		Completed: s.phase == Completed,
	}
}

func (s *Session) restart() {
	s.id = uuid.NewString()
	s.index = 0
	s.score = 0
	s.records = nil
	s.start = s.clock.Now()
	s.phase = InProgress
	s.draft = ""
}

func (s *Session) emit(e Event) {
	if s.observer == nil {
		return
	}
	e.SessionID = s.id
	e.Score = s.score
	if e.At.IsZero() {
		e.At = s.clock.Now()
	}
	s.observer.OnEvent(e)
}

// CurrentQuestion returns the question being answered, or false once the
// session is completed.
func (s *Session) CurrentQuestion() (bank.Question, bool) {
	if s.phase != InProgress {
		return bank.Question{}, false
	}
	return s.bank.At(s.index)
}

// Remaining returns max(0, limit - elapsed) for the current question.
// It is zero once the session is completed.
func (s *Session) Remaining() time.Duration {
	if s.phase != InProgress {
		return 0
	}
	remaining := s.limit - s.clock.Now().Sub(s.start)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingSeconds returns the remaining time in whole seconds, rounded up
// so that it only reads 0 once the limit has passed.
func (s *Session) RemainingSeconds() int {
	return int((s.Remaining() + time.Second - 1) / time.Second)
}

// Expired reports whether the current question's time is up.
func (s *Session) Expired() bool {
	return s.phase == InProgress && s.Remaining() == 0
}

// SetDraft buffers the text typed so far for the current question. The
// draft is what OnTimeout submits.
func (s *Session) SetDraft(text string) {
	if s.phase == InProgress {
		s.draft = text
	}
}

// Draft returns the buffered text for the current question.
func (s *Session) Draft() string {
	return s.draft
}

// SubmitAnswer finalizes the current question with text. The bool is false
// when nothing was finalized (the session is completed).
func (s *Session) SubmitAnswer(text string) (Record, bool) {
	out := s.Dispatch(Finalize{Index: s.index, Answer: text, Reason: ReasonManual})
	if out.Record == nil {
		return Record{}, false
	}
	return *out.Record, true
}

// OnTimeout finalizes the current question with the buffered draft once its
// time is up. Before the limit it does nothing.
func (s *Session) OnTimeout() (Record, bool) {
	out := s.Dispatch(Finalize{Index: s.index, Answer: s.draft, Reason: ReasonTimeout})
	if out.Record == nil {
		return Record{}, false
	}
	return *out.Record, true
}

// Reset starts a new session from the first question.
func (s *Session) Reset() {
	s.Dispatch(Reset{})
}

// Report aggregates the completed session.
func (s *Session) Report() (report.SessionReport, error) {
	if s.phase != Completed {
		return report.SessionReport{}, ErrNotCompleted
	}
	return s.Summary(), nil
}

// Summary aggregates whatever has been finalized so far. An aborted session
// is still scored against every keyword in the bank.
func (s *Session) Summary() report.SessionReport {
	answers := make([]report.Answered, len(s.records))
	for i, rec := range s.records {
		answers[i] = report.Answered{
			Question: rec.Question.Clone(),
			Answer:   rec.Answer,
			Feedback: rec.Feedback,
			TimedOut: rec.TimedOut(),
			Elapsed:  rec.Elapsed,
		}
	}
	r := report.Aggregate(answers, s.bank)
	r.SessionID = s.id
	return r
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	records := make([]Record, len(s.records))
	for i, rec := range s.records {
		records[i] = rec.clone()
	}
	return State{
		ID:            s.id,
		CurrentIndex:  s.index,
		Score:         s.score,
		Records:       records,
		QuestionStart: s.start,
		Phase:         s.phase,
	}
}

// ID returns the current session identifier. Reset assigns a new one.
func (s *Session) ID() string { return s.id }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// Score returns the running covered-keyword total.
func (s *Session) Score() int { return s.score }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Limit returns the per-question time limit.
func (s *Session) Limit() time.Duration { return s.limit }

// Bank returns the question bank.
func (s *Session) Bank() *bank.Bank { return s.bank }
