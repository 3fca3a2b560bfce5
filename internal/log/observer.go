package log

import (
	"fmt"
	"io"

	"github.com/rehearse-dev/rehearse/internal/report"
	"github.com/rehearse-dev/rehearse/internal/session"
)

// SessionObserver records session lifecycle events. Write failures are
// reported to Warn and never interrupt the session.
type SessionObserver struct {
	Logger *Logger
	Warn   io.Writer
}

// OnEvent implements session.Observer.
func (o SessionObserver) OnEvent(e session.Event) {
	if o.Logger == nil {
		return
	}
	ev := LogEvent{
		Time:      e.At.UTC(),
		SessionID: e.SessionID,
		Score:     e.Score,
	}
	switch e.Kind {
	case session.EventStarted:
		ev.Event = EventSessionStarted
	case session.EventReset:
		ev.Event = EventSessionReset
	case session.EventCompleted:
		ev.Event = EventSessionCompleted
		ev.Total = e.Index + 1
	case session.EventFinalized:
		ev.Event = EventQuestionFinalized
		ev.Question = e.Index + 1
		if r := e.Record; r != nil {
			ev.QuestionID = r.Question.ID
			ev.Reason = string(r.Reason)
			ev.Covered = r.CoveredCount
			ev.Total = len(r.Feedback)
			ev.DurationMs = r.Elapsed.Milliseconds()
		}
	default:
		return
	}
	if err := o.Logger.Append(ev); err != nil && o.Warn != nil {
		fmt.Fprintf(o.Warn, "warning: %v\n", err)
	}
}

// ReportExported builds the event recorded after a CSV export.
func ReportExported(r report.SessionReport, path string) LogEvent {
	return LogEvent{
		Event:      EventReportExported,
		SessionID:  r.SessionID,
		Covered:    r.CoveredKeywords,
		Total:      r.TotalKeywords,
		Score:      r.CoveredKeywords,
		Tier:       string(r.Tier),
		Path:       path,
		DurationMs: r.Duration.Milliseconds(),
	}
}
