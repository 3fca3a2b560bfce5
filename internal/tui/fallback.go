package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rehearse-dev/rehearse/internal/log"
	"github.com/rehearse-dev/rehearse/internal/report"
	"github.com/rehearse-dev/rehearse/internal/session"
	"github.com/rehearse-dev/rehearse/internal/ui"
)

// errInputClosed ends a plain session when stdin reaches EOF.
var errInputClosed = errors.New("input closed")

// minRearm bounds how soon the timer re-fires when the session clock lags
// behind the wall clock.
const minRearm = 10 * time.Millisecond

// FallbackRunner drives a session without a TUI: one line of input is one
// answer. It is used with --plain and whenever stdin or stdout is not a
// terminal.
type FallbackRunner struct {
	Session   *session.Session
	In        io.Reader
	Out       io.Writer
	ExportDir string      // empty skips the CSV export
	Logger    *log.Logger // optional
	Now       func() time.Time
}

// NewFallbackRunner creates a FallbackRunner reading answers from in.
func NewFallbackRunner(s *session.Session, in io.Reader, out io.Writer) *FallbackRunner {
	return &FallbackRunner{
		Session: s,
		In:      in,
		Out:     out,
		Now:     time.Now,
	}
}

// Run asks every question in order and prints the report. If input ends
// early, the questions answered so far are reported as a partial session
// and nothing is exported. A read error ends the run with that error.
func (f *FallbackRunner) Run(ctx context.Context) (report.SessionReport, error) {
	s := f.Session
	done := make(chan struct{})
	defer close(done)
	lines := readLines(f.In, done)

	display := ui.NewProgressDisplay(f.Out)
	for _, q := range s.Bank().Questions {
		display.AddQuestion(q.Text, len(q.Keywords))
	}
	limit := int(s.Limit() / time.Second)

	fmt.Fprintf(f.Out, "Answer each question on one line. You have %ds per question.\n", limit)

	aborted := false
	for s.Phase() == session.InProgress {
		idx := s.Index()
		display.Ask(idx, s.RemainingSeconds(), limit)

		rec, err := f.await(ctx, lines)
		if errors.Is(err, errInputClosed) {
			aborted = true
			break
		}
		if err != nil {
			return report.SessionReport{}, err
		}
		display.Finish(idx, rec.CoveredCount, rec.TimedOut(), rec.Elapsed)
		fmt.Fprintf(f.Out, "  %s\n", rec.Feedback.String())
	}

	display.Summary()
	r := s.Summary()
	if aborted {
		fmt.Fprintf(f.Out, "Input closed after %d of %d questions.\n", r.Answered, r.Questions)
	}
	fmt.Fprintln(f.Out)
	fmt.Fprint(f.Out, report.FormatReport(r))

	if f.ExportDir != "" && !r.Complete() {
		fmt.Fprintln(f.Out, "Session incomplete; no report exported.")
		return r, nil
	}
	if f.ExportDir != "" {
		path, err := report.Export(f.ExportDir, r, f.now())
		if err != nil {
			return r, err
		}
		fmt.Fprintf(f.Out, "Report saved to %s\n", path)
		if f.Logger != nil {
			if err := f.Logger.Append(log.ReportExported(r, path)); err != nil {
				fmt.Fprintf(f.Out, "warning: %v\n", err)
			}
		}
	}
	return r, nil
}

// await blocks until the current question is finalized by an answer line
// or by the timer. A line that arrives after the deadline is dropped and
// the question times out with the buffered draft.
func (f *FallbackRunner) await(ctx context.Context, lines <-chan inputLine) (session.Record, error) {
	s := f.Session
	timer := time.NewTimer(s.Remaining())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return session.Record{}, ctx.Err()

		case in, ok := <-lines:
			if !ok {
				return session.Record{}, errInputClosed
			}
			if in.err != nil {
				return session.Record{}, fmt.Errorf("reading answers: %w", in.err)
			}
			line := in.text
			if s.Expired() {
				fmt.Fprintln(f.Out, "  Time is up; that answer arrived too late.")
				if rec, ok := s.OnTimeout(); ok {
					return rec, nil
				}
			}
			if rec, ok := s.SubmitAnswer(line); ok {
				return rec, nil
			}

		case <-timer.C:
			if rec, ok := s.OnTimeout(); ok {
				return rec, nil
			}
			timer.Reset(max(s.Remaining(), minRearm))
		}
	}
}

func (f *FallbackRunner) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// inputLine is one line read from the answer stream, or the error that
// stopped the stream.
type inputLine struct {
	text string
	err  error
}

// readLines streams lines from r until EOF or until done is closed. A read
// error, including a line longer than bufio.MaxScanTokenSize, is sent as
// the last value before the channel closes.
func readLines(r io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}
