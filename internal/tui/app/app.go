// Package app provides the main TUI application that wires all views together.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rehearse-dev/rehearse/internal/log"
	"github.com/rehearse-dev/rehearse/internal/report"
	"github.com/rehearse-dev/rehearse/internal/session"
	"github.com/rehearse-dev/rehearse/internal/tui"
	"github.com/rehearse-dev/rehearse/internal/tui/views"
)

// Options configures an App.
type Options struct {
	ExportDir    string
	TickInterval time.Duration
	Logger       *log.Logger
	// Now stamps export file names. Defaults to time.Now.
	Now func() time.Time
}

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model
	now   func() time.Time

	// tickGen identifies the live tick loop. Starting a question bumps it
	// so ticks already in flight for the previous question are dropped.
	tickGen int

	// View models
	practiceView views.PracticeModel
	summaryView  views.SummaryModel
}

// New creates an App driving s from its current question.
func New(s *session.Session, opts Options) *App {
	model := tui.NewModel(s)
	model.ExportDir = opts.ExportDir
	model.Logger = opts.Logger
	if opts.TickInterval > 0 {
		model.TickInterval = opts.TickInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		model:        model,
		now:          now,
		practiceView: views.NewPracticeModel(model.Width, model.Height),
	}
	a.showCurrentQuestion(nil)
	return a
}

// Init starts the countdown and the cursor blink.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.practiceView.Init(), a.tick())
}

// State returns the active screen.
func (a *App) State() tui.ViewState {
	return a.model.State
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		a.practiceView, _ = a.practiceView.Update(msg)
		if a.model.State == tui.StateSummary {
			a.summaryView, _ = a.summaryView.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				// Second press within timeout - exit
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.TickMsg:
		return a.handleTick(msg)

	case tui.SubmitMsg:
		return a.handleSubmit(msg)

	case tui.NewSessionMsg:
		return a.startNewSession()

	case tui.ExportRequestMsg:
		if a.model.State != tui.StateSummary {
			return a, nil
		}
		return a, a.exportCmd(a.summaryView.Report())

	case tui.ExportedMsg:
		a.summaryView.SetExport(msg.Path, msg.Err)
		a.summaryView.SetExportWarning(msg.Warning)
		return a, nil

	case tui.QuitMsg:
		return a, tea.Quit
	}

	// Route remaining messages to the active view
	var cmd tea.Cmd
	switch a.model.State {
	case tui.StatePractice:
		a.practiceView, cmd = a.practiceView.Update(msg)
		a.model.Session.SetDraft(a.practiceView.Value())
	case tui.StateSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	}
	return a, cmd
}

// View renders the current application state.
func (a *App) View() string {
	a.practiceView.SetCtrlCPending(a.model.CtrlCPending)
	a.summaryView.SetCtrlCPending(a.model.CtrlCPending)

	var content string
	switch a.model.State {
	case tui.StateSummary:
		content = a.summaryView.View()
	default:
		content = a.practiceView.View()
	}
	if a.model.Err != nil {
		content = lipgloss.JoinVertical(lipgloss.Center, content, tui.ErrorStyle.Render(a.model.Err.Error()))
	}

	return lipgloss.Place(
		a.model.Width,
		a.model.Height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// ============================================================================
// State Update Handlers
// ============================================================================

// handleTick polls the session timer and finalizes the question with the
// typed draft once time is up.
func (a *App) handleTick(msg tui.TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != a.tickGen || a.model.State != tui.StatePractice {
		return a, nil
	}
	s := a.model.Session
	out := s.Dispatch(session.Tick{})
	a.practiceView.SetRemaining(out.Remaining)
	if out.Expired {
		s.SetDraft(a.practiceView.Value())
		if rec, ok := s.OnTimeout(); ok {
			return a.advance(rec)
		}
	}
	return a, a.tick()
}

// handleSubmit finalizes the question the submit was made for. A submit
// for a question that already timed out is ignored.
func (a *App) handleSubmit(msg tui.SubmitMsg) (tea.Model, tea.Cmd) {
	if a.model.State != tui.StatePractice {
		return a, nil
	}
	out := a.model.Session.Dispatch(session.Finalize{
		Index:  msg.Index,
		Answer: msg.Answer,
		Reason: session.ReasonManual,
	})
	if !out.Applied || out.Record == nil {
		return a, nil
	}
	return a.advance(*out.Record)
}

// advance moves to the next question or to the summary.
func (a *App) advance(rec session.Record) (tea.Model, tea.Cmd) {
	s := a.model.Session
	if s.Phase() == session.Completed {
		r, err := s.Report()
		if err != nil {
			a.model.Err = err
			return a, nil
		}
		a.tickGen++
		a.summaryView = views.NewSummaryModel(r, a.model.Width, a.model.Height)
		a.model.State = tui.StateSummary
		return a, nil
	}
	a.showCurrentQuestion(&rec)
	return a, a.tick()
}

func (a *App) startNewSession() (tea.Model, tea.Cmd) {
	a.model.Session.Reset()
	a.model.Err = nil
	a.model.State = tui.StatePractice
	a.summaryView = views.SummaryModel{}
	a.showCurrentQuestion(nil)
	return a, tea.Batch(a.practiceView.Init(), a.tick())
}

func (a *App) showCurrentQuestion(last *session.Record) {
	s := a.model.Session
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	a.tickGen++
	a.practiceView.SetQuestion(s.Index(), s.Bank().Len(), q, s.Limit())
	a.practiceView.SetRemaining(s.Remaining())
	a.practiceView.SetLast(last)
}

// tick schedules the next timer poll for the live loop.
func (a *App) tick() tea.Cmd {
	gen := a.tickGen
	return tea.Tick(a.model.TickInterval, func(t time.Time) tea.Msg {
		return tui.TickMsg{Gen: gen, Time: t}
	})
}

// exportCmd writes the CSV report off the update loop.
func (a *App) exportCmd(r report.SessionReport) tea.Cmd {
	dir := a.model.ExportDir
	if dir == "" {
		dir = "."
	}
	logger := a.model.Logger
	at := a.now()
	return func() tea.Msg {
		path, err := report.Export(dir, r, at)
		msg := tui.ExportedMsg{Path: path, Err: err}
		if err == nil && logger != nil {
			msg.Warning = logger.Append(log.ReportExported(r, path))
		}
		return msg
	}
}
