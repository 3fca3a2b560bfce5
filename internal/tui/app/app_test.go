package app

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rehearse-dev/rehearse/internal/log"
	"github.com/rehearse-dev/rehearse/internal/session"
	"github.com/rehearse-dev/rehearse/internal/testutil"
	"github.com/rehearse-dev/rehearse/internal/tui"
)

func newTestApp(t *testing.T) (*App, *session.Session, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	s, err := session.New(testutil.SmallBank(t), session.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	a := New(s, Options{ExportDir: t.TempDir(), Now: clock.Now})
	a.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return a, s, clock
}

func typeText(a *App, text string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// press sends a key and feeds the message produced by the view back in.
func press(t *testing.T, a *App, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := a.Update(k)
	if cmd == nil {
		return nil
	}
	_, next := a.Update(cmd())
	return next
}

var ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSubmitAdvancesToNextQuestion(t *testing.T) {
	a, s, _ := newTestApp(t)

	typeText(a, "teamwork and communication")
	if s.Draft() != "teamwork and communication" {
		t.Errorf("draft = %q", s.Draft())
	}
	press(t, a, ctrlS)

	if s.Index() != 1 || s.Score() != 2 {
		t.Errorf("index %d score %d, want 1 and 2", s.Index(), s.Score())
	}
	if a.practiceView.Value() != "" {
		t.Errorf("answer box not cleared: %q", a.practiceView.Value())
	}
	view := a.View()
	if !strings.Contains(view, "Question 2 of 3") {
		t.Errorf("view missing next question header:\n%s", view)
	}
	if !strings.Contains(view, "Q1: 2/2 keywords covered") {
		t.Errorf("view missing last feedback:\n%s", view)
	}
}

func TestTickTimesOutWithDraft(t *testing.T) {
	a, s, clock := newTestApp(t)
	typeText(a, "good communication")

	clock.Advance(30 * time.Second)
	_, cmd := a.Update(tui.TickMsg{Gen: a.tickGen})
	if cmd == nil {
		t.Fatal("tick loop stopped before expiry")
	}
	if s.Index() != 0 {
		t.Fatal("question finalized before expiry")
	}
	if got := a.practiceView.RemainingSeconds(); got != 30 {
		t.Errorf("RemainingSeconds = %d, want 30", got)
	}

	clock.Advance(30 * time.Second)
	a.Update(tui.TickMsg{Gen: a.tickGen})

	st := s.State()
	if len(st.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(st.Records))
	}
	rec := st.Records[0]
	if !rec.TimedOut() || rec.Answer != "good communication" || rec.CoveredCount != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestLateSubmitIgnored(t *testing.T) {
	a, s, clock := newTestApp(t)
	clock.Advance(time.Minute)
	a.Update(tui.TickMsg{Gen: a.tickGen})

	a.Update(tui.SubmitMsg{Index: 0, Answer: "teamwork"})
	st := s.State()
	if len(st.Records) != 1 || st.CurrentIndex != 1 || st.Score != 0 {
		t.Errorf("state = %+v", st)
	}
}

func TestStaleTickDropped(t *testing.T) {
	a, s, clock := newTestApp(t)
	old := a.tickGen
	press(t, a, ctrlS)

	clock.Advance(time.Minute)
	_, cmd := a.Update(tui.TickMsg{Gen: old})
	if cmd != nil {
		t.Error("stale tick re-armed the loop")
	}
	if s.Index() != 1 {
		t.Errorf("stale tick finalized a question: index %d", s.Index())
	}
}

func completeSession(t *testing.T, a *App) {
	t.Helper()
	for _, answer := range []string{"teamwork", "perfectionist", "calm"} {
		typeText(a, answer)
		press(t, a, ctrlS)
	}
}

func TestCompletionShowsSummary(t *testing.T) {
	a, s, _ := newTestApp(t)
	completeSession(t, a)

	if a.State() != tui.StateSummary {
		t.Fatalf("State = %v, want summary", a.State())
	}
	if s.Phase() != session.Completed {
		t.Errorf("Phase = %v", s.Phase())
	}
	view := a.View()
	for _, want := range []string{
		"Session completed! Your score: 3",
		"Total Keywords Covered: 3 / 6 (50%)",
		"Good",
		"Keyword Coverage per Question",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("summary missing %q:\n%s", want, view)
		}
	}

	// Ticks stop once the summary is shown.
	if _, cmd := a.Update(tui.TickMsg{Gen: a.tickGen}); cmd != nil {
		t.Error("tick loop still running on summary")
	}
}

func TestExportFromSummary(t *testing.T) {
	root := t.TempDir()
	logger, err := log.NewLogger(root)
	if err != nil {
		t.Fatal(err)
	}
	a, _, _ := newTestApp(t)
	a.model.Logger = logger
	completeSession(t, a)

	_, cmd := a.Update(runes("e"))
	if cmd == nil {
		t.Fatal("e produced no command")
	}
	_, exportCmd := a.Update(cmd())
	if exportCmd == nil {
		t.Fatal("export request produced no command")
	}
	msg, ok := exportCmd().(tui.ExportedMsg)
	if !ok {
		t.Fatalf("export returned %T", msg)
	}
	if msg.Err != nil {
		t.Fatalf("export failed: %v", msg.Err)
	}
	if _, err := os.Stat(msg.Path); err != nil {
		t.Errorf("export file: %v", err)
	}
	a.Update(msg)
	if !strings.Contains(a.View(), "Report saved to") {
		t.Error("summary does not show the export path")
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Event != log.EventReportExported {
		t.Errorf("events = %+v", events)
	}
}

func TestExportLogFailureShownAsWarning(t *testing.T) {
	logger, err := log.NewLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// A directory in place of the log file makes every append fail.
	if err := os.Mkdir(logger.Path(), 0755); err != nil {
		t.Fatal(err)
	}
	a, _, _ := newTestApp(t)
	a.model.Logger = logger
	completeSession(t, a)

	msg, ok := a.exportCmd(a.summaryView.Report())().(tui.ExportedMsg)
	if !ok {
		t.Fatalf("export returned %T", msg)
	}
	if msg.Err != nil {
		t.Fatalf("export failed: %v", msg.Err)
	}
	if msg.Warning == nil {
		t.Fatal("log failure was not reported")
	}
	a.Update(msg)
	view := a.View()
	if !strings.Contains(view, "Report saved to") || !strings.Contains(view, "Warning:") {
		t.Errorf("summary missing export warning:\n%s", view)
	}
}

func TestNewSessionFromSummary(t *testing.T) {
	a, s, _ := newTestApp(t)
	oldID := s.ID()
	completeSession(t, a)

	press(t, a, runes("n"))
	if a.State() != tui.StatePractice {
		t.Fatalf("State = %v, want practice", a.State())
	}
	st := s.State()
	if st.CurrentIndex != 0 || st.Score != 0 || len(st.Records) != 0 {
		t.Errorf("state after new session = %+v", st)
	}
	if st.ID == oldID {
		t.Error("new session kept the old ID")
	}
	if !strings.Contains(a.View(), "Question 1 of 3") {
		t.Error("practice view not reset to the first question")
	}
}

func TestCtrlRResetsMidSession(t *testing.T) {
	a, s, _ := newTestApp(t)
	typeText(a, "teamwork")
	press(t, a, ctrlS)
	typeText(a, "half an answer")

	press(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	if s.Index() != 0 || s.Draft() != "" {
		t.Errorf("index %d draft %q after reset", s.Index(), s.Draft())
	}
	if a.practiceView.Value() != "" {
		t.Errorf("answer box = %q", a.practiceView.Value())
	}
}

func TestCtrlCRequiresDoublePress(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	_, cmd := a.Update(ctrlC)
	if !a.model.CtrlCPending {
		t.Fatal("first Ctrl+C did not arm the confirmation")
	}
	if cmd == nil {
		t.Fatal("first Ctrl+C should schedule a reset")
	}
	if !strings.Contains(a.View(), "Press Ctrl+C again to exit") {
		t.Error("missing Ctrl+C hint")
	}

	_, cmd = a.Update(ctrlC)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second Ctrl+C did not quit")
	}

	a.Update(tui.CtrlCResetMsg{})
	if a.model.CtrlCPending {
		t.Error("reset message did not clear the confirmation")
	}
}

func TestEscQuitsFromSummary(t *testing.T) {
	a, _, _ := newTestApp(t)
	completeSession(t, a)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	_, quit := a.Update(cmd())
	if quit == nil {
		t.Fatal("QuitMsg produced no command")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Error("esc on summary did not quit")
	}
}
