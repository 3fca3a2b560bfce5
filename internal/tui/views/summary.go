package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rehearse-dev/rehearse/internal/report"
	"github.com/rehearse-dev/rehearse/internal/tui"
	"github.com/rehearse-dev/rehearse/internal/ui"
)

// ============================================================================
// SummaryModel
// ============================================================================

// maxSummaryWidth is the maximum width for the summary box.
const maxSummaryWidth = 110

// SummaryModel renders the completed session report.
type SummaryModel struct {
	report report.SessionReport
	table  table.Model
	help   help.Model
	keys   tui.KeyMap

	exportPath string
	exportErr  error
	exportWarn error

	ctrlCPending bool
	width        int
	height       int
}

// NewSummaryModel creates a SummaryModel for r.
func NewSummaryModel(r report.SessionReport, width, height int) SummaryModel {
	t := table.New(
		table.WithColumns(summaryColumns(maxSummaryWidth-6)),
		table.WithRows(summaryRows(r)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	t.SetStyles(styles)

	m := SummaryModel{
		report: r,
		table:  t,
		help:   help.New(),
		keys:   tui.DefaultKeyMap,
	}
	m.resize(width, height)
	return m
}

// Init returns nil; the summary is static.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Report returns the report being shown.
func (m SummaryModel) Report() report.SessionReport {
	return m.report
}

// SetExport records the result of the last CSV export.
func (m *SummaryModel) SetExport(path string, err error) {
	m.exportPath = path
	m.exportErr = err
}

// SetExportWarning records a non-fatal problem from the last export.
func (m *SummaryModel) SetExportWarning(err error) {
	m.exportWarn = err
}

// SetCtrlCPending updates the Ctrl+C hint.
func (m *SummaryModel) SetCtrlCPending(pending bool) {
	m.ctrlCPending = pending
}

// Update handles messages for the summary view.
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Export):
			return m, func() tea.Msg { return tui.ExportRequestMsg{} }
		case key.Matches(msg, m.keys.Restart):
			return m, func() tea.Msg { return tui.NewSessionMsg{} }
		case key.Matches(msg, m.keys.Escape):
			return m, func() tea.Msg { return tui.QuitMsg{} }
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *SummaryModel) resize(width, height int) {
	m.width = width
	m.height = height
	inner := m.boxWidth() - 6
	m.table.SetColumns(summaryColumns(inner))
	m.table.SetWidth(inner)

	rows := len(m.report.Rows) + 1
	if avail := height - 22; avail < rows {
		rows = max(avail, 3)
	}
	m.table.SetHeight(rows)
}

func (m SummaryModel) boxWidth() int {
	w := maxSummaryWidth
	if m.width-4 < w {
		w = m.width - 4
	}
	return max(w, 40)
}

// summaryColumns splits the available width between the question text
// and the keyword feedback.
func summaryColumns(width int) []table.Column {
	const fixed = 4 + 9 // "#" and "Covered"
	rest := width - fixed - 8
	if rest < 20 {
		rest = 20
	}
	question := rest * 2 / 5
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: question},
		{Title: "Covered", Width: 9},
		{Title: "Feedback", Width: rest - question},
	}
}

func summaryRows(r report.SessionReport) []table.Row {
	rows := make([]table.Row, 0, len(r.Rows))
	for i, row := range r.Rows {
		covered := ""
		if i < len(r.Series) {
			covered = fmt.Sprintf("%d/%d", r.Series[i].Covered, r.Series[i].Total)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("Q%d", i+1),
			row.Question,
			covered,
			row.Feedback,
		})
	}
	return rows
}

// View renders the summary view.
func (m SummaryModel) View() string {
	var b strings.Builder
	r := m.report

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("Session completed! Your score: %d", r.CoveredKeywords)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Total Keywords Covered: %d / %d (%.0f%%)", r.CoveredKeywords, r.TotalKeywords, r.CoverageRatio*100))
	if r.TimedOut > 0 {
		b.WriteString(tui.DimStyle.Render(fmt.Sprintf("  ·  %d timed out", r.TimedOut)))
	}
	b.WriteString("\n")
	b.WriteString(tui.TierStyle(r.Tier).Render(string(r.Tier)))
	b.WriteString("  ")
	b.WriteString(r.Tier.Message())
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	chartWidth := m.boxWidth() - 30
	if chartWidth > 40 {
		chartWidth = 40
	}
	if chart := ui.BarChart(report.ChartTitle, report.ChartPoints(r), chartWidth); chart != "" {
		b.WriteString(tui.ChartStyle.Render(strings.TrimRight(chart, "\n")))
		b.WriteString("\n\n")
	}

	switch {
	case m.exportErr != nil:
		b.WriteString(tui.ErrorStyle.Render("Export failed: " + m.exportErr.Error()))
		b.WriteString("\n")
	case m.exportPath != "":
		b.WriteString(tui.SuccessStyle.Render("Report saved to " + m.exportPath))
		b.WriteString("\n")
		if m.exportWarn != nil {
			b.WriteString(tui.WarningStyle.Render("Warning: " + m.exportWarn.Error()))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.help.View(tui.SummaryHelp{Keys: m.keys}))
	if m.ctrlCPending {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render("Press Ctrl+C again to exit"))
	}

	return tui.BoxStyle.Width(m.boxWidth()).Render(b.String())
}
