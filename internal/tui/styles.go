package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rehearse-dev/rehearse/internal/report"
)

// Color constants.
const (
	primaryColor   = "#7C3AED" // Purple
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// QuestionStyle renders the current question.
	QuestionStyle = lipgloss.NewStyle().
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// ChartStyle colors the keyword coverage bars.
	ChartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor))
)

// Keyword status icons (pre-rendered strings).
var (
	KeywordCovered = SuccessStyle.Render("✓")
	KeywordMissing = ErrorStyle.Render("✗")
)

// TierStyle returns the style used for a performance tier.
func TierStyle(t report.Tier) lipgloss.Style {
	switch t {
	case report.TierExcellent:
		return SuccessStyle.Bold(true)
	case report.TierGood:
		return WarningStyle.Bold(true)
	default:
		return ErrorStyle.Bold(true)
	}
}

// CountdownStyle colors the remaining seconds once time runs low.
func CountdownStyle(remaining, limit int) lipgloss.Style {
	switch {
	case limit > 0 && remaining*4 <= limit:
		return ErrorStyle
	case limit > 0 && remaining*2 <= limit:
		return WarningStyle
	default:
		return DimStyle
	}
}
