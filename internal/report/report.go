// Package report aggregates a completed practice session into coverage
// statistics, a performance tier, and export rows.
package report

import (
	"fmt"
	"time"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/evaluate"
)

// Tier buckets the overall coverage ratio.
type Tier string

const (
	TierExcellent     Tier = "Excellent"
	TierGood          Tier = "Good"
	TierNeedsPractice Tier = "NeedsPractice"
)

// Tier thresholds on the coverage ratio.
const (
	ExcellentThreshold = 0.8
	GoodThreshold      = 0.5
)

// Message returns the guidance shown next to the tier.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent! You covered most of the important points."
	case TierGood:
		return "Good. Some points are missing, try to improve."
	default:
		return "You need more practice. Focus on missing keywords."
	}
}

// ClassifyRatio maps a coverage ratio to a tier.
func ClassifyRatio(ratio float64) Tier {
	switch {
	case ratio >= ExcellentThreshold:
		return TierExcellent
	case ratio >= GoodThreshold:
		return TierGood
	default:
		return TierNeedsPractice
	}
}

// Answered is one finalized question as seen by the aggregator.
type Answered struct {
	Question bank.Question
	Answer   string
	Feedback evaluate.Feedback
	TimedOut bool
	Elapsed  time.Duration
}

// Row is the export view of one question. Field order matches the CSV
// columns.
type Row struct {
	Question     string
	YourAnswer   string
	Feedback     string
	SampleAnswer string
}

// Point is one bar of the per-question coverage chart.
type Point struct {
	Label   string
	Covered int
	Total   int
}

// SessionReport holds the aggregated statistics for a session. Answered
// below Questions marks a session that ended early.
type SessionReport struct {
	SessionID       string
	Answered        int
	Questions       int
	TotalKeywords   int
	CoveredKeywords int
	CoverageRatio   float64
	Tier            Tier
	TimedOut        int
	Duration        time.Duration
	Rows            []Row
	Series          []Point
}

// Complete reports whether every question in the bank was answered.
func (r SessionReport) Complete() bool {
	return r.Answered >= r.Questions
}

// Aggregate computes the session report. TotalKeywords always counts the
// whole bank, so an aborted session is scored against every question.
func Aggregate(answers []Answered, b *bank.Bank) SessionReport {
	r := SessionReport{
		Answered:      len(answers),
		Questions:     b.Len(),
		TotalKeywords: b.TotalKeywords(),
		Rows:          make([]Row, 0, len(answers)),
		Series:        make([]Point, 0, len(answers)),
	}

	for i, a := range answers {
		covered := a.Feedback.CoveredCount()
		r.CoveredKeywords += covered
		if a.TimedOut {
			r.TimedOut++
		}
		r.Duration += a.Elapsed

		r.Rows = append(r.Rows, Row{
			Question:     a.Question.Text,
			YourAnswer:   a.Answer,
			Feedback:     a.Feedback.String(),
			SampleAnswer: a.Question.SampleAnswer,
		})
		r.Series = append(r.Series, Point{
			Label:   fmt.Sprintf("Q%d", i+1),
			Covered: covered,
			Total:   len(a.Feedback),
		})
	}

	if r.TotalKeywords > 0 {
		r.CoverageRatio = float64(r.CoveredKeywords) / float64(r.TotalKeywords)
	}
	r.Tier = ClassifyRatio(r.CoverageRatio)

	return r
}
