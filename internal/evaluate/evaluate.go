// Package evaluate scores free-text answers by keyword coverage.
//
// Matching is a case-insensitive substring check: a keyword is covered when
// its lowercase form appears anywhere in the lowercased answer. Multi-word
// keywords must appear as the exact contiguous phrase. There is no stemming
// or semantic matching, and scores depend on that staying true.
package evaluate

import "strings"

// Status marks whether a keyword was found in an answer.
type Status int

const (
	Missing Status = iota
	Covered
)

// String returns the display label used in feedback and exports.
func (s Status) String() string {
	if s == Covered {
		return "Covered"
	}
	return "Missing"
}

// Entry is the result for a single keyword.
type Entry struct {
	Keyword string
	Status  Status
}

// Label renders the entry as "Covered: keyword" or "Missing: keyword".
func (e Entry) Label() string {
	return e.Status.String() + ": " + e.Keyword
}

// Feedback holds one entry per keyword, in keyword order.
type Feedback []Entry

// Evaluate checks each keyword against the answer. It has no side effects.
func Evaluate(answer string, keywords []string) Feedback {
	haystack := strings.ToLower(answer)
	feedback := make(Feedback, 0, len(keywords))
	for _, keyword := range keywords {
		status := Missing
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			status = Covered
		}
		feedback = append(feedback, Entry{Keyword: keyword, Status: status})
	}
	return feedback
}

// CoveredCount returns the number of covered keywords.
func (f Feedback) CoveredCount() int {
	n := 0
	for _, e := range f {
		if e.Status == Covered {
			n++
		}
	}
	return n
}

// Covered lists the covered keywords in order.
func (f Feedback) Covered() []string {
	return f.filter(Covered)
}

// Missing lists the missing keywords in order.
func (f Feedback) Missing() []string {
	return f.filter(Missing)
}

func (f Feedback) filter(status Status) []string {
	var out []string
	for _, e := range f {
		if e.Status == status {
			out = append(out, e.Keyword)
		}
	}
	return out
}

// Labels returns the per-keyword labels in order.
func (f Feedback) Labels() []string {
	labels := make([]string, len(f))
	for i, e := range f {
		labels[i] = e.Label()
	}
	return labels
}

// String joins the labels with ", ", the form used in the report's
// Feedback column.
func (f Feedback) String() string {
	return strings.Join(f.Labels(), ", ")
}

// Clone returns a copy that shares no backing array with f.
func (f Feedback) Clone() Feedback {
	if f == nil {
		return nil
	}
	out := make(Feedback, len(f))
	copy(out, f)
	return out
}
