// Package bank loads and validates interview question banks.
package bank

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoQuestion is returned by Lookup when the reference matches nothing.
var ErrNoQuestion = errors.New("no such question")

// Bank is an ordered list of interview questions. A question's identity is
// its position in the bank.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single interview prompt with the keywords a good answer
// is expected to mention.
type Question struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Text         string   `json:"question" yaml:"question"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
	SampleAnswer string   `json:"sample_answer" yaml:"sample_answer"`
}

// Clone returns a copy of q that shares no slices with it.
func (q Question) Clone() Question {
	q.Keywords = append([]string(nil), q.Keywords...)
	return q
}

// Len returns the number of questions in the bank. A nil bank is empty.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Questions)
}

// At returns a copy of the question at index i.
func (b *Bank) At(i int) (Question, bool) {
	if i < 0 || i >= b.Len() {
		return Question{}, false
	}
	return b.Questions[i].Clone(), true
}

// TotalKeywords sums keyword-set sizes across every question in the bank.
func (b *Bank) TotalKeywords() int {
	total := 0
	for i := 0; i < b.Len(); i++ {
		total += len(b.Questions[i].Keywords)
	}
	return total
}

// Lookup finds a question by its 1-based number or its ID and returns its
// zero-based index.
func (b *Bank) Lookup(ref string) (int, Question, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if q, ok := b.At(n - 1); ok {
			return n - 1, q, nil
		}
		return 0, Question{}, fmt.Errorf("%w: %d (bank has %d)", ErrNoQuestion, n, b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		if b.Questions[i].ID == ref {
			return i, b.Questions[i].Clone(), nil
		}
	}
	return 0, Question{}, fmt.Errorf("%w: %q", ErrNoQuestion, ref)
}
