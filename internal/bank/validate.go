package bank

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace, fills default IDs, de-duplicates keywords
// case-insensitively (first spelling wins), and validates the bank.
func Normalize(b Bank) (Bank, error) {
	collector := &issueCollector{}
	if b.Version == 0 {
		collector.add("version", "is required")
	} else if b.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", b.Version))
	}
	if len(b.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	questions := make([]Question, len(b.Questions))
	for i, q := range b.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
		} else {
			seenIDs[q.ID] = struct{}{}
		}

		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			collector.add(prefix+".question", "is required")
		}
		q.SampleAnswer = strings.TrimSpace(q.SampleAnswer)

		keywords := make([]string, 0, len(q.Keywords))
		seenKeywords := map[string]struct{}{}
		for k, keyword := range q.Keywords {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				collector.add(fmt.Sprintf("%s.keywords[%d]", prefix, k), "is required")
				continue
			}
			folded := strings.ToLower(keyword)
			if _, dup := seenKeywords[folded]; dup {
				continue
			}
			seenKeywords[folded] = struct{}{}
			keywords = append(keywords, keyword)
		}
		if len(q.Keywords) == 0 {
			collector.add(prefix+".keywords", "must include at least one entry")
		}
		q.Keywords = keywords
		questions[i] = q
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	b.Questions = questions
	return b, nil
}
