// Package testutil provides test helper utilities for rehearse tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rehearse-dev/rehearse/internal/bank"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// SmallBankYAML is a three-question bank with 2+3+1 keywords.
const SmallBankYAML = `version: 1
questions:
  - id: strengths
    question: "What are your strengths?"
    keywords: ["teamwork", "communication"]
    sample_answer: "Teamwork and communication."
  - id: weaknesses
    question: "What are your weaknesses?"
    keywords: ["perfectionist", "time management", "improvement"]
    sample_answer: "I am a perfectionist working on time management."
  - id: stress
    question: "How do you handle stress?"
    keywords: ["calm"]
    sample_answer: "I stay calm."
`

// SmallBank returns the parsed SmallBankYAML.
func SmallBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.Parse([]byte(SmallBankYAML), "small.yaml")
	if err != nil {
		t.Fatalf("parsing small bank: %v", err)
	}
	return b
}

// ProjectWithBank returns file contents for a project holding a custom bank
// and a config pointing at it.
func ProjectWithBank() map[string]string {
	return map[string]string{
		".rehearse/questions.yaml": SmallBankYAML,
		".rehearse/config.yaml": `version: 1
session:
  time_limit: 30
bank:
  path: .rehearse/questions.yaml
`,
	}
}
