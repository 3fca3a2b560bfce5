package bank

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadYAML verifies YAML banks load and normalize properly.
func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yaml")
	payload := `version: 1
questions:
  - question: "  What are your strengths? "
    keywords: [" teamwork ", "Teamwork", "communication"]
    sample_answer: "  Teamwork and communication. "
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", b.Len())
	}
	q := b.Questions[0]
	if q.ID != "q1" {
		t.Fatalf("expected default id q1, got %q", q.ID)
	}
	if q.Text != "What are your strengths?" {
		t.Fatalf("expected trimmed question, got %q", q.Text)
	}
	if len(q.Keywords) != 2 || q.Keywords[0] != "teamwork" || q.Keywords[1] != "communication" {
		t.Fatalf("unexpected keywords: %+v", q.Keywords)
	}
	if q.SampleAnswer != "Teamwork and communication." {
		t.Fatalf("expected trimmed sample answer, got %q", q.SampleAnswer)
	}
}

// TestLoadJSON verifies JSON banks are parsed and validated.
func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	payload := `{
  "version": 1,
  "questions": [
    {"id": "motivation", "question": "What motivates you?", "keywords": ["learning", "impact"], "sample_answer": "Learning."}
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if b.Len() != 1 || b.Questions[0].ID != "motivation" {
		t.Fatalf("unexpected bank: %+v", b.Questions)
	}
	if b.TotalKeywords() != 2 {
		t.Fatalf("expected 2 keywords, got %d", b.TotalKeywords())
	}
}

// TestLoadValidationErrors verifies invalid banks report every issue.
func TestLoadValidationErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yaml")
	payload := `version: 2
questions:
  - id: dup
    question: "Q1"
    keywords: ["a"]
  - id: dup
    question: ""
    keywords: []
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	message := err.Error()
	for _, want := range []string{"version", "duplicate id", "questions[1].question", "questions[1].keywords"} {
		if !strings.Contains(message, want) {
			t.Fatalf("expected %q in error, got %q", want, message)
		}
	}
}

// TestLoadRejectsUnknownFields verifies typos in bank files are caught.
func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nquestions:\n  - question: Q\n    keyword: [a]\n"), "bank.yaml")
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestLoadMissingFile verifies read failures are wrapped.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

// TestDefaultBank verifies the embedded bank matches the practice set.
func TestDefaultBank(t *testing.T) {
	b := Default()
	if b.Len() != 10 {
		t.Fatalf("expected 10 questions, got %d", b.Len())
	}
	if b.TotalKeywords() != 40 {
		t.Fatalf("expected 40 keywords, got %d", b.TotalKeywords())
	}
	q, ok := b.At(1)
	if !ok || q.Text != "What are your strengths?" {
		t.Fatalf("unexpected second question: %+v", q)
	}
	if _, ok := b.At(10); ok {
		t.Fatalf("expected At(10) to be out of range")
	}
}

// TestLoadOrDefault verifies an empty path selects the embedded bank.
func TestLoadOrDefault(t *testing.T) {
	b, err := LoadOrDefault("  ")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if b.Len() != Default().Len() {
		t.Fatalf("expected default bank")
	}
}

// TestMarshalRoundTrip verifies the bank written by init can be read back.
func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := Parse(data, "questions.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.TotalKeywords() != 40 {
		t.Fatalf("expected 40 keywords after round trip, got %d", b.TotalKeywords())
	}
}

// TestNilBank verifies accessors tolerate a nil bank.
func TestNilBank(t *testing.T) {
	var b *Bank
	if b.Len() != 0 || b.TotalKeywords() != 0 {
		t.Fatalf("expected empty nil bank")
	}
}

func TestLookup(t *testing.T) {
	b := Default()

	tests := []struct {
		ref     string
		wantIdx int
		wantID  string
		wantErr bool
	}{
		{"1", 0, "about-yourself", false},
		{"10", 9, "challenge", false},
		{"stress", 7, "stress", false},
		{"0", 0, "", true},
		{"11", 0, "", true},
		{"nope", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			idx, q, err := b.Lookup(tt.ref)
			if tt.wantErr {
				if !errors.Is(err, ErrNoQuestion) {
					t.Errorf("Lookup(%q) err = %v, want ErrNoQuestion", tt.ref, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.ref, err)
			}
			if idx != tt.wantIdx || q.ID != tt.wantID {
				t.Errorf("Lookup(%q) = %d, %q; want %d, %q", tt.ref, idx, q.ID, tt.wantIdx, tt.wantID)
			}
		})
	}
}

func TestAtReturnsCopy(t *testing.T) {
	b := Default()
	q, ok := b.At(0)
	if !ok {
		t.Fatal("At(0) not found")
	}
	want := b.Questions[0].Keywords[0]
	q.Keywords[0] = "changed"
	if got := b.Questions[0].Keywords[0]; got != want {
		t.Errorf("bank keyword = %q after mutating At result, want %q", got, want)
	}

	_, q, _ = b.Lookup("1")
	q.Keywords[0] = "changed"
	if got := b.Questions[0].Keywords[0]; got != want {
		t.Errorf("bank keyword = %q after mutating Lookup result, want %q", got, want)
	}
}
