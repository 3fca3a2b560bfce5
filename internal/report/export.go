package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CSVHeader lists the export columns in order.
var CSVHeader = []string{"Question", "Your Answer", "Feedback", "Sample Answer"}

// WriteCSV writes one header line and one line per question.
func WriteCSV(w io.Writer, r SessionReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range r.Rows {
		record := []string{row.Question, row.YourAnswer, row.Feedback, row.SampleAnswer}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// exportTimeLayout stamps export file names.
const exportTimeLayout = "20060102T150405Z"

// ExportFileName returns the file name used by Export.
func ExportFileName(r SessionReport, at time.Time) string {
	id := r.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return fmt.Sprintf("session_report_%s.csv", at.UTC().Format(exportTimeLayout))
	}
	return fmt.Sprintf("session_report_%s_%s.csv", at.UTC().Format(exportTimeLayout), id)
}

// Export writes the report as CSV into dir and returns the file path.
// Creates dir if it does not exist.
func Export(dir string, r SessionReport, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, ExportFileName(r, at))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := WriteCSV(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

// ParseExportFileName extracts the export time from a file name written by
// Export. ok is false for any other file.
func ParseExportFileName(name string) (at time.Time, ok bool) {
	rest, found := strings.CutPrefix(name, "session_report_")
	if !found || !strings.HasSuffix(rest, ".csv") || len(rest) < len(exportTimeLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(exportTimeLayout, rest[:len(exportTimeLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
