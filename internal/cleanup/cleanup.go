// Package cleanup implements pruning of old exported session reports.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rehearse-dev/rehearse/internal/report"
)

// ReportFile is an exported CSV report found on disk.
type ReportFile struct {
	Name       string
	ExportedAt time.Time
}

// ListReports returns the exported reports in dir, oldest first. Files not
// written by report.Export are ignored. A missing dir holds no reports.
func ListReports(dir string) ([]ReportFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading reports directory: %w", err)
	}

	var files []ReportFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		at, ok := report.ParseExportFileName(entry.Name())
		if !ok {
			continue
		}
		files = append(files, ReportFile{Name: entry.Name(), ExportedAt: at})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].ExportedAt.Equal(files[j].ExportedAt) {
			return files[i].Name < files[j].Name
		}
		return files[i].ExportedAt.Before(files[j].ExportedAt)
	})
	return files, nil
}

// PruneByAge removes reports exported before now minus maxAge.
// If dryRun is true, no files are deleted; the function only returns
// the names that would be removed. Returns the list of pruned file names.
func PruneByAge(dir string, maxAge time.Duration, now time.Time, dryRun bool) ([]string, error) {
	files, err := ListReports(dir)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-maxAge)
	var toRemove []string
	for _, f := range files {
		if f.ExportedAt.Before(cutoff) {
			toRemove = append(toRemove, f.Name)
		}
	}
	return remove(dir, toRemove, dryRun)
}

// PruneKeepRecent removes all reports except the most recent keep.
// If dryRun is true, no files are deleted. Returns the list of pruned
// file names.
func PruneKeepRecent(dir string, keep int, dryRun bool) ([]string, error) {
	files, err := ListReports(dir)
	if err != nil {
		return nil, err
	}
	if keep < 0 {
		keep = 0
	}
	if len(files) <= keep {
		return nil, nil
	}

	var toRemove []string
	for _, f := range files[:len(files)-keep] {
		toRemove = append(toRemove, f.Name)
	}
	return remove(dir, toRemove, dryRun)
}

func remove(dir string, names []string, dryRun bool) ([]string, error) {
	var pruned []string
	for _, name := range names {
		if !dryRun {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return pruned, fmt.Errorf("removing %s: %w", name, err)
			}
		}
		pruned = append(pruned, name)
	}
	return pruned, nil
}
