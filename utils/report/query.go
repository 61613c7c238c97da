package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// QueryOptions represents options for querying reports
type QueryOptions struct {
	Since  time.Time
	Limit  int
	Status string
}

// Stats represents wipe statistics
type Stats struct {
	Total        int
	Successful   int
	Failed       int
	Deleted      int
	BytesWritten int64
}

// LoadDir reads every report in dir, newest first. Files that do not
// decode as reports are skipped.
func LoadDir(dir string) ([]Report, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]Report, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}
		r, err := Unmarshal(data)
		if err != nil || r.ID == "" {
			continue
		}
		reports = append(reports, *r)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartedAt.After(reports[j].StartedAt)
	})
	return reports, nil
}

// Query filters reports, which must already be sorted newest first.
func Query(reports []Report, opts QueryOptions) []Report {
	var out []Report
	for _, r := range reports {
		if !opts.Since.IsZero() && r.StartedAt.Before(opts.Since) {
			continue
		}
		if opts.Status != "" && r.Status != opts.Status {
			continue
		}
		out = append(out, r)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out
}

// Summarize computes statistics over reports.
func Summarize(reports []Report) Stats {
	var s Stats
	for _, r := range reports {
		s.Total++
		switch r.Status {
		case StatusSuccess:
			s.Successful++
		case StatusFailure:
			s.Failed++
		}
		if r.Deleted {
			s.Deleted++
		}
		s.BytesWritten += r.BytesWritten
	}
	return s
}
