package report

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/jonathan/argo-timeline/internal/argo"
)

// dateLayout is the accepted format for the --date flag.
const dateLayout = "2006-01-02"

// ReportFilter holds the immutable query parameters for one report. The date
// window it defines is half-open: [Date 00:00, Date+Days 00:00).
type ReportFilter struct {
	Date  time.Time
	Days  int
	Phase argo.Phase
	// Pattern is the optional workflow-name filter. Matching is unanchored
	// and case-sensitive. nil means no name filtering.
	Pattern *regexp.Regexp
	Limit   int
}

// NewFilter validates user input and builds a ReportFilter. An empty dateStr
// selects today. Any invalid value returns a *ConfigError.
func NewFilter(dateStr string, days int, phaseStr, patternStr string, limit int) (*ReportFilter, error) {
	var date time.Time
	if dateStr == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	} else {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, &ConfigError{Field: "date", Value: dateStr, Cause: fmt.Errorf("expected YYYY-MM-DD")}
		}
		date = parsed
	}

	if days < 1 {
		return nil, &ConfigError{Field: "days", Value: fmt.Sprintf("%d", days), Cause: fmt.Errorf("must be at least 1")}
	}

	phase, ok := argo.ParsePhase(phaseStr)
	if !ok {
		return nil, &ConfigError{Field: "phase", Value: phaseStr, Cause: fmt.Errorf("expected one of Succeeded, Failed, Running, Pending")}
	}

	if limit < 1 {
		return nil, &ConfigError{Field: "limit", Value: fmt.Sprintf("%d", limit), Cause: fmt.Errorf("must be at least 1")}
	}

	var pattern *regexp.Regexp
	if patternStr != "" {
		compiled, err := regexp.Compile(patternStr)
		if err != nil {
			return nil, &ConfigError{Field: "workflow pattern", Value: patternStr, Cause: err}
		}
		pattern = compiled
	}

	return &ReportFilter{
		Date:    date,
		Days:    days,
		Phase:   phase,
		Pattern: pattern,
		Limit:   limit,
	}, nil
}

// Window returns the half-open time window [start, end) the filter selects.
func (f *ReportFilter) Window() (start, end time.Time) {
	return f.Date, f.Date.AddDate(0, 0, f.Days)
}

// Apply returns the runs whose start timestamp falls inside the window and
// whose template name matches the optional pattern, sorted ascending by start
// time. Runs starting exactly at the window end are excluded.
func (f *ReportFilter) Apply(runs []argo.WorkflowRun) []argo.WorkflowRun {
	start, end := f.Window()

	kept := make([]argo.WorkflowRun, 0, len(runs))
	for _, run := range runs {
		if run.StartedAt.Before(start) || !run.StartedAt.Before(end) {
			continue
		}
		if f.Pattern != nil && !f.Pattern.MatchString(run.Name) {
			continue
		}
		kept = append(kept, run)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].StartedAt.Before(kept[j].StartedAt)
	})
	return kept
}
