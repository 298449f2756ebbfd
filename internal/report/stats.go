package report

import (
	"sort"
	"time"

	"github.com/jonathan/argo-timeline/internal/argo"
)

// DurationStats summarizes run durations. It is only ever computed over runs
// with a defined duration; open-ended runs contribute nothing here.
type DurationStats struct {
	Mean    time.Duration
	Median  time.Duration
	Min     time.Duration
	Max     time.Duration
	Samples int
}

// SummaryStats is derived from a filtered run set. Durations is nil when no
// run in the set has a defined duration; that is the explicit "no data"
// result, distinct from zero.
type SummaryStats struct {
	Count       int
	UniqueNames int
	Durations   *DurationStats
}

// Summarize computes summary statistics over one fixed snapshot of runs.
// Open-ended runs count toward Count and UniqueNames but are excluded from
// duration statistics.
func Summarize(runs []argo.WorkflowRun) SummaryStats {
	stats := SummaryStats{Count: len(runs)}

	names := make(map[string]struct{}, len(runs))
	var durations []time.Duration
	for _, run := range runs {
		names[run.Name] = struct{}{}
		if d, ok := run.Duration(); ok {
			durations = append(durations, d)
		}
	}
	stats.UniqueNames = len(names)

	if len(durations) == 0 {
		return stats
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	stats.Durations = &DurationStats{
		Mean:    sum / time.Duration(len(sorted)),
		Median:  median(sorted),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Samples: len(sorted),
	}
	return stats
}

// median expects a sorted, non-empty slice. For even-sized input it averages
// the two middle values.
func median(sorted []time.Duration) time.Duration {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// TopLongest returns up to n runs with the largest durations, descending.
// The sort is stable: runs with equal durations keep their original order.
// Open-ended runs are excluded.
func TopLongest(runs []argo.WorkflowRun, n int) []argo.WorkflowRun {
	closed := make([]argo.WorkflowRun, 0, len(runs))
	for _, run := range runs {
		if _, ok := run.Duration(); ok {
			closed = append(closed, run)
		}
	}

	sort.SliceStable(closed, func(i, j int) bool {
		di, _ := closed[i].Duration()
		dj, _ := closed[j].Duration()
		return di > dj
	})

	if n < len(closed) {
		closed = closed[:n]
	}
	return closed
}
