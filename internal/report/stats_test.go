package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/argo-timeline/internal/argo"
)

func closedRun(name, runID string, start time.Time, duration time.Duration, phase argo.Phase) argo.WorkflowRun {
	end := start.Add(duration)
	return argo.WorkflowRun{Name: name, RunID: runID, Phase: phase, StartedAt: start, FinishedAt: &end}
}

func TestSummarizeMixedRuns(t *testing.T) {
	// Three synthetic runs: two completed, one still running.
	base := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	runs := []argo.WorkflowRun{
		closedRun("wf-a", "wf-a-1", base, 100*time.Second, argo.PhaseSucceeded),
		closedRun("wf-b", "wf-b-1", base.Add(10*time.Second), 60*time.Second, argo.PhaseFailed),
		{Name: "wf-c", RunID: "wf-c-1", Phase: argo.PhaseRunning, StartedAt: base.Add(20 * time.Second)},
	}

	stats := Summarize(runs)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 3, stats.UniqueNames)

	require.NotNil(t, stats.Durations)
	assert.Equal(t, 2, stats.Durations.Samples, "open-ended run is excluded from duration stats")
	assert.Equal(t, 80*time.Second, stats.Durations.Mean)
	assert.Equal(t, 80*time.Second, stats.Durations.Median)
	assert.Equal(t, 60*time.Second, stats.Durations.Min)
	assert.Equal(t, 100*time.Second, stats.Durations.Max)
}

func TestSummarizeCountsDuplicateNamesOnce(t *testing.T) {
	base := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	runs := []argo.WorkflowRun{
		closedRun("wf-a", "wf-a-1", base, 10*time.Second, argo.PhaseSucceeded),
		closedRun("wf-a", "wf-a-2", base, 20*time.Second, argo.PhaseSucceeded),
		closedRun("wf-a", "wf-a-3", base, 30*time.Second, argo.PhaseSucceeded),
	}

	stats := Summarize(runs)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 1, stats.UniqueNames)
}

func TestSummarizeAllOpenEndedYieldsNoData(t *testing.T) {
	base := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	runs := []argo.WorkflowRun{
		{Name: "wf-a", RunID: "wf-a-1", Phase: argo.PhaseRunning, StartedAt: base},
		{Name: "wf-b", RunID: "wf-b-1", Phase: argo.PhasePending, StartedAt: base},
	}

	stats := Summarize(runs)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 2, stats.UniqueNames)
	assert.Nil(t, stats.Durations, "no completed runs must yield an explicit no-data result, not zeros")
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0, stats.UniqueNames)
	assert.Nil(t, stats.Durations)
}

func TestMedianEvenAndOdd(t *testing.T) {
	base := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	runs := []argo.WorkflowRun{
		closedRun("a", "a-1", base, 10*time.Second, argo.PhaseSucceeded),
		closedRun("b", "b-1", base, 30*time.Second, argo.PhaseSucceeded),
		closedRun("c", "c-1", base, 100*time.Second, argo.PhaseSucceeded),
	}

	stats := Summarize(runs)
	require.NotNil(t, stats.Durations)
	assert.Equal(t, 30*time.Second, stats.Durations.Median, "odd count takes the middle value")

	stats = Summarize(runs[:2])
	require.NotNil(t, stats.Durations)
	assert.Equal(t, 20*time.Second, stats.Durations.Median, "even count averages the middle values")
}

func TestTopLongestIsStable(t *testing.T) {
	base := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	runs := []argo.WorkflowRun{
		closedRun("a", "a-1", base, 50*time.Second, argo.PhaseSucceeded),
		closedRun("b", "b-1", base, 90*time.Second, argo.PhaseSucceeded),
		closedRun("c", "c-1", base, 50*time.Second, argo.PhaseSucceeded),
		{Name: "d", RunID: "d-1", Phase: argo.PhaseRunning, StartedAt: base},
		closedRun("e", "e-1", base, 90*time.Second, argo.PhaseSucceeded),
	}

	top := TopLongest(runs, 10)
	require.Len(t, top, 4, "open-ended runs are excluded")

	var ids []string
	for _, run := range top {
		ids = append(ids, run.RunID)
	}
	assert.Equal(t, []string{"b-1", "e-1", "a-1", "c-1"}, ids, "ties keep original fetch order")
}

func TestTopLongestTruncates(t *testing.T) {
	base := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	runs := []argo.WorkflowRun{
		closedRun("a", "a-1", base, 10*time.Second, argo.PhaseSucceeded),
		closedRun("b", "b-1", base, 20*time.Second, argo.PhaseSucceeded),
		closedRun("c", "c-1", base, 30*time.Second, argo.PhaseSucceeded),
	}

	top := TopLongest(runs, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "c-1", top[0].RunID)
	assert.Equal(t, "b-1", top[1].RunID)
}
