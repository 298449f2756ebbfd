// Package argo provides a read-only client for the Argo Workflows list API
// and the mapping from its JSON responses into workflow run records.
package argo

import (
	"time"
)

// Phase is the execution status of a workflow run.
type Phase string

const (
	PhaseSucceeded Phase = "Succeeded"
	PhaseFailed    Phase = "Failed"
	PhaseRunning   Phase = "Running"
	PhasePending   Phase = "Pending"
	PhaseUnknown   Phase = "Unknown"
)

// ParsePhase converts a user-supplied phase string into a Phase.
// Only the four selectable phases are accepted; matching is exact.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case PhaseSucceeded, PhaseFailed, PhaseRunning, PhasePending:
		return Phase(s), true
	}
	return "", false
}

// phaseFromStatus maps an API status string to a Phase. Anything the API
// reports outside the known set becomes PhaseUnknown rather than an error.
func phaseFromStatus(s string) Phase {
	switch Phase(s) {
	case PhaseSucceeded, PhaseFailed, PhaseRunning, PhasePending:
		return Phase(s)
	}
	return PhaseUnknown
}

// WorkflowRun is one executed instance of a workflow template.
type WorkflowRun struct {
	// Name is the template identity, shared by every run of the same
	// workflow. Derived from the run id by stripping the generated suffix.
	Name string
	// RunID is the unique instance id (metadata.name upstream).
	RunID string
	Phase Phase
	// StartedAt is always set; items without a start timestamp are skipped
	// during parsing because they cannot be placed on a timeline.
	StartedAt time.Time
	// FinishedAt is nil while the run is still Running or Pending.
	FinishedAt *time.Time

	// Optional metadata surfaced in the report's hover detail.
	OwnerKind      string
	OwnerName      string
	ServiceAccount string
}

// Duration returns the elapsed time between start and end. The second return
// value is false for open-ended runs, whose duration is undefined.
func (r WorkflowRun) Duration() (time.Duration, bool) {
	if r.FinishedAt == nil {
		return 0, false
	}
	return r.FinishedAt.Sub(r.StartedAt), true
}
