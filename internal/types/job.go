// Package types defines the shared data model for jobs, status records, and
// generated artifacts.
package types

import "time"

// JobStatus is the lifecycle state of a submitted job.
// The per-job state machine is queued → processing → {done | error};
// the two terminal states are absorbing.
type JobStatus string

// Job lifecycle states.
const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusDone       JobStatus = "done"
	StatusError      JobStatus = "error"
)

// Terminal reports whether s is an absorbing state.
func (s JobStatus) Terminal() bool {
	return s == StatusDone || s == StatusError
}

// Job is a single unit of work: one stored file to summarize.
// It is consumed exactly once by the worker loop and not retained afterwards.
type Job struct {
	ID            string `json:"id"`
	SavedLocation string `json:"saved_location"`
}

// JobResult holds the generated artifacts of a successfully completed job.
// ConceptMap is nil when graph generation degraded (see generation package).
type JobResult struct {
	Summary    string        `json:"summary"`
	ConceptMap *ConceptGraph `json:"concept_map"`
}

// StatusRecord is the polling-visible record of a job's progress. Fields are
// merged across updates, so values set by an earlier transition survive later
// partial updates.
type StatusRecord struct {
	Status     JobStatus  `json:"status"`
	EnqueuedAt *time.Time `json:"enqueued_at,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Result     *JobResult `json:"result,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// StatusPatch is a partial StatusRecord used with the registry's merge-upsert.
// Only non-zero fields are applied.
type StatusPatch struct {
	Status     JobStatus
	EnqueuedAt *time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
	Result     *JobResult
	Message    string
}
