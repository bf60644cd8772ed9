// Package jobs implements the job lifecycle engine: the in-memory status
// registry, the FIFO queue with its single-flight worker loop, and the
// per-job processing boundary.
package jobs

import (
	"sync"

	"github.com/jonathan/study-summarizer/internal/types"
)

// Registry is the process-lifetime mapping from job id to its status record.
// It is the single source of truth consumers poll. Records are merge-updated
// and never deleted.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*types.StatusRecord
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*types.StatusRecord)}
}

// Upsert merges the non-zero fields of patch into the record for id, creating
// the record if absent. This is the registry's only mutation primitive, so a
// later partial update can never erase fields set by an earlier transition.
func (r *Registry) Upsert(id string, patch types.StatusPatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		rec = &types.StatusRecord{}
		r.records[id] = rec
	}

	if patch.Status != "" {
		rec.Status = patch.Status
	}
	if patch.EnqueuedAt != nil {
		rec.EnqueuedAt = patch.EnqueuedAt
	}
	if patch.StartedAt != nil {
		rec.StartedAt = patch.StartedAt
	}
	if patch.FinishedAt != nil {
		rec.FinishedAt = patch.FinishedAt
	}
	if patch.Result != nil {
		rec.Result = patch.Result
	}
	if patch.Message != "" {
		rec.Message = patch.Message
	}
}

// Get returns a copy of the record for id. The second result is false when the
// job is unknown. Returning a copy means a poller can never observe a record
// mid-merge.
func (r *Registry) Get(id string) (types.StatusRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return types.StatusRecord{}, false
	}
	return *rec, true
}
