package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/study-summarizer/internal/types"
)

// ProcessFunc runs one job from claimed to finished: extraction, the content
// guard, and generation. It is the containment boundary for every per-job
// failure.
type ProcessFunc func(ctx context.Context, job types.Job) (*types.JobResult, error)

// workerState is the coordinator's single-flight guard.
type workerState int

const (
	stateIdle workerState = iota
	stateDraining
)

// fallbackErrorMessage is used when a per-job failure carries no message.
const fallbackErrorMessage = "processing failed"

// Coordinator owns the pending FIFO queue and guarantees that submitted jobs
// are processed exactly once each, in submission order, with at most one job
// active at any instant. A drain that finds more pending work schedules the
// next attempt on a fresh goroutine, never recursively, so a long backlog
// cannot grow the call stack.
type Coordinator struct {
	registry   *Registry
	process    ProcessFunc
	logger     *slog.Logger
	jobTimeout time.Duration

	mu      sync.Mutex
	pending []types.Job
	state   workerState
}

// NewCoordinator creates a coordinator draining into process. jobTimeout
// bounds each job's processing; zero disables the bound.
func NewCoordinator(registry *Registry, process ProcessFunc, jobTimeout time.Duration, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		registry:   registry,
		process:    process,
		logger:     logger,
		jobTimeout: jobTimeout,
	}
}

// Submit accepts a job, records it as queued, and triggers a drain attempt.
// Fire-and-forget: the submitter learns the outcome only by polling. The
// returned id is the job's (generated when the caller supplied none).
func (c *Coordinator) Submit(job types.Job) string {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	c.registry.Upsert(job.ID, types.StatusPatch{
		Status:     types.StatusQueued,
		EnqueuedAt: &now,
	})

	c.mu.Lock()
	c.pending = append(c.pending, job)
	depth := len(c.pending)
	c.mu.Unlock()

	c.logger.Info("job submitted", "job_id", job.ID, "queue_depth", depth)
	go c.drain()
	return job.ID
}

// GetStatus returns the current status record for a job id.
func (c *Coordinator) GetStatus(id string) (types.StatusRecord, bool) {
	return c.registry.Get(id)
}

// drain claims and fully processes the head of the queue unless a worker is
// already active, in which case it is a no-op. The initial processing record
// is written at claim time, before extraction begins.
func (c *Coordinator) drain() {
	c.mu.Lock()
	if c.state == stateDraining || len(c.pending) == 0 {
		c.mu.Unlock()
		return
	}
	job := c.pending[0]
	c.pending = c.pending[1:]
	c.state = stateDraining
	c.mu.Unlock()

	started := time.Now().UTC()
	c.registry.Upsert(job.ID, types.StatusPatch{
		Status:    types.StatusProcessing,
		StartedAt: &started,
	})
	c.logger.Info("job claimed", "job_id", job.ID, "saved_location", job.SavedLocation)

	c.runJob(job)

	c.mu.Lock()
	c.state = stateIdle
	more := len(c.pending) > 0
	c.mu.Unlock()
	if more {
		go c.drain()
	}
}

// runJob drives one claimed job to a terminal status. Errors and panics stop
// at this boundary; the worker loop never stops draining because a job failed.
func (c *Coordinator) runJob(job types.Job) {
	ctx := context.Background()
	if c.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.jobTimeout)
		defer cancel()
	}

	result, err := c.safeProcess(ctx, job)
	finished := time.Now().UTC()
	if err != nil {
		message := err.Error()
		if message == "" {
			message = fallbackErrorMessage
		}
		c.registry.Upsert(job.ID, types.StatusPatch{
			Status:     types.StatusError,
			FinishedAt: &finished,
			Message:    message,
		})
		c.logger.Error("job failed", "job_id", job.ID, "error", err)
		return
	}

	c.registry.Upsert(job.ID, types.StatusPatch{
		Status:     types.StatusDone,
		FinishedAt: &finished,
		Result:     result,
	})
	c.logger.Info("job done", "job_id", job.ID, "has_concept_map", result != nil && result.ConceptMap != nil)
}

// safeProcess invokes the processing function with panic containment, so a
// panicking capability is recorded like any other per-job failure.
func (c *Coordinator) safeProcess(ctx context.Context, job types.Job) (result *types.JobResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("panic while processing job: %v", r)
		}
	}()
	return c.process(ctx, job)
}
