package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/study-summarizer/internal/types"
)

const eventually = 5 * time.Second

func waitForStatus(t *testing.T, c *Coordinator, id string, want types.JobStatus) types.StatusRecord {
	t.Helper()
	var rec types.StatusRecord
	require.Eventually(t, func() bool {
		r, ok := c.GetStatus(id)
		if !ok {
			return false
		}
		rec = r
		return r.Status == want
	}, eventually, 5*time.Millisecond)
	return rec
}

func TestCoordinator_QueuedIsVisibleImmediately(t *testing.T) {
	release := make(chan struct{})
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		<-release
		return &types.JobResult{Summary: "s"}, nil
	}, 0, nil)
	defer close(release)

	id := c.Submit(types.Job{SavedLocation: "docs/a.pdf"})

	rec, ok := c.GetStatus(id)
	require.True(t, ok, "an accepted job must be pollable before it is claimed")
	assert.Contains(t, []types.JobStatus{types.StatusQueued, types.StatusProcessing}, rec.Status)
	assert.NotNil(t, rec.EnqueuedAt)
}

func TestCoordinator_SuccessfulJobReachesDone(t *testing.T) {
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		return &types.JobResult{
			Summary:    "a study summary",
			ConceptMap: &types.ConceptGraph{Nodes: []types.ConceptNode{{ID: "a", Label: "A"}}},
		}, nil
	}, 0, nil)

	id := c.Submit(types.Job{ID: "fixed-id", SavedLocation: "docs/a.pdf"})
	assert.Equal(t, "fixed-id", id)

	rec := waitForStatus(t, c, id, types.StatusDone)
	require.NotNil(t, rec.Result)
	assert.Equal(t, "a study summary", rec.Result.Summary)
	require.NotNil(t, rec.Result.ConceptMap)
	assert.NotNil(t, rec.StartedAt)
	assert.NotNil(t, rec.FinishedAt)
	assert.Empty(t, rec.Message)
}

func TestCoordinator_FailedJobReachesError(t *testing.T) {
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		return nil, errors.New("upstream exploded")
	}, 0, nil)

	id := c.Submit(types.Job{SavedLocation: "docs/a.pdf"})

	rec := waitForStatus(t, c, id, types.StatusError)
	assert.Equal(t, "upstream exploded", rec.Message)
	assert.Nil(t, rec.Result)
	assert.NotNil(t, rec.StartedAt, "claim timestamp must survive the error merge")
}

func TestCoordinator_PanicIsContained(t *testing.T) {
	calls := 0
	var mu sync.Mutex
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			panic("capability blew up")
		}
		return &types.JobResult{Summary: "fine"}, nil
	}, 0, nil)

	bad := c.Submit(types.Job{SavedLocation: "docs/bad.pdf"})
	good := c.Submit(types.Job{SavedLocation: "docs/good.pdf"})

	rec := waitForStatus(t, c, bad, types.StatusError)
	assert.Contains(t, rec.Message, "capability blew up")

	// The loop keeps draining after a panic.
	waitForStatus(t, c, good, types.StatusDone)
}

func TestCoordinator_FIFOAndSingleFlight(t *testing.T) {
	type activeCount struct {
		mu      sync.Mutex
		current int
		max     int
		order   []string
	}
	var ac activeCount

	release := make(chan struct{})
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		ac.mu.Lock()
		ac.current++
		if ac.current > ac.max {
			ac.max = ac.current
		}
		ac.order = append(ac.order, job.ID)
		ac.mu.Unlock()

		<-release

		ac.mu.Lock()
		ac.current--
		ac.mu.Unlock()
		return &types.JobResult{Summary: "s"}, nil
	}, 0, nil)

	a := c.Submit(types.Job{ID: "A", SavedLocation: "a"})
	b := c.Submit(types.Job{ID: "B", SavedLocation: "b"})
	d := c.Submit(types.Job{ID: "C", SavedLocation: "c"})

	// A is claimed; B and C must not start while A is in flight.
	waitForStatus(t, c, a, types.StatusProcessing)
	recB, _ := c.GetStatus(b)
	recC, _ := c.GetStatus(d)
	assert.Equal(t, types.StatusQueued, recB.Status)
	assert.Equal(t, types.StatusQueued, recC.Status)

	close(release)

	waitForStatus(t, c, a, types.StatusDone)
	waitForStatus(t, c, b, types.StatusDone)
	waitForStatus(t, c, d, types.StatusDone)

	ac.mu.Lock()
	defer ac.mu.Unlock()
	assert.Equal(t, 1, ac.max, "never more than one job in flight")
	assert.Equal(t, []string{"A", "B", "C"}, ac.order, "claims follow submission order")

	recA, _ := c.GetStatus(a)
	recB, _ = c.GetStatus(b)
	require.NotNil(t, recA.StartedAt)
	require.NotNil(t, recB.StartedAt)
	assert.False(t, recB.StartedAt.Before(*recA.StartedAt))
}

func TestCoordinator_GeneratedIDWhenAbsent(t *testing.T) {
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		return &types.JobResult{Summary: "s"}, nil
	}, 0, nil)

	id := c.Submit(types.Job{SavedLocation: "docs/a.pdf"})
	assert.NotEmpty(t, id)
	waitForStatus(t, c, id, types.StatusDone)
}

func TestCoordinator_JobTimeout(t *testing.T) {
	c := NewCoordinator(NewRegistry(), func(ctx context.Context, job types.Job) (*types.JobResult, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(30 * time.Second):
			return &types.JobResult{Summary: "too late"}, nil
		}
	}, 20*time.Millisecond, nil)

	id := c.Submit(types.Job{SavedLocation: "docs/slow.pdf"})

	rec := waitForStatus(t, c, id, types.StatusError)
	assert.Contains(t, rec.Message, "context deadline exceeded")
}
