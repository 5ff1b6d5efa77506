// Package collection owns the client-side mirror of the job store. All view
// rendering reads from the collection; canonical state always comes back
// from the API, never from locally invented records. A failed write leaves
// the collection unchanged.
package collection

import (
	"context"
	"sync"

	"github.com/ryannerby/jobnest/internal/job"
)

// API is the write-around path to the store. Implemented by the HTTP client
// and, in tests, by fakes.
type API interface {
	ListJobs(ctx context.Context) ([]job.Job, error)
	CreateJob(ctx context.Context, j job.Job) (*job.Job, error)
	UpdateJob(ctx context.Context, j job.Job) (*job.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

type Collection struct {
	api API

	mu   sync.RWMutex
	jobs []job.Job
}

func New(api API) *Collection {
	return &Collection{api: api}
}

// Refresh replaces the mirror with the server's current view. This is the
// recovery path after a not-found error signals that the mirror went stale.
func (c *Collection) Refresh(ctx context.Context) error {
	jobs, err := c.api.ListJobs(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.jobs = jobs
	c.mu.Unlock()
	return nil
}

// Jobs returns a snapshot of the mirror, in server list order (id descending
// after a refresh).
func (c *Collection) Jobs() []job.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]job.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.jobs)
}

// Get returns the mirrored record with the given id, or false.
func (c *Collection) Get(id int64) (job.Job, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, j := range c.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return job.Job{}, false
}

// Create persists through the API and, on success, prepends the stored
// record. New ids are always the highest, so prepending preserves the
// id-descending list order.
func (c *Collection) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	created, err := c.api.CreateJob(ctx, j)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.jobs = append([]job.Job{*created}, c.jobs...)
	c.mu.Unlock()
	return created, nil
}

func (c *Collection) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	updated, err := c.api.UpdateJob(ctx, j)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.replaceLocked(*updated)
	c.mu.Unlock()
	return updated, nil
}

func (c *Collection) Delete(ctx context.Context, id int64) error {
	if err := c.api.DeleteJob(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	c.removeLocked(id)
	c.mu.Unlock()
	return nil
}

func (c *Collection) replaceLocked(j job.Job) {
	for i := range c.jobs {
		if c.jobs[i].ID == j.ID {
			c.jobs[i] = j
			return
		}
	}
}

func (c *Collection) removeLocked(id int64) {
	for i := range c.jobs {
		if c.jobs[i].ID == id {
			c.jobs = append(c.jobs[:i], c.jobs[i+1:]...)
			return
		}
	}
}
