package collection

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ryannerby/jobnest/internal/apperror"
	"github.com/ryannerby/jobnest/internal/job"
)

// BulkResult reports how a batch settled. Partial failure leaves the
// collection reflecting actual server state; there is no rollback.
type BulkResult struct {
	Succeeded []int64
	Failed    map[int64]error
}

func (r *BulkResult) record(id int64, err error) {
	if err != nil {
		r.Failed[id] = err
		return
	}
	r.Succeeded = append(r.Succeeded, id)
}

// BulkDelete issues one delete per selected id concurrently, waits for all
// of them to settle, then drops the successfully deleted ids from the
// mirror.
func (c *Collection) BulkDelete(ctx context.Context, ids []int64) *BulkResult {
	res := &BulkResult{Failed: make(map[int64]error)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			err := c.api.DeleteJob(ctx, id)
			mu.Lock()
			res.record(id, err)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	for _, id := range res.Succeeded {
		c.removeLocked(id)
	}
	c.mu.Unlock()
	return res
}

// BulkSetStatus replaces the status of every selected record, keeping all
// other fields from the in-memory copy. One update per id, issued
// concurrently with no ordering guarantee between them.
func (c *Collection) BulkSetStatus(ctx context.Context, ids []int64, status job.Status) *BulkResult {
	res := &BulkResult{Failed: make(map[int64]error)}
	var mu sync.Mutex
	updated := make([]job.Job, 0, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		current, ok := c.Get(id)
		if !ok {
			res.Failed[id] = apperror.New(apperror.NotFound, "job not found")
			continue
		}
		g.Go(func() error {
			j := current
			j.Status = status
			stored, err := c.api.UpdateJob(ctx, j)
			mu.Lock()
			res.record(id, err)
			if err == nil {
				updated = append(updated, *stored)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	// Mirror updated only after every call has settled.
	c.mu.Lock()
	for _, j := range updated {
		c.replaceLocked(j)
	}
	c.mu.Unlock()
	return res
}
