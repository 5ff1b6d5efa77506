package collection

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ryannerby/jobnest/internal/apperror"
	"github.com/ryannerby/jobnest/internal/job"
)

// fakeAPI is an in-memory stand-in for the REST client. failIDs makes
// individual writes fail, for partial-failure scenarios.
type fakeAPI struct {
	mu      sync.Mutex
	jobs    map[int64]job.Job
	nextID  int64
	failIDs map[int64]bool
}

func newFakeAPI(seed ...job.Job) *fakeAPI {
	f := &fakeAPI{jobs: make(map[int64]job.Job), nextID: 1, failIDs: make(map[int64]bool)}
	for _, j := range seed {
		f.jobs[j.ID] = j
		if j.ID >= f.nextID {
			f.nextID = j.ID + 1
		}
	}
	return f
}

func (f *fakeAPI) ListJobs(_ context.Context) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]job.Job, 0, len(f.jobs))
	for id := f.nextID - 1; id >= 1; id-- {
		if j, ok := f.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateJob(_ context.Context, j job.Job) (*job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j.ID = f.nextID
	f.nextID++
	f.jobs[j.ID] = j
	return &j, nil
}

func (f *fakeAPI) UpdateJob(_ context.Context, j job.Job) (*job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[j.ID] {
		return nil, errors.New("store unavailable")
	}
	if _, ok := f.jobs[j.ID]; !ok {
		return nil, apperror.New(apperror.NotFound, "job not found")
	}
	f.jobs[j.ID] = j
	return &j, nil
}

func (f *fakeAPI) DeleteJob(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[id] {
		return errors.New("store unavailable")
	}
	if _, ok := f.jobs[id]; !ok {
		return apperror.New(apperror.NotFound, "job not found")
	}
	delete(f.jobs, id)
	return nil
}

func seedJobs() []job.Job {
	return []job.Job{
		{ID: 1, Company: "Acme", Title: "Engineer", Status: job.StatusApplied},
		{ID: 2, Company: "Globex", Title: "Analyst", Status: job.StatusWishlist},
		{ID: 3, Company: "Initech", Title: "SRE", Status: job.StatusInterview},
	}
}

func TestCollection_RefreshAndJobs(t *testing.T) {
	c := New(newFakeAPI(seedJobs()...))
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !equalIDs(ids(c.Jobs()), 3, 2, 1) {
		t.Errorf("expected server order, got %v", ids(c.Jobs()))
	}
}

func TestCollection_CreatePrepends(t *testing.T) {
	c := New(newFakeAPI(seedJobs()...))
	ctx := context.Background()
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	created, err := c.Create(ctx, job.Job{Company: "Umbrella", Title: "Engineer", Status: job.StatusWishlist})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected id 4, got %d", created.ID)
	}
	if !equalIDs(ids(c.Jobs()), 4, 3, 2, 1) {
		t.Errorf("expected id-descending order preserved, got %v", ids(c.Jobs()))
	}
}

func TestCollection_FailedWriteLeavesMirrorUnchanged(t *testing.T) {
	api := newFakeAPI(seedJobs()...)
	api.failIDs[2] = true
	c := New(api)
	ctx := context.Background()
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	before := ids(c.Jobs())
	j, _ := c.Get(2)
	j.Status = job.StatusOffer
	if _, err := c.Update(ctx, j); err == nil {
		t.Fatal("expected update error")
	}
	if err := c.Delete(ctx, 2); err == nil {
		t.Fatal("expected delete error")
	}

	if !equalIDs(ids(c.Jobs()), before...) {
		t.Errorf("failed writes mutated the mirror: %v", ids(c.Jobs()))
	}
	got, _ := c.Get(2)
	if got.Status != job.StatusWishlist {
		t.Errorf("failed update changed cached status: %s", got.Status)
	}
}

func TestCollection_BulkSetStatus(t *testing.T) {
	c := New(newFakeAPI(seedJobs()...))
	ctx := context.Background()
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	res := c.BulkSetStatus(ctx, []int64{2, 3}, job.StatusOffer)
	if len(res.Succeeded) != 2 || len(res.Failed) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	for _, id := range []int64{2, 3} {
		j, ok := c.Get(id)
		if !ok || j.Status != job.StatusOffer {
			t.Errorf("job %d: expected offer, got %+v", id, j)
		}
	}
	// Untouched record keeps its status.
	if j, _ := c.Get(1); j.Status != job.StatusApplied {
		t.Errorf("job 1 status changed: %s", j.Status)
	}
}

func TestCollection_BulkSetStatus_KeepsOtherFields(t *testing.T) {
	api := newFakeAPI(job.Job{ID: 1, Company: "Acme", Title: "Engineer", Status: job.StatusApplied, Notes: "keep me"})
	c := New(api)
	ctx := context.Background()
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	res := c.BulkSetStatus(ctx, []int64{1}, job.StatusRejected)
	if len(res.Succeeded) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	stored := api.jobs[1]
	if stored.Notes != "keep me" || stored.Company != "Acme" {
		t.Errorf("bulk status update dropped fields: %+v", stored)
	}
}

func TestCollection_BulkDelete_PartialFailure(t *testing.T) {
	api := newFakeAPI(seedJobs()...)
	api.failIDs[2] = true
	c := New(api)
	ctx := context.Background()
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	res := c.BulkDelete(ctx, []int64{1, 2, 3})
	if len(res.Succeeded) != 2 {
		t.Errorf("expected 2 successes, got %v", res.Succeeded)
	}
	if _, ok := res.Failed[2]; !ok {
		t.Errorf("expected id 2 to fail, got %v", res.Failed)
	}

	// Mixed state reflecting actual server state: only the failed id stays.
	if !equalIDs(ids(c.Jobs()), 2) {
		t.Errorf("expected [2] remaining, got %v", ids(c.Jobs()))
	}
}

func TestCollection_BulkSetStatus_UnknownID(t *testing.T) {
	c := New(newFakeAPI(seedJobs()...))
	ctx := context.Background()
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	res := c.BulkSetStatus(ctx, []int64{1, 99}, job.StatusOffer)
	if len(res.Succeeded) != 1 {
		t.Errorf("expected 1 success, got %v", res.Succeeded)
	}
	if _, ok := res.Failed[99]; !ok {
		t.Errorf("expected unknown id reported, got %v", res.Failed)
	}
}
