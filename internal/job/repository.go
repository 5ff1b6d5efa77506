package job

import "context"

type Repository interface {
	// Create persists j and fills in the assigned ID and timestamps.
	Create(ctx context.Context, j *Job) error
	// Update replaces the stored record in full. Returns a not-found error
	// when no row has j.ID.
	Update(ctx context.Context, j *Job) error
	Get(ctx context.Context, id int64) (*Job, error)
	// Delete removes the record permanently. Returns a not-found error when
	// no row has the id.
	Delete(ctx context.Context, id int64) error
	// List returns every record ordered by id descending.
	List(ctx context.Context) ([]Job, error)
}
