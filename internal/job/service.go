package job

import (
	"context"
	"log/slog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all records, most recently created first. Ordering by id
// descending is the only ordering contract at this layer; everything else is
// a client-side concern.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Job, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and persists a new record. Status defaults to wishlist
// when the caller leaves it unset. Retrying after an ambiguous failure may
// produce a duplicate record; create carries no idempotency guarantee.
func (s *Service) Create(ctx context.Context, j *Job) (*Job, error) {
	if j.Status == "" {
		j.Status = StatusWishlist
	}
	if appErr := Validate(j); appErr != nil {
		return nil, appErr
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	slog.Info("job created", "id", j.ID, "company", j.Company)
	return j, nil
}

// Update replaces the stored record in full. Every required field must be
// resupplied on every update; there is no partial-field merge.
func (s *Service) Update(ctx context.Context, j *Job) (*Job, error) {
	if _, err := s.repo.Get(ctx, j.ID); err != nil {
		return nil, err
	}
	if appErr := Validate(j); appErr != nil {
		return nil, appErr
	}
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Delete removes the record. Hard delete, non-recoverable.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("job deleted", "id", id)
	return nil
}
