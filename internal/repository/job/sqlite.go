package job

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ryannerby/jobnest/internal/apperror"
	domain "github.com/ryannerby/jobnest/internal/job"
)

const columns = `id, company, title, status, application_date, deadline,
		location, link, notes, cover_letter, job_description, hiring_manager,
		salary, job_type, requirements, benefits, created_at, updated_at`

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, j *domain.Job) error {
	const query = `INSERT INTO jobs (company, title, status, application_date, deadline,
		location, link, notes, cover_letter, job_description, hiring_manager,
		salary, job_type, requirements, benefits, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, query,
		j.Company, j.Title, string(j.Status),
		nullable(j.ApplicationDate), nullable(j.Deadline), nullable(j.Location),
		nullable(j.Link), nullable(j.Notes), nullable(j.CoverLetter),
		nullable(j.JobDescription), nullable(j.HiringManager), nullable(j.Salary),
		nullable(j.JobType), nullable(j.Requirements), nullable(j.Benefits),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	j.ID, _ = res.LastInsertId()
	j.CreatedAt = now
	j.UpdatedAt = now
	return nil
}

func (r *Repository) Update(ctx context.Context, j *domain.Job) error {
	const query = `UPDATE jobs SET company = ?, title = ?, status = ?,
		application_date = ?, deadline = ?, location = ?, link = ?, notes = ?,
		cover_letter = ?, job_description = ?, hiring_manager = ?, salary = ?,
		job_type = ?, requirements = ?, benefits = ?, updated_at = ?
		WHERE id = ?`

	now := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, query,
		j.Company, j.Title, string(j.Status),
		nullable(j.ApplicationDate), nullable(j.Deadline), nullable(j.Location),
		nullable(j.Link), nullable(j.Notes), nullable(j.CoverLetter),
		nullable(j.JobDescription), nullable(j.HiringManager), nullable(j.Salary),
		nullable(j.JobType), nullable(j.Requirements), nullable(j.Benefits),
		now.Format(time.RFC3339), j.ID,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.New(apperror.NotFound, "job not found")
	}
	j.UpdatedAt = now
	return nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + columns + ` FROM jobs WHERE id = ?`

	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperror.New(apperror.NotFound, "job not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.New(apperror.NotFound, "job not found")
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + columns + ` FROM jobs ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}

	return jobs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (*domain.Job, error) {
	j := &domain.Job{}
	var status, createdStr, updatedStr string
	var appDate, deadline, location, link, notes, coverLetter sql.NullString
	var jobDesc, hiringManager, salary, jobType, requirements, benefits sql.NullString

	err := s.Scan(
		&j.ID, &j.Company, &j.Title, &status,
		&appDate, &deadline, &location, &link, &notes, &coverLetter,
		&jobDesc, &hiringManager, &salary, &jobType, &requirements, &benefits,
		&createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}

	j.Status = domain.Status(status)
	j.ApplicationDate = appDate.String
	j.Deadline = deadline.String
	j.Location = location.String
	j.Link = link.String
	j.Notes = notes.String
	j.CoverLetter = coverLetter.String
	j.JobDescription = jobDesc.String
	j.HiringManager = hiringManager.String
	j.Salary = salary.String
	j.JobType = jobType.String
	j.Requirements = requirements.String
	j.Benefits = benefits.String
	j.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	j.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return j, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
