package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// ErrJobNotFound is returned when a job posting is not found.
var ErrJobNotFound = ErrNotFound // Use shared ErrNotFound

// IJobRepository defines the interface for job posting database operations
type IJobRepository interface {
	Create(ctx context.Context, job *models.Job) (int64, error)
	GetAll(ctx context.Context) ([]*models.Job, error)
	Delete(ctx context.Context, id int64) error
}

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (int64, error) {
	sql, args, err := r.sb.Insert("jobs").
		Columns("company", "role", "link", "ctc", "description",
			"technologies", "location", "last_date").
		Values(job.Company, job.Role, job.Link, job.CTC, job.Description,
			job.Technologies, job.Location, job.LastDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create job query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create job query")
		return 0, fmt.Errorf("error creating job: %w", err)
	}

	return id, nil
}

// GetAll retrieves all job postings in insertion order
func (r *JobRepository) GetAll(ctx context.Context) ([]*models.Job, error) {
	sql, args, err := r.sb.Select("id", "company", "role", "link", "ctc",
		"description", "technologies", "location", "last_date").
		From("jobs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all jobs query")
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job := &models.Job{}
		if err := rows.Scan(&job.ID, &job.Company, &job.Role, &job.Link, &job.CTC,
			&job.Description, &job.Technologies, &job.Location, &job.LastDate); err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// Delete deletes a job posting by id
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing delete job query")
		return fmt.Errorf("error deleting job: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrJobNotFound
	}

	return nil
}
