package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// JobService defines the interface for job posting operations
type JobService interface {
	CreateJob(ctx context.Context, job *models.Job) (int64, error)
	GetAllJobs(ctx context.Context) ([]*models.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

// jobServiceImpl implements the JobService interface
type jobServiceImpl struct {
	jobRepo repositories.IJobRepository
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo repositories.IJobRepository) JobService {
	return &jobServiceImpl{
		jobRepo: jobRepo,
	}
}

// CreateJob persists a job posting as supplied
func (s *jobServiceImpl) CreateJob(ctx context.Context, job *models.Job) (int64, error) {
	id, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return 0, fmt.Errorf("error creating job: %w", err)
	}
	return id, nil
}

// GetAllJobs retrieves all job postings
func (s *jobServiceImpl) GetAllJobs(ctx context.Context) ([]*models.Job, error) {
	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving jobs: %w", err)
	}
	return jobs, nil
}

// DeleteJob deletes a job posting by id
func (s *jobServiceImpl) DeleteJob(ctx context.Context, id int64) error {
	err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("error deleting job: %w", err)
	}
	return nil
}
