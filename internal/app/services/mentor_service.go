package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// MentorService defines the interface for mentor-related operations
type MentorService interface {
	CreateMentor(ctx context.Context, mentor *models.Mentor) (int64, error)
	GetAllMentors(ctx context.Context) ([]*models.Mentor, error)
	DeleteMentor(ctx context.Context, id int64) error
}

// mentorServiceImpl implements the MentorService interface
type mentorServiceImpl struct {
	mentorRepo repositories.IMentorRepository
}

// NewMentorService creates a new mentor service instance
func NewMentorService(mentorRepo repositories.IMentorRepository) MentorService {
	return &mentorServiceImpl{
		mentorRepo: mentorRepo,
	}
}

// CreateMentor creates a new mentor. joined_date is always stamped server
// side; any caller-supplied value is discarded.
func (s *mentorServiceImpl) CreateMentor(ctx context.Context, mentor *models.Mentor) (int64, error) {
	mentor.JoinedDate = time.Now()

	id, err := s.mentorRepo.Create(ctx, mentor)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorUsernameTaken) {
			return 0, apperrors.ErrMentorUsernameAlreadyExists
		}
		return 0, fmt.Errorf("error creating mentor: %w", err)
	}
	return id, nil
}

// GetAllMentors retrieves all mentors
func (s *mentorServiceImpl) GetAllMentors(ctx context.Context) ([]*models.Mentor, error) {
	mentors, err := s.mentorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentors: %w", err)
	}
	return mentors, nil
}

// DeleteMentor deletes a mentor by id
func (s *mentorServiceImpl) DeleteMentor(ctx context.Context, id int64) error {
	err := s.mentorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorNotFound) {
			return apperrors.ErrMentorNotFound
		}
		return fmt.Errorf("error deleting mentor: %w", err)
	}
	return nil
}
