package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// ProfileService defines the interface for profile and mentor-resolution
// operations
type ProfileService interface {
	GetUserDetails(ctx context.Context, username string) (*models.UserDetails, error)
	GetAllUserDetails(ctx context.Context) ([]*models.UserDetails, error)
	GetMentorForUser(ctx context.Context, username string) (*dto.MentorForUserResponse, error)
	UpdateUserDetails(ctx context.Context, req *dto.UpdateUserDetailsRequest) error
	GetMe(ctx context.Context, username string) (*dto.MeResponse, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	userRepo    repositories.IUserRepository
	detailsRepo repositories.IUserDetailsRepository
	mentorRepo  repositories.IMentorRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	userRepo repositories.IUserRepository,
	detailsRepo repositories.IUserDetailsRepository,
	mentorRepo repositories.IMentorRepository,
) ProfileService {
	return &profileServiceImpl{
		userRepo:    userRepo,
		detailsRepo: detailsRepo,
		mentorRepo:  mentorRepo,
	}
}

// GetUserDetails fetches the profile record for a username
func (s *profileServiceImpl) GetUserDetails(ctx context.Context, username string) (*models.UserDetails, error) {
	details, err := s.detailsRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserDetailsNotFound) {
			return nil, apperrors.ErrUserDetailsNotFound
		}
		return nil, fmt.Errorf("error retrieving user details: %w", err)
	}
	return details, nil
}

// GetAllUserDetails lists every profile record
func (s *profileServiceImpl) GetAllUserDetails(ctx context.Context) ([]*models.UserDetails, error) {
	list, err := s.detailsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user details list: %w", err)
	}
	return list, nil
}

// GetMentorForUser resolves a user's assigned mentor in two steps. A missing
// user, an empty mentor reference, and a dangling reference all surface the
// same not-found error; callers cannot tell which case occurred.
func (s *profileServiceImpl) GetMentorForUser(ctx context.Context, username string) (*dto.MentorForUserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrMentorNotAssigned
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if user.MentorUsername == "" {
		return nil, apperrors.ErrMentorNotAssigned
	}

	mentor, err := s.mentorRepo.GetByUsername(ctx, user.MentorUsername)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorNotFound) {
			// Dangling reference: the mentor was deleted after assignment.
			return nil, apperrors.ErrMentorNotAssigned
		}
		return nil, fmt.Errorf("error looking up mentor: %w", err)
	}

	return &dto.MentorForUserResponse{
		UserUsername:   user.Username,
		MentorUsername: mentor.Username,
		Mentor:         mentor,
	}, nil
}

// UpdateUserDetails overwrites every updatable profile field with the
// request values. Unknown usernames update zero rows and still succeed.
func (s *profileServiceImpl) UpdateUserDetails(ctx context.Context, req *dto.UpdateUserDetailsRequest) error {
	details := &models.UserDetails{
		Username:       req.Username,
		FullName:       req.FullName,
		Address:        req.Address,
		Phone:          req.Phone,
		PhotoURL:       req.PhotoURL,
		HighestStudy:   req.HighestStudy,
		College:        req.College,
		GraduationYear: req.GraduationYear,
		Expertise:      req.Expertise,
	}

	if err := s.detailsRepo.Overwrite(ctx, details); err != nil {
		return fmt.Errorf("error updating user details: %w", err)
	}
	return nil
}

// GetMe returns the authenticated user's account and profile. A missing
// profile row is tolerated; the account fields are still returned.
func (s *profileServiceImpl) GetMe(ctx context.Context, username string) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	resp := &dto.MeResponse{
		Username:       user.Username,
		MentorUsername: user.MentorUsername,
	}

	details, err := s.detailsRepo.GetByUsername(ctx, username)
	if err == nil {
		resp.Details = details
	} else if !errors.Is(err, repositories.ErrUserDetailsNotFound) {
		return nil, fmt.Errorf("error retrieving user details: %w", err)
	}

	return resp, nil
}
