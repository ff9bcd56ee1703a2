package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/mentorhub/backend/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService handles account registration and credential verification
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateUsername rejects empty usernames before they reach the store
func (s *AuthService) validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates the account and its profile. The duplicate pre-check is
// advisory; the unique index on users.username decides races between
// concurrent registrations.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateUsername(req.Username); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking if username exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:       req.Username,
		PasswordHash:   hashedPassword,
		MentorUsername: req.MentorUsername,
	}

	details := &models.UserDetails{
		Username:       req.Username,
		FullName:       req.FullName,
		Address:        req.Address,
		Phone:          req.Phone,
		PhotoURL:       models.DefaultPhotoURL,
		HighestStudy:   req.HighestStudy,
		College:        req.College,
		GraduationYear: models.DefaultGraduationYear,
		Expertise:      req.Expertise,
		JoinedDate:     time.Now(),
	}
	if req.PhotoURL != nil {
		details.PhotoURL = *req.PhotoURL
	}
	if req.GraduationYear != nil {
		details.GraduationYear = *req.GraduationYear
	}

	if err := s.userRepo.CreateWithDetails(ctx, user, details); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("User registered")

	return &dto.RegisterResponse{
		Message:  "User added successfully",
		Username: user.Username,
	}, nil
}

// Login verifies credentials and issues an access token. The username stays
// in the payload because existing frontends store it client-side.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.LoginResponse{
		Username:    user.Username,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// GetAllUsers lists every account; hashes never leave the model's JSON
// encoding.
func (s *AuthService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}
