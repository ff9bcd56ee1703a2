package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound          = errors.New("user does not exist")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserDetailsNotFound   = errors.New("user details not found")
)

// Mentor errors
var (
	ErrMentorNotFound              = errors.New("mentor not found")
	ErrMentorUsernameAlreadyExists = errors.New("mentor username already exists")
	// ErrMentorNotAssigned covers both a user with no mentor reference and a
	// reference pointing at a mentor record that no longer exists. Callers
	// cannot tell the two apart.
	ErrMentorNotAssigned = errors.New("mentor not found for this user")
)

// Job errors
var (
	ErrJobNotFound = errors.New("job not found")
)

// Announcement errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
