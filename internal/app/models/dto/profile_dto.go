package dto

import "github.com/mentorhub/backend/internal/app/models"

// UsernameRequest carries the username the frontend stored client-side
// after login.
type UsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// UpdateUserDetailsRequest represents a full profile overwrite. Every field
// is written as supplied; omitted fields blank out their stored values.
type UpdateUserDetailsRequest struct {
	Username       string `json:"username" binding:"required"`
	FullName       string `json:"full_name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	PhotoURL       string `json:"photo_url"`
	HighestStudy   string `json:"highest_study"`
	College        string `json:"college"`
	GraduationYear int    `json:"graduation_year"`
	Expertise      string `json:"expertise"`
}

// MentorForUserResponse is the composite result of resolving a user's
// assigned mentor.
type MentorForUserResponse struct {
	UserUsername   string         `json:"user_username"`
	MentorUsername string         `json:"mentor_username"`
	Mentor         *models.Mentor `json:"mentor"`
}

// MeResponse represents the authenticated user's own account and profile.
type MeResponse struct {
	Username       string              `json:"username"`
	MentorUsername string              `json:"mentor_username,omitempty"`
	Details        *models.UserDetails `json:"details,omitempty"`
}
