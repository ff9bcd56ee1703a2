package dto

// RegisterRequest represents an account registration request. Profile fields
// are optional; photo_url and graduation_year are pointers so an omitted
// field can be told apart from an explicitly empty one when applying
// defaults.
type RegisterRequest struct {
	Username       string  `json:"username" binding:"required"`
	Password       string  `json:"password" binding:"required"`
	MentorUsername string  `json:"mentor_username"`
	FullName       string  `json:"full_name"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	PhotoURL       *string `json:"photo_url"`
	HighestStudy   string  `json:"highest_study"`
	College        string  `json:"college"`
	GraduationYear *int    `json:"graduation_year"`
	Expertise      string  `json:"expertise"`
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login. The username is the payload
// source-compatible clients rely on; the access token is the session
// credential for the authenticated routes.
type LoginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}
