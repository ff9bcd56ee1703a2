package models

import "time"

// User defines the account model based on the 'users' table. The password
// hash is never serialized.
type User struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	PasswordHash   string `json:"-" db:"password_hash"`
	MentorUsername string `json:"mentor_username,omitempty" db:"mentor_username"` // unenforced reference to Mentor.Username
}

// UserDetails defines the profile model based on the 'user_details' table.
// There is one row per user, keyed by username.
type UserDetails struct {
	ID             int64     `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	FullName       string    `json:"full_name" db:"full_name"`
	Address        string    `json:"address" db:"address"`
	Phone          string    `json:"phone" db:"phone"`
	PhotoURL       string    `json:"photo_url" db:"photo_url"`
	HighestStudy   string    `json:"highest_study" db:"highest_study"`
	College        string    `json:"college" db:"college"`
	GraduationYear int       `json:"graduation_year" db:"graduation_year"`
	Expertise      string    `json:"expertise" db:"expertise"`
	JoinedDate     time.Time `json:"joined_date" db:"joined_date"`
}

// Profile field defaults applied at registration when the caller omits them.
const (
	DefaultPhotoURL       = "https://www.pngall.com/wp-content/uploads/12/Avatar-PNG-Images-HD.png"
	DefaultGraduationYear = 2026
)
