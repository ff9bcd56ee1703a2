package models

import "time"

// Mentor defines the mentor model based on the 'mentors' table
type Mentor struct {
	ID          int64     `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Name        string    `json:"name" db:"name"`
	Phone       string    `json:"phone" db:"phone"`
	PhotoURL    string    `json:"photo_url" db:"photo_url"`
	Expertise   string    `json:"expertise" db:"expertise"`
	Experience  string    `json:"experience" db:"experience"`
	Bio         string    `json:"bio" db:"bio"`
	LinkedinURL string    `json:"linkedin_url" db:"linkedin_url"`
	JoinedDate  time.Time `json:"joined_date" db:"joined_date"` // server-assigned at creation
}
