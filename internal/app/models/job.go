package models

// Job defines the job posting model based on the 'jobs' table
type Job struct {
	ID           int64  `json:"id" db:"id"`
	Company      string `json:"company" db:"company"`
	Role         string `json:"role" db:"role"`
	Link         string `json:"link" db:"link"`
	CTC          string `json:"ctc" db:"ctc"`
	Description  string `json:"description" db:"description"`
	Technologies string `json:"technologies" db:"technologies"`
	Location     string `json:"location" db:"location"`
	LastDate     string `json:"last_date" db:"last_date"`
}
