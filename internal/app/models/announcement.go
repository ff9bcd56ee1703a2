package models

// Announcement defines the announcement model based on the 'announcements' table
type Announcement struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Date        string `json:"date" db:"date"`
	Duration    string `json:"duration" db:"duration"`
	Time        string `json:"time" db:"time"`
	Link        string `json:"link" db:"link"`
}
