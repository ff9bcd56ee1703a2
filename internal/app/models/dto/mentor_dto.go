package dto

// CreateMentorRequest represents mentor creation data. joined_date is absent
// on purpose: it is stamped server side and cannot be supplied.
type CreateMentorRequest struct {
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PhotoURL    string `json:"photo_url"`
	Expertise   string `json:"expertise"`
	Experience  string `json:"experience"`
	Bio         string `json:"bio"`
	LinkedinURL string `json:"linkedin_url"`
}
