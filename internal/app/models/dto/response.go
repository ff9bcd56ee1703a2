package dto

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteJobResponse reports the application-level id of the removed posting
type DeleteJobResponse struct {
	Message   string `json:"message"`
	DeletedID int64  `json:"deletedId"`
}

// ErrorResponse represents a client-facing failure with a human-readable
// message (4xx responses)
type ErrorResponse struct {
	Message string `json:"message"`
}

// InternalErrorResponse surfaces the raw error text on unexpected failures
// (5xx responses). Leaking internal error text is knowingly carried over
// from the original service.
type InternalErrorResponse struct {
	Error string `json:"error"`
}
