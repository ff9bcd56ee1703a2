package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Message texts
// match what the deployed frontends already parse. Unknown errors surface
// their raw text on the 500 body; that leak is carried over on purpose from
// the original service.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Username already exists"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User does not exist"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid password"})
	case errors.Is(err, apperrors.ErrUserDetailsNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User details not found"})
	case errors.Is(err, apperrors.ErrMentorNotAssigned):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Mentor not found for this user"})
	case errors.Is(err, apperrors.ErrMentorNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Mentor not found"})
	case errors.Is(err, apperrors.ErrMentorUsernameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Mentor with this username already exists"})
	case errors.Is(err, apperrors.ErrJobNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Job not found"})
	case errors.Is(err, apperrors.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Announcement not found"})
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse{Error: err.Error()})
	}
}
