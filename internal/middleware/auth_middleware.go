package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
	"github.com/mentorhub/backend/internal/pkg/auth"
)

// ContextKeyUsername is the gin context key the JWT middleware stores the
// authenticated username under.
const ContextKeyUsername = "username"

// AuthMiddleware for token-protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the Bearer token and stores the username in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header missing"})
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token format"})
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			appErr := apperrors.ErrTokenInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				appErr = apperrors.ErrTokenExpired
			}
			HandleAPIError(c, appErr)
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}
