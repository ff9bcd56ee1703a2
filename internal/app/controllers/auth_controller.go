// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/middleware"
	"github.com/rs/zerolog"
)

// AuthController handles registration and login
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles account creation
// @Summary Register a new user
// @Description Creates a user account and its profile record in one step
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.RegisterResponse "User added successfully"
// @Failure 400 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.InternalErrorResponse "Internal server error"
// @Router /add-users [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Login handles credential verification
// @Summary User login
// @Description Verifies username and password and issues an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "User does not exist"
// @Failure 500 {object} dto.InternalErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetAllUsers lists all accounts (password hashes are never serialized)
func (c *AuthController) GetAllUsers(ctx *gin.Context) {
	users, err := c.authService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
