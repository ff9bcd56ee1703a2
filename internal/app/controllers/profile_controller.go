package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/middleware"
)

// ProfileController handles profile and mentor-resolution endpoints
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetUserDetails returns the profile for the username in the request body
// @Summary Get user profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UsernameRequest true "Username"
// @Success 200 {object} models.UserDetails
// @Failure 404 {object} dto.ErrorResponse "User details not found"
// @Router /frontend-user-details [post]
func (c *ProfileController) GetUserDetails(ctx *gin.Context) {
	var req dto.UsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	details, err := c.profileService.GetUserDetails(ctx.Request.Context(), req.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// GetAllUserDetails lists every profile record
func (c *ProfileController) GetAllUserDetails(ctx *gin.Context) {
	list, err := c.profileService.GetAllUserDetails(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetMentorForUser resolves the mentor assigned to the username in the body
// @Summary Get the mentor assigned to a user
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UsernameRequest true "Username"
// @Success 200 {object} dto.MentorForUserResponse
// @Failure 404 {object} dto.ErrorResponse "Mentor not found for this user"
// @Router /frontend-mentor-details [post]
func (c *ProfileController) GetMentorForUser(ctx *gin.Context) {
	var req dto.UsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := c.profileService.GetMentorForUser(ctx.Request.Context(), req.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateUserDetails overwrites the profile fields for the username in the
// body. Unknown usernames are a silent no-op.
func (c *ProfileController) UpdateUserDetails(ctx *gin.Context) {
	var req dto.UpdateUserDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := c.profileService.UpdateUserDetails(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User Details Updated Successfully."})
}

// Me returns the authenticated user's own account and profile
// @Summary Current user
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /me [get]
func (c *ProfileController) Me(ctx *gin.Context) {
	username := ctx.GetString(middleware.ContextKeyUsername)

	resp, err := c.profileService.GetMe(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
