package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/middleware"
)

// MentorController handles mentor endpoints
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// GetAllMentors lists all mentors
func (c *MentorController) GetAllMentors(ctx *gin.Context) {
	mentors, err := c.mentorService.GetAllMentors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mentors)
}

// CreateMentor adds a mentor; joined_date is stamped by the server
func (c *MentorController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	mentor := &models.Mentor{
		Username:    req.Username,
		Name:        req.Name,
		Phone:       req.Phone,
		PhotoURL:    req.PhotoURL,
		Expertise:   req.Expertise,
		Experience:  req.Experience,
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
	}

	if _, err := c.mentorService.CreateMentor(ctx.Request.Context(), mentor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Mentor added successfully"})
}

// DeleteMentor removes a mentor by id
func (c *MentorController) DeleteMentor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Mentor id must be a valid number"})
		return
	}

	if err := c.mentorService.DeleteMentor(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Mentor deleted successfully"})
}
