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

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// GetAllAnnouncements lists all announcements
func (c *AnnouncementController) GetAllAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetAllAnnouncements(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement adds an announcement
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var announcement models.Announcement
	if err := ctx.ShouldBindJSON(&announcement); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if _, err := c.announcementService.CreateAnnouncement(ctx.Request.Context(), &announcement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Announcement Added Successfully."})
}

// DeleteAnnouncement removes an announcement by id
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Announcement id must be a valid number"})
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement Deleted Successfully."})
}
