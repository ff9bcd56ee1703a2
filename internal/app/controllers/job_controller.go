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

// JobController handles job posting endpoints
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// GetAllJobs lists all job postings
func (c *JobController) GetAllJobs(ctx *gin.Context) {
	jobs, err := c.jobService.GetAllJobs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

// CreateJob adds a job posting
func (c *JobController) CreateJob(ctx *gin.Context) {
	var job models.Job
	if err := ctx.ShouldBindJSON(&job); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if _, err := c.jobService.CreateJob(ctx.Request.Context(), &job); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Job added successfully"})
}

// DeleteJob removes a job posting by its application-level id
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} dto.DeleteJobResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /delete-jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Job id must be a valid number"})
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteJobResponse{
		Message:   "Job deleted successfully",
		DeletedID: id,
	})
}
