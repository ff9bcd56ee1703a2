package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/middleware"
)

// CodingQuestionController handles practice-question endpoints
type CodingQuestionController struct {
	questionService services.CodingQuestionService
}

// NewCodingQuestionController creates a new CodingQuestionController
func NewCodingQuestionController(questionService services.CodingQuestionService) *CodingQuestionController {
	return &CodingQuestionController{
		questionService: questionService,
	}
}

// GetAllCodingQuestions lists all practice questions
func (c *CodingQuestionController) GetAllCodingQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllCodingQuestions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// CreateCodingQuestion adds a practice question
func (c *CodingQuestionController) CreateCodingQuestion(ctx *gin.Context) {
	var question models.CodingQuestion
	if err := ctx.ShouldBindJSON(&question); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if _, err := c.questionService.CreateCodingQuestion(ctx.Request.Context(), &question); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Coding question added"})
}
