package services

import (
	"context"
	"fmt"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/repositories"
)

// CodingQuestionService defines the interface for practice-question operations
type CodingQuestionService interface {
	CreateCodingQuestion(ctx context.Context, question *models.CodingQuestion) (int64, error)
	GetAllCodingQuestions(ctx context.Context) ([]*models.CodingQuestion, error)
}

// codingQuestionServiceImpl implements the CodingQuestionService interface
type codingQuestionServiceImpl struct {
	questionRepo repositories.ICodingQuestionRepository
}

// NewCodingQuestionService creates a new coding question service instance
func NewCodingQuestionService(questionRepo repositories.ICodingQuestionRepository) CodingQuestionService {
	return &codingQuestionServiceImpl{
		questionRepo: questionRepo,
	}
}

// CreateCodingQuestion persists a practice question as supplied
func (s *codingQuestionServiceImpl) CreateCodingQuestion(ctx context.Context, question *models.CodingQuestion) (int64, error) {
	id, err := s.questionRepo.Create(ctx, question)
	if err != nil {
		return 0, fmt.Errorf("error creating coding question: %w", err)
	}
	return id, nil
}

// GetAllCodingQuestions retrieves all practice questions
func (s *codingQuestionServiceImpl) GetAllCodingQuestions(ctx context.Context) ([]*models.CodingQuestion, error) {
	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving coding questions: %w", err)
	}
	return questions, nil
}
