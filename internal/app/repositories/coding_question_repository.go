package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// ICodingQuestionRepository defines the interface for practice-question
// database operations
type ICodingQuestionRepository interface {
	Create(ctx context.Context, question *models.CodingQuestion) (int64, error)
	GetAll(ctx context.Context) ([]*models.CodingQuestion, error)
}

// CodingQuestionRepository handles practice-question database operations
type CodingQuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCodingQuestionRepository creates a new CodingQuestionRepository
func NewCodingQuestionRepository(db *pgxpool.Pool) *CodingQuestionRepository {
	return &CodingQuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new coding question
func (r *CodingQuestionRepository) Create(ctx context.Context, question *models.CodingQuestion) (int64, error) {
	sql, args, err := r.sb.Insert("coding_questions").
		Columns("name", "difficulty", "link").
		Values(question.Name, question.Difficulty, question.Link).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create coding question query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create coding question query")
		return 0, fmt.Errorf("error creating coding question: %w", err)
	}

	return id, nil
}

// GetAll retrieves all coding questions in insertion order
func (r *CodingQuestionRepository) GetAll(ctx context.Context) ([]*models.CodingQuestion, error) {
	sql, args, err := r.sb.Select("id", "name", "difficulty", "link").
		From("coding_questions").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all coding questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all coding questions query")
		return nil, fmt.Errorf("error querying coding questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.CodingQuestion{}
	for rows.Next() {
		question := &models.CodingQuestion{}
		if err := rows.Scan(&question.ID, &question.Name, &question.Difficulty, &question.Link); err != nil {
			return nil, fmt.Errorf("error scanning coding question row: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coding question rows: %w", err)
	}

	return questions, nil
}
