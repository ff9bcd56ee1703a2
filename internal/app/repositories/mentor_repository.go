package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// Mentor error types
var (
	// ErrMentorNotFound is returned when a mentor is not found.
	ErrMentorNotFound = ErrNotFound // Use shared ErrNotFound
	// ErrMentorUsernameTaken is returned when a mentor with the same username exists.
	ErrMentorUsernameTaken = errors.New("mentor with this username already exists")
)

// IMentorRepository defines the interface for mentor database operations
type IMentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]*models.Mentor, error)
	Delete(ctx context.Context, id int64) error
}

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var mentorColumns = []string{
	"id", "username", "name", "phone", "photo_url", "expertise",
	"experience", "bio", "linkedin_url", "joined_date",
}

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	m := &models.Mentor{}
	err := row.Scan(&m.ID, &m.Username, &m.Name, &m.Phone, &m.PhotoURL,
		&m.Expertise, &m.Experience, &m.Bio, &m.LinkedinURL, &m.JoinedDate)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create creates a new mentor
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	sql, args, err := r.sb.Insert("mentors").
		Columns("username", "name", "phone", "photo_url", "expertise",
			"experience", "bio", "linkedin_url", "joined_date").
		Values(mentor.Username, mentor.Name, mentor.Phone, mentor.PhotoURL,
			mentor.Expertise, mentor.Experience, mentor.Bio, mentor.LinkedinURL,
			mentor.JoinedDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create mentor query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrMentorUsernameTaken
		}
		logger.Error().Err(err).Msg("Error executing create mentor query")
		return 0, fmt.Errorf("error creating mentor: %w", err)
	}

	return id, nil
}

// GetByUsername retrieves a mentor by username
func (r *MentorRepository) GetByUsername(ctx context.Context, username string) (*models.Mentor, error) {
	sql, args, err := r.sb.Select(mentorColumns...).
		From("mentors").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get mentor query: %w", err)
	}

	mentor, err := scanMentor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMentorNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning mentor row")
		return nil, fmt.Errorf("error getting mentor by username: %w", err)
	}

	return mentor, nil
}

// GetAll retrieves all mentors in insertion order
func (r *MentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	sql, args, err := r.sb.Select(mentorColumns...).
		From("mentors").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all mentors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all mentors query")
		return nil, fmt.Errorf("error querying mentors: %w", err)
	}
	defer rows.Close()

	mentors := []*models.Mentor{}
	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	return mentors, nil
}

// Delete deletes a mentor by id. Users referencing the mentor keep their
// dangling reference; resolution treats it as not found.
func (r *MentorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("mentors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete mentor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("mentorID", id).Msg("Error executing delete mentor query")
		return fmt.Errorf("error deleting mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrMentorNotFound
	}

	return nil
}
