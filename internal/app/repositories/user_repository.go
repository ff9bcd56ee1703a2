package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/db"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// User error types
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = ErrNotFound // Use shared ErrNotFound
	// ErrUsernameTaken is returned when the username unique constraint fires.
	ErrUsernameTaken = errors.New("username already exists")
)

// IUserRepository defines the interface for user account database operations
type IUserRepository interface {
	CreateWithDetails(ctx context.Context, user *models.User, details *models.UserDetails) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	GetAll(ctx context.Context) ([]*models.User, error)
}

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithDetails inserts the account row and its profile row in a single
// transaction so a failure cannot leave an account without details. The
// unique index on users.username is the authoritative duplicate guard; the
// service-level existence check is only an optimization.
func (r *UserRepository) CreateWithDetails(ctx context.Context, user *models.User, details *models.UserDetails) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userSQL, userArgs, err := r.sb.Insert("users").
			Columns("username", "password_hash", "mentor_username").
			Values(user.Username, user.PasswordHash, user.MentorUsername).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}

		if err := tx.QueryRow(ctx, userSQL, userArgs...).Scan(&user.ID); err != nil {
			if isDuplicateKeyError(err) {
				return ErrUsernameTaken
			}
			logger.Error().Err(err).Msg("Error executing create user query")
			return fmt.Errorf("error creating user: %w", err)
		}

		detailsSQL, detailsArgs, err := r.sb.Insert("user_details").
			Columns("username", "full_name", "address", "phone", "photo_url",
				"highest_study", "college", "graduation_year", "expertise", "joined_date").
			Values(details.Username, details.FullName, details.Address, details.Phone,
				details.PhotoURL, details.HighestStudy, details.College,
				details.GraduationYear, details.Expertise, details.JoinedDate).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user details query: %w", err)
		}

		if err := tx.QueryRow(ctx, detailsSQL, detailsArgs...).Scan(&details.ID); err != nil {
			if isDuplicateKeyError(err) {
				return ErrUsernameTaken
			}
			logger.Error().Err(err).Msg("Error executing create user details query")
			return fmt.Errorf("error creating user details: %w", err)
		}

		return nil
	})
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "password_hash", "mentor_username").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.MentorUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// UsernameExists checks if a username is already registered
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build username existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) { // ErrNoRows is ok here, means false
		logger.Error().Err(err).Str("username", username).Msg("Error checking username existence")
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all user accounts in insertion order
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "password_hash", "mentor_username").
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.MentorUsername); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
