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

// ErrUserDetailsNotFound is returned when a profile row is not found.
var ErrUserDetailsNotFound = ErrNotFound // Use shared ErrNotFound

// IUserDetailsRepository defines the interface for profile database operations
type IUserDetailsRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDetails, error)
	GetAll(ctx context.Context) ([]*models.UserDetails, error)
	Overwrite(ctx context.Context, details *models.UserDetails) error
}

// UserDetailsRepository handles profile database operations
type UserDetailsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserDetailsRepository creates a new UserDetailsRepository
func NewUserDetailsRepository(db *pgxpool.Pool) *UserDetailsRepository {
	return &UserDetailsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var userDetailsColumns = []string{
	"id", "username", "full_name", "address", "phone", "photo_url",
	"highest_study", "college", "graduation_year", "expertise", "joined_date",
}

func scanUserDetails(row pgx.Row) (*models.UserDetails, error) {
	d := &models.UserDetails{}
	err := row.Scan(&d.ID, &d.Username, &d.FullName, &d.Address, &d.Phone, &d.PhotoURL,
		&d.HighestStudy, &d.College, &d.GraduationYear, &d.Expertise, &d.JoinedDate)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetByUsername retrieves the profile for a username
func (r *UserDetailsRepository) GetByUsername(ctx context.Context, username string) (*models.UserDetails, error) {
	sql, args, err := r.sb.Select(userDetailsColumns...).
		From("user_details").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user details query: %w", err)
	}

	details, err := scanUserDetails(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserDetailsNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user details row")
		return nil, fmt.Errorf("error getting user details: %w", err)
	}

	return details, nil
}

// GetAll retrieves all profiles in insertion order
func (r *UserDetailsRepository) GetAll(ctx context.Context) ([]*models.UserDetails, error) {
	sql, args, err := r.sb.Select(userDetailsColumns...).
		From("user_details").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all user details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all user details query")
		return nil, fmt.Errorf("error querying user details: %w", err)
	}
	defer rows.Close()

	list := []*models.UserDetails{}
	for rows.Next() {
		details, err := scanUserDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user details row: %w", err)
		}
		list = append(list, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user details rows: %w", err)
	}

	return list, nil
}

// Overwrite replaces every updatable profile field for the given username.
// An unknown username affects zero rows and is not an error (historical
// no-op update semantics).
func (r *UserDetailsRepository) Overwrite(ctx context.Context, details *models.UserDetails) error {
	sql, args, err := r.sb.Update("user_details").
		SetMap(map[string]interface{}{
			"full_name":       details.FullName,
			"address":         details.Address,
			"phone":           details.Phone,
			"photo_url":       details.PhotoURL,
			"highest_study":   details.HighestStudy,
			"college":         details.College,
			"graduation_year": details.GraduationYear,
			"expertise":       details.Expertise,
		}).
		Where(squirrel.Eq{"username": details.Username}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user details query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("username", details.Username).Msg("Error executing update user details query")
		return fmt.Errorf("error updating user details: %w", err)
	}

	return nil
}
