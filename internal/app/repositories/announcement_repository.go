package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/logger"
)

// ErrAnnouncementNotFound is returned when an announcement is not found.
var ErrAnnouncementNotFound = ErrNotFound // Use shared ErrNotFound

// IAnnouncementRepository defines the interface for announcement database
// operations
type IAnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) (int64, error)
	GetAll(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "description", "date", "duration", "time", "link").
		Values(announcement.Title, announcement.Description, announcement.Date,
			announcement.Duration, announcement.Time, announcement.Link).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}

	return id, nil
}

// GetAll retrieves all announcements in insertion order
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]*models.Announcement, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "date", "duration", "time", "link").
		From("announcements").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all announcements query")
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		announcement := &models.Announcement{}
		if err := rows.Scan(&announcement.ID, &announcement.Title, &announcement.Description,
			&announcement.Date, &announcement.Duration, &announcement.Time, &announcement.Link); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}

// Delete deletes an announcement by id
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error executing delete announcement query")
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}
