package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found sentinel; per-entity errors alias it
// so callers can match either.
var ErrNotFound = errors.New("record not found")

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	UserDetailsRepository    *UserDetailsRepository
	MentorRepository         *MentorRepository
	JobRepository            *JobRepository
	CodingQuestionRepository *CodingQuestionRepository
	AnnouncementRepository   *AnnouncementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		UserDetailsRepository:    NewUserDetailsRepository(db),
		MentorRepository:         NewMentorRepository(db),
		JobRepository:            NewJobRepository(db),
		CodingQuestionRepository: NewCodingQuestionRepository(db),
		AnnouncementRepository:   NewAnnouncementRepository(db),
	}
}
