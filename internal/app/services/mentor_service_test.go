package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

func TestMentorService_CreateMentor_StampsJoinedDate(t *testing.T) {
	repo := newFakeMentorRepository()
	svc := NewMentorService(repo)

	callerSupplied := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	mentor := &models.Mentor{
		Username:   "mentor1",
		Name:       "Mentor One",
		JoinedDate: callerSupplied,
	}

	before := time.Now()
	id, err := svc.CreateMentor(context.Background(), mentor)
	assert.NoError(t, err)
	assert.NotZero(t, id)

	stored := repo.mentors["mentor1"]
	assert.NotEqual(t, callerSupplied, stored.JoinedDate)
	assert.False(t, stored.JoinedDate.Before(before))
}

func TestMentorService_CreateMentor_DuplicateUsername(t *testing.T) {
	repo := newFakeMentorRepository()
	svc := NewMentorService(repo)

	_, err := svc.CreateMentor(context.Background(), &models.Mentor{Username: "mentor1"})
	assert.NoError(t, err)

	_, err = svc.CreateMentor(context.Background(), &models.Mentor{Username: "mentor1"})
	assert.ErrorIs(t, err, apperrors.ErrMentorUsernameAlreadyExists)
}

func TestMentorService_DeleteMentor(t *testing.T) {
	repo := newFakeMentorRepository()
	svc := NewMentorService(repo)

	id, err := svc.CreateMentor(context.Background(), &models.Mentor{Username: "mentor1"})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteMentor(context.Background(), id))
	assert.ErrorIs(t, svc.DeleteMentor(context.Background(), id), apperrors.ErrMentorNotFound)
}

func TestMentorService_GetAllMentors(t *testing.T) {
	repo := newFakeMentorRepository()
	svc := NewMentorService(repo)

	mentors, err := svc.GetAllMentors(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, mentors)

	_, err = svc.CreateMentor(context.Background(), &models.Mentor{Username: "mentor1"})
	assert.NoError(t, err)

	mentors, err = svc.GetAllMentors(context.Background())
	assert.NoError(t, err)
	assert.Len(t, mentors, 1)
}
