package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/models/dto"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// fakeUserDetailsRepository is an in-memory IUserDetailsRepository.
type fakeUserDetailsRepository struct {
	details map[string]*models.UserDetails
}

func newFakeUserDetailsRepository() *fakeUserDetailsRepository {
	return &fakeUserDetailsRepository{details: map[string]*models.UserDetails{}}
}

func (r *fakeUserDetailsRepository) GetByUsername(_ context.Context, username string) (*models.UserDetails, error) {
	d, ok := r.details[username]
	if !ok {
		return nil, repositories.ErrUserDetailsNotFound
	}
	return d, nil
}

func (r *fakeUserDetailsRepository) GetAll(_ context.Context) ([]*models.UserDetails, error) {
	list := []*models.UserDetails{}
	for _, d := range r.details {
		list = append(list, d)
	}
	return list, nil
}

func (r *fakeUserDetailsRepository) Overwrite(_ context.Context, details *models.UserDetails) error {
	existing, ok := r.details[details.Username]
	if !ok {
		// Unknown usernames update zero rows and report success.
		return nil
	}
	details.ID = existing.ID
	details.JoinedDate = existing.JoinedDate
	r.details[details.Username] = details
	return nil
}

// fakeMentorRepository is an in-memory IMentorRepository.
type fakeMentorRepository struct {
	mentors map[string]*models.Mentor
	nextID  int64
}

func newFakeMentorRepository() *fakeMentorRepository {
	return &fakeMentorRepository{mentors: map[string]*models.Mentor{}}
}

func (r *fakeMentorRepository) Create(_ context.Context, mentor *models.Mentor) (int64, error) {
	if _, ok := r.mentors[mentor.Username]; ok {
		return 0, repositories.ErrMentorUsernameTaken
	}
	r.nextID++
	mentor.ID = r.nextID
	r.mentors[mentor.Username] = mentor
	return mentor.ID, nil
}

func (r *fakeMentorRepository) GetByUsername(_ context.Context, username string) (*models.Mentor, error) {
	m, ok := r.mentors[username]
	if !ok {
		return nil, repositories.ErrMentorNotFound
	}
	return m, nil
}

func (r *fakeMentorRepository) GetAll(_ context.Context) ([]*models.Mentor, error) {
	list := []*models.Mentor{}
	for _, m := range r.mentors {
		list = append(list, m)
	}
	return list, nil
}

func (r *fakeMentorRepository) Delete(_ context.Context, id int64) error {
	for username, m := range r.mentors {
		if m.ID == id {
			delete(r.mentors, username)
			return nil
		}
	}
	return repositories.ErrMentorNotFound
}

type profileFixture struct {
	users   *fakeUserRepository
	details *fakeUserDetailsRepository
	mentors *fakeMentorRepository
	svc     ProfileService
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		users:   newFakeUserRepository(),
		details: newFakeUserDetailsRepository(),
		mentors: newFakeMentorRepository(),
	}
	f.svc = NewProfileService(f.users, f.details, f.mentors)
	return f
}

func (f *profileFixture) addUser(username, mentorUsername string) {
	f.users.users[username] = &models.User{Username: username, MentorUsername: mentorUsername}
}

func (f *profileFixture) addMentor(username string) *models.Mentor {
	m := &models.Mentor{Username: username, Name: "Mentor " + username, JoinedDate: time.Now()}
	_, _ = f.mentors.Create(context.Background(), m)
	return m
}

func TestProfileService_GetMentorForUser(t *testing.T) {
	f := newProfileFixture()
	f.addUser("alice", "mentor1")
	mentor := f.addMentor("mentor1")

	resp, err := f.svc.GetMentorForUser(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.UserUsername)
	assert.Equal(t, "mentor1", resp.MentorUsername)
	assert.Equal(t, mentor, resp.Mentor)
}

func TestProfileService_GetMentorForUser_NotAssigned(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *profileFixture)
	}{
		{
			name:  "unknown user",
			setup: func(f *profileFixture) {},
		},
		{
			name: "no mentor assigned",
			setup: func(f *profileFixture) {
				f.addUser("alice", "")
			},
		},
		{
			name: "dangling mentor reference",
			setup: func(f *profileFixture) {
				f.addUser("alice", "gone")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProfileFixture()
			tt.setup(f)

			_, err := f.svc.GetMentorForUser(context.Background(), "alice")
			assert.ErrorIs(t, err, apperrors.ErrMentorNotAssigned)
		})
	}
}

func TestProfileService_GetUserDetails(t *testing.T) {
	f := newProfileFixture()
	f.details.details["alice"] = &models.UserDetails{Username: "alice", FullName: "Alice"}

	details, err := f.svc.GetUserDetails(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", details.FullName)

	_, err = f.svc.GetUserDetails(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserDetailsNotFound)
}

func TestProfileService_UpdateUserDetails_Overwrites(t *testing.T) {
	f := newProfileFixture()
	f.details.details["alice"] = &models.UserDetails{
		ID:       7,
		Username: "alice",
		FullName: "Alice",
		College:  "Old College",
		Phone:    "111",
	}

	err := f.svc.UpdateUserDetails(context.Background(), &dto.UpdateUserDetailsRequest{
		Username: "alice",
		FullName: "Alice Updated",
		College:  "New College",
	})
	assert.NoError(t, err)

	stored := f.details.details["alice"]
	assert.Equal(t, "Alice Updated", stored.FullName)
	assert.Equal(t, "New College", stored.College)
	// Omitted fields overwrite with their zero values.
	assert.Equal(t, "", stored.Phone)
}

func TestProfileService_UpdateUserDetails_UnknownUsernameSucceeds(t *testing.T) {
	f := newProfileFixture()

	err := f.svc.UpdateUserDetails(context.Background(), &dto.UpdateUserDetailsRequest{
		Username: "nobody",
		FullName: "Whoever",
	})
	assert.NoError(t, err)
	assert.Empty(t, f.details.details)
}

func TestProfileService_GetMe(t *testing.T) {
	f := newProfileFixture()
	f.addUser("alice", "mentor1")
	f.details.details["alice"] = &models.UserDetails{Username: "alice", FullName: "Alice"}

	resp, err := f.svc.GetMe(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "mentor1", resp.MentorUsername)
	assert.NotNil(t, resp.Details)
	assert.Equal(t, "Alice", resp.Details.FullName)
}

func TestProfileService_GetMe_MissingProfileTolerated(t *testing.T) {
	f := newProfileFixture()
	f.addUser("alice", "")

	resp, err := f.svc.GetMe(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Nil(t, resp.Details)
}

func TestProfileService_GetMe_UnknownUser(t *testing.T) {
	f := newProfileFixture()

	_, err := f.svc.GetMe(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
