package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/backend/internal/app/controllers"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/app/routes"
	"github.com/mentorhub/backend/internal/app/services"
	"github.com/mentorhub/backend/internal/middleware"
	"github.com/mentorhub/backend/internal/pkg/auth"
)

// In-memory repositories backing the full HTTP surface for handler tests.

type memUserRepo struct {
	users   map[string]*models.User
	details map[string]*models.UserDetails
	nextID  int64
}

func (r *memUserRepo) CreateWithDetails(_ context.Context, user *models.User, details *models.UserDetails) error {
	if _, ok := r.users[user.Username]; ok {
		return repositories.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	details.ID = r.nextID
	r.users[user.Username] = user
	r.details[details.Username] = details
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *memUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	list := []*models.User{}
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

type memUserDetailsRepo struct {
	userRepo *memUserRepo
}

func (r *memUserDetailsRepo) GetByUsername(_ context.Context, username string) (*models.UserDetails, error) {
	d, ok := r.userRepo.details[username]
	if !ok {
		return nil, repositories.ErrUserDetailsNotFound
	}
	return d, nil
}

func (r *memUserDetailsRepo) GetAll(_ context.Context) ([]*models.UserDetails, error) {
	list := []*models.UserDetails{}
	for _, d := range r.userRepo.details {
		list = append(list, d)
	}
	return list, nil
}

func (r *memUserDetailsRepo) Overwrite(_ context.Context, details *models.UserDetails) error {
	existing, ok := r.userRepo.details[details.Username]
	if !ok {
		return nil
	}
	details.ID = existing.ID
	details.JoinedDate = existing.JoinedDate
	r.userRepo.details[details.Username] = details
	return nil
}

type memMentorRepo struct {
	mentors []*models.Mentor
	nextID  int64
}

func (r *memMentorRepo) Create(_ context.Context, mentor *models.Mentor) (int64, error) {
	for _, m := range r.mentors {
		if m.Username == mentor.Username {
			return 0, repositories.ErrMentorUsernameTaken
		}
	}
	r.nextID++
	mentor.ID = r.nextID
	r.mentors = append(r.mentors, mentor)
	return mentor.ID, nil
}

func (r *memMentorRepo) GetByUsername(_ context.Context, username string) (*models.Mentor, error) {
	for _, m := range r.mentors {
		if m.Username == username {
			return m, nil
		}
	}
	return nil, repositories.ErrMentorNotFound
}

func (r *memMentorRepo) GetAll(_ context.Context) ([]*models.Mentor, error) {
	return append([]*models.Mentor{}, r.mentors...), nil
}

func (r *memMentorRepo) Delete(_ context.Context, id int64) error {
	for i, m := range r.mentors {
		if m.ID == id {
			r.mentors = append(r.mentors[:i], r.mentors[i+1:]...)
			return nil
		}
	}
	return repositories.ErrMentorNotFound
}

type memJobRepo struct {
	jobs   []*models.Job
	nextID int64
}

func (r *memJobRepo) Create(_ context.Context, job *models.Job) (int64, error) {
	r.nextID++
	job.ID = r.nextID
	r.jobs = append(r.jobs, job)
	return job.ID, nil
}

func (r *memJobRepo) GetAll(_ context.Context) ([]*models.Job, error) {
	return append([]*models.Job{}, r.jobs...), nil
}

func (r *memJobRepo) Delete(_ context.Context, id int64) error {
	for i, j := range r.jobs {
		if j.ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrJobNotFound
}

type memCodingQuestionRepo struct {
	questions []*models.CodingQuestion
	nextID    int64
}

func (r *memCodingQuestionRepo) Create(_ context.Context, q *models.CodingQuestion) (int64, error) {
	r.nextID++
	q.ID = r.nextID
	r.questions = append(r.questions, q)
	return q.ID, nil
}

func (r *memCodingQuestionRepo) GetAll(_ context.Context) ([]*models.CodingQuestion, error) {
	return append([]*models.CodingQuestion{}, r.questions...), nil
}

type memAnnouncementRepo struct {
	announcements []*models.Announcement
	nextID        int64
}

func (r *memAnnouncementRepo) Create(_ context.Context, a *models.Announcement) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.announcements = append(r.announcements, a)
	return a.ID, nil
}

func (r *memAnnouncementRepo) GetAll(_ context.Context) ([]*models.Announcement, error) {
	return append([]*models.Announcement{}, r.announcements...), nil
}

func (r *memAnnouncementRepo) Delete(_ context.Context, id int64) error {
	for i, a := range r.announcements {
		if a.ID == id {
			r.announcements = append(r.announcements[:i], r.announcements[i+1:]...)
			return nil
		}
	}
	return repositories.ErrAnnouncementNotFound
}

type testEnv struct {
	router  *gin.Engine
	users   *memUserRepo
	mentors *memMentorRepo
	jobs    *memJobRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	userRepo := &memUserRepo{users: map[string]*models.User{}, details: map[string]*models.UserDetails{}}
	detailsRepo := &memUserDetailsRepo{userRepo: userRepo}
	mentorRepo := &memMentorRepo{}
	jobRepo := &memJobRepo{}
	questionRepo := &memCodingQuestionRepo{}
	announcementRepo := &memAnnouncementRepo{}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentorhub.test",
	})

	authService := services.NewAuthService(userRepo, jwtService, zerolog.Nop())
	profileService := services.NewProfileService(userRepo, detailsRepo, mentorRepo)
	mentorService := services.NewMentorService(mentorRepo)
	jobService := services.NewJobService(jobRepo)
	questionService := services.NewCodingQuestionService(questionRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authService, zerolog.Nop()),
		controllers.NewProfileController(profileService),
		controllers.NewMentorController(mentorService),
		controllers.NewJobController(jobService),
		controllers.NewCodingQuestionController(questionService),
		controllers.NewAnnouncementController(announcementService),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &testEnv{router: router, users: userRepo, mentors: mentorRepo, jobs: jobRepo}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-users", gin.H{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "User added successfully", body["message"])
	assert.Equal(t, "alice", body["username"])

	// Duplicate registration
	w = env.do(t, "POST", "/add-users", gin.H{"username": "alice", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["message"])

	// Login
	w = env.do(t, "POST", "/login", gin.H{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.NotEmpty(t, body["accessToken"])

	// Wrong password
	w = env.do(t, "POST", "/login", gin.H{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid password", decodeBody(t, w)["message"])

	// Unknown user
	w = env.do(t, "POST", "/login", gin.H{"username": "ghost", "password": "secret"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User does not exist", decodeBody(t, w)["message"])
}

func TestGetAllUsers_OmitsPasswordHash(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-users", gin.H{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "GET", "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 1)
	_, leaked := users[0]["password_hash"]
	assert.False(t, leaked)
	assert.NotContains(t, w.Body.String(), "$2")
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-users", gin.H{"username": "alice", "password": "secret", "full_name": "Alice"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "POST", "/login", gin.H{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	token, _ := decodeBody(t, w)["accessToken"].(string)
	assert.NotEmpty(t, token)

	// Without a token
	w = env.do(t, "GET", "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// With the issued token
	w = env.do(t, "GET", "/me", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decodeBody(t, w)["username"])

	// With an expired token signed with the same secret
	expiredSigner := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "mentorhub.test",
	})
	expired, _, err := expiredSigner.GenerateAccessToken("alice")
	assert.NoError(t, err)

	w = env.do(t, "GET", "/me", nil, "Authorization", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, w)["message"])

	// With a token signed with a different secret
	foreignSigner := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "other-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentorhub.test",
	})
	foreign, _, err := foreignSigner.GenerateAccessToken("alice")
	assert.NoError(t, err)

	w = env.do(t, "GET", "/me", nil, "Authorization", "Bearer "+foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, w)["message"])
}

func TestJobLifecycle(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-jobs", gin.H{"company": "Acme", "role": "SDE", "location": "Remote"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Job added successfully", decodeBody(t, w)["message"])

	// Lists are bare JSON arrays, on both the canonical and alias paths.
	for _, path := range []string{"/jobs", "/frontend-jobs"} {
		w = env.do(t, "GET", path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var jobs []models.Job
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
		assert.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].Company)
	}

	w = env.do(t, "DELETE", "/delete-jobs/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Job deleted successfully", body["message"])
	assert.Equal(t, float64(1), body["deletedId"])

	// Deleting again is a 404.
	w = env.do(t, "DELETE", "/delete-jobs/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric id
	w = env.do(t, "DELETE", "/delete-jobs/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMentorEndpoints(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-mentor", gin.H{
		"username":    "mentor1",
		"name":        "Mentor One",
		"expertise":   "Backend",
		"joined_date": "2001-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Mentor added successfully", decodeBody(t, w)["message"])

	// A second mentor with the same username is rejected as a client error.
	w = env.do(t, "POST", "/add-mentor", gin.H{"username": "mentor1", "name": "Impostor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Mentor with this username already exists", decodeBody(t, w)["message"])

	w = env.do(t, "GET", "/mentors-details", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var mentors []models.Mentor
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &mentors))
	assert.Len(t, mentors, 1)
	// joined_date is stamped server side, not taken from the request.
	assert.True(t, mentors[0].JoinedDate.After(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))

	w = env.do(t, "DELETE", "/delete-mentor/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "DELETE", "/delete-mentor/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMentorForUser(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-mentor", gin.H{"username": "mentor1", "name": "Mentor One"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "POST", "/add-users", gin.H{"username": "alice", "password": "secret", "mentor_username": "mentor1"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "POST", "/frontend-mentor-details", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["user_username"])
	assert.Equal(t, "mentor1", body["mentor_username"])

	// Users without an assigned mentor resolve to the same 404 as unknown users.
	w = env.do(t, "POST", "/add-users", gin.H{"username": "bob", "password": "secret"})
	assert.Equal(t, http.StatusCreated, w.Code)

	for _, username := range []string{"bob", "ghost"} {
		w = env.do(t, "POST", "/frontend-mentor-details", gin.H{"username": username})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Mentor not found for this user", decodeBody(t, w)["message"])
	}
}

func TestUserDetailsEndpoints(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-users", gin.H{"username": "alice", "password": "secret", "full_name": "Alice", "phone": "111"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "POST", "/frontend-user-details", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Alice", body["full_name"])
	assert.Equal(t, models.DefaultPhotoURL, body["photo_url"])
	assert.Equal(t, float64(models.DefaultGraduationYear), body["graduation_year"])

	// Full overwrite: omitted fields blank out.
	for _, path := range []string{"/update-user-details", "/frontend-update-user-details"} {
		w = env.do(t, "POST", path, gin.H{"username": "alice", "full_name": "Alice Updated"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User Details Updated Successfully.", decodeBody(t, w)["message"])
	}

	w = env.do(t, "POST", "/frontend-user-details", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Alice Updated", body["full_name"])
	assert.Equal(t, "", body["phone"])

	// Updating an unknown username still reports success.
	w = env.do(t, "POST", "/update-user-details", gin.H{"username": "nobody", "full_name": "X"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown profile lookup is a 404.
	w = env.do(t, "POST", "/frontend-user-details", gin.H{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCodingQuestionEndpoints(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-coding-question", gin.H{"name": "Two Sum", "difficulty": "Easy", "link": "https://example.com/two-sum"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Coding question added", decodeBody(t, w)["message"])

	for _, path := range []string{"/coding-questions", "/frontend-coding-questions"} {
		w = env.do(t, "GET", path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var questions []models.CodingQuestion
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
		assert.Len(t, questions, 1)
		assert.Equal(t, "Two Sum", questions[0].Name)
	}
}

func TestAnnouncementEndpoints(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/add-announcements", gin.H{"title": "Placement drive", "description": "Campus drive next week"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Announcement Added Successfully.", decodeBody(t, w)["message"])

	w = env.do(t, "GET", "/announcements", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var announcements []models.Announcement
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &announcements))
	assert.Len(t, announcements, 1)

	w = env.do(t, "DELETE", "/delete-announcements/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Announcement Deleted Successfully.", decodeBody(t, w)["message"])

	w = env.do(t, "DELETE", "/delete-announcements/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
