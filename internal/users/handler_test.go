package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v9"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/users"
)

type allowAllLimiter struct {
	calls int
}

func (l *allowAllLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	l.calls++
	return &redis_rate.Result{Allowed: 1, Remaining: 10}, nil
}

func newTestRouter(t *testing.T) (*mux.Router, *MockusersRepo, *MocksessionsService, *allowAllLimiter) {
	t.Helper()
	service, repoMock, sessionsMock := newTestService(t)
	limiter := &allowAllLimiter{}
	r := mux.NewRouter()
	users.NewHandler(service).SetupRoutes(r, limiter, 10, metrics.NewTestManager())
	return r, repoMock, sessionsMock, limiter
}

func TestHandler_Register(t *testing.T) {
	r, repoMock, _, limiter := newTestRouter(t)

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user users.User) (*users.User, error) {
			user.ID = 3
			return &user, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ana","email":"Ana@Mail.com","password":"password123","goal":"weight_loss"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var profile planner.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, 3, profile.ID)
	assert.Equal(t, "ana@mail.com", profile.Email)
	assert.Equal(t, "weight_loss", profile.Goal)
	assert.Equal(t, 1, limiter.calls)

	// bad body
	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, users.ErrEmailTaken)
	req = httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ana","email":"ana@mail.com","password":"password123"}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandler_Login(t *testing.T) {
	r, repoMock, sessionsMock, _ := newTestRouter(t)

	hash, err := fastHash("password123")
	require.NoError(t, err)
	repoMock.EXPECT().FindByEmail(gomock.Any(), "ana@mail.com").Return(&users.User{
		UserProfile:  planner.UserProfile{ID: 3, Email: "ana@mail.com"},
		PasswordHash: hash,
	}, nil).Times(2)
	sessionsMock.EXPECT().Login(gomock.Any(), 3, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, createdAt time.Time) (string, error) {
			assert.WithinDuration(t, time.Now(), createdAt, time.Minute)
			return "tkn-3", nil
		})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ana@mail.com","password":"password123"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var loginResp users.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, "tkn-3", loginResp.Token)
	assert.Equal(t, 3, loginResp.Profile.ID)

	req = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ana@mail.com","password":"wrong-pass"}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@mail.com"}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Logout(t *testing.T) {
	r, _, sessionsMock, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	sessionsMock.EXPECT().Logout(gomock.Any(), "tkn").Return(nil)
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set(auth.TokenHeader, "tkn")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logged-out", rr.Body.String())

	sessionsMock.EXPECT().Logout(gomock.Any(), "tkn").Return(auth.ErrInvalidToken)
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set(auth.TokenHeader, "tkn")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_Profile(t *testing.T) {
	r, repoMock, _, _ := newTestRouter(t)

	// no user in context
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	age := 40
	repoMock.EXPECT().FindProfile(gomock.Any(), 8).Return(&planner.UserProfile{ID: 8, Age: &age}, nil)
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 8))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":8,"name":"","email":"","age":40,"role":""}`, rr.Body.String())

	repoMock.EXPECT().FindProfile(gomock.Any(), 9).Return(nil, planner.ErrProfileNotFound)
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 9))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	height := 181.0
	repoMock.EXPECT().
		UpdateProfile(gomock.Any(), 8, planner.ProfileUpdate{Height: &height}).
		Return(&planner.UserProfile{ID: 8, Height: &height}, nil)
	req = httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"height":181}`))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 8))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_UpdateGoal(t *testing.T) {
	r, repoMock, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/profile/goal", strings.NewReader(`{"goal":"couch_potato"}`))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 8))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	repoMock.EXPECT().UpdateGoal(gomock.Any(), 8, planner.GoalMuscleGain).Return(nil)
	req = httptest.NewRequest(http.MethodPut, "/profile/goal", strings.NewReader(`{"goal":"muscle_gain"}`))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 8))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"goal":"muscle_gain"}`, rr.Body.String())
}
