//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/users"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)
	doRegister(ctx, t, users.RegisterParams{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: password,
		Goal:     "muscle_gain",
	})

	// same email again
	status, _ := doRequest(ctx, t, http.MethodPost, "/auth/register", "", users.RegisterParams{
		Name:     "Someone Else",
		Email:    email,
		Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doRequest(ctx, t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	loginResp := doLogin(ctx, t, email, password)
	assert.Equal(t, "muscle_gain", loginResp.Profile.Goal)

	status, body := doRequest(ctx, t, http.MethodGet, "/profile", loginResp.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var profile planner.UserProfile
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, loginResp.Profile.ID, profile.ID)

	status, _ = doRequest(ctx, t, http.MethodPost, "/auth/logout", loginResp.Token, nil)
	require.Equal(t, http.StatusOK, status)

	// session revoked, token no longer works
	status, _ = doRequest(ctx, t, http.MethodGet, "/profile", loginResp.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestUpdateProfileAndGoal() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	email := gofakeit.Email()
	doRegister(ctx, t, users.RegisterParams{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: "password123",
	})
	token := doLogin(ctx, t, email, "password123").Token

	status, body := doRequest(ctx, t, http.MethodPut, "/profile", token, map[string]any{
		"age":    29,
		"weight": 72.5,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var profile planner.UserProfile
	require.NoError(t, json.Unmarshal(body, &profile))
	require.NotNil(t, profile.Age)
	assert.Equal(t, 29, *profile.Age)

	status, _ = doRequest(ctx, t, http.MethodPut, "/profile/goal", token, map[string]string{"goal": "bulking"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doRequest(ctx, t, http.MethodPut, "/profile/goal", token, map[string]string{"goal": "weight_loss"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"goal": "weight_loss"}`, string(body))
}
