//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplanner/internal/nutrition"
	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/users"
)

func (s *IntegrationTestSuite) TestWeekPlanFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	age, height, weight := 25, 165.0, 60.0
	email := gofakeit.Email()
	doRegister(ctx, t, users.RegisterParams{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: "password123",
		Age:      &age,
		Gender:   "female",
		Height:   &height,
		Weight:   &weight,
		Goal:     "weight_loss",
	})
	loginResp := doLogin(ctx, t, email, "password123")
	token := loginResp.Token

	status, body := doRequest(ctx, t, http.MethodPost, "/plans/generate", token, nil)
	require.Equal(t, http.StatusCreated, status, string(body))
	var week plans.ListResponse
	require.NoError(t, json.Unmarshal(body, &week))
	require.Equal(t, 7, week.Total)

	var storedDays int
	require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM day_plan WHERE user_id = $1`, loginResp.Profile.ID).Scan(&storedDays))
	assert.Equal(t, 7, storedDays)

	// complete everything on Sunday
	sunday := week.Plans[6]
	require.Equal(t, planner.Sunday, sunday.Day)
	for _, ex := range sunday.Exercises {
		status, _ := doRequest(ctx, t, http.MethodPut, fmt.Sprintf("/plans/Sunday/exercises/%s/complete", ex.ID), token, plans.CompletionRequest{Completed: true})
		require.Equal(t, http.StatusOK, status)
	}
	for _, meal := range sunday.Meals {
		status, _ := doRequest(ctx, t, http.MethodPut, fmt.Sprintf("/plans/Sunday/meals/%s/complete", meal.ID), token, plans.CompletionRequest{Completed: true})
		require.Equal(t, http.StatusOK, status)
	}

	status, body = doRequest(ctx, t, http.MethodGet, "/plans/sunday", token, nil)
	require.Equal(t, http.StatusOK, status)
	var storedSunday planner.DayPlan
	require.NoError(t, json.Unmarshal(body, &storedSunday))
	assert.NotNil(t, storedSunday.CompletedStatus.AllCompletedAt)

	status, body = doRequest(ctx, t, http.MethodGet, "/progress/streaks", token, nil)
	require.Equal(t, http.StatusOK, status)
	var streaks progress.Streaks
	require.NoError(t, json.Unmarshal(body, &streaks))
	assert.Equal(t, progress.Streaks{CurrentStreak: 1, LongestStreak: 1}, streaks)

	status, body = doRequest(ctx, t, http.MethodGet, "/progress/weekly", token, nil)
	require.Equal(t, http.StatusOK, status)
	var weekly progress.WeeklySummary
	require.NoError(t, json.Unmarshal(body, &weekly))
	assert.Equal(t, 7, weekly.TotalDays)
	assert.Equal(t, 1, weekly.CompletedDays)

	status, body = doRequest(ctx, t, http.MethodGet, "/progress/goal", token, nil)
	require.Equal(t, http.StatusOK, status)
	var goal progress.GoalSummary
	require.NoError(t, json.Unmarshal(body, &goal))
	assert.Equal(t, planner.GoalWeightLoss, goal.GoalType)
	assert.NotEmpty(t, goal.Recommendations)

	// the completed day gets harder, and starts over
	status, body = doRequest(ctx, t, http.MethodPost, "/plans/regenerate-intensity", token, nil)
	require.Equal(t, http.StatusOK, status)
	var adjusted plans.ListResponse
	require.NoError(t, json.Unmarshal(body, &adjusted))
	require.Equal(t, 7, adjusted.Total)
	assert.Nil(t, adjusted.Plans[6].CompletedStatus.AllCompletedAt)
	assert.Equal(t, min(sunday.Exercises[0].Sets+1, 5), adjusted.Plans[6].Exercises[0].Sets)

	status, _ = doRequest(ctx, t, http.MethodDelete, "/plans/Monday", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(ctx, t, http.MethodGet, "/plans/Monday", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestNutritionSearch() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := doRequest(ctx, t, http.MethodGet, "/nutrition/search?q=banana", "", nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var resp nutrition.SearchResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Bananas, raw", resp.Foods[0].Name)
	assert.Equal(t, 89, resp.Foods[0].Calories)

	status, _ = doRequest(ctx, t, http.MethodGet, "/nutrition/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
