package progress_test

import (
	"testing"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeAll(t *testing.T, plans []planner.DayPlan) []planner.DayPlan {
	for i := range plans {
		var exerciseIDs, mealIDs []string
		for _, ex := range plans[i].Exercises {
			exerciseIDs = append(exerciseIDs, ex.ID)
		}
		for _, m := range plans[i].Meals {
			mealIDs = append(mealIDs, m.ID)
		}
		complete(t, &plans[i], exerciseIDs, mealIDs)
		require.NotNil(t, plans[i].CompletedStatus.AllCompletedAt)
	}
	return plans
}

func TestGoalProgress(t *testing.T) {
	testCases := []struct {
		goal            string
		expectedGoal    planner.Goal
		expectedPct     int
		expectedWeeks   int
		recommendations []string
	}{
		{
			goal:            "weight_loss",
			expectedGoal:    planner.GoalWeightLoss,
			expectedPct:     50,
			expectedWeeks:   24,
			recommendations: []string{progress.RecIncreaseCardio, progress.RecStayInDeficit},
		},
		{
			goal:            "muscle_gain",
			expectedGoal:    planner.GoalMuscleGain,
			expectedPct:     67,
			expectedWeeks:   24,
			recommendations: []string{progress.RecCompleteStrengthSets, progress.RecEatEveryMeal},
		},
		{
			goal:            "maintenance",
			expectedGoal:    planner.GoalMaintenance,
			expectedPct:     33,
			expectedWeeks:   13,
			recommendations: []string{progress.RecMoreFullDays, progress.RecBalancedDiet},
		},
		{
			goal:            "",
			expectedGoal:    planner.GoalMaintenance,
			expectedPct:     33,
			expectedWeeks:   13,
			recommendations: []string{progress.RecMoreFullDays, progress.RecBalancedDiet},
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.expectedGoal)+"/"+tc.goal, func(t *testing.T) {
			summary := progress.GoalProgress(planner.UserProfile{ID: 7, Goal: tc.goal}, testPlans(t))
			assert.Equal(t, tc.expectedGoal, summary.GoalType)
			assert.Equal(t, tc.expectedPct, summary.ProgressTowardsGoal)
			assert.Equal(t, tc.expectedWeeks, summary.EstimatedTimeToGoal)
			assert.Equal(t, 33, summary.WorkoutCompletionRate)
			assert.Equal(t, 67, summary.ExerciseCompletionRate)
			assert.Equal(t, 50, summary.MealCompletionRate)
			assert.Equal(t, tc.recommendations, summary.Recommendations)
		})
	}
}

func TestGoalProgress_EverythingCompleted(t *testing.T) {
	plans := completeAll(t, planner.NewGenerator().GenerateWeek(planner.UserProfile{ID: 1, Goal: "weight_loss"}))

	summary := progress.GoalProgress(planner.UserProfile{ID: 1, Goal: "weight_loss"}, plans)
	assert.Equal(t, 100, summary.ProgressTowardsGoal)
	assert.Equal(t, 12, summary.EstimatedTimeToGoal)
	assert.Equal(t, []string{progress.RecAddIntervals}, summary.Recommendations)

	summary = progress.GoalProgress(planner.UserProfile{ID: 1, Goal: "muscle_gain"}, plans)
	assert.Equal(t, 100, summary.ProgressTowardsGoal)
	assert.Equal(t, 16, summary.EstimatedTimeToGoal)
	assert.Equal(t, []string{progress.RecProgressiveOverload}, summary.Recommendations)

	summary = progress.GoalProgress(planner.UserProfile{ID: 1, Goal: "maintenance"}, plans)
	assert.Equal(t, 100, summary.ProgressTowardsGoal)
	assert.Equal(t, 4, summary.EstimatedTimeToGoal)
	assert.Equal(t, []string{progress.RecOnTrack}, summary.Recommendations)
}

func TestGoalProgress_NoPlans(t *testing.T) {
	summary := progress.GoalProgress(planner.UserProfile{ID: 1, Goal: "weight_loss"}, nil)
	assert.Equal(t, 0, summary.ProgressTowardsGoal)
	assert.Equal(t, 52, summary.EstimatedTimeToGoal)
	assert.Len(t, summary.Recommendations, 2)

	summary = progress.GoalProgress(planner.UserProfile{ID: 1, Goal: "maintenance"}, nil)
	assert.Equal(t, 40, summary.EstimatedTimeToGoal)
}
