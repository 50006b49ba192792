package progress

import (
	"math"

	"github.com/2beens/fitplanner/internal/planner"
)

const (
	RecIncreaseCardio       = "Increase cardio frequency: aim to fully complete at least 5 days a week"
	RecStayInDeficit        = "Follow your meal plan more closely to stay in a caloric deficit"
	RecAddIntervals         = "Great consistency! Consider adding interval training to keep progressing"
	RecCompleteStrengthSets = "Complete all planned strength sets to maximize muscle growth"
	RecEatEveryMeal         = "Eat every planned meal to hit your protein and calorie surplus"
	RecProgressiveOverload  = "Excellent work! Consider increasing the weights for progressive overload"
	RecMoreFullDays         = "Try to fully complete at least 4 days a week to maintain your fitness"
	RecBalancedDiet         = "Keep a balanced diet by following your meal plan"
	RecOnTrack              = "You're on track, keep up the good work!"

	maxEstimatedWeeks = 52
	// adherence below this is treated as this, so the estimate stays bounded
	minAdherencePct = 10
)

// weeks needed to reach the goal when every plan item is completed
var baseWeeksToGoal = map[planner.Goal]int{
	planner.GoalWeightLoss:  12,
	planner.GoalMuscleGain:  16,
	planner.GoalMaintenance: 4,
}

// GoalProgress blends completion rates according to the profile's goal:
// weight loss averages the workout and exercise rates, muscle gain uses the
// exercise rate, maintenance the workout rate (share of fully completed days).
func GoalProgress(profile planner.UserProfile, plans []planner.DayPlan) GoalSummary {
	goal, _ := planner.ParseGoal(profile.Goal)
	weekly := WeeklyProgress(plans)

	summary := GoalSummary{
		GoalType:               goal,
		WorkoutCompletionRate:  weekly.DayCompletionRate,
		ExerciseCompletionRate: weekly.ExerciseCompletionRate,
		MealCompletionRate:     weekly.MealCompletionRate,
		Recommendations:        make([]string, 0),
	}

	switch goal {
	case planner.GoalWeightLoss:
		summary.ProgressTowardsGoal = int(math.Round(
			float64(summary.WorkoutCompletionRate+summary.ExerciseCompletionRate) / 2,
		))
		if summary.WorkoutCompletionRate < 70 {
			summary.Recommendations = append(summary.Recommendations, RecIncreaseCardio)
		}
		if summary.MealCompletionRate < 80 {
			summary.Recommendations = append(summary.Recommendations, RecStayInDeficit)
		}
		if summary.ProgressTowardsGoal >= 90 {
			summary.Recommendations = append(summary.Recommendations, RecAddIntervals)
		}
	case planner.GoalMuscleGain:
		summary.ProgressTowardsGoal = summary.ExerciseCompletionRate
		if summary.ExerciseCompletionRate < 75 {
			summary.Recommendations = append(summary.Recommendations, RecCompleteStrengthSets)
		}
		if summary.MealCompletionRate < 85 {
			summary.Recommendations = append(summary.Recommendations, RecEatEveryMeal)
		}
		if summary.ProgressTowardsGoal >= 90 {
			summary.Recommendations = append(summary.Recommendations, RecProgressiveOverload)
		}
	default:
		summary.ProgressTowardsGoal = summary.WorkoutCompletionRate
		if summary.WorkoutCompletionRate < 60 {
			summary.Recommendations = append(summary.Recommendations, RecMoreFullDays)
		}
		if summary.MealCompletionRate < 70 {
			summary.Recommendations = append(summary.Recommendations, RecBalancedDiet)
		}
	}

	if len(summary.Recommendations) == 0 {
		summary.Recommendations = append(summary.Recommendations, RecOnTrack)
	}

	summary.EstimatedTimeToGoal = estimateWeeksToGoal(goal, summary.ProgressTowardsGoal)
	return summary
}

// estimateWeeksToGoal stretches the goal's base duration by the inverse of adherence.
func estimateWeeksToGoal(goal planner.Goal, progressPct int) int {
	base := baseWeeksToGoal[goal]
	adherence := max(progressPct, minAdherencePct)
	weeks := int(math.Ceil(float64(base) * 100 / float64(adherence)))
	return min(weeks, maxEstimatedWeeks)
}
