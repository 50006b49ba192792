package progress

import (
	"math"

	"github.com/2beens/fitplanner/internal/planner"
)

const otherMuscleGroup = "other"

// WeeklyProgress counts days, exercises and meals, planned and completed.
func WeeklyProgress(plans []planner.DayPlan) WeeklySummary {
	summary := WeeklySummary{
		TotalDays: len(plans),
	}

	for i := range plans {
		plan := &plans[i]
		if plan.CompletedStatus.AllCompletedAt != nil {
			summary.CompletedDays++
		}
		for _, ex := range plan.Exercises {
			summary.TotalExercises++
			if plan.IsExerciseCompleted(ex.ID) {
				summary.CompletedExercises++
			}
		}
		for _, m := range plan.Meals {
			summary.TotalMeals++
			if plan.IsMealCompleted(m.ID) {
				summary.CompletedMeals++
			}
		}
	}

	summary.DayCompletionRate = percentage(summary.CompletedDays, summary.TotalDays)
	summary.ExerciseCompletionRate = percentage(summary.CompletedExercises, summary.TotalExercises)
	summary.MealCompletionRate = percentage(summary.CompletedMeals, summary.TotalMeals)

	return summary
}

// ExerciseProgress accumulates exercise completion overall and per muscle group.
// Exercises without a muscle group are counted under "other".
func ExerciseProgress(plans []planner.DayPlan) ExerciseSummary {
	summary := ExerciseSummary{
		MuscleGroupProgress: make(map[string]Counter),
	}

	for i := range plans {
		plan := &plans[i]
		for _, ex := range plan.Exercises {
			group := ex.MuscleGroup
			if group == "" {
				group = otherMuscleGroup
			}

			counter := summary.MuscleGroupProgress[group]
			counter.Total++
			summary.TotalExercises++
			if plan.IsExerciseCompleted(ex.ID) {
				counter.Completed++
				summary.CompletedExercises++
			}
			summary.MuscleGroupProgress[group] = counter
		}
	}

	summary.CompletionRate = percentage(summary.CompletedExercises, summary.TotalExercises)
	return summary
}

// ExerciseTime is the exercise duration in seconds if set, otherwise an estimate
// of 2 seconds per rep plus 30 seconds of rest per set.
func ExerciseTime(ex planner.Exercise) int {
	if ex.Duration != nil {
		return *ex.Duration
	}
	return ex.Sets*ex.Reps*2 + ex.Sets*30
}

// TimeProgress sums up the planned workout time. The average is taken over days
// that have any workout time, frequency counts days with a completed exercise.
func TimeProgress(plans []planner.DayPlan) TimeSummary {
	var summary TimeSummary
	daysWithTime := 0

	for i := range plans {
		plan := &plans[i]
		dayTime := 0
		anyCompleted := false
		for _, ex := range plan.Exercises {
			dayTime += ExerciseTime(ex)
			if plan.IsExerciseCompleted(ex.ID) {
				anyCompleted = true
			}
		}

		summary.TotalWorkoutTime += dayTime
		if dayTime > 0 {
			daysWithTime++
		}
		if anyCompleted {
			summary.WorkoutFrequency++
		}
	}

	if daysWithTime > 0 {
		summary.AverageWorkoutTime = int(math.Round(float64(summary.TotalWorkoutTime) / float64(daysWithTime)))
	}

	return summary
}

// MealProgress mirrors ExerciseProgress for meals: counts, calories and macros,
// overall and per weekday.
func MealProgress(plans []planner.DayPlan) MealSummary {
	summary := MealSummary{
		DailyStats: make(map[planner.Weekday]DailyMealStats),
	}

	var nb NutritionBreakdown
	for i := range plans {
		plan := &plans[i]
		daily := summary.DailyStats[plan.Day]
		for _, m := range plan.Meals {
			consumed := plan.IsMealCompleted(m.ID)

			daily.TotalMeals++
			daily.TotalCalories += m.Calories
			addMacro(&nb.Protein, m.Protein, consumed)
			addMacro(&nb.Carbs, m.Carbs, consumed)
			addMacro(&nb.Fat, m.Fat, consumed)

			if consumed {
				daily.ConsumedMeals++
				daily.ConsumedCalories += m.Calories
			}
		}
		summary.DailyStats[plan.Day] = daily

		summary.TotalMeals += daily.TotalMeals
		summary.ConsumedMeals += daily.ConsumedMeals
		summary.TotalCalories += daily.TotalCalories
		summary.ConsumedCalories += daily.ConsumedCalories
	}

	summary.ConsumptionPercentage = percentage(summary.ConsumedCalories, summary.TotalCalories)
	summary.NutritionBreakdown = NutritionBreakdown{
		Protein: roundMacro(nb.Protein),
		Carbs:   roundMacro(nb.Carbs),
		Fat:     roundMacro(nb.Fat),
	}

	return summary
}

func addMacro(mp *MacroProgress, grams *float64, consumed bool) {
	if grams == nil {
		return
	}
	mp.Total += *grams
	if consumed {
		mp.Consumed += *grams
	}
}

func roundMacro(mp MacroProgress) MacroProgress {
	return MacroProgress{
		Total:    math.Round(mp.Total*10) / 10,
		Consumed: math.Round(mp.Consumed*10) / 10,
	}
}

// percentage returns round(part/total*100), and 0 for an empty total.
func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
