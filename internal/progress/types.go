package progress

import "github.com/2beens/fitplanner/internal/planner"

// WeeklySummary counts what was planned and done across a user's week.
// Rates are whole percentages, 0 when there is nothing to rate.
type WeeklySummary struct {
	TotalDays              int `json:"totalDays"`
	CompletedDays          int `json:"completedDays"`
	TotalExercises         int `json:"totalExercises"`
	CompletedExercises     int `json:"completedExercises"`
	TotalMeals             int `json:"totalMeals"`
	CompletedMeals         int `json:"completedMeals"`
	DayCompletionRate      int `json:"dayCompletionRate"`
	ExerciseCompletionRate int `json:"exerciseCompletionRate"`
	MealCompletionRate     int `json:"mealCompletionRate"`
}

type Counter struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type ExerciseSummary struct {
	TotalExercises      int                `json:"totalExercises"`
	CompletedExercises  int                `json:"completedExercises"`
	CompletionRate      int                `json:"completionRate"`
	MuscleGroupProgress map[string]Counter `json:"muscleGroupProgress"`
}

type Streaks struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// TimeSummary durations are in seconds.
type TimeSummary struct {
	TotalWorkoutTime   int `json:"totalWorkoutTime"`
	AverageWorkoutTime int `json:"averageWorkoutTime"`
	WorkoutFrequency   int `json:"workoutFrequency"`
}

type GoalSummary struct {
	GoalType               planner.Goal `json:"goalType"`
	ProgressTowardsGoal    int          `json:"progressTowardsGoal"`
	EstimatedTimeToGoal    int          `json:"estimatedTimeToGoal"` // weeks
	WorkoutCompletionRate  int          `json:"workoutCompletionRate"`
	ExerciseCompletionRate int          `json:"exerciseCompletionRate"`
	MealCompletionRate     int          `json:"mealCompletionRate"`
	Recommendations        []string     `json:"recommendations"`
}

type DailyMealStats struct {
	TotalMeals       int `json:"totalMeals"`
	ConsumedMeals    int `json:"consumedMeals"`
	TotalCalories    int `json:"totalCalories"`
	ConsumedCalories int `json:"consumedCalories"`
}

type MacroProgress struct {
	Total    float64 `json:"total"`
	Consumed float64 `json:"consumed"`
}

type NutritionBreakdown struct {
	Protein MacroProgress `json:"protein"`
	Carbs   MacroProgress `json:"carbs"`
	Fat     MacroProgress `json:"fat"`
}

type MealSummary struct {
	TotalMeals            int                                `json:"totalMeals"`
	ConsumedMeals         int                                `json:"consumedMeals"`
	TotalCalories         int                                `json:"totalCalories"`
	ConsumedCalories      int                                `json:"consumedCalories"`
	ConsumptionPercentage int                                `json:"consumptionPercentage"`
	DailyStats            map[planner.Weekday]DailyMealStats `json:"dailyStats"`
	NutritionBreakdown    NutritionBreakdown                 `json:"nutritionBreakdown"`
}
