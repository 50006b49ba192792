package planner

import "math"

const (
	defaultAge          = 25
	defaultWeightMale   = 70.0
	defaultWeightFemale = 60.0
	defaultHeightMale   = 175.0
	defaultHeightFemale = 165.0
)

// mealShares splits the daily calories across the meal slots.
var mealShares = map[MealType]float64{
	MealTypeBreakfast: 0.25,
	MealTypeLunch:     0.35,
	MealTypeDinner:    0.30,
	MealTypeSnack:     0.10,
}

// BMR returns the basal metabolic rate (revised Harris-Benedict), substituting
// defaults for the missing anthropometrics. Anything but "male" uses the
// female formula.
func BMR(profile UserProfile) float64 {
	male := profile.IsMale()

	weight := defaultWeightFemale
	height := defaultHeightFemale
	if male {
		weight = defaultWeightMale
		height = defaultHeightMale
	}
	if profile.Weight != nil {
		weight = *profile.Weight
	}
	if profile.Height != nil {
		height = *profile.Height
	}
	age := float64(defaultAge)
	if profile.Age != nil {
		age = float64(*profile.Age)
	}

	if male {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*age
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*age
}

// EstimateBaseCalories is the daily calorie target for the profile's goal.
// There is no floor: extreme inputs can produce a negative number.
func EstimateBaseCalories(profile UserProfile) int {
	goal, _ := ParseGoal(profile.Goal)
	return adjustForGoal(BMR(profile), goal)
}

func adjustForGoal(bmr float64, goal Goal) int {
	var calories float64
	switch goal {
	case GoalWeightLoss:
		calories = bmr*1.2 - 300
	case GoalMuscleGain:
		calories = bmr*1.5 + 300
	default:
		calories = bmr * 1.3
	}
	return int(math.Round(calories))
}

// MealCalories returns the calories allocated to a meal slot.
func MealCalories(dailyCalories int, mealType MealType) int {
	return int(math.Round(float64(dailyCalories) * mealShares[mealType]))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
