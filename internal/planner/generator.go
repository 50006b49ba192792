package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitplanner/pkg"

	log "github.com/sirupsen/logrus"
)

// Generator produces a week of exercises and meals for a user profile.
// It holds no state besides the tag generator and is safe for concurrent use.
type Generator struct {
	// ability to inject the generation tag func (for unit testing)
	TagFunc func() string
}

func NewGenerator() *Generator {
	return &Generator{
		TagFunc: newGenerationTag,
	}
}

func newGenerationTag() string {
	tag, err := pkg.GenerateRandomString(6)
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	// base64 URL alphabet contains '-', keep ids easy to split
	return strings.ReplaceAll(tag, "-", "x")
}

// GenerateWeek returns the 7 day plans, Monday to Sunday, for the profile.
// Ids are unique across the whole generated week.
func (g *Generator) GenerateWeek(profile UserProfile) []DayPlan {
	goal, err := ParseGoal(profile.Goal)
	if err != nil {
		log.Warnf("user [%d] has unknown goal [%s], falling back to [%s]", profile.ID, profile.Goal, goal)
	}

	calories := adjustForGoal(BMR(profile), goal)
	tag := g.TagFunc()
	log.Debugf("generating week for user [%d]: goal [%s], calories [%d], tag [%s]", profile.ID, goal, calories, tag)

	plans := make([]DayPlan, 0, len(Weekdays))
	for i, day := range Weekdays {
		plans = append(plans, DayPlan{
			UserID:          profile.ID,
			Day:             day,
			Exercises:       GenerateDayExercises(goal, i, tag),
			Meals:           GenerateDayMeals(goal, calories, i, tag),
			CompletedStatus: NewCompletedStatus(),
		})
	}
	return plans
}

// GenerateDayExercises expands the focus areas of the given weekday into
// catalog exercises, adjusted to the goal's intensity.
func GenerateDayExercises(goal Goal, dayIndex int, tag string) []Exercise {
	exercises := make([]Exercise, 0)
	for _, area := range FocusAreas(goal, dayIndex) {
		for _, t := range exerciseCatalog[area] {
			ex := Exercise{
				ID:           fmt.Sprintf("ex-%s-%d-%d-%s", tag, dayIndex, len(exercises)+1, t.key),
				Name:         t.name,
				Sets:         t.sets,
				Reps:         t.reps,
				Instructions: t.instructions,
				MuscleGroup:  area,
			}
			if t.duration > 0 {
				duration := t.duration
				ex.Duration = &duration
			}

			switch goal {
			case GoalMuscleGain:
				ex.Sets++
			case GoalWeightLoss:
				if ex.Reps > 0 {
					ex.Reps += 5
				}
			}

			exercises = append(exercises, ex)
		}
	}
	return exercises
}

// GenerateDayMeals splits the daily calories across breakfast, lunch, dinner
// and snack, and scales the weekday's template variation to each allocation.
func GenerateDayMeals(goal Goal, dailyCalories int, dayIndex int, tag string) []Meal {
	templates, ok := mealCatalog[goal]
	if !ok {
		templates = mealCatalog[GoalMaintenance]
	}

	meals := make([]Meal, 0, len(MealTypes))
	for _, mealType := range MealTypes {
		variations := templates[mealType]
		variation := variations[dayIndex%len(variations)]

		m := scaleMeal(variation, MealCalories(dailyCalories, mealType))
		m.ID = fmt.Sprintf("meal-%s-%d-%s", tag, dayIndex, mealType)
		m.Type = mealType
		meals = append(meals, m)
	}
	return meals
}

// scaleMeal multiplies every nutrition and quantity field of the template so
// that the meal totals exactly targetCalories.
func scaleMeal(t mealTemplate, targetCalories int) Meal {
	factor := 0.0
	if t.calories > 0 {
		factor = float64(targetCalories) / t.calories
	}

	m := Meal{
		Name:     t.name,
		Calories: targetCalories,
		Protein:  float64Ptr(round1(t.protein * factor)),
		Carbs:    float64Ptr(round1(t.carbs * factor)),
		Fat:      float64Ptr(round1(t.fat * factor)),
		Foods:    make([]Food, 0, len(t.foods)),
	}
	for _, f := range t.foods {
		m.Foods = append(m.Foods, Food{
			Name:     f.name,
			Quantity: round1(f.quantity * factor),
			Unit:     f.unit,
			Calories: int(math.Round(f.calories * factor)),
			Protein:  float64Ptr(round1(f.protein * factor)),
			Carbs:    float64Ptr(round1(f.carbs * factor)),
			Fat:      float64Ptr(round1(f.fat * factor)),
		})
	}
	return m
}

func float64Ptr(v float64) *float64 {
	return &v
}
