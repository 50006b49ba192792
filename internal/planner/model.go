package planner

import (
	"strings"
	"time"
)

// Goal drives calorie targets, exercise intensity and meal template selection.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
)

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintenance:
		return true
	default:
		return false
	}
}

// ParseGoal maps a stored goal value to a Goal. A missing goal is maintenance.
// An unrecognized one is maintenance as well, but ErrInvalidGoal is returned
// so the caller can log it (or reject it, at write boundaries).
func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	if g == "" {
		return GoalMaintenance, nil
	}
	if !g.IsValid() {
		return GoalMaintenance, ErrInvalidGoal
	}
	return g, nil
}

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// MealTypes in the order they are served during the day.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func (mt MealType) IsValid() bool {
	switch mt {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	default:
		return false
	}
}

// UserProfile is the read-only view of a user the planner works with.
// Optional anthropometrics are nil when the user never provided them.
type UserProfile struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Age    *int     `json:"age,omitempty"`
	Gender string   `json:"gender,omitempty"`
	Height *float64 `json:"height,omitempty"` // cm
	Weight *float64 `json:"weight,omitempty"` // kg
	Goal   string   `json:"goal,omitempty"`
	Role   string   `json:"role"`
}

func (p *UserProfile) IsMale() bool {
	return strings.EqualFold(strings.TrimSpace(p.Gender), "male")
}

// ProfileUpdate lists the profile fields a user may change. Nil means untouched.
type ProfileUpdate struct {
	Name   *string  `json:"name,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Gender *string  `json:"gender,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Apply copies the set fields onto the profile.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		age := *u.Age
		p.Age = &age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Height != nil {
		h := *u.Height
		p.Height = &h
	}
	if u.Weight != nil {
		w := *u.Weight
		p.Weight = &w
	}
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Gender == nil && u.Height == nil && u.Weight == nil
}

type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps,omitempty"` // 0 for purely timed exercises
	Weight       *float64 `json:"weight,omitempty"`
	Duration     *int     `json:"duration,omitempty"` // seconds
	Instructions string   `json:"instructions"`
	MuscleGroup  string   `json:"muscleGroup,omitempty"`
}

type Food struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Calories int      `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

type Meal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     MealType `json:"type"`
	Calories int      `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Foods    []Food   `json:"foods"`
}

// CompletedStatus tracks which items of a DayPlan are done.
// AllCompletedAt is derived, see DayPlan.RefreshCompletion.
type CompletedStatus struct {
	Exercises      map[string]bool `json:"exercises"`
	Meals          map[string]bool `json:"meals"`
	AllCompletedAt *time.Time      `json:"allCompletedAt,omitempty"`
}

func NewCompletedStatus() CompletedStatus {
	return CompletedStatus{
		Exercises: make(map[string]bool),
		Meals:     make(map[string]bool),
	}
}

// DayPlan pairs one weekday's exercises and meals with their completion state.
type DayPlan struct {
	ID              int             `json:"id"`
	UserID          int             `json:"userId"`
	Day             Weekday         `json:"day"`
	Exercises       []Exercise      `json:"exercises"`
	Meals           []Meal          `json:"meals"`
	CompletedStatus CompletedStatus `json:"completedStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
