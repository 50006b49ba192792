package planner

import (
	"fmt"
	"time"
)

func (p *DayPlan) IsExerciseCompleted(id string) bool {
	return p.CompletedStatus.Exercises[id]
}

func (p *DayPlan) IsMealCompleted(id string) bool {
	return p.CompletedStatus.Meals[id]
}

// AllCompleted reports whether the plan has items and every one of them is done.
func (p *DayPlan) AllCompleted() bool {
	// an empty day is never complete, so it cannot feed a streak
	if len(p.Exercises) == 0 && len(p.Meals) == 0 {
		return false
	}
	for _, ex := range p.Exercises {
		if !p.IsExerciseCompleted(ex.ID) {
			return false
		}
	}
	for _, m := range p.Meals {
		if !p.IsMealCompleted(m.ID) {
			return false
		}
	}
	return true
}

// RefreshCompletion keeps AllCompletedAt in line with the completion maps:
// set (once) while everything is done, cleared as soon as something is not.
func (p *DayPlan) RefreshCompletion(now time.Time) {
	if p.CompletedStatus.Exercises == nil {
		p.CompletedStatus.Exercises = make(map[string]bool)
	}
	if p.CompletedStatus.Meals == nil {
		p.CompletedStatus.Meals = make(map[string]bool)
	}

	if !p.AllCompleted() {
		p.CompletedStatus.AllCompletedAt = nil
		return
	}
	if p.CompletedStatus.AllCompletedAt == nil {
		completedAt := now
		p.CompletedStatus.AllCompletedAt = &completedAt
	}
}

func (p *DayPlan) SetExerciseCompleted(id string, done bool, now time.Time) error {
	if !p.hasExercise(id) {
		return fmt.Errorf("%w: exercise %s", ErrItemNotFound, id)
	}
	if p.CompletedStatus.Exercises == nil {
		p.CompletedStatus.Exercises = make(map[string]bool)
	}
	p.CompletedStatus.Exercises[id] = done
	p.RefreshCompletion(now)
	return nil
}

func (p *DayPlan) SetMealCompleted(id string, done bool, now time.Time) error {
	if !p.hasMeal(id) {
		return fmt.Errorf("%w: meal %s", ErrItemNotFound, id)
	}
	if p.CompletedStatus.Meals == nil {
		p.CompletedStatus.Meals = make(map[string]bool)
	}
	p.CompletedStatus.Meals[id] = done
	p.RefreshCompletion(now)
	return nil
}

// ReplaceItems swaps the exercises and meals and wipes the completion state.
func (p *DayPlan) ReplaceItems(exercises []Exercise, meals []Meal) {
	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	if meals == nil {
		meals = make([]Meal, 0)
	}
	p.Exercises = exercises
	p.Meals = meals
	p.CompletedStatus = NewCompletedStatus()
}

// ExerciseCompletionRate is the percentage (0-100) of exercises marked done.
func (p *DayPlan) ExerciseCompletionRate() float64 {
	if len(p.Exercises) == 0 {
		return 0
	}
	done := 0
	for _, ex := range p.Exercises {
		if p.IsExerciseCompleted(ex.ID) {
			done++
		}
	}
	return float64(done) / float64(len(p.Exercises)) * 100
}

func (p *DayPlan) hasExercise(id string) bool {
	for _, ex := range p.Exercises {
		if ex.ID == id {
			return true
		}
	}
	return false
}

func (p *DayPlan) hasMeal(id string) bool {
	for _, m := range p.Meals {
		if m.ID == id {
			return true
		}
	}
	return false
}
