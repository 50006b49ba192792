package plans

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2beens/fitplanner/internal/planner"
)

// repoMock keeps day plans in memory, keyed like the day_plan table by (user, day).
type repoMock struct {
	mu     sync.Mutex
	nextID int
	plans  map[int]map[planner.Weekday]planner.DayPlan
}

func NewMockDayPlansRepo() *repoMock {
	return &repoMock{
		nextID: 1,
		plans:  make(map[int]map[planner.Weekday]planner.DayPlan),
	}
}

func (r *repoMock) FindDayPlans(_ context.Context, userID int) ([]planner.DayPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans := make([]planner.DayPlan, 0, len(r.plans[userID]))
	for _, p := range r.plans[userID] {
		plans = append(plans, clonePlan(p))
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Day.Index() < plans[j].Day.Index()
	})
	return plans, nil
}

func (r *repoMock) FindDayPlan(_ context.Context, userID int, day planner.Weekday) (*planner.DayPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plans[userID][day]
	if !ok {
		return nil, fmt.Errorf("user %d, %s: %w", userID, day, planner.ErrPlanNotFound)
	}
	plan := clonePlan(p)
	return &plan, nil
}

func (r *repoMock) SaveDayPlan(_ context.Context, plan planner.DayPlan) (*planner.DayPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !plan.Day.IsValid() {
		return nil, fmt.Errorf("%w: %q", planner.ErrInvalidDay, plan.Day)
	}

	if r.plans[plan.UserID] == nil {
		r.plans[plan.UserID] = make(map[planner.Weekday]planner.DayPlan)
	}

	now := time.Now()
	if existing, ok := r.plans[plan.UserID][plan.Day]; ok {
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
	} else {
		plan.ID = r.nextID
		plan.CreatedAt = now
		r.nextID++
	}
	plan.UpdatedAt = now

	stored := clonePlan(plan)
	r.plans[plan.UserID][plan.Day] = stored
	saved := clonePlan(stored)
	return &saved, nil
}

func (r *repoMock) DeleteDayPlan(_ context.Context, id, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for day, p := range r.plans[userID] {
		if p.ID == id {
			delete(r.plans[userID], day)
			return nil
		}
	}
	return fmt.Errorf("plan %d: %w", id, planner.ErrPlanNotFound)
}

// clonePlan copies the completion maps, which would otherwise be shared with the caller.
func clonePlan(p planner.DayPlan) planner.DayPlan {
	clone := p
	clone.Exercises = append([]planner.Exercise(nil), p.Exercises...)
	clone.Meals = append([]planner.Meal(nil), p.Meals...)
	clone.CompletedStatus = planner.NewCompletedStatus()
	for id, done := range p.CompletedStatus.Exercises {
		clone.CompletedStatus.Exercises[id] = done
	}
	for id, done := range p.CompletedStatus.Meals {
		clone.CompletedStatus.Meals[id] = done
	}
	if p.CompletedStatus.AllCompletedAt != nil {
		completedAt := *p.CompletedStatus.AllCompletedAt
		clone.CompletedStatus.AllCompletedAt = &completedAt
	}
	return clone
}
