package plans

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=plans_test

var ErrInvalidPlan = errors.New("invalid plan")

type dayPlansRepo interface {
	FindDayPlans(ctx context.Context, userID int) ([]planner.DayPlan, error)
	FindDayPlan(ctx context.Context, userID int, day planner.Weekday) (*planner.DayPlan, error)
	SaveDayPlan(ctx context.Context, plan planner.DayPlan) (*planner.DayPlan, error)
	DeleteDayPlan(ctx context.Context, id, userID int) error
}

type profileRepo interface {
	FindProfile(ctx context.Context, userID int) (*planner.UserProfile, error)
}

type Service struct {
	repo      dayPlansRepo
	profiles  profileRepo
	generator *planner.Generator
	metrics   *metrics.Manager
	// ability to inject the clock (for unit testing)
	NowFunc func() time.Time
}

func NewService(
	repo dayPlansRepo,
	profiles profileRepo,
	generator *planner.Generator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:      repo,
		profiles:  profiles,
		generator: generator,
		metrics:   metricsManager,
		NowFunc:   time.Now,
	}
}

// GenerateWeek generates and stores a fresh week for the user.
// Existing days are overwritten and lose their completion state.
func (s *Service) GenerateWeek(ctx context.Context, userID int) (_ []planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.generateWeek")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	profile, err := s.profiles.FindProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	week := s.generator.GenerateWeek(*profile)
	saved := make([]planner.DayPlan, 0, len(week))
	for _, dayPlan := range week {
		plan, err := s.upsertDay(ctx, userID, dayPlan.Day, dayPlan.Exercises, dayPlan.Meals)
		if err != nil {
			return nil, fmt.Errorf("upsert %s: %w", dayPlan.Day, err)
		}
		saved = append(saved, *plan)
	}

	goal, _ := planner.ParseGoal(profile.Goal)
	s.metrics.CounterGeneratedPlans.WithLabelValues(goal.String()).Inc()

	return saved, nil
}

// RegenerateIntensity makes each stored day harder or easier, depending on
// how much of it was completed. Stored through UpsertDay, so completion resets.
func (s *Service) RegenerateIntensity(ctx context.Context, userID int) (_ []planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.regenerateIntensity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find plans: %w", err)
	}

	adjusted := make([]planner.DayPlan, 0, len(plans))
	for _, plan := range plans {
		log.Tracef("user [%d] %s exercise completion: %.0f%%", userID, plan.Day, plan.ExerciseCompletionRate())
		adjustedPlan := planner.AdjustIntensity(plan)
		saved, err := s.upsertDay(ctx, userID, plan.Day, adjustedPlan.Exercises, adjustedPlan.Meals)
		if err != nil {
			return nil, fmt.Errorf("upsert %s: %w", plan.Day, err)
		}
		adjusted = append(adjusted, *saved)
	}

	return adjusted, nil
}

// UpsertDay replaces the exercises and meals of the user's plan for the day,
// creating the plan when missing. The completion state is always reset.
func (s *Service) UpsertDay(
	ctx context.Context,
	userID int,
	day string,
	exercises []planner.Exercise,
	meals []planner.Meal,
) (_ *planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.upsertDay")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	weekday, err := planner.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	if err := validateItems(exercises, meals); err != nil {
		return nil, err
	}

	return s.upsertDay(ctx, userID, weekday, exercises, meals)
}

func (s *Service) upsertDay(
	ctx context.Context,
	userID int,
	day planner.Weekday,
	exercises []planner.Exercise,
	meals []planner.Meal,
) (*planner.DayPlan, error) {
	plan, err := s.repo.FindDayPlan(ctx, userID, day)
	if err != nil {
		if !errors.Is(err, planner.ErrPlanNotFound) {
			return nil, fmt.Errorf("find plan: %w", err)
		}
		plan = &planner.DayPlan{
			UserID: userID,
			Day:    day,
		}
	}

	plan.ReplaceItems(exercises, meals)
	return s.repo.SaveDayPlan(ctx, *plan)
}

func (s *Service) ListPlans(ctx context.Context, userID int) ([]planner.DayPlan, error) {
	return s.repo.FindDayPlans(ctx, userID)
}

func (s *Service) GetPlan(ctx context.Context, userID int, day string) (*planner.DayPlan, error) {
	weekday, err := planner.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	return s.repo.FindDayPlan(ctx, userID, weekday)
}

func (s *Service) DeletePlan(ctx context.Context, userID int, day string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plan, err := s.GetPlan(ctx, userID, day)
	if err != nil {
		return err
	}
	return s.repo.DeleteDayPlan(ctx, plan.ID, userID)
}

func (s *Service) SetExerciseCompleted(ctx context.Context, userID int, day, exerciseID string, done bool) (*planner.DayPlan, error) {
	return s.toggle(ctx, userID, day, "exercise", done, func(plan *planner.DayPlan) error {
		return plan.SetExerciseCompleted(exerciseID, done, s.NowFunc())
	})
}

func (s *Service) SetMealCompleted(ctx context.Context, userID int, day, mealID string, done bool) (*planner.DayPlan, error) {
	return s.toggle(ctx, userID, day, "meal", done, func(plan *planner.DayPlan) error {
		return plan.SetMealCompleted(mealID, done, s.NowFunc())
	})
}

func (s *Service) toggle(
	ctx context.Context,
	userID int,
	day, kind string,
	done bool,
	set func(plan *planner.DayPlan) error,
) (_ *planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.toggle."+kind)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plan, err := s.GetPlan(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if err := set(plan); err != nil {
		return nil, err
	}

	saved, err := s.repo.SaveDayPlan(ctx, *plan)
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	s.metrics.CounterCompletionToggles.WithLabelValues(kind, strconv.FormatBool(done)).Inc()
	return saved, nil
}

// The progress accessors below read the whole week once and compute over that snapshot.

func (s *Service) GetWeeklyProgress(ctx context.Context, userID int) (progress.WeeklySummary, error) {
	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return progress.WeeklySummary{}, fmt.Errorf("find plans: %w", err)
	}
	return progress.WeeklyProgress(plans), nil
}

func (s *Service) GetExerciseProgress(ctx context.Context, userID int) (progress.ExerciseSummary, error) {
	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return progress.ExerciseSummary{}, fmt.Errorf("find plans: %w", err)
	}
	return progress.ExerciseProgress(plans), nil
}

func (s *Service) GetMealProgress(ctx context.Context, userID int) (progress.MealSummary, error) {
	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return progress.MealSummary{}, fmt.Errorf("find plans: %w", err)
	}
	return progress.MealProgress(plans), nil
}

func (s *Service) GetTimeProgress(ctx context.Context, userID int) (progress.TimeSummary, error) {
	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return progress.TimeSummary{}, fmt.Errorf("find plans: %w", err)
	}
	return progress.TimeProgress(plans), nil
}

func (s *Service) GetGoalProgress(ctx context.Context, userID int) (progress.GoalSummary, error) {
	profile, err := s.profiles.FindProfile(ctx, userID)
	if err != nil {
		return progress.GoalSummary{}, fmt.Errorf("find profile: %w", err)
	}
	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return progress.GoalSummary{}, fmt.Errorf("find plans: %w", err)
	}
	return progress.GoalProgress(*profile, plans), nil
}

func (s *Service) GetStreaks(ctx context.Context, userID int) (progress.Streaks, error) {
	plans, err := s.repo.FindDayPlans(ctx, userID)
	if err != nil {
		return progress.Streaks{}, fmt.Errorf("find plans: %w", err)
	}
	return progress.CalculateStreaks(progress.WeeklyCompletionMap(plans)), nil
}

func validateItems(exercises []planner.Exercise, meals []planner.Meal) error {
	exerciseIDs := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		if ex.ID == "" || ex.Name == "" {
			return fmt.Errorf("%w: exercise id or name empty", ErrInvalidPlan)
		}
		if exerciseIDs[ex.ID] {
			return fmt.Errorf("%w: duplicate exercise id %s", ErrInvalidPlan, ex.ID)
		}
		if ex.Sets <= 0 || ex.Reps < 0 {
			return fmt.Errorf("%w: exercise %s has invalid sets/reps", ErrInvalidPlan, ex.ID)
		}
		exerciseIDs[ex.ID] = true
	}

	mealIDs := make(map[string]bool, len(meals))
	for _, meal := range meals {
		if meal.ID == "" {
			return fmt.Errorf("%w: meal id empty", ErrInvalidPlan)
		}
		if mealIDs[meal.ID] {
			return fmt.Errorf("%w: duplicate meal id %s", ErrInvalidPlan, meal.ID)
		}
		if !meal.Type.IsValid() {
			return fmt.Errorf("%w: meal %s has invalid type %q", ErrInvalidPlan, meal.ID, meal.Type)
		}
		if meal.Calories < 0 {
			return fmt.Errorf("%w: meal %s has negative calories", ErrInvalidPlan, meal.ID)
		}
		mealIDs[meal.ID] = true
	}

	return nil
}
