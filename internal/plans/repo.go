package plans

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

const dayPlanColumns = `id, user_id, day, exercises, meals, completed_status, created_at, updated_at`

// Repo stores day plans in postgres, the plan items and their
// completion state as JSONB blobs.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// FindDayPlans returns the user's plans ordered Monday to Sunday.
func (r *Repo) FindDayPlans(ctx context.Context, userID int) (_ []planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.findAll")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+dayPlanColumns+` FROM day_plan WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]planner.DayPlan, 0, len(planner.Weekdays))
	for rows.Next() {
		plan, err := scanDayPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Day.Index() < plans[j].Day.Index()
	})

	return plans, nil
}

func (r *Repo) FindDayPlan(ctx context.Context, userID int, day planner.Weekday) (_ *planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.find")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+dayPlanColumns+` FROM day_plan WHERE user_id = $1 AND day = $2;`,
		userID, day.String(),
	)
	plan, err := scanDayPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d, %s: %w", userID, day, planner.ErrPlanNotFound)
		}
		return nil, err
	}
	return plan, nil
}

// SaveDayPlan inserts the plan or replaces the one stored for the same (user, day).
func (r *Repo) SaveDayPlan(ctx context.Context, plan planner.DayPlan) (_ *planner.DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !plan.Day.IsValid() {
		return nil, fmt.Errorf("%w: %q", planner.ErrInvalidDay, plan.Day)
	}

	exercisesJson, err := planner.EncodeExercises(plan.Exercises)
	if err != nil {
		return nil, fmt.Errorf("encode exercises: %w", err)
	}
	mealsJson, err := planner.EncodeMeals(plan.Meals)
	if err != nil {
		return nil, fmt.Errorf("encode meals: %w", err)
	}
	statusJson, err := planner.EncodeCompletedStatus(plan.CompletedStatus)
	if err != nil {
		return nil, fmt.Errorf("encode completed status: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO day_plan (user_id, day, exercises, meals, completed_status)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, day) DO UPDATE SET
				exercises = EXCLUDED.exercises,
				meals = EXCLUDED.meals,
				completed_status = EXCLUDED.completed_status,
				updated_at = now()
			RETURNING id, created_at, updated_at;`,
		plan.UserID, plan.Day.String(), string(exercisesJson), string(mealsJson), string(statusJson),
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("user %d: %w", plan.UserID, planner.ErrProfileNotFound)
		}
		return nil, fmt.Errorf("upsert day plan: %w", err)
	}

	return &plan, nil
}

func (r *Repo) DeleteDayPlan(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM day_plan WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plan %d: %w", id, planner.ErrPlanNotFound)
	}
	return nil
}

func scanDayPlan(row pgx.Row) (*planner.DayPlan, error) {
	var (
		plan                                 planner.DayPlan
		day                                  string
		exercisesRaw, mealsRaw, completedRaw []byte
		createdAt, updatedAt                 time.Time
	)
	if err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&day,
		&exercisesRaw,
		&mealsRaw,
		&completedRaw,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	plan.Day = planner.Weekday(day)
	plan.CreatedAt = createdAt
	plan.UpdatedAt = updatedAt

	var err error
	if plan.Exercises, err = planner.DecodeExercises(exercisesRaw); err != nil {
		log.Warnf("day plan %d: %s", plan.ID, err)
	}
	if plan.Meals, err = planner.DecodeMeals(mealsRaw); err != nil {
		log.Warnf("day plan %d: %s", plan.ID, err)
	}
	if plan.CompletedStatus, err = planner.DecodeCompletedStatus(completedRaw); err != nil {
		log.Warnf("day plan %d: %s", plan.ID, err)
	}

	// stored status can disagree with the items (older rows, blobs that failed
	// to decode); the last update is the best guess for a missing timestamp
	plan.RefreshCompletion(updatedAt)

	return &plan, nil
}
