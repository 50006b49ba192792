package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

const userColumns = `id, name, email, password_hash, age, gender, height, weight, goal, role, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if user.Role == "" {
		user.Role = RoleUser
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO users (name, email, password_hash, age, gender, height, weight, goal, role)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at;`,
		user.Name, pkg.NormalizeEmail(user.Email), user.PasswordHash,
		user.Age, user.Gender, user.Height, user.Weight, user.Goal, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	user.Email = pkg.NormalizeEmail(user.Email)
	return &user, nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.findByEmail")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = $1;`,
		pkg.NormalizeEmail(email),
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindProfile returns planner.ErrProfileNotFound for unknown users.
func (r *Repo) FindProfile(ctx context.Context, userID int) (_ *planner.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.findProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1;`,
		userID,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, planner.ErrProfileNotFound)
		}
		return nil, err
	}
	return &user.UserProfile, nil
}

// UpdateProfile writes only the fields set in the update.
func (r *Repo) UpdateProfile(ctx context.Context, userID int, update planner.ProfileUpdate) (_ *planner.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`
			UPDATE users SET
				name = COALESCE($2, name),
				age = COALESCE($3, age),
				gender = COALESCE($4, gender),
				height = COALESCE($5, height),
				weight = COALESCE($6, weight),
				updated_at = now()
			WHERE id = $1
			RETURNING `+userColumns+`;`,
		userID, update.Name, update.Age, update.Gender, update.Height, update.Weight,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, planner.ErrProfileNotFound)
		}
		return nil, err
	}
	return &user.UserProfile, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, userID int, goal planner.Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateGoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET goal = $1, updated_at = now() WHERE id = $2;`,
		goal.String(), userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, planner.ErrProfileNotFound)
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User
	var gender, goal *string
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Age,
		&gender,
		&user.Height,
		&user.Weight,
		&goal,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if gender != nil {
		user.Gender = *gender
	}
	if goal != nil {
		user.Goal = *goal
	}
	return &user, nil
}
