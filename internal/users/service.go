package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=users_test

type usersRepo interface {
	Create(ctx context.Context, user User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindProfile(ctx context.Context, userID int) (*planner.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int, update planner.ProfileUpdate) (*planner.UserProfile, error)
	UpdateGoal(ctx context.Context, userID int, goal planner.Goal) error
}

type sessionsService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type Service struct {
	repo     usersRepo
	sessions sessionsService
	metrics  *metrics.Manager
	// replaceable in tests, bcrypt with the production cost is slow
	HashPasswordFunc func(password string) (string, error)
}

func NewService(repo usersRepo, sessions sessionsService, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:             repo,
		sessions:         sessions,
		metrics:          metricsManager,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (_ *planner.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := validateRegisterParams(params); err != nil {
		return nil, err
	}

	goal := ""
	if strings.TrimSpace(params.Goal) != "" {
		parsedGoal, err := planner.ParseGoal(params.Goal)
		if err != nil {
			return nil, fmt.Errorf("%w: goal %q: %w", ErrValidation, params.Goal, err)
		}
		goal = parsedGoal.String()
	}

	passwordHash, err := s.HashPasswordFunc(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, User{
		UserProfile: planner.UserProfile{
			Name:   strings.TrimSpace(params.Name),
			Email:  pkg.NormalizeEmail(params.Email),
			Age:    params.Age,
			Gender: params.Gender,
			Height: params.Height,
			Weight: params.Weight,
			Goal:   goal,
			Role:   RoleUser,
		},
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.CounterRegisteredUsers.Inc()
	log.Debugf("new user registered: %d", user.ID)

	return &user.UserProfile, nil
}

// Login checks the credentials and opens a new session.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (_ *LoginResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.metrics.CounterLogins.WithLabelValues("failed").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		s.metrics.CounterLogins.WithLabelValues("failed").Inc()
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	s.metrics.CounterLogins.WithLabelValues("ok").Inc()
	return &LoginResponse{
		Token:   token,
		Profile: user.UserProfile,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*planner.UserProfile, error) {
	return s.repo.FindProfile(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, update planner.ProfileUpdate) (_ *planner.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.updateProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if err := validateProfileUpdate(update); err != nil {
		return nil, err
	}

	return s.repo.UpdateProfile(ctx, userID, update)
}

// UpdateGoal rejects unknown goals, unlike plan generation which falls back to maintenance.
func (s *Service) UpdateGoal(ctx context.Context, userID int, goal string) (_ planner.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.updateGoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if strings.TrimSpace(goal) == "" {
		return "", fmt.Errorf("goal empty: %w", planner.ErrInvalidGoal)
	}
	parsedGoal, err := planner.ParseGoal(goal)
	if err != nil {
		return "", fmt.Errorf("goal %q: %w", goal, err)
	}

	if err := s.repo.UpdateGoal(ctx, userID, parsedGoal); err != nil {
		return "", err
	}
	return parsedGoal, nil
}

func validateRegisterParams(params RegisterParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrValidation)
	}
	email := pkg.NormalizeEmail(params.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(params.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrValidation, minPasswordLength)
	}
	if len(params.Password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must have at most %d bytes", ErrValidation, maxPasswordBytes)
	}
	return validateProfileUpdate(planner.ProfileUpdate{
		Age:    params.Age,
		Height: params.Height,
		Weight: params.Weight,
	})
}

func validateProfileUpdate(update planner.ProfileUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrValidation)
	}
	if update.Age != nil && (*update.Age <= 0 || *update.Age > 130) {
		return fmt.Errorf("%w: invalid age %d", ErrValidation, *update.Age)
	}
	if update.Height != nil && *update.Height <= 0 {
		return fmt.Errorf("%w: invalid height", ErrValidation)
	}
	if update.Weight != nil && *update.Weight <= 0 {
		return fmt.Errorf("%w: invalid weight", ErrValidation)
	}
	return nil
}
