package users

import (
	"errors"
	"time"

	"github.com/2beens/fitplanner/internal/planner"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	minPasswordLength = 8
	maxPasswordBytes  = 72
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// User is the stored account, the profile plus its credentials.
type User struct {
	planner.UserProfile
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RegisterParams struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Age      *int     `json:"age,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Goal     string   `json:"goal,omitempty"`
}

type LoginResponse struct {
	Token   string              `json:"token"`
	Profile planner.UserProfile `json:"profile"`
}
