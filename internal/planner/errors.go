package planner

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrInvalidDay      = errors.New("invalid day")
	// ErrInvalidGoal is returned together with the maintenance fallback,
	// it is a warning for generation and a validation error for profile writes.
	ErrInvalidGoal = errors.New("invalid goal")
	// ErrMalformedStoredData is recovered locally, stored blobs that fail
	// to parse are replaced by empty defaults.
	ErrMalformedStoredData = errors.New("malformed stored data")
	ErrItemNotFound        = errors.New("plan item not found")
)
