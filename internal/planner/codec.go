package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Exercises, meals and completion status are stored as JSON blobs next to the
// day plan row. The Decode* functions never fail the whole record: a blob that
// cannot be parsed yields an empty default together with ErrMalformedStoredData.

func EncodeExercises(exercises []Exercise) ([]byte, error) {
	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	return json.Marshal(exercises)
}

func EncodeMeals(meals []Meal) ([]byte, error) {
	if meals == nil {
		meals = make([]Meal, 0)
	}
	return json.Marshal(meals)
}

func EncodeCompletedStatus(status CompletedStatus) ([]byte, error) {
	if status.Exercises == nil {
		status.Exercises = make(map[string]bool)
	}
	if status.Meals == nil {
		status.Meals = make(map[string]bool)
	}
	return json.Marshal(status)
}

func DecodeExercises(raw []byte) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	if isEmptyBlob(raw) {
		return exercises, nil
	}
	if err := json.Unmarshal(raw, &exercises); err != nil {
		return make([]Exercise, 0), fmt.Errorf("%w: exercises: %w", ErrMalformedStoredData, err)
	}
	return exercises, nil
}

func DecodeMeals(raw []byte) ([]Meal, error) {
	meals := make([]Meal, 0)
	if isEmptyBlob(raw) {
		return meals, nil
	}
	if err := json.Unmarshal(raw, &meals); err != nil {
		return make([]Meal, 0), fmt.Errorf("%w: meals: %w", ErrMalformedStoredData, err)
	}
	return meals, nil
}

func DecodeCompletedStatus(raw []byte) (CompletedStatus, error) {
	if isEmptyBlob(raw) {
		return NewCompletedStatus(), nil
	}
	var status CompletedStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return NewCompletedStatus(), fmt.Errorf("%w: completed status: %w", ErrMalformedStoredData, err)
	}
	if status.Exercises == nil {
		status.Exercises = make(map[string]bool)
	}
	if status.Meals == nil {
		status.Meals = make(map[string]bool)
	}
	return status, nil
}

func isEmptyBlob(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
