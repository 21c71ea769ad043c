package tasks

import (
	"fmt"

	"github.com/desertthunder/gymtrack/internal/shared"
)

// ValidateBackupDocument checks an untyped backup document tree against the
// export format. Performed entirely before any mutation on import, so a bad
// file never destroys existing data. Any violation aborts the whole import.
//
// Workouts are accepted in either the current series shape or the legacy
// flat-scalar shape (forward-compatible reader).
func ValidateBackupDocument(tree map[string]any) error {
	if tree == nil {
		return fmt.Errorf("%w: invalid format: document is not an object", shared.ErrValidation)
	}

	if !hasString(tree, "version") {
		return fmt.Errorf("%w: invalid format: missing version field", shared.ErrValidation)
	}
	if !hasString(tree, "exportDate") {
		return fmt.Errorf("%w: invalid format: missing exportDate field", shared.ErrValidation)
	}

	customers, err := arrayField(tree, "customers")
	if err != nil {
		return err
	}
	machines, err := arrayField(tree, "machines")
	if err != nil {
		return err
	}
	workouts, err := arrayField(tree, "workouts")
	if err != nil {
		return err
	}

	for i, entry := range customers {
		customer, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: invalid format: customer %d is not an object", shared.ErrValidation, i)
		}
		for _, field := range []string{"id", "name", "createdAt", "updatedAt"} {
			if !hasString(customer, field) {
				return fmt.Errorf("%w: invalid format: customer %d missing %s", shared.ErrValidation, i, field)
			}
		}
	}

	for i, entry := range machines {
		machine, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: invalid format: machine %d is not an object", shared.ErrValidation, i)
		}
		for _, field := range []string{"id", "name", "type", "createdAt"} {
			if !hasString(machine, field) {
				return fmt.Errorf("%w: invalid format: machine %d missing %s", shared.ErrValidation, i, field)
			}
		}
	}

	for i, entry := range workouts {
		workout, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: invalid format: workout %d is not an object", shared.ErrValidation, i)
		}
		for _, field := range []string{"id", "customerId", "machineId", "date", "createdAt"} {
			if !hasString(workout, field) {
				return fmt.Errorf("%w: invalid format: workout %d missing %s", shared.ErrValidation, i, field)
			}
		}
		if err := validateWorkoutShape(workout, i); err != nil {
			return err
		}
	}

	return nil
}

// validateWorkoutShape enforces the either/or rule: a non-empty series array
// of numeric triples, or legacy numeric sets/reps/weight scalars.
func validateWorkoutShape(workout map[string]any, i int) error {
	if series, ok := workout["series"].([]any); ok && len(series) > 0 {
		for j, entry := range series {
			triple, ok := entry.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: invalid format: workout %d series %d is not an object", shared.ErrValidation, i, j)
			}
			for _, field := range []string{"sets", "reps", "weight"} {
				if !hasNumber(triple, field) {
					return fmt.Errorf("%w: invalid format: workout %d series %d missing numeric %s", shared.ErrValidation, i, j, field)
				}
			}
		}
		return nil
	}

	for _, field := range []string{"sets", "reps", "weight"} {
		if !hasNumber(workout, field) {
			return fmt.Errorf("%w: invalid format: workout %d has neither a series array nor numeric %s", shared.ErrValidation, i, field)
		}
	}
	return nil
}

// hasString reports whether the field is present as a non-empty string.
func hasString(obj map[string]any, field string) bool {
	value, ok := obj[field].(string)
	return ok && value != ""
}

// hasNumber reports whether the field is present as a JSON number.
func hasNumber(obj map[string]any, field string) bool {
	_, ok := obj[field].(float64)
	return ok
}

// arrayField extracts a required array field from the tree.
func arrayField(tree map[string]any, field string) ([]any, error) {
	value, ok := tree[field].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: invalid format: missing %s array", shared.ErrValidation, field)
	}
	return value, nil
}
