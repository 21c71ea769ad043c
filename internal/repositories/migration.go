package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/desertthunder/gymtrack/internal/models"
)

// BackfillWorkoutSeries scans every workout record and rewrites legacy-shaped
// ones (flat sets/reps/weight scalars) into the current series shape.
//
// Each rewritten record is persisted individually, so a crash mid-batch leaves
// a partially upgraded store; every workout read path re-checks and migrates
// on the fly, making the batch safe to skip or repeat. Returns the number of
// records rewritten.
func BackfillWorkoutSeries(store *RecordStore) (int, error) {
	records, err := store.GetAll(Workouts)
	if err != nil {
		return 0, fmt.Errorf("failed to load workout records: %w", err)
	}

	migrated := 0
	for _, record := range records {
		workout, upgraded, err := models.DecodeWorkoutRecord(record)
		if err != nil {
			return migrated, err
		}
		if !upgraded {
			continue
		}

		data, err := json.Marshal(workout)
		if err != nil {
			return migrated, fmt.Errorf("failed to encode migrated workout: %w", err)
		}
		if err := store.Update(Workouts, workout.ID, data); err != nil {
			return migrated, fmt.Errorf("failed to persist migrated workout %s: %w", workout.ID, err)
		}
		migrated++
	}

	return migrated, nil
}
