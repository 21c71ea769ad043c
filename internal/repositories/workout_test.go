package repositories

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
)

func newTestWorkoutRepo(t *testing.T) (*WorkoutRepository, *CustomerRepository, *MachineRepository, *RecordStore) {
	t.Helper()
	store := setupTestStore(t)
	logger := shared.NewLogger(io.Discard)
	return NewWorkoutRepository(store), NewCustomerRepository(store, logger), NewMachineRepository(store, logger), store
}

func TestWorkoutRepository(t *testing.T) {
	validSeries := []models.Series{{Sets: 3, Reps: 10, Weight: 50}}

	t.Run("Create drops invalid series entries", func(t *testing.T) {
		repo, _, _, _ := newTestWorkoutRepo(t)

		workout := models.Workout{
			CustomerID: "c1",
			MachineID:  "m1",
			Series: []models.Series{
				{Sets: 3, Reps: 10, Weight: 50},
				{Sets: 0, Reps: 10, Weight: 50},
			},
		}
		if err := repo.Create(&workout); err != nil {
			t.Fatalf("failed to create workout: %v", err)
		}

		if len(workout.Series) != 1 {
			t.Errorf("invalid series entries should be dropped, got %d", len(workout.Series))
		}
		if workout.Date.IsZero() || workout.CreatedAt.IsZero() {
			t.Error("date and createdAt should default when unset")
		}
	})

	t.Run("Create fails when no valid series survive", func(t *testing.T) {
		repo, _, _, _ := newTestWorkoutRepo(t)

		workout := models.Workout{
			CustomerID: "c1",
			MachineID:  "m1",
			Series:     []models.Series{{Sets: 0, Reps: 0, Weight: 0}},
		}
		if err := repo.Create(&workout); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Create with existing id replaces the record", func(t *testing.T) {
		repo, _, _, _ := newTestWorkoutRepo(t)

		first := models.Workout{ID: "w1", CustomerID: "c1", MachineID: "m1", Series: validSeries}
		if err := repo.Create(&first); err != nil {
			t.Fatalf("failed to create workout: %v", err)
		}

		second := models.Workout{ID: "w1", CustomerID: "c1", MachineID: "m1", Notes: "replaced", Series: validSeries}
		if err := repo.Create(&second); err != nil {
			t.Fatalf("upsert create failed: %v", err)
		}

		got, err := repo.Get("w1")
		if err != nil {
			t.Fatalf("failed to get workout: %v", err)
		}
		if got.Notes != "replaced" {
			t.Errorf("expected replaced record, got %+v", got)
		}
	})

	t.Run("Get migrates legacy records in place", func(t *testing.T) {
		repo, _, _, store := newTestWorkoutRepo(t)

		legacy := `{"id": "w-legacy", "customerId": "c1", "machineId": "m1", "date": "2023-06-15T00:00:00Z", "sets": 4, "reps": 8, "weight": 60, "createdAt": "2023-06-15T00:00:00Z"}`
		if err := store.Add(Workouts, "w-legacy", json.RawMessage(legacy)); err != nil {
			t.Fatalf("failed to seed legacy record: %v", err)
		}

		got, err := repo.Get("w-legacy")
		if err != nil {
			t.Fatalf("failed to get workout: %v", err)
		}
		if len(got.Series) != 1 || got.Series[0].Sets != 4 {
			t.Fatalf("legacy scalars should fold into a series entry, got %+v", got.Series)
		}

		// The stored record must now be current-shape.
		raw, err := store.GetByID(Workouts, "w-legacy")
		if err != nil {
			t.Fatalf("failed to read stored record: %v", err)
		}
		var stored map[string]any
		if err := json.Unmarshal(raw, &stored); err != nil {
			t.Fatalf("stored record is not valid JSON: %v", err)
		}
		if _, hasScalar := stored["sets"]; hasScalar {
			t.Error("migrated record should not retain flat scalars")
		}
		if _, hasSeries := stored["series"]; !hasSeries {
			t.Error("migrated record should carry a series list")
		}
	})

	t.Run("GetByCustomer projection", func(t *testing.T) {
		repo, customers, machines, _ := newTestWorkoutRepo(t)

		alex := models.Customer{Name: "Alex"}
		if err := customers.Create(&alex); err != nil {
			t.Fatalf("failed to create customer: %v", err)
		}
		treadmill := models.Machine{Name: "Treadmill", Type: models.MachineTypeCardio}
		bench := models.Machine{Name: "Bench Press", Type: models.MachineTypeStrength}
		for _, m := range []*models.Machine{&treadmill, &bench} {
			if err := machines.Create(m); err != nil {
				t.Fatalf("failed to create machine: %v", err)
			}
		}

		older := models.Workout{CustomerID: alex.ID, MachineID: treadmill.ID, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Series: validSeries}
		newer := models.Workout{CustomerID: alex.ID, MachineID: bench.ID, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Series: validSeries}
		for _, w := range []*models.Workout{&older, &newer} {
			if err := repo.Create(w); err != nil {
				t.Fatalf("failed to create workout: %v", err)
			}
		}

		history, err := repo.GetByCustomer(alex.ID, "")
		if err != nil {
			t.Fatalf("failed to load history: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(history))
		}
		if !history[0].Date.After(history[1].Date) {
			t.Error("history should be sorted newest first")
		}
		if history[0].CustomerName != "Alex" || history[0].MachineName != "Bench Press" {
			t.Errorf("names should be denormalized, got %+v", history[0])
		}

		filtered, err := repo.GetByCustomer(alex.ID, treadmill.ID)
		if err != nil {
			t.Fatalf("failed to load filtered history: %v", err)
		}
		if len(filtered) != 1 || filtered[0].MachineName != "Treadmill" {
			t.Errorf("machine filter should narrow the projection, got %+v", filtered)
		}
	})

	t.Run("GetByCustomer ties sort by machine name", func(t *testing.T) {
		repo, customers, machines, _ := newTestWorkoutRepo(t)

		alex := models.Customer{Name: "Alex"}
		if err := customers.Create(&alex); err != nil {
			t.Fatalf("failed to create customer: %v", err)
		}
		rower := models.Machine{Name: "Rower", Type: models.MachineTypeCardio}
		bench := models.Machine{Name: "Bench Press", Type: models.MachineTypeStrength}
		for _, m := range []*models.Machine{&rower, &bench} {
			if err := machines.Create(m); err != nil {
				t.Fatalf("failed to create machine: %v", err)
			}
		}

		date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		for _, machineID := range []string{rower.ID, bench.ID} {
			workout := models.Workout{CustomerID: alex.ID, MachineID: machineID, Date: date, Series: validSeries}
			if err := repo.Create(&workout); err != nil {
				t.Fatalf("failed to create workout: %v", err)
			}
		}

		history, err := repo.GetByCustomer(alex.ID, "")
		if err != nil {
			t.Fatalf("failed to load history: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(history))
		}
		if history[0].MachineName != "Bench Press" || history[1].MachineName != "Rower" {
			t.Errorf("same-date entries should sort by machine name, got %s then %s", history[0].MachineName, history[1].MachineName)
		}
	})

	t.Run("GetByCustomer excludes dangling references", func(t *testing.T) {
		repo, customers, machines, _ := newTestWorkoutRepo(t)

		alex := models.Customer{Name: "Alex"}
		if err := customers.Create(&alex); err != nil {
			t.Fatalf("failed to create customer: %v", err)
		}
		treadmill := models.Machine{Name: "Treadmill", Type: models.MachineTypeCardio}
		if err := machines.Create(&treadmill); err != nil {
			t.Fatalf("failed to create machine: %v", err)
		}

		kept := models.Workout{CustomerID: alex.ID, MachineID: treadmill.ID, Series: validSeries}
		dangling := models.Workout{CustomerID: alex.ID, MachineID: "m-gone", Series: validSeries}
		for _, w := range []*models.Workout{&kept, &dangling} {
			if err := repo.Create(w); err != nil {
				t.Fatalf("failed to create workout: %v", err)
			}
		}

		history, err := repo.GetByCustomer(alex.ID, "")
		if err != nil {
			t.Fatalf("failed to load history: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("dangling machine reference should be excluded, got %d entries", len(history))
		}
		if history[0].ID != kept.ID {
			t.Error("surviving entry should be the fully referenced workout")
		}
	})

	t.Run("Update replaces series wholesale", func(t *testing.T) {
		repo, _, _, _ := newTestWorkoutRepo(t)

		workout := models.Workout{CustomerID: "c1", MachineID: "m1", Series: validSeries}
		if err := repo.Create(&workout); err != nil {
			t.Fatalf("failed to create workout: %v", err)
		}

		replacement := []models.Series{
			{Sets: 5, Reps: 5, Weight: 100},
			{Sets: 0, Reps: 5, Weight: 100},
		}
		updated, err := repo.Update(workout.ID, models.WorkoutPatch{Series: replacement})
		if err != nil {
			t.Fatalf("failed to update workout: %v", err)
		}

		if len(updated.Series) != 1 || updated.Series[0].Sets != 5 {
			t.Errorf("series should be replaced and filtered, got %+v", updated.Series)
		}
	})

	t.Run("Update rejects an all-invalid series", func(t *testing.T) {
		repo, _, _, _ := newTestWorkoutRepo(t)

		workout := models.Workout{CustomerID: "c1", MachineID: "m1", Series: validSeries}
		if err := repo.Create(&workout); err != nil {
			t.Fatalf("failed to create workout: %v", err)
		}

		_, err := repo.Update(workout.ID, models.WorkoutPatch{Series: []models.Series{{Sets: 0, Reps: 0, Weight: 0}}})
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
