package repositories

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/desertthunder/gymtrack/internal/shared"
)

func TestBackfillWorkoutSeries(t *testing.T) {
	t.Run("rewrites legacy records", func(t *testing.T) {
		store := setupTestStore(t)

		legacy := `{"id": "w1", "customerId": "c1", "machineId": "m1", "date": "2023-06-15T00:00:00Z", "sets": 4, "reps": 8, "weight": 60, "createdAt": "2023-06-15T00:00:00Z"}`
		current := `{"id": "w2", "customerId": "c1", "machineId": "m1", "date": "2024-01-01T00:00:00Z", "series": [{"sets": 3, "reps": 10, "weight": 50}], "createdAt": "2024-01-01T00:00:00Z"}`
		if err := store.Add(Workouts, "w1", json.RawMessage(legacy)); err != nil {
			t.Fatalf("failed to seed legacy record: %v", err)
		}
		if err := store.Add(Workouts, "w2", json.RawMessage(current)); err != nil {
			t.Fatalf("failed to seed current record: %v", err)
		}

		migrated, err := BackfillWorkoutSeries(store)
		if err != nil {
			t.Fatalf("backfill failed: %v", err)
		}
		if migrated != 1 {
			t.Errorf("expected 1 migrated record, got %d", migrated)
		}

		raw, err := store.GetByID(Workouts, "w1")
		if err != nil {
			t.Fatalf("failed to read migrated record: %v", err)
		}
		var stored map[string]any
		if err := json.Unmarshal(raw, &stored); err != nil {
			t.Fatalf("stored record is not valid JSON: %v", err)
		}
		series, ok := stored["series"].([]any)
		if !ok || len(series) != 1 {
			t.Fatalf("migrated record should carry one series entry, got %v", stored["series"])
		}
		if _, hasScalar := stored["sets"]; hasScalar {
			t.Error("migrated record should not retain flat scalars")
		}
	})

	t.Run("repeatable on an already-current store", func(t *testing.T) {
		store := setupTestStore(t)

		current := `{"id": "w1", "customerId": "c1", "machineId": "m1", "date": "2024-01-01T00:00:00Z", "series": [{"sets": 3, "reps": 10, "weight": 50}], "createdAt": "2024-01-01T00:00:00Z"}`
		if err := store.Add(Workouts, "w1", json.RawMessage(current)); err != nil {
			t.Fatalf("failed to seed record: %v", err)
		}

		for i := range 2 {
			migrated, err := BackfillWorkoutSeries(store)
			if err != nil {
				t.Fatalf("backfill run %d failed: %v", i+1, err)
			}
			if migrated != 0 {
				t.Errorf("run %d: expected no migrated records, got %d", i+1, migrated)
			}
		}
	})

	t.Run("empty store", func(t *testing.T) {
		store := setupTestStore(t)

		migrated, err := BackfillWorkoutSeries(store)
		if err != nil {
			t.Fatalf("backfill failed: %v", err)
		}
		if migrated != 0 {
			t.Errorf("expected no migrated records, got %d", migrated)
		}
	})
}

func TestSetupRunsBackfillOnUpgrade(t *testing.T) {
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	// Simulate a database created before the series migration existed: apply
	// the base schema only, seed a legacy workout, then run full Setup.
	applied, err := shared.RunMigrations(db)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if len(applied) == 0 {
		t.Fatal("expected migrations to apply")
	}
	if err := shared.RollbackMigration(db); err != nil {
		t.Fatalf("failed to roll back series migration: %v", err)
	}

	store := NewRecordStore(db)
	legacy := `{"id": "w1", "customerId": "c1", "machineId": "m1", "date": "2023-06-15T00:00:00Z", "sets": 4, "reps": 8, "weight": 60, "createdAt": "2023-06-15T00:00:00Z"}`
	if err := store.Add(Workouts, "w1", json.RawMessage(legacy)); err != nil {
		t.Fatalf("failed to seed legacy record: %v", err)
	}

	if err := Setup(db, shared.NewLogger(io.Discard)); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	raw, err := store.GetByID(Workouts, "w1")
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("stored record is not valid JSON: %v", err)
	}
	if _, hasSeries := stored["series"]; !hasSeries {
		t.Error("setup should have upgraded the legacy record")
	}
}
