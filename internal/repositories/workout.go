package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// WorkoutRepository wraps the record store with workout lifecycle rules:
// series validation, upsert creation, on-read legacy migration, and the
// customer history join projection.
type WorkoutRepository struct {
	store *RecordStore
}

// NewWorkoutRepository creates a new WorkoutRepository over the given store.
func NewWorkoutRepository(store *RecordStore) *WorkoutRepository {
	return &WorkoutRepository{store: store}
}

// Create inserts a new workout, generating a fresh id when none is supplied.
// Series entries with non-positive sets or reps or negative weight are
// dropped; creation fails with a validation error when none survive.
// A supplied id that already exists degrades to a full update of that record.
func (r *WorkoutRepository) Create(workout *models.Workout) error {
	workout.Series = models.FilterSeries(workout.Series)
	if err := workout.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if workout.Date.IsZero() {
		workout.Date = now
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = now
	}

	if workout.ID == "" {
		workout.ID = shared.GenerateID()
	} else if _, err := r.Get(workout.ID); err == nil {
		return r.put(workout)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	data, err := json.Marshal(workout)
	if err != nil {
		return fmt.Errorf("failed to encode workout: %w", err)
	}

	return r.store.Add(Workouts, workout.ID, data)
}

// Get retrieves a workout by id, migrating the legacy shape if encountered.
func (r *WorkoutRepository) Get(id string) (*models.Workout, error) {
	record, err := r.store.GetByID(Workouts, id)
	if err != nil {
		return nil, err
	}

	workout, err := r.decode(record)
	if err != nil {
		return nil, err
	}

	return &workout, nil
}

// List returns all workouts, migrating any legacy-shaped records encountered.
// Order is unspecified.
func (r *WorkoutRepository) List() ([]models.Workout, error) {
	records, err := r.store.GetAll(Workouts)
	if err != nil {
		return nil, err
	}

	workouts := make([]models.Workout, 0, len(records))
	for _, record := range records {
		workout, err := r.decode(record)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	return workouts, nil
}

// GetByCustomer returns the customer's workouts as display projections with
// denormalized customer and machine names, optionally narrowed to one machine,
// sorted by date descending with ties broken by machine name ascending.
//
// Workouts whose customer or machine has since been deleted are silently
// excluded from the projection.
func (r *WorkoutRepository) GetByCustomer(customerID, machineID string) ([]models.WorkoutWithDetails, error) {
	records, err := r.store.FindByIndex(Workouts, IndexCustomerID, customerID)
	if err != nil {
		return nil, err
	}

	details := make([]models.WorkoutWithDetails, 0, len(records))
	for _, record := range records {
		workout, err := r.decode(record)
		if err != nil {
			return nil, err
		}
		if machineID != "" && workout.MachineID != machineID {
			continue
		}

		customerName, ok, err := r.lookupName(Customers, workout.CustomerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		machineName, ok, err := r.lookupName(Machines, workout.MachineID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		details = append(details, models.WorkoutWithDetails{
			Workout:      workout,
			CustomerName: customerName,
			MachineName:  machineName,
		})
	}

	sort.SliceStable(details, func(i, j int) bool {
		if !details[i].Date.Equal(details[j].Date) {
			return details[i].Date.After(details[j].Date)
		}
		return details[i].MachineName < details[j].MachineName
	})

	return details, nil
}

// Update merges the supplied fields onto the existing workout; a supplied
// series replaces the whole list and is re-validated.
func (r *WorkoutRepository) Update(id string, patch models.WorkoutPatch) (*models.Workout, error) {
	workout, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.CustomerID != nil {
		workout.CustomerID = *patch.CustomerID
	}
	if patch.MachineID != nil {
		workout.MachineID = *patch.MachineID
	}
	if patch.Date != nil {
		workout.Date = *patch.Date
	}
	if patch.Series != nil {
		workout.Series = models.FilterSeries(patch.Series)
	}
	if patch.Notes != nil {
		workout.Notes = *patch.Notes
	}

	if err := workout.Validate(); err != nil {
		return nil, err
	}
	if err := r.put(workout); err != nil {
		return nil, err
	}

	return workout, nil
}

// Delete removes the workout. Deleting a missing id is a no-op.
func (r *WorkoutRepository) Delete(id string) error {
	return r.store.Delete(Workouts, id)
}

// decode converts raw stored bytes into the current shape, persisting the
// upgraded record when a legacy one is encountered so the store self-heals.
func (r *WorkoutRepository) decode(record json.RawMessage) (models.Workout, error) {
	workout, upgraded, err := models.DecodeWorkoutRecord(record)
	if err != nil {
		return models.Workout{}, err
	}

	if upgraded {
		if err := r.put(&workout); err != nil {
			return models.Workout{}, fmt.Errorf("failed to persist migrated workout: %w", err)
		}
	}

	return workout, nil
}

// lookupName fetches the display name of a referenced record, reporting
// ok=false when the reference is dangling.
func (r *WorkoutRepository) lookupName(collection Collection, id string) (string, bool, error) {
	record, err := r.store.GetByID(collection, id)
	if errors.Is(err, shared.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(record, &named); err != nil {
		return "", false, fmt.Errorf("failed to decode %s record: %w", collection, err)
	}

	return named.Name, true, nil
}

// put overwrites the stored record for the workout.
func (r *WorkoutRepository) put(workout *models.Workout) error {
	data, err := json.Marshal(workout)
	if err != nil {
		return fmt.Errorf("failed to encode workout: %w", err)
	}
	return r.store.Update(Workouts, workout.ID, data)
}
