package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/repositories"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// ImportResult summarizes a completed import.
type ImportResult struct {
	Customers       int // Customers restored
	Machines        int // Machines restored
	Workouts        int // Workouts restored
	SkippedWorkouts int // Workouts dropped for lacking any valid series entry
}

// BackupEngine orchestrates full-collection export, destructive import, and
// clear-all over the entity repositories.
type BackupEngine struct {
	customers *repositories.CustomerRepository
	machines  *repositories.MachineRepository
	workouts  *repositories.WorkoutRepository
}

// NewBackupEngine creates a new BackupEngine with the provided repositories.
func NewBackupEngine(customers *repositories.CustomerRepository, machines *repositories.MachineRepository, workouts *repositories.WorkoutRepository) *BackupEngine {
	return &BackupEngine{
		customers: customers,
		machines:  machines,
		workouts:  workouts,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *BackupEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Export reads all three collections in their current, already-migrated shape
// and wraps them in a versioned document with an export timestamp.
func (e *BackupEngine) Export(progress chan<- ProgressUpdate) (*models.BackupDocument, error) {
	e.sendProgress(progress, fetchCollectionUpdate(1, 3, "customers"))
	customers, err := e.customers.List()
	if err != nil {
		return nil, fmt.Errorf("failed to export customers: %w", err)
	}

	e.sendProgress(progress, fetchCollectionUpdate(2, 3, "machines"))
	machines, err := e.machines.List()
	if err != nil {
		return nil, fmt.Errorf("failed to export machines: %w", err)
	}

	e.sendProgress(progress, fetchCollectionUpdate(3, 3, "workouts"))
	workouts, err := e.workouts.List()
	if err != nil {
		return nil, fmt.Errorf("failed to export workouts: %w", err)
	}

	return &models.BackupDocument{
		Version:    models.BackupVersion,
		ExportDate: time.Now().UTC(),
		Customers:  customers,
		Machines:   machines,
		Workouts:   workouts,
	}, nil
}

// importPayload is the typed form of a validated backup document. Workouts
// stay raw so the forward-compatible reader can accept both shapes.
type importPayload struct {
	Customers []models.Customer `json:"customers"`
	Machines  []models.Machine  `json:"machines"`
	Workouts  []json.RawMessage `json:"workouts"`
}

// Import validates the raw document and, only after validation passes,
// replaces every existing record with the document's contents, preserving
// original ids, timestamps, and deactivation flags.
//
// Legacy flat-scalar workouts are normalized to a single-entry series before
// recreation; workouts without any valid series entry are skipped and counted.
func (e *BackupEngine) Import(progress chan<- ProgressUpdate, raw []byte) (*ImportResult, error) {
	e.sendProgress(progress, validateUpdate())

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%w: unreadable backup document: %v", shared.ErrIO, err)
	}
	if err := ValidateBackupDocument(tree); err != nil {
		return nil, err
	}

	var payload importPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid format: %v", shared.ErrValidation, err)
	}

	// Decode every workout into typed form before any deletion; a record the
	// validator passed but the decoder rejects aborts the import with the
	// existing data intact.
	workouts := make([]models.Workout, 0, len(payload.Workouts))
	for _, record := range payload.Workouts {
		workout, _, err := models.DecodeWorkoutRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid format: %v", shared.ErrValidation, err)
		}
		workouts = append(workouts, workout)
	}

	if err := e.ClearAll(progress); err != nil {
		return nil, err
	}

	result := &ImportResult{}

	total := len(payload.Customers)
	for i := range payload.Customers {
		customer := payload.Customers[i]
		e.sendProgress(progress, restoreUpdate(RestoreCustomers, i+1, total, customer.Name))
		if err := e.customers.Create(&customer); err != nil {
			return result, fmt.Errorf("failed to restore customer %s: %w", customer.ID, err)
		}
		result.Customers++
	}

	total = len(payload.Machines)
	for i := range payload.Machines {
		machine := payload.Machines[i]
		e.sendProgress(progress, restoreUpdate(RestoreMachines, i+1, total, machine.Name))
		if err := e.machines.Create(&machine); err != nil {
			return result, fmt.Errorf("failed to restore machine %s: %w", machine.ID, err)
		}
		result.Machines++
	}

	total = len(workouts)
	for i := range workouts {
		workout := workouts[i]
		e.sendProgress(progress, restoreUpdate(RestoreWorkouts, i+1, total, workout.ID))
		if err := e.workouts.Create(&workout); err != nil {
			if errors.Is(err, shared.ErrValidation) {
				result.SkippedWorkouts++
				continue
			}
			return result, fmt.Errorf("failed to restore workout %s: %w", workout.ID, err)
		}
		result.Workouts++
	}

	return result, nil
}

// ClearAll deletes every workout, customer, and machine, children first.
// Each record is removed with one awaited storage call; there is no spanning
// transaction.
func (e *BackupEngine) ClearAll(progress chan<- ProgressUpdate) error {
	workouts, err := e.workouts.List()
	if err != nil {
		return fmt.Errorf("failed to enumerate workouts: %w", err)
	}

	total := len(workouts)
	for i, workout := range workouts {
		e.sendProgress(progress, clearUpdate(i+1, total, "workouts"))
		if err := e.workouts.Delete(workout.ID); err != nil {
			return fmt.Errorf("failed to delete workout %s: %w", workout.ID, err)
		}
	}

	customers, err := e.customers.List()
	if err != nil {
		return fmt.Errorf("failed to enumerate customers: %w", err)
	}

	total = len(customers)
	for i, customer := range customers {
		e.sendProgress(progress, clearUpdate(i+1, total, "customers"))
		if err := e.customers.Delete(customer.ID); err != nil {
			return fmt.Errorf("failed to delete customer %s: %w", customer.ID, err)
		}
	}

	machines, err := e.machines.List()
	if err != nil {
		return fmt.Errorf("failed to enumerate machines: %w", err)
	}

	total = len(machines)
	for i, machine := range machines {
		e.sendProgress(progress, clearUpdate(i+1, total, "machines"))
		if err := e.machines.Delete(machine.ID); err != nil {
			return fmt.Errorf("failed to delete machine %s: %w", machine.ID, err)
		}
	}

	return nil
}
