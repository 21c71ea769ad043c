package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// MachineRepository wraps the record store with machine lifecycle rules.
// Only name and type are mutable after creation.
type MachineRepository struct {
	store  *RecordStore
	logger *log.Logger
}

// NewMachineRepository creates a new MachineRepository over the given store.
func NewMachineRepository(store *RecordStore, logger *log.Logger) *MachineRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &MachineRepository{store: store, logger: logger}
}

// Create inserts a new machine, generating a fresh id when none is supplied.
// A supplied id that already exists degrades to a full update of that record.
func (r *MachineRepository) Create(machine *models.Machine) error {
	if err := machine.Validate(); err != nil {
		return err
	}

	if machine.CreatedAt.IsZero() {
		machine.CreatedAt = time.Now()
	}

	if machine.ID == "" {
		machine.ID = shared.GenerateID()
	} else if _, err := r.Get(machine.ID); err == nil {
		return r.put(machine)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	data, err := json.Marshal(machine)
	if err != nil {
		return fmt.Errorf("failed to encode machine: %w", err)
	}

	return r.store.Add(Machines, machine.ID, data)
}

// Get retrieves a machine by id.
func (r *MachineRepository) Get(id string) (*models.Machine, error) {
	record, err := r.store.GetByID(Machines, id)
	if err != nil {
		return nil, err
	}

	var machine models.Machine
	if err := json.Unmarshal(record, &machine); err != nil {
		return nil, fmt.Errorf("failed to decode machine: %w", err)
	}

	return &machine, nil
}

// List returns all machines. Order is unspecified.
func (r *MachineRepository) List() ([]models.Machine, error) {
	records, err := r.store.GetAll(Machines)
	if err != nil {
		return nil, err
	}

	machines := make([]models.Machine, 0, len(records))
	for _, record := range records {
		var machine models.Machine
		if err := json.Unmarshal(record, &machine); err != nil {
			return nil, fmt.Errorf("failed to decode machine: %w", err)
		}
		machines = append(machines, machine)
	}

	return machines, nil
}

// Update merges the supplied name and type onto the existing machine.
func (r *MachineRepository) Update(id string, patch models.MachinePatch) (*models.Machine, error) {
	machine, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		machine.Name = *patch.Name
	}
	if patch.Type != nil {
		machine.Type = *patch.Type
	}

	if err := machine.Validate(); err != nil {
		return nil, err
	}
	if err := r.put(machine); err != nil {
		return nil, err
	}

	return machine, nil
}

// Delete removes the machine and every workout referencing it, children
// first. Failed child deletes are logged and the cascade continues.
func (r *MachineRepository) Delete(id string) error {
	records, err := r.store.FindByIndex(Workouts, IndexMachineID, id)
	if err != nil {
		return err
	}

	for _, record := range records {
		workout, _, err := models.DecodeWorkoutRecord(record)
		if err != nil {
			r.logger.Warn("skipping undecodable workout during cascade", "machine", id, "error", err)
			continue
		}
		if err := r.store.Delete(Workouts, workout.ID); err != nil {
			r.logger.Warn("failed to delete workout during cascade", "workout", workout.ID, "error", err)
		}
	}

	return r.store.Delete(Machines, id)
}

// put overwrites the stored record for the machine.
func (r *MachineRepository) put(machine *models.Machine) error {
	data, err := json.Marshal(machine)
	if err != nil {
		return fmt.Errorf("failed to encode machine: %w", err)
	}
	return r.store.Update(Machines, machine.ID, data)
}
