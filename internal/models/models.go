package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/gymtrack/internal/shared"
)

// Machine type category tags. Stored as plain strings; the store does not
// enforce membership (selection is a UI concern).
const (
	MachineTypeCardio      = "cardio"
	MachineTypeStrength    = "strength"
	MachineTypeFunctional  = "functional"
	MachineTypeFreeWeights = "freeWeights"
)

// MachineTypes returns the closed set of machine category tags in display order.
func MachineTypes() []string {
	return []string{MachineTypeCardio, MachineTypeStrength, MachineTypeFunctional, MachineTypeFreeWeights}
}

// Customer represents a gym customer.
//
// Deactivated customers are hidden from active-selection flows but retained for history.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Deactivated bool      `json:"deactivated"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks that the customer carries the required fields.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: customer name is required", shared.ErrValidation)
	}
	return nil
}

// Machine represents a piece of gym equipment.
type Machine struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks that the machine carries the required fields.
func (m *Machine) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: machine name is required", shared.ErrValidation)
	}
	return nil
}

// Series is one repeated block of sets×reps at a given weight within a workout.
type Series struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Valid reports whether the series entry is well-formed: positive sets and reps, non-negative weight.
func (s Series) Valid() bool {
	return s.Sets > 0 && s.Reps > 0 && s.Weight >= 0
}

// FilterSeries returns the well-formed entries of the given series list, preserving order.
func FilterSeries(series []Series) []Series {
	valid := make([]Series, 0, len(series))
	for _, s := range series {
		if s.Valid() {
			valid = append(valid, s)
		}
	}
	return valid
}

// Workout represents a training session on one machine.
//
// CustomerID and MachineID are non-owning references; referential integrity is
// maintained by cascading deletes in the entity repositories, not by the store.
type Workout struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	MachineID  string    `json:"machineId"`
	Date       time.Time `json:"date"`
	Series     []Series  `json:"series"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks references and requires at least one well-formed series entry.
func (w *Workout) Validate() error {
	if w.CustomerID == "" {
		return fmt.Errorf("%w: workout customer reference is required", shared.ErrValidation)
	}
	if w.MachineID == "" {
		return fmt.Errorf("%w: workout machine reference is required", shared.ErrValidation)
	}
	if len(FilterSeries(w.Series)) == 0 {
		return fmt.Errorf("%w: workout requires at least one series entry with positive sets and reps", shared.ErrValidation)
	}
	return nil
}

// WorkoutWithDetails is a read-only projection of Workout with the denormalized
// customer and machine names of its references. Produced for display; never persisted.
type WorkoutWithDetails struct {
	Workout
	CustomerName string `json:"customerName"`
	MachineName  string `json:"machineName"`
}

// CustomerPatch describes a partial customer update. Nil fields are left unchanged.
type CustomerPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Deactivated *bool
}

// MachinePatch describes a partial machine update. Nil fields are left unchanged.
type MachinePatch struct {
	Name *string
	Type *string
}

// WorkoutPatch describes a partial workout update. Nil fields are left unchanged;
// a non-nil Series replaces the whole series list.
type WorkoutPatch struct {
	CustomerID *string
	MachineID  *string
	Date       *time.Time
	Series     []Series
	Notes      *string
}
