package models

import (
	"errors"
	"testing"

	"github.com/desertthunder/gymtrack/internal/shared"
)

func TestSeries(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cases := []struct {
			name   string
			series Series
			want   bool
		}{
			{"well-formed", Series{Sets: 3, Reps: 10, Weight: 50}, true},
			{"zero weight ok", Series{Sets: 1, Reps: 1, Weight: 0}, true},
			{"zero sets", Series{Sets: 0, Reps: 10, Weight: 50}, false},
			{"zero reps", Series{Sets: 3, Reps: 0, Weight: 50}, false},
			{"negative weight", Series{Sets: 3, Reps: 10, Weight: -1}, false},
		}

		for _, tc := range cases {
			if got := tc.series.Valid(); got != tc.want {
				t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
			}
		}
	})

	t.Run("FilterSeries", func(t *testing.T) {
		series := []Series{
			{Sets: 3, Reps: 10, Weight: 50},
			{Sets: 0, Reps: 10, Weight: 50},
			{Sets: 2, Reps: 8, Weight: 60},
			{Sets: 2, Reps: 8, Weight: -5},
		}

		filtered := FilterSeries(series)
		if len(filtered) != 2 {
			t.Fatalf("expected 2 valid entries, got %d", len(filtered))
		}
		if filtered[0].Weight != 50 || filtered[1].Weight != 60 {
			t.Error("filtering should preserve order")
		}
	})

	t.Run("FilterSeries empty input", func(t *testing.T) {
		if filtered := FilterSeries(nil); len(filtered) != 0 {
			t.Errorf("expected empty result, got %d entries", len(filtered))
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("customer requires name", func(t *testing.T) {
		customer := Customer{}
		if err := customer.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}

		customer.Name = "Alex"
		if err := customer.Validate(); err != nil {
			t.Errorf("expected valid customer, got %v", err)
		}
	})

	t.Run("machine requires name", func(t *testing.T) {
		machine := Machine{Type: MachineTypeCardio}
		if err := machine.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("workout requires references and series", func(t *testing.T) {
		workout := Workout{}
		if err := workout.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error for missing customer, got %v", err)
		}

		workout.CustomerID = "c1"
		if err := workout.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error for missing machine, got %v", err)
		}

		workout.MachineID = "m1"
		if err := workout.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error for empty series, got %v", err)
		}

		workout.Series = []Series{{Sets: 0, Reps: 0, Weight: 0}}
		if err := workout.Validate(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected validation error for all-invalid series, got %v", err)
		}

		workout.Series = []Series{{Sets: 3, Reps: 10, Weight: 50}}
		if err := workout.Validate(); err != nil {
			t.Errorf("expected valid workout, got %v", err)
		}
	})
}

func TestMachineTypes(t *testing.T) {
	types := MachineTypes()
	if len(types) != 4 {
		t.Fatalf("expected 4 machine types, got %d", len(types))
	}
	if types[0] != MachineTypeCardio || types[3] != MachineTypeFreeWeights {
		t.Error("machine types out of display order")
	}
}
