package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// LegacyWorkout is the pre-series workout shape with flat sets/reps/weight scalars.
type LegacyWorkout struct {
	ID         string
	CustomerID string
	MachineID  string
	Date       time.Time
	Sets       int
	Reps       int
	Weight     float64
	Notes      string
	CreatedAt  time.Time
}

// UpgradeLegacyWorkout converts a legacy workout into the current shape,
// folding the flat scalars into a single series entry. Pure; the legacy
// scalars do not survive the conversion.
func UpgradeLegacyWorkout(w LegacyWorkout) Workout {
	return Workout{
		ID:         w.ID,
		CustomerID: w.CustomerID,
		MachineID:  w.MachineID,
		Date:       w.Date,
		Series:     []Series{{Sets: w.Sets, Reps: w.Reps, Weight: w.Weight}},
		Notes:      w.Notes,
		CreatedAt:  w.CreatedAt,
	}
}

// flexTime decodes timestamps that arrive either as RFC 3339 or as a bare
// YYYY-MM-DD date. Older exports carry date-only workout dates.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return fmt.Errorf("unrecognized timestamp %q", value)
	}

	t.Time = parsed
	return nil
}

// storedWorkout is the raw persisted form covering both the current and the
// legacy shape. The scalar fields are pointers so presence can be distinguished
// from zero; JSON numbers decode as float64.
type storedWorkout struct {
	ID         string   `json:"id"`
	CustomerID string   `json:"customerId"`
	MachineID  string   `json:"machineId"`
	Date       flexTime `json:"date"`
	Series     []Series `json:"series,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	CreatedAt  flexTime `json:"createdAt"`
	Sets       *float64 `json:"sets,omitempty"`
	Reps       *float64 `json:"reps,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

// DecodeWorkoutRecord decodes raw stored bytes into the current workout shape.
//
// A record is legacy when series is absent or empty AND a numeric sets field is
// present; it is upgraded via [UpgradeLegacyWorkout] and upgraded=true signals
// the caller to rewrite the persisted record. A record with neither shape
// decodes with an empty series list (defensive fallback; such records do not
// occur in well-formed data and fail Validate).
func DecodeWorkoutRecord(data []byte) (Workout, bool, error) {
	var raw storedWorkout
	if err := json.Unmarshal(data, &raw); err != nil {
		return Workout{}, false, fmt.Errorf("failed to decode workout record: %w", err)
	}

	if len(raw.Series) == 0 && raw.Sets != nil {
		legacy := LegacyWorkout{
			ID:         raw.ID,
			CustomerID: raw.CustomerID,
			MachineID:  raw.MachineID,
			Date:       raw.Date.Time,
			Sets:       int(*raw.Sets),
			Notes:      raw.Notes,
			CreatedAt:  raw.CreatedAt.Time,
		}
		if raw.Reps != nil {
			legacy.Reps = int(*raw.Reps)
		}
		if raw.Weight != nil {
			legacy.Weight = *raw.Weight
		}
		return UpgradeLegacyWorkout(legacy), true, nil
	}

	series := raw.Series
	if series == nil {
		series = []Series{}
	}

	return Workout{
		ID:         raw.ID,
		CustomerID: raw.CustomerID,
		MachineID:  raw.MachineID,
		Date:       raw.Date.Time,
		Series:     series,
		Notes:      raw.Notes,
		CreatedAt:  raw.CreatedAt.Time,
	}, false, nil
}
