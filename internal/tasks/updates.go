package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchData Phase = iota
	ValidateDocument
	ClearData
	RestoreCustomers
	RestoreMachines
	RestoreWorkouts
)

func (p Phase) String() string {
	switch p {
	case FetchData:
		return "fetch_data"
	case ValidateDocument:
		return "validate_document"
	case ClearData:
		return "clear_data"
	case RestoreCustomers:
		return "restore_customers"
	case RestoreMachines:
		return "restore_machines"
	case RestoreWorkouts:
		return "restore_workouts"
	default:
		return ""
	}
}

func fetchCollectionUpdate(step, total int, collection string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchData,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Reading %s...", collection),
	}
}

func validateUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   ValidateDocument,
		Step:    1,
		Total:   1,
		Message: "Validating backup document...",
	}
}

func clearUpdate(step, total int, collection string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ClearData,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Clearing %s...", step, total, collection),
	}
}

func restoreUpdate(phase Phase, step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Restoring %s", step, total, name),
	}
}
