package models

import "time"

// BackupVersion tags documents produced by the current export format.
const BackupVersion = "1.1.0"

// BackupDocument is the portable full-collection export envelope.
//
// Exports always carry workouts in the current series shape. The import reader
// is forward-compatible and additionally accepts the legacy flat-scalar shape.
type BackupDocument struct {
	Version    string     `json:"version"`
	ExportDate time.Time  `json:"exportDate"`
	Customers  []Customer `json:"customers"`
	Machines   []Machine  `json:"machines"`
	Workouts   []Workout  `json:"workouts"`
}
