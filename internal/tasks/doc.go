// Package tasks orchestrates bulk backup operations with real-time progress reporting.
//
// # Core Operations
//
// The [BackupEngine] provides three operations:
//
//  1. [BackupEngine.Export] : Full-collection export
//     - Reads all customers, machines, and workouts in their current, migrated shape
//     - Wraps them in a versioned document with an export timestamp
//
//  2. [BackupEngine.Import] : Destructive replace from a backup document
//     - Validates the untyped document tree field-by-field before any mutation
//     - Clears every existing record through the cascading delete paths
//     - Recreates entities preserving original ids, timestamps, and flags
//     - Normalizes legacy flat-scalar workouts to a single-entry series
//
//  3. [BackupEngine.ClearAll] : Wipe all collections, children first
//
// A malformed file is reported as a content error and an invalid document as a
// validation error, in both cases before any deletion occurs, so a bad file
// never destroys existing data.
//
// # Progress Reporting
//
// Operations emit [ProgressUpdate] values over a caller-supplied channel using
// select with default, so progress reporting never blocks execution. Bulk
// phases perform one storage call per record, sequentially; there is no
// spanning transaction, and the validation-before-mutation rule is the
// compensating design.
package tasks
