// Package models defines domain entities and record shapes for the gymtrack application.
//
// The package contains three categories of types:
//
// 1. Persistent Entities: JSON-document records stored by the record store
//   - [Customer] : Gym customer with contact details and a soft-deactivation flag
//   - [Machine] : Gym equipment with a category tag
//   - [Workout] : Training session referencing a customer and machine, with an ordered series list
//
// 2. Projections and Patches: Derived, never-persisted types
//   - [WorkoutWithDetails] : Workout joined with denormalized customer and machine names
//   - [CustomerPatch], [MachinePatch], [WorkoutPatch] : Partial-update field sets
//
// 3. Record Shapes: The raw stored forms used by the schema migrator
//   - [LegacyWorkout] : The pre-series shape with flat sets/reps/weight scalars
//   - [DecodeWorkoutRecord] : Tagged decode of raw bytes into the current shape, upgrading legacy records
//
// All entities validate themselves via Validate before persistence.
package models
