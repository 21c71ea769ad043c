// Package repositories implements SQLite persistence for all domain entities.
//
// The [RecordStore] is the storage primitive: durable, keyed JSON-document
// storage for the three entity collections with secondary-index lookups backed
// by generated columns. Entity repositories wrap it with entity-specific rules.
//
// Key Implementations:
//   - [RecordStore] : Generic keyed collection storage (add/get/update/delete/index lookup)
//   - [CustomerRepository] : Customer lifecycle with active-first ordering and cascading deletes
//   - [MachineRepository] : Machine lifecycle with cascading deletes
//   - [WorkoutRepository] : Workout lifecycle, series validation, and the customer history join
//
// Identity is upsert-based: Create generates a fresh id unless the caller
// supplies one, and a supplied id that already exists degrades to an update.
// This supports backup restore replaying original ids without duplication.
//
// Every workout read path re-checks the record shape and migrates legacy
// flat-scalar records on the fly, so a store that was only partially upgraded
// by [BackfillWorkoutSeries] self-heals on subsequent reads.
package repositories
