package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// Collection names one of the three object stores.
type Collection string

const (
	Customers Collection = "customers"
	Machines  Collection = "machines"
	Workouts  Collection = "workouts"
)

// Secondary index names, matching the JSON field each index covers.
const (
	IndexName       = "name"
	IndexType       = "type"
	IndexCustomerID = "customerId"
	IndexMachineID  = "machineId"
	IndexDate       = "date"
)

// indexColumns maps collection and index name to the backing generated column.
// Lookups against unknown indexes are rejected before reaching SQL.
var indexColumns = map[Collection]map[string]string{
	Customers: {IndexName: "name"},
	Machines:  {IndexName: "name", IndexType: "type"},
	Workouts:  {IndexCustomerID: "customer_id", IndexMachineID: "machine_id", IndexDate: "date"},
}

// SeriesSchemaVersion is the migration version at which the workout series
// shape became current. Applying it for the first time triggers the one-time
// legacy backfill in [Setup].
const SeriesSchemaVersion = 1

// RecordStore provides durable, keyed JSON-document storage for the three
// entity collections over a single SQLite database.
//
// The store is intentionally schema-agnostic: records are opaque documents,
// and referential integrity between collections is the entity repositories'
// concern. One logical transaction per call; no operation spans records.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore creates a RecordStore over the given database connection.
func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Setup idempotently prepares the schema (collections, primary keys, secondary
// indexes) and, when the series migration is newly applied, runs the one-time
// batch upgrade of legacy workout records.
func Setup(db *sql.DB, logger *log.Logger) error {
	applied, err := shared.RunMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to run schema migrations: %w", err)
	}

	if slices.Contains(applied, SeriesSchemaVersion) {
		migrated, err := BackfillWorkoutSeries(NewRecordStore(db))
		if err != nil {
			return fmt.Errorf("workout series backfill failed: %w", err)
		}
		if migrated > 0 && logger != nil {
			logger.Info("upgraded legacy workout records", "count", migrated)
		}
	}

	return nil
}

// Add inserts a new record into the collection.
// Fails with shared.ErrDuplicateKey if the id already exists.
func (s *RecordStore) Add(collection Collection, id string, record json.RawMessage) error {
	query := fmt.Sprintf("INSERT INTO %s (id, data) VALUES (?, ?)", collection)

	if _, err := s.db.Exec(query, id, string(record)); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %s record %s", shared.ErrDuplicateKey, collection, id)
		}
		return fmt.Errorf("failed to insert %s record: %w", collection, err)
	}

	return nil
}

// GetAll returns every record in the collection. Order is unspecified;
// callers must sort if order matters.
func (s *RecordStore) GetAll(collection Collection) ([]json.RawMessage, error) {
	query := fmt.Sprintf("SELECT data FROM %s", collection)

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	return scanRecords(collection, rows)
}

// GetByID returns the record with the given id, or shared.ErrNotFound.
func (s *RecordStore) GetByID(collection Collection, id string) (json.RawMessage, error) {
	query := fmt.Sprintf("SELECT data FROM %s WHERE id = ?", collection)

	var data string
	err := s.db.QueryRow(query, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s record %s", shared.ErrNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s record: %w", collection, err)
	}

	return json.RawMessage(data), nil
}

// Update replaces the record with the given id wholesale.
// Fails with shared.ErrNotFound if no record with that id exists; callers are
// expected to have fetched-and-merged already, so this is a raw overwrite.
func (s *RecordStore) Update(collection Collection, id string, record json.RawMessage) error {
	query := fmt.Sprintf("UPDATE %s SET data = ? WHERE id = ?", collection)

	result, err := s.db.Exec(query, string(record), id)
	if err != nil {
		return fmt.Errorf("failed to update %s record: %w", collection, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s record %s", shared.ErrNotFound, collection, id)
	}

	return nil
}

// Delete removes the record with the given id.
// Deleting a non-existent id is a no-op, not an error.
func (s *RecordStore) Delete(collection Collection, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", collection)

	if _, err := s.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", collection, err)
	}

	return nil
}

// FindByIndex returns all records whose indexed field equals value.
func (s *RecordStore) FindByIndex(collection Collection, index, value string) ([]json.RawMessage, error) {
	column, ok := indexColumns[collection][index]
	if !ok {
		return nil, fmt.Errorf("%w: no index %q on collection %s", shared.ErrInvalidArgument, index, collection)
	}

	query := fmt.Sprintf("SELECT data FROM %s WHERE %s = ?", collection, column)

	rows, err := s.db.Query(query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, index, err)
	}
	defer rows.Close()

	return scanRecords(collection, rows)
}

// scanRecords drains rows into raw JSON documents.
func scanRecords(collection Collection, rows *sql.Rows) ([]json.RawMessage, error) {
	var records []json.RawMessage
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan %s record: %w", collection, err)
		}
		records = append(records, json.RawMessage(data))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}
