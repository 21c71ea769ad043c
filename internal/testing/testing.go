// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/repositories"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// MustOpenDB opens an in-memory database with all migrations applied and
// closes it when the test ends.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := shared.NewLogger(io.Discard)
	if err := repositories.Setup(db, logger); err != nil {
		t.Fatalf("Failed to set up database: %v", err)
	}
	return db
}

// MustOpenRepos wires the three entity repositories over a fresh in-memory database.
func MustOpenRepos(t *testing.T) (*repositories.CustomerRepository, *repositories.MachineRepository, *repositories.WorkoutRepository) {
	t.Helper()
	db := MustOpenDB(t)
	store := repositories.NewRecordStore(db)
	logger := shared.NewLogger(io.Discard)

	customers := repositories.NewCustomerRepository(store, logger)
	machines := repositories.NewMachineRepository(store, logger)
	workouts := repositories.NewWorkoutRepository(store)
	return customers, machines, workouts
}

// SeedCustomer creates and persists a customer with the given name.
func SeedCustomer(t *testing.T, repo *repositories.CustomerRepository, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name}
	if err := repo.Create(&customer); err != nil {
		t.Fatalf("Failed to seed customer %s: %v", name, err)
	}
	return customer
}

// SeedMachine creates and persists a machine with the given name and type.
func SeedMachine(t *testing.T, repo *repositories.MachineRepository, name, machineType string) models.Machine {
	t.Helper()
	machine := models.Machine{Name: name, Type: machineType}
	if err := repo.Create(&machine); err != nil {
		t.Fatalf("Failed to seed machine %s: %v", name, err)
	}
	return machine
}

// SeedWorkout creates and persists a workout for the given customer and machine.
func SeedWorkout(t *testing.T, repo *repositories.WorkoutRepository, customerID, machineID string, date time.Time, series []models.Series) models.Workout {
	t.Helper()
	workout := models.Workout{
		CustomerID: customerID,
		MachineID:  machineID,
		Date:       date,
		Series:     series,
	}
	if err := repo.Create(&workout); err != nil {
		t.Fatalf("Failed to seed workout: %v", err)
	}
	return workout
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
