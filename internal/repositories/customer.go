package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// CustomerRepository wraps the record store with customer lifecycle rules:
// upsert creation, partial updates, active-first ordering, and cascading
// deletion of referencing workouts.
type CustomerRepository struct {
	store  *RecordStore
	logger *log.Logger
}

// NewCustomerRepository creates a new CustomerRepository over the given store.
func NewCustomerRepository(store *RecordStore, logger *log.Logger) *CustomerRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CustomerRepository{store: store, logger: logger}
}

// Create inserts a new customer, generating a fresh id when none is supplied.
// A supplied id that already exists degrades to a full update of that record
// (upsert semantics, required for safe backup re-import).
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	if customer.UpdatedAt.IsZero() {
		customer.UpdatedAt = now
	}

	if customer.ID == "" {
		customer.ID = shared.GenerateID()
	} else if _, err := r.Get(customer.ID); err == nil {
		return r.put(customer)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to encode customer: %w", err)
	}

	return r.store.Add(Customers, customer.ID, data)
}

// Get retrieves a customer by id.
func (r *CustomerRepository) Get(id string) (*models.Customer, error) {
	record, err := r.store.GetByID(Customers, id)
	if err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := json.Unmarshal(record, &customer); err != nil {
		return nil, fmt.Errorf("failed to decode customer: %w", err)
	}

	return &customer, nil
}

// List returns all customers with deactivated ones sorted after active ones,
// stable otherwise.
func (r *CustomerRepository) List() ([]models.Customer, error) {
	records, err := r.store.GetAll(Customers)
	if err != nil {
		return nil, err
	}

	customers := make([]models.Customer, 0, len(records))
	for _, record := range records {
		var customer models.Customer
		if err := json.Unmarshal(record, &customer); err != nil {
			return nil, fmt.Errorf("failed to decode customer: %w", err)
		}
		customers = append(customers, customer)
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return !customers[i].Deactivated && customers[j].Deactivated
	})

	return customers, nil
}

// ListActive returns all non-deactivated customers.
func (r *CustomerRepository) ListActive() ([]models.Customer, error) {
	customers, err := r.List()
	if err != nil {
		return nil, err
	}

	active := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		if !customer.Deactivated {
			active = append(active, customer)
		}
	}

	return active, nil
}

// Update merges the supplied fields onto the existing customer, refreshes
// updatedAt, and writes the merged record back.
func (r *CustomerRepository) Update(id string, patch models.CustomerPatch) (*models.Customer, error) {
	customer, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.Deactivated != nil {
		customer.Deactivated = *patch.Deactivated
	}
	customer.UpdatedAt = time.Now()

	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := r.put(customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// Delete removes the customer and every workout referencing it, children
// first, so no read can observe a dangling reference window. Failed child
// deletes are logged and the cascade continues (best-effort, no rollback).
func (r *CustomerRepository) Delete(id string) error {
	records, err := r.store.FindByIndex(Workouts, IndexCustomerID, id)
	if err != nil {
		return err
	}

	for _, record := range records {
		workout, _, err := models.DecodeWorkoutRecord(record)
		if err != nil {
			r.logger.Warn("skipping undecodable workout during cascade", "customer", id, "error", err)
			continue
		}
		if err := r.store.Delete(Workouts, workout.ID); err != nil {
			r.logger.Warn("failed to delete workout during cascade", "workout", workout.ID, "error", err)
		}
	}

	return r.store.Delete(Customers, id)
}

// put overwrites the stored record for the customer.
func (r *CustomerRepository) put(customer *models.Customer) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to encode customer: %w", err)
	}
	return r.store.Update(Customers, customer.ID, data)
}
