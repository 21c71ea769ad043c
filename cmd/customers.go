package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/gymtrack/internal/formatter"
	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
	"github.com/urfave/cli/v3"
)

// CustomerAdd creates a new customer.
func (r *Runner) CustomerAdd(ctx context.Context, cmd *cli.Command) error {
	customer := models.Customer{
		Name:  cmd.String("name"),
		Email: cmd.String("email"),
		Phone: cmd.String("phone"),
	}

	if err := r.customers.Create(&customer); err != nil {
		return fmt.Errorf("failed to add customer: %w", err)
	}

	r.logger.Info("customer added", "id", customer.ID, "name", customer.Name)
	r.writePlain("✓ %s: %s (%s)\n", r.translator.Lookup("customerAdded"), customer.Name, customer.ID)
	return nil
}

// CustomerList lists customers, active entries before deactivated ones.
func (r *Runner) CustomerList(ctx context.Context, cmd *cli.Command) error {
	var customers []models.Customer
	var err error

	if cmd.Bool("active") {
		customers, err = r.customers.ListActive()
	} else {
		customers, err = r.customers.List()
	}
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(customers, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		output, err := formatter.CustomersToCSV(customers)
		if err != nil {
			return err
		}
		return r.writePlain("%s", output)
	default:
		if len(customers) == 0 {
			r.writePlain("%s\n", r.translator.Lookup("noCustomers"))
			return nil
		}
		return r.writePlain("%s", formatter.CustomersToText(customers))
	}
}

// CustomerShow prints a single customer as JSON.
func (r *Runner) CustomerShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: customer id is required", shared.ErrMissingArgument)
	}

	customer, err := r.customers.Get(id)
	if err != nil {
		return fmt.Errorf("failed to load customer: %w", err)
	}

	return r.writeJSON(customer, cmd.Bool("pretty"))
}

// CustomerUpdate applies a partial update to a customer.
func (r *Runner) CustomerUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: customer id is required", shared.ErrMissingArgument)
	}

	patch := models.CustomerPatch{}
	if cmd.IsSet("name") {
		name := cmd.String("name")
		patch.Name = &name
	}
	if cmd.IsSet("email") {
		email := cmd.String("email")
		patch.Email = &email
	}
	if cmd.IsSet("phone") {
		phone := cmd.String("phone")
		patch.Phone = &phone
	}
	if cmd.Bool("deactivate") && cmd.Bool("activate") {
		return fmt.Errorf("%w: cannot specify both --deactivate and --activate", shared.ErrInvalidArgument)
	}
	if cmd.Bool("deactivate") {
		deactivated := true
		patch.Deactivated = &deactivated
	}
	if cmd.Bool("activate") {
		deactivated := false
		patch.Deactivated = &deactivated
	}

	customer, err := r.customers.Update(id, patch)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	r.logger.Info("customer updated", "id", customer.ID)
	r.writePlain("✓ Updated %s\n", customer.Name)
	return nil
}

// CustomerDelete removes a customer and cascades to their workouts.
func (r *Runner) CustomerDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: customer id is required", shared.ErrMissingArgument)
	}

	if err := r.customers.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	r.logger.Info("customer deleted", "id", id)
	r.writePlain("✓ Deleted customer %s and their workouts\n", id)
	return nil
}
