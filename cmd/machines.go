package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/gymtrack/internal/formatter"
	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
	"github.com/urfave/cli/v3"
)

// MachineAdd creates a new machine.
func (r *Runner) MachineAdd(ctx context.Context, cmd *cli.Command) error {
	machine := models.Machine{
		Name: cmd.String("name"),
		Type: cmd.String("type"),
	}

	if err := r.machines.Create(&machine); err != nil {
		return fmt.Errorf("failed to add machine: %w", err)
	}

	r.logger.Info("machine added", "id", machine.ID, "name", machine.Name, "type", machine.Type)
	r.writePlain("✓ Added %s (%s)\n", machine.Name, machine.ID)
	return nil
}

// MachineList lists all machines.
func (r *Runner) MachineList(ctx context.Context, cmd *cli.Command) error {
	machines, err := r.machines.List()
	if err != nil {
		return fmt.Errorf("failed to list machines: %w", err)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(machines, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		output, err := formatter.MachinesToCSV(machines)
		if err != nil {
			return err
		}
		return r.writePlain("%s", output)
	default:
		if len(machines) == 0 {
			r.writePlain("%s\n", r.translator.Lookup("noMachines"))
			return nil
		}
		for i, machine := range machines {
			r.writePlain("%d. %s [%s]\n", i+1, machine.Name, machine.Type)
		}
		return nil
	}
}

// MachineUpdate applies a partial update to a machine.
func (r *Runner) MachineUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: machine id is required", shared.ErrMissingArgument)
	}

	patch := models.MachinePatch{}
	if cmd.IsSet("name") {
		name := cmd.String("name")
		patch.Name = &name
	}
	if cmd.IsSet("type") {
		machineType := cmd.String("type")
		patch.Type = &machineType
	}

	machine, err := r.machines.Update(id, patch)
	if err != nil {
		return fmt.Errorf("failed to update machine: %w", err)
	}

	r.logger.Info("machine updated", "id", machine.ID)
	r.writePlain("✓ Updated %s\n", machine.Name)
	return nil
}

// MachineDelete removes a machine and cascades to workouts recorded on it.
func (r *Runner) MachineDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: machine id is required", shared.ErrMissingArgument)
	}

	if err := r.machines.Delete(id); err != nil {
		return fmt.Errorf("failed to delete machine: %w", err)
	}

	r.logger.Info("machine deleted", "id", id)
	r.writePlain("✓ Deleted machine %s and its workouts\n", id)
	return nil
}
