// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// customersCommand handles customer operations
func customersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "customers",
		Aliases: []string{"customer", "c"},
		Usage:   "Manage customers",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a new customer",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Customer name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Customer email",
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "Customer phone number",
					},
				},
				Action: r.CustomerAdd,
			},
			{
				Name:  "list",
				Usage: "List customers, active entries first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "active",
						Usage: "Only show active customers",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.CustomerList,
			},
			{
				Name:  "show",
				Usage: "Show a single customer",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.CustomerShow,
			},
			{
				Name:  "update",
				Usage: "Update fields on an existing customer",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New customer name",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "New customer email",
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "New customer phone number",
					},
					&cli.BoolFlag{
						Name:  "deactivate",
						Usage: "Mark the customer as deactivated",
					},
					&cli.BoolFlag{
						Name:  "activate",
						Usage: "Reactivate the customer",
					},
				},
				Action: r.CustomerUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a customer and all of their workouts",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.CustomerDelete,
			},
		},
	}
}

// machinesCommand handles machine operations
func machinesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "machines",
		Aliases: []string{"machine", "m"},
		Usage:   "Manage machines",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a new machine",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Machine name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "type",
						Usage:    "Machine type (cardio, strength, functional, freeWeights)",
						Required: true,
					},
				},
				Action: r.MachineAdd,
			},
			{
				Name:  "list",
				Usage: "List machines",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.MachineList,
			},
			{
				Name:  "update",
				Usage: "Update fields on an existing machine",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New machine name",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "New machine type",
					},
				},
				Action: r.MachineUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a machine and all workouts recorded on it",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.MachineDelete,
			},
		},
	}
}

// workoutsCommand handles workout session operations
func workoutsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "workouts",
		Aliases: []string{"workout", "w", "sessions"},
		Usage:   "Manage workout sessions",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Record a workout session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "customer",
						Usage:    "Customer ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "machine",
						Usage:    "Machine ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "series",
						Usage:    "Series list, e.g. '3x10@50,2x8@60' (sets x reps @ weight)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Session date (YYYY-MM-DD, defaults to today)",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "Session notes",
					},
				},
				Action: r.WorkoutAdd,
			},
			{
				Name:  "history",
				Usage: "Show workout history for a customer, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "customer",
						Usage:    "Customer ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "machine",
						Usage: "Only show sessions on this machine ID",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.WorkoutHistory,
			},
			{
				Name:  "update",
				Usage: "Update fields on an existing workout",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "series",
						Usage: "Replacement series list, e.g. '3x10@50'",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "New session date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "New session notes",
					},
				},
				Action: r.WorkoutUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a workout session",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.WorkoutDelete,
			},
		},
	}
}

// backupCommand handles backup export, import, and clearing all data.
func backupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "Export, import, and clear all data",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Export all data to a backup JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory for the backup file",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the document to stdout instead of writing a file",
					},
				},
				Action: r.BackupExport,
			},
			{
				Name:  "import",
				Usage: "Replace all data with the contents of a backup JSON file",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.BackupImport,
			},
			{
				Name:  "clear",
				Usage: "Permanently delete all customers, machines, and workouts",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.BackupClear,
			},
		},
	}
}

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing customers and workouts",
		Action:  r.TUI,
	}
}
