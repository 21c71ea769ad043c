package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/gymtrack/internal/formatter"
	"github.com/desertthunder/gymtrack/internal/shared"
	"github.com/desertthunder/gymtrack/internal/tasks"
	"github.com/urfave/cli/v3"
)

// BackupExport exports all data to a backup JSON file.
func (r *Runner) BackupExport(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("starting export")

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			r.writePlain("📥 %s\n", update.Message)
		}
	}()

	doc, err := r.engine.Export(progressCh)
	close(progressCh)
	if err != nil {
		r.writePlain("%s\n", r.translator.Lookup("exportError"))
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(doc, true)
	}

	dir := cmd.String("output")
	if dir == "" {
		dir = r.config.Backup.Directory
	}

	path, err := formatter.WriteBackupFile(doc, dir)
	if err != nil {
		r.writePlain("%s\n", r.translator.Lookup("exportError"))
		return err
	}

	r.logger.Info("export complete", "path", path)
	r.writePlain("✓ %s\n", r.translator.Lookup("exportSuccess"))
	r.writePlain("Customers: %d, Machines: %d, Workouts: %d\n", len(doc.Customers), len(doc.Machines), len(doc.Workouts))
	r.writePlain("Saved to: %s\n", path)
	return nil
}

// BackupImport replaces all data with the contents of a backup JSON file.
//
// The file is validated in full before anything is deleted.
func (r *Runner) BackupImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: backup file path is required", shared.ErrMissingArgument)
	}

	if !cmd.Bool("yes") {
		r.writePlain("%s\n", r.translator.Lookup("confirmClearData"))
		r.writePlain("Re-run with --yes to proceed.\n")
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read backup file: %v", shared.ErrIO, err)
	}

	r.logger.Info("starting import", "path", path)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.ValidateDocument:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.ClearData:
				if update.Step == 1 {
					r.writePlain("🗑  %s\n", update.Message)
				}
			default:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Import(progressCh, raw)
	close(progressCh)
	if err != nil {
		r.writePlain("%s\n", r.translator.Lookup("importError"))
		return err
	}

	r.logger.Info("import complete", "customers", result.Customers, "machines", result.Machines, "workouts", result.Workouts)

	r.writePlainHeader(r.translator.Lookup("importSuccess"))
	r.writePlain("Customers: %d\n", result.Customers)
	r.writePlain("Machines: %d\n", result.Machines)
	r.writePlain("Workouts: %d\n", result.Workouts)
	if result.SkippedWorkouts > 0 {
		r.writePlain("Skipped workouts without valid series: %d\n", result.SkippedWorkouts)
	}
	return nil
}

// BackupClear permanently deletes all data.
func (r *Runner) BackupClear(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("yes") {
		r.writePlain("%s\n", r.translator.Lookup("confirmClearData"))
		r.writePlain("Re-run with --yes to proceed.\n")
		return nil
	}

	r.logger.Info("clearing all data")

	if err := r.engine.ClearAll(nil); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	r.writePlain("✓ %s\n", r.translator.Lookup("clearAllData"))
	return nil
}
