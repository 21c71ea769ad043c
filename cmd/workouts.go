package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/gymtrack/internal/formatter"
	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseSeries parses a comma-separated series list of the form "3x10@50,2x8@60"
// where each entry is sets x reps @ weight.
func parseSeries(input string) ([]models.Series, error) {
	var series []models.Series
	for _, entry := range strings.Split(input, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		counts, weight, found := strings.Cut(entry, "@")
		if !found {
			return nil, fmt.Errorf("%w: series entry %q must be sets x reps @ weight", shared.ErrInvalidArgument, entry)
		}
		setsRaw, repsRaw, found := strings.Cut(counts, "x")
		if !found {
			return nil, fmt.Errorf("%w: series entry %q must be sets x reps @ weight", shared.ErrInvalidArgument, entry)
		}

		sets, err := strconv.Atoi(strings.TrimSpace(setsRaw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid sets in %q", shared.ErrInvalidArgument, entry)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(repsRaw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid reps in %q", shared.ErrInvalidArgument, entry)
		}
		kg, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid weight in %q", shared.ErrInvalidArgument, entry)
		}

		series = append(series, models.Series{Sets: sets, Reps: reps, Weight: kg})
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("%w: at least one series entry is required", shared.ErrInvalidArgument)
	}
	return series, nil
}

// WorkoutAdd records a workout session.
func (r *Runner) WorkoutAdd(ctx context.Context, cmd *cli.Command) error {
	series, err := parseSeries(cmd.String("series"))
	if err != nil {
		return err
	}

	workout := models.Workout{
		CustomerID: cmd.String("customer"),
		MachineID:  cmd.String("machine"),
		Series:     series,
		Notes:      cmd.String("notes"),
	}

	if dateRaw := cmd.String("date"); dateRaw != "" {
		date, err := time.Parse("2006-01-02", dateRaw)
		if err != nil {
			return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", shared.ErrInvalidArgument, dateRaw)
		}
		workout.Date = date
	}

	if err := r.workouts.Create(&workout); err != nil {
		return fmt.Errorf("failed to add workout: %w", err)
	}

	r.logger.Info("workout added", "id", workout.ID, "customer", workout.CustomerID, "machine", workout.MachineID)
	r.writePlain("✓ Recorded workout %s: %s\n", workout.ID, formatter.FormatSeries(workout.Series))
	return nil
}

// WorkoutHistory shows a customer's workout history, newest first.
func (r *Runner) WorkoutHistory(ctx context.Context, cmd *cli.Command) error {
	history, err := r.workouts.GetByCustomer(cmd.String("customer"), cmd.String("machine"))
	if err != nil {
		return fmt.Errorf("failed to load workout history: %w", err)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(history, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		output, err := formatter.HistoryToCSV(history)
		if err != nil {
			return err
		}
		return r.writePlain("%s", output)
	default:
		if len(history) == 0 {
			r.writePlain("%s\n", r.translator.Lookup("noWorkouts"))
			return nil
		}
		return r.writePlain("%s", formatter.HistoryToText(history))
	}
}

// WorkoutUpdate applies a partial update to a workout.
func (r *Runner) WorkoutUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: workout id is required", shared.ErrMissingArgument)
	}

	patch := models.WorkoutPatch{}
	if cmd.IsSet("series") {
		series, err := parseSeries(cmd.String("series"))
		if err != nil {
			return err
		}
		patch.Series = series
	}
	if cmd.IsSet("date") {
		date, err := time.Parse("2006-01-02", cmd.String("date"))
		if err != nil {
			return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", shared.ErrInvalidArgument, cmd.String("date"))
		}
		patch.Date = &date
	}
	if cmd.IsSet("notes") {
		notes := cmd.String("notes")
		patch.Notes = &notes
	}

	workout, err := r.workouts.Update(id, patch)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}

	r.logger.Info("workout updated", "id", workout.ID)
	r.writePlain("✓ Updated workout %s\n", workout.ID)
	return nil
}

// WorkoutDelete removes a workout session.
func (r *Runner) WorkoutDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: workout id is required", shared.ErrMissingArgument)
	}

	if err := r.workouts.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	r.logger.Info("workout deleted", "id", id)
	r.writePlain("✓ Deleted workout %s\n", id)
	return nil
}
