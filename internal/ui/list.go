package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/gymtrack/internal/formatter"
	"github.com/desertthunder/gymtrack/internal/models"
)

var (
	_ list.Item = customerItem{}
	_ list.Item = workoutItem{}
)

// customerItem wraps [models.Customer] to implement [list.Item].
type customerItem struct {
	customer models.Customer
}

func (i customerItem) FilterValue() string { return i.customer.Name }
func (i customerItem) Title() string       { return i.customer.Name }
func (i customerItem) Description() string {
	desc := i.customer.Email
	if desc == "" {
		desc = i.customer.Phone
	}
	if i.customer.Deactivated {
		if desc != "" {
			desc = fmt.Sprintf("%s • deactivated", desc)
		} else {
			desc = "deactivated"
		}
	}
	return desc
}

// workoutItem wraps [models.WorkoutWithDetails] to implement [list.Item].
type workoutItem struct {
	workout models.WorkoutWithDetails
}

func (i workoutItem) FilterValue() string { return i.workout.MachineName }
func (i workoutItem) Title() string {
	return fmt.Sprintf("%s  %s", i.workout.Date.Format("2006-01-02"), i.workout.MachineName)
}
func (i workoutItem) Description() string {
	desc := formatter.FormatSeries(i.workout.Series)
	if i.workout.Notes != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.workout.Notes)
	}
	return desc
}
