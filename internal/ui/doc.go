// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing training data:
//  1. [CustomerListView] : Browse customers, active entries first
//  2. [WorkoutListView] : Workout history for the selected customer, newest first
//  3. [ConfirmDeleteView] : Confirm deletion of a workout
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Repository calls run as commands so storage access never blocks the render loop.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
