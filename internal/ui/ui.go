package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/gymtrack/internal/i18n"
	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/repositories"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CustomerListView ViewState = iota
	WorkoutListView
	ConfirmDeleteView
)

// Model represents the TUI application state.
type Model struct {
	view             ViewState
	customers        *repositories.CustomerRepository
	workouts         *repositories.WorkoutRepository
	translator       *i18n.Translator
	width            int
	height           int
	customerList     list.Model
	workoutList      list.Model
	selectedCustomer *models.Customer
	selectedWorkout  *models.WorkoutWithDetails
	err              error
	help             help.Model
	keys             keyMap
}

type customersLoadedMsg struct {
	customers []models.Customer
	err       error
}

type workoutsLoadedMsg struct {
	history []models.WorkoutWithDetails
	err     error
}

type workoutDeletedMsg struct {
	err error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(customers *repositories.CustomerRepository, workouts *repositories.WorkoutRepository, translator *i18n.Translator) *Model {
	return &Model{
		view:       CustomerListView,
		customers:  customers,
		workouts:   workouts,
		translator: translator,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by loading the customer list.
func (m *Model) Init() tea.Cmd {
	return m.loadCustomers()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.customerList.Width() == 0 {
			m.customerList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.workoutList.Width() == 0 {
			m.workoutList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CustomerListView:
			return m.handleCustomerListKeys(msg)
		case WorkoutListView:
			return m.handleWorkoutListKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}

	case customersLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.customers))
		for i, customer := range msg.customers {
			items[i] = customerItem{customer: customer}
		}
		m.customerList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.customerList.Title = m.translator.Lookup("customers")
		m.customerList.SetSize(m.width-4, m.height-8)
		return m, nil

	case workoutsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = CustomerListView
			return m, nil
		}
		items := make([]list.Item, len(msg.history))
		for i, entry := range msg.history {
			items[i] = workoutItem{workout: entry}
		}
		m.workoutList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.workoutList.Title = fmt.Sprintf("%s — %s", m.translator.Lookup("workoutHistory"), m.selectedCustomer.Name)
		m.workoutList.SetSize(m.width-4, m.height-8)
		m.view = WorkoutListView
		return m, nil

	case workoutDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		m.selectedWorkout = nil
		return m, m.loadWorkouts()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("%s: %v\n\nPress q to quit", m.translator.Lookup("error"), m.err))
	}

	switch m.view {
	case CustomerListView:
		return m.renderCustomerList()
	case WorkoutListView:
		return m.renderWorkoutList()
	case ConfirmDeleteView:
		return m.renderConfirm()
	default:
		return ""
	}
}

func (m *Model) handleCustomerListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.customerList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(customerItem); ok {
				customer := item.customer
				m.selectedCustomer = &customer
				return m, m.loadWorkouts()
			}
		}
	}

	var cmd tea.Cmd
	m.customerList, cmd = m.customerList.Update(msg)
	return m, cmd
}

func (m *Model) handleWorkoutListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = CustomerListView
		m.selectedCustomer = nil
		return m, nil
	case "d":
		selected := m.workoutList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(workoutItem); ok {
				workout := item.workout
				m.selectedWorkout = &workout
				m.view = ConfirmDeleteView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.workoutList, cmd = m.workoutList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.selectedWorkout = nil
		m.view = WorkoutListView
		return m, nil
	case "y":
		m.view = WorkoutListView
		return m, m.deleteWorkout()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CustomerListView:
		m.customerList, cmd = m.customerList.Update(msg)
	case WorkoutListView:
		m.workoutList, cmd = m.workoutList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadCustomers() tea.Cmd {
	return func() tea.Msg {
		customers, err := m.customers.List()
		return customersLoadedMsg{customers: customers, err: err}
	}
}

func (m *Model) loadWorkouts() tea.Cmd {
	customerID := m.selectedCustomer.ID
	return func() tea.Msg {
		history, err := m.workouts.GetByCustomer(customerID, "")
		return workoutsLoadedMsg{history: history, err: err}
	}
}

func (m *Model) deleteWorkout() tea.Cmd {
	workoutID := m.selectedWorkout.ID
	return func() tea.Msg {
		return workoutDeletedMsg{err: m.workouts.Delete(workoutID)}
	}
}

func (m *Model) renderCustomerList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.customerList.View(), helpView)
}

func (m *Model) renderWorkoutList() string {
	helpKeys := []key.Binding{m.keys.remove, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.workoutList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("%s?", m.translator.Lookup("delete")))
	info := fmt.Sprintf("\n%s: %s\n%s: %s\n",
		m.translator.Lookup("date"), m.selectedWorkout.Date.Format("2006-01-02"),
		m.translator.Lookup("machine"), m.selectedWorkout.MachineName,
	)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}
