// Package tui renders the expense tracker in a terminal. All state lives in
// ui.Store; the model only tracks cursor, form input and the status line.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/ui"
)

const requestTimeout = 10 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeForm
)

const (
	fieldName = iota
	fieldAmount
)

type loadedMsg struct{ err error }

type addedMsg struct {
	e   models.Expense
	err error
}

type deletedMsg struct {
	id  int64
	err error
}

type status struct {
	title  string
	detail string
	isErr  bool
}

type Model struct {
	store *ui.Store

	mode    mode
	cursor  int
	fields  [2]string
	focus   int
	busy    bool // a request is in flight
	loading bool
	status  status
}

func New(store *ui.Store) Model {
	return Model{store: store, loading: true}
}

func (m Model) Init() tea.Cmd { return m.refresh() }

// ----------------- Commands -----------------

func (m Model) refresh() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return loadedMsg{err: store.Refresh(ctx)}
	}
}

func (m Model) add(name, amount string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		req, err := ui.ParseInput(name, amount)
		if err != nil {
			return addedMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		e, err := store.Add(ctx, req)
		return addedMsg{e: e, err: err}
	}
}

func (m Model) remove(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return deletedMsg{id: id, err: store.Remove(ctx, id)}
	}
}

// ----------------- Update -----------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.busy = false
		if msg.err != nil {
			m.status = status{title: "Error", detail: "Failed to fetch expenses: " + msg.err.Error(), isErr: true}
		}
		m.clampCursor()
		return m, nil

	case addedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = status{title: "Error", detail: "Failed to add expense: " + msg.err.Error(), isErr: true}
			return m, nil
		}
		m.mode = modeBrowse
		m.fields = [2]string{}
		m.focus = fieldName
		m.cursor = 0
		m.status = status{
			title:  "Expense Added",
			detail: fmt.Sprintf("Added %s for %s", msg.e.ItemName, ui.FormatMoney(msg.e.Amount)),
		}
		return m, nil

	case deletedMsg:
		m.busy = false
		m.clampCursor()
		if msg.err != nil {
			m.status = status{title: "Error", detail: "Failed to delete expense: " + msg.err.Error(), isErr: true}
			return m, nil
		}
		m.status = status{title: "Expense Deleted", detail: "Expense has been removed"}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.store.Expenses()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeForm
		m.focus = fieldName
	case "r":
		if !m.busy {
			m.busy = true
			return m, m.refresh()
		}
	case "d", "delete":
		if !m.busy && m.cursor < len(list) {
			m.busy = true
			return m, m.remove(list[m.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focus = 1 - m.focus
		return m, nil
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.add(m.fields[fieldName], m.fields[fieldAmount])
	case tea.KeyBackspace:
		if f := []rune(m.fields[m.focus]); len(f) > 0 {
			m.fields[m.focus] = string(f[:len(f)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.fields[m.focus] += " "
		return m, nil
	case tea.KeyRunes:
		m.fields[m.focus] += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m *Model) clampCursor() {
	n := len(m.store.Expenses())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ----------------- View -----------------

func (m Model) View() string {
	list := m.store.Expenses()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Expense Tracker") + "\n")
	b.WriteString(subtitleStyle.Render("Track your daily expenses with ease") + "\n")
	b.WriteString(renderStats(ui.ComputeStats(list)) + "\n")
	b.WriteString(m.renderForm() + "\n")
	b.WriteString(m.renderList(list) + "\n")
	if m.status.title != "" {
		style := okStyle
		if m.status.isErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status.title) + " " + m.status.detail + "\n")
	}
	b.WriteString(mutedStyle.Render(m.help()))
	return b.String()
}

func renderStats(st ui.Stats) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		totalCard.Render("Total Expenses\n"+ui.FormatMoney(st.Total)),
		countCard.Render("Total Items\n"+strconv.Itoa(st.Count)),
		averageCard.Render("Average\n"+ui.FormatMoney(st.Average)),
	)
}

func (m Model) renderForm() string {
	if m.mode != modeForm {
		return mutedStyle.Render("Press a to add a new expense")
	}
	labels := [2]string{"Item Name", "Amount ($)"}
	placeholders := [2]string{"e.g., Groceries, Gas, Coffee", "0.00"}
	var rows []string
	rows = append(rows, "Add New Expense")
	for i := range labels {
		value := m.fields[i]
		if value == "" {
			value = mutedStyle.Render(placeholders[i])
		}
		label := labels[i] + ": "
		if i == m.focus {
			label = focusedStyle.Render("> " + label)
			value += "█"
		} else {
			label = "  " + label
		}
		rows = append(rows, label+value)
	}
	if m.busy {
		rows = append(rows, mutedStyle.Render("Adding..."))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderList(list []models.Expense) string {
	if m.loading {
		return panelStyle.Render(mutedStyle.Render("Loading expenses..."))
	}
	if len(list) == 0 {
		return panelStyle.Render("No expenses yet\n" + mutedStyle.Render("Add your first expense to get started!"))
	}
	rows := []string{"Recent Expenses"}
	for i, e := range list {
		line := fmt.Sprintf("%-32s %-14s %s", truncate(e.ItemName, 32), ui.FormatDate(e.CreatedAt), amountStyle.Render(ui.FormatMoney(e.Amount)))
		if i == m.cursor && m.mode == modeBrowse {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) help() string {
	if m.mode == modeForm {
		return "tab switch field • enter save • esc cancel"
	}
	return "a add • d delete • r refresh • ↑/↓ move • q quit"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
