package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evelynko/carnet/internal/cli/formatter"
)

// tabID identifies one of the four main screens.
type tabID int

const (
	tabHome tabID = iota
	tabPlan
	tabExpense
	tabEssentials
)

var tabLabels = [...]string{"Home", "Plan", "Expense", "Essentials"}

// appModel is the root bubbletea Model for the TUI. It manages the four
// tab views and the advisor chat overlay.
type appModel struct {
	state *SharedState
	tab   tabID

	home       homeView
	plan       planView
	expense    expenseView
	essentials essentialsView

	chat     chatView
	quitting bool
}

func newAppModel(state *SharedState) appModel {
	return appModel{
		state:      state,
		home:       newHomeView(state),
		plan:       newPlanView(state),
		expense:    newExpenseView(state),
		essentials: newEssentialsView(state),
		chat:       newChatView(state),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// typing reports whether the active view owns the keyboard (text entry or
// an open form), which suppresses global single-key shortcuts.
func (m *appModel) typing() bool {
	if m.state.Engine.UI().AdvisorExpanded() {
		return true
	}
	switch m.tab {
	case tabPlan:
		return m.plan.typing()
	case tabExpense:
		return m.expense.typing()
	case tabEssentials:
		return m.essentials.typing()
	}
	return false
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case advisorAnswerMsg:
		// Answers route to the chat transcript even when the panel is
		// closed or further mutations happened since dispatch.
		m.chat = m.chat.absorb(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// The chat overlay owns all other keys while expanded.
	if m.state.Engine.UI().AdvisorExpanded() {
		var cmd tea.Cmd
		m.chat, cmd = m.chat.update(msg)
		return m, cmd
	}

	if !m.typing() {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.tab = (m.tab + 1) % 4
			return m, nil
		case "shift+tab":
			m.tab = (m.tab + 3) % 4
			return m, nil
		case "?":
			m.state.Engine.UI().SetAdvisorExpanded(true)
			return m, m.chat.focus()
		}
	}

	return m.forward(msg)
}

// forward routes a message to the active tab view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case tabHome:
		m.home, cmd = m.home.update(msg)
	case tabPlan:
		m.plan, cmd = m.plan.update(msg)
	case tabExpense:
		m.expense, cmd = m.expense.update(msg)
	case tabEssentials:
		m.essentials, cmd = m.essentials.update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	if m.state.Engine.UI().AdvisorExpanded() {
		b.WriteString(m.chat.view())
	} else {
		switch m.tab {
		case tabHome:
			b.WriteString(m.home.view())
		case tabPlan:
			b.WriteString(m.plan.view())
		case tabExpense:
			b.WriteString(m.expense.view())
		case tabEssentials:
			b.WriteString(m.essentials.view())
		}
		b.WriteString("\n\n")
		b.WriteString(m.renderHints())
	}

	return b.String()
}

func (m appModel) renderTabBar() string {
	parts := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if tabID(i) == m.tab {
			parts[i] = formatter.StyleHeader.Render("[" + label + "]")
		} else {
			parts[i] = formatter.Dim(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m appModel) renderHints() string {
	common := "tab switch · ? advisor · q quit"
	switch m.tab {
	case tabPlan:
		return formatter.Dim("←/→ day · ↑/↓ spot · e edit · " + common)
	case tabExpense:
		return formatter.Dim("0-9/. amount · enter add · l ledger · " + common)
	case tabEssentials:
		return formatter.Dim("↑/↓ move · space toggle · e edit · " + common)
	default:
		return formatter.Dim(common)
	}
}
