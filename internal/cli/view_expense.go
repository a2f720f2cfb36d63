package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evelynko/carnet/internal/cli/formatter"
	"github.com/evelynko/carnet/internal/domain"
	"github.com/evelynko/carnet/internal/trip"
)

// expenseFocus selects which half of the expense screen owns the keyboard.
type expenseFocus int

const (
	focusKeypad expenseFocus = iota
	focusNote
	focusLedger
)

// ledgerRow is one selectable line of the grouped ledger: a date header
// (expense nil) or an entry of an expanded group.
type ledgerRow struct {
	date    string
	expense *domain.Expense
}

// expenseView is the calculator-entry screen plus the grouped ledger.
type expenseView struct {
	state  *SharedState
	focus  expenseFocus
	note   textinput.Model
	cursor int
}

func newExpenseView(state *SharedState) expenseView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = domain.DefaultNote
	ti.CharLimit = 60
	return expenseView{state: state, note: ti}
}

func (v expenseView) typing() bool {
	return v.focus == focusNote
}

// rows flattens the grouped ledger for cursor navigation, honoring each
// group's expansion state.
func (v expenseView) rows() []ledgerRow {
	e := v.state.Engine
	var rows []ledgerRow
	for _, g := range e.GroupedExpenses() {
		rows = append(rows, ledgerRow{date: g.Date})
		if e.UI().IsExpanded(g.Date) {
			for i := range g.Items {
				exp := g.Items[i]
				rows = append(rows, ledgerRow{date: g.Date, expense: &exp})
			}
		}
	}
	return rows
}

func (v expenseView) update(msg tea.Msg) (expenseView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.focus == focusNote {
			var cmd tea.Cmd
			v.note, cmd = v.note.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	switch v.focus {
	case focusNote:
		return v.updateNote(keyMsg)
	case focusLedger:
		return v.updateLedger(keyMsg)
	default:
		return v.updateKeypad(keyMsg)
	}
}

func (v expenseView) updateKeypad(msg tea.KeyMsg) (expenseView, tea.Cmd) {
	e := v.state.Engine
	ui := e.UI()

	switch key := msg.String(); key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		ui.CalcPress(key)
	case "backspace":
		ui.CalcBackspace()
	case "esc":
		ui.CalcReset()
		v.note.Reset()
	case "left":
		_ = e.SetExpenseDay(ui.ExpenseDay() - 1)
	case "right":
		_ = e.SetExpenseDay(ui.ExpenseDay() + 1)
	case "m":
		v.focus = focusNote
		return v, v.note.Focus()
	case "l":
		v.focus = focusLedger
		v.cursor = 0
	case "enter":
		amount, err := ui.CalcAmount()
		if err != nil {
			return v, nil
		}
		if _, err := e.AddExpense(amount, v.note.Value(), ui.ExpenseDay()); err == nil {
			ui.CalcReset()
			v.note.Reset()
		}
	}
	return v, nil
}

func (v expenseView) updateNote(msg tea.KeyMsg) (expenseView, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		v.focus = focusKeypad
		v.note.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.note, cmd = v.note.Update(msg)
	return v, cmd
}

func (v expenseView) updateLedger(msg tea.KeyMsg) (expenseView, tea.Cmd) {
	e := v.state.Engine
	rows := v.rows()

	switch msg.String() {
	case "esc", "l":
		v.focus = focusKeypad
	case "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case "enter", " ":
		if v.cursor < len(rows) && rows[v.cursor].expense == nil {
			e.UI().ToggleDate(rows[v.cursor].date)
		}
	case "d":
		if v.cursor < len(rows) && rows[v.cursor].expense != nil {
			e.RemoveExpense(rows[v.cursor].expense.ID)
			if v.cursor > 0 {
				v.cursor--
			}
		}
	}
	return v, nil
}

func (v expenseView) view() string {
	e := v.state.Engine
	ui := e.UI()
	var b strings.Builder

	// Entry pane.
	b.WriteString(formatter.StyleHeader.Render("€"+ui.CalcValue()) + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("≈ NT$ %d", convertedCalc(ui))) + "\n")

	if day, err := e.Day(ui.ExpenseDay()); err == nil {
		b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("for"),
			formatter.StyleBlue.Render(fmt.Sprintf("Day %d · %s", day.Day, day.Date))))
	}
	noteLine := v.note.View()
	if v.focus == focusNote {
		noteLine = formatter.StyleHeader.Render("note> ") + noteLine
	} else {
		noteLine = formatter.Dim("note: ") + noteLine
	}
	b.WriteString(noteLine + "\n\n")

	// Ledger pane.
	b.WriteString(formatter.StyleBold.Render("Total ") + formatter.Money(e.Total()) + "\n")
	rows := v.rows()
	if len(rows) == 0 {
		b.WriteString(formatter.Dim("no expenses recorded") + "\n")
		return b.String()
	}

	groupByDate := make(map[string]domain.ExpenseGroup)
	for _, g := range e.GroupedExpenses() {
		groupByDate[g.Date] = g
	}

	for i, row := range rows {
		marker := "  "
		if v.focus == focusLedger && i == v.cursor {
			marker = formatter.StyleHeader.Render("→ ")
		}
		if row.expense == nil {
			g := groupByDate[row.date]
			b.WriteString(marker + formatter.GroupHeader(g, e.UI().IsExpanded(g.Date)) + "\n")
		} else {
			b.WriteString(marker + formatter.ExpenseLine(*row.expense) + "\n")
		}
	}

	return b.String()
}

func convertedCalc(ui *trip.Controller) int {
	amount, err := ui.CalcAmount()
	if err != nil {
		return 0
	}
	return domain.Convert(amount, domain.EURToTWD)
}
