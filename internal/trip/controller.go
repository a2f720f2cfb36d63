package trip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evelynko/carnet/internal/domain"
)

// MaxCalcLen caps the pending calculator input for expense entry.
const MaxCalcLen = 7

// Controller holds the selection and edit-mode state that mediates which
// mutations the view may issue: the active day, per-date expansion of
// expense groups, the two independent edit-mode flags, the default target
// day for a new expense, and the pending calculator input.
//
// The itinerary and essentials edit modes are per-screen toggles; the
// controller does not force one off when the other turns on, because the
// view never shows both screens at once.
type Controller struct {
	activeDay  int
	expenseDay int
	expanded   map[string]bool

	editingPlan       bool
	editingEssentials bool

	calc string

	// advisorExpanded tracks the advisory panel's display state. It is
	// recorded verbatim and never interpreted as trip state.
	advisorExpanded bool
}

// NewController returns a controller with day 0 active, all date groups
// collapsed, both edit modes off, and a zeroed calculator.
func NewController() *Controller {
	return &Controller{
		expanded: make(map[string]bool),
		calc:     "0",
	}
}

// ActiveDay returns the currently selected day index.
func (c *Controller) ActiveDay() int { return c.activeDay }

func (c *Controller) setActiveDay(index int) { c.activeDay = index }

// ExpenseDay returns the day index pre-selected for a new expense.
func (c *Controller) ExpenseDay() int { return c.expenseDay }

func (c *Controller) setExpenseDay(index int) { c.expenseDay = index }

// IsExpanded reports whether the given date's expense group is expanded.
// Dates default to collapsed.
func (c *Controller) IsExpanded(date string) bool { return c.expanded[date] }

// ToggleDate flips the expansion state of a date group. A second toggle
// restores the prior state.
func (c *Controller) ToggleDate(date string) { c.expanded[date] = !c.expanded[date] }

// ExpandDate marks a date group expanded, as adding an expense does for
// its target date.
func (c *Controller) ExpandDate(date string) { c.expanded[date] = true }

// EditingPlan reports whether itinerary editing is enabled.
func (c *Controller) EditingPlan() bool { return c.editingPlan }

// SetEditingPlan enables or disables itinerary editing.
func (c *Controller) SetEditingPlan(on bool) { c.editingPlan = on }

// EditingEssentials reports whether checklist editing is enabled.
func (c *Controller) EditingEssentials() bool { return c.editingEssentials }

// SetEditingEssentials enables or disables checklist editing.
func (c *Controller) SetEditingEssentials(on bool) { c.editingEssentials = on }

// AdvisorExpanded reports the advisory panel's display state.
func (c *Controller) AdvisorExpanded() bool { return c.advisorExpanded }

// SetAdvisorExpanded records the advisory panel's display state.
func (c *Controller) SetAdvisorExpanded(on bool) { c.advisorExpanded = on }

// ── calculator input ─────────────────────────────────────────────────────────

// CalcValue returns the pending calculator input, "0" when idle.
func (c *Controller) CalcValue() string { return c.calc }

// CalcPress feeds one keypad key ("0"-"9" or ".") into the pending input.
// A second decimal point and anything past MaxCalcLen are ignored.
func (c *Controller) CalcPress(key string) {
	switch {
	case key == ".":
		if !strings.Contains(c.calc, ".") && len(c.calc) < MaxCalcLen {
			c.calc += key
		}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if c.calc == "0" {
			c.calc = key
		} else if len(c.calc) < MaxCalcLen {
			c.calc += key
		}
	}
}

// CalcBackspace removes the last character, bottoming out at "0".
func (c *Controller) CalcBackspace() {
	if len(c.calc) <= 1 {
		c.calc = "0"
		return
	}
	c.calc = c.calc[:len(c.calc)-1]
}

// CalcReset zeroes the pending input, as cancelling the entry sheet does.
func (c *Controller) CalcReset() { c.calc = "0" }

// CalcAmount parses the pending input as an expense amount.
func (c *Controller) CalcAmount() (float64, error) {
	v, err := strconv.ParseFloat(c.calc, 64)
	if err != nil {
		return 0, fmt.Errorf("calculator input %q: %w", c.calc, domain.ErrInvalidAmount)
	}
	return v, nil
}
