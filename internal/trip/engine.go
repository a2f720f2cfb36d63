package trip

import (
	"fmt"

	"github.com/evelynko/carnet/internal/domain"
)

// Engine is the in-memory trip state: the itinerary, the expense ledger,
// the essentials checklist, and the selection/edit-mode controller. All
// operations are synchronous and atomic from the caller's perspective, and
// no reported error leaves the engine unusable.
type Engine struct {
	itinerary  *ItineraryStore
	ledger     *Ledger
	essentials *EssentialsStore
	ui         *Controller
}

// NewEngine validates the seed snapshot and wires the stores to a shared
// identifier generator.
func NewEngine(days []domain.DayPlan, essentials []domain.EssentialItem, ids IDGenerator) (*Engine, error) {
	itinerary, err := NewItineraryStore(days, ids)
	if err != nil {
		return nil, fmt.Errorf("seed itinerary: %w", err)
	}
	return &Engine{
		itinerary:  itinerary,
		ledger:     NewLedger(ids),
		essentials: NewEssentialsStore(essentials, ids),
		ui:         NewController(),
	}, nil
}

// UI exposes the selection/edit-mode controller.
func (e *Engine) UI() *Controller { return e.ui }

// ── itinerary ────────────────────────────────────────────────────────────────

// Days returns the full itinerary.
func (e *Engine) Days() []domain.DayPlan { return e.itinerary.Days() }

// Day returns the day plan at the given index.
func (e *Engine) Day(index int) (*domain.DayPlan, error) { return e.itinerary.Day(index) }

// ActiveDay returns the day plan currently selected in the controller.
func (e *Engine) ActiveDay() *domain.DayPlan {
	d, _ := e.itinerary.Day(e.ui.ActiveDay())
	return d
}

// SelectDay sets the active day index after a bounds check. Edit mode is
// deliberately left alone; the view decides when editing ends.
func (e *Engine) SelectDay(index int) error {
	if _, err := e.itinerary.Day(index); err != nil {
		return err
	}
	e.ui.setActiveDay(index)
	return nil
}

// AddSpot appends a placeholder spot to the given day.
func (e *Engine) AddSpot(dayIndex int) (*domain.Spot, error) {
	return e.itinerary.AddSpot(dayIndex)
}

// RemoveSpot deletes a spot from the given day; absent ids are a no-op.
func (e *Engine) RemoveSpot(dayIndex int, spotID string) error {
	return e.itinerary.RemoveSpot(dayIndex, spotID)
}

// UpdateSpotField sets one editable spot attribute.
func (e *Engine) UpdateSpotField(dayIndex int, spotID, field, value string) error {
	return e.itinerary.UpdateSpotField(dayIndex, spotID, field, value)
}

// ── expenses ─────────────────────────────────────────────────────────────────

// AddExpense records an expense against the day at dayIndex. The day's
// date is resolved now and stored on the expense; later itinerary changes
// cannot move it. The new expense's date group is marked expanded so the
// entry is visible immediately.
func (e *Engine) AddExpense(amount float64, note string, dayIndex int) (*domain.Expense, error) {
	day, err := e.itinerary.Day(dayIndex)
	if err != nil {
		return nil, err
	}
	exp, err := e.ledger.Add(amount, note, day.Date)
	if err != nil {
		return nil, err
	}
	e.ui.ExpandDate(day.Date)
	return exp, nil
}

// RemoveExpense deletes a ledger entry; absent ids are a no-op.
func (e *Engine) RemoveExpense(id string) { e.ledger.Remove(id) }

// Expenses returns the ledger, most recent first.
func (e *Engine) Expenses() []domain.Expense { return e.ledger.Expenses() }

// Total returns the sum of all expense amounts in EUR.
func (e *Engine) Total() float64 { return e.ledger.Total() }

// GroupedExpenses returns per-date aggregates, most recent date first.
func (e *Engine) GroupedExpenses() []domain.ExpenseGroup {
	return e.ledger.GroupByDate(e.itinerary.DayNumberByDate)
}

// SetExpenseDay pre-selects the target day for a new expense.
func (e *Engine) SetExpenseDay(index int) error {
	if _, err := e.itinerary.Day(index); err != nil {
		return err
	}
	e.ui.setExpenseDay(index)
	return nil
}

// ── essentials ───────────────────────────────────────────────────────────────

// Essentials returns the checklist in insertion order.
func (e *Engine) Essentials() []domain.EssentialItem { return e.essentials.Items() }

// ToggleEssential flips an item's checked flag; absent ids are a no-op.
func (e *Engine) ToggleEssential(id string) { e.essentials.Toggle(id) }

// AddEssential appends an unchecked item; blank text creates nothing.
func (e *Engine) AddEssential(text string) *domain.EssentialItem { return e.essentials.Add(text) }

// RemoveEssential deletes an item; absent ids are a no-op.
func (e *Engine) RemoveEssential(id string) { e.essentials.Remove(id) }

// UpdateEssentialText replaces an item's text; absent ids are a no-op.
func (e *Engine) UpdateEssentialText(id, text string) { e.essentials.UpdateText(id, text) }

// Progress reports checklist completion as a whole-number percentage.
func (e *Engine) Progress() int { return e.essentials.Progress() }
