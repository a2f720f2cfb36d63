package trip

import (
	"fmt"
	"testing"

	"github.com/evelynko/carnet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqIDs is a deterministic IDGenerator for tests.
type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// twoDays is a minimal seed itinerary for focused tests.
func twoDays() []domain.DayPlan {
	return []domain.DayPlan{
		{ID: "d1", Day: 1, Date: "5/22", Title: "Arrival",
			Spots: []domain.Spot{{ID: "s1", Name: "CDG"}}},
		{ID: "d2", Day: 2, Date: "5/23", Title: "Old town"},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(twoDays(), SeedEssentials(), &seqIDs{})
	require.NoError(t, err)
	return e
}

func TestNewEngine_RejectsBadSeed(t *testing.T) {
	cases := []struct {
		name string
		days []domain.DayPlan
	}{
		{"day number gap", []domain.DayPlan{
			{ID: "d1", Day: 1, Date: "5/22"},
			{ID: "d2", Day: 3, Date: "5/23"},
		}},
		{"duplicate date", []domain.DayPlan{
			{ID: "d1", Day: 1, Date: "5/22"},
			{ID: "d2", Day: 2, Date: "5/22"},
		}},
		{"empty date", []domain.DayPlan{
			{ID: "d1", Day: 1, Date: ""},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEngine(tc.days, nil, &seqIDs{})
			assert.Error(t, err)
		})
	}
}

func TestNewEngine_AcceptsFullSeed(t *testing.T) {
	e, err := NewEngine(SeedItinerary(), SeedEssentials(), NewUUIDGenerator())
	require.NoError(t, err)
	assert.Len(t, e.Days(), 13)
	assert.Len(t, e.Essentials(), 6)
	assert.Equal(t, 0, e.Progress())
	assert.Equal(t, 0, e.UI().ActiveDay())
}

func TestSelectDay(t *testing.T) {
	e := testEngine(t)

	require.NoError(t, e.SelectDay(1))
	assert.Equal(t, 1, e.UI().ActiveDay())
	assert.Equal(t, "5/23", e.ActiveDay().Date)

	err := e.SelectDay(2)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	err = e.SelectDay(-1)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.Equal(t, 1, e.UI().ActiveDay(), "failed select leaves selection alone")
}

func TestSelectDay_DoesNotResetEditMode(t *testing.T) {
	e := testEngine(t)
	e.UI().SetEditingPlan(true)

	require.NoError(t, e.SelectDay(1))
	assert.True(t, e.UI().EditingPlan())
}

func TestAddExpense_ResolvesDateAndExpandsGroup(t *testing.T) {
	e := testEngine(t)

	exp, err := e.AddExpense(12.5, "lunch", 0)
	require.NoError(t, err)
	assert.Equal(t, "5/22", exp.Date)
	assert.Equal(t, domain.DefaultCategory, exp.Category)
	assert.True(t, e.UI().IsExpanded("5/22"), "new expense expands its date group")
	assert.False(t, e.UI().IsExpanded("5/23"))
}

func TestAddExpense_InvalidDayIndex(t *testing.T) {
	e := testEngine(t)

	_, err := e.AddExpense(5, "x", 7)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.Empty(t, e.Expenses())
}

// Scenario from the ledger contract: two expenses on day 0 (date "5/22"),
// the second with a blank note.
func TestLedgerScenario_TwoExpensesOneDay(t *testing.T) {
	e := testEngine(t)

	first, err := e.AddExpense(12.5, "lunch", 0)
	require.NoError(t, err)
	second, err := e.AddExpense(7, "", 0)
	require.NoError(t, err)

	require.Len(t, e.Expenses(), 2)
	assert.Equal(t, domain.DefaultNote, second.Note)
	assert.InDelta(t, 19.5, e.Total(), 1e-9)

	groups := e.GroupedExpenses()
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "5/22", g.Date)
	assert.Equal(t, 1, g.DayNumber)
	assert.InDelta(t, 19.5, g.Total, 1e-9)
	require.Len(t, g.Items, 2)
	assert.Equal(t, second.ID, g.Items[0].ID, "most recent first")
	assert.Equal(t, first.ID, g.Items[1].ID)
}

func TestUpdateSpotField_MissingSpot(t *testing.T) {
	e := testEngine(t)

	err := e.UpdateSpotField(0, "missing-id", "name", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddExpense_NegativeAmountLeavesLedgerUnchanged(t *testing.T) {
	e := testEngine(t)

	_, err := e.AddExpense(-5, "x", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, e.Expenses())
	assert.Zero(t, e.Total())
	assert.False(t, e.UI().IsExpanded("5/22"), "failed add must not expand the group")
}

func TestSetExpenseDay(t *testing.T) {
	e := testEngine(t)

	require.NoError(t, e.SetExpenseDay(1))
	assert.Equal(t, 1, e.UI().ExpenseDay())

	assert.ErrorIs(t, e.SetExpenseDay(9), domain.ErrOutOfRange)
	assert.Equal(t, 1, e.UI().ExpenseDay())
}

func TestEngine_UsableAfterErrors(t *testing.T) {
	e := testEngine(t)

	_, _ = e.AddExpense(-1, "", 0)
	_ = e.SelectDay(99)
	_ = e.UpdateSpotField(0, "nope", "name", "x")
	_ = e.UpdateSpotField(0, "s1", "id", "x")

	// Engine still works after every reported error.
	exp, err := e.AddExpense(3, "coffee", 1)
	require.NoError(t, err)
	assert.Equal(t, "5/23", exp.Date)
	require.NoError(t, e.SelectDay(1))
}
