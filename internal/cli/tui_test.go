package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelynko/carnet/internal/advisor"
	"github.com/evelynko/carnet/internal/teatest"
	"github.com/evelynko/carnet/internal/testutil"
)

// fakeAdvisor answers every query synchronously.
type fakeAdvisor struct {
	reply string
	err   error
	asked []string
}

func (f *fakeAdvisor) Ask(_ context.Context, query string) (*advisor.Answer, error) {
	f.asked = append(f.asked, query)
	if f.err != nil {
		return nil, f.err
	}
	return &advisor.Answer{Text: f.reply, Model: "fake"}, nil
}

func (f *fakeAdvisor) Available(context.Context) bool { return true }

func newTestDriver(t *testing.T, adv advisor.Advisor) (*teatest.Driver, *SharedState) {
	t.Helper()
	state := &SharedState{Engine: testutil.SeededEngine(t), Advisor: adv}
	d := teatest.New(t, newAppModel(state), teatest.WithSize(100, 40))
	d.DrainInit()
	return d, state
}

func activeTab(t *testing.T, d *teatest.Driver) tabID {
	t.Helper()
	m, ok := d.Model.(appModel)
	require.True(t, ok)
	return m.tab
}

func TestTUI_StartsOnHome(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	assert.Equal(t, tabHome, activeTab(t, d))
	view := d.View()
	assert.Contains(t, view, "帶馬克出去玩")
	assert.Contains(t, view, "13 days")
}

func TestTUI_QuitKeys(t *testing.T) {
	d, _ := newTestDriver(t, nil)
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d, _ = newTestDriver(t, nil)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestTUI_TabCycling(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	d.PressTab()
	assert.Equal(t, tabPlan, activeTab(t, d))
	d.PressTab()
	assert.Equal(t, tabExpense, activeTab(t, d))
	d.PressTab()
	assert.Equal(t, tabEssentials, activeTab(t, d))
	d.PressTab()
	assert.Equal(t, tabHome, activeTab(t, d))

	d.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabEssentials, activeTab(t, d))
}

func TestTUI_PlanDayNavigation(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab() // plan

	d.PressRight()
	assert.Equal(t, 1, state.Engine.UI().ActiveDay())
	assert.Contains(t, d.View(), "悠閒時光")

	d.PressLeft()
	d.PressLeft() // below zero is rejected, selection stays put
	assert.Equal(t, 0, state.Engine.UI().ActiveDay())
}

func TestTUI_PlanEditAddRemoveSpot(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab() // plan

	day := state.Engine.ActiveDay()
	before := len(day.Spots)

	d.PressKey('n') // ignored outside edit mode
	assert.Len(t, state.Engine.ActiveDay().Spots, before)

	d.PressKey('e')
	assert.True(t, state.Engine.UI().EditingPlan())

	d.PressKey('n')
	require.Len(t, state.Engine.ActiveDay().Spots, before+1)

	d.PressKey('d') // cursor sits on the new spot
	assert.Len(t, state.Engine.ActiveDay().Spots, before)
}

func TestTUI_PlanSpotFormOpensAndCancels(t *testing.T) {
	d, _ := newTestDriver(t, nil)
	d.PressTab() // plan
	d.PressKey('e')
	d.PressEnter()

	m := d.Model.(appModel)
	assert.True(t, m.plan.typing(), "enter in edit mode opens the spot form")

	d.PressEsc()
	m = d.Model.(appModel)
	assert.False(t, m.plan.typing(), "esc cancels the form")
}

func TestTUI_ExpenseKeypadFlow(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab()
	d.PressTab() // expense

	d.Type("12.5")
	assert.Equal(t, "12.5", state.Engine.UI().CalcValue())

	d.PressEnter()
	exps := state.Engine.Expenses()
	require.Len(t, exps, 1)
	assert.Equal(t, 12.5, exps[0].Amount)
	assert.Equal(t, "5/22", exps[0].Date, "default target is day 1")
	assert.True(t, state.Engine.UI().IsExpanded("5/22"))
	assert.Equal(t, "0", state.Engine.UI().CalcValue(), "entry resets after add")
}

func TestTUI_ExpenseNoteAndDayTarget(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab()
	d.PressTab() // expense

	d.PressRight() // target day 2
	assert.Equal(t, 1, state.Engine.UI().ExpenseDay())

	d.PressKey('m')
	d.Type("seafood lunch")
	d.PressEnter() // leave note entry

	d.Type("30")
	d.PressEnter()

	exps := state.Engine.Expenses()
	require.Len(t, exps, 1)
	assert.Equal(t, "seafood lunch", exps[0].Note)
	assert.Equal(t, "5/23", exps[0].Date)
}

func TestTUI_ExpenseLedgerDelete(t *testing.T) {
	d, state := newTestDriver(t, nil)
	_, err := state.Engine.AddExpense(9, "bus", 0)
	require.NoError(t, err)

	d.PressTab()
	d.PressTab() // expense
	d.PressKey('l')
	d.PressDown() // from group header to its first entry
	d.PressKey('d')

	assert.Empty(t, state.Engine.Expenses())
}

func TestTUI_EssentialsToggleAndAdd(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab()
	d.PressTab()
	d.PressTab() // essentials

	d.PressSpace()
	assert.True(t, state.Engine.Essentials()[0].Checked)
	d.PressSpace()
	assert.False(t, state.Engine.Essentials()[0].Checked)

	d.PressKey('e')
	d.PressKey('a')
	d.Type("買巧克力")
	d.PressEnter()

	items := state.Engine.Essentials()
	require.Len(t, items, 7)
	assert.Equal(t, "買巧克力", items[6].Text)
}

func TestTUI_EssentialsBlankAddIsNoop(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab()
	d.PressTab()
	d.PressTab() // essentials

	d.PressKey('e')
	d.PressKey('a')
	d.PressEnter()
	assert.Len(t, state.Engine.Essentials(), 6)
}

func TestTUI_AdvisorChatRoundTrip(t *testing.T) {
	fake := &fakeAdvisor{reply: "Take the RER B."}
	d, state := newTestDriver(t, fake)

	d.PressKey('?')
	assert.True(t, state.Engine.UI().AdvisorExpanded())

	d.Type("how do I get to CDG?")
	d.PressEnter()

	require.Equal(t, []string{"how do I get to CDG?"}, fake.asked)
	assert.Contains(t, d.View(), "Take the RER B.")

	d.PressEsc()
	assert.False(t, state.Engine.UI().AdvisorExpanded())
}

func TestTUI_LateAdvisorReplySurvivesPanelClose(t *testing.T) {
	d, state := newTestDriver(t, &fakeAdvisor{reply: "ok"})

	d.PressKey('?')
	d.PressEsc()
	// Other state mutates while the reply is still in flight.
	require.NoError(t, state.Engine.SelectDay(3))

	d.Send(advisorAnswerMsg{query: "q", text: "late but intact"})

	d.PressKey('?')
	assert.Contains(t, d.View(), "late but intact")
	assert.Equal(t, 3, state.Engine.UI().ActiveDay(), "reply arrival changes no trip state")
}

func TestTUI_TypingSuppressesGlobalKeys(t *testing.T) {
	d, state := newTestDriver(t, nil)
	d.PressTab()
	d.PressTab()
	d.PressTab() // essentials
	d.PressKey('e')
	d.PressKey('a')

	d.PressKey('q') // goes into the text input, not quit
	assert.False(t, d.Quitting)
	d.PressEnter()
	assert.Equal(t, "q", state.Engine.Essentials()[6].Text)
}
