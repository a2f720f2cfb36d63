package trip

import (
	"testing"

	"github.com/evelynko/carnet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEssentials(t *testing.T) *EssentialsStore {
	t.Helper()
	return NewEssentialsStore([]domain.EssentialItem{
		{ID: "e1", Text: "換錢 (EUR)"},
		{ID: "e2", Text: "確認天氣預報", Checked: true},
	}, &seqIDs{})
}

func TestToggle_FlipsAndRoundTrips(t *testing.T) {
	s := testEssentials(t)

	s.Toggle("e1")
	assert.True(t, s.Items()[0].Checked)

	s.Toggle("e1")
	assert.False(t, s.Items()[0].Checked, "double toggle restores original state")

	s.Toggle("ghost") // no-op
	assert.Len(t, s.Items(), 2)
}

func TestAdd_TrimEmptyIsNoop(t *testing.T) {
	s := testEssentials(t)

	assert.Nil(t, s.Add(""))
	assert.Nil(t, s.Add("   "))
	assert.Nil(t, s.Add("\t\n"))
	assert.Len(t, s.Items(), 2)
}

func TestAdd_AppendsUnchecked(t *testing.T) {
	s := testEssentials(t)

	item := s.Add("買歐元現金")
	require.NotNil(t, item)
	assert.False(t, item.Checked)
	assert.NotEmpty(t, item.ID)
	assert.NotEqual(t, "e1", item.ID)
	assert.NotEqual(t, "e2", item.ID)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, item.ID, items[2].ID, "new items append in insertion order")
}

func TestRemoveAndUpdateText(t *testing.T) {
	s := testEssentials(t)

	s.UpdateText("e1", "換錢 (EUR + CHF)")
	assert.Equal(t, "換錢 (EUR + CHF)", s.Items()[0].Text)
	s.UpdateText("ghost", "x") // no-op

	s.Remove("e1")
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "e2", s.Items()[0].ID)
	s.Remove("e1") // no-op
	assert.Len(t, s.Items(), 1)
}

func TestUpdateText_KeepsIDStable(t *testing.T) {
	s := testEssentials(t)

	s.UpdateText("e2", "new text")
	assert.Equal(t, "e2", s.Items()[1].ID)
	assert.True(t, s.Items()[1].Checked, "edit does not touch the checked flag")
}

func TestStoreProgress(t *testing.T) {
	s := testEssentials(t)
	assert.Equal(t, 50, s.Progress())

	s.Toggle("e1")
	assert.Equal(t, 100, s.Progress())

	s.Remove("e1")
	s.Remove("e2")
	assert.Equal(t, 0, s.Progress(), "empty checklist reports 0")
}
