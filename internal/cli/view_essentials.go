package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evelynko/carnet/internal/cli/formatter"
)

// essentialsMode is the input state of the checklist screen.
type essentialsMode int

const (
	essBrowsing essentialsMode = iota
	essAdding
	essRenaming
)

// essentialsView is the pre-trip checklist screen.
type essentialsView struct {
	state    *SharedState
	cursor   int
	mode     essentialsMode
	input    textinput.Model
	renameID string
}

func newEssentialsView(state *SharedState) essentialsView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "新增待辦事項"
	ti.CharLimit = 60
	return essentialsView{state: state, input: ti}
}

func (v essentialsView) typing() bool {
	return v.mode != essBrowsing
}

func (v essentialsView) update(msg tea.Msg) (essentialsView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.mode != essBrowsing {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.mode != essBrowsing {
		return v.updateInput(keyMsg)
	}

	e := v.state.Engine
	ui := e.UI()
	items := e.Essentials()

	switch keyMsg.String() {
	case "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down":
		if v.cursor < len(items)-1 {
			v.cursor++
		}
	case " ", "enter":
		if v.cursor < len(items) {
			e.ToggleEssential(items[v.cursor].ID)
		}
	case "e":
		ui.SetEditingEssentials(!ui.EditingEssentials())
	case "a":
		if ui.EditingEssentials() {
			v.mode = essAdding
			v.input.Reset()
			return v, v.input.Focus()
		}
	case "d":
		if ui.EditingEssentials() && v.cursor < len(items) {
			e.RemoveEssential(items[v.cursor].ID)
			if v.cursor > 0 {
				v.cursor--
			}
		}
	case "r":
		if ui.EditingEssentials() && v.cursor < len(items) {
			v.mode = essRenaming
			v.renameID = items[v.cursor].ID
			v.input.SetValue(items[v.cursor].Text)
			return v, v.input.Focus()
		}
	}
	return v, nil
}

func (v essentialsView) updateInput(msg tea.KeyMsg) (essentialsView, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.mode = essBrowsing
		v.input.Blur()
		v.input.Reset()
		return v, nil
	case tea.KeyEnter:
		e := v.state.Engine
		if v.mode == essAdding {
			// A blank entry creates nothing; the pending input clears
			// either way.
			e.AddEssential(v.input.Value())
		} else {
			e.UpdateEssentialText(v.renameID, v.input.Value())
		}
		v.mode = essBrowsing
		v.input.Blur()
		v.input.Reset()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v essentialsView) view() string {
	e := v.state.Engine
	var b strings.Builder

	b.WriteString(formatter.StyleBold.Render("行前準備") + "  " +
		formatter.RenderProgress(e.Progress(), 16) + "\n")
	if e.UI().EditingEssentials() {
		b.WriteString(formatter.StyleYellow.Render("editing") +
			formatter.Dim("  a add · d delete · r rename") + "\n")
	}
	b.WriteString("\n")

	for i, it := range e.Essentials() {
		marker := "  "
		if i == v.cursor && v.mode == essBrowsing {
			marker = formatter.StyleHeader.Render("→ ")
		}
		b.WriteString(marker + formatter.EssentialLine(it) + "\n")
	}

	if v.mode == essAdding {
		b.WriteString("\n" + formatter.StyleHeader.Render("add> ") + v.input.View())
	}
	if v.mode == essRenaming {
		b.WriteString("\n" + formatter.StyleHeader.Render("rename> ") + v.input.View())
	}

	return b.String()
}
