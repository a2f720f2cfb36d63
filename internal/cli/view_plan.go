package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/evelynko/carnet/internal/cli/formatter"
)

// planView shows one itinerary day at a time: its spots, transports, and
// precautions. Edit mode adds spot add/remove and a huh form for editing
// the selected spot's three editable fields.
type planView struct {
	state  *SharedState
	cursor int

	// Spot edit form state. form is non-nil while a spot is being edited.
	form        *huh.Form
	editSpotID  string
	editName    string
	editFeature string
	editMapURL  string
}

func newPlanView(state *SharedState) planView {
	return planView{state: state}
}

func (v planView) typing() bool {
	return v.form != nil
}

func (v planView) update(msg tea.Msg) (planView, tea.Cmd) {
	if v.form != nil {
		return v.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	e := v.state.Engine
	ui := e.UI()

	switch keyMsg.String() {
	case "left":
		if err := e.SelectDay(ui.ActiveDay() - 1); err == nil {
			v.cursor = 0
		}
	case "right":
		if err := e.SelectDay(ui.ActiveDay() + 1); err == nil {
			v.cursor = 0
		}
	case "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down":
		if day := e.ActiveDay(); day != nil && v.cursor < len(day.Spots)-1 {
			v.cursor++
		}
	case "e":
		ui.SetEditingPlan(!ui.EditingPlan())
	case "n":
		if ui.EditingPlan() {
			if _, err := e.AddSpot(ui.ActiveDay()); err == nil {
				if day := e.ActiveDay(); day != nil {
					v.cursor = len(day.Spots) - 1
				}
			}
		}
	case "d":
		if ui.EditingPlan() {
			if day := e.ActiveDay(); day != nil && v.cursor < len(day.Spots) {
				_ = e.RemoveSpot(ui.ActiveDay(), day.Spots[v.cursor].ID)
				if v.cursor > 0 {
					v.cursor--
				}
			}
		}
	case "enter":
		if ui.EditingPlan() {
			return v.openForm()
		}
	}

	return v, nil
}

// openForm starts the spot edit form pre-filled with the selected spot.
func (v planView) openForm() (planView, tea.Cmd) {
	day := v.state.Engine.ActiveDay()
	if day == nil || v.cursor >= len(day.Spots) {
		return v, nil
	}
	spot := day.Spots[v.cursor]

	v.editSpotID = spot.ID
	v.editName = spot.Name
	v.editFeature = spot.Feature
	v.editMapURL = spot.MapURL

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.editName),
			huh.NewInput().Title("Feature").Value(&v.editFeature),
			huh.NewInput().Title("Map URL").Value(&v.editMapURL),
		),
	).WithTheme(carnetHuhTheme()).WithShowHelp(false)

	return v, v.form.Init()
}

func (v planView) updateForm(msg tea.Msg) (planView, tea.Cmd) {
	// Escape cancels the edit without touching the spot.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		v.form = nil
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		e := v.state.Engine
		dayIdx := e.UI().ActiveDay()
		_ = e.UpdateSpotField(dayIdx, v.editSpotID, "name", v.editName)
		_ = e.UpdateSpotField(dayIdx, v.editSpotID, "feature", v.editFeature)
		_ = e.UpdateSpotField(dayIdx, v.editSpotID, "mapUrl", v.editMapURL)
		v.form = nil
		return v, nil
	}
	if v.form.State == huh.StateAborted {
		v.form = nil
		return v, nil
	}

	return v, cmd
}

func (v planView) view() string {
	if v.form != nil {
		return v.form.View()
	}

	e := v.state.Engine
	day := e.ActiveDay()
	if day == nil {
		return formatter.Dim("no itinerary")
	}

	var b strings.Builder
	b.WriteString(formatter.DayHeader(day))
	b.WriteString(fmt.Sprintf("  %s\n", formatter.Dim(fmt.Sprintf("(%d/%d)", day.Day, len(e.Days())))))
	if e.UI().EditingPlan() {
		b.WriteString(formatter.StyleYellow.Render("editing") + formatter.Dim("  n new · d delete · enter edit fields") + "\n")
	}
	b.WriteString(formatter.Dim(day.StartTime+" · "+day.Budget) + "\n\n")

	if day.Description != "" {
		b.WriteString(formatter.StyleFg.Render(day.Description) + "\n\n")
	}

	for i, s := range day.Spots {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("→ ")
		}
		b.WriteString(marker + formatter.StyleBold.Render(s.Name) + "\n")
		if s.Feature != "" {
			b.WriteString("    " + formatter.Dim(s.Feature) + "\n")
		}
		if s.MapURL != "" {
			b.WriteString("    " + formatter.StyleBlue.Render(s.MapURL) + "\n")
		}
	}
	if len(day.Spots) == 0 {
		b.WriteString(formatter.Dim("no spots yet") + "\n")
	}

	if len(day.Transports) > 0 {
		b.WriteString("\n")
		for _, tr := range day.Transports {
			line := formatter.TransportIcon(tr.Mode) + " " + tr.Details + formatter.Dim("  "+tr.Duration)
			if tr.Price != "" {
				line += formatter.Dim("  " + tr.Price)
			}
			b.WriteString(line + "\n")
		}
	}

	for _, p := range day.Precautions {
		b.WriteString("\n" + formatter.StyleYellow.Render("⚠ "+p))
	}

	return b.String()
}
