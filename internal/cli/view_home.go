package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evelynko/carnet/internal/cli/formatter"
)

// homeView is the trip overview screen: headline, ledger total, checklist
// progress, and the currently selected day.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) homeView {
	return homeView{state: state}
}

func (v homeView) update(tea.Msg) (homeView, tea.Cmd) {
	return v, nil
}

func (v homeView) view() string {
	e := v.state.Engine
	var b strings.Builder

	b.WriteString(formatter.Dim("FRANCE 2024") + "\n")
	b.WriteString(formatter.StyleHeader.Render("帶馬克出去玩") + "\n\n")

	days := e.Days()
	b.WriteString(fmt.Sprintf("%s %d days\n", formatter.StyleBold.Render("Itinerary"), len(days)))
	if day := e.ActiveDay(); day != nil {
		b.WriteString("  " + formatter.DayHeader(day) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(formatter.StyleBold.Render("Spent") + "  " + formatter.Money(e.Total()) + "\n")

	items := e.Essentials()
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	b.WriteString(fmt.Sprintf("%s %d/%d  %s\n",
		formatter.StyleBold.Render("Essentials"),
		checked, len(items),
		formatter.RenderProgress(e.Progress(), 16)))

	if v.state.Advisor == nil {
		b.WriteString("\n" + formatter.Dim("advisor offline (set CARNET_LLM_ENABLED=1)") + "\n")
	}

	return b.String()
}
