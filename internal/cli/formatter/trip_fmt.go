package formatter

import (
	"fmt"
	"strings"

	"github.com/evelynko/carnet/internal/domain"
)

// TransportIcon returns a compact glyph for a transport mode.
func TransportIcon(mode domain.TransportMode) string {
	switch mode {
	case domain.ModeFlight:
		return "✈"
	case domain.ModeTrain:
		return "🚆"
	case domain.ModeBus:
		return "🚌"
	case domain.ModeMetro:
		return "Ⓜ"
	case domain.ModeCar:
		return "🚗"
	case domain.ModeWalk:
		return "🚶"
	default:
		return "•"
	}
}

// DayHeader renders a one-line day heading like "Day 3 · 5/24  沙丘奇景".
func DayHeader(d *domain.DayPlan) string {
	return fmt.Sprintf("%s %s  %s",
		StyleHeader.Render(fmt.Sprintf("Day %d", d.Day)),
		Dim("· "+d.Date),
		StyleBold.Render(d.Title))
}

// GroupHeader renders an expense group heading with day number (when the
// date belongs to the itinerary), date, and totals in both currencies.
func GroupHeader(g domain.ExpenseGroup, expanded bool) string {
	marker := "▸"
	if expanded {
		marker = "▾"
	}
	label := g.Date
	if g.DayNumber > 0 {
		label = fmt.Sprintf("Day %d · %s", g.DayNumber, g.Date)
	}
	return fmt.Sprintf("%s %s  %s %s",
		Dim(marker),
		StyleBlue.Render(label),
		StyleBold.Render(EUR(g.Total)),
		Dim(TWD(g.Total)))
}

// ExpenseLine renders one ledger entry row.
func ExpenseLine(e domain.Expense) string {
	return fmt.Sprintf("    %s  %s %s",
		StyleFg.Render(e.Note),
		EUR(e.Amount),
		Dim(TWD(e.Amount)))
}

// EssentialLine renders one checklist row with its checked state.
func EssentialLine(it domain.EssentialItem) string {
	if it.Checked {
		return StyleGreen.Render("✓ ") + StyleDim.Render(it.Text)
	}
	return Dim("○ ") + StyleFg.Render(it.Text)
}

// FormatLedgerReport renders the grouped expense ledger as a plain report,
// used by the non-interactive `carnet ledger` command.
func FormatLedgerReport(groups []domain.ExpenseGroup, total float64) string {
	var b strings.Builder
	b.WriteString(Header("EXPENSES") + "\n")
	if len(groups) == 0 {
		b.WriteString(Dim("no expenses recorded") + "\n")
		return b.String()
	}
	for _, g := range groups {
		b.WriteString(GroupHeader(g, true) + "\n")
		for _, e := range g.Items {
			b.WriteString(ExpenseLine(e) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("%s %s\n", StyleBold.Render("Total"), Money(total)))
	return b.String()
}

// FormatItineraryReport renders day summaries for `carnet itinerary`.
func FormatItineraryReport(days []domain.DayPlan) string {
	var b strings.Builder
	b.WriteString(Header("ITINERARY") + "\n")
	for i := range days {
		d := &days[i]
		b.WriteString(DayHeader(d) + "\n")
		for _, s := range d.Spots {
			b.WriteString("    " + StyleFg.Render(s.Name) + "  " + Dim(s.Feature) + "\n")
		}
		for _, tr := range d.Transports {
			b.WriteString("    " + TransportIcon(tr.Mode) + " " + Dim(tr.Details) + "\n")
		}
	}
	return b.String()
}

// FormatEssentialsReport renders the checklist for `carnet progress`.
func FormatEssentialsReport(items []domain.EssentialItem, pct int) string {
	var b strings.Builder
	b.WriteString(Header("ESSENTIALS") + "  " + RenderProgress(pct, 16) + "\n")
	for _, it := range items {
		b.WriteString(EssentialLine(it) + "\n")
	}
	return b.String()
}
