package trip

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/evelynko/carnet/internal/domain"
)

// Ledger is the append/remove log of expenses. Entries are kept
// most-recent-first; that ordering is ledger-wide, and each derived group
// inherits it for its members.
type Ledger struct {
	expenses []domain.Expense
	ids      IDGenerator
}

// NewLedger returns an empty ledger.
func NewLedger(ids IDGenerator) *Ledger {
	return &Ledger{ids: ids}
}

// Expenses returns the ledger in most-recent-first order. The slice is
// owned by the ledger; callers treat it as read-only.
func (l *Ledger) Expenses() []domain.Expense {
	return l.expenses
}

// Add prepends a new expense carrying the given date. The date is captured
// here once and never revisited. A blank note gets the default placeholder.
func (l *Ledger) Add(amount float64, note, date string) (*domain.Expense, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("amount %v: %w", amount, domain.ErrInvalidAmount)
	}
	if strings.TrimSpace(note) == "" {
		note = domain.DefaultNote
	}
	l.expenses = append([]domain.Expense{{
		ID:       l.ids.NewID(),
		Amount:   amount,
		Category: domain.DefaultCategory,
		Note:     note,
		Date:     date,
	}}, l.expenses...)
	return &l.expenses[0], nil
}

// Remove deletes the matching entry; absent ids are a no-op.
func (l *Ledger) Remove(id string) {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return
		}
	}
}

// Total sums all expense amounts in ledger order, at full precision.
func (l *Ledger) Total() float64 {
	var sum float64
	for i := range l.expenses {
		sum += l.expenses[i].Amount
	}
	return sum
}

// GroupByDate aggregates expenses per stored date, most recent date first
// in calendar order. dayNumberByDate resolves a date to its itinerary day
// number; dates no day carries yield a zero DayNumber. Every expense lands
// in exactly one group, and group members keep ledger order.
func (l *Ledger) GroupByDate(dayNumberByDate func(string) (int, bool)) []domain.ExpenseGroup {
	byDate := make(map[string]*domain.ExpenseGroup)
	var order []string
	for _, exp := range l.expenses {
		g, ok := byDate[exp.Date]
		if !ok {
			g = &domain.ExpenseGroup{Date: exp.Date}
			if num, found := dayNumberByDate(exp.Date); found {
				g.DayNumber = num
			}
			byDate[exp.Date] = g
			order = append(order, exp.Date)
		}
		g.Items = append(g.Items, exp)
		g.Total += exp.Amount
	}

	groups := make([]domain.ExpenseGroup, 0, len(order))
	for _, date := range order {
		groups = append(groups, *byDate[date])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return laterDate(groups[i].Date, groups[j].Date)
	})
	return groups
}
