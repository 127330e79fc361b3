// Package ledger computes the read-side views of a user's incomes and
// expenses. Every function is pure and works on lists that were already
// loaded from storage.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// RecentLimit is how many entries the "recent" views return.
const RecentLimit = 5

// Entry is anything dated with an amount: incomes, expenses and tagged
// transactions.
type Entry interface {
	Date() time.Time
	Value() float64
}

// Sum adds amounts in decimal so repeated float additions do not drift.
func Sum[T Entry](entries []T) float64 {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Value()))
	}
	return total.InexactFloat64()
}

// Totals returns the income and expense sums.
func Totals(incomes []models.Income, expenses []models.Expense) (float64, float64) {
	return Sum(incomes), Sum(expenses)
}

// Recent returns at most n entries ordered by source date, newest first.
// Entries sharing a date keep their list order. The input is not modified.
func Recent[T Entry](entries []T, n int) []T {
	sorted := make([]T, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().After(sorted[j].Date())
	})
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Merge tags incomes and expenses with their kind, incomes first.
func Merge(incomes []models.Income, expenses []models.Expense) []models.Transaction {
	merged := make([]models.Transaction, 0, len(incomes)+len(expenses))
	for _, i := range incomes {
		merged = append(merged, i.Tagged())
	}
	for _, e := range expenses {
		merged = append(merged, e.Tagged())
	}
	return merged
}

// ByMonth keeps the entries dated in the given month of any year.
func ByMonth[T Entry](entries []T, month int) []T {
	filtered := make([]T, 0)
	for _, e := range entries {
		if int(e.Date().Month()) == month {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// DailyTotalsLastN groups entries by calendar day and returns the last n
// days that have entries, oldest first. Days without entries are not
// counted, so the window can cover more than n calendar days.
func DailyTotalsLastN[T Entry](entries []T, n int) ([]string, []float64) {
	daily := make(map[string]decimal.Decimal)
	for _, e := range entries {
		key := e.Date().Format(models.DateLayout)
		daily[key] = daily[key].Add(decimal.NewFromFloat(e.Value()))
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if n < 0 {
		n = 0
	}
	if len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	totals := make([]float64, len(dates))
	for i, d := range dates {
		totals[i] = daily[d].InexactFloat64()
	}
	return dates, totals
}

// BySubcategory sums expense amounts per subcategory. Only subcategories
// that have expenses appear in the result.
func BySubcategory(expenses []models.Expense) map[models.Subcategory]float64 {
	sums := make(map[models.Subcategory]decimal.Decimal)
	for _, e := range expenses {
		sums[e.Subcategory] = sums[e.Subcategory].Add(decimal.NewFromFloat(e.Amount))
	}
	out := make(map[models.Subcategory]float64, len(sums))
	for k, v := range sums {
		out[k] = v.InexactFloat64()
	}
	return out
}
