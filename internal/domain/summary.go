package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one aggregated summary row.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the result of aggregating a time window.
type Summary struct {
	Rows  []CategoryTotal
	Total decimal.Decimal
}

// Summarize totals entries whose timestamp falls in [from, to] inclusive.
// Subtotals are decimal sums per normalized lower-cased category. Rows come
// back sorted by subtotal descending; categories with equal subtotals keep
// the order in which they were first seen in the entry sequence, so the
// output is deterministic for a fixed input.
func Summarize(entries []Entry, from, to time.Time) Summary {
	index := make(map[string]int)
	var rows []CategoryTotal
	total := decimal.Zero

	for _, e := range entries {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		cat := strings.ToLower(NormalizeCategory(e.Category))
		i, ok := index[cat]
		if !ok {
			i = len(rows)
			index[cat] = i
			rows = append(rows, CategoryTotal{Category: cat, Total: decimal.Zero})
		}
		rows[i].Total = rows[i].Total.Add(e.Amount)
		total = total.Add(e.Amount)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})

	return Summary{Rows: rows, Total: total}
}
