package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one recorded expense.
type Entry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// User holds one address's ledger plus the pseudonymous token exposed
// instead of the address on read-only interfaces.
type User struct {
	Address string  `json:"address"`
	Token   string  `json:"token"`
	Entries []Entry `json:"entries"`
}

// Append adds an entry at the end of the ledger. Insertion order is
// chronological order and entries are never reordered afterwards.
func (u *User) Append(e Entry) {
	u.Entries = append(u.Entries, e)
}

// PopLast removes and returns the most recently appended entry.
func (u *User) PopLast() (Entry, bool) {
	if len(u.Entries) == 0 {
		return Entry{}, false
	}
	last := u.Entries[len(u.Entries)-1]
	u.Entries = u.Entries[:len(u.Entries)-1]
	return last, true
}

// LastN returns up to n entries, newest first.
func (u *User) LastN(n int) []Entry {
	if n > len(u.Entries) {
		n = len(u.Entries)
	}
	out := make([]Entry, 0, n)
	for i := len(u.Entries) - 1; i >= len(u.Entries)-n; i-- {
		out = append(out, u.Entries[i])
	}
	return out
}

// CountBetween counts entries whose timestamp falls in [from, to] inclusive.
func CountBetween(entries []Entry, from, to time.Time) int {
	count := 0
	for _, e := range entries {
		if !e.Date.Before(from) && !e.Date.After(to) {
			count++
		}
	}
	return count
}
