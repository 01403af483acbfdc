// Package reply renders the user-facing side of the chat: tiered
// acknowledgments, summaries, lists, menus and tips.
package reply

import (
	"fmt"
	"html"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auntiebot/auntiecount/internal/domain"
)

// Tier buckets an amount by severity and drives which pool is sampled.
type Tier int

const (
	TierNormal Tier = iota
	TierHigh
	TierUltra
)

// StreakThreshold is the daily entry count at which a streak line is added.
const StreakThreshold = 3

var (
	tierHighFloor  = decimal.NewFromInt(50)
	tierUltraFloor = decimal.NewFromInt(200)
)

// TierFor selects the severity tier for an amount: NORMAL below 50, HIGH
// from 50 up to but excluding 200, ULTRA from 200.
func TierFor(amount decimal.Decimal) Tier {
	switch {
	case amount.GreaterThanOrEqual(tierUltraFloor):
		return TierUltra
	case amount.GreaterThanOrEqual(tierHighFloor):
		return TierHigh
	default:
		return TierNormal
	}
}

// FormatAmount renders an amount for display: fixed S$ prefix, two decimals
// obtained by truncation. The sign lands between the prefix and the digits.
func FormatAmount(d decimal.Decimal) string {
	return "S$" + domain.TruncateAmount(d).StringFixed(2)
}

// Responder selects templated replies. The random source is injected so
// selection is reproducible in tests; access to it is serialized because
// rand.Rand is not safe for concurrent use.
type Responder struct {
	mu             sync.Mutex
	rng            *rand.Rand
	summaryBaseURL string
}

// NewResponder creates a Responder drawing from rng. summaryBaseURL is the
// public origin used for the full-summary link in summary replies.
func NewResponder(rng *rand.Rand, summaryBaseURL string) *Responder {
	return &Responder{rng: rng, summaryBaseURL: strings.TrimRight(summaryBaseURL, "/")}
}

func (r *Responder) pick(pool []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pool[r.rng.Intn(len(pool))]
}

// Acknowledge renders the reply for a just-recorded entry. todayCount is
// the number of entries recorded today after this insertion.
func (r *Responder) Acknowledge(amount decimal.Decimal, category string, todayCount int) string {
	var pool []string
	switch TierFor(amount) {
	case TierUltra:
		pool = addUltra
	case TierHigh:
		pool = addHigh
	default:
		pool = addNormal
	}

	cat := html.EscapeString(strings.ToLower(domain.NormalizeCategory(category)))
	line := strings.Replace(r.pick(pool), "{AMT}", FormatAmount(amount), 1)
	line = strings.Replace(line, "{CAT}", cat, 1)

	if todayCount >= StreakThreshold {
		line += "\n" + r.pick(todaySpice)
	}
	return line
}

// Summary renders a windowed summary reply with a random header and footer
// and a link to the full web summary.
func (r *Responder) Summary(isMonth bool, s domain.Summary, token string) string {
	header := r.pick(summaryWeekHeaders)
	if isMonth {
		header = r.pick(summaryMonthHeaders)
	}

	lines := make([]string, 0, len(s.Rows)+4)
	lines = append(lines, header)
	for _, row := range s.Rows {
		lines = append(lines, fmt.Sprintf("%s: %s", html.EscapeString(row.Category), FormatAmount(row.Total)))
	}
	lines = append(lines, "", fmt.Sprintf("💰 *Total: %s*", FormatAmount(s.Total)), r.pick(summaryFooters))

	out := strings.Join(lines, "\n")
	out += fmt.Sprintf("\n\n📊 Full summary 👉 %s/summary.html?u=%s", r.summaryBaseURL, token)
	return out
}

// List renders up to the given entries (already newest first), numbered,
// with local timestamps in loc.
func (r *Responder) List(entries []domain.Entry, loc *time.Location) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, r.pick(listHeaders))
	for i, e := range entries {
		cat := html.EscapeString(strings.ToLower(domain.NormalizeCategory(e.Category)))
		when := e.Date.In(loc).Format("02/01/2006, 15:04:05")
		lines = append(lines, fmt.Sprintf("%d. %s — %s  (%s)", i+1, cat, FormatAmount(e.Amount), when))
	}
	return strings.Join(lines, "\n")
}

// Undo renders the confirmation for a removed entry.
func (r *Responder) Undo(e domain.Entry) string {
	cat := html.EscapeString(strings.ToLower(domain.NormalizeCategory(e.Category)))
	line := strings.Replace(r.pick(undoLines), "{AMT}", FormatAmount(e.Amount), 1)
	return strings.Replace(line, "{CAT}", cat, 1)
}

// Tip returns a random savings tip.
func (r *Responder) Tip() string {
	return r.pick(tips)
}

// NoSpending is the empty-window summary reply.
func NoSpending(isMonth bool) string {
	label := "this week"
	if isMonth {
		label = "this month"
	}
	return fmt.Sprintf("No spending %s yet. Try *$5 lunch* to start!", label)
}

// Fixed replies that carry no random element.
const (
	NoIdentity = "Aiyo, cannot identify you. Please try again later."
	EmptyList  = "Aiyo, no record yet 😅 Try *$5 lunch* first!"
	EmptyUndo  = "Nothing to undo lah 😅"
)

// Menu renders the command menu.
func Menu() string {
	return strings.Join([]string{
		"👵 *Auntie Can Count One Menu:*",
		"- *$20 kopi* or *20 lunch* → Record an expense",
		"- *shoes 200* or *kopi $4.50* → Category first also can",
		"- *Summary* → This week total",
		"- *Summary month* → This month total",
		"- *List* → Last 5 records",
		"- *Undo* → Remove last entry",
		"- *Tip* → Savings advice",
		"",
		"Examples:",
		"• 3.5 kopi",
		"• $4.20 lunch",
		"• pc repair 133.78",
	}, "\n")
}

// Fallback is the usage help shown when a message parses as neither a
// command nor an expense.
func Fallback() string {
	return "Hello dear 👋 Start with amount *or* category.\n" +
		"Examples:\n- *$5 kopi*  (amount first)\n- *pc repair 133.78*  (category first)\n- *shoes $200*\nType *menu* to see options lah!"
}
