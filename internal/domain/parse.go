package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Parsed is a candidate expense produced by one of the two grammars.
type Parsed struct {
	Amount   decimal.Decimal
	Category string
}

// The two grammars share one numeral shape: digits with optional thousands
// commas and an optional fractional part introduced by "." or ",". The
// currency marker "$" or "S$" is optional and case-insensitive.
var (
	amountFirstRe   = regexp.MustCompile(`(?i)^\s*(?:-?\s*s?\$)?\s*(-?[0-9][0-9,]*(?:[.][0-9]+|[,][0-9]+)?)\s*(.*)$`)
	categoryFirstRe = regexp.MustCompile(`(?i)^\s*(.*?)\s*(?:[:\-])?\s*(?:s?\$)?\s*(-?[0-9][0-9,]*(?:[.][0-9]+|[,][0-9]+)?)\s*$`)
)

// ParseExpense resolves a free-form message into an amount/category pair.
// Grammar precedence is a contract, not an accident: amount-first is tried
// before category-first, so "200 shoes" records 200.00 under "shoes" while
// "shoes 200" falls through to the category-first rule.
func ParseExpense(text string) (*Parsed, error) {
	t := FixSpacedDecimals(text)
	if p := parseAmountFirst(t); p != nil {
		return p, nil
	}
	if p := parseCategoryFirst(t); p != nil {
		return p, nil
	}
	return nil, ErrUnparseableInput
}

// parseAmountFirst handles "23.356 movie", "$4.2 kopi", "1,234.9 laptop".
// The remainder after the numeral is the raw category.
func parseAmountFirst(text string) *Parsed {
	m := amountFirstRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	amount, err := NormalizeAmount(m[1])
	if err != nil {
		return nil
	}
	return &Parsed{Amount: amount, Category: NormalizeCategory(m[2])}
}

// parseCategoryFirst handles "shoes 200", "nike shoes $200",
// "pc repair S$133.78". The numeral is anchored at the end of the message
// and an optional ":" or "-" may separate it from the category text, which
// must be non-empty.
func parseCategoryFirst(text string) *Parsed {
	m := categoryFirstRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	if strings.TrimSpace(m[1]) == "" {
		return nil
	}
	amount, err := NormalizeAmount(m[2])
	if err != nil {
		return nil
	}
	return &Parsed{Amount: amount, Category: NormalizeCategory(m[1])}
}
