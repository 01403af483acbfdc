package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxCategoryLength is the hard cap on a normalized category.
	MaxCategoryLength = 13
	// DefaultCategory is used when normalization leaves nothing behind.
	DefaultCategory = "uncategorised"
	// AmountScale is the number of fractional digits kept on every amount.
	AmountScale = 2
)

var (
	nonCategoryChars = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	spacedDecimals   = regexp.MustCompile(`(\d+)\s*\.\s*(\d+)`)
)

// NormalizeCategory canonicalizes a raw category: strip everything that is
// not a letter, digit or space, collapse whitespace runs, trim, cap at
// MaxCategoryLength. An empty result becomes DefaultCategory.
//
// The cap is applied before the final trim so the output never carries a
// trailing space and re-normalizing a normalized category is a no-op.
func NormalizeCategory(raw string) string {
	t := nonCategoryChars.ReplaceAllString(raw, "")
	t = strings.TrimSpace(whitespaceRuns.ReplaceAllString(t, " "))
	if len(t) > MaxCategoryLength {
		t = strings.TrimRight(t[:MaxCategoryLength], " ")
	}
	if t == "" {
		return DefaultCategory
	}
	return t
}

// FixSpacedDecimals collapses "23 . 25" into "23.25". It runs once as a
// pre-pass over the whole message, before command matching and parsing.
func FixSpacedDecimals(s string) string {
	return spacedDecimals.ReplaceAllString(s, "$1.$2")
}

// NormalizeAmount converts a raw numeric string to a signed decimal with
// exactly two fractional digits, truncating (never rounding) any extra
// digits. Comma handling: when a decimal point is present every comma is a
// thousands separator; with no decimal point a single comma is the decimal
// separator, and multiple commas are thousands separators.
func NormalizeAmount(raw string) (decimal.Decimal, error) {
	num := strings.TrimSpace(raw)

	switch {
	case strings.Contains(num, "."):
		num = strings.ReplaceAll(num, ",", "")
	case strings.Count(num, ",") == 1:
		num = strings.Replace(num, ",", ".", 1)
	default:
		num = strings.ReplaceAll(num, ",", "")
	}

	negative := strings.HasPrefix(num, "-")
	if negative {
		num = num[1:]
	}

	if i := strings.IndexByte(num, '.'); i >= 0 {
		intPart, frac := num[:i], num[i+1:]
		if len(frac) > AmountScale {
			frac = frac[:AmountScale]
		}
		for len(frac) < AmountScale {
			frac += "0"
		}
		num = intPart + "." + frac
	} else {
		num += ".00"
	}
	if negative {
		num = "-" + num
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidNumeral, raw)
	}
	return d, nil
}

// TruncateAmount drops fractional digits beyond AmountScale, toward zero.
// Idempotent: TruncateAmount(TruncateAmount(x)) == TruncateAmount(x).
func TruncateAmount(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(AmountScale)
}
