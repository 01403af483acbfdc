package domain

import "errors"

var (
	// Parsing errors
	ErrUnparseableInput = errors.New("message matches neither expense grammar")
	ErrInvalidNumeral   = errors.New("invalid numeral")

	// Ledger errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyLedger  = errors.New("no entries recorded")

	// Token-keyed interface errors
	ErrMissingToken = errors.New("missing token")
	ErrUnknownToken = errors.New("unknown token")

	// Inbound message errors
	ErrMissingAddress = errors.New("missing sender address")

	// Feedback errors
	ErrEmptyFeedback = errors.New("feedback message is required")
)
