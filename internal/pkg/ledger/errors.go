package ledger

import "errors"

var (
	// ErrInsufficientCredits means the user has no spendable credit for the
	// contact's category. Terminal for the attempt; the caller should offer
	// the purchase flow, never retry.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrNegativeDelta marks a programming error: credit deltas are additive.
	ErrNegativeDelta = errors.New("credit delta must not be negative")
)
