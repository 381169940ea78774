package payment

import "errors"

var (
	// ErrInvalidSubscription means the requested plan is missing or inactive.
	ErrInvalidSubscription = errors.New("subscription plan is missing or inactive")

	// ErrGatewayUnavailable is a transient transport failure talking to the
	// payment gateway. Callers may retry order creation; no credit is granted
	// until verification so duplicates are harmless.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrSignatureMismatch means the callback signature did not verify. The
	// payment is not trusted, the order is marked failed and never retried.
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// ErrOrderNotFound covers unknown orders and orders belonging to another
	// user; callers see the same error for both.
	ErrOrderNotFound = errors.New("payment order not found")
)
