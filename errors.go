package pacfolio

import "errors"

// Sentinel errors for user-facing validation failures. Operations that return
// one of these never mutate or persist any state.
var (
	// ErrInvalidAmount reports a non-positive or non-finite amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAllocationMismatch reports a manual split whose parts do not sum to
	// the deposit amount within a cent.
	ErrAllocationMismatch = errors.New("allocation does not sum to deposit amount")

	// ErrIndexOutOfRange reports an edit or delete addressing a deposit that
	// does not exist.
	ErrIndexOutOfRange = errors.New("deposit index out of range")

	// ErrPriceUnavailable reports a failed quote fetch for one instrument.
	// It is absorbed per instrument inside the refresh loop and never aborts
	// the batch.
	ErrPriceUnavailable = errors.New("price unavailable")
)
