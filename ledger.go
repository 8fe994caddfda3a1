package pacfolio

import (
	"fmt"
	"iter"
)

// Ledger is the ordered log of deposit events. Order is append order and is
// preserved verbatim: dates are labels, not sort keys, so an edited event
// keeps its position.
type Ledger struct {
	deposits []DepositEvent
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{deposits: make([]DepositEvent, 0)}
}

// Len returns the number of recorded deposits.
func (l *Ledger) Len() int { return len(l.deposits) }

// At returns the deposit at the given index.
func (l *Ledger) At(i int) (DepositEvent, error) {
	if i < 0 || i >= len(l.deposits) {
		return DepositEvent{}, fmt.Errorf("index %d of %d deposits: %w", i, len(l.deposits), ErrIndexOutOfRange)
	}
	return l.deposits[i], nil
}

// Append adds an event to the end of the log. No dedup: two identical
// deposits are two deposits.
func (l *Ledger) Append(events ...DepositEvent) {
	l.deposits = append(l.deposits, events...)
}

// Replace swaps the event at index i for a new one. This is the "edit"
// operation: the event is replaced as a whole, never patched in place.
func (l *Ledger) Replace(i int, event DepositEvent) error {
	if i < 0 || i >= len(l.deposits) {
		return fmt.Errorf("replace index %d of %d deposits: %w", i, len(l.deposits), ErrIndexOutOfRange)
	}
	l.deposits[i] = event
	return nil
}

// Remove deletes the event at index i, shifting later entries down.
func (l *Ledger) Remove(i int) error {
	if i < 0 || i >= len(l.deposits) {
		return fmt.Errorf("remove index %d of %d deposits: %w", i, len(l.deposits), ErrIndexOutOfRange)
	}
	l.deposits = append(l.deposits[:i], l.deposits[i+1:]...)
	return nil
}

// Deposits returns an iterator that yields each deposit in ledger order.
func (l *Ledger) Deposits() iter.Seq2[int, DepositEvent] {
	return func(yield func(int, DepositEvent) bool) {
		for i, event := range l.deposits {
			if !yield(i, event) {
				return
			}
		}
	}
}
