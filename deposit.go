package pacfolio

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// DepositEvent records one cash contribution: how it was split between the
// cash reserve and each instrument, and the instrument prices at that time.
// The breakdown and price snapshot are keyed by instrument code so they stay
// valid if the registry is ever reordered or extended.
type DepositEvent struct {
	Date      Date
	Amount    Money            // total contribution, always positive
	Cash      Money            // portion kept as cash reserve
	Breakdown map[string]Money // instrument code -> amount invested
	Prices    map[string]Money // instrument code -> price at deposit time
}

// Invested returns the total amount routed to instruments.
func (e DepositEvent) Invested() Money {
	total := M(0, e.Amount.Currency())
	for _, amount := range e.Breakdown {
		total = total.Add(amount)
	}
	return total
}

// PriceAt returns the recorded purchase price for an instrument code.
// The boolean is false when no usable snapshot exists, in which case the
// caller falls back to the current price.
func (e DepositEvent) PriceAt(code string) (Money, bool) {
	price, ok := e.Prices[code]
	if !ok || !price.IsPositive() {
		return Money{}, false
	}
	return price, true
}

// Validate checks the event's invariants: a positive amount, a non-negative
// cash portion, and conservation (cash + invested == amount within a cent).
func (e DepositEvent) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("deposit on %s: %w", e.Date, ErrInvalidAmount)
	}
	if e.Cash.IsNegative() {
		return fmt.Errorf("deposit on %s has negative cash portion %s: %w", e.Date, e.Cash, ErrInvalidAmount)
	}
	if sum := e.Cash.Add(e.Invested()); !sum.WithinCent(e.Amount) {
		return fmt.Errorf("deposit on %s: cash %s + invested %s != amount %s: %w",
			e.Date, e.Cash, e.Invested(), e.Amount, ErrAllocationMismatch)
	}
	return nil
}

// Equal reports whether two events are identical.
func (e DepositEvent) Equal(other DepositEvent) bool {
	if e.Date != other.Date || !e.Amount.Equal(other.Amount) || !e.Cash.Equal(other.Cash) {
		return false
	}
	return maps.EqualFunc(e.Breakdown, other.Breakdown, Money.Equal) &&
		maps.EqualFunc(e.Prices, other.Prices, Money.Equal)
}

// MarshalJSON implements the json.Marshaler interface for DepositEvent.
// Map keys are written in sorted order so the encoding is deterministic.
func (e DepositEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("amount", e.Amount)
	w.Append("cash", e.Cash)
	w.Append("breakdown", sortedMoneyMap(e.Breakdown))
	w.Append("prices", sortedMoneyMap(e.Prices))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for DepositEvent.
func (e *DepositEvent) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date      Date             `json:"date"`
		Amount    Money            `json:"amount"`
		Cash      Money            `json:"cash"`
		Breakdown map[string]Money `json:"breakdown"`
		Prices    map[string]Money `json:"prices"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = DepositEvent(temp)
	return nil
}

// sortedMoneyMap renders a code->Money map as a JSON object with sorted keys.
func sortedMoneyMap(m map[string]Money) json.Marshaler {
	var w jsonObjectWriter
	for _, code := range slices.Sorted(maps.Keys(m)) {
		w.Append(code, m[code])
	}
	return &w
}
