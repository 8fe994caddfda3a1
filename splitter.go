package pacfolio

import (
	"fmt"
	"maps"
	"slices"
)

// CashKey is the splitter key for the cash reserve; every other key is an
// instrument code.
const CashKey = "cash"

// Splitter redistributes a fixed total budget across cash and instruments
// through pairwise-coupled edits: raising one key lowers all the others
// proportionally to their current values, the way the original allocation
// sliders behave.
//
// Conservation is best effort, not exact: after redistribution every value is
// clamped to zero, and when several keys are already at zero the total can
// drift slightly below the budget. The caller reads Total() for whatever
// slipped through; no renormalization is applied.
type Splitter struct {
	budget Money
	keys   []string
	values map[string]Money
}

// NewSplitter creates a splitter over the given initial values. The initial
// values should sum to the budget; they are taken as-is.
func NewSplitter(budget Money, initial map[string]Money) *Splitter {
	return &Splitter{
		budget: budget,
		keys:   slices.Sorted(maps.Keys(initial)),
		values: maps.Clone(initial),
	}
}

// SuggestSplitter seeds a splitter with the threshold-policy split of a
// deposit amount, the starting position the user then adjusts from.
func SuggestSplitter(amount Money, policy ThresholdPolicy, registry *Registry) (*Splitter, error) {
	cash, amounts, err := policy.split(amount, registry)
	if err != nil {
		return nil, err
	}
	initial := make(map[string]Money, len(amounts)+1)
	initial[CashKey] = cash
	for code, part := range amounts {
		initial[code] = part
	}
	return NewSplitter(amount, initial), nil
}

// Budget returns the fixed total the splitter distributes.
func (s *Splitter) Budget() Money { return s.budget }

// Total returns the current sum of all values. It can sit slightly below
// the budget after clamping.
func (s *Splitter) Total() Money {
	total := M(0, s.budget.Currency())
	for _, key := range s.keys {
		total = total.Add(s.values[key])
	}
	return total
}

// Value returns the current amount assigned to a key.
func (s *Splitter) Value(key string) (Money, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Cash returns the current cash portion.
func (s *Splitter) Cash() Money { return s.values[CashKey] }

// Amounts returns the current per-instrument portions, without the cash key.
func (s *Splitter) Amounts() map[string]Money {
	amounts := make(map[string]Money, len(s.values)-1)
	for key, v := range s.values {
		if key != CashKey {
			amounts[key] = v
		}
	}
	return amounts
}

// Set assigns a new value to one key and redistributes the difference across
// all other keys, proportionally to their current values when their sum is
// positive, equally otherwise. Resulting negatives are clamped to zero.
func (s *Splitter) Set(key string, value Money) error {
	old, ok := s.values[key]
	if !ok {
		return fmt.Errorf("unknown split key %q: %w", key, ErrAllocationMismatch)
	}
	if value.IsNegative() || value.GreaterThan(s.budget) {
		return fmt.Errorf("split value %s for %q out of [0, %s]: %w", value, key, s.budget, ErrInvalidAmount)
	}
	if len(s.keys) == 1 {
		s.values[key] = value
		return nil
	}

	diff := value.Sub(old)
	others := M(0, s.budget.Currency())
	for _, k := range s.keys {
		if k != key {
			others = others.Add(s.values[k])
		}
	}

	for _, k := range s.keys {
		if k == key {
			continue
		}
		if others.IsPositive() {
			s.values[k] = s.values[k].Sub(diff.Mul(s.values[k].Ratio(others)))
		} else {
			s.values[k] = s.values[k].Sub(diff.Div(Q(len(s.keys) - 1)))
		}
	}
	s.values[key] = value

	for _, k := range s.keys {
		if s.values[k].IsNegative() {
			s.values[k] = M(0, s.budget.Currency())
		}
	}
	return nil
}

// Policy returns the splitter's current state as a manual allocation policy.
// The deposit amount it is validated against is Total(), not Budget(), so
// clamp drift stays consistent.
func (s *Splitter) Policy() ManualPolicy {
	return ManualPolicy{Cash: s.Cash(), Amounts: s.Amounts()}
}
