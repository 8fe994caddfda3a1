package pacfolio

import (
	"fmt"
)

// Policy describes how a deposit amount is split between the cash reserve
// and the instruments of a registry.
type Policy interface {
	// split returns the cash portion and per-instrument amounts for a deposit.
	split(amount Money, registry *Registry) (cash Money, amounts map[string]Money, err error)
}

// ThresholdPolicy is the default rule: amounts up to the monthly budget go
// entirely to instruments, split by target share; any surplus above the
// budget is split between instruments and cash at a configurable ratio.
type ThresholdPolicy struct {
	MonthlyBudget Money
	// InvestRatio is the fraction of the surplus routed to instruments,
	// in [0,1]. Both 0.5 and 0.7 are in live use.
	InvestRatio Quantity
}

func (p ThresholdPolicy) split(amount Money, registry *Registry) (Money, map[string]Money, error) {
	if p.InvestRatio.IsNegative() || p.InvestRatio.GreaterThan(Q(1)) {
		return Money{}, nil, fmt.Errorf("invest ratio %s out of [0,1]: %w", p.InvestRatio, ErrInvalidAmount)
	}
	invested := amount
	if p.MonthlyBudget.IsPositive() && amount.GreaterThan(p.MonthlyBudget) {
		surplus := amount.Sub(p.MonthlyBudget)
		invested = p.MonthlyBudget.Add(surplus.Mul(p.InvestRatio))
	}
	amounts := make(map[string]Money, registry.Len())
	cash := amount
	for ins := range registry.All() {
		part := invested.Mul(ins.Share)
		amounts[ins.Code] = part
		cash = cash.Sub(part)
	}
	return cash, amounts, nil
}

// ManualPolicy carries an explicit split, typically produced by a Splitter.
// The engine validates conservation and performs no redistribution.
type ManualPolicy struct {
	Cash    Money
	Amounts map[string]Money // instrument code -> amount
}

func (p ManualPolicy) split(amount Money, registry *Registry) (Money, map[string]Money, error) {
	if p.Cash.IsNegative() {
		return Money{}, nil, fmt.Errorf("manual cash portion %s is negative: %w", p.Cash, ErrInvalidAmount)
	}
	total := p.Cash
	amounts := make(map[string]Money, len(p.Amounts))
	for code, part := range p.Amounts {
		if part.IsNegative() {
			return Money{}, nil, fmt.Errorf("manual portion %s for %s is negative: %w", part, code, ErrInvalidAmount)
		}
		if registry.ByCode(code) == nil {
			return Money{}, nil, fmt.Errorf("manual portion for unknown instrument %q: %w", code, ErrAllocationMismatch)
		}
		amounts[code] = part
		total = total.Add(part)
	}
	if !total.WithinCent(amount) {
		return Money{}, nil, fmt.Errorf("manual split sums to %s, deposit is %s: %w", total, amount, ErrAllocationMismatch)
	}
	return p.Cash, amounts, nil
}

// Allocate turns a deposit amount into a DepositEvent according to a policy.
// It is a pure computation: the price snapshot is copied from the registry's
// current prices and the caller is responsible for appending to the ledger.
func Allocate(on Date, amount Money, policy Policy, registry *Registry) (DepositEvent, error) {
	if !amount.IsPositive() {
		return DepositEvent{}, fmt.Errorf("deposit amount %s: %w", amount, ErrInvalidAmount)
	}
	cash, amounts, err := policy.split(amount, registry)
	if err != nil {
		return DepositEvent{}, err
	}

	prices := make(map[string]Money, registry.Len())
	for ins := range registry.All() {
		prices[ins.Code] = ins.Price
	}

	event := DepositEvent{
		Date:      on,
		Amount:    amount,
		Cash:      cash,
		Breakdown: amounts,
		Prices:    prices,
	}
	if err := event.Validate(); err != nil {
		return DepositEvent{}, err
	}
	return event, nil
}
