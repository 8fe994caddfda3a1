package pacfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Portfolio is the aggregate root: settings, the instrument registry, and
// the deposit ledger. Derived figures (owned units, cash balance, invested
// total) are always replay outputs, never independently stored truth.
//
// Every mutating operation validates first, mutates, replays, and persists,
// in that order, so a failed validation leaves both memory and disk
// untouched and no caller ever observes a stale valuation.
type Portfolio struct {
	Currency      string
	MonthlyBudget Money
	TargetGoal    Money
	TaxRate       Quantity
	InvestRatio   Quantity // surplus fraction routed to instruments
	Registry      *Registry
	Ledger        *Ledger

	path      string // storage key; empty disables persistence
	valuation *ValuationSnapshot
}

// NewPortfolio returns a portfolio with the stock defaults: the three-fund
// registry, a 500 monthly budget, a 10000 goal, 26% tax, and a 50/50
// surplus split.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Currency:      "EUR",
		MonthlyBudget: M(500, "EUR"),
		TargetGoal:    M(10000, "EUR"),
		TaxRate:       DefaultTaxRate,
		InvestRatio:   Q(decimal.NewFromFloat(0.5)),
		Registry:      DefaultRegistry(),
		Ledger:        NewLedger(),
	}
}

// SetPath sets the storage key the portfolio persists under after every
// mutation.
func (p *Portfolio) SetPath(path string) { p.path = path }

// Path returns the storage key.
func (p *Portfolio) Path() string { return p.path }

// ThresholdPolicy returns the portfolio's default allocation policy, built
// from its monthly budget and surplus ratio.
func (p *Portfolio) ThresholdPolicy() ThresholdPolicy {
	return ThresholdPolicy{MonthlyBudget: p.MonthlyBudget, InvestRatio: p.InvestRatio}
}

// Valuation returns the current snapshot, replaying the ledger on first use.
func (p *Portfolio) Valuation() *ValuationSnapshot {
	if p.valuation == nil {
		p.revalue()
	}
	return p.valuation
}

func (p *Portfolio) revalue() {
	p.valuation = Revalue(p.Registry, p.Ledger, ValuationOptions{TaxRate: p.TaxRate, Goal: p.TargetGoal})
}

// commit replays the ledger and persists the snapshot. Mutations call it
// last, after all validation has passed.
func (p *Portfolio) commit() error {
	p.revalue()
	if p.path == "" {
		return nil
	}
	return SavePortfolio(p.path, p)
}

// SubmitDeposit allocates a deposit and appends it to the ledger.
// A zero date defaults to today.
func (p *Portfolio) SubmitDeposit(on Date, amount Money, policy Policy) error {
	if on.IsZero() {
		on = Today()
	}
	event, err := Allocate(on, amount, policy, p.Registry)
	if err != nil {
		return err
	}
	p.Ledger.Append(event)
	return p.commit()
}

// EditDeposit replaces the deposit at index i with a freshly allocated one.
func (p *Portfolio) EditDeposit(i int, on Date, amount Money, policy Policy) error {
	if on.IsZero() {
		on = Today()
	}
	event, err := Allocate(on, amount, policy, p.Registry)
	if err != nil {
		return err
	}
	if err := p.Ledger.Replace(i, event); err != nil {
		return err
	}
	return p.commit()
}

// DeleteDeposit removes the deposit at index i.
func (p *Portfolio) DeleteDeposit(i int) error {
	if err := p.Ledger.Remove(i); err != nil {
		return err
	}
	return p.commit()
}

// SetMonthlyBudget updates the default monthly budget.
func (p *Portfolio) SetMonthlyBudget(budget Money) error {
	if !budget.IsPositive() {
		return fmt.Errorf("monthly budget %s: %w", budget, ErrInvalidAmount)
	}
	p.MonthlyBudget = budget
	return p.commit()
}

// SetTargetGoal updates the target net-worth goal.
func (p *Portfolio) SetTargetGoal(goal Money) error {
	if !goal.IsPositive() {
		return fmt.Errorf("target goal %s: %w", goal, ErrInvalidAmount)
	}
	p.TargetGoal = goal
	return p.commit()
}

// SetInitialCash records a starting cash reserve as an all-cash deposit
// dated today.
func (p *Portfolio) SetInitialCash(amount Money) error {
	return p.SubmitDeposit(Today(), amount, ManualPolicy{Cash: amount})
}

// Reset restores the portfolio to its defaults and deletes the persisted
// state. Irreversible.
func (p *Portfolio) Reset() error {
	path := p.path
	*p = *NewPortfolio()
	p.path = path
	return DeleteStored(path)
}
