package pacfolio

import (
	"fmt"
	"iter"
)

// Compounding selects how the forecast applies the annual return rate.
// The two modes are numerically different and are never conflated.
type Compounding int

const (
	// Annual applies the full rate once per year to the year's balance
	// plus twelve monthly contributions.
	Annual Compounding = iota
	// Monthly divides the annual rate by twelve and compounds the balance
	// month by month.
	Monthly
)

func (c Compounding) String() string {
	switch c {
	case Annual:
		return "annual"
	case Monthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// ParseCompounding parses a string into a Compounding mode.
func ParseCompounding(s string) (Compounding, error) {
	switch s {
	case "annual", "yearly":
		return Annual, nil
	case "monthly":
		return Monthly, nil
	default:
		return 0, fmt.Errorf("unknown compounding mode: %q", s)
	}
}

// Project forecasts the portfolio's total value under a constant monthly
// contribution and annual return rate. It yields a ("Now", current) point
// followed by one point per year up to the horizon. The sequence is lazy and
// restartable: ranging over it twice replays the same projection.
//
// A zero or negative horizon yields only the "Now" point. A negative
// contribution models a withdrawal plan and is not rejected; neither is a
// zero or negative rate.
func Project(current Money, monthly Money, annualRate Quantity, years int, compounding Compounding) iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		if !yield("Now", current) {
			return
		}
		balance := current
		for year := 1; year <= years; year++ {
			balance = grow(balance, monthly, annualRate, compounding)
			if !yield(fmt.Sprintf("Year %d", year), balance) {
				return
			}
		}
	}
}

// grow advances a balance by one year.
func grow(balance, monthly Money, annualRate Quantity, compounding Compounding) Money {
	switch compounding {
	case Monthly:
		monthlyRate := annualRate.Div(Q(12))
		factor := Q(1).Add(monthlyRate)
		for month := 0; month < 12; month++ {
			balance = balance.Add(monthly).Mul(factor)
		}
		return balance
	default:
		contributions := monthly.Mul(Q(12))
		return balance.Add(contributions).Mul(Q(1).Add(annualRate))
	}
}

// ForecastSummary aggregates a projection the way the forecast report shows
// it: the final balance, the total contributed by then, and the difference
// earned by compounding.
type ForecastSummary struct {
	FinalBalance  Money
	TotalInvested Money // invested so far plus all future contributions
	Interest      Money
}

// Summarize runs a projection to its end and reports the final figures.
// investedSoFar is the amount actually deposited to date.
func Summarize(current, investedSoFar, monthly Money, annualRate Quantity, years int, compounding Compounding) ForecastSummary {
	final := current
	for _, balance := range Project(current, monthly, annualRate, years, compounding) {
		final = balance
	}
	if years < 0 {
		years = 0
	}
	invested := investedSoFar.Add(monthly.Mul(Q(12 * years)))
	return ForecastSummary{
		FinalBalance:  final,
		TotalInvested: invested,
		Interest:      final.Sub(invested),
	}
}
