package pacfolio

import "github.com/shopspring/decimal"

// DefaultTaxRate is the flat capital-gains rate applied to positive
// profit/loss (the Italian 26% regime the plan runs under).
var DefaultTaxRate = Q(decimal.NewFromFloat(0.26))

// cashInterestRate is the fixed savings rate used for the display-only
// annual interest estimate on the cash reserve.
var cashInterestRate = Q(decimal.NewFromFloat(0.02))

// Holding is one instrument's row in a valuation snapshot.
type Holding struct {
	Code   string
	Name   string
	Ticker string
	Owned  Quantity
	Price  Money
	Value  Money
	Change Percent
}

// ValuationSnapshot is the read-only view of the portfolio after a full
// ledger replay. All fields are derived; none is independently settable.
type ValuationSnapshot struct {
	Invested          Money // total deposited since inception
	Cash              Money // cash reserve balance
	MarketValue       Money // holdings at current prices, plus cash
	ProfitLoss        Money
	ProfitLossPercent Percent
	TaxEstimate       Money // flat rate on positive profit only
	NetValue          Money
	CashInterest      Money   // estimated annual interest on the cash reserve
	Goal              Money   // target net worth
	Progress          float64 // market value over goal, clamped to [0,1]
	Holdings          []Holding
}

// ValuationOptions parameterize the derived figures of a replay.
type ValuationOptions struct {
	TaxRate Quantity // flat capital-gains rate on positive profit
	Goal    Money    // target net worth for the progress fraction
}

// Revalue reconstructs the portfolio state by replaying the full deposit
// history against the prices recorded at deposit time.
//
// It is deterministic and idempotent, and it is the only writer of the
// instruments' Owned field: every call starts each instrument back at zero
// units. Per event it accumulates the deposited total and the cash portion,
// then converts each instrument's invested amount into units at the event's
// recorded price. A missing breakdown entry counts as zero. A missing or
// non-positive recorded price falls back to the instrument's current price
// (entries may predate price snapshotting); if that is non-positive too the
// conversion is skipped rather than treated as an error, since a non-positive
// price is itself invalid input.
func Revalue(registry *Registry, ledger *Ledger, opts ValuationOptions) *ValuationSnapshot {
	currency := ""
	owned := make(map[string]Quantity, registry.Len())
	for ins := range registry.All() {
		owned[ins.Code] = Q(0)
		currency = ins.Price.Currency()
	}

	invested := M(0, currency)
	cash := M(0, currency)
	for _, event := range ledger.Deposits() {
		invested = invested.Add(event.Amount)
		cash = cash.Add(event.Cash)

		for ins := range registry.All() {
			part, ok := event.Breakdown[ins.Code]
			if !ok || part.IsZero() {
				continue
			}
			price, ok := event.PriceAt(ins.Code)
			if !ok {
				price = ins.Price
			}
			if !price.IsPositive() {
				continue
			}
			owned[ins.Code] = owned[ins.Code].Add(part.DivPrice(price))
		}
	}

	snapshot := &ValuationSnapshot{
		Invested: invested,
		Cash:     cash,
		Goal:     opts.Goal,
	}

	value := cash
	for ins := range registry.All() {
		ins.Owned = owned[ins.Code]
		holdingValue := ins.Price.Mul(ins.Owned)
		value = value.Add(holdingValue)
		snapshot.Holdings = append(snapshot.Holdings, Holding{
			Code:   ins.Code,
			Name:   ins.Name,
			Ticker: ins.Ticker,
			Owned:  ins.Owned,
			Price:  ins.Price,
			Value:  holdingValue,
			Change: ins.Change,
		})
	}
	snapshot.MarketValue = value

	snapshot.ProfitLoss = value.Sub(invested)
	if invested.IsPositive() {
		snapshot.ProfitLossPercent = Percent(snapshot.ProfitLoss.Ratio(invested).value.InexactFloat64() * 100)
	}

	snapshot.TaxEstimate = M(0, currency)
	if snapshot.ProfitLoss.IsPositive() {
		snapshot.TaxEstimate = snapshot.ProfitLoss.Mul(opts.TaxRate)
	}
	snapshot.NetValue = value.Sub(snapshot.TaxEstimate)
	snapshot.CashInterest = cash.Mul(cashInterestRate)

	if opts.Goal.IsPositive() {
		snapshot.Progress = min(value.Ratio(opts.Goal).value.InexactFloat64(), 1.0)
	}
	return snapshot
}
