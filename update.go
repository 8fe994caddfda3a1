package pacfolio

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// QuoteProvider supplies the latest price and previous close for an external
// ticker symbol. The core depends only on this two-number contract, not on
// any particular market-data service.
type QuoteProvider interface {
	Latest(ctx context.Context, ticker string) (price, previousClose float64, err error)
}

// RefreshPrices updates every instrument's price and day change from the
// provider, one instrument at a time. It is best effort: a failed fetch
// leaves that instrument untouched and never aborts the loop; all failures
// are joined into the returned error. Each update is an independent,
// idempotent overwrite, so overlapping refresh cycles are harmless.
//
// The ledger is never touched: recorded purchase prices stay as they were.
func (p *Portfolio) RefreshPrices(ctx context.Context, provider QuoteProvider) error {
	var errs error
	for ins := range p.Registry.All() {
		price, prevClose, err := provider.Latest(ctx, ins.Ticker)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s (%s): %w: %v", ins.Code, ins.Ticker, ErrPriceUnavailable, err))
			continue
		}
		if price <= 0 {
			errs = errors.Join(errs, fmt.Errorf("%s (%s): got price %v: %w", ins.Code, ins.Ticker, price, ErrPriceUnavailable))
			continue
		}
		ins.Price = M(price, p.Currency)
		if prevClose > 0 {
			ins.Change = Percent((price - prevClose) / prevClose * 100)
		} else {
			ins.Change = 0
		}
	}
	if err := p.commit(); err != nil {
		// A persist failure is worth more than a quote failure.
		log.Printf("could not persist refreshed prices: %v", err)
		errs = errors.Join(errs, err)
	}
	return errs
}
