package pacfolio

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Instrument is a tracked exchange-traded fund.
//
// Owned is a display cache: it is written exclusively by Revalue, which
// recomputes it from the full deposit history. Nothing else may touch it.
type Instrument struct {
	Code   string   // ISIN, the instrument's identity
	Name   string   // display name
	Ticker string   // external quote symbol
	Share  Quantity // target allocation share in [0,1]
	Price  Money    // last known price
	Change Percent  // last known day change
	Owned  Quantity // units held, derived by replay
}

// MarshalJSON implements the json.Marshaler interface for Instrument.
func (i Instrument) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("code", i.Code)
	w.Append("name", i.Name)
	w.Append("ticker", i.Ticker)
	w.Append("share", i.Share)
	w.Append("price", i.Price)
	w.Append("change", float64(i.Change))
	w.Append("owned", i.Owned)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Instrument.
func (i *Instrument) UnmarshalJSON(data []byte) error {
	var temp struct {
		Code   string   `json:"code"`
		Name   string   `json:"name"`
		Ticker string   `json:"ticker"`
		Share  Quantity `json:"share"`
		Price  Money    `json:"price"`
		Change float64  `json:"change"`
		Owned  Quantity `json:"owned"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*i = Instrument{
		Code:   temp.Code,
		Name:   temp.Name,
		Ticker: temp.Ticker,
		Share:  temp.Share,
		Price:  temp.Price,
		Change: Percent(temp.Change),
		Owned:  temp.Owned,
	}
	return nil
}

// Registry is the ordered list of tracked instruments. Order is a display
// concern only: every lookup goes through the instrument code.
type Registry struct {
	instruments []*Instrument
}

// NewRegistry creates a registry from the given instruments. Target shares
// must each lie in [0,1] and sum to at most 1; the remainder is implicitly
// cash.
func NewRegistry(instruments ...*Instrument) (*Registry, error) {
	total := Q(0)
	for _, ins := range instruments {
		if ins.Code == "" {
			return nil, fmt.Errorf("instrument %q has no code", ins.Name)
		}
		if ins.Share.IsNegative() || ins.Share.GreaterThan(Q(1)) {
			return nil, fmt.Errorf("instrument %s share %s out of [0,1]", ins.Code, ins.Share)
		}
		total = total.Add(ins.Share)
	}
	if total.GreaterThan(Q(1)) {
		return nil, fmt.Errorf("target shares sum to %s, more than 1", total)
	}
	return &Registry{instruments: instruments}, nil
}

// DefaultRegistry returns the stock three-fund accumulation plan.
func DefaultRegistry() *Registry {
	return &Registry{instruments: []*Instrument{
		{Code: "IE00B4L5Y983", Name: "MSCI World", Ticker: "IWDA.AS", Share: Q(decimal.NewFromFloat(0.60)), Price: M(decimal.NewFromFloat(92.45), "EUR")},
		{Code: "IE00BKM4GZ66", Name: "MSCI EM IMI", Ticker: "EIMI.L", Share: Q(decimal.NewFromFloat(0.20)), Price: M(decimal.NewFromFloat(31.12), "EUR")},
		{Code: "IE00B579F325", Name: "Global Bond", Ticker: "VAGF.DE", Share: Q(decimal.NewFromFloat(0.20)), Price: M(decimal.NewFromFloat(4.85), "EUR")},
	}}
}

// Len returns the number of instruments.
func (r *Registry) Len() int { return len(r.instruments) }

// ByCode returns the instrument declared with this code, or nil if unknown.
func (r *Registry) ByCode(code string) *Instrument {
	for _, ins := range r.instruments {
		if ins.Code == code {
			return ins
		}
	}
	return nil
}

// All iterates over instruments in registry order.
func (r *Registry) All() iter.Seq[*Instrument] {
	return func(yield func(*Instrument) bool) {
		for _, ins := range r.instruments {
			if !yield(ins) {
				return
			}
		}
	}
}

// CashShare returns the share of new investment not covered by any
// instrument's target share.
func (r *Registry) CashShare() Quantity {
	share := Q(1)
	for _, ins := range r.instruments {
		share = share.Sub(ins.Share)
	}
	return share
}
