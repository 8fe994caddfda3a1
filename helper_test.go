package pacfolio

import "testing"

func eur(v float64) Money { return M(v, "EUR") }

// testRegistry returns a two-fund registry with round prices, easier to
// reason about than the real default funds.
func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(
		&Instrument{Code: "AAA", Name: "Fund A", Ticker: "AAA.AS", Share: Q(0.6), Price: eur(100)},
		&Instrument{Code: "BBB", Name: "Fund B", Ticker: "BBB.L", Share: Q(0.4), Price: eur(50)},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

// testPolicy is the stock threshold policy used across tests: a 500 monthly
// budget and a 50/50 surplus split.
func testPolicy() ThresholdPolicy {
	return ThresholdPolicy{MonthlyBudget: eur(500), InvestRatio: Q(0.5)}
}
