package pacfolio

import (
	"testing"
)

func depositOf(t *testing.T, registry *Registry, amount Money) DepositEvent {
	t.Helper()
	event, err := Allocate(MustParseDate("2026-01-15"), amount, testPolicy(), registry)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	return event
}

func TestRevalue_singleDeposit(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))

	s := Revalue(registry, ledger, ValuationOptions{TaxRate: Q(0.26), Goal: eur(10000)})

	if !s.Invested.Equal(eur(500)) {
		t.Errorf("Invested = %s, want 500", s.Invested)
	}
	if !s.Cash.IsZero() {
		t.Errorf("Cash = %s, want 0", s.Cash)
	}
	// 300 at 100 and 200 at 50.
	if got := registry.ByCode("AAA").Owned; !got.Equal(Q(3)) {
		t.Errorf("AAA owned = %s, want 3", got)
	}
	if got := registry.ByCode("BBB").Owned; !got.Equal(Q(4)) {
		t.Errorf("BBB owned = %s, want 4", got)
	}
	if !s.MarketValue.Equal(eur(500)) {
		t.Errorf("MarketValue = %s, want 500", s.MarketValue)
	}
	if !s.ProfitLoss.IsZero() {
		t.Errorf("ProfitLoss = %s, want 0", s.ProfitLoss)
	}
	if !s.TaxEstimate.IsZero() {
		t.Errorf("TaxEstimate = %s, want 0", s.TaxEstimate)
	}
	if s.Progress != 0.05 {
		t.Errorf("Progress = %v, want 0.05", s.Progress)
	}
}

func TestRevalue_isIdempotent(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))
	ledger.Append(depositOf(t, registry, eur(600)))

	opts := ValuationOptions{TaxRate: Q(0.26), Goal: eur(10000)}
	first := Revalue(registry, ledger, opts)
	second := Revalue(registry, ledger, opts)

	if !first.Invested.Equal(second.Invested) {
		t.Errorf("Invested drifted: %s then %s", first.Invested, second.Invested)
	}
	if !first.MarketValue.Equal(second.MarketValue) {
		t.Errorf("MarketValue drifted: %s then %s", first.MarketValue, second.MarketValue)
	}
	for i, h := range first.Holdings {
		if !h.Owned.Equal(second.Holdings[i].Owned) {
			t.Errorf("%s owned drifted: %s then %s", h.Code, h.Owned, second.Holdings[i].Owned)
		}
	}
}

func TestRevalue_gainsAndTax(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))

	// Fund A climbs from 100 to 110 after the purchase.
	registry.ByCode("AAA").Price = eur(110)

	s := Revalue(registry, ledger, ValuationOptions{TaxRate: Q(0.26), Goal: eur(10000)})

	// 3 units at 110, 4 units at 50.
	if !s.MarketValue.Equal(eur(530)) {
		t.Errorf("MarketValue = %s, want 530", s.MarketValue)
	}
	if !s.ProfitLoss.Equal(eur(30)) {
		t.Errorf("ProfitLoss = %s, want 30", s.ProfitLoss)
	}
	if !s.TaxEstimate.Equal(eur(7.8)) {
		t.Errorf("TaxEstimate = %s, want 7.80", s.TaxEstimate)
	}
	if !s.NetValue.Equal(eur(522.2)) {
		t.Errorf("NetValue = %s, want 522.20", s.NetValue)
	}
}

func TestRevalue_lossHasNoTax(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))

	registry.ByCode("AAA").Price = eur(80)

	s := Revalue(registry, ledger, ValuationOptions{TaxRate: Q(0.26)})
	if !s.ProfitLoss.Equal(eur(-60)) {
		t.Errorf("ProfitLoss = %s, want -60", s.ProfitLoss)
	}
	if !s.TaxEstimate.IsZero() {
		t.Errorf("TaxEstimate = %s, want 0 on a loss", s.TaxEstimate)
	}
	if !s.NetValue.Equal(s.MarketValue) {
		t.Errorf("NetValue = %s, want MarketValue %s", s.NetValue, s.MarketValue)
	}
}

func TestRevalue_emptyLedgerZeroesEverything(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))

	// First replay populates owned units, then the only deposit goes away.
	Revalue(registry, ledger, ValuationOptions{})
	if err := ledger.Remove(0); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	s := Revalue(registry, ledger, ValuationOptions{TaxRate: Q(0.26), Goal: eur(10000)})

	if !s.Invested.IsZero() || !s.Cash.IsZero() || !s.MarketValue.IsZero() {
		t.Errorf("got invested %s, cash %s, value %s, want all zero", s.Invested, s.Cash, s.MarketValue)
	}
	for ins := range registry.All() {
		if !ins.Owned.IsZero() {
			t.Errorf("%s owned = %s, want 0 after replay", ins.Code, ins.Owned)
		}
	}
	if s.Progress != 0 {
		t.Errorf("Progress = %v, want 0", s.Progress)
	}
}

func TestRevalue_usesRecordedPrices(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))

	// Today's prices doubled; the units bought back then must not change.
	registry.ByCode("AAA").Price = eur(200)
	registry.ByCode("BBB").Price = eur(100)

	Revalue(registry, ledger, ValuationOptions{})
	if got := registry.ByCode("AAA").Owned; !got.Equal(Q(3)) {
		t.Errorf("AAA owned = %s, want 3 at the recorded price", got)
	}
	if got := registry.ByCode("BBB").Owned; !got.Equal(Q(4)) {
		t.Errorf("BBB owned = %s, want 4 at the recorded price", got)
	}
}

func TestRevalue_fallsBackToCurrentPrice(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()

	// A legacy entry with no recorded prices at all.
	ledger.Append(DepositEvent{
		Date:      MustParseDate("2025-03-01"),
		Amount:    eur(500),
		Cash:      eur(0),
		Breakdown: map[string]Money{"AAA": eur(300), "BBB": eur(200)},
	})

	Revalue(registry, ledger, ValuationOptions{})
	if got := registry.ByCode("AAA").Owned; !got.Equal(Q(3)) {
		t.Errorf("AAA owned = %s, want 3 at the current price", got)
	}
}

func TestRevalue_skipsNonPositivePrice(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(DepositEvent{
		Date:      MustParseDate("2025-03-01"),
		Amount:    eur(500),
		Cash:      eur(200),
		Breakdown: map[string]Money{"AAA": eur(300)},
	})

	// No recorded price and no usable current price either.
	registry.ByCode("AAA").Price = eur(0)

	s := Revalue(registry, ledger, ValuationOptions{})
	if got := registry.ByCode("AAA").Owned; !got.IsZero() {
		t.Errorf("AAA owned = %s, want 0 when no usable price exists", got)
	}
	// The amount still counts as invested, it just bought no units.
	if !s.Invested.Equal(eur(500)) {
		t.Errorf("Invested = %s, want 500", s.Invested)
	}
}

func TestRevalue_progressClamped(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(500)))

	s := Revalue(registry, ledger, ValuationOptions{Goal: eur(100)})
	if s.Progress != 1.0 {
		t.Errorf("Progress = %v, want clamped to 1.0", s.Progress)
	}
}

func TestRevalue_cashInterestEstimate(t *testing.T) {
	registry := testRegistry(t)
	ledger := NewLedger()
	ledger.Append(depositOf(t, registry, eur(600))) // 50 goes to cash

	s := Revalue(registry, ledger, ValuationOptions{})
	if !s.CashInterest.Equal(eur(1)) {
		t.Errorf("CashInterest = %s, want 1.00 (2%% of 50)", s.CashInterest)
	}
}
