package pacfolio

import (
	"errors"
	"testing"
)

func TestDepositEvent_Validate(t *testing.T) {
	valid := DepositEvent{
		Date:      MustParseDate("2026-01-15"),
		Amount:    eur(500),
		Cash:      eur(100),
		Breakdown: map[string]Money{"AAA": eur(240), "BBB": eur(160)},
	}

	testCases := []struct {
		name    string
		mutate  func(e *DepositEvent)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(e *DepositEvent) {},
		},
		{
			name:    "zero amount",
			mutate:  func(e *DepositEvent) { e.Amount = eur(0) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative cash",
			mutate:  func(e *DepositEvent) { e.Cash = eur(-10) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "parts do not add up",
			mutate:  func(e *DepositEvent) { e.Cash = eur(200) },
			wantErr: ErrAllocationMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := valid
			tc.mutate(&event)
			err := event.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDepositEvent_PriceAt(t *testing.T) {
	event := DepositEvent{
		Prices: map[string]Money{
			"AAA": eur(100),
			"BBB": eur(0),
		},
	}

	if price, ok := event.PriceAt("AAA"); !ok || !price.Equal(eur(100)) {
		t.Errorf("PriceAt(AAA) = %s, %v, want 100, true", price, ok)
	}
	// A recorded zero price is as good as no price.
	if _, ok := event.PriceAt("BBB"); ok {
		t.Error("PriceAt(BBB) = ok for a zero price, want false")
	}
	if _, ok := event.PriceAt("ZZZ"); ok {
		t.Error("PriceAt(ZZZ) = ok for a missing code, want false")
	}
}
