package pacfolio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodePortfolio(t *testing.T) {
	p := NewPortfolio()
	p.Registry = testRegistry(t)
	p.MonthlyBudget = eur(750)
	p.TargetGoal = eur(20000)
	if err := p.SubmitDeposit(MustParseDate("2026-01-15"), eur(900), p.ThresholdPolicy()); err != nil {
		t.Fatalf("SubmitDeposit() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("EncodePortfolio() error = %v", err)
	}

	got, err := DecodePortfolio(&buf)
	if err != nil {
		t.Fatalf("DecodePortfolio() error = %v", err)
	}

	if !got.MonthlyBudget.Equal(p.MonthlyBudget) {
		t.Errorf("MonthlyBudget = %s, want %s", got.MonthlyBudget, p.MonthlyBudget)
	}
	if !got.TargetGoal.Equal(p.TargetGoal) {
		t.Errorf("TargetGoal = %s, want %s", got.TargetGoal, p.TargetGoal)
	}
	if !got.TaxRate.Equal(p.TaxRate) {
		t.Errorf("TaxRate = %s, want %s", got.TaxRate, p.TaxRate)
	}
	if got.Registry.Len() != 2 {
		t.Fatalf("Registry.Len() = %d, want 2", got.Registry.Len())
	}
	wantEvent, _ := p.Ledger.At(0)
	gotEvent, _ := got.Ledger.At(0)
	if !gotEvent.Equal(wantEvent) {
		t.Errorf("deposit did not round-trip:\n got %+v\nwant %+v", gotEvent, wantEvent)
	}
}

func TestEncodePortfolio_isDeterministic(t *testing.T) {
	p := NewPortfolio()
	p.Registry = testRegistry(t)
	if err := p.SubmitDeposit(MustParseDate("2026-01-15"), eur(600), p.ThresholdPolicy()); err != nil {
		t.Fatalf("SubmitDeposit() error = %v", err)
	}

	var a, b bytes.Buffer
	if err := EncodePortfolio(&a, p); err != nil {
		t.Fatalf("EncodePortfolio() error = %v", err)
	}
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatalf("EncodePortfolio() error = %v", err)
	}
	if a.String() != b.String() {
		t.Error("two encodings of the same portfolio differ")
	}
}

func TestDecodePortfolio_missingFieldsKeepDefaults(t *testing.T) {
	// An older snapshot without settings.
	r := strings.NewReader(`{"deposits": []}`)
	p, err := DecodePortfolio(r)
	if err != nil {
		t.Fatalf("DecodePortfolio() error = %v", err)
	}
	if !p.MonthlyBudget.Equal(eur(500)) {
		t.Errorf("MonthlyBudget = %s, want default 500", p.MonthlyBudget)
	}
	if !p.TaxRate.Equal(DefaultTaxRate) {
		t.Errorf("TaxRate = %s, want default", p.TaxRate)
	}
	if p.Registry.Len() == 0 {
		t.Error("Registry is empty, want the default funds")
	}
}

func TestLoadPortfolio_absentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	p := LoadPortfolio(path)
	if p.Ledger.Len() != 0 {
		t.Errorf("Ledger.Len() = %d, want 0", p.Ledger.Len())
	}
	if p.Path() != path {
		t.Errorf("Path() = %q, want %q", p.Path(), path)
	}
}

func TestLoadPortfolio_corruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := SavePortfolio(path, NewPortfolio()); err != nil {
		t.Fatalf("SavePortfolio() error = %v", err)
	}
	// Corrupt it.
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	p := LoadPortfolio(path)
	if !p.MonthlyBudget.Equal(eur(500)) {
		t.Errorf("MonthlyBudget = %s, want default after corrupt load", p.MonthlyBudget)
	}
}

func TestDeleteStored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := SavePortfolio(path, NewPortfolio()); err != nil {
		t.Fatalf("SavePortfolio() error = %v", err)
	}
	if err := DeleteStored(path); err != nil {
		t.Fatalf("DeleteStored() error = %v", err)
	}
	// Deleting again is fine.
	if err := DeleteStored(path); err != nil {
		t.Errorf("DeleteStored() on missing file error = %v", err)
	}
}
