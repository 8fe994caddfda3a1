package pacfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Registry.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.instruments)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Registry.
func (r *Registry) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.instruments)
}

// MarshalJSON implements the json.Marshaler interface for Ledger.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.deposits)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Ledger.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &l.deposits)
}

// EncodePortfolio writes the complete portfolio snapshot as indented JSON:
// settings, instrument list (with the derived owned-units cache), and the
// full deposit ledger. Decode(Encode(p)) == p for every valid state.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	var obj jsonObjectWriter
	obj.Append("currency", p.Currency)
	obj.Append("monthlyBudget", p.MonthlyBudget)
	obj.Append("targetGoal", p.TargetGoal)
	obj.Append("taxRate", p.TaxRate)
	obj.Append("investRatio", p.InvestRatio)
	obj.Append("instruments", p.Registry)
	obj.Append("deposits", p.Ledger)

	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode portfolio: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent portfolio: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// DecodePortfolio reads a snapshot written by EncodePortfolio. Missing
// settings keep their defaults, so older snapshots load cleanly.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := NewPortfolio()
	var temp struct {
		Currency      string    `json:"currency"`
		MonthlyBudget *Money    `json:"monthlyBudget"`
		TargetGoal    *Money    `json:"targetGoal"`
		TaxRate       *Quantity `json:"taxRate"`
		InvestRatio   *Quantity `json:"investRatio"`
		Instruments   *Registry `json:"instruments"`
		Deposits      *Ledger   `json:"deposits"`
	}
	if err := json.NewDecoder(r).Decode(&temp); err != nil {
		return nil, fmt.Errorf("could not decode portfolio snapshot: %w", err)
	}
	if temp.Currency != "" {
		p.Currency = temp.Currency
	}
	if temp.MonthlyBudget != nil {
		p.MonthlyBudget = *temp.MonthlyBudget
	}
	if temp.TargetGoal != nil {
		p.TargetGoal = *temp.TargetGoal
	}
	if temp.TaxRate != nil {
		p.TaxRate = *temp.TaxRate
	}
	if temp.InvestRatio != nil {
		p.InvestRatio = *temp.InvestRatio
	}
	if temp.Instruments != nil {
		p.Registry = temp.Instruments
	}
	if temp.Deposits != nil {
		p.Ledger = temp.Deposits
	}
	return p, nil
}

// LoadPortfolio loads the snapshot stored at path, or returns a default
// portfolio when the file is absent or unparseable. Bad persisted data is
// treated as absent, never as a crash.
func LoadPortfolio(path string) *Portfolio {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		p := NewPortfolio()
		p.path = path
		return p
	}
	if err != nil {
		log.Printf("warning: could not open %q, starting from defaults: %v", path, err)
		p := NewPortfolio()
		p.path = path
		return p
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		log.Printf("warning: could not parse %q, starting from defaults: %v", path, err)
		p = NewPortfolio()
	}
	p.path = path
	return p
}

// SavePortfolio writes the snapshot to path, creating parent directories as
// needed.
func SavePortfolio(path string, p *Portfolio) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodePortfolio(f, p)
}

// DeleteStored removes the persisted snapshot. A missing file is not an
// error.
func DeleteStored(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete %q: %w", path, err)
	}
	return nil
}
