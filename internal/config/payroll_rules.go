package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// TaxBracket taxes the slice of income up to UpTo (minor units) at Rate.
// UpTo == 0 marks the open-ended top bracket.
type TaxBracket struct {
	UpTo int64   `yaml:"up_to"`
	Rate float64 `yaml:"rate"`
}

type Contribution struct {
	Rate float64 `yaml:"rate"`
	Cap  int64   `yaml:"cap"`
}

type PayrollRules struct {
	Currency     string       `yaml:"currency"`
	Brackets     []TaxBracket `yaml:"brackets"`
	Contribution Contribution `yaml:"contribution"`
}

func LoadPayrollRules(path string) (*PayrollRules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payroll rules: %w", err)
	}
	return ParsePayrollRules(raw)
}

func ParsePayrollRules(raw []byte) (*PayrollRules, error) {
	var rules PayrollRules
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("parse payroll rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (r *PayrollRules) Validate() error {
	if len(r.Brackets) == 0 {
		return fmt.Errorf("payroll rules: at least one tax bracket is required")
	}

	var prev int64
	for i, b := range r.Brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("payroll rules: bracket %d rate %.4f out of range", i, b.Rate)
		}
		last := i == len(r.Brackets)-1
		if b.UpTo == 0 {
			if !last {
				return fmt.Errorf("payroll rules: only the last bracket may be open-ended")
			}
			continue
		}
		if b.UpTo <= prev {
			return fmt.Errorf("payroll rules: bracket %d must be above %d", i, prev)
		}
		prev = b.UpTo
	}

	if r.Contribution.Rate < 0 || r.Contribution.Rate > 1 {
		return fmt.Errorf("payroll rules: contribution rate %.4f out of range", r.Contribution.Rate)
	}
	if r.Contribution.Cap < 0 {
		return fmt.Errorf("payroll rules: contribution cap must not be negative")
	}
	return nil
}

// Tax applies the progressive brackets to a monthly taxable amount.
func (r *PayrollRules) Tax(taxable int64) int64 {
	if taxable <= 0 {
		return 0
	}

	var tax float64
	var lower int64
	for i, b := range r.Brackets {
		if taxable <= lower {
			break
		}
		upper := b.UpTo
		if upper == 0 || upper > taxable || i == len(r.Brackets)-1 {
			upper = taxable
		}
		tax += float64(upper-lower) * b.Rate
		lower = upper
	}
	return round(tax)
}

// ContributionFor is the capped social contribution on gross pay.
func (r *PayrollRules) ContributionFor(gross int64) int64 {
	if gross <= 0 {
		return 0
	}
	base := gross
	if r.Contribution.Cap > 0 && base > r.Contribution.Cap {
		base = r.Contribution.Cap
	}
	return round(float64(base) * r.Contribution.Rate)
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
