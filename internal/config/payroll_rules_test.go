package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRules = `
currency: USD
brackets:
  - up_to: 100000
    rate: 0.0
  - up_to: 400000
    rate: 0.10
  - up_to: 0
    rate: 0.25
contribution:
  rate: 0.05
  cap: 500000
`

func TestParsePayrollRules_Tax(t *testing.T) {
	rules, err := ParsePayrollRules([]byte(sampleRules))
	require.NoError(t, err)

	tests := []struct {
		name    string
		taxable int64
		want    int64
	}{
		{"zero", 0, 0},
		{"negative", -500, 0},
		{"inside free bracket", 80000, 0},
		{"second bracket", 250000, 15000},
		{"exact bracket edge", 400000, 30000},
		{"top bracket", 600000, 80000},
		{"rounds half away from zero", 100005, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Tax(tt.taxable))
		})
	}
}

func TestPayrollRules_BoundedLastBracketAppliesToExcess(t *testing.T) {
	rules := &PayrollRules{Brackets: []TaxBracket{{UpTo: 1000, Rate: 0}, {UpTo: 2000, Rate: 0.5}}}
	require.NoError(t, rules.Validate())

	assert.Equal(t, int64(1500), rules.Tax(4000))
}

func TestPayrollRules_Contribution(t *testing.T) {
	rules, err := ParsePayrollRules([]byte(sampleRules))
	require.NoError(t, err)

	assert.Equal(t, int64(10000), rules.ContributionFor(200000))
	assert.Equal(t, int64(25000), rules.ContributionFor(900000))
	assert.Equal(t, int64(0), rules.ContributionFor(0))
}

func TestPayrollRules_Validate(t *testing.T) {
	tests := []struct {
		name  string
		rules PayrollRules
	}{
		{"no brackets", PayrollRules{}},
		{"open bracket not last", PayrollRules{Brackets: []TaxBracket{{UpTo: 0, Rate: 0.1}, {UpTo: 100, Rate: 0.2}}}},
		{"not increasing", PayrollRules{Brackets: []TaxBracket{{UpTo: 200, Rate: 0.1}, {UpTo: 100, Rate: 0.2}}}},
		{"rate above one", PayrollRules{Brackets: []TaxBracket{{UpTo: 0, Rate: 1.5}}}},
		{"bad contribution", PayrollRules{Brackets: []TaxBracket{{UpTo: 0, Rate: 0.1}}, Contribution: Contribution{Rate: -0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.rules.Validate())
		})
	}
}

func TestLoadPayrollRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRules), 0o600))

	rules, err := LoadPayrollRules(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", rules.Currency)
	assert.Len(t, rules.Brackets, 3)

	_, err = LoadPayrollRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParsePayrollRules([]byte("brackets: [::"))
	assert.Error(t, err)
}
