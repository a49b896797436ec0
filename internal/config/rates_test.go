package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicalabs/planilla/internal/domain"
)

func writeRatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRatesEmptyPathUsesDefaults(t *testing.T) {
	rates, err := LoadRates("")
	require.NoError(t, err)
	assert.Equal(t, 2025, rates.Metadata.FiscalYear)
	assert.True(t, rates.INSS.EmployeeRate.Equal(decimal.RequireFromString("0.07")))
	assert.Len(t, rates.IRBrackets, 5)
}

func TestLoadRatesMergesOverDefaults(t *testing.T) {
	path := writeRatesFile(t, `
metadata:
  fiscal_year: 2026
inss:
  employee_rate: "0.0725"
  salary_ceiling: "111175.82"
  employer_rate_small: "0.215"
  employer_rate_large: "0.225"
  large_headcount: 50
`)

	rates, err := LoadRates(path)
	require.NoError(t, err)

	assert.Equal(t, 2026, rates.Metadata.FiscalYear)
	assert.True(t, rates.INSS.EmployeeRate.Equal(decimal.RequireFromString("0.0725")))
	assert.True(t, rates.INSS.SalaryCeiling.Equal(decimal.RequireFromString("111175.82")))
	// Tables the file omits keep their defaults.
	assert.Len(t, rates.IRBrackets, 5)
	assert.Len(t, rates.OccasionalTiers, 5)
	assert.True(t, rates.INATECRate.Equal(decimal.RequireFromString("0.02")))
}

func TestLoadRatesReplacesTables(t *testing.T) {
	path := writeRatesFile(t, `
ir_brackets:
  - threshold: "0"
    rate: "0"
    base_tax: "0"
  - threshold: "120000"
    rate: "0.15"
    base_tax: "0"
`)

	rates, err := LoadRates(path)
	require.NoError(t, err)
	require.Len(t, rates.IRBrackets, 2)
	assert.True(t, rates.IRBrackets[1].Threshold.Equal(decimal.NewFromInt(120000)))
}

func TestLoadRatesMissingFile(t *testing.T) {
	_, err := LoadRates(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRatesInvalidYAML(t *testing.T) {
	path := writeRatesFile(t, "inss: [not a mapping")
	_, err := LoadRates(path)
	assert.Error(t, err)
}

func TestValidateRates(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Rates)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*domain.Rates) {},
		},
		{
			name:    "employee rate above one",
			mutate:  func(r *domain.Rates) { r.INSS.EmployeeRate = decimal.NewFromInt(7) },
			wantErr: "inss.employee_rate",
		},
		{
			name:    "negative ceiling",
			mutate:  func(r *domain.Rates) { r.INSS.SalaryCeiling = decimal.NewFromInt(-1) },
			wantErr: "salary_ceiling",
		},
		{
			name:    "zero headcount threshold",
			mutate:  func(r *domain.Rates) { r.INSS.LargeHeadcount = 0 },
			wantErr: "large_headcount",
		},
		{
			name:    "empty bracket table",
			mutate:  func(r *domain.Rates) { r.IRBrackets = nil },
			wantErr: "ir_brackets",
		},
		{
			name: "first bracket threshold not zero",
			mutate: func(r *domain.Rates) {
				r.IRBrackets[0].Threshold = decimal.NewFromInt(10)
			},
			wantErr: "must be zero",
		},
		{
			name: "bracket thresholds out of order",
			mutate: func(r *domain.Rates) {
				r.IRBrackets[2].Threshold = decimal.NewFromInt(50000)
			},
			wantErr: "strictly ascending",
		},
		{
			name: "negative base tax",
			mutate: func(r *domain.Rates) {
				r.IRBrackets[1].BaseTax = decimal.NewFromInt(-1)
			},
			wantErr: "base_tax",
		},
		{
			name:    "empty occasional table",
			mutate:  func(r *domain.Rates) { r.OccasionalTiers = nil },
			wantErr: "occasional_tiers",
		},
		{
			name: "occasional tier rate above one",
			mutate: func(r *domain.Rates) {
				r.OccasionalTiers[1].Rate = decimal.NewFromInt(2)
			},
			wantErr: "occasional_tiers[1].rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := domain.DefaultRates()
			tt.mutate(rates)
			err := ValidateRates(rates)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
