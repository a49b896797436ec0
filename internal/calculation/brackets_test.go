package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nicalabs/planilla/internal/domain"
)

func TestEvaluateIR(t *testing.T) {
	brackets := domain.DefaultRates().IRBrackets

	tests := []struct {
		name            string
		annual          string
		expectedTax     string
		expectedRate    string
		expectedMonthly string
	}{
		{
			name:            "below the exempt threshold",
			annual:          "90000",
			expectedTax:     "0",
			expectedRate:    "0",
			expectedMonthly: "0",
		},
		{
			name:            "exactly at the exempt threshold",
			annual:          "100000",
			expectedTax:     "0",
			expectedRate:    "0",
			expectedMonthly: "0",
		},
		{
			name:            "inside the 15 percent tier",
			annual:          "111600",
			expectedTax:     "1740",
			expectedRate:    "0.15",
			expectedMonthly: "145",
		},
		{
			name:            "tier boundary matches cumulative base tax",
			annual:          "200000",
			expectedTax:     "15000",
			expectedRate:    "0.15",
			expectedMonthly: "1250",
		},
		{
			name:            "inside the 20 percent tier",
			annual:          "250000",
			expectedTax:     "25000",
			expectedRate:    "0.20",
			expectedMonthly: "2083.33",
		},
		{
			name:            "top tier",
			annual:          "600000",
			expectedTax:     "112500",
			expectedRate:    "0.30",
			expectedMonthly: "9375",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateIR(decimal.RequireFromString(tt.annual), brackets)

			expectedTax := decimal.RequireFromString(tt.expectedTax)
			assert.True(t, result.AnnualTax.Equal(expectedTax),
				"expected annual tax %s, got %s", expectedTax, result.AnnualTax)

			expectedRate := decimal.RequireFromString(tt.expectedRate)
			assert.True(t, result.MarginalRate.Equal(expectedRate),
				"expected marginal rate %s, got %s", expectedRate, result.MarginalRate)

			expectedMonthly := decimal.RequireFromString(tt.expectedMonthly)
			assert.True(t, result.MonthlyTax.Equal(expectedMonthly),
				"expected monthly tax %s, got %s", expectedMonthly, result.MonthlyTax)
		})
	}
}

func TestEvaluateIRNegativeBaseIsZero(t *testing.T) {
	result := EvaluateIR(decimal.NewFromInt(-5000), domain.DefaultRates().IRBrackets)
	assert.True(t, result.AnnualTax.IsZero())
	assert.True(t, result.AnnualBase.IsZero())
}

func TestOccasionalRate(t *testing.T) {
	tiers := domain.DefaultRates().OccasionalTiers

	tests := []struct {
		annual   string
		expected string
	}{
		{"90000", "0.10"},
		{"100000", "0.10"},
		{"150000", "0.15"},
		{"250000", "0.20"},
		{"400000", "0.25"},
		{"600000", "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.annual, func(t *testing.T) {
			rate := OccasionalRate(decimal.RequireFromString(tt.annual), tiers)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, rate.Equal(expected), "expected %s, got %s", expected, rate)
		})
	}
}
