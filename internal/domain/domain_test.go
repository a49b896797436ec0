package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayFrequency(t *testing.T) {
	tests := []struct {
		frequency  PayFrequency
		valid      bool
		multiplier string
		periods    string
	}{
		{FrequencyMonthly, true, "1", "12"},
		{FrequencyBiweekly, true, "2", "24"},
		{FrequencyWeekly, true, "4.3333", "52"},
		{"hourly", false, "1", "12"},
		{"", false, "1", "12"},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.frequency.Valid())

			multiplier := decimal.RequireFromString(tt.multiplier)
			assert.True(t, tt.frequency.MonthlyMultiplier().Equal(multiplier),
				"expected multiplier %s, got %s", multiplier, tt.frequency.MonthlyMultiplier())

			periods := decimal.RequireFromString(tt.periods)
			assert.True(t, tt.frequency.PeriodsPerYear().Equal(periods),
				"expected %s periods, got %s", periods, tt.frequency.PeriodsPerYear())
		})
	}
}

func TestTerminationReason(t *testing.T) {
	tests := []struct {
		reason   TerminationReason
		valid    bool
		eligible bool
	}{
		{ReasonResignationWithNotice, true, true},
		{ReasonResignationImmediate, true, false},
		{ReasonDismissalArt45, true, true},
		{ReasonDismissalJustCause, true, false},
		{ReasonDeath, true, true},
		{"abandonment", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.reason.Valid())
			assert.Equal(t, tt.eligible, tt.reason.IndemnityEligible())
		})
	}
}

func TestTerminationReasonsCoversAllValues(t *testing.T) {
	assert.Len(t, TerminationReasons, 5)
	for _, r := range TerminationReasons {
		assert.True(t, r.Valid())
	}
}

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates()

	assert.True(t, rates.INSS.EmployeeRate.Equal(decimal.RequireFromString("0.07")))
	assert.True(t, rates.INSS.SalaryCeiling.IsZero(), "no ceiling by default")
	assert.True(t, rates.INATECRate.Equal(decimal.RequireFromString("0.02")))

	require.Len(t, rates.IRBrackets, 5)
	assert.True(t, rates.IRBrackets[0].Threshold.IsZero())
	for i := 1; i < len(rates.IRBrackets); i++ {
		assert.True(t, rates.IRBrackets[i].Threshold.GreaterThan(rates.IRBrackets[i-1].Threshold),
			"bracket thresholds must ascend")
		assert.True(t, rates.IRBrackets[i].Rate.GreaterThan(rates.IRBrackets[i-1].Rate),
			"bracket rates must ascend")
	}

	// Each base tax equals the tax accumulated through the prior tier.
	for i := 1; i < len(rates.IRBrackets); i++ {
		prev, cur := rates.IRBrackets[i-1], rates.IRBrackets[i]
		span := cur.Threshold.Sub(prev.Threshold)
		expected := prev.BaseTax.Add(span.Mul(prev.Rate))
		assert.True(t, cur.BaseTax.Equal(expected),
			"bracket %d base tax %s is not cumulative (expected %s)", i, cur.BaseTax, expected)
	}

	require.Len(t, rates.OccasionalTiers, 5)
	assert.True(t, rates.OccasionalTiers[0].Rate.Equal(decimal.RequireFromString("0.10")))
}

func TestEmployerRate(t *testing.T) {
	rates := DefaultRates().INSS

	small := decimal.RequireFromString("0.215")
	large := decimal.RequireFromString("0.225")
	assert.True(t, rates.EmployerRate(0).Equal(small))
	assert.True(t, rates.EmployerRate(49).Equal(small))
	assert.True(t, rates.EmployerRate(50).Equal(large))
	assert.True(t, rates.EmployerRate(500).Equal(large))
}

func TestEmployeeShaping(t *testing.T) {
	e := &Employee{
		ID:            7,
		Name:          "Carmen Duarte",
		MonthlySalary: decimal.NewFromInt(15000),
		HireDate:      time.Date(2021, time.May, 10, 0, 0, 0, 0, time.UTC),
		VacationTaken: decimal.NewFromInt(12),
	}

	in := e.PayrollInput(60)
	assert.True(t, in.BaseSalary.Equal(e.MonthlySalary))
	assert.Equal(t, FrequencyMonthly, in.Frequency)
	assert.Equal(t, 60, in.Headcount)

	termination := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	sev := e.SeveranceInput(termination, decimal.NewFromInt(5), decimal.NewFromInt(28), ReasonDismissalArt45)
	assert.Equal(t, e.HireDate, sev.HireDate)
	assert.Equal(t, termination, sev.TerminationDate)
	assert.True(t, sev.MonthlySalary.Equal(e.MonthlySalary))
	assert.Equal(t, ReasonDismissalArt45, sev.Reason)
}
