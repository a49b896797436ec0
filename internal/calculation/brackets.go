package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

// EvaluateIR applies the progressive annual income tax table to an
// annualized taxable amount: tax = (amount - threshold) * rate + baseTax
// for the highest tier whose threshold the amount exceeds. Brackets must
// be sorted by ascending threshold, which LoadRates guarantees.
func EvaluateIR(annual decimal.Decimal, brackets []domain.IRBracket) domain.BracketResult {
	if annual.IsNegative() {
		annual = decimal.Zero
	}

	tier := brackets[0]
	for _, b := range brackets[1:] {
		if annual.LessThanOrEqual(b.Threshold) {
			break
		}
		tier = b
	}

	annualTax := annual.Sub(tier.Threshold).Mul(tier.Rate).Add(tier.BaseTax)
	return domain.BracketResult{
		AnnualBase:     annual.Round(2),
		LowerThreshold: tier.Threshold,
		MarginalRate:   tier.Rate,
		BaseTax:        tier.BaseTax,
		AnnualTax:      annualTax.Round(2),
		MonthlyTax:     annualTax.Div(decimal.NewFromInt(12)).Round(2),
	}
}

// OccasionalRate selects the flat withholding rate for occasional income
// by projected annual net salary.
func OccasionalRate(projectedAnnual decimal.Decimal, tiers []domain.OccasionalTier) decimal.Decimal {
	rate := tiers[0].Rate
	for _, t := range tiers[1:] {
		if projectedAnnual.LessThanOrEqual(t.Threshold) {
			break
		}
		rate = t.Rate
	}
	return rate
}
