package domain

import (
	"github.com/shopspring/decimal"
)

// Rates contains every statutory rate and table the calculators apply.
// It is loaded from rates.yaml and merged with the compiled-in defaults so
// a new fiscal year is a data change, not a code change.
type Rates struct {
	Metadata        RatesMetadata    `yaml:"metadata" json:"metadata"`
	INSS            INSSRates        `yaml:"inss" json:"inss"`
	INATECRate      decimal.Decimal  `yaml:"inatec_rate" json:"inatec_rate"`
	AguinaldoFactor decimal.Decimal  `yaml:"aguinaldo_factor" json:"aguinaldo_factor"`
	IRBrackets      []IRBracket      `yaml:"ir_brackets" json:"ir_brackets"`
	OccasionalTiers []OccasionalTier `yaml:"occasional_tiers" json:"occasional_tiers"`
}

// RatesMetadata records which fiscal year the tables describe.
type RatesMetadata struct {
	FiscalYear  int    `yaml:"fiscal_year" json:"fiscal_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// INSSRates contains the social security rates and the employer-side
// headcount split.
type INSSRates struct {
	EmployeeRate decimal.Decimal `yaml:"employee_rate" json:"employee_rate"`
	// SalaryCeiling caps the employee taxable base when positive; zero
	// means no ceiling is in effect.
	SalaryCeiling     decimal.Decimal `yaml:"salary_ceiling" json:"salary_ceiling"`
	EmployerRateSmall decimal.Decimal `yaml:"employer_rate_small" json:"employer_rate_small"`
	EmployerRateLarge decimal.Decimal `yaml:"employer_rate_large" json:"employer_rate_large"`
	// LargeHeadcount is the employee count at which the large-company
	// employer rate starts to apply.
	LargeHeadcount int `yaml:"large_headcount" json:"large_headcount"`
}

// EmployerRate selects the employer INSS rate by company headcount.
func (r INSSRates) EmployerRate(headcount int) decimal.Decimal {
	if headcount >= r.LargeHeadcount {
		return r.EmployerRateLarge
	}
	return r.EmployerRateSmall
}

// IRBracket is one tier of the progressive annual income tax table.
// Threshold is the lower bound of the tier; BaseTax is the cumulative tax
// owed on income below it.
type IRBracket struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	BaseTax   decimal.Decimal `yaml:"base_tax" json:"base_tax"`
}

// OccasionalTier maps a projected annual net salary threshold to the flat
// withholding rate applied to occasional income (vacation paid at
// settlement). Whether the sub-100k tier should be 0% instead of 10% is
// unsettled policy; it is data here so legal review can change it.
type OccasionalTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// DefaultRates returns the 2025 statutory tables.
func DefaultRates() *Rates {
	return &Rates{
		Metadata: RatesMetadata{
			FiscalYear:  2025,
			Description: "Nicaragua: INSS, INATEC and IR tables",
		},
		INSS: INSSRates{
			EmployeeRate:      decimal.RequireFromString("0.07"),
			SalaryCeiling:     decimal.Zero,
			EmployerRateSmall: decimal.RequireFromString("0.215"),
			EmployerRateLarge: decimal.RequireFromString("0.225"),
			LargeHeadcount:    50,
		},
		INATECRate:      decimal.RequireFromString("0.02"),
		AguinaldoFactor: decimal.NewFromInt(1).Div(decimal.NewFromInt(12)),
		IRBrackets: []IRBracket{
			{Threshold: decimal.Zero, Rate: decimal.Zero, BaseTax: decimal.Zero},
			{Threshold: decimal.NewFromInt(100000), Rate: decimal.RequireFromString("0.15"), BaseTax: decimal.Zero},
			{Threshold: decimal.NewFromInt(200000), Rate: decimal.RequireFromString("0.20"), BaseTax: decimal.NewFromInt(15000)},
			{Threshold: decimal.NewFromInt(350000), Rate: decimal.RequireFromString("0.25"), BaseTax: decimal.NewFromInt(45000)},
			{Threshold: decimal.NewFromInt(500000), Rate: decimal.RequireFromString("0.30"), BaseTax: decimal.NewFromInt(82500)},
		},
		OccasionalTiers: []OccasionalTier{
			{Threshold: decimal.Zero, Rate: decimal.RequireFromString("0.10")},
			{Threshold: decimal.NewFromInt(100000), Rate: decimal.RequireFromString("0.15")},
			{Threshold: decimal.NewFromInt(200000), Rate: decimal.RequireFromString("0.20")},
			{Threshold: decimal.NewFromInt(350000), Rate: decimal.RequireFromString("0.25")},
			{Threshold: decimal.NewFromInt(500000), Rate: decimal.RequireFromString("0.30")},
		},
	}
}
