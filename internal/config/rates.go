package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nicalabs/planilla/internal/domain"
)

// LoadRates reads a fiscal-year rates file and merges it over the
// compiled-in defaults: any field the file omits keeps its default value,
// tables the file provides replace the default tables wholesale.
func LoadRates(filename string) (*domain.Rates, error) {
	rates := domain.DefaultRates()
	if filename == "" {
		return rates, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, rates); err != nil {
		return nil, fmt.Errorf("failed to parse rates file %s: %w", filename, err)
	}
	if err := ValidateRates(rates); err != nil {
		return nil, fmt.Errorf("rates file %s: %w", filename, err)
	}
	return rates, nil
}

// ValidateRates checks the structural invariants the calculators rely on.
func ValidateRates(rates *domain.Rates) error {
	if err := validateRate("inss.employee_rate", rates.INSS.EmployeeRate); err != nil {
		return err
	}
	if err := validateRate("inss.employer_rate_small", rates.INSS.EmployerRateSmall); err != nil {
		return err
	}
	if err := validateRate("inss.employer_rate_large", rates.INSS.EmployerRateLarge); err != nil {
		return err
	}
	if err := validateRate("inatec_rate", rates.INATECRate); err != nil {
		return err
	}
	if rates.INSS.SalaryCeiling.IsNegative() {
		return fmt.Errorf("inss.salary_ceiling cannot be negative")
	}
	if rates.INSS.LargeHeadcount <= 0 {
		return fmt.Errorf("inss.large_headcount must be positive")
	}

	if len(rates.IRBrackets) == 0 {
		return fmt.Errorf("ir_brackets must not be empty")
	}
	if !rates.IRBrackets[0].Threshold.IsZero() {
		return fmt.Errorf("first ir_bracket threshold must be zero")
	}
	for i, b := range rates.IRBrackets {
		if err := validateRate(fmt.Sprintf("ir_brackets[%d].rate", i), b.Rate); err != nil {
			return err
		}
		if b.BaseTax.IsNegative() {
			return fmt.Errorf("ir_brackets[%d].base_tax cannot be negative", i)
		}
		if i > 0 && !b.Threshold.GreaterThan(rates.IRBrackets[i-1].Threshold) {
			return fmt.Errorf("ir_brackets thresholds must be strictly ascending")
		}
	}

	if len(rates.OccasionalTiers) == 0 {
		return fmt.Errorf("occasional_tiers must not be empty")
	}
	if !rates.OccasionalTiers[0].Threshold.IsZero() {
		return fmt.Errorf("first occasional_tier threshold must be zero")
	}
	for i, t := range rates.OccasionalTiers {
		if err := validateRate(fmt.Sprintf("occasional_tiers[%d].rate", i), t.Rate); err != nil {
			return err
		}
		if i > 0 && !t.Threshold.GreaterThan(rates.OccasionalTiers[i-1].Threshold) {
			return fmt.Errorf("occasional_tiers thresholds must be strictly ascending")
		}
	}
	return nil
}

func validateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1", field)
	}
	return nil
}
