package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

var (
	thirty = decimal.NewFromInt(30)
	eight  = decimal.NewFromInt(8)
	two    = decimal.NewFromInt(2)
)

// PayrollCalculator computes a pay period's gross-to-net breakdown under
// the configured fiscal-year rates. It holds no per-call state; the same
// calculator can be reused across employees and goroutines.
type PayrollCalculator struct {
	rates *domain.Rates
}

// NewPayrollCalculator creates a payroll calculator. A nil rates argument
// selects the compiled-in defaults.
func NewPayrollCalculator(rates *domain.Rates) *PayrollCalculator {
	if rates == nil {
		rates = domain.DefaultRates()
	}
	return &PayrollCalculator{rates: rates}
}

// Rates exposes the tables the calculator was built with.
func (pc *PayrollCalculator) Rates() *domain.Rates { return pc.rates }

// Calculate produces the breakdown for one pay period. Validation runs
// before any arithmetic; on error no partial result is returned.
func (pc *PayrollCalculator) Calculate(in domain.PayrollInput) (*domain.PayrollResult, error) {
	if err := validatePayrollInput(in); err != nil {
		return nil, err
	}

	// The monthly equivalent only feeds the hourly rate and the daily
	// vacation rate; the period's nominal salary stays the base line.
	monthly := in.BaseSalary.Mul(in.Frequency.MonthlyMultiplier())
	hourlyRate := monthly.Div(thirty).Div(eight)
	overtimePay := hourlyRate.Mul(two).Mul(in.OvertimeHours).Round(2)
	vacationPay := monthly.Div(thirty).Mul(in.VacationDays).Round(2)

	base := in.BaseSalary.Round(2)
	commissions := in.Commissions.Round(2)
	incentives := in.Incentives.Round(2)
	viaticos := in.Viaticos.Round(2)
	otherIncome := in.OtherIncome.Round(2)

	totalIncome := base.Add(overtimePay).Add(commissions).Add(incentives).
		Add(viaticos).Add(vacationPay).Add(otherIncome)

	// Viáticos and non-deductible income are exempt from both INSS and IR.
	taxableBase := totalIncome.Sub(viaticos).Sub(otherIncome)
	inssBase := taxableBase
	if ceiling := pc.rates.INSS.SalaryCeiling; ceiling.IsPositive() && inssBase.GreaterThan(ceiling) {
		inssBase = ceiling
	}
	inss := inssBase.Mul(pc.rates.INSS.EmployeeRate).Round(2)

	periods := in.Frequency.PeriodsPerYear()
	irBase := taxableBase.Sub(inss)
	bracket := EvaluateIR(irBase.Mul(periods), pc.rates.IRBrackets)
	incomeTax := bracket.AnnualTax.Div(periods).Round(2)

	otherDeductions := decimal.Zero
	for _, d := range in.Deductions {
		otherDeductions = otherDeductions.Add(d.Amount.Round(2))
	}

	totalDeductions := inss.Add(incomeTax).Add(otherDeductions)

	employerRate := pc.rates.INSS.EmployerRate(in.Headcount)
	inssEmployer := taxableBase.Mul(employerRate).Round(2)
	inatec := taxableBase.Mul(pc.rates.INATECRate).Round(2)
	provision := taxableBase.Mul(pc.rates.AguinaldoFactor).Round(2)

	return &domain.PayrollResult{
		BaseSalary:  base,
		OvertimePay: overtimePay,
		Commissions: commissions,
		Incentives:  incentives,
		Viaticos:    viaticos,
		VacationPay: vacationPay,
		OtherIncome: otherIncome,
		TotalIncome: totalIncome,

		INSSEmployee:    inss,
		IncomeTax:       incomeTax,
		OtherDeductions: otherDeductions,
		TotalDeductions: totalDeductions,

		NetPay: totalIncome.Sub(totalDeductions),

		INSSEmployer:       inssEmployer,
		INATEC:             inatec,
		AguinaldoProvision: provision,
		TotalEmployerCost:  totalIncome.Add(inssEmployer).Add(inatec).Add(provision),

		Tax: bracket,
	}, nil
}

func validatePayrollInput(in domain.PayrollInput) error {
	if !in.Frequency.Valid() {
		return fmt.Errorf("pay frequency %q: %w", in.Frequency, domain.ErrUnsupportedFrequency)
	}
	amounts := map[string]decimal.Decimal{
		"base_salary":    in.BaseSalary,
		"overtime_hours": in.OvertimeHours,
		"commissions":    in.Commissions,
		"incentives":     in.Incentives,
		"viaticos":       in.Viaticos,
		"vacation_days":  in.VacationDays,
		"other_income":   in.OtherIncome,
	}
	for field, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%s is negative: %w", field, domain.ErrInvalidAmount)
		}
	}
	for _, d := range in.Deductions {
		if d.Amount.IsNegative() {
			return fmt.Errorf("deduction %q is negative: %w", d.Name, domain.ErrInvalidAmount)
		}
	}
	if in.Headcount < 0 {
		return fmt.Errorf("headcount is negative: %w", domain.ErrInvalidAmount)
	}
	return nil
}
