package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

var (
	twelve       = decimal.NewFromInt(12)
	indemnityCap = decimal.NewFromInt(150)
)

// SeveranceCalculator computes termination settlements (liquidación).
type SeveranceCalculator struct {
	rates *domain.Rates
}

// NewSeveranceCalculator creates a severance calculator. A nil rates
// argument selects the compiled-in defaults.
func NewSeveranceCalculator(rates *domain.Rates) *SeveranceCalculator {
	if rates == nil {
		rates = domain.DefaultRates()
	}
	return &SeveranceCalculator{rates: rates}
}

// Calculate produces the settlement breakdown for one termination case.
func (sc *SeveranceCalculator) Calculate(in domain.SeveranceInput) (*domain.SeveranceResult, error) {
	if err := validateSeveranceInput(in); err != nil {
		return nil, err
	}

	totalDays, err := CommercialDays(in.HireDate, in.TerminationDate)
	if err != nil {
		return nil, err
	}
	seniority := domain.Seniority{
		Years:     totalDays / 360,
		Months:    (totalDays % 360) / 30,
		Days:      (totalDays % 360) % 30,
		TotalDays: totalDays,
	}

	dailyRate := in.MonthlySalary.Div(thirty)

	indemnityDays, capApplied := indemnityDayCount(seniority, in.Reason)
	indemnity := indemnityDays.Mul(dailyRate).Round(2)

	aguinaldo, err := sc.aguinaldoProration(in, dailyRate)
	if err != nil {
		return nil, err
	}

	vacationPay := in.VacationDays.Mul(dailyRate).Round(2)
	pendingSalary := in.PendingDays.Mul(dailyRate).Round(2)

	totalIncome := indemnity.Add(aguinaldo).Add(vacationPay).Add(pendingSalary)

	// Indemnity and aguinaldo are exempt by law; INSS applies only to the
	// salary-like components.
	employeeRate := sc.rates.INSS.EmployeeRate
	inss := pendingSalary.Add(vacationPay).Mul(employeeRate).Round(2)

	// Ordinary IR: the theoretical full-month withholding, prorated by the
	// pending days actually worked.
	monthlyINSSBase := in.MonthlySalary
	if ceiling := sc.rates.INSS.SalaryCeiling; ceiling.IsPositive() && monthlyINSSBase.GreaterThan(ceiling) {
		monthlyINSSBase = ceiling
	}
	netMonthly := in.MonthlySalary.Sub(monthlyINSSBase.Mul(employeeRate))
	projectedAnnual := netMonthly.Mul(twelve)
	bracket := EvaluateIR(projectedAnnual, sc.rates.IRBrackets)
	irOrdinary := bracket.MonthlyTax.Mul(in.PendingDays).Div(thirty).Round(2)

	// Occasional IR: tiered flat rate on the vacation payout net of its
	// own INSS share.
	occasionalRate := OccasionalRate(projectedAnnual, sc.rates.OccasionalTiers)
	vacationNet := vacationPay.Sub(vacationPay.Mul(employeeRate))
	irOccasional := vacationNet.Mul(occasionalRate).Round(2)

	incomeTax := irOrdinary.Add(irOccasional)
	totalDeductions := inss.Add(incomeTax)

	return &domain.SeveranceResult{
		Seniority: seniority,
		DailyRate: dailyRate.Round(2),

		PendingSalary:   pendingSalary,
		Aguinaldo:       aguinaldo,
		VacationPay:     vacationPay,
		Indemnity:       indemnity,
		IndemnityDays:   indemnityDays.Round(4),
		LegalCapApplied: capApplied,
		TotalIncome:     totalIncome,

		INSS:                inss,
		IncomeTaxOrdinary:   irOrdinary,
		IncomeTaxOccasional: irOccasional,
		OccasionalRate:      occasionalRate,
		IncomeTax:           incomeTax,
		TotalDeductions:     totalDeductions,

		NetPay: totalIncome.Sub(totalDeductions),
	}, nil
}

// indemnityDayCount applies the Art. 45 tiering: 30 days per year for the
// first 3 full years, 20 days per year beyond, fractional months and days
// at the tier's monthly rate, capped at 150 days (5 months).
func indemnityDayCount(s domain.Seniority, reason domain.TerminationReason) (decimal.Decimal, bool) {
	if !reason.IndemnityEligible() {
		return decimal.Zero, false
	}

	years := decimal.NewFromInt(int64(s.Years))
	months := decimal.NewFromInt(int64(s.Months))
	extraDays := decimal.NewFromInt(int64(s.Days))

	var days, monthlyRate decimal.Decimal
	if s.Years < 3 {
		monthlyRate = thirty.Div(twelve)
		days = years.Mul(thirty)
	} else {
		monthlyRate = decimal.NewFromInt(20).Div(twelve)
		days = decimal.NewFromInt(90).
			Add(years.Sub(decimal.NewFromInt(3)).Mul(decimal.NewFromInt(20)))
	}
	days = days.Add(months.Mul(monthlyRate))
	days = days.Add(extraDays.Mul(monthlyRate.Div(thirty)))

	if days.GreaterThan(indemnityCap) {
		return indemnityCap, true
	}
	return days, false
}

// aguinaldoProration computes the 13th-month bonus owed for the current
// Dec 1 - Nov 30 cycle, anchored no earlier than the hire date.
func (sc *SeveranceCalculator) aguinaldoProration(in domain.SeveranceInput, dailyRate decimal.Decimal) (decimal.Decimal, error) {
	anchor := AccrualCycleStart(in.TerminationDate)
	if anchor.Before(in.HireDate) {
		anchor = in.HireDate
	}
	days, err := CommercialDays(anchor, in.TerminationDate)
	if err != nil {
		return decimal.Zero, err
	}
	// 2.5 bonus days accrue per 30-day month.
	return decimal.NewFromInt(int64(days)).Div(thirty).
		Mul(decimal.RequireFromString("2.5")).
		Mul(dailyRate).Round(2), nil
}

func validateSeveranceInput(in domain.SeveranceInput) error {
	if in.HireDate.IsZero() || in.TerminationDate.IsZero() {
		return fmt.Errorf("hire and termination dates are required: %w", domain.ErrInvalidDate)
	}
	if normalizeDay(in.TerminationDate).Before(normalizeDay(in.HireDate)) {
		return fmt.Errorf("termination date precedes hire date: %w", domain.ErrInvalidDate)
	}
	if !in.Reason.Valid() {
		return fmt.Errorf("termination reason %q: %w", in.Reason, domain.ErrUnsupportedTerminationReason)
	}
	amounts := map[string]decimal.Decimal{
		"monthly_salary": in.MonthlySalary,
		"vacation_days":  in.VacationDays,
		"pending_days":   in.PendingDays,
	}
	for field, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%s is negative: %w", field, domain.ErrInvalidAmount)
		}
	}
	return nil
}
