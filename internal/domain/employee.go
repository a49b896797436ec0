package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the stored employee record the CLI keeps in the local
// database. The calculation engine never consumes it directly; callers
// shape it into PayrollInput or SeveranceInput.
type Employee struct {
	ID            int64           `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	MonthlySalary decimal.Decimal `yaml:"monthly_salary" json:"monthly_salary"`
	HireDate      time.Time       `yaml:"hire_date" json:"hire_date"`
	// VacationTaken is the running count of vacation days already used.
	VacationTaken decimal.Decimal `yaml:"vacation_taken" json:"vacation_taken"`
}

// PayrollInput shapes the record into a plain monthly pay-period input.
func (e *Employee) PayrollInput(headcount int) PayrollInput {
	return PayrollInput{
		BaseSalary: e.MonthlySalary,
		Frequency:  FrequencyMonthly,
		Headcount:  headcount,
	}
}

// SeveranceInput shapes the record into a settlement case. Accrued
// vacation must be supplied by the caller since it depends on the
// termination date.
func (e *Employee) SeveranceInput(terminationDate time.Time, vacationDays, pendingDays decimal.Decimal, reason TerminationReason) SeveranceInput {
	return SeveranceInput{
		HireDate:        e.HireDate,
		TerminationDate: terminationDate,
		MonthlySalary:   e.MonthlySalary,
		VacationDays:    vacationDays,
		PendingDays:     pendingDays,
		Reason:          reason,
	}
}
