package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TerminationReason is the legal ground for ending the employment
// relationship. It gates indemnity eligibility (Art. 45).
type TerminationReason string

const (
	ReasonResignationWithNotice TerminationReason = "resignation_with_notice"
	ReasonResignationImmediate  TerminationReason = "resignation_immediate"
	ReasonDismissalArt45        TerminationReason = "dismissal_art45"
	ReasonDismissalJustCause    TerminationReason = "dismissal_just_cause"
	ReasonDeath                 TerminationReason = "death"
)

// TerminationReasons lists every supported reason, in display order.
var TerminationReasons = []TerminationReason{
	ReasonResignationWithNotice,
	ReasonResignationImmediate,
	ReasonDismissalArt45,
	ReasonDismissalJustCause,
	ReasonDeath,
}

// Valid reports whether the reason is one of the enumerated values.
func (r TerminationReason) Valid() bool {
	switch r {
	case ReasonResignationWithNotice, ReasonResignationImmediate,
		ReasonDismissalArt45, ReasonDismissalJustCause, ReasonDeath:
		return true
	}
	return false
}

// IndemnityEligible reports whether the reason entitles the employee to
// the Art. 45 seniority indemnity. Immediate resignation and dismissal
// for just cause forfeit it.
func (r TerminationReason) IndemnityEligible() bool {
	switch r {
	case ReasonResignationWithNotice, ReasonDismissalArt45, ReasonDeath:
		return true
	}
	return false
}

// SeveranceInput describes a termination settlement case.
type SeveranceInput struct {
	HireDate        time.Time         `yaml:"hire_date" json:"hire_date"`
	TerminationDate time.Time         `yaml:"termination_date" json:"termination_date"`
	MonthlySalary   decimal.Decimal   `yaml:"monthly_salary" json:"monthly_salary"`
	VacationDays    decimal.Decimal   `yaml:"vacation_days" json:"vacation_days"`
	PendingDays     decimal.Decimal   `yaml:"pending_days" json:"pending_days"`
	Reason          TerminationReason `yaml:"reason" json:"reason"`
}

// Seniority is tenure broken down on the 30/360 convention.
type Seniority struct {
	Years     int `yaml:"years" json:"years"`
	Months    int `yaml:"months" json:"months"`
	Days      int `yaml:"days" json:"days"`
	TotalDays int `yaml:"total_days" json:"total_days"`
}

// SeveranceResult is the full liquidación breakdown. Amounts are rounded
// to 2 decimal places; TotalIncome and NetPay reconcile exactly against
// their components.
type SeveranceResult struct {
	Seniority Seniority       `yaml:"seniority" json:"seniority"`
	DailyRate decimal.Decimal `yaml:"daily_rate" json:"daily_rate"`

	// Income.
	PendingSalary decimal.Decimal `yaml:"pending_salary" json:"pending_salary"`
	Aguinaldo     decimal.Decimal `yaml:"aguinaldo" json:"aguinaldo"`
	VacationPay   decimal.Decimal `yaml:"vacation_pay" json:"vacation_pay"`
	Indemnity     decimal.Decimal `yaml:"indemnity" json:"indemnity"`
	IndemnityDays decimal.Decimal `yaml:"indemnity_days" json:"indemnity_days"`
	// LegalCapApplied is set when the indemnity was clamped to the
	// 150-day (5 month) statutory maximum.
	LegalCapApplied bool            `yaml:"legal_cap_applied" json:"legal_cap_applied"`
	TotalIncome     decimal.Decimal `yaml:"total_income" json:"total_income"`

	// Deductions. Indemnity and aguinaldo are exempt from both INSS and
	// IR; withholdings apply only to pending salary and vacation.
	INSS                decimal.Decimal `yaml:"inss" json:"inss"`
	IncomeTaxOrdinary   decimal.Decimal `yaml:"income_tax_ordinary" json:"income_tax_ordinary"`
	IncomeTaxOccasional decimal.Decimal `yaml:"income_tax_occasional" json:"income_tax_occasional"`
	OccasionalRate      decimal.Decimal `yaml:"occasional_rate" json:"occasional_rate"`
	IncomeTax           decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	TotalDeductions     decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`

	NetPay decimal.Decimal `yaml:"net_pay" json:"net_pay"`
}

// VacationSummary reports accrued vacation as of a reference date.
type VacationSummary struct {
	AsOf        time.Time       `yaml:"as_of" json:"as_of"`
	AccruedDays decimal.Decimal `yaml:"accrued_days" json:"accrued_days"`
	TakenDays   decimal.Decimal `yaml:"taken_days" json:"taken_days"`
	BalanceDays decimal.Decimal `yaml:"balance_days" json:"balance_days"`
	// CycleDays is the day count inside the current Dec 1 - Nov 30
	// accrual cycle, capped at 360.
	CycleDays int `yaml:"cycle_days" json:"cycle_days"`
}
