package domain

import (
	"github.com/shopspring/decimal"
)

// PayFrequency identifies how often an employee is paid. The base salary in
// a PayrollInput is always expressed per pay period of this frequency.
type PayFrequency string

const (
	FrequencyMonthly  PayFrequency = "monthly"
	FrequencyBiweekly PayFrequency = "biweekly"
	FrequencyWeekly   PayFrequency = "weekly"
)

// Valid reports whether the frequency is one of the three supported values.
func (f PayFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBiweekly, FrequencyWeekly:
		return true
	}
	return false
}

// MonthlyMultiplier converts a per-period salary into its monthly
// equivalent. Weekly uses the average weeks-per-month factor.
func (f PayFrequency) MonthlyMultiplier() decimal.Decimal {
	switch f {
	case FrequencyBiweekly:
		return decimal.NewFromInt(2)
	case FrequencyWeekly:
		return decimal.RequireFromString("4.3333")
	default:
		return decimal.NewFromInt(1)
	}
}

// PeriodsPerYear returns the annualization factor for income tax.
// Biweekly is 24 (two payments per calendar month by legal convention),
// not 26 calendar biweeks.
func (f PayFrequency) PeriodsPerYear() decimal.Decimal {
	switch f {
	case FrequencyBiweekly:
		return decimal.NewFromInt(24)
	case FrequencyWeekly:
		return decimal.NewFromInt(52)
	default:
		return decimal.NewFromInt(12)
	}
}

// DeductionItem is a named deduction applied after statutory withholdings
// (optical plans, wage garnishments, miscellaneous).
type DeductionItem struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// PayrollInput describes one employee's pay period. All monetary fields are
// in córdobas and must be non-negative; BaseSalary is per pay period.
type PayrollInput struct {
	BaseSalary    decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	Frequency     PayFrequency    `yaml:"frequency" json:"frequency"`
	OvertimeHours decimal.Decimal `yaml:"overtime_hours" json:"overtime_hours"`
	Commissions   decimal.Decimal `yaml:"commissions" json:"commissions"`
	Incentives    decimal.Decimal `yaml:"incentives" json:"incentives"`
	// Viaticos (per-diem allowances) are paid out but exempt from INSS and IR.
	Viaticos     decimal.Decimal `yaml:"viaticos" json:"viaticos"`
	VacationDays decimal.Decimal `yaml:"vacation_days" json:"vacation_days"`
	// OtherIncome is non-taxable, non-deductible income paid this period.
	OtherIncome decimal.Decimal `yaml:"other_income" json:"other_income"`
	Deductions  []DeductionItem `yaml:"deductions,omitempty" json:"deductions,omitempty"`
	// Headcount selects the employer INSS rate (small vs large company).
	Headcount int `yaml:"headcount" json:"headcount"`
}

// PayrollResult is the gross-to-net breakdown for one pay period. All
// amounts are rounded to 2 decimal places and the totals reconcile exactly:
// TotalIncome is the sum of the income lines and NetPay is
// TotalIncome - TotalDeductions.
type PayrollResult struct {
	// Income.
	BaseSalary  decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	OvertimePay decimal.Decimal `yaml:"overtime_pay" json:"overtime_pay"`
	Commissions decimal.Decimal `yaml:"commissions" json:"commissions"`
	Incentives  decimal.Decimal `yaml:"incentives" json:"incentives"`
	Viaticos    decimal.Decimal `yaml:"viaticos" json:"viaticos"`
	VacationPay decimal.Decimal `yaml:"vacation_pay" json:"vacation_pay"`
	OtherIncome decimal.Decimal `yaml:"other_income" json:"other_income"`
	TotalIncome decimal.Decimal `yaml:"total_income" json:"total_income"`

	// Deductions.
	INSSEmployee    decimal.Decimal `yaml:"inss_employee" json:"inss_employee"`
	IncomeTax       decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	OtherDeductions decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
	TotalDeductions decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`

	NetPay decimal.Decimal `yaml:"net_pay" json:"net_pay"`

	// Employer cost.
	INSSEmployer       decimal.Decimal `yaml:"inss_employer" json:"inss_employer"`
	INATEC             decimal.Decimal `yaml:"inatec" json:"inatec"`
	AguinaldoProvision decimal.Decimal `yaml:"aguinaldo_provision" json:"aguinaldo_provision"`
	TotalEmployerCost  decimal.Decimal `yaml:"total_employer_cost" json:"total_employer_cost"`

	// Tax carries the bracket evaluation behind IncomeTax.
	Tax BracketResult `yaml:"tax" json:"tax"`
}

// BracketResult is the output of the shared progressive IR evaluator.
type BracketResult struct {
	AnnualBase     decimal.Decimal `yaml:"annual_base" json:"annual_base"`
	LowerThreshold decimal.Decimal `yaml:"lower_threshold" json:"lower_threshold"`
	MarginalRate   decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"`
	BaseTax        decimal.Decimal `yaml:"base_tax" json:"base_tax"`
	AnnualTax      decimal.Decimal `yaml:"annual_tax" json:"annual_tax"`
	MonthlyTax     decimal.Decimal `yaml:"monthly_tax" json:"monthly_tax"`
}

// SheetEntry is one row of a payroll sheet: an employee name plus their
// period inputs.
type SheetEntry struct {
	Name  string       `yaml:"name" json:"name"`
	Input PayrollInput `yaml:"input" json:"input"`
}

// SheetRow is a computed payroll sheet row.
type SheetRow struct {
	Name   string        `yaml:"name" json:"name"`
	Result PayrollResult `yaml:"result" json:"result"`
}

// SheetResult aggregates a whole payroll run.
type SheetResult struct {
	Rows              []SheetRow      `yaml:"rows" json:"rows"`
	TotalIncome       decimal.Decimal `yaml:"total_income" json:"total_income"`
	TotalDeductions   decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	TotalNetPay       decimal.Decimal `yaml:"total_net_pay" json:"total_net_pay"`
	TotalEmployerCost decimal.Decimal `yaml:"total_employer_cost" json:"total_employer_cost"`
}
