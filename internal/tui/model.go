// Package tui is an interactive gross-to-net calculator: a form on the
// left, the computed breakdown on the right, recomputed on every
// keystroke.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/calculation"
	"github.com/nicalabs/planilla/internal/domain"
)

// Form field indexes.
const (
	fieldBaseSalary = iota
	fieldOvertimeHours
	fieldCommissions
	fieldIncentives
	fieldViaticos
	fieldVacationDays
	fieldOtherIncome
	fieldOtherDeductions
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Base salary",
	"Overtime hours",
	"Commissions",
	"Incentives",
	"Viaticos",
	"Vacation days",
	"Other income",
	"Other deductions",
}

// Model is the application state.
type Model struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	frequency domain.PayFrequency
	headcount int

	calc   *calculation.PayrollCalculator
	result *domain.PayrollResult
	err    error

	width  int
	height int
}

// NewModel creates the calculator form with the given fiscal-year rates.
func NewModel(rates *domain.Rates) Model {
	m := Model{
		frequency: domain.FrequencyMonthly,
		calc:      calculation.NewPayrollCalculator(rates),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 14
		ti.Width = 14
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldBaseSalary].Focus()
	m.recalculate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// input parses the form into a PayrollInput. Empty fields read as zero.
func (m *Model) input() (domain.PayrollInput, error) {
	parse := func(i int) (decimal.Decimal, error) {
		raw := m.inputs[i].Value()
		if raw == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(raw)
	}

	var in domain.PayrollInput
	var err error
	if in.BaseSalary, err = parse(fieldBaseSalary); err != nil {
		return in, err
	}
	if in.OvertimeHours, err = parse(fieldOvertimeHours); err != nil {
		return in, err
	}
	if in.Commissions, err = parse(fieldCommissions); err != nil {
		return in, err
	}
	if in.Incentives, err = parse(fieldIncentives); err != nil {
		return in, err
	}
	if in.Viaticos, err = parse(fieldViaticos); err != nil {
		return in, err
	}
	if in.VacationDays, err = parse(fieldVacationDays); err != nil {
		return in, err
	}
	if in.OtherIncome, err = parse(fieldOtherIncome); err != nil {
		return in, err
	}
	other, err := parse(fieldOtherDeductions)
	if err != nil {
		return in, err
	}
	if other.IsPositive() {
		in.Deductions = []domain.DeductionItem{{Name: "other", Amount: other}}
	}
	in.Frequency = m.frequency
	in.Headcount = m.headcount
	return in, nil
}

func (m *Model) recalculate() {
	in, err := m.input()
	if err != nil {
		m.result, m.err = nil, err
		return
	}
	if !in.BaseSalary.IsPositive() {
		m.result, m.err = nil, nil
		return
	}
	m.result, m.err = m.calc.Calculate(in)
}
