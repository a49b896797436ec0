package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nicalabs/planilla/internal/domain"
)

// PayrollDocument is the YAML shape of a payroll run: one sheet entry per
// employee, each with its own period input.
type PayrollDocument struct {
	Entries []domain.SheetEntry `yaml:"entries"`
}

// SeveranceDocument is the YAML shape of a batch of settlement cases.
type SeveranceDocument struct {
	Cases []domain.SeveranceInput `yaml:"cases"`
}

// InputParser handles parsing of input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadPayrollFile loads and validates a payroll run document.
func (ip *InputParser) LoadPayrollFile(filename string) (*PayrollDocument, error) {
	var doc PayrollDocument
	if err := ip.load(filename, &doc); err != nil {
		return nil, err
	}
	if err := ip.ValidatePayrollDocument(&doc); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &doc, nil
}

// LoadSeveranceFile loads and validates a severance case document.
func (ip *InputParser) LoadSeveranceFile(filename string) (*SeveranceDocument, error) {
	var doc SeveranceDocument
	if err := ip.load(filename, &doc); err != nil {
		return nil, err
	}
	if err := ip.ValidateSeveranceDocument(&doc); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &doc, nil
}

func (ip *InputParser) load(filename string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// ValidatePayrollDocument validates a loaded payroll run. The calculators
// re-check amounts defensively; the parser additionally enforces the
// caller-side rules, like a positive base salary.
func (ip *InputParser) ValidatePayrollDocument(doc *PayrollDocument) error {
	if len(doc.Entries) == 0 {
		return fmt.Errorf("no entries provided")
	}
	for i, entry := range doc.Entries {
		if err := ip.validateEntry(&entry); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entry.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateEntry(entry *domain.SheetEntry) error {
	if entry.Name == "" {
		return fmt.Errorf("name is required")
	}
	in := entry.Input
	if !in.Frequency.Valid() {
		return fmt.Errorf("pay frequency %q: %w", in.Frequency, domain.ErrUnsupportedFrequency)
	}
	if !in.BaseSalary.IsPositive() {
		return fmt.Errorf("base salary must be positive: %w", domain.ErrInvalidAmount)
	}
	for _, d := range in.Deductions {
		if d.Name == "" {
			return fmt.Errorf("deduction name is required")
		}
		if d.Amount.IsNegative() {
			return fmt.Errorf("deduction %q is negative: %w", d.Name, domain.ErrInvalidAmount)
		}
	}
	return nil
}

// ValidateSeveranceDocument validates a loaded batch of settlement cases.
func (ip *InputParser) ValidateSeveranceDocument(doc *SeveranceDocument) error {
	if len(doc.Cases) == 0 {
		return fmt.Errorf("no cases provided")
	}
	for i, c := range doc.Cases {
		if err := ip.validateCase(&c); err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
	}
	return nil
}

func (ip *InputParser) validateCase(c *domain.SeveranceInput) error {
	if c.HireDate.IsZero() {
		return fmt.Errorf("hire date is required: %w", domain.ErrInvalidDate)
	}
	if c.TerminationDate.IsZero() {
		return fmt.Errorf("termination date is required: %w", domain.ErrInvalidDate)
	}
	if c.TerminationDate.Before(c.HireDate) {
		return fmt.Errorf("termination date precedes hire date: %w", domain.ErrInvalidDate)
	}
	if !c.MonthlySalary.IsPositive() {
		return fmt.Errorf("monthly salary must be positive: %w", domain.ErrInvalidAmount)
	}
	if !c.Reason.Valid() {
		return fmt.Errorf("termination reason %q: %w", c.Reason, domain.ErrUnsupportedTerminationReason)
	}
	return nil
}
