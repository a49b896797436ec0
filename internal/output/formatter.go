package output

import (
	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

// Document is the union of every result shape the formatters render.
// Exactly one of the pointers is set, matching Kind.
type Document struct {
	Kind      string                  `json:"kind"`
	Payroll   *domain.PayrollResult   `json:"payroll,omitempty"`
	Sheet     *domain.SheetResult     `json:"sheet,omitempty"`
	Severance *domain.SeveranceResult `json:"severance,omitempty"`
	Vacation  *domain.VacationSummary `json:"vacation,omitempty"`
}

const (
	KindPayroll   = "payroll"
	KindSheet     = "sheet"
	KindSeverance = "severance"
	KindVacation  = "vacation"
)

// Formatter renders a document into one output format. Formatters are
// read-only consumers; they never mutate the results they are given.
type Formatter interface {
	Name() string
	Format(doc *Document) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// GetFormatterByName returns the named formatter, or nil when the name is
// unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names, for CLI help text.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatCurrency formats an amount in córdobas.
func FormatCurrency(amount decimal.Decimal) string {
	return "C$" + amount.StringFixed(2)
}

// FormatPercentage formats a rate (0.15) as a percentage (15.00%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
