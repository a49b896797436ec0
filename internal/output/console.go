package output

import (
	"bytes"
	"fmt"

	"github.com/nicalabs/planilla/internal/domain"
)

// ConsoleFormatter produces the detailed text report shown on stdout.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(doc *Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	switch doc.Kind {
	case KindPayroll:
		writePayroll(buf, "PAYROLL BREAKDOWN", doc.Payroll)
	case KindSheet:
		writeSheet(buf, doc.Sheet)
	case KindSeverance:
		writeSeverance(buf, doc.Severance)
	case KindVacation:
		writeVacation(buf, doc.Vacation)
	default:
		return nil, fmt.Errorf("unsupported document kind: %s", doc.Kind)
	}
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, label string, value string) {
	fmt.Fprintf(buf, "%-28s %14s\n", label, value)
}

func writePayroll(buf *bytes.Buffer, title string, r *domain.PayrollResult) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, "=============================================")
	writeLine(buf, "Base salary", FormatCurrency(r.BaseSalary))
	writeLine(buf, "Overtime", FormatCurrency(r.OvertimePay))
	writeLine(buf, "Commissions", FormatCurrency(r.Commissions))
	writeLine(buf, "Incentives", FormatCurrency(r.Incentives))
	writeLine(buf, "Viaticos", FormatCurrency(r.Viaticos))
	writeLine(buf, "Vacation pay", FormatCurrency(r.VacationPay))
	writeLine(buf, "Other income", FormatCurrency(r.OtherIncome))
	writeLine(buf, "Total income", FormatCurrency(r.TotalIncome))
	fmt.Fprintln(buf)
	writeLine(buf, "INSS (employee)", FormatCurrency(r.INSSEmployee))
	writeLine(buf, fmt.Sprintf("IR (marginal %s)", FormatPercentage(r.Tax.MarginalRate)), FormatCurrency(r.IncomeTax))
	writeLine(buf, "Other deductions", FormatCurrency(r.OtherDeductions))
	writeLine(buf, "Total deductions", FormatCurrency(r.TotalDeductions))
	fmt.Fprintln(buf)
	writeLine(buf, "NET PAY", FormatCurrency(r.NetPay))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "Employer cost")
	fmt.Fprintln(buf, "---------------------------------------------")
	writeLine(buf, "INSS (employer)", FormatCurrency(r.INSSEmployer))
	writeLine(buf, "INATEC", FormatCurrency(r.INATEC))
	writeLine(buf, "Aguinaldo provision", FormatCurrency(r.AguinaldoProvision))
	writeLine(buf, "Total employer cost", FormatCurrency(r.TotalEmployerCost))
}

func writeSheet(buf *bytes.Buffer, s *domain.SheetResult) {
	fmt.Fprintln(buf, "PAYROLL SHEET")
	fmt.Fprintln(buf, "=============================================================================")
	fmt.Fprintf(buf, "%-20s %12s %12s %12s %12s\n", "Employee", "Income", "Deductions", "Net", "Employer")
	for _, row := range s.Rows {
		fmt.Fprintf(buf, "%-20s %12s %12s %12s %12s\n",
			row.Name,
			row.Result.TotalIncome.StringFixed(2),
			row.Result.TotalDeductions.StringFixed(2),
			row.Result.NetPay.StringFixed(2),
			row.Result.TotalEmployerCost.StringFixed(2))
	}
	fmt.Fprintln(buf, "-----------------------------------------------------------------------------")
	fmt.Fprintf(buf, "%-20s %12s %12s %12s %12s\n", "TOTAL",
		s.TotalIncome.StringFixed(2),
		s.TotalDeductions.StringFixed(2),
		s.TotalNetPay.StringFixed(2),
		s.TotalEmployerCost.StringFixed(2))
}

func writeSeverance(buf *bytes.Buffer, r *domain.SeveranceResult) {
	fmt.Fprintln(buf, "SETTLEMENT (LIQUIDACION)")
	fmt.Fprintln(buf, "=============================================")
	fmt.Fprintf(buf, "Seniority: %d years, %d months, %d days (%d commercial days)\n",
		r.Seniority.Years, r.Seniority.Months, r.Seniority.Days, r.Seniority.TotalDays)
	writeLine(buf, "Daily rate", FormatCurrency(r.DailyRate))
	fmt.Fprintln(buf)
	writeLine(buf, "Pending salary", FormatCurrency(r.PendingSalary))
	writeLine(buf, "Aguinaldo", FormatCurrency(r.Aguinaldo))
	writeLine(buf, "Vacation pay", FormatCurrency(r.VacationPay))
	writeLine(buf, fmt.Sprintf("Indemnity (%s days)", r.IndemnityDays.StringFixed(2)), FormatCurrency(r.Indemnity))
	if r.LegalCapApplied {
		fmt.Fprintln(buf, "  * indemnity capped at the 150-day legal maximum")
	}
	writeLine(buf, "Total income", FormatCurrency(r.TotalIncome))
	fmt.Fprintln(buf)
	writeLine(buf, "INSS", FormatCurrency(r.INSS))
	writeLine(buf, "IR ordinary", FormatCurrency(r.IncomeTaxOrdinary))
	writeLine(buf, fmt.Sprintf("IR occasional (%s)", FormatPercentage(r.OccasionalRate)), FormatCurrency(r.IncomeTaxOccasional))
	writeLine(buf, "Total deductions", FormatCurrency(r.TotalDeductions))
	fmt.Fprintln(buf)
	writeLine(buf, "NET PAYABLE", FormatCurrency(r.NetPay))
}

func writeVacation(buf *bytes.Buffer, v *domain.VacationSummary) {
	fmt.Fprintln(buf, "VACATION BALANCE")
	fmt.Fprintln(buf, "=============================================")
	fmt.Fprintf(buf, "As of:          %s\n", v.AsOf.Format("2006-01-02"))
	fmt.Fprintf(buf, "Accrued days:   %s\n", v.AccruedDays.StringFixed(2))
	fmt.Fprintf(buf, "Taken days:     %s\n", v.TakenDays.StringFixed(2))
	fmt.Fprintf(buf, "Balance:        %s\n", v.BalanceDays.StringFixed(2))
	fmt.Fprintf(buf, "Cycle days:     %d of 360\n", v.CycleDays)
}
