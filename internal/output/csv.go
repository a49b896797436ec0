package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/nicalabs/planilla/internal/domain"
)

// CSVFormatter emits one row per employee for sheets, or a label/amount
// table for single results, matching what spreadsheet exports expect.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(doc *Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var err error
	switch doc.Kind {
	case KindPayroll:
		err = writePayrollCSV(w, "", doc.Payroll, true)
	case KindSheet:
		err = writeSheetCSV(w, doc.Sheet)
	case KindSeverance:
		err = writeSeveranceCSV(w, doc.Severance)
	case KindVacation:
		err = writeVacationCSV(w, doc.Vacation)
	default:
		return nil, fmt.Errorf("unsupported document kind: %s", doc.Kind)
	}
	if err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var payrollHeader = []string{
	"Employee", "BaseSalary", "Overtime", "Commissions", "Incentives",
	"Viaticos", "VacationPay", "OtherIncome", "TotalIncome",
	"INSS", "IncomeTax", "OtherDeductions", "TotalDeductions", "NetPay",
	"INSSEmployer", "INATEC", "AguinaldoProvision", "TotalEmployerCost",
}

func payrollRow(name string, r *domain.PayrollResult) []string {
	return []string{
		name,
		r.BaseSalary.StringFixed(2), r.OvertimePay.StringFixed(2),
		r.Commissions.StringFixed(2), r.Incentives.StringFixed(2),
		r.Viaticos.StringFixed(2), r.VacationPay.StringFixed(2),
		r.OtherIncome.StringFixed(2), r.TotalIncome.StringFixed(2),
		r.INSSEmployee.StringFixed(2), r.IncomeTax.StringFixed(2),
		r.OtherDeductions.StringFixed(2), r.TotalDeductions.StringFixed(2),
		r.NetPay.StringFixed(2),
		r.INSSEmployer.StringFixed(2), r.INATEC.StringFixed(2),
		r.AguinaldoProvision.StringFixed(2), r.TotalEmployerCost.StringFixed(2),
	}
}

func writePayrollCSV(w *csv.Writer, name string, r *domain.PayrollResult, header bool) error {
	if header {
		if err := w.Write(payrollHeader); err != nil {
			return err
		}
	}
	return w.Write(payrollRow(name, r))
}

func writeSheetCSV(w *csv.Writer, s *domain.SheetResult) error {
	if err := w.Write(payrollHeader); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if err := w.Write(payrollRow(row.Name, &row.Result)); err != nil {
			return err
		}
	}
	totals := make([]string, len(payrollHeader))
	totals[0] = "TOTAL"
	totals[8] = s.TotalIncome.StringFixed(2)
	totals[12] = s.TotalDeductions.StringFixed(2)
	totals[13] = s.TotalNetPay.StringFixed(2)
	totals[17] = s.TotalEmployerCost.StringFixed(2)
	return w.Write(totals)
}

func writeSeveranceCSV(w *csv.Writer, r *domain.SeveranceResult) error {
	rows := [][]string{
		{"Concept", "Amount"},
		{"PendingSalary", r.PendingSalary.StringFixed(2)},
		{"Aguinaldo", r.Aguinaldo.StringFixed(2)},
		{"VacationPay", r.VacationPay.StringFixed(2)},
		{"Indemnity", r.Indemnity.StringFixed(2)},
		{"TotalIncome", r.TotalIncome.StringFixed(2)},
		{"INSS", r.INSS.StringFixed(2)},
		{"IncomeTaxOrdinary", r.IncomeTaxOrdinary.StringFixed(2)},
		{"IncomeTaxOccasional", r.IncomeTaxOccasional.StringFixed(2)},
		{"TotalDeductions", r.TotalDeductions.StringFixed(2)},
		{"NetPay", r.NetPay.StringFixed(2)},
	}
	return w.WriteAll(rows)
}

func writeVacationCSV(w *csv.Writer, v *domain.VacationSummary) error {
	rows := [][]string{
		{"AsOf", "AccruedDays", "TakenDays", "BalanceDays", "CycleDays"},
		{
			v.AsOf.Format("2006-01-02"),
			v.AccruedDays.StringFixed(2),
			v.TakenDays.StringFixed(2),
			v.BalanceDays.StringFixed(2),
			fmt.Sprintf("%d", v.CycleDays),
		},
	}
	return w.WriteAll(rows)
}
