package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nicalabs/planilla/internal/domain"
)

// PDFFormatter renders a printable payslip or settlement document.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	switch doc.Kind {
	case KindPayroll:
		pdfPayroll(pdf, "Comprobante de pago", doc.Payroll)
	case KindSheet:
		pdfSheet(pdf, doc.Sheet)
	case KindSeverance:
		pdfSeverance(pdf, doc.Severance)
	case KindVacation:
		pdfVacation(pdf, doc.Vacation)
	default:
		return nil, fmt.Errorf("unsupported document kind: %s", doc.Kind)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
}

func pdfLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(90, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, value, "", 1, "R", false, 0, "")
}

func pdfPayroll(pdf *gofpdf.Fpdf, title string, r *domain.PayrollResult) {
	pdfTitle(pdf, title)
	pdfLine(pdf, "Salario base", FormatCurrency(r.BaseSalary))
	pdfLine(pdf, "Horas extra", FormatCurrency(r.OvertimePay))
	pdfLine(pdf, "Comisiones", FormatCurrency(r.Commissions))
	pdfLine(pdf, "Incentivos", FormatCurrency(r.Incentives))
	pdfLine(pdf, "Viaticos", FormatCurrency(r.Viaticos))
	pdfLine(pdf, "Vacaciones", FormatCurrency(r.VacationPay))
	pdfLine(pdf, "Otros ingresos", FormatCurrency(r.OtherIncome))
	pdf.SetFont("Helvetica", "B", 11)
	pdfLine(pdf, "Total ingresos", FormatCurrency(r.TotalIncome))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(3)
	pdfLine(pdf, "INSS laboral", FormatCurrency(r.INSSEmployee))
	pdfLine(pdf, "IR", FormatCurrency(r.IncomeTax))
	pdfLine(pdf, "Otras deducciones", FormatCurrency(r.OtherDeductions))
	pdf.SetFont("Helvetica", "B", 11)
	pdfLine(pdf, "Total deducciones", FormatCurrency(r.TotalDeductions))
	pdf.Ln(3)
	pdfLine(pdf, "Neto a recibir", FormatCurrency(r.NetPay))
}

func pdfSheet(pdf *gofpdf.Fpdf, s *domain.SheetResult) {
	pdfTitle(pdf, "Planilla")
	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{60, 32, 32, 32, 32}
	headers := []string{"Empleado", "Ingresos", "Deducciones", "Neto", "Costo patronal"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range s.Rows {
		pdf.CellFormat(widths[0], 7, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.Result.TotalIncome.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Result.TotalDeductions.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, row.Result.NetPay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, row.Result.TotalEmployerCost.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0], 7, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[1], 7, s.TotalIncome.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, s.TotalDeductions.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, s.TotalNetPay.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, s.TotalEmployerCost.StringFixed(2), "1", 1, "R", false, 0, "")
}

func pdfSeverance(pdf *gofpdf.Fpdf, r *domain.SeveranceResult) {
	pdfTitle(pdf, "Liquidacion final")
	pdfLine(pdf, "Antiguedad", fmt.Sprintf("%d a, %d m, %d d",
		r.Seniority.Years, r.Seniority.Months, r.Seniority.Days))
	pdfLine(pdf, "Salario diario", FormatCurrency(r.DailyRate))
	pdf.Ln(3)
	pdfLine(pdf, "Salario pendiente", FormatCurrency(r.PendingSalary))
	pdfLine(pdf, "Aguinaldo proporcional", FormatCurrency(r.Aguinaldo))
	pdfLine(pdf, "Vacaciones", FormatCurrency(r.VacationPay))
	pdfLine(pdf, fmt.Sprintf("Indemnizacion (%s dias)", r.IndemnityDays.StringFixed(2)), FormatCurrency(r.Indemnity))
	if r.LegalCapApplied {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 6, "Indemnizacion limitada al maximo legal de 150 dias")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdfLine(pdf, "Total ingresos", FormatCurrency(r.TotalIncome))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(3)
	pdfLine(pdf, "INSS", FormatCurrency(r.INSS))
	pdfLine(pdf, "IR ordinario", FormatCurrency(r.IncomeTaxOrdinary))
	pdfLine(pdf, "IR ocasional", FormatCurrency(r.IncomeTaxOccasional))
	pdf.SetFont("Helvetica", "B", 11)
	pdfLine(pdf, "Total deducciones", FormatCurrency(r.TotalDeductions))
	pdf.Ln(3)
	pdfLine(pdf, "Neto a pagar", FormatCurrency(r.NetPay))
}

func pdfVacation(pdf *gofpdf.Fpdf, v *domain.VacationSummary) {
	pdfTitle(pdf, "Saldo de vacaciones")
	pdfLine(pdf, "Al", v.AsOf.Format("2006-01-02"))
	pdfLine(pdf, "Dias acumulados", v.AccruedDays.StringFixed(2))
	pdfLine(pdf, "Dias gozados", v.TakenDays.StringFixed(2))
	pdfLine(pdf, "Saldo", v.BalanceDays.StringFixed(2))
}
