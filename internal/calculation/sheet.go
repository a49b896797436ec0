package calculation

import (
	"fmt"

	"github.com/nicalabs/planilla/internal/domain"
)

// CalculateSheet runs the payroll calculator over a whole sheet of
// employees and totals the run. Rows are independent pure calculations;
// any invalid row aborts the sheet so a partially-computed run is never
// returned.
func (pc *PayrollCalculator) CalculateSheet(entries []domain.SheetEntry) (*domain.SheetResult, error) {
	sheet := &domain.SheetResult{Rows: make([]domain.SheetRow, 0, len(entries))}
	for i, entry := range entries {
		result, err := pc.Calculate(entry.Input)
		if err != nil {
			return nil, fmt.Errorf("sheet row %d (%s): %w", i, entry.Name, err)
		}
		sheet.Rows = append(sheet.Rows, domain.SheetRow{Name: entry.Name, Result: *result})
		sheet.TotalIncome = sheet.TotalIncome.Add(result.TotalIncome)
		sheet.TotalDeductions = sheet.TotalDeductions.Add(result.TotalDeductions)
		sheet.TotalNetPay = sheet.TotalNetPay.Add(result.NetPay)
		sheet.TotalEmployerCost = sheet.TotalEmployerCost.Add(result.TotalEmployerCost)
	}
	return sheet, nil
}

// CompareReasons computes the same settlement under every termination
// reason, for side-by-side review of what each legal ground would pay.
func (sc *SeveranceCalculator) CompareReasons(in domain.SeveranceInput) (map[domain.TerminationReason]*domain.SeveranceResult, error) {
	results := make(map[domain.TerminationReason]*domain.SeveranceResult, len(domain.TerminationReasons))
	for _, reason := range domain.TerminationReasons {
		caseInput := in
		caseInput.Reason = reason
		result, err := sc.Calculate(caseInput)
		if err != nil {
			return nil, err
		}
		results[reason] = result
	}
	return results, nil
}
