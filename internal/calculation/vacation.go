package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

// VacationBalance reports accrued vacation for an employee as of an
// explicit reference date. The date is a parameter, never the system
// clock, so the result is reproducible.
func VacationBalance(hireDate, asOf time.Time, takenDays decimal.Decimal) (*domain.VacationSummary, error) {
	if takenDays.IsNegative() {
		return nil, fmt.Errorf("taken_days is negative: %w", domain.ErrInvalidAmount)
	}
	accrued, err := ProportionalVacationDays(hireDate, asOf)
	if err != nil {
		return nil, err
	}
	cycleDays, err := AccrualPeriodDays(asOf)
	if err != nil {
		return nil, err
	}
	return &domain.VacationSummary{
		AsOf:        normalizeDay(asOf),
		AccruedDays: accrued.Round(2),
		TakenDays:   takenDays.Round(2),
		BalanceDays: accrued.Round(2).Sub(takenDays.Round(2)),
		CycleDays:   cycleDays,
	}, nil
}
