package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicalabs/planilla/internal/domain"
)

// The 30/360 commercial convention used by Nicaraguan labor accounting:
// every month counts as 30 days and a span includes both endpoints. Dates
// are normalized to calendar days in UTC before subtraction so offsets
// around midnight cannot shift the count.

// normalizeDay strips the time-of-day and zone from a date.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CommercialDays returns the inclusive 30/360 day count between start and
// end. A day-of-month of 31 is clamped to 30. A zero date or a span whose
// end precedes its start is an error, never a silent zero.
func CommercialDays(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, fmt.Errorf("commercial day count: zero date: %w", domain.ErrInvalidDate)
	}
	start = normalizeDay(start)
	end = normalizeDay(end)
	if end.Before(start) {
		return 0, fmt.Errorf("commercial day count: end %s before start %s: %w",
			end.Format("2006-01-02"), start.Format("2006-01-02"), domain.ErrInvalidDate)
	}

	d1 := start.Day()
	if d1 > 30 {
		d1 = 30
	}
	d2 := end.Day()
	if d2 > 30 {
		d2 = 30
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*360 + months*30 + (d2 - d1) + 1, nil
}

// ProportionalVacationDays returns vacation accrued between the hire date
// and asOf: 2.5 days per 30-day month, uncapped. Carry-over limits are a
// policy concern left to the caller.
func ProportionalVacationDays(hireDate, asOf time.Time) (decimal.Decimal, error) {
	days, err := CommercialDays(hireDate, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(days)).
		Div(decimal.NewFromInt(360)).
		Mul(decimal.NewFromInt(30)), nil
}

// AccrualCycleStart returns December 1 anchoring the Dec 1 - Nov 30 cycle
// that contains asOf.
func AccrualCycleStart(asOf time.Time) time.Time {
	year := asOf.Year()
	if asOf.Month() != time.December {
		year--
	}
	return time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)
}

// AccrualPeriodDays returns the 30/360 day count from the start of the
// current Dec 1 - Nov 30 cycle to asOf, capped at 360.
func AccrualPeriodDays(asOf time.Time) (int, error) {
	if asOf.IsZero() {
		return 0, fmt.Errorf("accrual period: zero date: %w", domain.ErrInvalidDate)
	}
	days, err := CommercialDays(AccrualCycleStart(asOf), asOf)
	if err != nil {
		return 0, err
	}
	if days > 360 {
		days = 360
	}
	return days, nil
}
