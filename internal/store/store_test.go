package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicalabs/planilla/internal/domain"
)

// Both implementations run through the same suite.
func openStores(t *testing.T) map[string]interface {
	EmployeeStore
	HistoryStore
} {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "planilla.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]interface {
		EmployeeStore
		HistoryStore
	}{
		"memory": NewMemory(),
		"sqlite": db,
	}
}

func sampleEmployee(name string) *domain.Employee {
	return &domain.Employee{
		Name:          name,
		MonthlySalary: decimal.RequireFromString("12500.50"),
		HireDate:      time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		VacationTaken: decimal.RequireFromString("4.5"),
	}
}

func TestEmployeeCRUD(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			e := sampleEmployee("Carmen Duarte")
			require.NoError(t, s.Save(ctx, e))
			require.NotZero(t, e.ID)

			got, err := s.Get(ctx, e.ID)
			require.NoError(t, err)
			assert.Equal(t, "Carmen Duarte", got.Name)
			assert.True(t, got.MonthlySalary.Equal(e.MonthlySalary))
			assert.True(t, got.VacationTaken.Equal(e.VacationTaken))
			assert.Equal(t, e.HireDate, got.HireDate)

			got.Name = "Carmen Duarte Morales"
			got.MonthlySalary = decimal.NewFromInt(13000)
			require.NoError(t, s.Save(ctx, got))

			updated, err := s.Get(ctx, e.ID)
			require.NoError(t, err)
			assert.Equal(t, "Carmen Duarte Morales", updated.Name)
			assert.True(t, updated.MonthlySalary.Equal(decimal.NewFromInt(13000)))

			require.NoError(t, s.Delete(ctx, e.ID))
			_, err = s.Get(ctx, e.ID)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestEmployeeListOrder(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for _, n := range []string{"Zoila", "Ana", "Marcos"} {
				require.NoError(t, s.Save(ctx, sampleEmployee(n)))
			}

			employees, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, employees, 3)
			assert.Equal(t, "Ana", employees[0].Name)
			assert.Equal(t, "Marcos", employees[1].Name)
			assert.Equal(t, "Zoila", employees[2].Name)
		})
	}
}

func TestEmployeeNotFound(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, 999)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, s.Delete(ctx, 999), ErrNotFound)

			missing := sampleEmployee("Ghost")
			missing.ID = 999
			assert.ErrorIs(t, s.Save(ctx, missing), ErrNotFound)
		})
	}
}

func TestHistoryAppendRecent(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for i, kind := range []string{"payroll", "severance", "vacation"} {
				entry := &HistoryEntry{
					Kind:   kind,
					Input:  json.RawMessage(`{"case":` + string(rune('0'+i)) + `}`),
					Result: json.RawMessage(`{}`),
				}
				require.NoError(t, s.Append(ctx, entry))
				require.NotZero(t, entry.ID)
				assert.False(t, entry.CreatedAt.IsZero())
			}

			entries, err := s.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			// Newest first.
			assert.Equal(t, "vacation", entries[0].Kind)
			assert.Equal(t, "severance", entries[1].Kind)

			all, err := s.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestHistoryRoundTripsRawJSON(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			input := json.RawMessage(`{"base_salary":"10000","frequency":"monthly"}`)
			require.NoError(t, s.Append(ctx, &HistoryEntry{
				Kind: "payroll", Input: input, Result: json.RawMessage(`{"net_pay":"9155"}`),
			}))

			entries, err := s.Recent(ctx, 1)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.JSONEq(t, string(input), string(entries[0].Input))
			assert.JSONEq(t, `{"net_pay":"9155"}`, string(entries[0].Result))
		})
	}
}
