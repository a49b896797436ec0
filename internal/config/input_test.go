package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicalabs/planilla/internal/domain"
)

func writeInputFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPayrollFile(t *testing.T) {
	path := writeInputFile(t, "planilla.yaml", `
entries:
  - name: "Ana López"
    input:
      base_salary: "10000"
      frequency: monthly
      overtime_hours: "5"
      deductions:
        - name: "optical"
          amount: "300"
  - name: "Bruno Téllez"
    input:
      base_salary: "2500"
      frequency: weekly
      headcount: 60
`)

	parser := NewInputParser()
	doc, err := parser.LoadPayrollFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 2)

	first := doc.Entries[0]
	assert.Equal(t, "Ana López", first.Name)
	assert.Equal(t, domain.FrequencyMonthly, first.Input.Frequency)
	assert.True(t, first.Input.BaseSalary.Equal(decimal.NewFromInt(10000)))
	require.Len(t, first.Input.Deductions, 1)
	assert.Equal(t, "optical", first.Input.Deductions[0].Name)

	second := doc.Entries[1]
	assert.Equal(t, domain.FrequencyWeekly, second.Input.Frequency)
	assert.Equal(t, 60, second.Input.Headcount)
}

func TestLoadPayrollFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty document",
			content: "entries: []",
			wantErr: "no entries",
		},
		{
			name: "missing name",
			content: `
entries:
  - input:
      base_salary: "1000"
      frequency: monthly
`,
			wantErr: "name is required",
		},
		{
			name: "bad frequency",
			content: `
entries:
  - name: "Ana"
    input:
      base_salary: "1000"
      frequency: quarterly
`,
			wantErr: "quarterly",
		},
		{
			name: "zero salary",
			content: `
entries:
  - name: "Ana"
    input:
      base_salary: "0"
      frequency: monthly
`,
			wantErr: "base salary",
		},
		{
			name: "unnamed deduction",
			content: `
entries:
  - name: "Ana"
    input:
      base_salary: "1000"
      frequency: monthly
      deductions:
        - amount: "50"
`,
			wantErr: "deduction name",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInputFile(t, "planilla.yaml", tt.content)
			doc, err := parser.LoadPayrollFile(path)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSeveranceFile(t *testing.T) {
	path := writeInputFile(t, "liquidacion.yaml", `
cases:
  - hire_date: 2020-01-01
    termination_date: 2025-01-01
    monthly_salary: "12000"
    vacation_days: "8"
    pending_days: "15"
    reason: dismissal_art45
`)

	parser := NewInputParser()
	doc, err := parser.LoadSeveranceFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Cases, 1)

	c := doc.Cases[0]
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), c.HireDate)
	assert.Equal(t, domain.ReasonDismissalArt45, c.Reason)
	assert.True(t, c.MonthlySalary.Equal(decimal.NewFromInt(12000)))
}

func TestLoadSeveranceFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty document",
			content: "cases: []",
			wantErr: "no cases",
		},
		{
			name: "missing termination date",
			content: `
cases:
  - hire_date: 2020-01-01
    monthly_salary: "12000"
    reason: death
`,
			wantErr: "termination date",
		},
		{
			name: "reversed dates",
			content: `
cases:
  - hire_date: 2025-01-01
    termination_date: 2020-01-01
    monthly_salary: "12000"
    reason: death
`,
			wantErr: "precedes",
		},
		{
			name: "unknown reason",
			content: `
cases:
  - hire_date: 2020-01-01
    termination_date: 2025-01-01
    monthly_salary: "12000"
    reason: mutual_agreement
`,
			wantErr: "mutual_agreement",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInputFile(t, "liquidacion.yaml", tt.content)
			doc, err := parser.LoadSeveranceFile(path)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadPayrollFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
