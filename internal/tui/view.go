package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nicalabs/planilla/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("planilla — gross-to-net calculator"))
	b.WriteString("\n\n")

	form := m.renderForm()
	result := m.renderResult()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", result))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"tab/↑↓ move · ←/→ frequency · ctrl+h toggle ≥50 employees · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderForm() string {
	var rows []string
	rows = append(rows, labelStyle.Render("Frequency")+valueStyle.Render(string(m.frequency)))
	size := "< 50 employees"
	if m.headcount >= 50 {
		size = ">= 50 employees"
	}
	rows = append(rows, labelStyle.Render("Company size")+valueStyle.Render(size))
	rows = append(rows, "")
	for i, ti := range m.inputs {
		label := fieldLabels[i]
		if i == m.focus {
			label = "> " + label
		} else {
			label = "  " + label
		}
		rows = append(rows, labelStyle.Render(label)+ti.View())
	}
	return activePanelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderResult() string {
	if m.err != nil {
		return panelStyle.Render(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}
	if m.result == nil {
		return panelStyle.Render(helpStyle.Render("enter a base salary"))
	}

	r := m.result
	line := func(label string, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%14s", value))
	}
	rows := []string{
		line("Total income", output.FormatCurrency(r.TotalIncome)),
		"",
		line("INSS", output.FormatCurrency(r.INSSEmployee)),
		line("IR", output.FormatCurrency(r.IncomeTax)),
		line("Other", output.FormatCurrency(r.OtherDeductions)),
		line("Deductions", output.FormatCurrency(r.TotalDeductions)),
		"",
		labelStyle.Render("NET PAY") + totalStyle.Render(fmt.Sprintf("%14s", output.FormatCurrency(r.NetPay))),
		"",
		line("Employer INSS", output.FormatCurrency(r.INSSEmployer)),
		line("INATEC", output.FormatCurrency(r.INATEC)),
		line("13th-month prov.", output.FormatCurrency(r.AguinaldoProvision)),
		line("Employer cost", output.FormatCurrency(r.TotalEmployerCost)),
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}
