package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// HTMLFormatter produces a printable payslip/settlement page.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (HTMLFormatter) Format(doc *Document) ([]byte, error) {
	switch doc.Kind {
	case KindPayroll, KindSheet, KindSeverance, KindVacation:
	default:
		return nil, fmt.Errorf("unsupported document kind: %s", doc.Kind)
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
