package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/solarpipe/commission/internal/domain"
	"github.com/solarpipe/commission/pkg/money"
)

// HTMLFormatter produces a standalone HTML earnings report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": money.FormatCurrency,
	"pct":  money.FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.EarningsReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.EarningsReport
		Highlights Highlights
	}{report, AnalyzeReport(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
