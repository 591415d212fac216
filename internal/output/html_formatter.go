package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report of the yearly snapshots.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"month": dateutil.FormatMonth,
}).Parse(htmlTemplateSource))

type htmlRow struct {
	Summary domain.MonthSummary
	Cells   []string
}

func (h HTMLFormatter) Format(forecast *domain.Forecast) ([]byte, error) {
	names := forecast.AssetNames()
	var rows []htmlRow
	for _, month := range forecast.Annual() {
		cells := summaryRow(month, names)
		rows = append(rows, htmlRow{Summary: month, Cells: cells[1 : len(cells)-1]})
	}

	data := struct {
		*domain.Forecast
		AssetNames    []string
		Rows          []htmlRow
		FinalValue    domain.MonthSummary
		BankruptMonth string
		Assumptions   []string
	}{forecast, names, rows, forecast.Final(), "", DefaultAssumptions}
	if forecast.BankruptDate != nil {
		data.BankruptMonth = dateutil.FormatMonth(*forecast.BankruptDate)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
