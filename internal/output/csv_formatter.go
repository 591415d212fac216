package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

// CSVFormatter writes every simulated month as a row with one column per asset.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(forecast *domain.Forecast) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	names := forecast.AssetNames()
	header := append([]string{"Date"}, names...)
	header = append(header, "NetWorth", "IsBankrupt", "Shortfall")
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, month := range forecast.Months {
		row := []string{dateutil.FormatMonth(month.Date)}
		for _, name := range names {
			v, _ := month.AssetValue(name)
			row = append(row, v.StringFixed(2))
		}
		row = append(row,
			month.NetWorth.StringFixed(2),
			strconv.FormatBool(month.IsBankrupt),
			month.Shortfall.StringFixed(2),
		)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
