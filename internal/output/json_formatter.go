package output

import (
	"encoding/json"

	"github.com/rgehrsitz/nwgo/internal/domain"
)

// JSONFormatter serializes the forecast as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(forecast *domain.Forecast) ([]byte, error) {
	return json.MarshalIndent(forecast, "", "  ")
}
