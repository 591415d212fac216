package output

import (
	"bytes"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the forecast as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(forecast *domain.Forecast) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(forecast); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
