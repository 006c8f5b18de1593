package output

import (
	"encoding/json"

	"github.com/solarpipe/commission/internal/domain"
)

// JSONFormatter serializes the earnings report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.EarningsReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
