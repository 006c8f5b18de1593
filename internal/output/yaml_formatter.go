package output

import (
	"github.com/solarpipe/commission/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the earnings report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.EarningsReport) ([]byte, error) {
	return yaml.Marshal(report)
}
