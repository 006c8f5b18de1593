package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NumericString is a numeric-like field exactly as it arrived from the CRM or a
// spreadsheet. It is interpreted leniently by the calculation engine.
type NumericString string

// UnmarshalYAML accepts both quoted and bare scalars ("7.2" or 7.2).
func (n *NumericString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: numeric field must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*n = ""
		return nil
	}
	*n = NumericString(value.Value)
	return nil
}

// UnmarshalJSON accepts strings, numbers and null.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*n = ""
		return nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*n = NumericString(str)
		return nil
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("numeric field: %w", err)
		}
		*n = NumericString(num.String())
		return nil
	}
}

// Project is one solar deal as supplied by the CRM or an import. The engine
// never mutates it.
type Project struct {
	ID           string `yaml:"id" json:"id"`
	CustomerName string `yaml:"customer_name" json:"customer_name"`
	Address      string `yaml:"address,omitempty" json:"address,omitempty"`

	// InstallDate drives year bucketing; it is kept raw and parsed leniently.
	InstallDate string `yaml:"install_date" json:"install_date"`
	Status      Status `yaml:"status" json:"status"`

	SystemSize    NumericString `yaml:"system_size" json:"system_size"` // kW
	GrossPPW      NumericString `yaml:"gross_ppw" json:"gross_ppw"`     // $/W
	PaymentAmount NumericString `yaml:"payment_amount,omitempty" json:"payment_amount,omitempty"`

	EABattery     bool `yaml:"ea_battery,omitempty" json:"ea_battery,omitempty"`
	BackupBattery bool `yaml:"backup_battery,omitempty" json:"backup_battery,omitempty"`
	MPU           bool `yaml:"mpu,omitempty" json:"mpu,omitempty"`
	HTI           bool `yaml:"hti,omitempty" json:"hti,omitempty"`
	Reroof        bool `yaml:"reroof,omitempty" json:"reroof,omitempty"`

	Office string `yaml:"office" json:"office"`
	UserID string `yaml:"user_id" json:"user_id"`
}

// ProjectSet is the top-level shape of YAML and JSON project files.
type ProjectSet struct {
	Projects []Project `yaml:"projects" json:"projects"`
}
