package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/solarpipe/commission/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of compensation policy files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New()}
}

// LoadPolicyFromFile loads a compensation policy from a YAML file. Fields
// missing from the file keep their DefaultPolicy values.
func (ip *InputParser) LoadPolicyFromFile(filename string) (*domain.Policy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParsePolicy(data)
}

// ParsePolicy decodes and validates a YAML policy document.
func (ip *InputParser) ParsePolicy(data []byte) (*domain.Policy, error) {
	policy := domain.DefaultPolicy()
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePolicy(&policy); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}

	return &policy, nil
}

// ValidatePolicy validates a compensation policy
func (ip *InputParser) ValidatePolicy(policy *domain.Policy) error {
	if err := ip.validate.Struct(policy); err != nil {
		return fmt.Errorf("tier thresholds: %w", err)
	}

	rates := map[string]decimal.Decimal{
		"rookie": policy.TierRates.Rookie,
		"vet":    policy.TierRates.Vet,
		"pro":    policy.TierRates.Pro,
	}
	for _, name := range []string{"rookie", "vet", "pro"} {
		rate := rates[name]
		if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s rate must be between 0 and 1, got %s", name, rate)
		}
	}

	if policy.BaseCostPerWatt.LessThan(decimal.Zero) {
		return fmt.Errorf("base cost per watt cannot be negative")
	}
	if policy.ManagerRatePerKW.LessThan(decimal.Zero) {
		return fmt.Errorf("manager rate per kW cannot be negative")
	}

	adders := policy.Adders
	for name, amount := range map[string]decimal.Decimal{
		"ea_battery":     adders.EABattery,
		"backup_battery": adders.BackupBattery,
		"mpu":            adders.MPU,
		"hti":            adders.HTI,
		"reroof":         adders.Reroof,
	} {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("adder %s cannot be negative", name)
		}
	}

	return nil
}

// CreateExamplePolicy returns the default policy for writing an example file
func (ip *InputParser) CreateExamplePolicy() *domain.Policy {
	policy := domain.DefaultPolicy()
	return &policy
}

// MarshalPolicy renders a policy as YAML.
func MarshalPolicy(policy *domain.Policy) ([]byte, error) {
	return yaml.Marshal(policy)
}
