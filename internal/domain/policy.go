package domain

import (
	"github.com/shopspring/decimal"
	"github.com/solarpipe/commission/pkg/money"
)

// TierRates are the commission percentages applied to the clamped
// commission amount.
type TierRates struct {
	Rookie decimal.Decimal `yaml:"rookie" json:"rookie"`
	Vet    decimal.Decimal `yaml:"vet" json:"vet"`
	Pro    decimal.Decimal `yaml:"pro" json:"pro"`
}

// TierThresholds are the paid-project counts at which a rep moves up a tier.
type TierThresholds struct {
	Vet int `yaml:"vet" json:"vet" validate:"gte=1"`
	Pro int `yaml:"pro" json:"pro" validate:"gtfield=Vet"`
}

// AdderPrices are the fixed surcharges added to base cost per equipment flag.
type AdderPrices struct {
	EABattery     decimal.Decimal `yaml:"ea_battery" json:"ea_battery"`
	BackupBattery decimal.Decimal `yaml:"backup_battery" json:"backup_battery"`
	MPU           decimal.Decimal `yaml:"mpu" json:"mpu"`
	HTI           decimal.Decimal `yaml:"hti" json:"hti"`
	Reroof        decimal.Decimal `yaml:"reroof" json:"reroof"`
}

// Policy carries every business constant of the commission model so that
// rates and thresholds can be changed without touching the engine.
type Policy struct {
	TierRates        TierRates       `yaml:"tier_rates" json:"tier_rates"`
	TierThresholds   TierThresholds  `yaml:"tier_thresholds" json:"tier_thresholds"`
	BaseCostPerWatt  decimal.Decimal `yaml:"base_cost_per_watt" json:"base_cost_per_watt"`
	Adders           AdderPrices     `yaml:"adders" json:"adders"`
	ManagerRatePerKW decimal.Decimal `yaml:"manager_rate_per_kw" json:"manager_rate_per_kw"`
}

// DefaultPolicy returns the standard compensation plan.
func DefaultPolicy() Policy {
	return Policy{
		TierRates: TierRates{
			Rookie: money.Must("0.24"),
			Vet:    money.Must("0.39"),
			Pro:    money.Must("0.50"),
		},
		TierThresholds: TierThresholds{
			Vet: 10,
			Pro: 20,
		},
		BaseCostPerWatt: money.Must("3.5"),
		Adders: AdderPrices{
			EABattery:     decimal.NewFromInt(8000),
			BackupBattery: decimal.NewFromInt(13000),
			MPU:           decimal.NewFromInt(3500),
			HTI:           decimal.NewFromInt(2500),
			Reroof:        decimal.NewFromInt(15000),
		},
		ManagerRatePerKW: decimal.NewFromInt(175),
	}
}

// Rate returns the commission percentage for a tier; unknown tiers get the
// Rookie rate.
func (p Policy) Rate(payType PayType) decimal.Decimal {
	switch payType {
	case PayTypeVet:
		return p.TierRates.Vet
	case PayTypePro:
		return p.TierRates.Pro
	default:
		return p.TierRates.Rookie
	}
}

// TierForPaidCount maps a rep's number of paid projects to a tier.
func (p Policy) TierForPaidCount(paid int) PayType {
	switch {
	case paid >= p.TierThresholds.Pro:
		return PayTypePro
	case paid >= p.TierThresholds.Vet:
		return PayTypeVet
	default:
		return PayTypeRookie
	}
}
