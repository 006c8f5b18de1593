package domain

import "github.com/shopspring/decimal"

// CommissionBreakdown is every intermediate and final value computed for one
// project at one tier. It is derived on demand and never stored.
type CommissionBreakdown struct {
	SystemSize           decimal.Decimal `yaml:"system_size" json:"system_size"`
	ContractPrice        decimal.Decimal `yaml:"contract_price" json:"contract_price"`
	BaseCost             decimal.Decimal `yaml:"base_cost" json:"base_cost"`
	Adders               decimal.Decimal `yaml:"adders" json:"adders"`
	TotalCost            decimal.Decimal `yaml:"total_cost" json:"total_cost"`
	CommissionAmount     decimal.Decimal `yaml:"commission_amount" json:"commission_amount"` // before clamp and rate; may be negative
	CommissionPercentage decimal.Decimal `yaml:"commission_percentage" json:"commission_percentage"`
	FinalCommission      decimal.Decimal `yaml:"final_commission" json:"final_commission"`
	SelectedPayType      PayType         `yaml:"selected_pay_type" json:"selected_pay_type"`
}
