package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/solarpipe/commission/internal/domain"
	"github.com/solarpipe/commission/pkg/money"
)

// ComputeBreakdown converts one project into its commission breakdown at the
// given tier. Malformed sizes and prices count as zero and unknown tiers pay
// the Rookie rate; the result is never an error.
//
// The commission amount is clamped at zero before the tier rate is applied,
// so FinalCommission is never negative.
func (e *Engine) ComputeBreakdown(project domain.Project, payType domain.PayType) domain.CommissionBreakdown {
	systemSize := e.numeric(project.ID, "system_size", project.SystemSize)
	grossPPW := e.numeric(project.ID, "gross_ppw", project.GrossPPW)

	contractPrice := systemSize.Mul(grossPPW).Mul(thousand)
	baseCost := systemSize.Mul(thousand).Mul(e.Policy.BaseCostPerWatt)
	adders := e.addersFor(project)
	totalCost := baseCost.Add(adders)
	commissionAmount := contractPrice.Sub(totalCost)

	tier := payType.Normalize()
	if tier != payType {
		e.Logger.Debugf("project %s: unknown pay type %q, using %s", project.ID, payType, tier)
	}
	rate := e.Policy.Rate(tier)

	return domain.CommissionBreakdown{
		SystemSize:           systemSize,
		ContractPrice:        contractPrice,
		BaseCost:             baseCost,
		Adders:               adders,
		TotalCost:            totalCost,
		CommissionAmount:     commissionAmount,
		CommissionPercentage: rate,
		FinalCommission:      money.NonNegative(commissionAmount).Mul(rate),
		SelectedPayType:      tier,
	}
}

// addersFor sums the surcharge of every equipment flag set on the project.
func (e *Engine) addersFor(project domain.Project) decimal.Decimal {
	prices := e.Policy.Adders
	var amounts []decimal.Decimal
	if project.EABattery {
		amounts = append(amounts, prices.EABattery)
	}
	if project.BackupBattery {
		amounts = append(amounts, prices.BackupBattery)
	}
	if project.MPU {
		amounts = append(amounts, prices.MPU)
	}
	if project.HTI {
		amounts = append(amounts, prices.HTI)
	}
	if project.Reroof {
		amounts = append(amounts, prices.Reroof)
	}
	return money.Sum(amounts...)
}

// numeric coerces a raw field, logging values that were present but unreadable.
func (e *Engine) numeric(projectID, field string, raw domain.NumericString) decimal.Decimal {
	d, ok := money.Parse(string(raw))
	if !ok && raw != "" {
		e.Logger.Debugf("project %s: %s %q is not numeric, using 0", projectID, field, string(raw))
	}
	return d
}
