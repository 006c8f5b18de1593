package output

import (
	"github.com/shopspring/decimal"
	"github.com/solarpipe/commission/internal/domain"
)

// Highlights picks the standout office and rep of a report.
type Highlights struct {
	HasTopOffice      bool
	TopOffice         string
	TopOfficeEarnings decimal.Decimal
	HasTopRep         bool
	TopRep            string
	TopRepEarnings    decimal.Decimal
	AverageCommission decimal.Decimal
}

// AnalyzeReport finds the highest-earning office and rep. Ties go to the
// first entry, which is the alphabetically smallest since reports are sorted.
func AnalyzeReport(report *domain.EarningsReport) Highlights {
	var h Highlights
	for i, o := range report.Offices {
		if i == 0 || o.TeamEarnings.GreaterThan(h.TopOfficeEarnings) {
			h.TopOffice, h.TopOfficeEarnings = o.Office, o.TeamEarnings
			h.HasTopOffice = true
		}
	}
	for i, r := range report.Reps {
		if i == 0 || r.Earnings.GreaterThan(h.TopRepEarnings) {
			h.TopRep, h.TopRepEarnings = r.UserID, r.Earnings
			h.HasTopRep = true
		}
	}
	if report.ProjectCount > 0 {
		h.AverageCommission = report.TeamEarnings.Div(decimal.NewFromInt(int64(report.ProjectCount)))
	}
	return h
}
