package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/solarpipe/commission/internal/domain"
	"github.com/solarpipe/commission/pkg/dateutil"
	"github.com/solarpipe/commission/pkg/money"
)

// Qualifies reports whether a project counts toward the given year's
// earnings and revenue: its install date must parse to that year and it must
// not be cancelled. Missing or unreadable dates exclude the project.
func (e *Engine) Qualifies(project domain.Project, year int) bool {
	if project.Status == domain.StatusCancelled {
		return false
	}
	y, ok := dateutil.Year(project.InstallDate)
	if !ok {
		if project.InstallDate != "" {
			e.Logger.Debugf("project %s: install date %q not recognized, excluded", project.ID, project.InstallDate)
		}
		return false
	}
	return y == year
}

// FilterByOffice returns the projects whose office matches exactly.
func FilterByOffice(projects []domain.Project, office string) []domain.Project {
	var out []domain.Project
	for _, p := range projects {
		if p.Office == office {
			out = append(out, p)
		}
	}
	return out
}

// CalculateTeamEarnings sums FinalCommission over the year's qualifying
// projects with every project paid at the same tier. It answers "what would
// the team earn if everyone were at this tier", not each rep's actual pay;
// see CalculateRepEarnings for that.
func (e *Engine) CalculateTeamEarnings(projects []domain.Project, year int, payType domain.PayType) decimal.Decimal {
	total := decimal.Zero
	for _, p := range projects {
		if !e.Qualifies(p, year) {
			continue
		}
		total = total.Add(e.ComputeBreakdown(p, payType).FinalCommission)
	}
	return total
}

// CalculateManagerCommission sums the flat per-kW manager override over the
// year's qualifying projects. Projects without a positive size contribute nothing.
func (e *Engine) CalculateManagerCommission(projects []domain.Project, year int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range projects {
		if !e.Qualifies(p, year) {
			continue
		}
		total = total.Add(e.managerCommissionFor(p))
	}
	return total
}

func (e *Engine) managerCommissionFor(project domain.Project) decimal.Decimal {
	size, ok := money.Parse(string(project.SystemSize))
	if !ok || !size.IsPositive() {
		return decimal.Zero
	}
	return size.Mul(e.Policy.ManagerRatePerKW)
}

// CalculateTeamRevenue sums contract value over the year's qualifying
// projects, preferring each project's recorded payment amount.
func (e *Engine) CalculateTeamRevenue(projects []domain.Project, year int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range projects {
		if !e.Qualifies(p, year) {
			continue
		}
		total = total.Add(e.revenueFor(p))
	}
	return total
}

// revenueFor uses the payment amount when present and non-zero, otherwise
// size x PPW x 1000.
func (e *Engine) revenueFor(project domain.Project) decimal.Decimal {
	if payment := money.ParseOrZero(string(project.PaymentAmount)); !payment.IsZero() {
		return payment
	}
	size := e.numeric(project.ID, "system_size", project.SystemSize)
	ppw := e.numeric(project.ID, "gross_ppw", project.GrossPPW)
	return size.Mul(ppw).Mul(thousand)
}

// CalculateTeamEarningsByOffice filters to one office before applying the
// year and status rules.
func (e *Engine) CalculateTeamEarningsByOffice(projects []domain.Project, office string, year int, payType domain.PayType) decimal.Decimal {
	return e.CalculateTeamEarnings(FilterByOffice(projects, office), year, payType)
}

// CalculateTeamRevenueByOffice filters to one office before applying the
// year and status rules.
func (e *Engine) CalculateTeamRevenueByOffice(projects []domain.Project, office string, year int) decimal.Decimal {
	return e.CalculateTeamRevenue(FilterByOffice(projects, office), year)
}

// CalculateManagerCommissionByOffice filters to one office before applying
// the year and status rules.
func (e *Engine) CalculateManagerCommissionByOffice(projects []domain.Project, office string, year int) decimal.Decimal {
	return e.CalculateManagerCommission(FilterByOffice(projects, office), year)
}

// CalculateRepEarnings pays every rep with qualifying projects in the year
// at the tier resolved from their own paid history. Results are sorted by
// user ID.
func (e *Engine) CalculateRepEarnings(projects []domain.Project, year int) []domain.RepEarnings {
	return e.repEarnings(projects, projects, year)
}

// repEarnings computes earnings over scoped while resolving tiers from history.
func (e *Engine) repEarnings(scoped, history []domain.Project, year int) []domain.RepEarnings {
	paid := paidCountsByUser(history)
	byUser := make(map[string]*domain.RepEarnings)
	for _, p := range scoped {
		if !e.Qualifies(p, year) {
			continue
		}
		rep, ok := byUser[p.UserID]
		if !ok {
			rep = &domain.RepEarnings{
				UserID:       p.UserID,
				PaidProjects: paid[p.UserID],
				PayType:      e.Policy.TierForPaidCount(paid[p.UserID]),
				Earnings:     decimal.Zero,
			}
			byUser[p.UserID] = rep
		}
		rep.ProjectCount++
		rep.Earnings = rep.Earnings.Add(e.ComputeBreakdown(p, rep.PayType).FinalCommission)
	}

	out := make([]domain.RepEarnings, 0, len(byUser))
	for _, rep := range byUser {
		out = append(out, *rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
