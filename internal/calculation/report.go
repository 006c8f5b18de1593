package calculation

import (
	"sort"

	"github.com/solarpipe/commission/internal/domain"
	"github.com/solarpipe/commission/pkg/dateutil"
)

// ReportOptions selects what BuildReport covers.
type ReportOptions struct {
	Year    int
	PayType domain.PayType
	// Office, when set, limits the report to one sales office. Rep tiers are
	// still resolved from the full collection.
	Office string
}

// BuildReport assembles the year view used by dashboards and exports from
// the same aggregates the individual Calculate functions expose.
func (e *Engine) BuildReport(projects []domain.Project, opts ReportOptions) *domain.EarningsReport {
	payType := opts.PayType.Normalize()
	scoped := projects
	if opts.Office != "" {
		scoped = FilterByOffice(projects, opts.Office)
	}

	report := &domain.EarningsReport{
		Year:              opts.Year,
		Office:            opts.Office,
		PayType:           payType,
		PeriodStart:       dateutil.BeginningOfYear(opts.Year),
		PeriodEnd:         dateutil.EndOfYear(opts.Year),
		TeamEarnings:      e.CalculateTeamEarnings(scoped, opts.Year, payType),
		ManagerCommission: e.CalculateManagerCommission(scoped, opts.Year),
		TeamRevenue:       e.CalculateTeamRevenue(scoped, opts.Year),
		Reps:              e.repEarnings(scoped, projects, opts.Year),
		StatusCounts:      statusCounts(scoped, opts.Year),
	}

	offices := make(map[string]int)
	for _, p := range scoped {
		if !e.Qualifies(p, opts.Year) {
			continue
		}
		report.ProjectCount++
		offices[p.Office]++
		report.Projects = append(report.Projects, domain.ProjectResult{
			ProjectID:         p.ID,
			CustomerName:      p.CustomerName,
			Office:            p.Office,
			UserID:            p.UserID,
			Status:            p.Status,
			Breakdown:         e.ComputeBreakdown(p, payType),
			Revenue:           e.revenueFor(p),
			ManagerCommission: e.managerCommissionFor(p),
		})
	}

	names := make([]string, 0, len(offices))
	for name := range offices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		report.Offices = append(report.Offices, domain.OfficeSummary{
			Office:            name,
			ProjectCount:      offices[name],
			TeamEarnings:      e.CalculateTeamEarningsByOffice(scoped, name, opts.Year, payType),
			ManagerCommission: e.CalculateManagerCommissionByOffice(scoped, name, opts.Year),
			TeamRevenue:       e.CalculateTeamRevenueByOffice(scoped, name, opts.Year),
		})
	}

	e.Logger.Infof("report %d: %d qualifying projects across %d offices", opts.Year, report.ProjectCount, len(report.Offices))
	return report
}

// statusCounts tallies every dated project of the year by status, cancelled
// included. Known statuses come first in pipeline order, others by name.
func statusCounts(projects []domain.Project, year int) []domain.StatusCount {
	counts := make(map[domain.Status]int)
	for _, p := range projects {
		if dateutil.InYear(p.InstallDate, year) {
			counts[p.Status]++
		}
	}

	var out []domain.StatusCount
	for _, s := range domain.AllStatuses {
		if n, ok := counts[s]; ok {
			out = append(out, domain.StatusCount{Status: s, Count: n})
			delete(counts, s)
		}
	}
	var rest []domain.Status
	for s := range counts {
		rest = append(rest, s)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, s := range rest {
		out = append(out, domain.StatusCount{Status: s, Count: counts[s]})
	}
	return out
}
