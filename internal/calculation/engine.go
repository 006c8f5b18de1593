package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/solarpipe/commission/internal/domain"
)

var thousand = decimal.NewFromInt(1000)

// Engine computes commission breakdowns and earnings aggregates under a
// compensation Policy. It holds no mutable state once configured, so a single
// Engine may serve concurrent callers. Callers that share a project slice
// with a writer must hand the engine a snapshot.
type Engine struct {
	Policy domain.Policy
	Logger Logger
}

// NewEngine creates an engine using the default compensation plan.
func NewEngine() *Engine {
	return NewEngineWithPolicy(domain.DefaultPolicy())
}

// NewEngineWithPolicy creates an engine for a custom compensation plan.
func NewEngineWithPolicy(policy domain.Policy) *Engine {
	return &Engine{
		Policy: policy,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger
// is used. Call it before the engine is shared between goroutines.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

var defaultEngine = NewEngine()

// ComputeBreakdown computes one project's breakdown under the default plan.
func ComputeBreakdown(project domain.Project, payType domain.PayType) domain.CommissionBreakdown {
	return defaultEngine.ComputeBreakdown(project, payType)
}

// CalculateTeamEarnings sums rep commission for the year under the default plan.
func CalculateTeamEarnings(projects []domain.Project, year int, payType domain.PayType) decimal.Decimal {
	return defaultEngine.CalculateTeamEarnings(projects, year, payType)
}

// CalculateManagerCommission sums the manager override for the year under the default plan.
func CalculateManagerCommission(projects []domain.Project, year int) decimal.Decimal {
	return defaultEngine.CalculateManagerCommission(projects, year)
}

// CalculateTeamRevenue sums contract revenue for the year.
func CalculateTeamRevenue(projects []domain.Project, year int) decimal.Decimal {
	return defaultEngine.CalculateTeamRevenue(projects, year)
}

// CalculateTeamEarningsByOffice is CalculateTeamEarnings restricted to one office.
func CalculateTeamEarningsByOffice(projects []domain.Project, office string, year int, payType domain.PayType) decimal.Decimal {
	return defaultEngine.CalculateTeamEarningsByOffice(projects, office, year, payType)
}

// CalculateTeamRevenueByOffice is CalculateTeamRevenue restricted to one office.
func CalculateTeamRevenueByOffice(projects []domain.Project, office string, year int) decimal.Decimal {
	return defaultEngine.CalculateTeamRevenueByOffice(projects, office, year)
}

// CalculateManagerCommissionByOffice is CalculateManagerCommission restricted to one office.
func CalculateManagerCommissionByOffice(projects []domain.Project, office string, year int) decimal.Decimal {
	return defaultEngine.CalculateManagerCommissionByOffice(projects, office, year)
}

// CalculateRepEarnings pays each rep at their own resolved tier under the default plan.
func CalculateRepEarnings(projects []domain.Project, year int) []domain.RepEarnings {
	return defaultEngine.CalculateRepEarnings(projects, year)
}

// ResolvePayType infers a rep's tier from their paid-project history under the default plan.
func ResolvePayType(userID string, projects []domain.Project) domain.PayType {
	return defaultEngine.ResolvePayType(userID, projects)
}

// BuildReport assembles a year report under the default plan.
func BuildReport(projects []domain.Project, opts ReportOptions) *domain.EarningsReport {
	return defaultEngine.BuildReport(projects, opts)
}
