package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectResult is one qualifying project with its computed figures.
type ProjectResult struct {
	ProjectID         string              `yaml:"project_id" json:"project_id"`
	CustomerName      string              `yaml:"customer_name" json:"customer_name"`
	Office            string              `yaml:"office" json:"office"`
	UserID            string              `yaml:"user_id" json:"user_id"`
	Status            Status              `yaml:"status" json:"status"`
	Breakdown         CommissionBreakdown `yaml:"breakdown" json:"breakdown"`
	Revenue           decimal.Decimal     `yaml:"revenue" json:"revenue"`
	ManagerCommission decimal.Decimal     `yaml:"manager_commission" json:"manager_commission"`
}

// OfficeSummary rolls up one sales office for the report year.
type OfficeSummary struct {
	Office            string          `yaml:"office" json:"office"`
	ProjectCount      int             `yaml:"project_count" json:"project_count"`
	TeamEarnings      decimal.Decimal `yaml:"team_earnings" json:"team_earnings"`
	ManagerCommission decimal.Decimal `yaml:"manager_commission" json:"manager_commission"`
	TeamRevenue       decimal.Decimal `yaml:"team_revenue" json:"team_revenue"`
}

// RepEarnings is one rep's earnings at the tier resolved from their own history.
type RepEarnings struct {
	UserID       string          `yaml:"user_id" json:"user_id"`
	PayType      PayType         `yaml:"pay_type" json:"pay_type"`
	PaidProjects int             `yaml:"paid_projects" json:"paid_projects"`
	ProjectCount int             `yaml:"project_count" json:"project_count"`
	Earnings     decimal.Decimal `yaml:"earnings" json:"earnings"`
}

// StatusCount is the number of projects in one status for the report year,
// cancelled ones included.
type StatusCount struct {
	Status Status `yaml:"status" json:"status"`
	Count  int    `yaml:"count" json:"count"`
}

// EarningsReport is the year-level view handed to dashboards and exports.
type EarningsReport struct {
	Year        int       `yaml:"year" json:"year"`
	Office      string    `yaml:"office,omitempty" json:"office,omitempty"`
	PayType     PayType   `yaml:"pay_type" json:"pay_type"`
	PeriodStart time.Time `yaml:"period_start" json:"period_start"`
	PeriodEnd   time.Time `yaml:"period_end" json:"period_end"`

	ProjectCount      int             `yaml:"project_count" json:"project_count"`
	TeamEarnings      decimal.Decimal `yaml:"team_earnings" json:"team_earnings"`
	ManagerCommission decimal.Decimal `yaml:"manager_commission" json:"manager_commission"`
	TeamRevenue       decimal.Decimal `yaml:"team_revenue" json:"team_revenue"`

	Offices      []OfficeSummary `yaml:"offices" json:"offices"`
	Reps         []RepEarnings   `yaml:"reps" json:"reps"`
	StatusCounts []StatusCount   `yaml:"status_counts" json:"status_counts"`
	Projects     []ProjectResult `yaml:"projects" json:"projects"`
}
