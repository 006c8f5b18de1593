package calculation

import (
	"testing"

	"github.com/solarpipe/commission/internal/domain"
	"github.com/stretchr/testify/assert"
)

// sampleProjects covers two offices, cancelled and undated deals, and a
// neighbouring year.
func sampleProjects() []domain.Project {
	return []domain.Project{
		{ID: "a1", InstallDate: "2024-02-10", Status: domain.StatusPaid, SystemSize: "10", GrossPPW: "4.50", EABattery: true, Office: "Austin", UserID: "rep-1"},
		{ID: "a2", InstallDate: "2024-05-01", Status: domain.StatusInstall, SystemSize: "8", GrossPPW: "5.00", Office: "Austin", UserID: "rep-2", PaymentAmount: "41000"},
		{ID: "a3", InstallDate: "2024-07-19", Status: domain.StatusCancelled, SystemSize: "20", GrossPPW: "6.00", Office: "Austin", UserID: "rep-1"},
		{ID: "d1", InstallDate: "2024-03-03", Status: domain.StatusPTO, SystemSize: "6", GrossPPW: "4.00", Office: "Dallas", UserID: "rep-3"},
		{ID: "d2", InstallDate: "2023-12-31", Status: domain.StatusPaid, SystemSize: "10", GrossPPW: "5.00", Office: "Dallas", UserID: "rep-3"},
		{ID: "d3", InstallDate: "", Status: domain.StatusPaid, SystemSize: "10", GrossPPW: "5.00", Office: "Dallas", UserID: "rep-3"},
		{ID: "d4", InstallDate: "sometime", Status: domain.StatusSiteSurvey, SystemSize: "10", GrossPPW: "5.00", Office: "Dallas", UserID: "rep-3"},
	}
}

func TestQualifies(t *testing.T) {
	engine := NewEngine()
	got := map[string]bool{}
	for _, p := range sampleProjects() {
		got[p.ID] = engine.Qualifies(p, 2024)
	}
	assert.Equal(t, map[string]bool{
		"a1": true,
		"a2": true,
		"a3": false,
		"d1": true,
		"d2": false,
		"d3": false,
		"d4": false,
	}, got)
}

func TestCalculateTeamEarnings(t *testing.T) {
	projects := sampleProjects()

	// a1: 45000-43000=2000; a2: 40000-28000=12000; d1: 24000-21000=3000
	assertDecimal(t, "4080", CalculateTeamEarnings(projects, 2024, domain.PayTypeRookie), "rookie")
	assertDecimal(t, "6630", CalculateTeamEarnings(projects, 2024, domain.PayTypeVet), "vet")
	assertDecimal(t, "8500", CalculateTeamEarnings(projects, 2024, domain.PayTypePro), "pro")

	// d2 only
	assertDecimal(t, "7500", CalculateTeamEarnings(projects, 2023, domain.PayTypePro), "2023 pro")
	assertDecimal(t, "0", CalculateTeamEarnings(projects, 2022, domain.PayTypePro), "empty year")
	assertDecimal(t, "0", CalculateTeamEarnings(nil, 2024, domain.PayTypePro), "nil slice")
}

func TestCalculateTeamEarnings_NeverIncludesCancelled(t *testing.T) {
	cancelled := domain.Project{InstallDate: "2024-01-15", Status: domain.StatusCancelled, SystemSize: "30", GrossPPW: "9.00"}
	for _, year := range []int{2023, 2024, 2025} {
		assertDecimal(t, "0", CalculateTeamEarnings([]domain.Project{cancelled}, year, domain.PayTypePro), "cancelled")
		assertDecimal(t, "0", CalculateTeamRevenue([]domain.Project{cancelled}, year), "cancelled revenue")
		assertDecimal(t, "0", CalculateManagerCommission([]domain.Project{cancelled}, year), "cancelled manager")
	}
}

func TestCalculateManagerCommission(t *testing.T) {
	single := []domain.Project{{InstallDate: "2024-04-04", Status: domain.StatusInstall, SystemSize: "6"}}
	assertDecimal(t, "1050", CalculateManagerCommission(single, 2024), "single project")

	// a1 10kW + a2 8kW + d1 6kW
	assertDecimal(t, "4200", CalculateManagerCommission(sampleProjects(), 2024), "sample")

	skipped := []domain.Project{
		{InstallDate: "2024-04-04", SystemSize: "-4"},
		{InstallDate: "2024-04-04", SystemSize: "0"},
		{InstallDate: "2024-04-04", SystemSize: "tbd"},
		{InstallDate: "2024-04-04", SystemSize: "7.5"},
	}
	assertDecimal(t, "1312.5", CalculateManagerCommission(skipped, 2024), "non positive sizes skipped")
}

func TestCalculateTeamRevenue(t *testing.T) {
	// a1 45000 computed, a2 41000 payment, d1 24000 computed
	assertDecimal(t, "110000", CalculateTeamRevenue(sampleProjects(), 2024), "sample")

	projects := []domain.Project{
		{InstallDate: "2024-01-01", SystemSize: "10", GrossPPW: "4", PaymentAmount: "0"},
		{InstallDate: "2024-01-01", SystemSize: "10", GrossPPW: "4", PaymentAmount: ""},
		{InstallDate: "2024-01-01", SystemSize: "10", GrossPPW: "4", PaymentAmount: "pending"},
		{InstallDate: "2024-01-01", SystemSize: "10", GrossPPW: "4", PaymentAmount: "$39,500.50"},
	}
	assertDecimal(t, "159500.5", CalculateTeamRevenue(projects, 2024), "payment fallback")
}

func TestOfficeVariants(t *testing.T) {
	projects := sampleProjects()

	assertDecimal(t, "3360", CalculateTeamEarningsByOffice(projects, "Austin", 2024, domain.PayTypeRookie), "austin earnings")
	assertDecimal(t, "720", CalculateTeamEarningsByOffice(projects, "Dallas", 2024, domain.PayTypeRookie), "dallas earnings")
	assertDecimal(t, "86000", CalculateTeamRevenueByOffice(projects, "Austin", 2024), "austin revenue")
	assertDecimal(t, "24000", CalculateTeamRevenueByOffice(projects, "Dallas", 2024), "dallas revenue")
	assertDecimal(t, "3150", CalculateManagerCommissionByOffice(projects, "Austin", 2024), "austin manager")
}

func TestOfficeVariants_NoMatchingOfficeIsZero(t *testing.T) {
	projects := sampleProjects()

	assertDecimal(t, "0", CalculateTeamEarningsByOffice(projects, "Houston", 2024, domain.PayTypePro), "earnings")
	assertDecimal(t, "0", CalculateTeamRevenueByOffice(projects, "Houston", 2024), "revenue")
	assertDecimal(t, "0", CalculateManagerCommissionByOffice(projects, "Houston", 2024), "manager")
	assertDecimal(t, "0", CalculateTeamRevenueByOffice(projects, "austin", 2024), "office match is case sensitive")
}

func TestFilterByOffice(t *testing.T) {
	austin := FilterByOffice(sampleProjects(), "Austin")
	assert.Len(t, austin, 3)
	for _, p := range austin {
		assert.Equal(t, "Austin", p.Office)
	}
	assert.Empty(t, FilterByOffice(sampleProjects(), ""))
}

func TestCalculateRepEarnings(t *testing.T) {
	projects := sampleProjects()
	projects = append(projects, paidProjects("rep-2", 10)...)

	reps := CalculateRepEarnings(projects, 2024)
	assert.Len(t, reps, 3)

	assert.Equal(t, "rep-1", reps[0].UserID)
	assert.Equal(t, domain.PayTypeRookie, reps[0].PayType)
	assert.Equal(t, 1, reps[0].PaidProjects)
	assert.Equal(t, 1, reps[0].ProjectCount)
	assertDecimal(t, "480", reps[0].Earnings, "rep-1")

	assert.Equal(t, "rep-2", reps[1].UserID)
	assert.Equal(t, domain.PayTypeVet, reps[1].PayType)
	assertDecimal(t, "4680", reps[1].Earnings, "rep-2")

	assert.Equal(t, "rep-3", reps[2].UserID)
	assert.Equal(t, 2, reps[2].PaidProjects)
	assertDecimal(t, "720", reps[2].Earnings, "rep-3")
}
