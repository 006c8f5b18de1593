package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/solarpipe/commission/internal/domain"
)

func TestAnalyzeReport(t *testing.T) {
	h := AnalyzeReport(buildTestReport())
	assert.Equal(t, "Dallas", h.TopOffice)
	assert.True(t, h.TopOfficeEarnings.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, "rep-2", h.TopRep)
	assert.True(t, h.AverageCommission.Equal(decimal.NewFromInt(3500)))
}

func TestAnalyzeReportTiesKeepFirst(t *testing.T) {
	r := &domain.EarningsReport{
		Offices: []domain.OfficeSummary{
			{Office: "Austin", TeamEarnings: decimal.NewFromInt(10)},
			{Office: "Boston", TeamEarnings: decimal.NewFromInt(10)},
		},
	}
	h := AnalyzeReport(r)
	assert.Equal(t, "Austin", h.TopOffice)
	assert.True(t, h.HasTopOffice)
	assert.False(t, h.HasTopRep)
	assert.Empty(t, h.TopRep)
	assert.True(t, h.AverageCommission.IsZero())
}

func TestAnalyzeReportBlankOfficeCanWin(t *testing.T) {
	r := &domain.EarningsReport{
		Offices: []domain.OfficeSummary{
			{Office: "", TeamEarnings: decimal.NewFromInt(9000)},
			{Office: "Austin", TeamEarnings: decimal.NewFromInt(10)},
		},
		Reps: []domain.RepEarnings{
			{UserID: "", Earnings: decimal.NewFromInt(500)},
			{UserID: "rep-1", Earnings: decimal.NewFromInt(5)},
		},
	}
	h := AnalyzeReport(r)
	assert.True(t, h.HasTopOffice)
	assert.Equal(t, "", h.TopOffice)
	assert.True(t, h.TopOfficeEarnings.Equal(decimal.NewFromInt(9000)))
	assert.True(t, h.HasTopRep)
	assert.Equal(t, "", h.TopRep)
	assert.True(t, h.TopRepEarnings.Equal(decimal.NewFromInt(500)))
}
