package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/solarpipe/commission/internal/domain"
)

// CSVSummarizer writes one row per office plus a TOTAL row.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.EarningsReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Office", "PayType", "Projects", "TeamEarnings", "ManagerCommission", "TeamRevenue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	year := strconv.Itoa(report.Year)
	for _, o := range report.Offices {
		row := []string{
			year,
			o.Office,
			string(report.PayType),
			strconv.Itoa(o.ProjectCount),
			o.TeamEarnings.StringFixed(2),
			o.ManagerCommission.StringFixed(2),
			o.TeamRevenue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	total := []string{
		year,
		"TOTAL",
		string(report.PayType),
		strconv.Itoa(report.ProjectCount),
		report.TeamEarnings.StringFixed(2),
		report.ManagerCommission.StringFixed(2),
		report.TeamRevenue.StringFixed(2),
	}
	if err := w.Write(total); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
