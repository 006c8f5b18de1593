package output

import (
	"bytes"
	"encoding/csv"

	"github.com/solarpipe/commission/internal/domain"
)

// CSVDetailedExporter writes the full breakdown of every qualifying project.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.EarningsReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ProjectID", "Customer", "Office", "UserID", "Status", "SystemSize", "ContractPrice", "BaseCost", "Adders", "TotalCost", "CommissionAmount", "CommissionPercentage", "FinalCommission", "PayType", "Revenue", "ManagerCommission"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Projects {
		b := p.Breakdown
		row := []string{
			p.ProjectID,
			p.CustomerName,
			p.Office,
			p.UserID,
			string(p.Status),
			b.SystemSize.String(),
			b.ContractPrice.StringFixed(2),
			b.BaseCost.StringFixed(2),
			b.Adders.StringFixed(2),
			b.TotalCost.StringFixed(2),
			b.CommissionAmount.StringFixed(2),
			b.CommissionPercentage.String(),
			b.FinalCommission.StringFixed(2),
			string(b.SelectedPayType),
			p.Revenue.StringFixed(2),
			p.ManagerCommission.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
