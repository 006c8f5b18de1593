package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/solarpipe/commission/internal/domain"
	"github.com/solarpipe/commission/pkg/money"
)

// ConsoleFormatter renders a plain-text summary for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.EarningsReport) ([]byte, error) {
	var buf bytes.Buffer
	title := fmt.Sprintf("EARNINGS REPORT %d", report.Year)
	if report.Office != "" {
		title += " - " + report.Office
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	fmt.Fprintf(&buf, "Pay tier:            %s\n", report.PayType)
	fmt.Fprintf(&buf, "Qualifying projects: %d\n", report.ProjectCount)
	fmt.Fprintf(&buf, "Team earnings:       %s\n", money.FormatCurrency(report.TeamEarnings))
	fmt.Fprintf(&buf, "Manager commission:  %s\n", money.FormatCurrency(report.ManagerCommission))
	fmt.Fprintf(&buf, "Team revenue:        %s\n", money.FormatCurrency(report.TeamRevenue))

	if len(report.Offices) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "OFFICES")
		for _, o := range report.Offices {
			fmt.Fprintf(&buf, "%s: projects=%d earnings=%s manager=%s revenue=%s\n",
				o.Office,
				o.ProjectCount,
				money.FormatCurrency(o.TeamEarnings),
				money.FormatCurrency(o.ManagerCommission),
				money.FormatCurrency(o.TeamRevenue),
			)
		}
	}

	if len(report.Reps) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "REPS")
		for _, r := range report.Reps {
			fmt.Fprintf(&buf, "%s (%s, %d paid): projects=%d earnings=%s\n",
				r.UserID, r.PayType, r.PaidProjects, r.ProjectCount, money.FormatCurrency(r.Earnings))
		}
	}

	if len(report.StatusCounts) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "PIPELINE")
		for _, s := range report.StatusCounts {
			fmt.Fprintf(&buf, "%s: %d\n", s.Status, s.Count)
		}
	}

	h := AnalyzeReport(report)
	if h.HasTopOffice {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Top office: %s (%s)\n", h.TopOffice, money.FormatCurrency(h.TopOfficeEarnings))
	}
	if h.HasTopRep {
		fmt.Fprintf(&buf, "Top rep: %s (%s)\n", h.TopRep, money.FormatCurrency(h.TopRepEarnings))
	}
	return buf.Bytes(), nil
}
