package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarpipe/commission/internal/calculation"
	"github.com/solarpipe/commission/internal/config"
	"github.com/solarpipe/commission/internal/domain"
	"github.com/solarpipe/commission/internal/importer"
	"github.com/solarpipe/commission/internal/output"
	"github.com/solarpipe/commission/pkg/money"
)

func newBreakdownCmd(a *app) *cobra.Command {
	var (
		size, ppw, tier string
		adders          []string
	)
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show the commission breakdown for a single deal",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, flush, err := a.newEngine()
			if err != nil {
				return err
			}
			defer flush()

			project := domain.Project{
				ID:         "cli",
				SystemSize: domain.NumericString(size),
				GrossPPW:   domain.NumericString(ppw),
			}
			for _, name := range adders {
				if err := setAdder(&project, name); err != nil {
					return err
				}
			}
			b := engine.ComputeBreakdown(project, domain.ParsePayType(tier))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "System size:       %s kW\n", b.SystemSize)
			fmt.Fprintf(w, "Contract price:    %s\n", money.FormatCurrency(b.ContractPrice))
			fmt.Fprintf(w, "Base cost:         %s\n", money.FormatCurrency(b.BaseCost))
			fmt.Fprintf(w, "Adders:            %s\n", money.FormatCurrency(b.Adders))
			fmt.Fprintf(w, "Total cost:        %s\n", money.FormatCurrency(b.TotalCost))
			fmt.Fprintf(w, "Commission amount: %s\n", money.FormatCurrency(b.CommissionAmount))
			fmt.Fprintf(w, "Rate:              %s (%s)\n", money.FormatPercentage(b.CommissionPercentage), b.SelectedPayType)
			fmt.Fprintf(w, "Final commission:  %s\n", money.FormatCurrency(b.FinalCommission))
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "system size in kW")
	cmd.Flags().StringVar(&ppw, "ppw", "", "gross price per watt")
	cmd.Flags().StringVar(&tier, "tier", string(domain.PayTypeRookie), "pay tier: Rookie, Vet, Pro")
	cmd.Flags().StringSliceVar(&adders, "adders", nil, "adders: ea-battery, backup-battery, mpu, hti, reroof")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("ppw")
	return cmd
}

func setAdder(p *domain.Project, name string) error {
	switch normalizeAdder(name) {
	case "eabattery":
		p.EABattery = true
	case "backupbattery":
		p.BackupBattery = true
	case "mpu":
		p.MPU = true
	case "hti":
		p.HTI = true
	case "reroof":
		p.Reroof = true
	default:
		return fmt.Errorf("unknown adder %q", name)
	}
	return nil
}

var adderNameReplacer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalizeAdder(name string) string {
	return adderNameReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

func newReportCmd(a *app) *cobra.Command {
	var (
		projectsPath, tier, office, format, outDir string
		year                                       int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the earnings report for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, flush, err := a.newEngine()
			if err != nil {
				return err
			}
			defer flush()

			projects, err := importer.LoadProjects(projectsPath)
			if err != nil {
				return err
			}
			report := engine.BuildReport(projects, calculation.ReportOptions{
				Year:    year,
				PayType: domain.ParsePayType(tier),
				Office:  office,
			})

			if outDir == "" {
				return output.Render(cmd.OutOrStdout(), report, format)
			}
			paths, err := output.GenerateReport(report, format, outDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&projectsPath, "projects", "", "project file (.csv, .yaml, .json)")
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "report year")
	cmd.Flags().StringVar(&tier, "tier", string(domain.PayTypeRookie), "pay tier for team earnings")
	cmd.Flags().StringVar(&office, "office", "", "restrict to one office")
	cmd.Flags().StringVar(&format, "format", "console", "output format (or \"all\" with --out)")
	cmd.Flags().StringVar(&outDir, "out", "", "write timestamped files to this directory instead of stdout")
	_ = cmd.MarkFlagRequired("projects")
	return cmd
}

func newTierCmd(a *app) *cobra.Command {
	var projectsPath, userID string
	cmd := &cobra.Command{
		Use:   "tier",
		Short: "Resolve a rep's pay tier from their paid projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, flush, err := a.newEngine()
			if err != nil {
				return err
			}
			defer flush()

			projects, err := importer.LoadProjects(projectsPath)
			if err != nil {
				return err
			}
			tier := engine.ResolvePayType(userID, projects)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d paid projects, rate %s)\n",
				userID, tier, calculation.CountPaidProjects(userID, projects), money.FormatPercentage(engine.Policy.Rate(tier)))
			return nil
		},
	}
	cmd.Flags().StringVar(&projectsPath, "projects", "", "project file (.csv, .yaml, .json)")
	cmd.Flags().StringVar(&userID, "user", "", "rep user ID")
	_ = cmd.MarkFlagRequired("projects")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newExamplePolicyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-policy",
		Short: "Print the default commission policy as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.MarshalPolicy(config.NewInputParser().CreateExamplePolicy())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
