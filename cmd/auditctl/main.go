// Command auditctl exports reports and inspects audit projects from the
// command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/app"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/report"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auditctl",
		Short:         "Energy audit command line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(exportCmd(), summaryCmd(), calcCmd(), cloudCheckCmd())
	return cmd
}

// withServices loads configuration, opens the database and runs fn.
func withServices(fn func(ctx context.Context, svcs *service.Services) error) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, svcs, err := app.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(ctx, svcs)
}

func exportCmd() *cobra.Command {
	var (
		userID  string
		format  string
		outDir  string
		archive bool
	)
	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Render a project report to a file",
		Long: `Render the audit report for a project.

Examples:
  auditctl export 6f1c... --user u1                 # CSV into the current directory
  auditctl export 6f1c... --user u1 --format xlsx   # Excel workbook
  auditctl export 6f1c... --user u1 --archive       # also upload, record and announce
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			return withServices(func(ctx context.Context, svcs *service.Services) error {
				out, err := svcs.Reports.Export(ctx, userID, args[0], f, archive)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, out.FileName)
				if err := os.WriteFile(path, out.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				if out.Archive != nil {
					fmt.Fprintln(cmd.OutOrStdout(), out.Archive.URL)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Owner user id")
	cmd.Flags().StringVar(&format, "format", string(report.FormatCSV), "Report format (csv, xlsx)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	cmd.Flags().BoolVar(&archive, "archive", false, "Archive the report in object storage")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func summaryCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "summary <project-id>",
		Short: "Print the project's consumption summary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(func(ctx context.Context, svcs *service.Services) error {
				sum, err := svcs.Reports.Summary(ctx, userID, args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Owner user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func calcCmd() *cobra.Command {
	var (
		in     domain.CalcInput
		mode   string
		tariff float64
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate consumption and cost for one equipment line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := energy.ParseMonthlyMode(mode)
			if err != nil {
				return err
			}
			in.TariffGHSPerKWh = &tariff
			if err := in.Validate(); err != nil {
				return err
			}
			res := energy.NewCalculator(m).Compute(in.Quantity, in.WattageW, in.HoursPerDay, in.DaysPerWeek)
			fmt.Fprintf(cmd.OutOrStdout(), "kWh/day:    %s\nkWh/month:  %s\ncost/month: %s GHS\n",
				report.Fixed{Value: res.KWhPerDay, Places: 4},
				report.Fixed{Value: res.KWhPerMonth, Places: 2},
				report.Fixed{Value: energy.MonthlyCost(res.KWhPerMonth, tariff), Places: 2})
			return nil
		},
	}
	cmd.Flags().IntVar(&in.Quantity, "quantity", 1, "Number of identical units")
	cmd.Flags().Float64Var(&in.WattageW, "wattage", 0, "Rated power per unit in watts")
	cmd.Flags().Float64Var(&in.HoursPerDay, "hours", 0, "Operating hours per day")
	cmd.Flags().IntVar(&in.DaysPerWeek, "days", 7, "Operating days per week")
	cmd.Flags().Float64Var(&tariff, "tariff", domain.DefaultTariff, "Tariff in GHS per kWh")
	cmd.Flags().StringVar(&mode, "mode", string(energy.MonthlyFixed30), "Monthly mode (fixed30, weekly)")
	return cmd
}
