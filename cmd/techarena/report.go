package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/export"
	"github.com/dukerupert/techarena/internal/model"
)

func monthFlag(s string) (model.Month, error) {
	if s == "" {
		return model.CurrentMonth(), nil
	}
	m, err := model.ParseMonth(s)
	if err != nil {
		return model.Month{}, fmt.Errorf("invalid --month %q, want YYYY-MM", s)
	}
	return m, nil
}

func reportCmd() *cobra.Command {
	var (
		month      string
		technician string
		format     string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the monthly compliance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := monthFlag(month)
			if err != nil {
				return err
			}
			var write func(io.Writer, compliance.Report) error
			switch format {
			case "csv":
				write = export.WriteCSV
			case "xlsx":
				write = export.WriteXLSX
			default:
				return fmt.Errorf("unknown --format %q, want csv or xlsx", format)
			}

			db, svc, err := openService()
			if err != nil {
				return err
			}
			defer db.Close()

			report, err := svc.Compliance(m, technician)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return write(cmd.OutOrStdout(), report)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := write(f, report); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			app.logger.Info("report written", "path", out, "rows", len(report.Rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "month as YYYY-MM (default current month)")
	cmd.Flags().StringVarP(&technician, "technician", "t", compliance.AllTechnicians, "technician id or ALL")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func rankingCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Print the monthly bonus leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := monthFlag(month)
			if err != nil {
				return err
			}
			db, svc, err := openService()
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := svc.Ranking(operator, m)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No bonus tasks in %s\n", m)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tTECHNICIAN\tBONUS")
			for _, e := range entries {
				pos := fmt.Sprint(e.Position)
				if e.Podium {
					pos += "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", pos, e.TechnicianName, e.BonusTasks.StringFixed(1))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "month as YYYY-MM (default current month)")
	return cmd
}
