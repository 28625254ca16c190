// Package export renders a compliance report as CSV or an Excel workbook.
// Both use the same column order and labels.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/model"
)

var Headers = []string{
	"Technician",
	"Total OK/NOK",
	"Days Compliant",
	"Days Non-Compliant",
	"Bonus Tasks(>10/day)",
	"Status",
}

const sheetName = "Compliance"

// Filename returns naleving_bonus_rapport_{month}_{year}.{ext}.
func Filename(month model.Month, ext string) string {
	return fmt.Sprintf("naleving_bonus_rapport_%d_%d.%s", int(month.Month), month.Year, ext)
}

func record(row compliance.Row) []string {
	return []string{
		row.TechnicianName,
		strconv.Itoa(row.TotalValidTasks),
		strconv.Itoa(row.DaysCompliant),
		strconv.Itoa(row.DaysNonCompliant),
		row.BonusTasks.StringFixed(1),
		string(row.Status),
	}
}

// WriteCSV writes a header line and one line per report row.
func WriteCSV(w io.Writer, report compliance.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range report.Rows {
		if err := cw.Write(record(row)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the report as a single-sheet workbook with a bold header
// and a one-decimal bonus column.
func WriteXLSX(w io.Writer, report compliance.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, header := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	bonusFmt := "0.0"
	bonusStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &bonusFmt})
	if err != nil {
		return fmt.Errorf("bonus style: %w", err)
	}

	for i, row := range report.Rows {
		r := i + 2
		values := []any{
			row.TechnicianName,
			row.TotalValidTasks,
			row.DaysCompliant,
			row.DaysNonCompliant,
			row.BonusTasks.Round(1).InexactFloat64(),
			string(row.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		bonusCell, _ := excelize.CoordinatesToCellName(5, r)
		if err := f.SetCellStyle(sheetName, bonusCell, bonusCell, bonusStyle); err != nil {
			return fmt.Errorf("apply bonus style: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "F", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
