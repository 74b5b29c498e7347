package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"fleet-dashboard/internal/models"

	"github.com/xuri/excelize/v2"
)

var (
	ErrExportEmpty       = errors.New("nothing to export")
	ErrExportUnavailable = errors.New("export source data could not be loaded")
)

const (
	exportAtRisk = "at_risk_drivers"
	exportSales  = "sales"

	atRiskSheet       = "At-Risk Drivers"
	salesSummarySheet = "Sales Summary"
	salesDriversSheet = "Drivers"
)

type exportService struct {
	attendance AttendanceServiceInterface
	sales      SalesServiceInterface
	metrics    MetricsRecorderInterface
}

func NewExportService(
	attendance AttendanceServiceInterface,
	sales SalesServiceInterface,
	metrics MetricsRecorderInterface,
) ExportServiceInterface {
	return &exportService{
		attendance: attendance,
		sales:      sales,
		metrics:    metrics,
	}
}

// ExportAtRiskDrivers renders every driver above the at-risk threshold.
func (s *exportService) ExportAtRiskDrivers(ctx context.Context, filter models.AttendanceFilter) ([]byte, error) {
	started := time.Now()

	summary, err := s.attendance.GetSummary(ctx, filter, 0)
	if err != nil {
		return nil, s.fail(exportAtRisk, err)
	}
	if len(summary.Notices) > 0 {
		return nil, s.fail(exportAtRisk, ErrExportUnavailable)
	}
	if len(summary.AtRiskDrivers) == 0 {
		return nil, s.fail(exportAtRisk, ErrExportEmpty)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", atRiskSheet); err != nil {
		return nil, s.fail(exportAtRisk, err)
	}

	headers := []string{"Driver ID", "Driver Name", "Records", "Late", "Absent", "Early Departure", "Deductions", "Risk %", "Critical"}
	if err := writeHeader(f, atRiskSheet, headers); err != nil {
		return nil, s.fail(exportAtRisk, err)
	}

	for i, driver := range summary.AtRiskDrivers {
		critical := "No"
		if driver.Critical {
			critical = "Yes"
		}
		row := []interface{}{
			driver.DriverID.String(),
			driver.Name,
			driver.Total,
			driver.Late,
			driver.Absent,
			driver.EarlyDeparture,
			driver.Deductions.InexactFloat64(),
			driver.Percentage,
			critical,
		}
		if err := writeRow(f, atRiskSheet, i+2, row); err != nil {
			return nil, s.fail(exportAtRisk, err)
		}
	}

	_ = f.SetColWidth(atRiskSheet, "A", "A", 12)
	_ = f.SetColWidth(atRiskSheet, "B", "B", 28)
	_ = f.SetColWidth(atRiskSheet, "C", "I", 15)

	return s.finish(f, exportAtRisk, len(summary.AtRiskDrivers), started)
}

// ExportSales renders the sales totals and the full per-driver breakdown.
func (s *exportService) ExportSales(ctx context.Context, filter models.TripFilter) ([]byte, error) {
	started := time.Now()

	summary, err := s.sales.GetSummary(ctx, filter, 0)
	if err != nil {
		return nil, s.fail(exportSales, err)
	}
	if len(summary.Notices) > 0 {
		return nil, s.fail(exportSales, ErrExportUnavailable)
	}
	if summary.Stats.TotalTrips == 0 {
		return nil, s.fail(exportSales, ErrExportEmpty)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSummarySheet); err != nil {
		return nil, s.fail(exportSales, err)
	}

	stats := summary.Stats
	totals := [][]interface{}{
		{"Total Trips", stats.TotalTrips},
		{"Cash Trips", stats.CashTrips},
		{"Digital Trips", stats.DigitalTrips},
		{"Unbucketed Trips", stats.UnbucketedTrips},
		{"Total Cash Sales", stats.TotalCashSales.InexactFloat64()},
		{"Total Digital Sales", stats.TotalDigitalSales.InexactFloat64()},
		{"Total Earnings", stats.TotalEarnings.InexactFloat64()},
		{"Total Tips", stats.TotalTips.InexactFloat64()},
		{"Cash %", round1(stats.CashPercentage)},
		{"Digital %", round1(stats.DigitalPercentage)},
		{"Average Trip Value", stats.AverageTripValue.InexactFloat64()},
	}
	if err := writeHeader(f, salesSummarySheet, []string{"Metric", "Value"}); err != nil {
		return nil, s.fail(exportSales, err)
	}
	for i, row := range totals {
		if err := writeRow(f, salesSummarySheet, i+2, row); err != nil {
			return nil, s.fail(exportSales, err)
		}
	}
	_ = f.SetColWidth(salesSummarySheet, "A", "A", 24)
	_ = f.SetColWidth(salesSummarySheet, "B", "B", 16)

	if _, err := f.NewSheet(salesDriversSheet); err != nil {
		return nil, s.fail(exportSales, err)
	}
	headers := []string{"Driver ID", "Driver Name", "Trips", "Cash Sales", "Digital Sales", "Total Sales", "Tips"}
	if err := writeHeader(f, salesDriversSheet, headers); err != nil {
		return nil, s.fail(exportSales, err)
	}
	for i, driver := range summary.Drivers {
		row := []interface{}{
			driver.DriverID.String(),
			driver.DriverName,
			driver.Trips,
			driver.CashSales.InexactFloat64(),
			driver.DigitalSales.InexactFloat64(),
			driver.TotalSales.InexactFloat64(),
			driver.Tips.InexactFloat64(),
		}
		if err := writeRow(f, salesDriversSheet, i+2, row); err != nil {
			return nil, s.fail(exportSales, err)
		}
	}
	if err := writeTotals(f, salesDriversSheet, len(summary.Drivers)+2, []string{"C", "D", "E", "F", "G"}); err != nil {
		return nil, s.fail(exportSales, err)
	}
	_ = f.SetColWidth(salesDriversSheet, "A", "A", 12)
	_ = f.SetColWidth(salesDriversSheet, "B", "B", 28)
	_ = f.SetColWidth(salesDriversSheet, "C", "G", 15)

	return s.finish(f, exportSales, len(summary.Drivers), started)
}

func (s *exportService) finish(f *excelize.File, export string, rows int, started time.Time) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, s.fail(export, fmt.Errorf("failed to write workbook: %w", err))
	}

	s.metrics.IncrementCounter(MetricExportGenerated, map[string]string{"export": export, "status": "success"})
	s.metrics.RecordProcessingTime(MetricExportDuration+export, time.Since(started))

	slog.Info("export generated",
		"export", export,
		"rows", rows,
		"bytes", buf.Len())

	return buf.Bytes(), nil
}

func (s *exportService) fail(export string, err error) error {
	status := "failed"
	if errors.Is(err, ErrExportEmpty) {
		status = "empty"
	}
	s.metrics.IncrementCounter(MetricExportGenerated, map[string]string{"export": export, "status": status})

	if status == "failed" {
		slog.Error("export failed", "export", export, "error", err)
	}
	return err
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// writeTotals adds a TOTAL row summing each column over the data rows above.
func writeTotals(f *excelize.File, sheet string, row int, columns []string) error {
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "TOTAL"); err != nil {
		return err
	}
	for _, col := range columns {
		formula := fmt.Sprintf("SUM(%s2:%s%d)", col, col, row-1)
		if err := f.SetCellFormula(sheet, fmt.Sprintf("%s%d", col, row), formula); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "top", Color: "#000000", Style: 2},
		},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", columns[len(columns)-1], row), style)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
