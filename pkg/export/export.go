// Package export renders the downloadable documents of the dashboard.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"

	SettingsFilename = "solar-farm-settings.json"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// AnalyticsFormats lists the formats the analytics report can be exported in.
var AnalyticsFormats = []Format{FormatCSV, FormatXLSX, FormatPDF}

func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

func AnalyticsFilename(period dashboard.Period, f Format) string {
	return fmt.Sprintf("solar-farm-analytics-%s.%s", period, f)
}

type settingsDocument struct {
	Profile         models.Profile              `json:"profile"`
	Notifications   models.NotificationSettings `json:"notifications"`
	Security        models.SecuritySettings     `json:"security"`
	System          models.SystemSettings       `json:"system"`
	Theme           models.Theme                `json:"theme"`
	AutoRefresh     bool                        `json:"autoRefresh"`
	RefreshInterval int                         `json:"refreshInterval"`
}

// SettingsJSON renders the settings download, indented by two spaces.
func SettingsJSON(settings models.Settings, theme models.Theme) ([]byte, error) {
	doc := settingsDocument{
		Profile:         settings.Profile,
		Notifications:   settings.Notifications,
		Security:        settings.Security,
		System:          settings.System,
		Theme:           theme,
		AutoRefresh:     settings.AutoRefresh,
		RefreshInterval: settings.RefreshInterval,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Analytics renders the report in the requested format.
func Analytics(view *dashboard.AnalyticsView, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return AnalyticsCSV(view)
	case FormatXLSX:
		return AnalyticsXLSX(view)
	case FormatPDF:
		return AnalyticsPDF(view)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

var dailyHeader = []string{"Date", "Production (kWh)", "Consumption (kWh)", "Efficiency (%)", "Rating", "Peak Power (kW)", "Cost Savings ($)", "Carbon Offset (kg)"}

func dailyCells(r dashboard.DailyRow) []any {
	return []any{r.Date, r.Production, r.Consumption, r.Efficiency, r.Rating.Label, r.PeakPower, r.CostSavings, r.CarbonOffset}
}

type summaryLine struct {
	label string
	value any
}

func summaryLines(view *dashboard.AnalyticsView) []summaryLine {
	return []summaryLine{
		{"Period", string(view.Period)},
		{"Days", view.Days},
		{"Total Production (kWh)", view.TotalProduction},
		{"Total Consumption (kWh)", view.TotalConsumption},
		{"Net Energy (kWh)", view.NetEnergy},
		{"Self Sufficiency (%)", view.SelfSufficiency},
		{"Average Efficiency (%)", view.AverageEfficiency},
		{"Efficiency Rating", view.EfficiencyRating.Label},
		{"Total Cost Savings ($)", view.TotalSavings},
		{"Total Carbon Offset (kg)", view.TotalCarbonOffset},
		{"Peak Day", view.PeakDay.Date},
	}
}

func AnalyticsCSV(view *dashboard.AnalyticsView) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(dailyHeader); err != nil {
		return nil, err
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, r := range view.Rows {
		record := []string{r.Date, num(r.Production), num(r.Consumption), num(r.Efficiency), r.Rating.Label,
			num(r.PeakPower), num(r.CostSavings), num(r.CarbonOffset)}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const (
	summarySheet = "summary"
	dailySheet   = "daily"
)

func AnalyticsXLSX(view *dashboard.AnalyticsView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Solar Farm Analytics")
	for i, line := range summaryLines(view) {
		row := i + 3
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), line.value)
	}

	header := make([]any, len(dailyHeader))
	for i, h := range dailyHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(dailySheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range view.Rows {
		cells := dailyCells(r)
		if err := f.SetSheetRow(dailySheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func AnalyticsPDF(view *dashboard.AnalyticsView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Solar Farm Analytics")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, line := range summaryLines(view) {
		value := line.value
		if v, ok := value.(float64); ok {
			value = fmt.Sprintf("%.2f", v)
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: %v", line.label, value))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	widths := []float64{22, 26, 28, 24, 32, 24, 18}
	columns := []string{"Date", "Production", "Consumption", "Efficiency", "Rating", "Peak kW", "Savings"}
	pdf.SetFont("Arial", "B", 9)
	for i, c := range columns {
		pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range view.Rows {
		pdf.CellFormat(widths[0], 6, r.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.1f", r.Production), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.1f", r.Consumption), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f%%", r.Efficiency), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.Rating.Label, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.1f", r.PeakPower), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.2f", r.CostSavings), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
