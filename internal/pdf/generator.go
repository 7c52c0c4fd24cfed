package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/report"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

const (
	pageMargin  = 15.0
	barMaxWidth = 110.0
	dateLayout  = "2006-01-02"
	disclaimer  = "Generated automatically by GutTracker. For reference only, not medical advice."
)

// bristolColors are the fill colors of the distribution bars, by type
var bristolColors = [...][3]int{
	{140, 69, 18},
	{161, 82, 46},
	{107, 143, 36},
	{46, 140, 87},
	{69, 130, 181},
	{209, 105, 31},
	{204, 92, 92},
}

var bristolNames = [...]string{"Hard lumps", "Lumpy", "Cracked", "Normal", "Soft blobs", "Mushy", "Watery"}

// PDFGenerator renders gut health reports as PDF
type PDFGenerator struct {
	logger *zap.Logger
}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator(logger *zap.Logger) *PDFGenerator {
	return &PDFGenerator{
		logger: logger,
	}
}

// ReportData contains all data needed for report generation
type ReportData struct {
	UserID      string
	Start       time.Time
	End         time.Time
	Analysis    analytics.Analysis
	Medications []model.Medication
	GeneratedAt time.Time
}

// Generate creates a PDF report from the provided data
func (g *PDFGenerator) Generate(data *ReportData) ([]byte, error) {
	g.logger.Info("generating PDF report",
		zap.String("user_id", data.UserID),
		zap.Int("days", data.Analysis.Stats.Days),
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, disclaimer, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	g.addTitle(pdf, data)
	g.addStatsTable(pdf, data.Analysis.Stats)
	g.addBristolDistribution(pdf, data.Analysis.Stats)
	g.addTrends(pdf, data.Analysis.Stats)
	g.addWeekdayPatterns(pdf, data.Analysis.Weekdays)
	g.addMedicationList(pdf, data.Medications)
	g.addDailyDetails(pdf, data.Analysis.Summaries)

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		g.logger.Error("failed to generate PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	g.logger.Info("PDF report generated successfully",
		zap.Int("size_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

// addTitle adds the report title and header information
func (g *PDFGenerator) addTitle(pdf *gofpdf.Fpdf, data *ReportData) {
	generated := data.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, "GutTracker Gut Health Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s to %s (%d days)",
		data.Start.Format(dateLayout), data.End.Format(dateLayout), data.Analysis.Stats.Days), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", generated.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

// addSectionHeader adds a section header
func (g *PDFGenerator) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

// addStatsTable lays the period statistics out in two columns
func (g *PDFGenerator) addStatsTable(pdf *gofpdf.Fpdf, stats analytics.PeriodStats) {
	g.addSectionHeader(pdf, "Bowel Statistics")

	rows := [][2]string{
		{"Total movements", fmt.Sprintf("%d", stats.TotalBowelMovements)},
		{"Average per day", fmt.Sprintf("%.1f", stats.AvgBowelPerDay)},
		{"Bristol average", fmt.Sprintf("%.1f", stats.AvgBristol)},
		{"Days with blood", fmt.Sprintf("%d", stats.BloodDays)},
		{"Average pain", fmt.Sprintf("%.1f / 10", stats.AvgPain)},
		{"Diarrhea days", fmt.Sprintf("%d", stats.DiarrheaDays)},
		{"Constipation days", fmt.Sprintf("%d", stats.ConstipationDays)},
		{"Normal days", fmt.Sprintf("%d", stats.NormalDays)},
	}

	pageWidth, _ := pdf.GetPageSize()
	colWidth := (pageWidth - 2*pageMargin) / 2

	for i, row := range rows {
		fill := (i/2)%2 == 0
		pdf.SetFillColor(245, 245, 245)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(colWidth*0.6, 7, row[0], "", 0, "L", fill, 0, "")
		pdf.SetFont("Arial", "B", 10)
		ln := 0
		if i%2 == 1 {
			ln = 1
		}
		pdf.CellFormat(colWidth*0.4, 7, row[1], "", ln, "L", fill, 0, "")
	}
	pdf.Ln(6)
}

// addBristolDistribution draws one bar per Bristol type, scaled to the
// most frequent type
func (g *PDFGenerator) addBristolDistribution(pdf *gofpdf.Fpdf, stats analytics.PeriodStats) {
	g.addSectionHeader(pdf, "Bristol Distribution")

	maxCount := 0
	for _, count := range stats.BristolDistribution {
		maxCount = max(maxCount, count)
	}

	for t := model.BristolMin; t <= model.BristolMax; t++ {
		count := stats.BristolDistribution[t]
		pdf.CellFormat(35, 6, fmt.Sprintf("Type %d %s", t, bristolNames[t-1]), "", 0, "L", false, 0, "")

		x, y := pdf.GetXY()
		width := 0.0
		if maxCount > 0 {
			width = barMaxWidth * float64(count) / float64(maxCount)
		}
		if width > 0 {
			c := bristolColors[t-1]
			pdf.SetFillColor(c[0], c[1], c[2])
			pdf.Rect(x, y+1, width, 4, "F")
		}
		pdf.SetX(x + width + 2)
		pdf.CellFormat(0, 6, strconv.Itoa(count), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

// addTrends adds the symptom and bowel trend section
func (g *PDFGenerator) addTrends(pdf *gofpdf.Fpdf, stats analytics.PeriodStats) {
	g.addSectionHeader(pdf, "Symptom Trend")

	pdf.CellFormat(0, 6, fmt.Sprintf("Symptom trend: %s", trendLabel(stats.SymptomTrend)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Average pain: %.1f / 10", stats.AvgPain), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Bowel trend: %s", trendLabel(stats.BowelTrend)), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

// addWeekdayPatterns adds the average movements per weekday
func (g *PDFGenerator) addWeekdayPatterns(pdf *gofpdf.Fpdf, patterns []analytics.WeekdayPattern) {
	g.addSectionHeader(pdf, "Weekday Pattern")

	if len(patterns) == 0 {
		pdf.CellFormat(0, 8, "No data recorded during this period.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFont("Arial", "B", 10)
	for _, p := range patterns {
		pdf.CellFormat(25, 6, p.Weekday.String()[:3], "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, p := range patterns {
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f", p.AvgCount), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(6)
}

// addMedicationList adds medication list section
func (g *PDFGenerator) addMedicationList(pdf *gofpdf.Fpdf, medications []model.Medication) {
	g.addSectionHeader(pdf, "Medication List")

	if len(medications) == 0 {
		pdf.CellFormat(0, 8, "No medications recorded.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	// user-entered text is converted to the core font encoding
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, med := range medications {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, tr(med.Name), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		if med.Dosage != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("  Dosage: %s", tr(med.Dosage)), "", 1, "L", false, 0, "")
		}
		if med.Frequency != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("  Frequency: %s", tr(med.Frequency)), "", 1, "L", false, 0, "")
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("  Category: %s", med.Category), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
	pdf.Ln(5)
}

// addDailyDetails lists the days with records, newest first
func (g *PDFGenerator) addDailyDetails(pdf *gofpdf.Fpdf, summaries []analytics.DailySummary) {
	g.addSectionHeader(pdf, "Daily Details")

	days := report.ActiveDays(summaries)
	if len(days) == 0 {
		pdf.CellFormat(0, 8, "No records during this period.", "", 1, "L", false, 0, "")
		return
	}

	pdf.SetFont("Courier", "", 9)
	for _, day := range days {
		if day.HasBlood {
			pdf.SetTextColor(200, 0, 0)
		}
		pdf.CellFormat(0, 5, dailyRow(day), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

func dailyRow(day analytics.DailySummary) string {
	types := make([]string, len(day.BristolTypes))
	for i, t := range day.BristolTypes {
		types[i] = strconv.Itoa(t)
	}

	row := fmt.Sprintf("%s  %d movements  Bristol [%s]", day.Date.Format(dateLayout), day.BowelCount, strings.Join(types, ", "))
	if day.HasBlood {
		row += " [blood]"
	}
	if day.SymptomSeverity > 0 {
		row += fmt.Sprintf("  Symptoms: %s", day.SeverityLevel())
	}
	if day.MedicationsTotal > 0 {
		row += fmt.Sprintf("  Medication: %d/%d", day.MedicationsTaken, day.MedicationsTotal)
	}
	return row
}

func trendLabel(t analytics.Trend) string {
	switch t {
	case analytics.TrendImproving:
		return "Improving"
	case analytics.TrendWorsening:
		return "Worsening"
	default:
		return "Stable"
	}
}
