// Package report renders period analyses as plain-text exports
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

const (
	// DateLayout is used for every date printed in a report
	DateLayout = "2006/01/02"

	maxBarLength = 20
	bloodMarker  = " 🩸"
)

var rule = strings.Repeat("═", 31)

// Text renders analysis for the period [start, end] in the translator's
// language. Daily details list only days with records, newest first.
func Text(tr *locale.Translator, analysis analytics.Analysis, start, end time.Time) string {
	stats := analysis.Stats
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(rule)
	line(tr.T("report.title", nil))
	line(tr.T("report.period", map[string]any{
		"Start": start.Format(DateLayout),
		"End":   end.Format(DateLayout),
		"Days":  stats.Days,
	}))
	line(rule)
	line("")

	line(tr.T("report.section.bowel", nil))
	line(tr.T("report.total", map[string]any{"Count": stats.TotalBowelMovements}))
	line(tr.T("report.average", map[string]any{"Value": oneDecimal(stats.AvgBowelPerDay)}))
	line(tr.T("report.avg_bristol", map[string]any{"Value": oneDecimal(stats.AvgBristol)}))
	line(tr.T("report.blood_days", map[string]any{"Days": stats.BloodDays}))
	line(tr.T("report.diarrhea_days", map[string]any{"Days": stats.DiarrheaDays}))
	line(tr.T("report.constipation_days", map[string]any{"Days": stats.ConstipationDays}))
	line(tr.T("report.normal_days", map[string]any{"Days": stats.NormalDays}))
	line("")

	line(tr.T("report.section.bristol", nil))
	for t := model.BristolMin; t <= model.BristolMax; t++ {
		count := stats.BristolDistribution[t]
		line("  " + tr.T("report.bristol_row", map[string]any{
			"Type":  t,
			"Name":  tr.Bristol(t),
			"Bar":   Bar(count),
			"Count": count,
		}))
	}
	line("")

	line(tr.T("report.section.symptoms", nil))
	line(tr.T("report.trend", map[string]any{"Trend": tr.Trend(stats.SymptomTrend)}))
	line(tr.T("report.bowel_trend", map[string]any{"Trend": tr.Trend(stats.BowelTrend)}))
	line(tr.T("report.avg_pain", map[string]any{"Value": oneDecimal(stats.AvgPain)}))
	line("")

	line(tr.T("report.section.daily", nil))
	for _, day := range ActiveDays(analysis.Summaries) {
		line("  " + DayLine(tr, day))
	}
	line("")

	line(rule)
	line(tr.T("report.footer.generated", nil))
	line(tr.T("report.footer.disclaimer", nil))
	b.WriteString(rule)

	return b.String()
}

// DayLine renders one daily detail row
func DayLine(tr *locale.Translator, day analytics.DailySummary) string {
	types := make([]string, len(day.BristolTypes))
	for i, t := range day.BristolTypes {
		types[i] = strconv.Itoa(t)
	}

	s := tr.T("report.day_row", map[string]any{
		"Date":  day.Date.Format(DateLayout),
		"Count": day.BowelCount,
		"Types": strings.Join(types, ","),
	})
	if day.HasBlood {
		s += bloodMarker
	}
	if day.SymptomSeverity > 0 {
		s += tr.T("report.day_symptoms", map[string]any{"Level": tr.Severity(day.SeverityLevel())})
	}
	if day.MedicationsTotal > 0 {
		s += tr.T("report.day_medication", map[string]any{
			"Taken": day.MedicationsTaken,
			"Total": day.MedicationsTotal,
		})
	}
	return s
}

// ActiveDays returns the days with records, newest first
func ActiveDays(summaries []analytics.DailySummary) []analytics.DailySummary {
	days := make([]analytics.DailySummary, 0, len(summaries))
	for _, s := range summaries {
		if s.HasRecords() {
			days = append(days, s)
		}
	}
	slices.Reverse(days)
	return days
}

// Bar draws count as a block bar of at most 20 cells
func Bar(count int) string {
	return strings.Repeat("█", min(max(count, 0), maxBarLength))
}

func oneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
