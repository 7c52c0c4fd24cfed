package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

func sampleReportData(days int) *ReportData {
	engine := analytics.NewEngine(time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	start := engine.AddDays(end, -(days - 1))

	var rec analytics.Records
	for i := 0; i < days; i++ {
		day := engine.AddDays(start, i)
		rec.Bowel = append(rec.Bowel, model.BowelRecord{
			Timestamp:   day.Add(8 * time.Hour),
			BristolType: 1 + i%7,
			HasBlood:    i%5 == 0,
			PainLevel:   i % 10,
		})
		rec.Symptoms = append(rec.Symptoms, model.SymptomRecord{
			Timestamp: day.Add(20 * time.Hour),
			Bloating:  i % 4,
		})
	}
	rec.ActiveMedications = 1

	return &ReportData{
		UserID:   "user-1",
		Start:    start,
		End:      end,
		Analysis: engine.Analyze(rec, start, end),
		Medications: []model.Medication{
			{ID: "med-1", Name: "Mesalamine", Dosage: "1.2g", Frequency: "twice daily", Category: model.MedicationAminosalicylate, Active: true},
			{ID: "med-2", Name: "美沙拉嗪", Category: model.MedicationOther, Active: true},
		},
		GeneratedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestPDFGenerator_Generate_Success(t *testing.T) {
	// Arrange
	generator := NewPDFGenerator(zap.NewNop())

	// Act
	pdfBytes, err := generator.Generate(sampleReportData(30))

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]), "Should be a valid PDF file")
}

func TestPDFGenerator_Generate_EmptyPeriod(t *testing.T) {
	generator := NewPDFGenerator(zap.NewNop())
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	pdfBytes, err := generator.Generate(&ReportData{
		UserID: "user-1",
		Start:  start,
		End:    start,
	})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestPDFGenerator_Generate_LongPeriodPaginates(t *testing.T) {
	generator := NewPDFGenerator(zap.NewNop())

	short, err := generator.Generate(sampleReportData(7))
	require.NoError(t, err)
	long, err := generator.Generate(sampleReportData(90))
	require.NoError(t, err)

	assert.Greater(t, len(long), len(short))
}

func TestDailyRow(t *testing.T) {
	day := analytics.DailySummary{
		Date:             time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		BowelCount:       2,
		BristolTypes:     []int{4, 7},
		HasBlood:         true,
		SymptomSeverity:  3,
		MedicationsTaken: 1,
		MedicationsTotal: 2,
	}

	assert.Equal(t,
		"2024-05-03  2 movements  Bristol [4, 7] [blood]  Symptoms: severe  Medication: 1/2",
		dailyRow(day),
	)
}

func TestTrendLabel(t *testing.T) {
	assert.Equal(t, "Improving", trendLabel(analytics.TrendImproving))
	assert.Equal(t, "Stable", trendLabel(analytics.TrendStable))
	assert.Equal(t, "Worsening", trendLabel(analytics.TrendWorsening))
}
