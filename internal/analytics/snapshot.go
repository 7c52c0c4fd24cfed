package analytics

import (
	"time"

	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// Snapshot is the at-a-glance view of a single day
type Snapshot struct {
	Summary DailySummary `json:"summary"`
	Score   HealthScore  `json:"score"`
}

// Analysis bundles everything computed for a period
type Analysis struct {
	Summaries []DailySummary   `json:"summaries"`
	Stats     PeriodStats      `json:"stats"`
	Weekdays  []WeekdayPattern `json:"weekdays"`
}

// Analyze runs the daily aggregation and period analysis for [start, end]
func (e *Engine) Analyze(rec Records, start, end time.Time) Analysis {
	summaries := e.DailySummaries(rec.Bowel, rec.Symptoms, rec.MedicationLogs, rec.ActiveMedications, start, end)
	return Analysis{
		Summaries: summaries,
		Stats:     e.PeriodStats(summaries),
		Weekdays:  e.WeekdayPatterns(summaries),
	}
}

// DaySnapshot selects the records of day from rec and scores them. The
// latest symptom record of the day and of the prior day feed the score.
func (e *Engine) DaySnapshot(rec Records, day time.Time) Snapshot {
	target := e.dayOf(day)
	prior := e.dayOf(e.AddDays(day, -1))

	var bowel []model.BowelRecord
	for _, r := range rec.Bowel {
		if e.dayOf(r.Timestamp) == target {
			bowel = append(bowel, r)
		}
	}

	var today, yesterday *model.SymptomRecord
	for i := range rec.Symptoms {
		s := &rec.Symptoms[i]
		switch e.dayOf(s.Timestamp) {
		case target:
			if today == nil || s.Timestamp.After(today.Timestamp) {
				today = s
			}
		case prior:
			if yesterday == nil || s.Timestamp.After(yesterday.Timestamp) {
				yesterday = s
			}
		}
	}

	summaries := e.DailySummaries(bowel, rec.Symptoms, rec.MedicationLogs, rec.ActiveMedications, day, day)
	summary := summaries[0]

	return Snapshot{
		Summary: summary,
		Score:   ComputeHealthScore(bowel, today, yesterday, summary.MedicationsTaken, rec.ActiveMedications),
	}
}
