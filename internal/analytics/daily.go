package analytics

import (
	"time"

	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// SeverityLevel buckets a 0-3 symptom severity
type SeverityLevel string

const (
	SeverityGood     SeverityLevel = "good"
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
)

// DailySummary aggregates one calendar day of records
type DailySummary struct {
	Date             time.Time `json:"date"`
	BowelCount       int       `json:"bowel_count"`
	AvgBristol       float64   `json:"avg_bristol"`
	BristolTypes     []int     `json:"bristol_types"`
	HasBlood         bool      `json:"has_blood"`
	MaxPain          int       `json:"max_pain"`
	SymptomSeverity  int       `json:"symptom_severity"`
	MedicationsTaken int       `json:"medications_taken"`
	MedicationsTotal int       `json:"medications_total"`
}

// SeverityLevel maps the day's peak symptom severity to a level
func (s DailySummary) SeverityLevel() SeverityLevel {
	switch {
	case s.SymptomSeverity <= 0:
		return SeverityGood
	case s.SymptomSeverity == 1:
		return SeverityMild
	case s.SymptomSeverity == 2:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// MedicationComplete reports whether every active medication was taken
func (s DailySummary) MedicationComplete() bool {
	return s.MedicationsTotal > 0 && s.MedicationsTaken >= s.MedicationsTotal
}

// HasRecords reports whether anything was recorded on the day
func (s DailySummary) HasRecords() bool {
	return s.BowelCount > 0 || s.SymptomSeverity > 0
}

// DailySummaries folds records into one summary per calendar day from start
// to end inclusive, in chronological order. Days without records produce
// zero-valued summaries. If start falls after end the result is empty.
func (e *Engine) DailySummaries(
	bowel []model.BowelRecord,
	symptoms []model.SymptomRecord,
	medLogs []model.MedicationLog,
	totalActiveMedications int,
	start, end time.Time,
) []DailySummary {
	first, last := e.dayOf(start), e.dayOf(end)
	if last.before(first) {
		return []DailySummary{}
	}

	bowelByDay := make(map[civilDay][]model.BowelRecord)
	for _, r := range bowel {
		d := e.dayOf(r.Timestamp)
		bowelByDay[d] = append(bowelByDay[d], r)
	}
	symptomsByDay := make(map[civilDay][]model.SymptomRecord)
	for _, r := range symptoms {
		d := e.dayOf(r.Timestamp)
		symptomsByDay[d] = append(symptomsByDay[d], r)
	}
	takenByDay := make(map[civilDay]int)
	for _, l := range medLogs {
		if l.Skipped {
			continue
		}
		takenByDay[e.dayOf(l.Timestamp)]++
	}

	summaries := make([]DailySummary, 0, last.ordinal()-first.ordinal()+1)
	for d := first; !last.before(d); d = d.next() {
		s := summarizeDay(bowelByDay[d], symptomsByDay[d])
		s.Date = e.start(d)
		s.MedicationsTaken = takenByDay[d]
		s.MedicationsTotal = totalActiveMedications
		summaries = append(summaries, s)
	}
	return summaries
}

func summarizeDay(bowel []model.BowelRecord, symptoms []model.SymptomRecord) DailySummary {
	s := DailySummary{
		BowelCount:   len(bowel),
		BristolTypes: make([]int, 0, len(bowel)),
	}

	sum := 0
	for _, r := range bowel {
		t := r.Bristol()
		s.BristolTypes = append(s.BristolTypes, t)
		sum += t
		s.HasBlood = s.HasBlood || r.HasBlood
		s.MaxPain = max(s.MaxPain, r.Pain())
	}
	if len(bowel) > 0 {
		s.AvgBristol = float64(sum) / float64(len(bowel))
	}

	// worst moment of the day, not cumulative burden
	for i := range symptoms {
		s.SymptomSeverity = max(s.SymptomSeverity, symptoms[i].OverallSeverity())
	}
	return s
}
