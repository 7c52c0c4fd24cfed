package analytics

import (
	"math"

	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// HealthScoreLevel buckets a 0-100 health score
type HealthScoreLevel string

const (
	LevelExcellent HealthScoreLevel = "excellent"
	LevelGood      HealthScoreLevel = "good"
	LevelFair      HealthScoreLevel = "fair"
	LevelPoor      HealthScoreLevel = "poor"
)

// Contributing factors reported in HealthScore.Details
const (
	DetailNoMovement          = "no movement recorded"
	DetailFrequentMovements   = "frequent bowel movements"
	DetailAboveNormal         = "above normal frequency"
	DetailBloodPresent        = "blood present"
	DetailFever               = "fever"
	DetailSymptomsImproving   = "symptoms improving"
	DetailSymptomsWorsening   = "symptoms worsening"
	DetailSymptomsNotRecorded = "symptoms not recorded"
	DetailMedicationMissed    = "medication missed"
)

// HealthScore is the composite score of one day
type HealthScore struct {
	Score   int              `json:"score"`
	Level   HealthScoreLevel `json:"level"`
	Details []string         `json:"details"`
}

// LevelFor maps a score to its level
func LevelFor(score int) HealthScoreLevel {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelPoor
	}
}

// ComputeHealthScore scores one day of raw records from 0 to 100.
// symptom and previous are the day's and the prior day's symptom records and
// may be nil. The function is pure and never fails.
func ComputeHealthScore(
	bowel []model.BowelRecord,
	symptom, previous *model.SymptomRecord,
	medicationsTaken, medicationsTotal int,
) HealthScore {
	score := 100
	details := []string{}

	// frequency
	switch n := len(bowel); {
	case n == 0:
		score -= 15
		details = append(details, DetailNoMovement)
	case n >= 6:
		score -= 20
		details = append(details, DetailFrequentMovements)
	case n >= 4:
		score -= 8
		details = append(details, DetailAboveNormal)
	}

	allNormal := len(bowel) > 0
	hasBlood := false
	painSum := 0
	for _, r := range bowel {
		if !model.IsNormalBristol(r.BristolType) {
			score -= 8
			allNormal = false
		}
		hasBlood = hasBlood || r.HasBlood
		painSum += r.Pain()
	}
	if hasBlood {
		score -= 15
		details = append(details, DetailBloodPresent)
	}
	if len(bowel) > 0 {
		if meanPain := painSum / len(bowel); meanPain > 3 {
			score -= min(meanPain*2, 15)
		}
	}

	switch {
	case symptom != nil:
		severity := symptom.OverallSeverity()
		score -= 5 * severity
		score -= min(symptom.SymptomBurden()/3, 5)
		if symptom.Fever {
			score -= 5
			details = append(details, DetailFever)
		}
		if previous != nil {
			switch delta := severity - previous.OverallSeverity(); {
			case delta < 0:
				score += 5
				details = append(details, DetailSymptomsImproving)
			case delta > 0:
				score -= 5
				details = append(details, DetailSymptomsWorsening)
			}
		}
		if symptom.SleepQuality >= 2 {
			score -= 3
		}
		if symptom.Mood >= 4 {
			score += 2
		}
	case len(bowel) > 0:
		// completeness penalty rather than a health penalty
		score -= 5
		details = append(details, DetailSymptomsNotRecorded)
	}

	if medicationsTotal > 0 {
		ratio := float64(max(medicationsTaken, 0)) / float64(medicationsTotal)
		if ratio < 1 {
			score -= int(math.Round((1 - ratio) * 20))
			if ratio == 0 {
				details = append(details, DetailMedicationMissed)
			}
		}
	}

	if allNormal {
		score += 5
	}

	score = max(0, min(100, score))
	return HealthScore{Score: score, Level: LevelFor(score), Details: details}
}
