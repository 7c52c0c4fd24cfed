package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

var scoreDay = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func normalMovements(n int, pains ...int) []model.BowelRecord {
	out := make([]model.BowelRecord, n)
	for i := range out {
		out[i] = bowelAt(scoreDay.Add(time.Duration(i+1)*time.Hour), 4, false, 0)
		if i < len(pains) {
			out[i].PainLevel = pains[i]
		}
	}
	return out
}

func severeSymptoms() *model.SymptomRecord {
	s := &model.SymptomRecord{Timestamp: scoreDay.Add(20 * time.Hour), SleepQuality: 3, Mood: 1}
	for _, kind := range model.SymptomKinds() {
		s.SetSeverity(kind, 3)
	}
	return s
}

func TestComputeHealthScore_NoMovementWithFullAdherence(t *testing.T) {
	// Act
	score := ComputeHealthScore(nil, nil, nil, 2, 2)

	// Assert
	assert.Equal(t, 85, score.Score)
	assert.Equal(t, LevelExcellent, score.Level)
	assert.Equal(t, []string{DetailNoMovement}, score.Details)
}

func TestComputeHealthScore_SevereDay(t *testing.T) {
	// Arrange
	bowel := []model.BowelRecord{bowelAt(scoreDay.Add(7*time.Hour), 7, true, 8)}
	symptom := severeSymptoms()
	require.Equal(t, 3, symptom.OverallSeverity())
	require.True(t, symptom.Fever)

	// Act
	score := ComputeHealthScore(bowel, symptom, nil, 0, 0)

	// Assert
	// 100 - 8 abnormal - 15 blood - 15 pain - 15 peak - 5 burden - 5 fever - 3 sleep
	assert.Equal(t, 34, score.Score)
	assert.Equal(t, LevelPoor, score.Level)
	assert.Equal(t, []string{DetailBloodPresent, DetailFever}, score.Details)
}

func TestComputeHealthScore_ExtremeDayClampsAtZero(t *testing.T) {
	bowel := make([]model.BowelRecord, 7)
	for i := range bowel {
		bowel[i] = bowelAt(scoreDay.Add(time.Duration(i)*time.Hour), 7, true, 10)
	}

	score := ComputeHealthScore(bowel, severeSymptoms(), nil, 0, 3)

	assert.Equal(t, 0, score.Score)
	assert.Equal(t, LevelPoor, score.Level)
	assert.Equal(t, []string{DetailFrequentMovements, DetailBloodPresent, DetailFever, DetailMedicationMissed}, score.Details)
}

func TestComputeHealthScore_PerfectDayClampsAtHundred(t *testing.T) {
	symptom := &model.SymptomRecord{Timestamp: scoreDay.Add(20 * time.Hour), Mood: 5}

	score := ComputeHealthScore(normalMovements(1), symptom, nil, 1, 1)

	assert.Equal(t, 100, score.Score)
	assert.Equal(t, LevelExcellent, score.Level)
	assert.Empty(t, score.Details)
	assert.NotNil(t, score.Details)
}

func TestComputeHealthScore_Frequency(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		want    int
		details []string
	}{
		{"normal", 2, 100, []string{DetailSymptomsNotRecorded}},
		{"above normal", 4, 92, []string{DetailAboveNormal, DetailSymptomsNotRecorded}},
		{"five", 5, 92, []string{DetailAboveNormal, DetailSymptomsNotRecorded}},
		{"frequent", 6, 80, []string{DetailFrequentMovements, DetailSymptomsNotRecorded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeHealthScore(normalMovements(tt.count), nil, nil, 0, 0)
			assert.Equal(t, tt.want, score.Score)
			assert.Equal(t, tt.details, score.Details)
		})
	}
}

func TestComputeHealthScore_PainUsesTruncatedMean(t *testing.T) {
	// mean 4.5 truncates to 4, penalty 8
	score := ComputeHealthScore(normalMovements(2, 4, 5), nil, nil, 0, 0)
	assert.Equal(t, 92, score.Score)

	// mean 3.5 truncates to 3, no penalty
	score = ComputeHealthScore(normalMovements(2, 3, 4), nil, nil, 0, 0)
	assert.Equal(t, 100, score.Score)
}

func TestComputeHealthScore_SymptomDirection(t *testing.T) {
	today := &model.SymptomRecord{Bloating: 1}
	worse := &model.SymptomRecord{Nausea: 2}
	calm := &model.SymptomRecord{}

	improving := ComputeHealthScore(nil, today, severeSymptoms(), 0, 0)
	assert.Equal(t, 85, improving.Score)
	assert.Equal(t, []string{DetailNoMovement, DetailSymptomsImproving}, improving.Details)

	worsening := ComputeHealthScore(nil, worse, calm, 0, 0)
	assert.Equal(t, 70, worsening.Score)
	assert.Equal(t, LevelGood, worsening.Level)
	assert.Equal(t, []string{DetailNoMovement, DetailSymptomsWorsening}, worsening.Details)

	unchanged := ComputeHealthScore(nil, worse, worse, 0, 0)
	assert.Equal(t, 75, unchanged.Score)
	assert.Equal(t, []string{DetailNoMovement}, unchanged.Details)
}

func TestComputeHealthScore_SleepAndMood(t *testing.T) {
	poorSleep := ComputeHealthScore(nil, &model.SymptomRecord{SleepQuality: 2}, nil, 0, 0)
	assert.Equal(t, 82, poorSleep.Score)

	goodMood := ComputeHealthScore(nil, &model.SymptomRecord{Mood: 4}, nil, 0, 0)
	assert.Equal(t, 87, goodMood.Score)
}

func TestComputeHealthScore_MedicationAdherence(t *testing.T) {
	tests := []struct {
		name  string
		taken int
		total int
		want  int
	}{
		{"none configured", 0, 0, 85},
		{"complete", 2, 2, 85},
		{"over-logged", 3, 2, 85},
		{"half", 1, 2, 75},
		{"one of three", 1, 3, 72},
		{"two of three", 2, 3, 78},
		{"missed", 0, 2, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeHealthScore(nil, nil, nil, tt.taken, tt.total)
			assert.Equal(t, tt.want, score.Score)
			assert.Equal(t, tt.taken == 0 && tt.total > 0, contains(score.Details, DetailMedicationMissed))
		})
	}
}

func TestComputeHealthScore_NormalcyBonusNeedsAllNormal(t *testing.T) {
	bowel := append(normalMovements(1), bowelAt(scoreDay.Add(9*time.Hour), 2, false, 0))

	score := ComputeHealthScore(bowel, nil, nil, 0, 0)

	// 100 - 8 abnormal - 5 not recorded, no bonus
	assert.Equal(t, 87, score.Score)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelExcellent, LevelFor(100))
	assert.Equal(t, LevelExcellent, LevelFor(80))
	assert.Equal(t, LevelGood, LevelFor(79))
	assert.Equal(t, LevelGood, LevelFor(60))
	assert.Equal(t, LevelFair, LevelFor(59))
	assert.Equal(t, LevelFair, LevelFor(40))
	assert.Equal(t, LevelPoor, LevelFor(39))
	assert.Equal(t, LevelPoor, LevelFor(0))
}

func TestDaySnapshot_PicksLatestSymptomOfDayAndPriorDay(t *testing.T) {
	engine := NewEngine(time.UTC)
	day := scoreDay
	rec := Records{
		Bowel: []model.BowelRecord{
			bowelAt(day.Add(-2*time.Hour), 1, true, 9),
			bowelAt(day.Add(8*time.Hour), 4, false, 0),
		},
		Symptoms: []model.SymptomRecord{
			{Timestamp: day.Add(-3 * time.Hour), Nausea: 1},
			{Timestamp: day.Add(-20 * time.Hour), Nausea: 3},
			{Timestamp: day.Add(21 * time.Hour), Bloating: 2},
			{Timestamp: day.Add(9 * time.Hour), Bloating: 3},
		},
		MedicationLogs: []model.MedicationLog{
			{MedicationName: "Mesalazine", Timestamp: day.Add(8 * time.Hour)},
			{MedicationName: "Mesalazine", Timestamp: day.Add(-8 * time.Hour)},
		},
		ActiveMedications: 2,
	}

	snap := engine.DaySnapshot(rec, day.Add(12*time.Hour))

	assert.Equal(t, day, snap.Summary.Date)
	assert.Equal(t, 1, snap.Summary.BowelCount)
	assert.Equal(t, 3, snap.Summary.SymptomSeverity)
	assert.Equal(t, 1, snap.Summary.MedicationsTaken)
	// latest today is bloating 2, latest yesterday is nausea 1: worsening
	// 100 - 10 peak - 0 burden - 5 worsening - 10 adherence + 5 bonus
	assert.Equal(t, 80, snap.Score.Score)
	assert.Equal(t, []string{DetailSymptomsWorsening}, snap.Score.Details)
}

func TestAnalyze(t *testing.T) {
	engine := NewEngine(time.UTC)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rec := Records{
		Bowel: []model.BowelRecord{
			bowelAt(start.Add(10*time.Hour), 4, false, 0),
			bowelAt(start.Add(34*time.Hour), 4, false, 0),
		},
	}

	analysis := engine.Analyze(rec, start, start.AddDate(0, 0, 6))

	assert.Len(t, analysis.Summaries, 7)
	assert.Equal(t, 2, analysis.Stats.TotalBowelMovements)
	assert.Len(t, analysis.Weekdays, 7)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
