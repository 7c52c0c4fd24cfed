package analytics

import "github.com/vcscsvcscs/guttracker/pkg/model"

// PeriodStats summarizes an ordered run of daily summaries
type PeriodStats struct {
	Days                int         `json:"days"`
	TotalBowelMovements int         `json:"total_bowel_movements"`
	AvgBowelPerDay      float64     `json:"avg_bowel_per_day"`
	AvgBristol          float64     `json:"avg_bristol"`
	BristolDistribution map[int]int `json:"bristol_distribution"`
	BloodDays           int         `json:"blood_days"`
	AvgPain             float64     `json:"avg_pain"`
	DiarrheaDays        int         `json:"diarrhea_days"`
	ConstipationDays    int         `json:"constipation_days"`
	NormalDays          int         `json:"normal_days"`
	SymptomTrend        Trend       `json:"symptom_trend"`
	BowelTrend          Trend       `json:"bowel_trend"`
}

// PeriodStats computes statistics over summaries, which must be in
// chronological order. Empty input yields zero values and stable trends.
func (e *Engine) PeriodStats(summaries []DailySummary) PeriodStats {
	stats := PeriodStats{
		Days:                len(summaries),
		BristolDistribution: make(map[int]int),
		SymptomTrend:        TrendStable,
		BowelTrend:          TrendStable,
	}
	if len(summaries) == 0 {
		return stats
	}

	bristolSum, bristolCount := 0, 0
	painSum, painDays := 0, 0
	for _, s := range summaries {
		stats.TotalBowelMovements += s.BowelCount

		var diarrhea, constipation bool
		normal := len(s.BristolTypes) > 0
		for _, raw := range s.BristolTypes {
			t := model.ClampBristol(raw)
			bristolSum += t
			bristolCount++
			stats.BristolDistribution[t]++

			switch model.RiskOf(t) {
			case model.BristolRiskDiarrhea:
				diarrhea = true
				normal = false
			case model.BristolRiskConstipation:
				constipation = true
				normal = false
			}
		}
		if diarrhea {
			stats.DiarrheaDays++
		}
		if constipation {
			stats.ConstipationDays++
		}
		if normal {
			stats.NormalDays++
		}
		if s.HasBlood {
			stats.BloodDays++
		}
		if s.MaxPain > 0 {
			painSum += s.MaxPain
			painDays++
		}
	}

	// every day counts, including days without movements
	stats.AvgBowelPerDay = float64(stats.TotalBowelMovements) / float64(stats.Days)
	// pooled over individual movements, not the mean of daily means
	if bristolCount > 0 {
		stats.AvgBristol = float64(bristolSum) / float64(bristolCount)
	}
	if painDays > 0 {
		stats.AvgPain = float64(painSum) / float64(painDays)
	}

	stats.SymptomTrend = trendOf(summaries, func(s DailySummary) float64 {
		return float64(s.SymptomSeverity)
	})
	stats.BowelTrend = trendOf(summaries, func(s DailySummary) float64 {
		return float64(s.BowelCount)
	})
	return stats
}
