package analytics

import "time"

// WeekdayPattern is the average activity on one day of the week
type WeekdayPattern struct {
	Weekday    time.Weekday `json:"weekday"`
	Days       int          `json:"days"`
	AvgCount   float64      `json:"avg_count"`
	AvgBristol float64      `json:"avg_bristol"`
}

// WeekdayPatterns groups summaries by weekday in the engine location and
// returns seven entries from Sunday to Saturday. Bristol values are pooled
// per weekday.
func (e *Engine) WeekdayPatterns(summaries []DailySummary) []WeekdayPattern {
	var (
		days       [7]int
		counts     [7]int
		bristolSum [7]int
		bristolN   [7]int
	)
	for _, s := range summaries {
		wd := s.Date.In(e.loc).Weekday()
		days[wd]++
		counts[wd] += s.BowelCount
		for _, t := range s.BristolTypes {
			bristolSum[wd] += t
			bristolN[wd]++
		}
	}

	patterns := make([]WeekdayPattern, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		p := WeekdayPattern{Weekday: wd, Days: days[wd]}
		if days[wd] > 0 {
			p.AvgCount = float64(counts[wd]) / float64(days[wd])
		}
		if bristolN[wd] > 0 {
			p.AvgBristol = float64(bristolSum[wd]) / float64(bristolN[wd])
		}
		patterns[wd] = p
	}
	return patterns
}
