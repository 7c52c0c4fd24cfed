package analytics

import "math"

// Trend classifies the direction of a metric over a period.
// Improving always means the metric went down.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

const (
	trendRelativeThreshold = 0.15
	trendMinimumThreshold  = 0.3
)

// trendOf compares the first and last days/2 entries of summaries.
// With an odd number of days the middle day belongs to neither half.
func trendOf(summaries []DailySummary, metric func(DailySummary) float64) Trend {
	days := len(summaries)
	mid := days / 2
	if mid == 0 {
		return TrendStable
	}

	firstAvg := meanOf(summaries[:mid], metric)
	secondAvg := meanOf(summaries[days-mid:], metric)
	return classifyTrend(firstAvg, secondAvg)
}

func classifyTrend(firstAvg, secondAvg float64) Trend {
	diff := secondAvg - firstAvg
	threshold := math.Max(firstAvg*trendRelativeThreshold, trendMinimumThreshold)

	switch {
	case diff < -threshold:
		return TrendImproving
	case diff > threshold:
		return TrendWorsening
	default:
		return TrendStable
	}
}

func meanOf(summaries []DailySummary, metric func(DailySummary) float64) float64 {
	if len(summaries) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range summaries {
		total += metric(s)
	}
	return total / float64(len(summaries))
}
