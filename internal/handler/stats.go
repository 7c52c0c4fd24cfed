package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/pkg/api"
)

// StatsHandler implements the statistics and health score endpoints
type StatsHandler struct {
	service     StatsService
	loc         *time.Location
	defaultDays int
	logger      *zap.Logger
	now         func() time.Time
}

// NewStatsHandler creates a new StatsHandler. defaultDays is the period used
// when a request does not name one.
func NewStatsHandler(service StatsService, loc *time.Location, defaultDays int, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service:     service,
		loc:         loc,
		defaultDays: defaultDays,
		logger:      logger,
		now:         time.Now,
	}
}

// GetApiV1Stats returns period statistics for the last 7, 30 or 90 days
func (h *StatsHandler) GetApiV1Stats(c *gin.Context, params api.GetApiV1StatsParams) {
	userID := bindUser(c, params.UserId)

	result, err := h.service.GetStats(c.Request.Context(), userID, valueOr(params.Days, h.defaultDays))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get statistics", zap.String("user_id", userID))
		return
	}

	response := api.StatsResponse{
		Period:    result.Period,
		StartDate: timeToDate(result.Start),
		EndDate:   timeToDate(result.End),
		Stats:     periodStatsResponse(result.Stats),
		Summaries: make([]api.DailySummary, 0, len(result.Summaries)),
		Weekdays:  make([]api.WeekdayPattern, 0, len(result.Weekdays)),
	}
	for _, s := range result.Summaries {
		response.Summaries = append(response.Summaries, dailySummaryResponse(s))
	}
	for _, w := range result.Weekdays {
		response.Weekdays = append(response.Weekdays, api.WeekdayPattern{
			Weekday:    w.Weekday.String(),
			Days:       w.Days,
			AvgCount:   w.AvgCount,
			AvgBristol: w.AvgBristol,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetApiV1Score returns the health score of a day, today by default
func (h *StatsHandler) GetApiV1Score(c *gin.Context, params api.GetApiV1ScoreParams) {
	userID := bindUser(c, params.UserId)

	day := h.now().In(h.loc)
	if params.Date != nil {
		day = dateIn(*params.Date, h.loc)
	}

	result, err := h.service.GetScore(c.Request.Context(), userID, day)
	if err != nil {
		respondError(c, h.logger, err, "Failed to compute health score", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, api.ScoreResponse{
		Date:    timeToDate(result.Date),
		Summary: dailySummaryResponse(result.Summary),
		Score: api.HealthScore{
			Score:   result.Score.Score,
			Level:   api.HealthScoreLevel(result.Score.Level),
			Details: result.Score.Details,
		},
	})
}

func periodStatsResponse(s analytics.PeriodStats) api.PeriodStats {
	distribution := make(map[string]int, len(s.BristolDistribution))
	for bristol, count := range s.BristolDistribution {
		distribution[strconv.Itoa(bristol)] = count
	}
	return api.PeriodStats{
		Days:                s.Days,
		TotalBowelMovements: s.TotalBowelMovements,
		AvgBowelPerDay:      s.AvgBowelPerDay,
		AvgBristol:          s.AvgBristol,
		BristolDistribution: distribution,
		BloodDays:           s.BloodDays,
		AvgPain:             s.AvgPain,
		DiarrheaDays:        s.DiarrheaDays,
		ConstipationDays:    s.ConstipationDays,
		NormalDays:          s.NormalDays,
		SymptomTrend:        api.Trend(s.SymptomTrend),
		BowelTrend:          api.Trend(s.BowelTrend),
	}
}

func dailySummaryResponse(s analytics.DailySummary) api.DailySummary {
	types := s.BristolTypes
	if types == nil {
		types = []int{}
	}
	return api.DailySummary{
		Date:             timeToDate(s.Date),
		BowelCount:       s.BowelCount,
		AvgBristol:       s.AvgBristol,
		BristolTypes:     types,
		HasBlood:         s.HasBlood,
		MaxPain:          s.MaxPain,
		SymptomSeverity:  s.SymptomSeverity,
		SeverityLevel:    string(s.SeverityLevel()),
		MedicationsTaken: s.MedicationsTaken,
		MedicationsTotal: s.MedicationsTotal,
	}
}
