package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/cache"
)

// DefaultPeriod is used when a request asks for an unsupported period
const DefaultPeriod = 7

// ValidPeriods are the supported statistics windows in days
var ValidPeriods = []int{7, 30, 90}

const dayKeyLayout = "2006-01-02"

// NormalizePeriod returns days when it is supported, DefaultPeriod otherwise
func NormalizePeriod(days int) int {
	if slices.Contains(ValidPeriods, days) {
		return days
	}
	return DefaultPeriod
}

// StatsResult is the analysis of the most recent Period days
type StatsResult struct {
	Period int       `json:"period"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	analytics.Analysis
}

// ScoreResult is the scored snapshot of one day
type ScoreResult struct {
	Date time.Time `json:"date"`
	analytics.Snapshot
}

// recordLoader fetches everything the engine needs for a range of days
type recordLoader struct {
	bowel    BowelRepositoryInterface
	symptoms SymptomRepositoryInterface
	meds     MedicationRepositoryInterface
	engine   *analytics.Engine
	logger   *zap.Logger
}

// load returns the user's records from the start of first to the end of last
func (l *recordLoader) load(ctx context.Context, userID string, first, last time.Time) (analytics.Records, error) {
	from := l.engine.StartOfDay(first)
	to := l.engine.StartOfDay(l.engine.AddDays(last, 1))

	bowel, err := l.bowel.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		l.logger.Error("failed to load bowel movements", zap.Error(err), zap.String("user_id", userID))
		return analytics.Records{}, fmt.Errorf("failed to load bowel movements: %w", err)
	}

	symptoms, err := l.symptoms.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		l.logger.Error("failed to load symptom entries", zap.Error(err), zap.String("user_id", userID))
		return analytics.Records{}, fmt.Errorf("failed to load symptom entries: %w", err)
	}

	logs, err := l.meds.FindLogsByUserAndRange(ctx, userID, from, to)
	if err != nil {
		l.logger.Error("failed to load medication logs", zap.Error(err), zap.String("user_id", userID))
		return analytics.Records{}, fmt.Errorf("failed to load medication logs: %w", err)
	}

	active, err := l.meds.CountActive(ctx, userID)
	if err != nil {
		l.logger.Error("failed to count active medications", zap.Error(err), zap.String("user_id", userID))
		return analytics.Records{}, fmt.Errorf("failed to count active medications: %w", err)
	}

	return analytics.Records{
		Bowel:             bowel,
		Symptoms:          symptoms,
		MedicationLogs:    logs,
		ActiveMedications: active,
	}, nil
}

// StatsService computes period statistics and daily scores
type StatsService struct {
	loader recordLoader
	cache  StatsCache
	engine *analytics.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewStatsService creates a new StatsService. cache may be nil.
func NewStatsService(
	bowel BowelRepositoryInterface,
	symptoms SymptomRepositoryInterface,
	meds MedicationRepositoryInterface,
	cache StatsCache,
	engine *analytics.Engine,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		loader: recordLoader{
			bowel:    bowel,
			symptoms: symptoms,
			meds:     meds,
			engine:   engine,
			logger:   logger,
		},
		cache:  cache,
		engine: engine,
		logger: logger,
		now:    time.Now,
	}
}

// Engine returns the analytics engine used for calendar calculations
func (s *StatsService) Engine() *analytics.Engine {
	return s.engine
}

// Today returns the start of the current day in the engine location
func (s *StatsService) Today() time.Time {
	return s.engine.StartOfDay(s.now())
}

// Window returns the first and last day of the period ending today
func (s *StatsService) Window(days int) (time.Time, time.Time) {
	end := s.Today()
	return s.engine.AddDays(end, -(days - 1)), end
}

// GetStats analyzes the last days days, today included. Unsupported
// periods fall back to DefaultPeriod.
func (s *StatsService) GetStats(ctx context.Context, userID string, days int) (*StatsResult, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}

	period := NormalizePeriod(days)
	if period != days {
		s.logger.Warn("invalid days parameter, defaulting to 7",
			zap.Int("days", days),
		)
	}

	start, end := s.Window(period)
	key := fmt.Sprintf("stats:%d:%s", period, end.Format(dayKeyLayout))

	var cached StatsResult
	slot, found := s.hit(ctx, userID, key, &cached)
	if found {
		return &cached, nil
	}

	rec, err := s.loader.load(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	result := &StatsResult{
		Period:   period,
		Start:    start,
		End:      end,
		Analysis: s.engine.Analyze(rec, start, end),
	}

	s.store(ctx, userID, slot, result)

	s.logger.Info("period stats computed",
		zap.String("user_id", userID),
		zap.Int("period", period),
		zap.Int("total_bowel_movements", result.Stats.TotalBowelMovements),
	)

	return result, nil
}

// GetScore scores day for the user. The prior day is loaded as well so the
// symptom direction can be judged.
func (s *StatsService) GetScore(ctx context.Context, userID string, day time.Time) (*ScoreResult, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}

	day = s.engine.StartOfDay(day)
	if day.After(s.Today()) {
		return nil, validationError("date must not be in the future")
	}
	key := "score:" + day.Format(dayKeyLayout)

	var cached ScoreResult
	slot, found := s.hit(ctx, userID, key, &cached)
	if found {
		return &cached, nil
	}

	rec, err := s.loader.load(ctx, userID, s.engine.AddDays(day, -1), day)
	if err != nil {
		return nil, err
	}

	result := &ScoreResult{
		Date:     day,
		Snapshot: s.engine.DaySnapshot(rec, day),
	}

	s.store(ctx, userID, slot, result)
	return result, nil
}

// GetYesterdayScore scores the day before today
func (s *StatsService) GetYesterdayScore(ctx context.Context, userID string) (*ScoreResult, error) {
	return s.GetScore(ctx, userID, s.engine.AddDays(s.Today(), -1))
}

func (s *StatsService) hit(ctx context.Context, userID, key string, dest any) (cache.Slot, bool) {
	if s.cache == nil {
		return "", false
	}
	slot, found, err := s.cache.Get(ctx, userID, key, dest)
	if err != nil {
		s.logger.Warn("failed to read stats cache",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("key", key),
		)
		return "", false
	}
	return slot, found
}

// store writes value back to the slot of the preceding miss; a failed lookup
// leaves no slot and nothing is written
func (s *StatsService) store(ctx context.Context, userID string, slot cache.Slot, value any) {
	if s.cache == nil || slot == "" {
		return
	}
	if err := s.cache.Set(ctx, slot, value); err != nil {
		s.logger.Warn("failed to write stats cache",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("slot", string(slot)),
		)
	}
}
