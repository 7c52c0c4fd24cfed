package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/notify"
)

// DailyScoreSchedule is when the daily score notification is delivered
type DailyScoreSchedule struct {
	Enabled bool
	Hour    int
	Minute  int
}

// NotificationService composes the push notifications for a user
type NotificationService struct {
	stats    *StatsService
	meds     MedicationRepositoryInterface
	composer *notify.Composer
	logger   *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(stats *StatsService, meds MedicationRepositoryInterface, composer *notify.Composer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		stats:    stats,
		meds:     meds,
		composer: composer,
		logger:   logger,
	}
}

// DailyScore composes the notification summarizing yesterday's score
func (s *NotificationService) DailyScore(ctx context.Context, userID string, schedule DailyScoreSchedule, langs ...string) (*notify.Message, error) {
	result, err := s.stats.GetYesterdayScore(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute yesterday's score: %w", err)
	}

	msg := s.composer.DailyScore(result.Score, schedule.Hour, schedule.Minute, langs...)
	return &msg, nil
}

// Schedule returns every repeating notification the user should have: the
// medication reminders and, when enabled, the daily score.
func (s *NotificationService) Schedule(ctx context.Context, userID string, schedule DailyScoreSchedule, langs ...string) ([]notify.Message, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}

	meds, err := s.meds.FindByUserID(ctx, userID, true)
	if err != nil {
		s.logger.Error("failed to load medications for reminders",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to load medications: %w", err)
	}

	messages := s.composer.MedicationReminders(meds, langs...)

	if schedule.Enabled {
		msg, err := s.DailyScore(ctx, userID, schedule, langs...)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}

	s.logger.Info("notification schedule composed",
		zap.String("user_id", userID),
		zap.Int("count", len(messages)),
	)

	return messages, nil
}
