package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

func newNotificationService(t *testing.T) (*NotificationService, *statsFixture) {
	t.Helper()
	catalog, err := locale.NewCatalog()
	require.NoError(t, err)

	stats := newStatsFixture(false)
	svc := NewNotificationService(stats.service, stats.meds, notify.NewComposer(catalog), zap.NewNop())
	return svc, stats
}

func TestNotificationService_Schedule(t *testing.T) {
	// Arrange
	svc, stats := newNotificationService(t)
	ctx := context.Background()
	stats.expectLoad(day(8, 0), day(10, 0), []model.BowelRecord{
		{Timestamp: day(9, 8), BristolType: 4, HasBlood: true},
	}, nil, 1)
	stats.meds.On("FindByUserID", ctx, "user-1", true).Return([]model.Medication{
		{ID: "m1", Name: "Mesalamine", Dosage: "1.2g", Active: true, ReminderEnabled: true, ReminderHour: 8},
		{ID: "m2", Name: "Vitamin D", Active: true},
	}, nil)

	// Act
	messages, err := svc.Schedule(ctx, "user-1", DailyScoreSchedule{Enabled: true, Hour: 9}, "zh-Hant")

	// Assert
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "med-m1", messages[0].ID)
	assert.Equal(t, "Mesalamine 1.2g", messages[0].Body)
	assert.Equal(t, notify.DailyScoreID, messages[1].ID)
	// 100 - 15 blood + 5 normal - 5 not recorded - 20 medication missed
	assert.Equal(t, "😊 65分 — 良好\n有血便、未記錄症狀、未服藥", messages[1].Body)
}

func TestNotificationService_ScheduleWithoutDailyScore(t *testing.T) {
	svc, stats := newNotificationService(t)
	ctx := context.Background()
	stats.meds.On("FindByUserID", ctx, "user-1", true).Return([]model.Medication{}, nil)

	messages, err := svc.Schedule(ctx, "user-1", DailyScoreSchedule{Enabled: false})

	require.NoError(t, err)
	assert.Empty(t, messages)
	stats.bowel.AssertNotCalled(t, "FindByUserAndRange")
}

func TestNotificationService_DailyScore(t *testing.T) {
	svc, stats := newNotificationService(t)
	stats.expectLoad(day(8, 0), day(10, 0), nil, nil, 0)

	msg, err := svc.DailyScore(context.Background(), "user-1", DailyScoreSchedule{Enabled: true, Hour: notify.DefaultDailyScoreHour}, "en")

	require.NoError(t, err)
	assert.Equal(t, "📊 Yesterday's health score", msg.Title)
	assert.Equal(t, "🌟 85 points — Excellent\nNo bowel movement recorded", msg.Body)
	assert.Equal(t, notify.DefaultDailyScoreHour, msg.Hour)
}
