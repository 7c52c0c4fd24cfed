package handler

import (
	"context"
	"time"

	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// RecordService stores bowel movements and symptom check-ins
type RecordService interface {
	AddBowelMovement(ctx context.Context, userID string, rec *model.BowelRecord) error
	ListBowelMovements(ctx context.Context, userID string, start, end time.Time) ([]model.BowelRecord, error)
	DeleteBowelMovement(ctx context.Context, userID, id string) error
	AddSymptoms(ctx context.Context, userID string, rec *model.SymptomRecord) error
	ListSymptoms(ctx context.Context, userID string, start, end time.Time) ([]model.SymptomRecord, error)
}

// MedicationService manages medications and dose logs
type MedicationService interface {
	AddMedication(ctx context.Context, userID string, med *model.Medication) error
	ListMedications(ctx context.Context, userID string, activeOnly bool) ([]model.Medication, error)
	DeleteMedication(ctx context.Context, userID, medicationID string) error
	LogDose(ctx context.Context, userID string, log *model.MedicationLog) error
	ListDoses(ctx context.Context, userID string, start, end time.Time) ([]model.MedicationLog, error)
}

// StatsService computes period statistics and daily scores
type StatsService interface {
	GetStats(ctx context.Context, userID string, days int) (*service.StatsResult, error)
	GetScore(ctx context.Context, userID string, day time.Time) (*service.ScoreResult, error)
}

// ReportService generates and serves health reports
type ReportService interface {
	GenerateReport(ctx context.Context, userID string, req service.ReportRequest) (*model.Report, error)
	GetReport(ctx context.Context, userID, reportID string) (*service.ReportFile, error)
}

// NotificationService composes push notifications
type NotificationService interface {
	DailyScore(ctx context.Context, userID string, schedule service.DailyScoreSchedule, langs ...string) (*notify.Message, error)
	Schedule(ctx context.Context, userID string, schedule service.DailyScoreSchedule, langs ...string) ([]notify.Message, error)
}

var (
	_ RecordService       = (*service.RecordService)(nil)
	_ MedicationService   = (*service.MedicationService)(nil)
	_ StatsService        = (*service.StatsService)(nil)
	_ ReportService       = (*service.ReportService)(nil)
	_ NotificationService = (*service.NotificationService)(nil)
)
