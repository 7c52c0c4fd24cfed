package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/api"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) AddBowelMovement(ctx context.Context, userID string, rec *model.BowelRecord) error {
	return m.Called(ctx, userID, rec).Error(0)
}

func (m *MockRecordService) ListBowelMovements(ctx context.Context, userID string, start, end time.Time) ([]model.BowelRecord, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BowelRecord), args.Error(1)
}

func (m *MockRecordService) DeleteBowelMovement(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockRecordService) AddSymptoms(ctx context.Context, userID string, rec *model.SymptomRecord) error {
	return m.Called(ctx, userID, rec).Error(0)
}

func (m *MockRecordService) ListSymptoms(ctx context.Context, userID string, start, end time.Time) ([]model.SymptomRecord, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SymptomRecord), args.Error(1)
}

type MockMedicationService struct {
	mock.Mock
}

func (m *MockMedicationService) AddMedication(ctx context.Context, userID string, med *model.Medication) error {
	return m.Called(ctx, userID, med).Error(0)
}

func (m *MockMedicationService) ListMedications(ctx context.Context, userID string, activeOnly bool) ([]model.Medication, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockMedicationService) DeleteMedication(ctx context.Context, userID, medicationID string) error {
	return m.Called(ctx, userID, medicationID).Error(0)
}

func (m *MockMedicationService) LogDose(ctx context.Context, userID string, log *model.MedicationLog) error {
	return m.Called(ctx, userID, log).Error(0)
}

func (m *MockMedicationService) ListDoses(ctx context.Context, userID string, start, end time.Time) ([]model.MedicationLog, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MedicationLog), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context, userID string, days int) (*service.StatsResult, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatsResult), args.Error(1)
}

func (m *MockStatsService) GetScore(ctx context.Context, userID string, day time.Time) (*service.ScoreResult, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScoreResult), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateReport(ctx context.Context, userID string, req service.ReportRequest) (*model.Report, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) GetReport(ctx context.Context, userID, reportID string) (*service.ReportFile, error) {
	args := m.Called(ctx, userID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportFile), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) DailyScore(ctx context.Context, userID string, schedule service.DailyScoreSchedule, langs ...string) (*notify.Message, error) {
	args := m.Called(ctx, userID, schedule, langs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notify.Message), args.Error(1)
}

func (m *MockNotificationService) Schedule(ctx context.Context, userID string, schedule service.DailyScoreSchedule, langs ...string) ([]notify.Message, error) {
	args := m.Called(ctx, userID, schedule, langs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notify.Message), args.Error(1)
}

// testNow is 2024-05-10 15:00 in Taipei
var (
	taipei  = time.FixedZone("Asia/Taipei", 8*3600)
	testNow = time.Date(2024, 5, 10, 15, 0, 0, 0, taipei)
)

const testUserID = "6f1c2a4e-8b7d-4c3e-9a2f-1d5e7b9c0a11"

type testServer struct {
	records       *MockRecordService
	medications   *MockMedicationService
	stats         *MockStatsService
	reports       *MockReportService
	notifications *MockNotificationService
	router        *gin.Engine
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	s := &testServer{
		records:       new(MockRecordService),
		medications:   new(MockMedicationService),
		stats:         new(MockStatsService),
		reports:       new(MockReportService),
		notifications: new(MockNotificationService),
		router:        gin.New(),
	}

	records := NewRecordHandler(s.records, taipei, logger)
	records.now = func() time.Time { return testNow }
	medications := NewMedicationHandler(s.medications, taipei, logger)
	medications.now = func() time.Time { return testNow }
	stats := NewStatsHandler(s.stats, taipei, 7, logger)
	stats.now = func() time.Time { return testNow }

	api.RegisterHandlers(s.router, &APIHandler{
		Records:       records,
		Medications:   medications,
		Stats:         stats,
		Reports:       NewReportHandler(s.reports, 7, logger),
		Notifications: NewNotificationHandler(s.notifications, logger),
		Health:        NewHealthHandler(map[string]HealthCheck{}, logger),
	})
	return s
}
