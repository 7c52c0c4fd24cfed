package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/internal/cache"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// MockBowelRepository is a mock implementation of BowelRepositoryInterface
type MockBowelRepository struct {
	mock.Mock
}

func (m *MockBowelRepository) Create(ctx context.Context, rec *model.BowelRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockBowelRepository) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.BowelRecord, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BowelRecord), args.Error(1)
}

func (m *MockBowelRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockSymptomRepository is a mock implementation of SymptomRepositoryInterface
type MockSymptomRepository struct {
	mock.Mock
}

func (m *MockSymptomRepository) Create(ctx context.Context, rec *model.SymptomRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSymptomRepository) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.SymptomRecord, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SymptomRecord), args.Error(1)
}

// MockMedicationRepository is a mock implementation of MedicationRepositoryInterface
type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) Create(ctx context.Context, med *model.Medication) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicationRepository) FindByUserID(ctx context.Context, userID string, activeOnly bool) ([]model.Medication, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindByID(ctx context.Context, userID, medicationID string) (*model.Medication, error) {
	args := m.Called(ctx, userID, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepository) Deactivate(ctx context.Context, userID, medicationID string) error {
	args := m.Called(ctx, userID, medicationID)
	return args.Error(0)
}

func (m *MockMedicationRepository) CountActive(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockMedicationRepository) CreateLog(ctx context.Context, log *model.MedicationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockMedicationRepository) FindLogsByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.MedicationLog, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MedicationLog), args.Error(1)
}

// MockReportRepository is a mock implementation of ReportRepositoryInterface
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(ctx context.Context, userID, reportID string) (*model.Report, error) {
	args := m.Called(ctx, userID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

// MockAuditLogger is a mock implementation of AuditLogger
type MockAuditLogger struct {
	mock.Mock
}

func (m *MockAuditLogger) Log(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockStatsCache is a mock implementation of StatsCache
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, userID, key string, dest any) (cache.Slot, bool, error) {
	args := m.Called(ctx, userID, key, dest)
	return args.Get(0).(cache.Slot), args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) Set(ctx context.Context, slot cache.Slot, value any) error {
	args := m.Called(ctx, slot, value)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// fixedClock returns a clock frozen at t
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
