package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/internal/cache"
	"github.com/vcscsvcscs/guttracker/internal/repository"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

var (
	// ErrValidation marks errors caused by invalid client input
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a record does not exist or belongs to another user
	ErrNotFound = repository.ErrNotFound
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// BowelRepositoryInterface defines the data access needed for bowel movements
type BowelRepositoryInterface interface {
	Create(ctx context.Context, rec *model.BowelRecord) error
	FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.BowelRecord, error)
	Delete(ctx context.Context, userID, id string) error
}

// SymptomRepositoryInterface defines the data access needed for symptom entries
type SymptomRepositoryInterface interface {
	Create(ctx context.Context, rec *model.SymptomRecord) error
	FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.SymptomRecord, error)
}

// MedicationRepositoryInterface defines the data access needed for medications and dose logs
type MedicationRepositoryInterface interface {
	Create(ctx context.Context, med *model.Medication) error
	FindByUserID(ctx context.Context, userID string, activeOnly bool) ([]model.Medication, error)
	FindByID(ctx context.Context, userID, medicationID string) (*model.Medication, error)
	Deactivate(ctx context.Context, userID, medicationID string) error
	CountActive(ctx context.Context, userID string) (int, error)
	CreateLog(ctx context.Context, log *model.MedicationLog) error
	FindLogsByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.MedicationLog, error)
}

// ReportRepositoryInterface defines the data access needed for report metadata
type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, userID, reportID string) (*model.Report, error)
}

// AuditLogger records data access for compliance
type AuditLogger interface {
	Log(ctx context.Context, entry audit.Entry) error
}

// StatsCache caches computed statistics per user
type StatsCache interface {
	Get(ctx context.Context, userID, key string, dest any) (cache.Slot, bool, error)
	Set(ctx context.Context, slot cache.Slot, value any) error
	Invalidate(ctx context.Context, userID string) error
}

var (
	_ BowelRepositoryInterface      = (*repository.BowelRepository)(nil)
	_ SymptomRepositoryInterface    = (*repository.SymptomRepository)(nil)
	_ MedicationRepositoryInterface = (*repository.MedicationRepository)(nil)
	_ ReportRepositoryInterface     = (*repository.ReportRepository)(nil)
	_ AuditLogger                   = (*audit.Logger)(nil)
	_ StatsCache                    = (*cache.StatsCache)(nil)
)
