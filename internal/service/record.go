package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// maxClockSkew is how far in the future a record timestamp may lie
const maxClockSkew = 5 * time.Minute

// RecordService handles bowel movement and symptom records
type RecordService struct {
	bowel    BowelRepositoryInterface
	symptoms SymptomRepositoryInterface
	cache    StatsCache
	auditor  AuditLogger
	logger   *zap.Logger
	now      func() time.Time
}

// NewRecordService creates a new RecordService. cache and auditor may be nil.
func NewRecordService(
	bowel BowelRepositoryInterface,
	symptoms SymptomRepositoryInterface,
	cache StatsCache,
	auditor AuditLogger,
	logger *zap.Logger,
) *RecordService {
	return &RecordService{
		bowel:    bowel,
		symptoms: symptoms,
		cache:    cache,
		auditor:  auditor,
		logger:   logger,
		now:      time.Now,
	}
}

// AddBowelMovement validates and stores a bowel movement
func (s *RecordService) AddBowelMovement(ctx context.Context, userID string, rec *model.BowelRecord) error {
	if userID == "" {
		return validationError("user ID is required")
	}
	if rec.BristolType < model.BristolMin || rec.BristolType > model.BristolMax {
		return validationError("bristol type must be between %d and %d", model.BristolMin, model.BristolMax)
	}
	if rec.PainLevel < 0 || rec.PainLevel > model.MaxPainLevel {
		return validationError("pain level must be between 0 and %d", model.MaxPainLevel)
	}
	if rec.Urgency < 0 || rec.Urgency > model.MaxUrgency {
		return validationError("urgency must be between 0 and %d", model.MaxUrgency)
	}
	if err := s.checkTimestamp(&rec.Timestamp); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.UserID = userID

	if err := s.bowel.Create(ctx, rec); err != nil {
		s.logger.Error("failed to save bowel movement",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("failed to save bowel movement: %w", err)
	}

	s.logger.Info("bowel movement recorded",
		zap.String("record_id", rec.ID),
		zap.String("user_id", userID),
		zap.Int("bristol_type", rec.BristolType),
	)

	s.recordChanged(ctx, userID, audit.OperationCreate, audit.ResourceBowelMovement, rec.ID, map[string]any{
		"bristol_type": rec.BristolType,
		"has_blood":    rec.HasBlood,
	})
	return nil
}

// ListBowelMovements returns the user's bowel movements in [start, end)
func (s *RecordService) ListBowelMovements(ctx context.Context, userID string, start, end time.Time) ([]model.BowelRecord, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}
	if end.Before(start) {
		return nil, validationError("end must not be before start")
	}

	records, err := s.bowel.FindByUserAndRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("failed to list bowel movements",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to list bowel movements: %w", err)
	}
	return records, nil
}

// DeleteBowelMovement removes one of the user's bowel movements
func (s *RecordService) DeleteBowelMovement(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return validationError("user ID and record ID are required")
	}

	if err := s.bowel.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete bowel movement: %w", err)
	}

	s.logger.Info("bowel movement deleted",
		zap.String("record_id", id),
		zap.String("user_id", userID),
	)

	s.recordChanged(ctx, userID, audit.OperationDelete, audit.ResourceBowelMovement, id, nil)
	return nil
}

// AddSymptoms validates and stores a symptom check-in
func (s *RecordService) AddSymptoms(ctx context.Context, userID string, rec *model.SymptomRecord) error {
	if userID == "" {
		return validationError("user ID is required")
	}
	if kind, invalid := rec.InvalidSeverity(); invalid {
		return validationError("%s must be between 0 and %d", kind, model.MaxSeverity)
	}
	if rec.SleepQuality < 0 || rec.SleepQuality > model.MaxSleepQuality {
		return validationError("sleep quality must be between 0 and %d", model.MaxSleepQuality)
	}
	if rec.Mood == 0 {
		rec.Mood = model.DefaultMood
	}
	if rec.Mood < model.MinMood || rec.Mood > model.MaxMood {
		return validationError("mood must be between %d and %d", model.MinMood, model.MaxMood)
	}
	if err := s.checkTimestamp(&rec.Timestamp); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.UserID = userID

	if err := s.symptoms.Create(ctx, rec); err != nil {
		s.logger.Error("failed to save symptom entry",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("failed to save symptom entry: %w", err)
	}

	s.logger.Info("symptom entry recorded",
		zap.String("record_id", rec.ID),
		zap.String("user_id", userID),
		zap.Int("overall_severity", rec.OverallSeverity()),
	)

	s.recordChanged(ctx, userID, audit.OperationCreate, audit.ResourceSymptomEntry, rec.ID, map[string]any{
		"overall_severity": rec.OverallSeverity(),
	})
	return nil
}

// ListSymptoms returns the user's symptom entries in [start, end)
func (s *RecordService) ListSymptoms(ctx context.Context, userID string, start, end time.Time) ([]model.SymptomRecord, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}
	if end.Before(start) {
		return nil, validationError("end must not be before start")
	}

	records, err := s.symptoms.FindByUserAndRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("failed to list symptom entries",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to list symptom entries: %w", err)
	}
	return records, nil
}

// checkTimestamp defaults a zero timestamp to now and rejects future ones
func (s *RecordService) checkTimestamp(ts *time.Time) error {
	now := s.now()
	if ts.IsZero() {
		*ts = now
		return nil
	}
	if ts.After(now.Add(maxClockSkew)) {
		return validationError("timestamp must not be in the future")
	}
	return nil
}

// recordChanged writes the audit entry and drops the user's cached stats.
// Failures are logged; the record itself is already stored.
func (s *RecordService) recordChanged(ctx context.Context, userID string, op audit.OperationType, resource audit.ResourceType, id string, details map[string]any) {
	auditAndInvalidate(ctx, s.auditor, s.cache, s.logger, audit.Entry{
		UserID:        userID,
		OperationType: op,
		ResourceType:  resource,
		ResourceID:    id,
		Details:       details,
	})
}

func auditAndInvalidate(ctx context.Context, auditor AuditLogger, cache StatsCache, logger *zap.Logger, entry audit.Entry) {
	if auditor != nil {
		if err := auditor.Log(ctx, entry); err != nil {
			logger.Warn("failed to write audit log",
				zap.Error(err),
				zap.String("user_id", entry.UserID),
				zap.String("resource_type", string(entry.ResourceType)),
			)
		}
	}
	if cache != nil && entry.OperationType != audit.OperationExport {
		if err := cache.Invalidate(ctx, entry.UserID); err != nil {
			logger.Warn("failed to invalidate stats cache",
				zap.Error(err),
				zap.String("user_id", entry.UserID),
			)
		}
	}
}
