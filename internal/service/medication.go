package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// MedicationService handles medication management business logic
type MedicationService struct {
	repo    MedicationRepositoryInterface
	cache   StatsCache
	auditor AuditLogger
	logger  *zap.Logger
	now     func() time.Time
}

// NewMedicationService creates a new MedicationService
func NewMedicationService(repo MedicationRepositoryInterface, cache StatsCache, auditor AuditLogger, logger *zap.Logger) *MedicationService {
	return &MedicationService{
		repo:    repo,
		cache:   cache,
		auditor: auditor,
		logger:  logger,
		now:     time.Now,
	}
}

// AddMedication adds a new active medication for a user
func (s *MedicationService) AddMedication(ctx context.Context, userID string, med *model.Medication) error {
	if userID == "" {
		return validationError("user ID is required")
	}
	med.Name = strings.TrimSpace(med.Name)
	if med.Name == "" {
		return validationError("medication name is required")
	}
	if med.Category == "" {
		med.Category = model.MedicationOther
	}
	if !med.Category.Valid() {
		return validationError("unknown medication category %q", med.Category)
	}
	if med.ReminderHour < 0 || med.ReminderHour > 23 || med.ReminderMinute < 0 || med.ReminderMinute > 59 {
		return validationError("reminder time must be a valid time of day")
	}

	med.ID = uuid.New().String()
	med.UserID = userID
	med.Active = true
	now := s.now()
	med.CreatedAt = now
	med.UpdatedAt = now

	if err := s.repo.Create(ctx, med); err != nil {
		s.logger.Error("failed to add medication",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("medication_name", med.Name),
		)
		return fmt.Errorf("failed to add medication: %w", err)
	}

	s.logger.Info("medication added successfully",
		zap.String("medication_id", med.ID),
		zap.String("user_id", userID),
		zap.String("name", med.Name),
	)

	// the active count feeds every daily summary
	auditAndInvalidate(ctx, s.auditor, s.cache, s.logger, audit.Entry{
		UserID:        userID,
		OperationType: audit.OperationCreate,
		ResourceType:  audit.ResourceMedication,
		ResourceID:    med.ID,
		Details:       map[string]any{"category": string(med.Category)},
	})
	return nil
}

// ListMedications retrieves the user's medications
func (s *MedicationService) ListMedications(ctx context.Context, userID string, activeOnly bool) ([]model.Medication, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}

	medications, err := s.repo.FindByUserID(ctx, userID, activeOnly)
	if err != nil {
		s.logger.Error("failed to list medications",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	s.logger.Debug("medications listed",
		zap.String("user_id", userID),
		zap.Int("count", len(medications)),
	)

	return medications, nil
}

// DeleteMedication deactivates a medication. Its dose logs are kept.
func (s *MedicationService) DeleteMedication(ctx context.Context, userID, medicationID string) error {
	if userID == "" || medicationID == "" {
		return validationError("user ID and medication ID are required")
	}

	if err := s.repo.Deactivate(ctx, userID, medicationID); err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	s.logger.Info("medication deactivated",
		zap.String("medication_id", medicationID),
		zap.String("user_id", userID),
	)

	auditAndInvalidate(ctx, s.auditor, s.cache, s.logger, audit.Entry{
		UserID:        userID,
		OperationType: audit.OperationDelete,
		ResourceType:  audit.ResourceMedication,
		ResourceID:    medicationID,
	})
	return nil
}

// LogDose records a taken or skipped dose. When the log references a
// medication its name is copied from the medication.
func (s *MedicationService) LogDose(ctx context.Context, userID string, log *model.MedicationLog) error {
	if userID == "" {
		return validationError("user ID is required")
	}

	if log.MedicationID != nil && *log.MedicationID != "" {
		med, err := s.repo.FindByID(ctx, userID, *log.MedicationID)
		if err != nil {
			return fmt.Errorf("failed to find medication: %w", err)
		}
		log.MedicationName = med.Name
	} else {
		log.MedicationID = nil
	}
	log.MedicationName = strings.TrimSpace(log.MedicationName)
	if log.MedicationName == "" {
		return validationError("medication ID or name is required")
	}

	now := s.now()
	if log.Timestamp.IsZero() {
		log.Timestamp = now
	} else if log.Timestamp.After(now.Add(maxClockSkew)) {
		return validationError("timestamp must not be in the future")
	}

	log.ID = uuid.New().String()
	log.UserID = userID

	if err := s.repo.CreateLog(ctx, log); err != nil {
		s.logger.Error("failed to log medication dose",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("failed to log medication dose: %w", err)
	}

	s.logger.Info("medication dose logged",
		zap.String("log_id", log.ID),
		zap.String("user_id", userID),
		zap.Bool("skipped", log.Skipped),
	)

	auditAndInvalidate(ctx, s.auditor, s.cache, s.logger, audit.Entry{
		UserID:        userID,
		OperationType: audit.OperationCreate,
		ResourceType:  audit.ResourceMedicationLog,
		ResourceID:    log.ID,
		Details:       map[string]any{"skipped": log.Skipped},
	})
	return nil
}

// ListDoses returns the user's dose logs in [start, end)
func (s *MedicationService) ListDoses(ctx context.Context, userID string, start, end time.Time) ([]model.MedicationLog, error) {
	if userID == "" {
		return nil, validationError("user ID is required")
	}
	if end.Before(start) {
		return nil, validationError("end must not be before start")
	}

	logs, err := s.repo.FindLogsByUserAndRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("failed to list medication logs",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to list medication logs: %w", err)
	}
	return logs, nil
}
