package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vcscsvcscs/guttracker/pkg/model"
	"go.uber.org/zap"
)

// MedicationRepository manages medication definitions and dose logs
type MedicationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewMedicationRepository creates a new MedicationRepository
func NewMedicationRepository(db *pgxpool.Pool, logger *zap.Logger) *MedicationRepository {
	return &MedicationRepository{
		db:     db,
		logger: logger,
	}
}

const medicationColumns = `
	id, user_id, name, category, dosage, frequency, active,
	reminder_enabled, reminder_hour, reminder_minute, created_at, updated_at
`

func scanMedication(row pgx.Row) (model.Medication, error) {
	var med model.Medication
	err := row.Scan(
		&med.ID,
		&med.UserID,
		&med.Name,
		&med.Category,
		&med.Dosage,
		&med.Frequency,
		&med.Active,
		&med.ReminderEnabled,
		&med.ReminderHour,
		&med.ReminderMinute,
		&med.CreatedAt,
		&med.UpdatedAt,
	)
	return med, err
}

// Create creates a new medication
func (r *MedicationRepository) Create(ctx context.Context, med *model.Medication) error {
	query := `
		INSERT INTO medications (
			id, user_id, name, category, dosage, frequency, active,
			reminder_enabled, reminder_hour, reminder_minute,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		med.ID,
		med.UserID,
		med.Name,
		med.Category,
		med.Dosage,
		med.Frequency,
		med.Active,
		med.ReminderEnabled,
		med.ReminderHour,
		med.ReminderMinute,
	).Scan(&med.CreatedAt, &med.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to create medication",
			zap.Error(err),
			zap.String("medication_id", med.ID),
			zap.String("user_id", med.UserID),
		)
		return fmt.Errorf("failed to create medication: %w", err)
	}

	return nil
}

// FindByUserID retrieves a user's medications by name; activeOnly hides discontinued ones
func (r *MedicationRepository) FindByUserID(ctx context.Context, userID string, activeOnly bool) ([]model.Medication, error) {
	query := `SELECT ` + medicationColumns + `
		FROM medications
		WHERE user_id = $1 AND (active OR NOT $2)
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, userID, activeOnly)
	if err != nil {
		r.logger.Error("failed to find medications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find medications: %w", err)
	}

	medications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Medication, error) {
		return scanMedication(row)
	})
	if err != nil {
		r.logger.Error("error iterating medications", zap.Error(err))
		return nil, fmt.Errorf("error iterating medications: %w", err)
	}

	return medications, nil
}

// FindByID retrieves a medication owned by userID
func (r *MedicationRepository) FindByID(ctx context.Context, userID, medicationID string) (*model.Medication, error) {
	query := `SELECT ` + medicationColumns + `
		FROM medications
		WHERE id = $1 AND user_id = $2
	`

	med, err := scanMedication(r.db.QueryRow(ctx, query, medicationID, userID))
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		r.logger.Error("failed to find medication", zap.Error(err), zap.String("medication_id", medicationID))
		return nil, fmt.Errorf("failed to find medication: %w", err)
	}

	return &med, nil
}

// Deactivate marks a medication as discontinued; logs keep referencing it
func (r *MedicationRepository) Deactivate(ctx context.Context, userID, medicationID string) error {
	query := `
		UPDATE medications
		SET active = FALSE, reminder_enabled = FALSE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.db.Exec(ctx, query, medicationID, userID)
	if err != nil {
		r.logger.Error("failed to deactivate medication", zap.Error(err), zap.String("medication_id", medicationID))
		return fmt.Errorf("failed to deactivate medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActive returns how many medications the user currently takes
func (r *MedicationRepository) CountActive(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM medications WHERE user_id = $1 AND active`, userID).Scan(&count)
	if err != nil {
		r.logger.Error("failed to count active medications", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("failed to count active medications: %w", err)
	}
	return count, nil
}

// CreateLog records a taken or skipped dose
func (r *MedicationRepository) CreateLog(ctx context.Context, log *model.MedicationLog) error {
	query := `
		INSERT INTO medication_logs (id, user_id, medication_id, medication_name, timestamp, skipped)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		log.ID,
		log.UserID,
		log.MedicationID,
		log.MedicationName,
		log.Timestamp,
		log.Skipped,
	).Scan(&log.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create medication log",
			zap.Error(err),
			zap.String("log_id", log.ID),
			zap.String("user_id", log.UserID),
		)
		return fmt.Errorf("failed to create medication log: %w", err)
	}

	return nil
}

// FindLogsByUserAndRange returns dose logs with start <= timestamp < end, oldest first
func (r *MedicationRepository) FindLogsByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.MedicationLog, error) {
	query := `
		SELECT id, user_id, medication_id, medication_name, timestamp, skipped, created_at
		FROM medication_logs
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		r.logger.Error("failed to find medication logs", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find medication logs: %w", err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.MedicationLog, error) {
		var l model.MedicationLog
		err := row.Scan(&l.ID, &l.UserID, &l.MedicationID, &l.MedicationName, &l.Timestamp, &l.Skipped, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		r.logger.Error("error iterating medication logs", zap.Error(err))
		return nil, fmt.Errorf("error iterating medication logs: %w", err)
	}

	return logs, nil
}
