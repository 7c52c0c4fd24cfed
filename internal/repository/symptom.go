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

// SymptomRepository manages symptom check-ins
type SymptomRepository struct {
	db     *pgxpool.Pool
	cipher NoteCipher
	logger *zap.Logger
}

// NewSymptomRepository creates a new SymptomRepository
func NewSymptomRepository(db *pgxpool.Pool, cipher NoteCipher, logger *zap.Logger) *SymptomRepository {
	return &SymptomRepository{
		db:     db,
		cipher: cipher,
		logger: logger,
	}
}

// Create stores a new symptom entry
func (r *SymptomRepository) Create(ctx context.Context, rec *model.SymptomRecord) error {
	notes, err := r.cipher.Seal(rec.UserID, rec.Notes)
	if err != nil {
		return fmt.Errorf("failed to encrypt notes: %w", err)
	}

	query := `
		INSERT INTO symptom_entries (
			id, user_id, timestamp,
			abdominal_pain, bloating, gas, nausea, cramping, bowel_sounds,
			fatigue, joint_pain, fever, sleep_quality, mood, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at
	`

	err = r.db.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Timestamp,
		rec.AbdominalPain,
		rec.Bloating,
		rec.Gas,
		rec.Nausea,
		rec.Cramping,
		rec.BowelSounds,
		rec.Fatigue,
		rec.JointPain,
		rec.Fever,
		rec.SleepQuality,
		rec.Mood,
		notes,
	).Scan(&rec.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create symptom entry",
			zap.Error(err),
			zap.String("record_id", rec.ID),
			zap.String("user_id", rec.UserID),
		)
		return fmt.Errorf("failed to create symptom entry: %w", err)
	}

	return nil
}

// FindByUserAndRange returns a user's entries with start <= timestamp < end, oldest first
func (r *SymptomRepository) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.SymptomRecord, error) {
	query := `
		SELECT id, user_id, timestamp,
		       abdominal_pain, bloating, gas, nausea, cramping, bowel_sounds,
		       fatigue, joint_pain, fever, sleep_quality, mood, notes, created_at
		FROM symptom_entries
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		r.logger.Error("failed to find symptom entries", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find symptom entries: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.SymptomRecord, error) {
		var rec model.SymptomRecord
		err := row.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Timestamp,
			&rec.AbdominalPain,
			&rec.Bloating,
			&rec.Gas,
			&rec.Nausea,
			&rec.Cramping,
			&rec.BowelSounds,
			&rec.Fatigue,
			&rec.JointPain,
			&rec.Fever,
			&rec.SleepQuality,
			&rec.Mood,
			&rec.Notes,
			&rec.CreatedAt,
		)
		if err != nil {
			return rec, err
		}
		rec.Notes, err = r.cipher.Open(rec.UserID, rec.Notes)
		return rec, err
	})
	if err != nil {
		r.logger.Error("failed to scan symptom entries", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to scan symptom entries: %w", err)
	}

	return records, nil
}
