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

// BowelRepository manages bowel movement records
type BowelRepository struct {
	db     *pgxpool.Pool
	cipher NoteCipher
	logger *zap.Logger
}

// NewBowelRepository creates a new BowelRepository
func NewBowelRepository(db *pgxpool.Pool, cipher NoteCipher, logger *zap.Logger) *BowelRepository {
	return &BowelRepository{
		db:     db,
		cipher: cipher,
		logger: logger,
	}
}

// Create stores a new bowel movement record
func (r *BowelRepository) Create(ctx context.Context, rec *model.BowelRecord) error {
	notes, err := r.cipher.Seal(rec.UserID, rec.Notes)
	if err != nil {
		return fmt.Errorf("failed to encrypt notes: %w", err)
	}

	query := `
		INSERT INTO bowel_movements (
			id, user_id, timestamp, bristol_type, has_blood,
			has_mucus, pain_level, urgency, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err = r.db.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Timestamp,
		rec.BristolType,
		rec.HasBlood,
		rec.HasMucus,
		rec.PainLevel,
		rec.Urgency,
		notes,
	).Scan(&rec.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create bowel movement",
			zap.Error(err),
			zap.String("record_id", rec.ID),
			zap.String("user_id", rec.UserID),
		)
		return fmt.Errorf("failed to create bowel movement: %w", err)
	}

	return nil
}

// FindByUserAndRange returns a user's records with start <= timestamp < end, oldest first
func (r *BowelRepository) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]model.BowelRecord, error) {
	query := `
		SELECT id, user_id, timestamp, bristol_type, has_blood,
		       has_mucus, pain_level, urgency, notes, created_at
		FROM bowel_movements
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		r.logger.Error("failed to find bowel movements", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find bowel movements: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BowelRecord, error) {
		var rec model.BowelRecord
		err := row.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Timestamp,
			&rec.BristolType,
			&rec.HasBlood,
			&rec.HasMucus,
			&rec.PainLevel,
			&rec.Urgency,
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
		r.logger.Error("failed to scan bowel movements", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to scan bowel movements: %w", err)
	}

	return records, nil
}

// Delete removes a record owned by userID
func (r *BowelRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bowel_movements WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.logger.Error("failed to delete bowel movement", zap.Error(err), zap.String("record_id", id))
		return fmt.Errorf("failed to delete bowel movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
