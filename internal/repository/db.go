package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a record does not exist or belongs to another user
var ErrNotFound = errors.New("record not found")

// NoteCipher encrypts free-text notes at rest
type NoteCipher interface {
	Seal(userID, plaintext string) (string, error)
	Open(userID, ciphertext string) (string, error)
}

// PoolConfig holds connection pool settings
type PoolConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
}

// Connect opens a pgx pool and verifies connectivity
func Connect(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bowel_movements (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL,
		bristol_type SMALLINT NOT NULL,
		has_blood BOOLEAN NOT NULL DEFAULT FALSE,
		has_mucus BOOLEAN NOT NULL DEFAULT FALSE,
		pain_level SMALLINT NOT NULL DEFAULT 0,
		urgency SMALLINT NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bowel_movements_user_time ON bowel_movements(user_id, timestamp)`,
	`CREATE TABLE IF NOT EXISTS symptom_entries (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL,
		abdominal_pain SMALLINT NOT NULL DEFAULT 0,
		bloating SMALLINT NOT NULL DEFAULT 0,
		gas SMALLINT NOT NULL DEFAULT 0,
		nausea SMALLINT NOT NULL DEFAULT 0,
		cramping SMALLINT NOT NULL DEFAULT 0,
		bowel_sounds SMALLINT NOT NULL DEFAULT 0,
		fatigue SMALLINT NOT NULL DEFAULT 0,
		joint_pain SMALLINT NOT NULL DEFAULT 0,
		fever BOOLEAN NOT NULL DEFAULT FALSE,
		sleep_quality SMALLINT NOT NULL DEFAULT 0,
		mood SMALLINT NOT NULL DEFAULT 3,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_symptom_entries_user_time ON symptom_entries(user_id, timestamp)`,
	`CREATE TABLE IF NOT EXISTS medications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(50) NOT NULL,
		dosage VARCHAR(100) NOT NULL DEFAULT '',
		frequency VARCHAR(100) NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		reminder_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		reminder_hour SMALLINT NOT NULL DEFAULT 9,
		reminder_minute SMALLINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medications_user ON medications(user_id)`,
	`CREATE TABLE IF NOT EXISTS medication_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		medication_id UUID REFERENCES medications(id) ON DELETE SET NULL,
		medication_name VARCHAR(255) NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL,
		skipped BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medication_logs_user_time ON medication_logs(user_id, timestamp)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		date_range_start TIMESTAMPTZ NOT NULL,
		date_range_end TIMESTAMPTZ NOT NULL,
		format VARCHAR(10) NOT NULL,
		file_path TEXT NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		operation_type VARCHAR(20) NOT NULL,
		resource_type VARCHAR(50) NOT NULL,
		resource_id TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		details JSONB
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_user_time ON audit_logs(user_id, timestamp DESC)`,
}

// Migrate creates the schema if it does not exist
func Migrate(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			logger.Error("failed to run migration", zap.Error(err))
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	logger.Info("Database schema is up to date", zap.Int("statements", len(schema)))
	return nil
}

// notFound maps pgx.ErrNoRows to ErrNotFound
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
