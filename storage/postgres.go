package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"momo-pos/config"
)

// PgStore keeps slots in a single pos_slots table. Useful when several
// stalls share one database for nightly reporting; the POS itself still
// writes whole documents, last writer wins.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(ctx context.Context, cfg config.DBConfig) (*PgStore, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pos_slots (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
	); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure pos_slots: %w", err)
	}
	return &PgStore{pool: pool}, nil
}

func (s *PgStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM pos_slots WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", key, err)
	}
	return value, nil
}

func (s *PgStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO pos_slots (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET
			value = $2::jsonb,
			updated_at = now()`,
		key, value,
	)
	return err
}

func (s *PgStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM pos_slots WHERE key = $1`, key)
	return err
}

func (s *PgStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
