package bucket

import (
	"context"
	"errors"
	"io"
	"log"

	"agathiya-store/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Store backed by the single-table JSONB layout.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresStore{pool: pool, logger: logger}
}

func (s *postgresStore) Load(ctx context.Context, bucket string) ([]byte, error) {
	const q = `
SELECT value
FROM store
WHERE bucket = $1
`
	var value []byte
	err := s.pool.QueryRow(ctx, q, bucket).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("bucket store: load bucket=%s error=%v", bucket, err)
		return nil, err
	}
	return value, nil
}

func (s *postgresStore) Save(ctx context.Context, bucket string, value []byte) error {
	const q = `
INSERT INTO store (bucket, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (bucket) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, bucket, value); err != nil {
		s.logger.Printf("bucket store: save bucket=%s error=%v", bucket, err)
		return err
	}
	return nil
}
