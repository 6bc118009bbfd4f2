package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricirt/portfolio-api/internal/domain"
)

// PoolSource hands out the current pool, or nil when the database is not
// connected. *db.Lifecycle satisfies it.
type PoolSource interface {
	Pool() *pgxpool.Pool
}

type pgStatusRepository struct {
	src PoolSource
}

// NewPgStatusRepository returns a StatusRepository backed by PostgreSQL.
func NewPgStatusRepository(src PoolSource) StatusRepository {
	return &pgStatusRepository{src: src}
}

func (r *pgStatusRepository) Create(ctx context.Context, rec *domain.StatusRecord) error {
	pool := r.src.Pool()
	if pool == nil {
		return domain.ErrUnavailable
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO status_checks (id, client_name, created_at)
		VALUES ($1, $2, $3)`,
		rec.ID, rec.ClientName, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// List orders by the internal key, which follows insertion order. The key
// itself is never selected.
func (r *pgStatusRepository) List(ctx context.Context, limit int) ([]*domain.StatusRecord, error) {
	pool := r.src.Pool()
	if pool == nil {
		return nil, domain.ErrUnavailable
	}

	rows, err := pool.Query(ctx, `
		SELECT id, client_name, created_at
		FROM status_checks
		ORDER BY pk
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.StatusRecord, 0)
	for rows.Next() {
		var rec domain.StatusRecord
		if err := rows.Scan(&rec.ID, &rec.ClientName, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		rec.Timestamp = rec.Timestamp.UTC()
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return records, nil
}
