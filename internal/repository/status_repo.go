package repository

import (
	"context"

	"github.com/ricirt/portfolio-api/internal/domain"
)

// StatusRepository defines all persistence operations for status records.
// The pgx implementation is in pg_status_repo.go.
// Tests use a hand-written mock (mock_status_repo.go).
type StatusRepository interface {
	Create(ctx context.Context, rec *domain.StatusRecord) error
	// List returns at most limit records in insertion order.
	List(ctx context.Context, limit int) ([]*domain.StatusRecord, error)
}
