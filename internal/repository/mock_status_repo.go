package repository

import (
	"context"
	"sync"

	"github.com/ricirt/portfolio-api/internal/domain"
)

// MockStatusRepository is a hand-written, in-memory implementation of
// StatusRepository used in unit tests. No mock-generation library needed.
type MockStatusRepository struct {
	mu      sync.RWMutex
	records []*domain.StatusRecord
	calls   int

	// Optional error overrides, set in tests to simulate failure paths.
	CreateErr error
	ListErr   error
}

func NewMockStatusRepository() *MockStatusRepository {
	return &MockStatusRepository{}
}

func (m *MockStatusRepository) Create(_ context.Context, rec *domain.StatusRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	clone := *rec
	// Mirror the TIMESTAMPTZ column, which drops sub-microsecond precision.
	clone.Timestamp = clone.Timestamp.Truncate(domain.TimestampResolution)
	m.records = append(m.records, &clone)
	return nil
}

func (m *MockStatusRepository) List(_ context.Context, limit int) ([]*domain.StatusRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	n := len(m.records)
	if limit < n {
		n = limit
	}
	out := make([]*domain.StatusRecord, 0, n)
	for _, rec := range m.records[:n] {
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}

// Calls reports how many repository operations were attempted, failed or not.
func (m *MockStatusRepository) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Len reports how many records are stored.
func (m *MockStatusRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
