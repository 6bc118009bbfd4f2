package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ricirt/portfolio-api/internal/domain"
	"github.com/ricirt/portfolio-api/internal/repository"
)

// Connectivity reports whether the database is currently reachable.
// Implementations must answer from cached state without doing I/O.
type Connectivity interface {
	Connected() bool
}

// Hooks are optional metric callbacks. Any field may be nil.
type Hooks struct {
	OnCreated     func()
	OnUnavailable func(op string)
	OnStoreError  func(op string)
}

// StatusService gates every operation on connectivity and bounds every
// repository call with the configured operation timeout.
// HTTP handlers depend on this service, not on the repository.
type StatusService struct {
	repo    repository.StatusRepository
	state   Connectivity
	timeout time.Duration
	logger  *zap.Logger
	hooks   Hooks
}

func NewStatusService(
	repo repository.StatusRepository,
	state Connectivity,
	timeout time.Duration,
	logger *zap.Logger,
	hooks Hooks,
) *StatusService {
	return &StatusService{repo: repo, state: state, timeout: timeout, logger: logger, hooks: hooks}
}

// Connected exposes the cached connectivity state for health reporting.
func (s *StatusService) Connected() bool {
	return s.state.Connected()
}

// Create validates the request, then stores a new record with a generated
// ID and a UTC timestamp at store resolution. When disconnected it fails with ErrUnavailable
// without touching the repository.
func (s *StatusService) Create(ctx context.Context, req domain.CreateStatusRequest) (*domain.StatusRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !s.state.Connected() {
		s.unavailable("create")
		return nil, domain.ErrUnavailable
	}

	rec := &domain.StatusRecord{
		ID:         uuid.New().String(),
		ClientName: *req.ClientName,
		Timestamp:  domain.NewTimestamp(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, rec); err != nil {
		s.storeError("create")
		return nil, fmt.Errorf("persist status check: %w", err)
	}

	if s.hooks.OnCreated != nil {
		s.hooks.OnCreated()
	}
	s.logger.Debug("status check created",
		zap.String("id", rec.ID), zap.String("client_name", rec.ClientName))
	return rec, nil
}

// List returns up to domain.MaxListedRecords records in storage order.
func (s *StatusService) List(ctx context.Context) ([]*domain.StatusRecord, error) {
	if !s.state.Connected() {
		s.unavailable("list")
		return nil, domain.ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	records, err := s.repo.List(ctx, domain.MaxListedRecords)
	if err != nil {
		s.storeError("list")
		return nil, fmt.Errorf("fetch status checks: %w", err)
	}
	if records == nil {
		records = []*domain.StatusRecord{}
	}
	return records, nil
}

func (s *StatusService) unavailable(op string) {
	if s.hooks.OnUnavailable != nil {
		s.hooks.OnUnavailable(op)
	}
}

func (s *StatusService) storeError(op string) {
	if s.hooks.OnStoreError != nil {
		s.hooks.OnStoreError(op)
	}
}
