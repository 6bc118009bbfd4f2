//go:build integration

package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ricirt/portfolio-api/internal/config"
	"github.com/ricirt/portfolio-api/internal/db"
	"github.com/ricirt/portfolio-api/internal/domain"
	"github.com/ricirt/portfolio-api/internal/repository"
)

// Run with: DATABASE_URL=postgres://... go test -tags integration ./internal/repository/
// Point it at a disposable database; the migration creates status_checks.
func startLifecycle(t *testing.T) *db.Lifecycle {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	lc := db.NewLifecycle(config.DBConfig{
		URL:              url,
		ConnectTimeout:   5 * time.Second,
		OperationTimeout: 5 * time.Second,
		MaxConns:         4,
	}, zap.NewNop(), db.Hooks{})
	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(lc.Stop)
	return lc
}

func TestPgStatusRepository_CreateList(t *testing.T) {
	lc := startLifecycle(t)
	repo := repository.NewPgStatusRepository(lc)
	ctx := context.Background()

	prefix := uuid.New().String()
	var created []*domain.StatusRecord
	for i := 0; i < 3; i++ {
		rec := &domain.StatusRecord{
			ID:         uuid.New().String(),
			ClientName: prefix,
			Timestamp:  domain.NewTimestamp(),
		}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
		created = append(created, rec)
	}

	all, err := repo.List(ctx, domain.MaxListedRecords)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var ours []*domain.StatusRecord
	for _, rec := range all {
		if rec.ClientName == prefix {
			ours = append(ours, rec)
		}
	}
	if len(ours) != len(created) {
		t.Fatalf("expected %d records, got %d", len(created), len(ours))
	}
	for i := range created {
		if ours[i].ID != created[i].ID {
			t.Fatalf("record %d: expected insertion order, got id %s want %s", i, ours[i].ID, created[i].ID)
		}
		if !ours[i].Timestamp.Equal(created[i].Timestamp) {
			t.Fatalf("record %d: timestamp %s stored as %s", i,
				created[i].Timestamp.Format(time.RFC3339Nano), ours[i].Timestamp.Format(time.RFC3339Nano))
		}
	}

	raw, err := json.Marshal(ours)
	if err != nil {
		t.Fatal(err)
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatal(err)
	}
	for _, item := range items {
		if _, ok := item["pk"]; ok || len(item) != 3 {
			t.Fatalf("expected only id, client_name, timestamp; got %v", item)
		}
	}
}

func TestPgStatusRepository_ListLimit(t *testing.T) {
	lc := startLifecycle(t)
	repo := repository.NewPgStatusRepository(lc)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := &domain.StatusRecord{ID: uuid.New().String(), ClientName: "limit", Timestamp: domain.NewTimestamp()}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}

func TestLifecycle_MigrationIsIdempotent(t *testing.T) {
	first := startLifecycle(t)
	first.Stop()

	second := startLifecycle(t)
	if !second.Connected() {
		t.Fatal("expected a second start over a migrated schema to connect")
	}
}
