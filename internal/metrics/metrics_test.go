package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ricirt/portfolio-api/internal/metrics"
)

func TestLifecycleHooks_TrackConnectivity(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	hooks := m.LifecycleHooks()

	if got := testutil.ToFloat64(m.DatabaseConnected); got != 0 {
		t.Fatalf("expected gauge to start at 0, got %v", got)
	}

	hooks.OnStateChange(true)
	if got := testutil.ToFloat64(m.DatabaseConnected); got != 1 {
		t.Fatalf("expected 1 after connect, got %v", got)
	}

	hooks.OnStateChange(false)
	if got := testutil.ToFloat64(m.DatabaseConnected); got != 0 {
		t.Fatalf("expected 0 after disconnect, got %v", got)
	}
}

func TestServiceHooks_Count(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	hooks := m.ServiceHooks()

	hooks.OnCreated()
	hooks.OnCreated()
	hooks.OnUnavailable("create")
	hooks.OnStoreError("list")

	if got := testutil.ToFloat64(m.RecordsCreated); got != 2 {
		t.Fatalf("expected 2 created, got %v", got)
	}
	if got := testutil.ToFloat64(m.Unavailable.WithLabelValues("create")); got != 1 {
		t.Fatalf("expected 1 unavailable create, got %v", got)
	}
	if got := testutil.ToFloat64(m.StoreErrors.WithLabelValues("list")); got != 1 {
		t.Fatalf("expected 1 list store error, got %v", got)
	}
}
