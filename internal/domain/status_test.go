package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ricirt/portfolio-api/internal/domain"
)

func ptr(s string) *string { return &s }

func TestCreateStatusRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		clientName *string
		wantErr    error
	}{
		{"plain name passes", ptr("portfolio-frontend"), nil},
		{"empty string passes", ptr(""), nil},
		{"long name passes", ptr(strings.Repeat("x", 4096)), nil},
		{"missing name", nil, domain.ErrClientNameRequired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := domain.CreateStatusRequest{ClientName: tc.clientName}
			if err := req.Validate(); err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewTimestamp_StoreResolutionNotBeforeNow(t *testing.T) {
	for i := 0; i < 1000; i++ {
		before := time.Now().UTC()
		ts := domain.NewTimestamp()

		if ts.Before(before) {
			t.Fatalf("timestamp %s is earlier than call time %s", ts, before)
		}
		if !ts.Equal(ts.Truncate(domain.TimestampResolution)) {
			t.Fatalf("timestamp %s carries sub-microsecond precision", ts)
		}
		if ts.Location() != time.UTC {
			t.Fatalf("expected UTC, got %s", ts.Location())
		}
	}
}
