package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxListedRecords caps how many records a single list call returns.
const MaxListedRecords = 1000

// TimestampResolution is the finest unit the store keeps (TIMESTAMPTZ).
const TimestampResolution = time.Microsecond

// StatusRecord is a single client check-in. Records are immutable once stored.
type StatusRecord struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateStatusRequest is the inbound payload for POST /api/status.
// ClientName is a pointer so an absent field can be told apart from "".
type CreateStatusRequest struct {
	ClientName *string `json:"client_name" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (r *CreateStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrClientNameRequired
	}
	return nil
}

// NewTimestamp returns now in UTC at store resolution, rounded up so it is
// never earlier than the moment of the call.
func NewTimestamp() time.Time {
	now := time.Now().UTC()
	ts := now.Truncate(TimestampResolution)
	if ts.Before(now) {
		ts = ts.Add(TimestampResolution)
	}
	return ts
}
