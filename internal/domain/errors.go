package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrUnavailable        = errors.New("database not available")
	ErrClientNameRequired = errors.New("client_name is required and must be a string")
)
