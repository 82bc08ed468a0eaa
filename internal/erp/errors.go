package erp

import "errors"

var (
	// ErrUnavailable indicates the ERP server is unreachable.
	ErrUnavailable = errors.New("erp server unavailable")

	// ErrTimeout indicates the submission exceeded the configured timeout.
	ErrTimeout = errors.New("erp request timed out")

	// ErrRejected indicates the ERP refused the event for a non-duplicate
	// reason (validation failure, auth). The item stays queued.
	ErrRejected = errors.New("erp rejected event")
)
