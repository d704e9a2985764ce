package errs

import "errors"

// Error classes shared across layers. Package-level sentinels are marked
// with one of these so the transport layer can pick a status without
// knowing every sentinel.
var (
	ErrValidation   = errors.New("validation failed")
	ErrSecurity     = errors.New("security check failed")
	ErrGateway      = errors.New("payment gateway failure")
	ErrNotification = errors.New("notification failure")
)
