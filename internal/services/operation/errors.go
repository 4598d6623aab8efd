package operation

import "errors"

// Service errors. All are deterministic caller-input failures: nothing is
// retried here and no state is touched when one is returned.
var (
	ErrMissingData            = errors.New("missing data")
	ErrInvalidValue           = errors.New("invalid operation value")
	ErrInvalidParticipants    = errors.New("invalid operation participants")
	ErrOperationNotFound      = errors.New("operation not found")
	ErrOperationInvalidState  = errors.New("operation invalid state")
	ErrWalletAccountNotFound  = errors.New("wallet account not found")
	ErrWalletAccountNotActive = errors.New("wallet account not active")
	ErrInsufficientBalance    = errors.New("insufficient balance")
)
