package wallet

import "errors"

// Service errors
var (
	ErrMissingData = errors.New("missing data")
	// ErrWalletNotFound covers both an absent wallet and one owned by
	// another user, so callers cannot probe for wallets they do not own.
	ErrWalletNotFound          = errors.New("wallet not found")
	ErrWalletNotActive         = errors.New("wallet not active")
	ErrWalletCannotBeDeleted   = errors.New("wallet cannot be deleted")
	ErrWalletAccountHasBalance = errors.New("wallet account has balance")
)
