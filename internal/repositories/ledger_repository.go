package repositories

import (
	"errors"

	"walletcore/internal/models"
)

var (
	ErrOperationNotFound        = errors.New("operation not found")
	ErrWalletAccountNotFound    = errors.New("wallet account not found")
	ErrWalletNotFound           = errors.New("wallet not found")
	ErrUserLimitNotFound        = errors.New("user limit not found")
	ErrUserLimitTrackerNotFound = errors.New("user limit tracker not found")
)

// LedgerRepository is the transactional port of the operation engine. Every
// read-modify-write of a wallet account or tracker row goes through the
// ForUpdate variants inside ExecuteInTransaction, so two writers on the same
// row can never interleave their read and write.
type LedgerRepository interface {
	// Operations
	CreateOperation(op *models.Operation) error
	GetOperation(id string) (*models.Operation, error)
	UpdateOperation(op *models.Operation) error

	// Wallet accounts
	GetWalletAccount(id uint) (*models.WalletAccount, error)
	GetWalletAccountForUpdate(id uint) (*models.WalletAccount, error)
	GetWalletAccountByCurrency(walletID uint, currency string) (*models.WalletAccount, error)
	UpdateWalletAccount(account *models.WalletAccount) error

	// Postings (append-only)
	CreateWalletAccountTransaction(tx *models.WalletAccountTransaction) error

	// Limit trackers
	GetUserLimitTrackerForUpdate(id uint) (*models.UserLimitTracker, error)
	UpdateUserLimitTracker(tracker *models.UserLimitTracker) error
	GetUserLimit(id uint) (*models.UserLimit, error)

	// ExecuteInTransaction runs fn against a repository bound to one database
	// transaction; fn returning an error rolls everything back.
	ExecuteInTransaction(fn func(LedgerRepository) error) error
}
