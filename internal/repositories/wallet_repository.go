package repositories

import (
	"context"

	"walletcore/internal/models"
)

// WalletRepository covers the wallet lifecycle reads and writes. The account
// list read is served through the Redis cache; account and wallet writes
// invalidate the cached list for the affected wallet.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByUUID(uuid string) (*models.Wallet, error)
	Update(wallet *models.Wallet) error

	CreateAccount(account *models.WalletAccount) error
	GetAllAccountsByWallet(ctx context.Context, wallet *models.Wallet) ([]models.WalletAccount, error)
	// UpdateAccountState changes only the account's state column; balances
	// stay untouched since the loaded account may be stale by the time the
	// lifecycle flow deactivates it.
	UpdateAccountState(ctx context.Context, wallet *models.Wallet, accountID uint, state string) error

	DeleteUserWalletByWallet(wallet *models.Wallet) error
}
