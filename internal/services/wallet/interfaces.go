package wallet

import "context"

// Service manages the wallet lifecycle. Deletion is a state transition to
// DEACTIVATE with conditional balance migration: wallets holding funds move
// them to a backup wallet of the same user before deactivating.
type Service interface {
	Delete(ctx context.Context, walletUUID string, userID uint, backupWalletUUID string) error
}
