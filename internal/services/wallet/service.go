package wallet

import (
	"context"
	"errors"
	"fmt"

	"walletcore/internal/events"
	"walletcore/internal/models"
	"walletcore/internal/repositories"
	"walletcore/internal/services/transfer"

	"github.com/sirupsen/logrus"
)

type service struct {
	repo        repositories.WalletRepository
	transferSvc transfer.Service
	emitter     events.Emitter
	log         *logrus.Logger
}

// NewService creates a new wallet lifecycle service.
func NewService(repo repositories.WalletRepository, transferSvc transfer.Service, emitter events.Emitter, log *logrus.Logger) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if transferSvc == nil {
		panic("transfer service is required")
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &service{
		repo:        repo,
		transferSvc: transferSvc,
		emitter:     emitter,
		log:         log,
	}
}

func (s *service) Delete(ctx context.Context, walletUUID string, userID uint, backupWalletUUID string) error {
	if walletUUID == "" || userID == 0 {
		return ErrMissingData
	}

	w, err := s.loadOwnedWallet(walletUUID, userID)
	if err != nil {
		return err
	}

	// Deleting an already-inactive wallet is a no-op, default or not.
	if w.State == models.WalletStateDeactivate {
		return nil
	}
	if w.Default {
		return ErrWalletCannotBeDeleted
	}

	accounts, err := s.repo.GetAllAccountsByWallet(ctx, w)
	if err != nil {
		return fmt.Errorf("failed to load wallet accounts: %w", err)
	}

	if holdsBalance(accounts) {
		backup, err := s.validBackupWallet(backupWalletUUID, userID)
		if err != nil {
			return err
		}
		if err := s.migrateBalances(ctx, w, backup, accounts); err != nil {
			return err
		}
	}

	for _, account := range accounts {
		if account.State == models.WalletStateDeactivate {
			continue
		}
		if err := s.repo.UpdateAccountState(ctx, w, account.ID, models.WalletStateDeactivate); err != nil {
			return err
		}
	}

	w.State = models.WalletStateDeactivate
	if err := s.repo.Update(w); err != nil {
		return err
	}
	if err := s.repo.DeleteUserWalletByWallet(w); err != nil {
		return err
	}

	s.emitter.WalletDeleted(w)
	s.log.WithFields(logrus.Fields{"wallet": w.UUID, "user": userID}).Info("wallet deleted")
	return nil
}

// loadOwnedWallet collapses "does not exist" and "belongs to someone else"
// into the same error.
func (s *service) loadOwnedWallet(uuid string, userID uint) (*models.Wallet, error) {
	w, err := s.repo.GetByUUID(uuid)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	if w.UserID != userID {
		return nil, ErrWalletNotFound
	}
	return w, nil
}

func (s *service) validBackupWallet(uuid string, userID uint) (*models.Wallet, error) {
	if uuid == "" {
		return nil, ErrWalletAccountHasBalance
	}
	backup, err := s.loadOwnedWallet(uuid, userID)
	if err != nil {
		return nil, err
	}
	if !backup.IsActive() {
		return nil, ErrWalletNotActive
	}
	return backup, nil
}

// migrateBalances moves every non-zero balance to the backup wallet's
// same-currency account. Each transfer is atomic on its own; the deletion as
// a whole is not one transaction, so a failure leaves already-moved balances
// in the backup wallet and the source wallet still active.
func (s *service) migrateBalances(ctx context.Context, w, backup *models.Wallet, accounts []models.WalletAccount) error {
	for _, account := range accounts {
		if account.Balance == 0 {
			continue
		}
		_, err := s.transferSvc.Transfer(ctx, transfer.TransferRequest{
			OwnerID:              w.UserID,
			OwnerWalletAccountID: account.ID,
			BeneficiaryID:        backup.UserID,
			BeneficiaryWalletID:  backup.ID,
			Value:                account.Balance,
		})
		if err != nil {
			return fmt.Errorf("failed to migrate account %d balance: %w", account.ID, err)
		}
	}
	return nil
}

func holdsBalance(accounts []models.WalletAccount) bool {
	for _, account := range accounts {
		if account.Balance != 0 {
			return true
		}
	}
	return false
}
