package repositories

import (
	"fmt"

	"walletcore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

func (r *ledgerRepository) CreateOperation(op *models.Operation) error {
	if err := r.db.Create(op).Error; err != nil {
		return fmt.Errorf("failed to create operation: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetOperation(id string) (*models.Operation, error) {
	var op models.Operation
	if err := r.db.First(&op, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOperationNotFound
		}
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}
	return &op, nil
}

func (r *ledgerRepository) UpdateOperation(op *models.Operation) error {
	if err := r.db.Save(op).Error; err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetWalletAccount(id uint) (*models.WalletAccount, error) {
	var account models.WalletAccount
	if err := r.db.First(&account, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletAccountNotFound
		}
		return nil, fmt.Errorf("failed to get wallet account: %w", err)
	}
	return &account, nil
}

// GetWalletAccountForUpdate takes a row-level lock (SELECT ... FOR UPDATE) on
// the account, serializing concurrent balance writers on the same row. Only
// meaningful inside ExecuteInTransaction.
func (r *ledgerRepository) GetWalletAccountForUpdate(id uint) (*models.WalletAccount, error) {
	var account models.WalletAccount
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet account: %w", err)
	}
	return &account, nil
}

func (r *ledgerRepository) GetWalletAccountByCurrency(walletID uint, currency string) (*models.WalletAccount, error) {
	var account models.WalletAccount
	err := r.db.Where("wallet_id = ? AND currency = ?", walletID, currency).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletAccountNotFound
		}
		return nil, fmt.Errorf("failed to get wallet account by currency: %w", err)
	}
	return &account, nil
}

func (r *ledgerRepository) UpdateWalletAccount(account *models.WalletAccount) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update wallet account: %w", err)
	}
	return nil
}

func (r *ledgerRepository) CreateWalletAccountTransaction(tx *models.WalletAccountTransaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create wallet account transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetUserLimitTrackerForUpdate(id uint) (*models.UserLimitTracker, error) {
	var tracker models.UserLimitTracker
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tracker, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserLimitTrackerNotFound
		}
		return nil, fmt.Errorf("failed to lock user limit tracker: %w", err)
	}
	return &tracker, nil
}

func (r *ledgerRepository) UpdateUserLimitTracker(tracker *models.UserLimitTracker) error {
	if err := r.db.Save(tracker).Error; err != nil {
		return fmt.Errorf("failed to update user limit tracker: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetUserLimit(id uint) (*models.UserLimit, error) {
	var limit models.UserLimit
	if err := r.db.First(&limit, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserLimitNotFound
		}
		return nil, fmt.Errorf("failed to get user limit: %w", err)
	}
	return &limit, nil
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(LedgerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &ledgerRepository{db: tx}
		return fn(txRepo)
	})
}
