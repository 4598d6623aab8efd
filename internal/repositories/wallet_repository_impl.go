package repositories

import (
	"context"
	"fmt"

	"walletcore/internal/models"
	"walletcore/internal/repositories/cache"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type walletRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
	log   *logrus.Logger
}

func NewWalletRepository(db *gorm.DB, cacheService *cache.CacheService, log *logrus.Logger) WalletRepository {
	return &walletRepository{
		db:    db,
		cache: cacheService,
		log:   log,
	}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByUUID(uuid string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("uuid = ?", uuid).First(&wallet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) Update(wallet *models.Wallet) error {
	if err := r.db.Save(wallet).Error; err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	r.invalidateAccounts(wallet.UUID)
	return nil
}

func (r *walletRepository) CreateAccount(account *models.WalletAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create wallet account: %w", err)
	}
	return nil
}

// GetAllAccountsByWallet is a read-through: the cached list is served when
// present, otherwise the database result is cached before returning.
func (r *walletRepository) GetAllAccountsByWallet(ctx context.Context, wallet *models.Wallet) ([]models.WalletAccount, error) {
	if r.cache != nil {
		if accounts, found, err := r.cache.GetWalletAccounts(ctx, wallet.UUID); err == nil && found {
			return accounts, nil
		}
	}

	var accounts []models.WalletAccount
	if err := r.db.Where("wallet_id = ?", wallet.ID).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallet accounts: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.CacheWalletAccounts(ctx, wallet.UUID, accounts); err != nil {
			r.log.WithError(err).WithField("wallet", wallet.UUID).Warn("failed to cache wallet accounts")
		}
	}
	return accounts, nil
}

func (r *walletRepository) UpdateAccountState(ctx context.Context, wallet *models.Wallet, accountID uint, state string) error {
	result := r.db.Model(&models.WalletAccount{}).Where("id = ?", accountID).Update("state", state)
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet account state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletAccountNotFound
	}
	r.invalidateAccounts(wallet.UUID)
	return nil
}

func (r *walletRepository) DeleteUserWalletByWallet(wallet *models.Wallet) error {
	result := r.db.Where("wallet_id = ?", wallet.ID).Delete(&models.UserWallet{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user wallet association: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) invalidateAccounts(walletUUID string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateWalletAccounts(context.Background(), walletUUID); err != nil {
		r.log.WithError(err).WithField("wallet", walletUUID).Warn("failed to invalidate wallet accounts cache")
	}
}
