package repositories

import (
	"fmt"

	"walletcore/internal/models"

	"gorm.io/gorm"
)

// LimitRepository reads the semi-static limit policy. Trackers are written
// through the LedgerRepository so their updates share the operation's
// transaction.
type LimitRepository interface {
	GetGlobalLimit(limitTypeID uint) (*models.GlobalLimit, error)
	GetUserLimit(userID, limitTypeID uint) (*models.UserLimit, error)
	GetOrCreateTracker(userLimit *models.UserLimit, periodStart string) (*models.UserLimitTracker, error)
}

type limitRepository struct {
	db *gorm.DB
}

func NewLimitRepository(db *gorm.DB) LimitRepository {
	return &limitRepository{db: db}
}

func (r *limitRepository) GetGlobalLimit(limitTypeID uint) (*models.GlobalLimit, error) {
	var limit models.GlobalLimit
	err := r.db.Where("limit_type_id = ?", limitTypeID).First(&limit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserLimitNotFound
		}
		return nil, fmt.Errorf("failed to get global limit: %w", err)
	}
	return &limit, nil
}

func (r *limitRepository) GetUserLimit(userID, limitTypeID uint) (*models.UserLimit, error) {
	var limit models.UserLimit
	err := r.db.Where("user_id = ? AND limit_type_id = ?", userID, limitTypeID).First(&limit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserLimitNotFound
		}
		return nil, fmt.Errorf("failed to get user limit: %w", err)
	}
	return &limit, nil
}

func (r *limitRepository) GetOrCreateTracker(userLimit *models.UserLimit, periodStart string) (*models.UserLimitTracker, error) {
	var tracker models.UserLimitTracker
	err := r.db.Where("user_limit_id = ?", userLimit.ID).First(&tracker).Error
	if err == nil {
		return &tracker, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to get user limit tracker: %w", err)
	}

	tracker = models.UserLimitTracker{
		UserLimitID: userLimit.ID,
		PeriodStart: periodStart,
	}
	if err := r.db.Create(&tracker).Error; err != nil {
		return nil, fmt.Errorf("failed to create user limit tracker: %w", err)
	}
	return &tracker, nil
}
