package limits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletcore/internal/models"
	"walletcore/internal/repositories"
)

// Service is the caller-facing policy gate, consulted before a PENDING
// operation is created. It resolves the effective limit for a user and limit
// type and checks the prospective amount against per-operation bounds and
// period caps. The returned tracker, nil for untracked users, links the
// operation to the accumulator the engine advances inside its own
// transaction.
type Service interface {
	Check(ctx context.Context, userID, limitTypeID uint, value int64, at time.Time) (*models.UserLimitTracker, error)
}

type service struct {
	repo repositories.LimitRepository
}

func NewService(repo repositories.LimitRepository) Service {
	if repo == nil {
		panic("limit repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Check(ctx context.Context, userID, limitTypeID uint, value int64, at time.Time) (*models.UserLimitTracker, error) {
	global, err := s.repo.GetGlobalLimit(limitTypeID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserLimitNotFound) {
			return nil, ErrNoLimitForType
		}
		return nil, err
	}

	userLimit, err := s.repo.GetUserLimit(userID, limitTypeID)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserLimitNotFound) {
			return nil, err
		}
		// Untracked user: only the global per-operation bounds apply, and no
		// accumulator is maintained.
		if err := CheckAmount(globalAsUserLimit(global), value, at); err != nil {
			return nil, err
		}
		return nil, nil
	}

	// The nighttime window falls back to the global one when the override
	// has none.
	if !userLimit.HasNighttime() && global.HasNighttime() {
		userLimit.NighttimeWindow = global.NighttimeWindow
	}

	if err := CheckAmount(userLimit, value, at); err != nil {
		return nil, err
	}

	tracker, err := s.repo.GetOrCreateTracker(userLimit, models.PeriodStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve limit tracker: %w", err)
	}

	if err := CheckCaps(tracker, userLimit, value, at); err != nil {
		return nil, err
	}
	return tracker, nil
}

// globalAsUserLimit materializes the global policy in user-limit shape so
// the bound checks work the same for tracked and untracked users.
func globalAsUserLimit(global *models.GlobalLimit) *models.UserLimit {
	return &models.UserLimit{
		DailyLimit:       global.DailyLimit,
		MonthlyLimit:     global.MonthlyLimit,
		AnnualLimit:      global.AnnualLimit,
		NightlyLimit:     global.NightlyLimit,
		MaxAmount:        global.MaxAmount,
		MinAmount:        global.MinAmount,
		MaxAmountNightly: global.MaxAmountNightly,
		MinAmountNightly: global.MinAmountNightly,
		NighttimeWindow:  global.NighttimeWindow,
	}
}
