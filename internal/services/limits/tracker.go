package limits

import (
	"time"

	"walletcore/internal/models"
)

// Rolling period lengths for the INTERVAL policy.
const (
	dailyInterval   = 24 * time.Hour
	monthlyInterval = 30 * 24 * time.Hour
	annualInterval  = 365 * 24 * time.Hour
)

// Rollover expires stale accumulation buckets in place. For the DATE policy
// a bucket resets when its anchor precedes the current calendar boundary;
// for INTERVAL it resets when the anchor is older than the rolling period.
// A zero anchor counts as expired, so fresh trackers anchor on first use.
func Rollover(tracker *models.UserLimitTracker, at time.Time) {
	switch tracker.PeriodStart {
	case models.PeriodStartInterval:
		if expiredInterval(tracker.DailyPeriodStart, at, dailyInterval) {
			tracker.UsedDailyLimit = 0
			tracker.DailyPeriodStart = at
		}
		if expiredInterval(tracker.NightlyPeriodStart, at, dailyInterval) {
			tracker.UsedNightlyLimit = 0
			tracker.NightlyPeriodStart = at
		}
		if expiredInterval(tracker.MonthlyPeriodStart, at, monthlyInterval) {
			tracker.UsedMonthlyLimit = 0
			tracker.MonthlyPeriodStart = at
		}
		if expiredInterval(tracker.AnnualPeriodStart, at, annualInterval) {
			tracker.UsedAnnualLimit = 0
			tracker.AnnualPeriodStart = at
		}
	default: // DATE
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
		month := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
		year := time.Date(at.Year(), 1, 1, 0, 0, 0, 0, at.Location())

		if tracker.DailyPeriodStart.Before(day) {
			tracker.UsedDailyLimit = 0
			tracker.DailyPeriodStart = day
		}
		if tracker.NightlyPeriodStart.Before(day) {
			tracker.UsedNightlyLimit = 0
			tracker.NightlyPeriodStart = day
		}
		if tracker.MonthlyPeriodStart.Before(month) {
			tracker.UsedMonthlyLimit = 0
			tracker.MonthlyPeriodStart = month
		}
		if tracker.AnnualPeriodStart.Before(year) {
			tracker.UsedAnnualLimit = 0
			tracker.AnnualPeriodStart = year
		}
	}
}

func expiredInterval(anchor, at time.Time, period time.Duration) bool {
	return anchor.IsZero() || at.Sub(anchor) >= period
}

// Consume adds value to the live buckets: daily, monthly and annual always,
// and nightly additionally when at falls inside the limit's nighttime
// window. Stale buckets are rolled over first.
func Consume(tracker *models.UserLimitTracker, limit *models.UserLimit, value int64, at time.Time) {
	Rollover(tracker, at)
	tracker.UsedDailyLimit += value
	tracker.UsedMonthlyLimit += value
	tracker.UsedAnnualLimit += value
	if limit.HasNighttime() && limit.IsInNighttimeInterval(at) {
		tracker.UsedNightlyLimit += value
	}
	tracker.UpdatedAt = at
}

// Restore gives back a reverted operation's consumption. consumedAt is the
// instant the operation originally counted at; it decides whether the
// nightly bucket participates, so the restore hits the same buckets the
// consumption did. Buckets never go negative: one that already rolled over
// has nothing left to restore.
func Restore(tracker *models.UserLimitTracker, limit *models.UserLimit, value int64, at, consumedAt time.Time) {
	Rollover(tracker, at)
	tracker.UsedDailyLimit = clampZero(tracker.UsedDailyLimit - value)
	tracker.UsedMonthlyLimit = clampZero(tracker.UsedMonthlyLimit - value)
	tracker.UsedAnnualLimit = clampZero(tracker.UsedAnnualLimit - value)
	if limit.HasNighttime() && limit.IsInNighttimeInterval(consumedAt) {
		tracker.UsedNightlyLimit = clampZero(tracker.UsedNightlyLimit - value)
	}
	tracker.UpdatedAt = at
}

func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// CheckAmount validates the per-operation bounds. Nightly bounds replace the
// overall ones when at falls inside the nighttime window and a nightly bound
// is configured. A zero bound is not enforced.
func CheckAmount(limit *models.UserLimit, value int64, at time.Time) error {
	minAmount, maxAmount := limit.MinAmount, limit.MaxAmount
	if limit.HasNighttime() && limit.IsInNighttimeInterval(at) {
		if limit.MinAmountNightly > 0 {
			minAmount = limit.MinAmountNightly
		}
		if limit.MaxAmountNightly > 0 {
			maxAmount = limit.MaxAmountNightly
		}
	}
	if minAmount > 0 && value < minAmount {
		return ErrAmountBelowMinimum
	}
	if maxAmount > 0 && value > maxAmount {
		return ErrAmountAboveMaximum
	}
	return nil
}

// CheckCaps reports whether consuming value would exceed any configured
// period cap. The tracker is rolled over first so expired accumulation never
// blocks a fresh period.
func CheckCaps(tracker *models.UserLimitTracker, limit *models.UserLimit, value int64, at time.Time) error {
	Rollover(tracker, at)
	if limit.DailyLimit > 0 && tracker.UsedDailyLimit+value > limit.DailyLimit {
		return ErrLimitExceeded
	}
	if limit.MonthlyLimit > 0 && tracker.UsedMonthlyLimit+value > limit.MonthlyLimit {
		return ErrLimitExceeded
	}
	if limit.AnnualLimit > 0 && tracker.UsedAnnualLimit+value > limit.AnnualLimit {
		return ErrLimitExceeded
	}
	if limit.HasNighttime() && limit.IsInNighttimeInterval(at) {
		if limit.NightlyLimit > 0 && tracker.UsedNightlyLimit+value > limit.NightlyLimit {
			return ErrLimitExceeded
		}
	}
	return nil
}
