package limits

import (
	"testing"
	"time"

	"walletcore/internal/models"

	"github.com/stretchr/testify/assert"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
}

func dateTracker() *models.UserLimitTracker {
	return &models.UserLimitTracker{PeriodStart: models.PeriodStartDate}
}

func intervalTracker() *models.UserLimitTracker {
	return &models.UserLimitTracker{PeriodStart: models.PeriodStartInterval}
}

func nightLimit() *models.UserLimit {
	return &models.UserLimit{
		NighttimeWindow: models.NighttimeWindow{NighttimeStart: "20:00", NighttimeEnd: "06:00"},
	}
}

func TestConsume_DaytimeBuckets(t *testing.T) {
	tracker := dateTracker()
	Consume(tracker, nightLimit(), 500, at(15, 12))

	assert.Equal(t, int64(500), tracker.UsedDailyLimit)
	assert.Equal(t, int64(500), tracker.UsedMonthlyLimit)
	assert.Equal(t, int64(500), tracker.UsedAnnualLimit)
	assert.Equal(t, int64(0), tracker.UsedNightlyLimit)
}

func TestConsume_NightlyBucket(t *testing.T) {
	tracker := dateTracker()
	Consume(tracker, nightLimit(), 500, at(15, 23))

	assert.Equal(t, int64(500), tracker.UsedDailyLimit)
	assert.Equal(t, int64(500), tracker.UsedNightlyLimit)
}

func TestRollover_DateBoundary(t *testing.T) {
	tracker := dateTracker()
	Consume(tracker, nightLimit(), 500, at(15, 12))

	// Next calendar day: the daily bucket expires, the monthly one lives on.
	Rollover(tracker, at(16, 1))
	assert.Equal(t, int64(0), tracker.UsedDailyLimit)
	assert.Equal(t, int64(500), tracker.UsedMonthlyLimit)
	assert.Equal(t, int64(500), tracker.UsedAnnualLimit)

	// Next month.
	Rollover(tracker, time.Date(2024, 7, 1, 0, 0, 1, 0, time.UTC))
	assert.Equal(t, int64(0), tracker.UsedMonthlyLimit)
	assert.Equal(t, int64(500), tracker.UsedAnnualLimit)

	// Next year.
	Rollover(tracker, time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC))
	assert.Equal(t, int64(0), tracker.UsedAnnualLimit)
}

func TestRollover_Interval(t *testing.T) {
	tracker := intervalTracker()
	Consume(tracker, nightLimit(), 500, at(15, 12))

	// 23 hours later the rolling 24h window still holds the accumulation.
	Rollover(tracker, at(16, 11))
	assert.Equal(t, int64(500), tracker.UsedDailyLimit)

	// Past 24 hours it expires.
	Rollover(tracker, at(16, 13))
	assert.Equal(t, int64(0), tracker.UsedDailyLimit)
	assert.Equal(t, int64(500), tracker.UsedMonthlyLimit)

	// 30 days after first use the monthly bucket expires too.
	Rollover(tracker, time.Date(2024, 7, 16, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, int64(0), tracker.UsedMonthlyLimit)
}

func TestRestore_MatchesConsumedBuckets(t *testing.T) {
	tracker := dateTracker()
	limit := nightLimit()
	consumedAt := at(15, 23)
	Consume(tracker, limit, 500, consumedAt)

	// Restored during the day: the nightly bucket still gives back because
	// the consumption was nocturnal.
	Restore(tracker, limit, 500, at(15, 23).Add(30*time.Minute), consumedAt)
	assert.Equal(t, int64(0), tracker.UsedDailyLimit)
	assert.Equal(t, int64(0), tracker.UsedNightlyLimit)
}

func TestRestore_NeverGoesNegative(t *testing.T) {
	tracker := dateTracker()
	limit := nightLimit()
	Consume(tracker, limit, 100, at(15, 12))

	Restore(tracker, limit, 500, at(15, 13), at(15, 12))
	assert.Equal(t, int64(0), tracker.UsedDailyLimit)
	assert.Equal(t, int64(0), tracker.UsedMonthlyLimit)
}

func TestCheckAmount(t *testing.T) {
	limit := &models.UserLimit{
		MinAmount:        100,
		MaxAmount:        10000,
		MinAmountNightly: 500,
		MaxAmountNightly: 2000,
		NighttimeWindow:  models.NighttimeWindow{NighttimeStart: "20:00", NighttimeEnd: "06:00"},
	}

	assert.NoError(t, CheckAmount(limit, 5000, at(15, 12)))
	assert.ErrorIs(t, CheckAmount(limit, 50, at(15, 12)), ErrAmountBelowMinimum)
	assert.ErrorIs(t, CheckAmount(limit, 20000, at(15, 12)), ErrAmountAboveMaximum)

	// Nightly bounds take over inside the window.
	assert.ErrorIs(t, CheckAmount(limit, 5000, at(15, 23)), ErrAmountAboveMaximum)
	assert.ErrorIs(t, CheckAmount(limit, 300, at(15, 23)), ErrAmountBelowMinimum)
	assert.NoError(t, CheckAmount(limit, 1000, at(15, 23)))
}

func TestCheckCaps(t *testing.T) {
	limit := &models.UserLimit{
		DailyLimit:      1000,
		NightlyLimit:    300,
		NighttimeWindow: models.NighttimeWindow{NighttimeStart: "20:00", NighttimeEnd: "06:00"},
	}
	tracker := dateTracker()
	Consume(tracker, limit, 800, at(15, 12))

	assert.NoError(t, CheckCaps(tracker, limit, 200, at(15, 13)))
	assert.ErrorIs(t, CheckCaps(tracker, limit, 201, at(15, 13)), ErrLimitExceeded)

	// A fresh day clears the cap.
	assert.NoError(t, CheckCaps(tracker, limit, 1000, at(16, 12)))

	// Nightly cap applies inside the window.
	night := dateTracker()
	Consume(night, limit, 250, at(15, 22))
	assert.ErrorIs(t, CheckCaps(night, limit, 100, at(15, 23)), ErrLimitExceeded)
	assert.NoError(t, CheckCaps(night, limit, 50, at(15, 23)))
}
