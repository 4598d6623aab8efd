package models

import "time"

// Period start policies for limit accumulation.
const (
	// PeriodStartDate resets counters at the literal calendar boundary
	// (start of day, month or year).
	PeriodStartDate = "DATE"
	// PeriodStartInterval keeps a rolling window of the last 24h/30d/365d.
	PeriodStartInterval = "INTERVAL"
)

// UserLimitTracker accumulates a user's consumed limit per limit type. The
// operation engine consumes on operations entering a counted state (PENDING
// or ACCEPTED) and restores on revert. Each used counter carries its own
// period anchor; an anchor older than the live period expires the counter,
// so rollover is resolved on read rather than by a background job.
type UserLimitTracker struct {
	ID                 uint   `gorm:"primarykey"`
	UserLimitID        uint   `gorm:"index;not null"`
	PeriodStart        string `gorm:"not null;default:'DATE'"`
	UsedDailyLimit     int64
	UsedMonthlyLimit   int64
	UsedAnnualLimit    int64
	UsedNightlyLimit   int64
	DailyPeriodStart   time.Time
	MonthlyPeriodStart time.Time
	AnnualPeriodStart  time.Time
	NightlyPeriodStart time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
