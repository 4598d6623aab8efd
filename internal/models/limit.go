package models

import "time"

// LimitType is a named policy bucket to which global and user limits attach,
// e.g. PIX withdrawals or P2P transfers.
type LimitType struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NighttimeWindow is an optional, possibly day-wrapping time window during
// which the nightly caps apply instead of the daytime ones. Bounds are
// "HH:mm" clock values; the window is half-open [start, end).
type NighttimeWindow struct {
	NighttimeStart string
	NighttimeEnd   string
}

// HasNighttime reports whether both bounds are present and well-formed.
func (w NighttimeWindow) HasNighttime() bool {
	if w.NighttimeStart == "" || w.NighttimeEnd == "" {
		return false
	}
	_, errStart := time.Parse("15:04", w.NighttimeStart)
	_, errEnd := time.Parse("15:04", w.NighttimeEnd)
	return errStart == nil && errEnd == nil
}

// IsInNighttimeInterval resolves wraparound windows such as 22:00-06:00: a
// start later than the end means the end falls on the next day, and an
// instant earlier than the start is tested against the previous day's
// window.
func (w NighttimeWindow) IsInNighttimeInterval(t time.Time) bool {
	startClock, err := time.Parse("15:04", w.NighttimeStart)
	if err != nil {
		return false
	}
	endClock, err := time.Parse("15:04", w.NighttimeEnd)
	if err != nil {
		return false
	}

	start := time.Date(t.Year(), t.Month(), t.Day(), startClock.Hour(), startClock.Minute(), 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), endClock.Hour(), endClock.Minute(), 0, 0, t.Location())
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	if t.Before(start) {
		start = start.AddDate(0, 0, -1)
		end = end.AddDate(0, 0, -1)
	}
	return !t.Before(start) && t.Before(end)
}

// GlobalLimit is the platform-wide spending policy for one limit type. All
// amounts are minor units. A zero cap means the bucket is not limited.
type GlobalLimit struct {
	ID               uint `gorm:"primarykey"`
	LimitTypeID      uint `gorm:"index;not null"`
	Currency         string
	DailyLimit       int64
	MonthlyLimit     int64
	AnnualLimit      int64
	NightlyLimit     int64
	MaxAmount        int64
	MinAmount        int64
	MaxAmountNightly int64
	MinAmountNightly int64
	NighttimeWindow  `gorm:"embedded"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserLimit is a per-user override of the global policy for one limit type.
// Overrides must not exceed the corresponding global cap; the flow that
// writes them enforces that, not this entity.
type UserLimit struct {
	ID               uint `gorm:"primarykey"`
	UserID           uint `gorm:"index;not null"`
	LimitTypeID      uint `gorm:"index;not null"`
	DailyLimit       int64
	MonthlyLimit     int64
	AnnualLimit      int64
	NightlyLimit     int64
	MaxAmount        int64
	MinAmount        int64
	MaxAmountNightly int64
	MinAmountNightly int64
	NighttimeWindow  `gorm:"embedded"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
