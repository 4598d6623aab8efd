package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wallet states, shared with WalletAccount.
const (
	WalletStatePending    = "PENDING"
	WalletStateActive     = "ACTIVE"
	WalletStateDeactivate = "DEACTIVATE"
)

// Wallet is a named collection of per-currency wallet accounts belonging to
// one user. Exactly one default, active wallet exists per user at any time;
// the wallet-creation flow enforces that, and a default wallet can never be
// deleted.
type Wallet struct {
	ID        uint   `gorm:"primarykey"`
	UUID      string `gorm:"uniqueIndex;not null"`
	UserID    uint   `gorm:"index;not null"`
	Name      string
	State     string `gorm:"not null;default:'PENDING'"`
	Default   bool   `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.UUID == "" {
		w.UUID = uuid.NewString()
	}
	return nil
}

func (w *Wallet) IsActive() bool {
	return w.State == WalletStateActive
}

// UserWallet is the user-to-wallet association row, detached when the wallet
// is deleted.
type UserWallet struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index;not null"`
	WalletID  uint `gorm:"index;not null"`
	CreatedAt time.Time
}
