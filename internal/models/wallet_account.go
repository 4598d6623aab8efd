package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletAccount is one balance line per (wallet, currency). Balance holds
// settled funds; PendingAmount holds funds earmarked by PENDING operations,
// already subtracted from the spendable balance but not yet moved. Both are
// minor units of Currency and never go negative at rest.
//
// Wallet accounts are mutated exclusively by the operation engine, never
// directly by callers.
type WalletAccount struct {
	ID            uint            `gorm:"primarykey"`
	WalletID      uint            `gorm:"index;not null"`
	Currency      string          `gorm:"not null"`
	Balance       int64           `gorm:"not null;default:0"`
	PendingAmount int64           `gorm:"not null;default:0"`
	AveragePrice  decimal.Decimal `gorm:"type:numeric"`
	State         string          `gorm:"not null;default:'PENDING'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Available is the account's funds before in-flight postings settle:
// settled balance plus everything still earmarked. Ledger postings record it
// as their previous balance.
func (a *WalletAccount) Available() int64 {
	return a.Balance + a.PendingAmount
}

func (a *WalletAccount) IsActive() bool {
	return a.State == WalletStateActive
}
