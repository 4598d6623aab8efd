package models

import "time"

// Wallet account transaction types
const (
	WalletAccountTransactionCredit = "CREDIT"
	WalletAccountTransactionDebit  = "DEBIT"
)

// WalletAccountTransactionStateDone is the only state a posting is ever
// written in; postings are append-only and never updated or deleted.
const WalletAccountTransactionStateDone = "DONE"

// WalletAccountTransaction is the immutable audit record of one ledger
// posting against a wallet account. UpdatedBalance always equals
// PreviousBalance plus Value for a CREDIT and minus Value for a DEBIT, where
// both balances are the account's Available() amount around the posting. The
// series of postings for an account reconstructs its balance history.
type WalletAccountTransaction struct {
	ID              uint   `gorm:"primarykey"`
	WalletAccountID uint   `gorm:"index;not null"`
	OperationID     string `gorm:"index;not null"`
	TransactionType string `gorm:"not null"`
	Value           int64  `gorm:"not null"`
	PreviousBalance int64  `gorm:"not null"`
	UpdatedBalance  int64  `gorm:"not null"`
	State           string `gorm:"not null;default:'DONE'"`
	CreatedAt       time.Time
}
