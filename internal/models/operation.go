package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operation states
const (
	OperationStatePending  = "PENDING"
	OperationStateAccepted = "ACCEPTED"
	OperationStateDeclined = "DECLINED"
	OperationStateReverted = "REVERTED"
	OperationStateUndone   = "UNDONE"
)

// Operation transaction types
const (
	OperationTypeP2PTransfer = "P2P_TRANSFER"
	OperationTypePixPayment  = "PIX_PAYMENT"
	OperationTypeWithdrawal  = "WITHDRAWAL"
	OperationTypeDeposit     = "DEPOSIT"
	OperationTypeConversion  = "CONVERSION"
	OperationTypeChargeback  = "CHARGEBACK"
)

// Operation represents one value movement between zero, one or two wallet
// accounts. An operation with only an owner is a pure debit (e.g. a
// withdrawal), with only a beneficiary a pure credit (e.g. a deposit), and
// with both a transfer. Value is always in minor units of Currency.
type Operation struct {
	ID                         string `gorm:"primarykey"`
	OwnerID                    *uint  `gorm:"index"`
	BeneficiaryID              *uint  `gorm:"index"`
	OwnerWalletAccountID       *uint
	BeneficiaryWalletAccountID *uint
	TransactionType            string `gorm:"not null"`
	Currency                   string `gorm:"not null"`
	Value                      int64  `gorm:"not null"`
	RawValue                   int64
	Fee                        int64  `gorm:"default:0"`
	State                      string `gorm:"not null;default:'PENDING'"`
	OperationRefID             *string
	ChargebackID               *string
	AnalysisTags               JSON `gorm:"type:jsonb"`
	UserLimitTrackerID         *uint
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	RevertedAt                 *time.Time
}

func (o *Operation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (o *Operation) HasOwner() bool {
	return o.OwnerID != nil && o.OwnerWalletAccountID != nil
}

func (o *Operation) HasBeneficiary() bool {
	return o.BeneficiaryID != nil && o.BeneficiaryWalletAccountID != nil
}

// IsFinal reports whether the operation may no longer be mutated.
func (o *Operation) IsFinal() bool {
	switch o.State {
	case OperationStateDeclined, OperationStateReverted, OperationStateUndone:
		return true
	}
	return false
}

// OperationLimitCheckStates returns the operation states that count toward
// consumed spending limits. Declined and undone operations never counted;
// reverted operations are subtracted back out when reverted.
func OperationLimitCheckStates() []string {
	return []string{OperationStateAccepted, OperationStatePending}
}
