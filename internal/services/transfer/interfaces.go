package transfer

import (
	"context"

	"walletcore/internal/models"
)

// TransferRequest moves value from one wallet account to the same-currency
// account of another wallet, both belonging to known users.
type TransferRequest struct {
	OwnerID              uint
	OwnerWalletAccountID uint
	BeneficiaryID        uint
	BeneficiaryWalletID  uint
	Value                int64
	// LimitTypeID, when set, routes the transfer through the spending-policy
	// gate; the resolved tracker is linked to the operation.
	LimitTypeID        uint
	UserLimitTrackerID *uint
	AnalysisTags       models.JSON
}

// Service handles internal P2P transfers. A transfer is a PENDING operation
// created and immediately accepted, so it inherits the engine's double-entry
// and locking guarantees.
type Service interface {
	Transfer(ctx context.Context, req TransferRequest) (*models.Operation, error)
}
