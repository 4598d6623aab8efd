package operation

import "walletcore/internal/models"

// CreateOperationRequest carries an already-validated upstream command to
// create a PENDING operation. At least one side must be present and a
// present side carries both its party and its wallet account.
type CreateOperationRequest struct {
	TransactionType            string
	Currency                   string
	Value                      int64
	RawValue                   int64
	Fee                        int64
	OwnerID                    *uint
	OwnerWalletAccountID       *uint
	BeneficiaryID              *uint
	BeneficiaryWalletAccountID *uint
	OperationRefID             *string
	UserLimitTrackerID         *uint
	AnalysisTags               models.JSON
}

// OperationResult is the create result: the new PENDING operation plus the
// owner account after its funds were earmarked, when an owner side exists.
type OperationResult struct {
	Operation    *models.Operation
	OwnerAccount *models.WalletAccount
}

// Posting pairs the wallet account as it looks after a ledger write with the
// audit record of that write. Callers use it to avoid a re-read.
type Posting struct {
	Account     *models.WalletAccount
	Transaction *models.WalletAccountTransaction
}

// AcceptedOperation is the accept result: the updated operation plus, for
// each side actually touched, its posting.
type AcceptedOperation struct {
	Operation   *models.Operation
	Owner       *Posting
	Beneficiary *Posting
}

// RevertedOperation is the revert result, same shape as AcceptedOperation.
type RevertedOperation struct {
	Operation   *models.Operation
	Owner       *Posting
	Beneficiary *Posting
}
