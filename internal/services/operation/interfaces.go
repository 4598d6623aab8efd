package operation

import "context"

// Service is the accept/revert engine: the only writer of wallet account
// balances and the owner of the operation state machine. Each call is one
// atomic unit of work; a failure rolls the whole unit back and no partial
// state is observable.
type Service interface {
	// Create persists a PENDING operation, earmarking the owner's funds
	// (balance to pendingAmount) under a row lock and consuming the linked
	// limit tracker.
	Create(ctx context.Context, req CreateOperationRequest) (*OperationResult, error)

	// Accept settles a PENDING operation: the owner's earmark is consumed
	// (DEBIT) and the beneficiary's balance credited (CREDIT), both in the
	// same transaction as the ACCEPTED state transition.
	Accept(ctx context.Context, operationID string) (*AcceptedOperation, error)

	// Revert undoes an ACCEPTED operation with inverse postings and restores
	// any consumed limit. Only ACCEPTED operations may be reverted.
	Revert(ctx context.Context, operationID string) (*RevertedOperation, error)
}
