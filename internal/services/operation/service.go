package operation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletcore/internal/events"
	"walletcore/internal/models"
	"walletcore/internal/repositories"
	"walletcore/internal/services/limits"

	"github.com/sirupsen/logrus"
)

type service struct {
	repo    repositories.LedgerRepository
	emitter events.Emitter
	log     *logrus.Logger
	now     func() time.Time
}

// NewService creates the operation engine.
func NewService(repo repositories.LedgerRepository, emitter events.Emitter, log *logrus.Logger) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &service{
		repo:    repo,
		emitter: emitter,
		log:     log,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateOperationRequest) (*OperationResult, error) {
	if req.TransactionType == "" || req.Currency == "" {
		return nil, ErrMissingData
	}
	if req.Value <= 0 {
		return nil, ErrInvalidValue
	}
	if err := validateParticipants(req); err != nil {
		return nil, err
	}

	now := s.now()
	op := &models.Operation{
		OwnerID:                    req.OwnerID,
		BeneficiaryID:              req.BeneficiaryID,
		OwnerWalletAccountID:       req.OwnerWalletAccountID,
		BeneficiaryWalletAccountID: req.BeneficiaryWalletAccountID,
		TransactionType:            req.TransactionType,
		Currency:                   req.Currency,
		Value:                      req.Value,
		RawValue:                   req.RawValue,
		Fee:                        req.Fee,
		State:                      models.OperationStatePending,
		OperationRefID:             req.OperationRefID,
		UserLimitTrackerID:         req.UserLimitTrackerID,
		AnalysisTags:               req.AnalysisTags,
	}

	result := &OperationResult{}
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		if op.OwnerWalletAccountID != nil {
			account, err := s.lockActiveAccount(tx, *op.OwnerWalletAccountID)
			if err != nil {
				return err
			}
			if account.Balance < op.Value {
				return ErrInsufficientBalance
			}
			// Earmark: the funds leave the spendable balance now and settle
			// (or return) when the operation leaves PENDING.
			account.Balance -= op.Value
			account.PendingAmount += op.Value
			account.UpdatedAt = now
			if err := tx.UpdateWalletAccount(account); err != nil {
				return err
			}
			result.OwnerAccount = account
		}

		if op.UserLimitTrackerID != nil {
			if err := s.consumeTracker(tx, *op.UserLimitTrackerID, op.Value, now); err != nil {
				return err
			}
		}

		return tx.CreateOperation(op)
	})
	if err != nil {
		return nil, err
	}

	result.Operation = op
	return result, nil
}

func (s *service) Accept(ctx context.Context, operationID string) (*AcceptedOperation, error) {
	if operationID == "" {
		return nil, ErrMissingData
	}

	result := &AcceptedOperation{}
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		op, err := tx.GetOperation(operationID)
		if err != nil {
			if errors.Is(err, repositories.ErrOperationNotFound) {
				return ErrOperationNotFound
			}
			return err
		}
		if op.State != models.OperationStatePending {
			return ErrOperationInvalidState
		}

		now := s.now()

		if op.HasOwner() {
			account, err := s.lockActiveAccount(tx, *op.OwnerWalletAccountID)
			if err != nil {
				return err
			}
			if account.PendingAmount < op.Value {
				return fmt.Errorf("%w: earmark smaller than operation value", ErrInsufficientBalance)
			}
			previous := account.Available()
			// The funds were already reserved at PENDING time; settling the
			// debit only releases the earmark.
			account.PendingAmount -= op.Value
			account.UpdatedAt = now
			if err := tx.UpdateWalletAccount(account); err != nil {
				return err
			}
			posting, err := s.appendPosting(tx, account, op, models.WalletAccountTransactionDebit, previous, previous-op.Value, now)
			if err != nil {
				return err
			}
			result.Owner = posting
		}

		if op.HasBeneficiary() {
			account, err := s.lockActiveAccount(tx, *op.BeneficiaryWalletAccountID)
			if err != nil {
				return err
			}
			previous := account.Available()
			account.Balance += op.Value
			account.UpdatedAt = now
			if err := tx.UpdateWalletAccount(account); err != nil {
				return err
			}
			posting, err := s.appendPosting(tx, account, op, models.WalletAccountTransactionCredit, previous, previous+op.Value, now)
			if err != nil {
				return err
			}
			result.Beneficiary = posting
		}

		op.State = models.OperationStateAccepted
		op.UpdatedAt = now
		if err := tx.UpdateOperation(op); err != nil {
			return err
		}
		result.Operation = op
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.AcceptedOperation(result.Operation)
	return result, nil
}

func (s *service) Revert(ctx context.Context, operationID string) (*RevertedOperation, error) {
	if operationID == "" {
		return nil, ErrMissingData
	}

	result := &RevertedOperation{}
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		op, err := tx.GetOperation(operationID)
		if err != nil {
			if errors.Is(err, repositories.ErrOperationNotFound) {
				return ErrOperationNotFound
			}
			return err
		}
		if op.State != models.OperationStateAccepted {
			return ErrOperationInvalidState
		}

		now := s.now()

		if op.HasOwner() {
			account, err := s.lockActiveAccount(tx, *op.OwnerWalletAccountID)
			if err != nil {
				return err
			}
			previous := account.Available()
			// Back to the pre-accept pair: the value returns as an earmark,
			// not as spendable balance.
			account.PendingAmount += op.Value
			account.UpdatedAt = now
			if err := tx.UpdateWalletAccount(account); err != nil {
				return err
			}
			posting, err := s.appendPosting(tx, account, op, models.WalletAccountTransactionCredit, previous, previous+op.Value, now)
			if err != nil {
				return err
			}
			result.Owner = posting
		}

		if op.HasBeneficiary() {
			account, err := s.lockActiveAccount(tx, *op.BeneficiaryWalletAccountID)
			if err != nil {
				return err
			}
			if account.Balance < op.Value {
				return ErrInsufficientBalance
			}
			previous := account.Available()
			account.Balance -= op.Value
			account.UpdatedAt = now
			if err := tx.UpdateWalletAccount(account); err != nil {
				return err
			}
			posting, err := s.appendPosting(tx, account, op, models.WalletAccountTransactionDebit, previous, previous-op.Value, now)
			if err != nil {
				return err
			}
			result.Beneficiary = posting
		}

		if op.UserLimitTrackerID != nil {
			if err := s.restoreTracker(tx, *op.UserLimitTrackerID, op.Value, now, op.CreatedAt); err != nil {
				return err
			}
		}

		op.State = models.OperationStateReverted
		op.RevertedAt = &now
		op.UpdatedAt = now
		if err := tx.UpdateOperation(op); err != nil {
			return err
		}
		result.Operation = op
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.RevertedOperation(result.Operation)
	return result, nil
}

// lockActiveAccount loads the account under a row lock and verifies it can
// take postings.
func (s *service) lockActiveAccount(tx repositories.LedgerRepository, accountID uint) (*models.WalletAccount, error) {
	account, err := tx.GetWalletAccountForUpdate(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletAccountNotFound) {
			return nil, ErrWalletAccountNotFound
		}
		return nil, err
	}
	if !account.IsActive() {
		return nil, ErrWalletAccountNotActive
	}
	return account, nil
}

func (s *service) appendPosting(tx repositories.LedgerRepository, account *models.WalletAccount, op *models.Operation, txType string, previous, updated int64, now time.Time) (*Posting, error) {
	posting := &models.WalletAccountTransaction{
		WalletAccountID: account.ID,
		OperationID:     op.ID,
		TransactionType: txType,
		Value:           op.Value,
		PreviousBalance: previous,
		UpdatedBalance:  updated,
		State:           models.WalletAccountTransactionStateDone,
		CreatedAt:       now,
	}
	if err := tx.CreateWalletAccountTransaction(posting); err != nil {
		return nil, err
	}
	return &Posting{Account: account, Transaction: posting}, nil
}

func (s *service) consumeTracker(tx repositories.LedgerRepository, trackerID uint, value int64, now time.Time) error {
	tracker, err := tx.GetUserLimitTrackerForUpdate(trackerID)
	if err != nil {
		return err
	}
	limit, err := tx.GetUserLimit(tracker.UserLimitID)
	if err != nil {
		return err
	}
	limits.Consume(tracker, limit, value, now)
	return tx.UpdateUserLimitTracker(tracker)
}

func (s *service) restoreTracker(tx repositories.LedgerRepository, trackerID uint, value int64, now, consumedAt time.Time) error {
	tracker, err := tx.GetUserLimitTrackerForUpdate(trackerID)
	if err != nil {
		return err
	}
	limit, err := tx.GetUserLimit(tracker.UserLimitID)
	if err != nil {
		return err
	}
	limits.Restore(tracker, limit, value, now, consumedAt)
	return tx.UpdateUserLimitTracker(tracker)
}

func validateParticipants(req CreateOperationRequest) error {
	ownerComplete := req.OwnerID != nil && req.OwnerWalletAccountID != nil
	ownerAbsent := req.OwnerID == nil && req.OwnerWalletAccountID == nil
	beneficiaryComplete := req.BeneficiaryID != nil && req.BeneficiaryWalletAccountID != nil
	beneficiaryAbsent := req.BeneficiaryID == nil && req.BeneficiaryWalletAccountID == nil

	if !ownerComplete && !ownerAbsent {
		return ErrInvalidParticipants
	}
	if !beneficiaryComplete && !beneficiaryAbsent {
		return ErrInvalidParticipants
	}
	if ownerAbsent && beneficiaryAbsent {
		return ErrInvalidParticipants
	}
	return nil
}
