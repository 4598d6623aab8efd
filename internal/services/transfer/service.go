package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletcore/internal/models"
	"walletcore/internal/repositories"
	"walletcore/internal/services/limits"
	"walletcore/internal/services/operation"

	"github.com/sirupsen/logrus"
)

var (
	ErrSameAccount                 = errors.New("cannot transfer to the same account")
	ErrDestinationAccountNotFound  = errors.New("destination account not found")
	ErrDestinationAccountNotActive = errors.New("destination account not active")
)

type service struct {
	operations operation.Service
	repo       repositories.LedgerRepository
	limits     limits.Service
	log        *logrus.Logger
	now        func() time.Time
}

// NewService creates a new transfer service instance. The limits service is
// optional; without it transfers skip the spending-policy gate.
func NewService(operations operation.Service, repo repositories.LedgerRepository, limitSvc limits.Service, log *logrus.Logger) Service {
	if operations == nil {
		panic("operation service is required")
	}
	if repo == nil {
		panic("ledger repository is required")
	}
	if log == nil {
		log = logrus.New()
	}
	return &service{
		operations: operations,
		repo:       repo,
		limits:     limitSvc,
		log:        log,
		now:        time.Now,
	}
}

// Transfer resolves the destination account by the source account's currency,
// then drives a P2P operation through the engine: create PENDING (earmark),
// accept (settle). Each step is its own atomic unit.
func (s *service) Transfer(ctx context.Context, req TransferRequest) (*models.Operation, error) {
	if req.OwnerID == 0 || req.OwnerWalletAccountID == 0 || req.BeneficiaryID == 0 || req.BeneficiaryWalletID == 0 {
		return nil, operation.ErrMissingData
	}
	if req.Value <= 0 {
		return nil, operation.ErrInvalidValue
	}

	source, err := s.repo.GetWalletAccount(req.OwnerWalletAccountID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletAccountNotFound) {
			return nil, operation.ErrWalletAccountNotFound
		}
		return nil, err
	}

	destination, err := s.repo.GetWalletAccountByCurrency(req.BeneficiaryWalletID, source.Currency)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletAccountNotFound) {
			return nil, ErrDestinationAccountNotFound
		}
		return nil, err
	}
	if destination.ID == source.ID {
		return nil, ErrSameAccount
	}
	if !destination.IsActive() {
		return nil, ErrDestinationAccountNotActive
	}

	trackerID := req.UserLimitTrackerID
	if s.limits != nil && req.LimitTypeID != 0 {
		tracker, err := s.limits.Check(ctx, req.OwnerID, req.LimitTypeID, req.Value, s.now())
		if err != nil {
			return nil, err
		}
		if tracker != nil {
			trackerID = &tracker.ID
		}
	}

	created, err := s.operations.Create(ctx, operation.CreateOperationRequest{
		TransactionType:            models.OperationTypeP2PTransfer,
		Currency:                   source.Currency,
		Value:                      req.Value,
		RawValue:                   req.Value,
		OwnerID:                    &req.OwnerID,
		OwnerWalletAccountID:       &source.ID,
		BeneficiaryID:              &req.BeneficiaryID,
		BeneficiaryWalletAccountID: &destination.ID,
		UserLimitTrackerID:         trackerID,
		AnalysisTags:               req.AnalysisTags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer operation: %w", err)
	}

	accepted, err := s.operations.Accept(ctx, created.Operation.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept transfer operation: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"operation": accepted.Operation.ID,
		"from":      source.ID,
		"to":        destination.ID,
		"value":     req.Value,
	}).Info("p2p transfer settled")

	return accepted.Operation, nil
}
