package wallet

import (
	"context"
	"testing"

	"walletcore/internal/models"
	"walletcore/internal/repositories"
	"walletcore/internal/services/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) Create(wallet *models.Wallet) error {
	args := m.Called(wallet)
	return args.Error(0)
}

func (m *MockWalletRepo) GetByUUID(uuid string) (*models.Wallet, error) {
	args := m.Called(uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Update(wallet *models.Wallet) error {
	args := m.Called(wallet)
	return args.Error(0)
}

func (m *MockWalletRepo) CreateAccount(account *models.WalletAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockWalletRepo) GetAllAccountsByWallet(ctx context.Context, wallet *models.Wallet) ([]models.WalletAccount, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalletAccount), args.Error(1)
}

func (m *MockWalletRepo) UpdateAccountState(ctx context.Context, wallet *models.Wallet, accountID uint, state string) error {
	args := m.Called(ctx, wallet, accountID, state)
	return args.Error(0)
}

func (m *MockWalletRepo) DeleteUserWalletByWallet(wallet *models.Wallet) error {
	args := m.Called(wallet)
	return args.Error(0)
}

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Transfer(ctx context.Context, req transfer.TransferRequest) (*models.Operation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Operation), args.Error(1)
}

func activeWallet(uuid string, userID uint) *models.Wallet {
	return &models.Wallet{ID: 10, UUID: uuid, UserID: userID, State: models.WalletStateActive}
}

func TestDelete_MissingData(t *testing.T) {
	svc := NewService(new(MockWalletRepo), new(MockTransferService), nil, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), "", 1, ""), ErrMissingData)
	assert.ErrorIs(t, svc.Delete(context.Background(), "w-1", 0, ""), ErrMissingData)
}

func TestDelete_WalletNotFound(t *testing.T) {
	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(nil, repositories.ErrWalletNotFound)

	svc := NewService(repo, new(MockTransferService), nil, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "w-1", 1, ""), ErrWalletNotFound)
	repo.AssertExpectations(t)
}

func TestDelete_OtherUsersWallet(t *testing.T) {
	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(activeWallet("w-1", 2), nil)

	svc := NewService(repo, new(MockTransferService), nil, nil)
	// Foreign wallets read as not found so existence never leaks.
	assert.ErrorIs(t, svc.Delete(context.Background(), "w-1", 1, ""), ErrWalletNotFound)
}

func TestDelete_AlreadyDeactivatedIsNoop(t *testing.T) {
	w := activeWallet("w-1", 1)
	w.State = models.WalletStateDeactivate
	w.Default = true // even for a default wallet

	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(w, nil)

	svc := NewService(repo, new(MockTransferService), nil, nil)
	require.NoError(t, svc.Delete(context.Background(), "w-1", 1, ""))
	repo.AssertNotCalled(t, "Update", mock.Anything)
	repo.AssertNotCalled(t, "GetAllAccountsByWallet", mock.Anything, mock.Anything)
}

func TestDelete_DefaultWalletRejected(t *testing.T) {
	w := activeWallet("w-1", 1)
	w.Default = true

	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(w, nil)

	svc := NewService(repo, new(MockTransferService), nil, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "w-1", 1, ""), ErrWalletCannotBeDeleted)
}

func TestDelete_ZeroBalances(t *testing.T) {
	w := activeWallet("w-1", 1)
	accounts := []models.WalletAccount{
		{ID: 1, WalletID: 10, Currency: "BRL", Balance: 0, State: models.WalletStateActive},
		{ID: 2, WalletID: 10, Currency: "USD", Balance: 0, State: models.WalletStateActive},
	}

	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(w, nil)
	repo.On("GetAllAccountsByWallet", mock.Anything, w).Return(accounts, nil)
	repo.On("UpdateAccountState", mock.Anything, w, uint(1), models.WalletStateDeactivate).Return(nil)
	repo.On("UpdateAccountState", mock.Anything, w, uint(2), models.WalletStateDeactivate).Return(nil)
	repo.On("Update", w).Return(nil)
	repo.On("DeleteUserWalletByWallet", w).Return(nil)

	transfers := new(MockTransferService)
	svc := NewService(repo, transfers, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "w-1", 1, ""))
	assert.Equal(t, models.WalletStateDeactivate, w.State)
	transfers.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestDelete_BalanceWithoutBackup(t *testing.T) {
	w := activeWallet("w-1", 1)
	accounts := []models.WalletAccount{
		{ID: 1, WalletID: 10, Currency: "BRL", Balance: 5000, State: models.WalletStateActive},
	}

	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(w, nil)
	repo.On("GetAllAccountsByWallet", mock.Anything, w).Return(accounts, nil)

	svc := NewService(repo, new(MockTransferService), nil, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "w-1", 1, ""), ErrWalletAccountHasBalance)
	repo.AssertNotCalled(t, "Update", mock.Anything)
	repo.AssertNotCalled(t, "UpdateAccountState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_BackupValidation(t *testing.T) {
	tests := []struct {
		name    string
		backup  *models.Wallet
		wantErr error
	}{
		{"backup not found", nil, ErrWalletNotFound},
		{"backup owned by someone else", activeWallet("w-2", 9), ErrWalletNotFound},
		{"backup not active", &models.Wallet{ID: 11, UUID: "w-2", UserID: 1, State: models.WalletStatePending}, ErrWalletNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := activeWallet("w-1", 1)
			accounts := []models.WalletAccount{
				{ID: 1, WalletID: 10, Currency: "BRL", Balance: 5000, State: models.WalletStateActive},
			}

			repo := new(MockWalletRepo)
			repo.On("GetByUUID", "w-1").Return(w, nil)
			repo.On("GetAllAccountsByWallet", mock.Anything, w).Return(accounts, nil)
			if tt.backup == nil {
				repo.On("GetByUUID", "w-2").Return(nil, repositories.ErrWalletNotFound)
			} else {
				repo.On("GetByUUID", "w-2").Return(tt.backup, nil)
			}

			transfers := new(MockTransferService)
			svc := NewService(repo, transfers, nil, nil)

			assert.ErrorIs(t, svc.Delete(context.Background(), "w-1", 1, "w-2"), tt.wantErr)
			transfers.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestDelete_MigratesBalances(t *testing.T) {
	w := activeWallet("w-1", 1)
	backup := &models.Wallet{ID: 20, UUID: "w-2", UserID: 1, State: models.WalletStateActive}
	accounts := []models.WalletAccount{
		{ID: 1, WalletID: 10, Currency: "BRL", Balance: 5000, State: models.WalletStateActive},
		{ID: 2, WalletID: 10, Currency: "USD", Balance: 0, State: models.WalletStateActive},
		{ID: 3, WalletID: 10, Currency: "EUR", Balance: 700, State: models.WalletStateActive},
	}

	repo := new(MockWalletRepo)
	repo.On("GetByUUID", "w-1").Return(w, nil)
	repo.On("GetByUUID", "w-2").Return(backup, nil)
	repo.On("GetAllAccountsByWallet", mock.Anything, w).Return(accounts, nil)
	repo.On("UpdateAccountState", mock.Anything, w, mock.Anything, models.WalletStateDeactivate).Return(nil)
	repo.On("Update", w).Return(nil)
	repo.On("DeleteUserWalletByWallet", w).Return(nil)

	transfers := new(MockTransferService)
	transfers.On("Transfer", mock.Anything, transfer.TransferRequest{
		OwnerID: 1, OwnerWalletAccountID: 1, BeneficiaryID: 1, BeneficiaryWalletID: 20, Value: 5000,
	}).Return(&models.Operation{ID: "op-1"}, nil)
	transfers.On("Transfer", mock.Anything, transfer.TransferRequest{
		OwnerID: 1, OwnerWalletAccountID: 3, BeneficiaryID: 1, BeneficiaryWalletID: 20, Value: 700,
	}).Return(&models.Operation{ID: "op-2"}, nil)

	svc := NewService(repo, transfers, nil, nil)
	require.NoError(t, svc.Delete(context.Background(), "w-1", 1, "w-2"))

	transfers.AssertNumberOfCalls(t, "Transfer", 2)
	repo.AssertNumberOfCalls(t, "UpdateAccountState", 3)
	assert.Equal(t, models.WalletStateDeactivate, w.State)
	repo.AssertExpectations(t)
	transfers.AssertExpectations(t)
}
