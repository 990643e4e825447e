package caseopening

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootVault_Go/internal/domain"
	"github.com/osse101/LootVault_Go/internal/repository"
)

// MockCatalog implements repository.Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCatalog) ListCases(ctx context.Context) ([]domain.CaseSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

// MockAccount implements repository.Account for testing
type MockAccount struct {
	mock.Mock
}

func (m *MockAccount) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccount) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountTx), args.Error(1)
}

// MockAccountTx implements repository.AccountTx for testing
type MockAccountTx struct {
	mock.Mock
}

func (m *MockAccountTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountTx) UpdateUserEconomy(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAccountTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBroadcaster implements realtime.Broadcaster for testing
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) PublishOutcome(ctx context.Context, wonItems []domain.Item, profile domain.PublicProfile, caseImage string) {
	m.Called(ctx, wonItems, profile, caseImage)
}

func (m *MockBroadcaster) PublishAccountUpdate(ctx context.Context, userID string, balance, xp int64, level int) {
	m.Called(ctx, userID, balance, xp, level)
}
