// Package mocks holds testify mocks shared across package tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// MockRepositoryGame implements repository.Game
type MockRepositoryGame struct {
	mock.Mock
}

func (m *MockRepositoryGame) BeginTx(ctx context.Context) (repository.GameTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GameTx), args.Error(1)
}

// MockRepositoryGameTx implements repository.GameTx
type MockRepositoryGameTx struct {
	mock.Mock
}

func (m *MockRepositoryGameTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepositoryGameTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepositoryGameTx) InsertUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockRepositoryGameTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepositoryGameTx) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockRepositoryGameTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockRepositoryGameTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return m.Called(ctx, userID, inventory).Error(0)
}

func (m *MockRepositoryGameTx) GetDragon(ctx context.Context, userID string, speciesID int) (*domain.Dragon, error) {
	args := m.Called(ctx, userID, speciesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dragon), args.Error(1)
}

func (m *MockRepositoryGameTx) ListDragons(ctx context.Context, userID string) ([]domain.Dragon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dragon), args.Error(1)
}

func (m *MockRepositoryGameTx) SaveDragon(ctx context.Context, dragon domain.Dragon) error {
	return m.Called(ctx, dragon).Error(0)
}

func (m *MockRepositoryGameTx) GetMission(ctx context.Context, userID string, speciesID int) (*domain.Mission, error) {
	args := m.Called(ctx, userID, speciesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MockRepositoryGameTx) ListMissions(ctx context.Context, userID string) ([]domain.Mission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *MockRepositoryGameTx) SaveMission(ctx context.Context, mission domain.Mission) error {
	return m.Called(ctx, mission).Error(0)
}

func (m *MockRepositoryGameTx) GetPlot(ctx context.Context, userID string) (*domain.Plot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plot), args.Error(1)
}

func (m *MockRepositoryGameTx) SavePlot(ctx context.Context, plot domain.Plot) error {
	return m.Called(ctx, plot).Error(0)
}

// MockRepositoryUser implements repository.User
type MockRepositoryUser struct {
	mock.Mock
}

func (m *MockRepositoryUser) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepositoryUser) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepositoryUser) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepositoryUser) ConfirmEmail(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var (
	_ repository.Game   = (*MockRepositoryGame)(nil)
	_ repository.GameTx = (*MockRepositoryGameTx)(nil)
	_ repository.User   = (*MockRepositoryUser)(nil)
)
