package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/dragon"
	"github.com/osse101/DragonKeeper_Go/internal/economy"
	"github.com/osse101/DragonKeeper_Go/internal/farm"
	"github.com/osse101/DragonKeeper_Go/internal/gacha"
	"github.com/osse101/DragonKeeper_Go/internal/mission"
	"github.com/osse101/DragonKeeper_Go/internal/streak"
	"github.com/osse101/DragonKeeper_Go/internal/user"
)

// MockUserService implements user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, email, password string) (*user.Session, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (*user.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}

func (m *MockUserService) Confirm(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ResendConfirmation(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockStreakService implements streak.Service
type MockStreakService struct {
	mock.Mock
}

func (m *MockStreakService) Visit(ctx context.Context, userID string) (*streak.Home, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*streak.Home), args.Error(1)
}

// MockMissionService implements mission.Service
type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) Board(ctx context.Context, userID string) (*mission.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.Board), args.Error(1)
}

func (m *MockMissionService) Dispatch(ctx context.Context, userID string, speciesID int, region domain.Region) (*domain.Mission, error) {
	args := m.Called(ctx, userID, speciesID, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MockMissionService) ClaimRewards(ctx context.Context, userID string) (*mission.ClaimResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.ClaimResult), args.Error(1)
}

// MockDragonService implements dragon.Service
type MockDragonService struct {
	mock.Mock
}

func (m *MockDragonService) ListDragons(ctx context.Context, userID string) ([]dragon.View, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dragon.View), args.Error(1)
}

func (m *MockDragonService) GetDragon(ctx context.Context, userID, speciesName string) (*dragon.CareResult, error) {
	args := m.Called(ctx, userID, speciesName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dragon.CareResult), args.Error(1)
}

func (m *MockDragonService) Care(ctx context.Context, userID, speciesName string, action dragon.Action) (*dragon.CareResult, error) {
	args := m.Called(ctx, userID, speciesName, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dragon.CareResult), args.Error(1)
}

// MockInventoryService implements inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

// MockGachaService implements gacha.Service
type MockGachaService struct {
	mock.Mock
}

func (m *MockGachaService) Hatch(ctx context.Context, userID string) (*gacha.HatchResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gacha.HatchResult), args.Error(1)
}

func (m *MockGachaService) EggCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockEconomyService implements economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Storefront(ctx context.Context, userID string) (*economy.Storefront, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.Storefront), args.Error(1)
}

func (m *MockEconomyService) Trade(ctx context.Context, userID string, action economy.TradeAction, item domain.ItemType) (*economy.Receipt, error) {
	args := m.Called(ctx, userID, action, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.Receipt), args.Error(1)
}

// MockFarmService implements farm.Service
type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) View(ctx context.Context, userID string) (*farm.View, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.View), args.Error(1)
}

func (m *MockFarmService) Act(ctx context.Context, userID string, action farm.Action) (*farm.View, error) {
	args := m.Called(ctx, userID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.View), args.Error(1)
}

// MockCatalog implements catalog.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) List(ctx context.Context) ([]domain.Species, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Species), args.Error(1)
}

func (m *MockCatalog) ByID(ctx context.Context, id int) (*domain.Species, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Species), args.Error(1)
}

func (m *MockCatalog) ByName(ctx context.Context, name string) (*domain.Species, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Species), args.Error(1)
}
