package repository

import (
	"context"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// Game is the transactional store behind every gameplay request.
// Each request runs its reads and writes inside one GameTx.
type Game interface {
	BeginTx(ctx context.Context) (GameTx, error)
}

// GameTx exposes the per-user game state inside a transaction.
// Reads lock the touched rows until Commit or Rollback.
type GameTx interface {
	Tx

	// InsertUser creates the account row.
	// Returns domain.ErrUsernameTaken or domain.ErrEmailTaken on conflicts.
	InsertUser(ctx context.Context, user *domain.User) error
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	// UpdateUser persists coins, streak and last reward date
	UpdateUser(ctx context.Context, user domain.User) error

	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	// UpdateInventory replaces the user's stacks; zero-quantity stacks are never written
	UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error

	// GetDragon returns domain.ErrDragonNotFound when the user does not own the species
	GetDragon(ctx context.Context, userID string, speciesID int) (*domain.Dragon, error)
	ListDragons(ctx context.Context, userID string) ([]domain.Dragon, error)
	SaveDragon(ctx context.Context, dragon domain.Dragon) error

	// GetMission returns nil, nil when the pair has never been dispatched
	GetMission(ctx context.Context, userID string, speciesID int) (*domain.Mission, error)
	ListMissions(ctx context.Context, userID string) ([]domain.Mission, error)
	SaveMission(ctx context.Context, mission domain.Mission) error

	// GetPlot returns nil, nil when the user has no plot yet
	GetPlot(ctx context.Context, userID string) (*domain.Plot, error)
	SavePlot(ctx context.Context, plot domain.Plot) error
}
