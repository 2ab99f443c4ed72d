package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// Service exposes read access to a user's ledger
type Service interface {
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
}

type service struct {
	repo repository.Game
}

// NewService creates a new inventory service
func NewService(repo repository.Game) Service {
	return &service{repo: repo}
}

// GetInventory returns the user's stacks
func (s *service) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	log := logger.FromContext(ctx)
	log.Debug("GetInventory called", "userID", userID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inv, nil
}
