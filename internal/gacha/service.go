package gacha

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/catalog"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
	"github.com/osse101/DragonKeeper_Go/internal/utils"
)

// HatchResult describes a hatched egg
type HatchResult struct {
	Species   domain.Species
	BondLevel int
	New       bool // first dragon of this species
	EggsLeft  int
}

// Service defines the interface for egg hatching
type Service interface {
	Hatch(ctx context.Context, userID string) (*HatchResult, error)
	EggCount(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo    repository.Game
	catalog catalog.Catalog
	rng     utils.RNG
	now     func() time.Time
}

// NewService creates a new gacha service
func NewService(repo repository.Game, cat catalog.Catalog, rng utils.RNG) Service {
	if rng == nil {
		rng = utils.GlobalRNG
	}
	return &service{
		repo:    repo,
		catalog: cat,
		rng:     rng,
		now:     time.Now,
	}
}

// Hatch consumes one egg and grants the drawn species.
// An owned species gains a bond level; otherwise a new dragon is created.
func (s *service) Hatch(ctx context.Context, userID string) (*HatchResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Hatch called", "userID", userID)

	species, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load species: %w", err)
	}
	picker, err := NewPicker(species)
	if err != nil {
		return nil, fmt.Errorf("failed to build picker: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if err := inventory.Consume(inv, domain.ItemEgg, domain.ErrNoEggs); err != nil {
		return nil, err
	}

	drawn := picker.Draw(s.rng)
	now := s.now()

	result := &HatchResult{Species: drawn, EggsLeft: inventory.Quantity(inv, domain.ItemEgg)}
	d, err := tx.GetDragon(ctx, userID, drawn.ID)
	switch {
	case errors.Is(err, domain.ErrDragonNotFound):
		fresh := domain.NewDragon(userID, drawn.ID, now)
		d = &fresh
		result.New = true
	case err != nil:
		return nil, fmt.Errorf("failed to get dragon: %w", err)
	default:
		d.BondLevel++
	}
	result.BondLevel = d.BondLevel

	if err := tx.SaveDragon(ctx, *d); err != nil {
		return nil, fmt.Errorf("failed to save dragon: %w", err)
	}
	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.DragonsHatched.WithLabelValues(drawn.Rarity).Inc()
	log.Info("Egg hatched", "userID", userID, "species", drawn.Name, "rarity", drawn.Rarity,
		"bondLevel", result.BondLevel, "new", result.New)
	return result, nil
}

// EggCount returns how many eggs the user holds
func (s *service) EggCount(ctx context.Context, userID string) (int, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inventory.Quantity(inv, domain.ItemEgg), nil
}
