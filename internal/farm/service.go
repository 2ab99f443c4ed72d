package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// View is what the farm page renders
type View struct {
	Stage     domain.PlotStage
	Remaining time.Duration
	Seeds     int
	Food      int
}

// Service defines the farm system business logic
type Service interface {
	View(ctx context.Context, userID string) (*View, error)
	Act(ctx context.Context, userID string, action Action) (*View, error)
}

type service struct {
	repo repository.Game
	now  func() time.Time
}

// NewService creates a new farm service
func NewService(repo repository.Game) Service {
	return &service{repo: repo, now: time.Now}
}

// View returns the plot, creating it on first visit
func (s *service) View(ctx context.Context, userID string) (*View, error) {
	log := logger.FromContext(ctx)
	log.Info("Farm View called", "userID", userID)
	return s.run(ctx, userID, nil)
}

// Act plants or harvests
func (s *service) Act(ctx context.Context, userID string, action Action) (*View, error) {
	log := logger.FromContext(ctx)
	log.Info("Farm Act called", "userID", userID, "action", action)

	var apply func(*domain.Plot, *domain.Inventory, time.Time) error
	switch action {
	case ActionPlant:
		apply = Plant
	case ActionHarvest:
		apply = Harvest
	default:
		return nil, domain.ErrUnknownFarmAction
	}

	v, err := s.run(ctx, userID, apply)
	if err != nil {
		return nil, err
	}
	if action == ActionHarvest {
		metrics.CropsHarvested.Inc()
	}
	log.Info("Farm action applied", "userID", userID, "action", action, "stage", v.Stage)
	return v, nil
}

func (s *service) run(ctx context.Context, userID string, apply func(*domain.Plot, *domain.Inventory, time.Time) error) (*View, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	plot, err := tx.GetPlot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	created := plot == nil
	if created {
		p := NewPlot(userID)
		plot = &p
	}

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if apply != nil {
		if err := apply(plot, inv, now); err != nil {
			return nil, err
		}
		if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
	}

	if created || apply != nil {
		if err := tx.SavePlot(ctx, *plot); err != nil {
			return nil, fmt.Errorf("failed to save plot: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	stage, left := Stage(*plot, now)
	return &View{
		Stage:     stage,
		Remaining: left,
		Seeds:     inventory.Quantity(inv, domain.ItemSeed),
		Food:      inventory.Quantity(inv, domain.ItemFood),
	}, nil
}
