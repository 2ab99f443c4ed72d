package dragon

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
)

// View is a dragon with its species and decayed vitals, as shown to the owner
type View struct {
	Dragon    domain.Dragon
	Species   domain.Species
	OnMission bool
}

// CareResult is what the care page renders after an action
type CareResult struct {
	View      View
	Action    Action
	Inventory map[domain.ItemType]int
}

// Service defines the interface for dragon care operations
type Service interface {
	ListDragons(ctx context.Context, userID string) ([]View, error)
	GetDragon(ctx context.Context, userID, speciesName string) (*CareResult, error)
	Care(ctx context.Context, userID, speciesName string, action Action) (*CareResult, error)
}

type service struct {
	repo    repository.Game
	catalog catalog.Catalog
	now     func() time.Time
}

// NewService creates a new dragon service
func NewService(repo repository.Game, cat catalog.Catalog) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		now:     time.Now,
	}
}

// ListDragons returns every dragon the user owns with decay applied and persisted
func (s *service) ListDragons(ctx context.Context, userID string) ([]View, error) {
	log := logger.FromContext(ctx)
	log.Info("ListDragons called", "userID", userID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	dragons, err := tx.ListDragons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dragons: %w", err)
	}

	missions, err := tx.ListMissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	away := make(map[int]bool, len(missions))
	for _, m := range missions {
		away[m.SpeciesID] = m.OnMission
	}

	views := make([]View, 0, len(dragons))
	for i := range dragons {
		d := dragons[i]
		if ApplyDecay(&d, now) {
			if err := tx.SaveDragon(ctx, d); err != nil {
				return nil, fmt.Errorf("failed to save dragon: %w", err)
			}
		}
		sp, err := s.catalog.ByID(ctx, d.SpeciesID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve species: %w", err)
		}
		views = append(views, View{Dragon: d, Species: *sp, OnMission: away[d.SpeciesID]})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return views, nil
}

// GetDragon loads one dragon for the care page, applying decay
func (s *service) GetDragon(ctx context.Context, userID, speciesName string) (*CareResult, error) {
	log := logger.FromContext(ctx)
	log.Info("GetDragon called", "userID", userID, "species", speciesName)
	return s.withDragon(ctx, userID, speciesName, func(d *domain.Dragon, _ *domain.Inventory, now time.Time) error {
		ApplyDecay(d, now)
		return nil
	}, "")
}

// Care applies a feed, play or medicine action.
// On failure nothing is persisted and the error is returned for a notice.
func (s *service) Care(ctx context.Context, userID, speciesName string, action Action) (*CareResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Care called", "userID", userID, "species", speciesName, "action", action)

	res, err := s.withDragon(ctx, userID, speciesName, func(d *domain.Dragon, inv *domain.Inventory, now time.Time) error {
		return Apply(action, d, inv, now)
	}, action)
	if err != nil {
		return nil, err
	}

	metrics.CareActions.WithLabelValues(string(action)).Inc()
	log.Info("Care action applied", "userID", userID, "species", speciesName, "action", action,
		"hunger", res.View.Dragon.Hunger, "happiness", res.View.Dragon.Happiness, "sick", res.View.Dragon.Sick)
	return res, nil
}

func (s *service) withDragon(ctx context.Context, userID, speciesName string,
	mutate func(*domain.Dragon, *domain.Inventory, time.Time) error, action Action) (*CareResult, error) {

	sp, err := s.catalog.ByName(ctx, speciesName)
	if err != nil {
		if errors.Is(err, domain.ErrSpeciesNotFound) {
			return nil, fmt.Errorf("%s: %w", speciesName, domain.ErrDragonNotFound)
		}
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	d, err := tx.GetDragon(ctx, userID, sp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dragon: %w", err)
	}
	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if err := mutate(d, inv, s.now()); err != nil {
		return nil, err
	}

	if err := tx.SaveDragon(ctx, *d); err != nil {
		return nil, fmt.Errorf("failed to save dragon: %w", err)
	}
	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	m, err := tx.GetMission(ctx, userID, sp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &CareResult{
		View:      View{Dragon: *d, Species: *sp, OnMission: m != nil && m.OnMission},
		Action:    action,
		Inventory: inventory.Counts(inv),
	}, nil
}
