package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/catalog"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/dragon"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
	"github.com/osse101/DragonKeeper_Go/internal/reward"
)

// Active is a dispatched mission with its countdown
type Active struct {
	Mission   domain.Mission
	Species   domain.Species
	Remaining time.Duration
}

// Board is the missions page: dragons that can leave and those that are away
type Board struct {
	Available []domain.Species
	Sick      []domain.Species
	Active    []Active
	Regions   []RegionInfo
}

// Resolution is the outcome of one completed mission
type Resolution struct {
	Species  domain.Species
	Region   domain.Region
	Tier     domain.Tier
	Rewards  domain.ItemBundle
	Restored bool
}

// ClaimResult is returned by ClaimRewards
type ClaimResult struct {
	Resolved []Resolution
	Pending  []Active
}

// Service defines the interface for mission operations
type Service interface {
	Board(ctx context.Context, userID string) (*Board, error)
	Dispatch(ctx context.Context, userID string, speciesID int, region domain.Region) (*domain.Mission, error)
	ClaimRewards(ctx context.Context, userID string) (*ClaimResult, error)
}

type service struct {
	repo    repository.Game
	catalog catalog.Catalog
	roller  *reward.Roller
	now     func() time.Time
}

// NewService creates a new mission service
func NewService(repo repository.Game, cat catalog.Catalog, roller *reward.Roller) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		roller:  roller,
		now:     time.Now,
	}
}

// Board lists dispatchable dragons and running missions, applying decay so
// sickness reflects the current time
func (s *service) Board(ctx context.Context, userID string) (*Board, error) {
	log := logger.FromContext(ctx)
	log.Info("Board called", "userID", userID)

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
	missions, err := s.missionsBySpecies(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	board := &Board{Regions: Regions()}
	for i := range dragons {
		d := dragons[i]
		if dragon.ApplyDecay(&d, now) {
			if err := tx.SaveDragon(ctx, d); err != nil {
				return nil, fmt.Errorf("failed to save dragon: %w", err)
			}
		}
		sp, err := s.catalog.ByID(ctx, d.SpeciesID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve species: %w", err)
		}

		m, ok := missions[d.SpeciesID]
		switch {
		case ok && m.OnMission:
			board.Active = append(board.Active, Active{Mission: m, Species: *sp, Remaining: Remaining(m, now)})
		case d.Sick:
			board.Sick = append(board.Sick, *sp)
		default:
			board.Available = append(board.Available, *sp)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return board, nil
}

// Dispatch sends an owned, healthy, idle dragon to region
func (s *service) Dispatch(ctx context.Context, userID string, speciesID int, region domain.Region) (*domain.Mission, error) {
	log := logger.FromContext(ctx)
	log.Info("Dispatch called", "userID", userID, "speciesID", speciesID, "region", region)

	if _, err := Lookup(region); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	d, err := tx.GetDragon(ctx, userID, speciesID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dragon: %w", err)
	}
	dragon.ApplyDecay(d, now)

	existing, err := tx.GetMission(ctx, userID, speciesID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	m, err := Dispatch(*d, existing, region, now)
	if err != nil {
		return nil, err
	}

	if err := tx.SaveDragon(ctx, *d); err != nil {
		return nil, fmt.Errorf("failed to save dragon: %w", err)
	}
	if err := tx.SaveMission(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save mission: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.MissionsDispatched.WithLabelValues(string(region)).Inc()
	log.Info("Mission dispatched", "userID", userID, "speciesID", speciesID, "region", region)
	return &m, nil
}

// ClaimRewards resolves every due mission of the user exactly once
func (s *service) ClaimRewards(ctx context.Context, userID string) (*ClaimResult, error) {
	log := logger.FromContext(ctx)
	log.Info("ClaimRewards called", "userID", userID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	missions, err := tx.ListMissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	result := &ClaimResult{}
	for i := range missions {
		m := missions[i]
		if !m.OnMission {
			continue
		}
		sp, err := s.catalog.ByID(ctx, m.SpeciesID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve species: %w", err)
		}
		if !Complete(&m, now) {
			result.Pending = append(result.Pending, Active{Mission: m, Species: *sp, Remaining: Remaining(m, now)})
			continue
		}

		res, err := s.resolve(ctx, tx, m, inv, now)
		if err != nil {
			return nil, err
		}
		res.Species = *sp
		result.Resolved = append(result.Resolved, res)

		if err := tx.SaveMission(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to save mission: %w", err)
		}
	}

	if len(result.Resolved) > 0 {
		if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, r := range result.Resolved {
		label := string(r.Tier)
		if r.Restored {
			label = "restore"
		}
		metrics.MissionsResolved.WithLabelValues(label).Inc()
	}
	log.Info("Missions resolved", "userID", userID, "resolved", len(result.Resolved), "pending", len(result.Pending))
	return result, nil
}

func (s *service) resolve(ctx context.Context, tx repository.GameTx, m domain.Mission, inv *domain.Inventory, now time.Time) (Resolution, error) {
	info, err := Lookup(m.Region)
	if err != nil {
		return Resolution{}, err
	}
	res := Resolution{Region: m.Region, Tier: info.Tier}

	if info.Restores {
		d, err := tx.GetDragon(ctx, m.UserID, m.SpeciesID)
		if err != nil {
			if errors.Is(err, domain.ErrDragonNotFound) {
				return res, nil
			}
			return Resolution{}, fmt.Errorf("failed to get dragon: %w", err)
		}
		dragon.ApplyDecay(d, now)
		dragon.Restore(d, now)
		if err := tx.SaveDragon(ctx, *d); err != nil {
			return Resolution{}, fmt.Errorf("failed to save dragon: %w", err)
		}
		res.Restored = true
		return res, nil
	}

	bundle, err := s.roller.Roll(info.Tier)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to roll reward: %w", err)
	}
	if err := inventory.AddBundle(inv, bundle); err != nil {
		return Resolution{}, fmt.Errorf("failed to grant reward: %w", err)
	}
	res.Rewards = bundle
	return res, nil
}

func (s *service) missionsBySpecies(ctx context.Context, tx repository.GameTx, userID string) (map[int]domain.Mission, error) {
	missions, err := tx.ListMissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	out := make(map[int]domain.Mission, len(missions))
	for _, m := range missions {
		out[m.SpeciesID] = m
	}
	return out, nil
}
