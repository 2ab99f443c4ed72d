package streak

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

// Home is what the home page shows after the visit is recorded
type Home struct {
	User   domain.User
	Reward Reward
}

// Service defines the interface for the daily bonus
type Service interface {
	Visit(ctx context.Context, userID string) (*Home, error)
}

type service struct {
	repo repository.Game
	now  func() time.Time
}

// NewService creates a new streak service
func NewService(repo repository.Game) Service {
	return &service{repo: repo, now: time.Now}
}

// Visit records a home-page visit and grants the daily bonus at most once per day
func (s *service) Visit(ctx context.Context, userID string) (*Home, error) {
	log := logger.FromContext(ctx)
	log.Info("Visit called", "userID", userID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	r := Apply(user, s.now())
	if !r.Claimed {
		return &Home{User: *user, Reward: r}, nil
	}

	if r.Eggs > 0 {
		inv, err := tx.GetInventory(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get inventory: %w", err)
		}
		if err := inventory.Add(inv, domain.ItemEgg, r.Eggs); err != nil {
			return nil, err
		}
		if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
	}

	if err := tx.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.DailyRewardsClaimed.Inc()
	metrics.CoinsEarned.WithLabelValues(metrics.SourceDaily).Add(float64(r.Coins))
	log.Info("Daily reward granted", "userID", userID, "coins", r.Coins, "eggs", r.Eggs, "streak", r.Streak)
	return &Home{User: *user, Reward: r}, nil
}
