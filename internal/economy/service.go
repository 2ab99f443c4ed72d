package economy

import (
	"context"
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// Receipt is the outcome of a trade
type Receipt struct {
	Action   TradeAction
	Item     domain.ItemType
	Price    int
	Balance  int
	Quantity int // units held after the trade
}

// Storefront is what the store page renders
type Storefront struct {
	Items     []domain.ShopItem
	Balance   int
	Inventory map[domain.ItemType]int
}

// Service defines the interface for store operations
type Service interface {
	Storefront(ctx context.Context, userID string) (*Storefront, error)
	Trade(ctx context.Context, userID string, action TradeAction, item domain.ItemType) (*Receipt, error)
}

type service struct {
	repo repository.Game
}

// NewService creates a new economy service
func NewService(repo repository.Game) Service {
	return &service{repo: repo}
}

// Storefront returns prices plus the user's balance and holdings
func (s *service) Storefront(ctx context.Context, userID string) (*Storefront, error) {
	log := logger.FromContext(ctx)
	log.Info("Storefront called", "userID", userID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	return &Storefront{Items: Catalog(), Balance: user.Coins, Inventory: inventory.Counts(inv)}, nil
}

// Trade buys or sells one unit of item
func (s *service) Trade(ctx context.Context, userID string, action TradeAction, item domain.ItemType) (*Receipt, error) {
	log := logger.FromContext(ctx)
	log.Info("Trade called", "userID", userID, "action", action, "item", item)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	var price int
	switch action {
	case ActionBuy:
		price, err = Buy(user, inv, item)
	case ActionSell:
		price, err = Sell(user, inv, item)
	default:
		err = fmt.Errorf("store action %q: %w", action, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.UpdateUser(ctx, *user); err != nil {
		log.Error("Failed to update user", "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		log.Error("Failed to update inventory", "error", err)
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if action == ActionBuy {
		metrics.ItemsBought.WithLabelValues(string(item)).Inc()
		metrics.CoinsSpent.Add(float64(price))
	} else {
		metrics.ItemsSold.WithLabelValues(string(item)).Inc()
		metrics.CoinsEarned.WithLabelValues(metrics.SourceSale).Add(float64(price))
	}

	log.Info("Trade completed", "userID", userID, "action", action, "item", item, "price", price, "balance", user.Coins)
	return &Receipt{
		Action:   action,
		Item:     item,
		Price:    price,
		Balance:  user.Coins,
		Quantity: inventory.Quantity(inv, item),
	}, nil
}
