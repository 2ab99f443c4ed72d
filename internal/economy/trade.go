package economy

import (
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
)

// Buy debits the price and credits one unit. The balance must be strictly
// greater than the price. Nothing changes on failure.
func Buy(user *domain.User, inv *domain.Inventory, item domain.ItemType) (int, error) {
	price, err := PriceOf(item)
	if err != nil {
		return 0, err
	}
	if user.Coins <= price {
		return 0, fmt.Errorf("%s costs %d, balance %d: %w", item, price, user.Coins, domain.ErrInsufficientFunds)
	}
	if err := inventory.Add(inv, item, 1); err != nil {
		return 0, err
	}
	user.Coins -= price
	return price, nil
}

// Sell removes one unit and credits the listed price. Nothing changes on failure.
func Sell(user *domain.User, inv *domain.Inventory, item domain.ItemType) (int, error) {
	price, err := PriceOf(item)
	if err != nil {
		return 0, err
	}
	if err := inventory.Consume(inv, item, domain.ErrNotInInventory); err != nil {
		return 0, err
	}
	user.Coins += price
	return price, nil
}
