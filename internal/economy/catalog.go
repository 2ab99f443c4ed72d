package economy

import (
	"fmt"
	"strings"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// Shop prices. The same price is debited on buy and credited on sell.
var shopCatalog = []domain.ShopItem{
	{Item: domain.ItemEgg, Price: 100},
	{Item: domain.ItemFood, Price: 5},
	{Item: domain.ItemToy, Price: 8},
	{Item: domain.ItemSeed, Price: 3},
	{Item: domain.ItemMedicine, Price: 15},
}

// TradeAction is a store form action
type TradeAction string

// Store actions
const (
	ActionBuy  TradeAction = "buy"
	ActionSell TradeAction = "sell"
)

// Catalog returns the shop listing in display order
func Catalog() []domain.ShopItem {
	return append([]domain.ShopItem(nil), shopCatalog...)
}

// PriceOf looks up an item's listed price
func PriceOf(item domain.ItemType) (int, error) {
	for _, si := range shopCatalog {
		if si.Item == item {
			return si.Price, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", item, domain.ErrItemNotFound)
}

// ParseItem normalises the store's item_id field
func ParseItem(s string) (domain.ItemType, error) {
	item := domain.ItemType(strings.ToLower(strings.TrimSpace(s)))
	if _, err := PriceOf(item); err != nil {
		return "", err
	}
	return item, nil
}

// ParseAction normalises the store's action field
func ParseAction(s string) (TradeAction, error) {
	switch a := TradeAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionBuy, ActionSell:
		return a, nil
	}
	return "", fmt.Errorf("store action %q: %w", s, domain.ErrInvalidInput)
}
