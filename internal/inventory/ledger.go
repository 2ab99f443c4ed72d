// Package inventory implements the per-user item ledger.
// A stack exists only while its quantity is positive.
package inventory

import (
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// FindStack returns the index and quantity of the stack holding item.
// Returns -1, 0 if not found.
func FindStack(inv *domain.Inventory, item domain.ItemType) (int, int) {
	for i, s := range inv.Stacks {
		if s.ItemType == item {
			return i, s.Quantity
		}
	}
	return -1, 0
}

// Quantity returns how many of item the inventory holds
func Quantity(inv *domain.Inventory, item domain.ItemType) int {
	_, qty := FindStack(inv, item)
	return qty
}

// Add credits qty of item. Zero is a no-op so no empty stack is ever created.
func Add(inv *domain.Inventory, item domain.ItemType, qty int) error {
	if qty < 0 {
		return fmt.Errorf("add %d %s: %w", qty, item, domain.ErrInvalidQuantity)
	}
	if qty == 0 {
		return nil
	}
	if idx, _ := FindStack(inv, item); idx >= 0 {
		inv.Stacks[idx].Quantity += qty
		return nil
	}
	inv.Stacks = append(inv.Stacks, domain.InventoryStack{ItemType: item, Quantity: qty})
	return nil
}

// AddBundle credits every entry of the bundle, skipping zero quantities
func AddBundle(inv *domain.Inventory, bundle domain.ItemBundle) error {
	for _, item := range domain.AllItemTypes {
		if err := Add(inv, item, bundle[item]); err != nil {
			return err
		}
	}
	return nil
}

// Remove debits qty of item, deleting the stack when it reaches zero.
// The inventory is untouched on failure.
func Remove(inv *domain.Inventory, item domain.ItemType, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("remove %d %s: %w", qty, item, domain.ErrInvalidQuantity)
	}
	idx, have := FindStack(inv, item)
	if have < qty {
		return fmt.Errorf("remove %d %s (have %d): %w", qty, item, have, domain.ErrInsufficientQuantity)
	}
	if have == qty {
		inv.Stacks = append(inv.Stacks[:idx], inv.Stacks[idx+1:]...)
		return nil
	}
	inv.Stacks[idx].Quantity -= qty
	return nil
}

// Consume removes one unit of item, reporting absence as missing.
func Consume(inv *domain.Inventory, item domain.ItemType, missing error) error {
	if err := Remove(inv, item, 1); err != nil {
		return fmt.Errorf("%w: %w", missing, err)
	}
	return nil
}

// Validate checks that every stack is positive and item types are unique
func Validate(inv *domain.Inventory) error {
	seen := make(map[domain.ItemType]bool, len(inv.Stacks))
	for _, s := range inv.Stacks {
		if s.Quantity <= 0 {
			return fmt.Errorf("stack %s has quantity %d: %w", s.ItemType, s.Quantity, domain.ErrInvalidQuantity)
		}
		if seen[s.ItemType] {
			return fmt.Errorf("duplicate stack %s: %w", s.ItemType, domain.ErrInvalidInput)
		}
		seen[s.ItemType] = true
	}
	return nil
}

// Counts returns a quantity per known item type, including zeros, for display
func Counts(inv *domain.Inventory) map[domain.ItemType]int {
	out := make(map[domain.ItemType]int, len(domain.AllItemTypes))
	for _, item := range domain.AllItemTypes {
		out[item] = 0
	}
	for _, s := range inv.Stacks {
		out[s.ItemType] = s.Quantity
	}
	return out
}
