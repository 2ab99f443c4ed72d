package domain

// InventoryStack is a positive quantity of one item type
type InventoryStack struct {
	ItemType ItemType `json:"item_type"`
	Quantity int      `json:"quantity"`
}

// Inventory is the set of stacks a user owns. A missing stack means zero.
type Inventory struct {
	UserID string           `json:"user_id"`
	Stacks []InventoryStack `json:"stacks"`
}

// ItemBundle maps item types to quantities granted together
type ItemBundle map[ItemType]int

// Total returns the summed quantity of the bundle
func (b ItemBundle) Total() int {
	n := 0
	for _, q := range b {
		n += q
	}
	return n
}
