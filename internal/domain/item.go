package domain

// ItemType identifies a stackable inventory item
type ItemType string

// Item types
const (
	ItemEgg      ItemType = "egg"
	ItemFood     ItemType = "food"
	ItemToy      ItemType = "toy"
	ItemSeed     ItemType = "seed"
	ItemMedicine ItemType = "medicine"
)

// AllItemTypes lists item types in display order
var AllItemTypes = []ItemType{ItemEgg, ItemFood, ItemToy, ItemSeed, ItemMedicine}

// ShopItem is a catalog entry with a fixed price used for both buying and selling
type ShopItem struct {
	Item  ItemType `json:"item"`
	Price int      `json:"price"`
}
