package domain

// Rarity labels used by the bundled catalog
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Species is a static catalog entry that eggs hatch into
type Species struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Rarity       string `json:"rarity" yaml:"rarity"`
	Weight       int    `json:"weight" yaml:"weight"`
	Type         string `json:"type" yaml:"type"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	CardFrontURL string `json:"card_front_url,omitempty" yaml:"card_front_url"`
	CardBackURL  string `json:"card_back_url,omitempty" yaml:"card_back_url"`
}
