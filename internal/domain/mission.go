package domain

import "time"

// Region is a mission destination
type Region string

// Regions
const (
	RegionFarm           Region = "farm"
	RegionMushroomForest Region = "mushroom-forest"
	RegionPond           Region = "pond"
	RegionSleepingForest Region = "sleeping-forest"
	RegionOpenField      Region = "open-field"
	RegionWishingWell    Region = "wishing-well"
	RegionCrystalPeaks   Region = "crystal-peaks"
)

// Tier is the reward table a finished mission rolls against
type Tier string

// Reward tiers
const (
	TierQuick  Tier = "quick"
	TierMedium Tier = "medium"
	TierLong   Tier = "long"
)

// Mission is the dispatch record for one (user, species) pair.
// It is reused across dispatches; OnMission false means idle.
type Mission struct {
	UserID    string     `json:"user_id"`
	SpeciesID int        `json:"species_id"`
	OnMission bool       `json:"on_mission"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	Region    Region     `json:"region"`
}
