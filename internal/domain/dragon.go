package domain

import "time"

// Vitality bounds for hunger and happiness
const (
	MaxVitality = 100
	MinVitality = 0
)

// Dragon is a user's ownership record for one species
type Dragon struct {
	UserID       string     `json:"user_id"`
	SpeciesID    int        `json:"species_id"`
	BondLevel    int        `json:"bond_level"`
	Hunger       int        `json:"hunger"`
	Happiness    int        `json:"happiness"`
	Sick         bool       `json:"sick"`
	LastFedAt    *time.Time `json:"last_fed_at,omitempty"`
	LastPlayedAt *time.Time `json:"last_played_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewDragon returns a freshly hatched dragon at bond level 1
func NewDragon(userID string, speciesID int, now time.Time) Dragon {
	return Dragon{
		UserID:       userID,
		SpeciesID:    speciesID,
		BondLevel:    1,
		Hunger:       MaxVitality,
		Happiness:    MaxVitality,
		LastFedAt:    &now,
		LastPlayedAt: &now,
		CreatedAt:    now,
	}
}
