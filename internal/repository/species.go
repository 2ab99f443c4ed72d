package repository

import (
	"context"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// Species handles the static species catalog
type Species interface {
	ListSpecies(ctx context.Context) ([]domain.Species, error)
	// GetSpeciesByID and GetSpeciesByName return domain.ErrSpeciesNotFound when absent
	GetSpeciesByID(ctx context.Context, id int) (*domain.Species, error)
	GetSpeciesByName(ctx context.Context, name string) (*domain.Species, error)
	// UpsertSpecies inserts or updates catalog rows keyed by ID
	UpsertSpecies(ctx context.Context, species []domain.Species) error
}

// Store bundles every repository a backend provides
type Store interface {
	Game
	User
	Species
}
