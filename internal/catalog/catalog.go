package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

const allKey = "all"

// Catalog serves species lookups
type Catalog interface {
	List(ctx context.Context) ([]domain.Species, error)
	ByID(ctx context.Context, id int) (*domain.Species, error)
	ByName(ctx context.Context, name string) (*domain.Species, error)
}

// cachedCatalog keeps the full species list in an expiring LRU.
// The catalog is small and static so one entry holds everything.
type cachedCatalog struct {
	repo  repository.Species
	cache *expirable.LRU[string, []domain.Species]
}

// New creates a catalog backed by repo, caching the list for ttl
func New(repo repository.Species, ttl time.Duration) Catalog {
	return &cachedCatalog{
		repo:  repo,
		cache: expirable.NewLRU[string, []domain.Species](1, nil, ttl),
	}
}

// List returns every species ordered by ID
func (c *cachedCatalog) List(ctx context.Context) ([]domain.Species, error) {
	if list, ok := c.cache.Get(allKey); ok {
		metrics.CatalogCacheHits.Inc()
		return list, nil
	}
	metrics.CatalogCacheMisses.Inc()

	list, err := c.repo.ListSpecies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	c.cache.Add(allKey, list)
	return list, nil
}

// ByID finds a species by ID
func (c *cachedCatalog) ByID(ctx context.Context, id int) (*domain.Species, error) {
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			sp := list[i]
			return &sp, nil
		}
	}
	return nil, fmt.Errorf("species %d: %w", id, domain.ErrSpeciesNotFound)
}

// ByName finds a species by exact name
func (c *cachedCatalog) ByName(ctx context.Context, name string) (*domain.Species, error) {
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Name == name {
			sp := list[i]
			return &sp, nil
		}
	}
	return nil, fmt.Errorf("species %q: %w", name, domain.ErrSpeciesNotFound)
}
