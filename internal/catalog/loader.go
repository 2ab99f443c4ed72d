// Package catalog loads, seeds and serves the static species catalog.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

//go:embed species.yaml
var defaultCatalog []byte

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate species id")
	ErrDuplicateName = errors.New("duplicate species name")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Config is the YAML catalog document
type Config struct {
	Version     string           `yaml:"version"`
	Description string           `yaml:"description"`
	Species     []domain.Species `yaml:"species"`
}

// Load reads the catalog from path, or the embedded catalog when path is empty
func Load(path string) (*Config, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ids and names are unique and weights are positive
func Validate(cfg *Config) error {
	if len(cfg.Species) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, domain.ErrEmptyCatalog)
	}
	ids := make(map[int]bool, len(cfg.Species))
	names := make(map[string]bool, len(cfg.Species))
	for _, sp := range cfg.Species {
		if sp.ID <= 0 || sp.Name == "" {
			return fmt.Errorf("%w: species needs a positive id and a name (got id=%d name=%q)", ErrInvalidConfig, sp.ID, sp.Name)
		}
		if sp.Weight <= 0 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, sp.Name, domain.ErrInvalidWeight)
		}
		if ids[sp.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, sp.ID)
		}
		if names[sp.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, sp.Name)
		}
		ids[sp.ID] = true
		names[sp.Name] = true
	}
	return nil
}

// Seed upserts the catalog into the species repository
func Seed(ctx context.Context, repo repository.Species, cfg *Config) error {
	log := logger.FromContext(ctx)
	if err := repo.UpsertSpecies(ctx, cfg.Species); err != nil {
		return fmt.Errorf("failed to seed species: %w", err)
	}
	log.Info("Species catalog seeded", "count", len(cfg.Species), "version", cfg.Version)
	return nil
}
