package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

var speciesColumns = []string{
	"species_id", "name", "rarity", "weight", "dragon_type",
	"image_url", "card_front_url", "card_back_url",
}

func scanSpecies(row pgx.Row) (domain.Species, error) {
	var s domain.Species
	err := row.Scan(&s.ID, &s.Name, &s.Rarity, &s.Weight, &s.Type,
		&s.ImageURL, &s.CardFrontURL, &s.CardBackURL)
	return s, err
}

// ListSpecies returns the catalog ordered by ID
func (s *Store) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	rows, err := query(ctx, s.db, psql.Select(speciesColumns...).From(TableSpecies).OrderBy("species_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to query species: %w", err)
	}
	species, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Species, error) {
		return scanSpecies(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan species: %w", err)
	}
	return species, nil
}

func (s *Store) getSpecies(ctx context.Context, where squirrel.Sqlizer) (*domain.Species, error) {
	row, err := queryRow(ctx, s.db, psql.Select(speciesColumns...).From(TableSpecies).Where(where))
	if err != nil {
		return nil, err
	}
	sp, err := scanSpecies(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &sp, nil
}

// GetSpeciesByID returns domain.ErrSpeciesNotFound when absent
func (s *Store) GetSpeciesByID(ctx context.Context, id int) (*domain.Species, error) {
	return s.getSpecies(ctx, squirrel.Eq{"species_id": id})
}

// GetSpeciesByName returns domain.ErrSpeciesNotFound when absent
func (s *Store) GetSpeciesByName(ctx context.Context, name string) (*domain.Species, error) {
	return s.getSpecies(ctx, squirrel.Eq{"name": name})
}

// UpsertSpecies inserts or updates catalog rows keyed by ID in one statement
func (s *Store) UpsertSpecies(ctx context.Context, species []domain.Species) error {
	if len(species) == 0 {
		return nil
	}
	b := psql.Insert(TableSpecies).Columns(speciesColumns...)
	for _, sp := range species {
		b = b.Values(sp.ID, sp.Name, sp.Rarity, sp.Weight, sp.Type, sp.ImageURL, sp.CardFrontURL, sp.CardBackURL)
	}
	b = b.Suffix(`ON CONFLICT (species_id) DO UPDATE SET
		name = EXCLUDED.name,
		rarity = EXCLUDED.rarity,
		weight = EXCLUDED.weight,
		dragon_type = EXCLUDED.dragon_type,
		image_url = EXCLUDED.image_url,
		card_front_url = EXCLUDED.card_front_url,
		card_back_url = EXCLUDED.card_back_url`)
	if err := exec(ctx, s.db, b); err != nil {
		return fmt.Errorf("failed to upsert species: %w", err)
	}
	return nil
}
