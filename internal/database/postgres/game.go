package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

func (t *gameTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := query(ctx, t.tx, psql.Select("item_type", "quantity").
		From(TableInventory).
		Where(squirrel.Eq{"user_id": id}).
		OrderBy("item_type").
		Suffix(LockSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	stacks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryStack, error) {
		var s domain.InventoryStack
		err := row.Scan(&s.ItemType, &s.Quantity)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory: %w", err)
	}
	return &domain.Inventory{UserID: userID, Stacks: stacks}, nil
}

func (t *gameTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	id, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	if err := exec(ctx, t.tx, psql.Delete(TableInventory).Where(squirrel.Eq{"user_id": id})); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}

	ins := psql.Insert(TableInventory).Columns("user_id", "item_type", "quantity")
	n := 0
	for _, s := range inventory.Stacks {
		if s.Quantity <= 0 {
			continue
		}
		ins = ins.Values(id, s.ItemType, s.Quantity)
		n++
	}
	if n == 0 {
		return nil
	}
	if err := exec(ctx, t.tx, ins); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

var dragonColumns = []string{
	"user_id", "species_id", "bond_level", "hunger", "happiness",
	"sick", "last_fed_at", "last_played_at", "created_at",
}

func scanDragon(row pgx.Row) (domain.Dragon, error) {
	var d domain.Dragon
	err := row.Scan(&d.UserID, &d.SpeciesID, &d.BondLevel, &d.Hunger, &d.Happiness,
		&d.Sick, &d.LastFedAt, &d.LastPlayedAt, &d.CreatedAt)
	return d, err
}

func (t *gameTx) GetDragon(ctx context.Context, userID string, speciesID int) (*domain.Dragon, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrDragonNotFound
	}
	row, err := queryRow(ctx, t.tx, psql.Select(dragonColumns...).
		From(TableDragons).
		Where(squirrel.Eq{"user_id": id, "species_id": speciesID}).
		Suffix(LockSuffix))
	if err != nil {
		return nil, err
	}
	d, err := scanDragon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDragonNotFound
		}
		return nil, fmt.Errorf("failed to get dragon: %w", err)
	}
	return &d, nil
}

func (t *gameTx) ListDragons(ctx context.Context, userID string) ([]domain.Dragon, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := query(ctx, t.tx, psql.Select(dragonColumns...).
		From(TableDragons).
		Where(squirrel.Eq{"user_id": id}).
		OrderBy("species_id").
		Suffix(LockSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to query dragons: %w", err)
	}
	dragons, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Dragon, error) {
		return scanDragon(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan dragons: %w", err)
	}
	return dragons, nil
}

func (t *gameTx) SaveDragon(ctx context.Context, dragon domain.Dragon) error {
	id, err := parseUserUUID(dragon.UserID)
	if err != nil {
		return err
	}
	b := psql.Insert(TableDragons).
		Columns(dragonColumns...).
		Values(id, dragon.SpeciesID, dragon.BondLevel, dragon.Hunger, dragon.Happiness,
			dragon.Sick, dragon.LastFedAt, dragon.LastPlayedAt, dragon.CreatedAt).
		Suffix(`ON CONFLICT (user_id, species_id) DO UPDATE SET
			bond_level = EXCLUDED.bond_level,
			hunger = EXCLUDED.hunger,
			happiness = EXCLUDED.happiness,
			sick = EXCLUDED.sick,
			last_fed_at = EXCLUDED.last_fed_at,
			last_played_at = EXCLUDED.last_played_at`)
	if err := exec(ctx, t.tx, b); err != nil {
		return fmt.Errorf("failed to save dragon: %w", err)
	}
	return nil
}

var missionColumns = []string{"user_id", "species_id", "on_mission", "started_at", "region"}

func scanMission(row pgx.Row) (domain.Mission, error) {
	var m domain.Mission
	err := row.Scan(&m.UserID, &m.SpeciesID, &m.OnMission, &m.StartedAt, &m.Region)
	return m, err
}

func (t *gameTx) GetMission(ctx context.Context, userID string, speciesID int) (*domain.Mission, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	row, err := queryRow(ctx, t.tx, psql.Select(missionColumns...).
		From(TableMissions).
		Where(squirrel.Eq{"user_id": id, "species_id": speciesID}).
		Suffix(LockSuffix))
	if err != nil {
		return nil, err
	}
	m, err := scanMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return &m, nil
}

func (t *gameTx) ListMissions(ctx context.Context, userID string) ([]domain.Mission, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := query(ctx, t.tx, psql.Select(missionColumns...).
		From(TableMissions).
		Where(squirrel.Eq{"user_id": id}).
		OrderBy("species_id").
		Suffix(LockSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to query missions: %w", err)
	}
	missions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Mission, error) {
		return scanMission(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan missions: %w", err)
	}
	return missions, nil
}

func (t *gameTx) SaveMission(ctx context.Context, mission domain.Mission) error {
	id, err := parseUserUUID(mission.UserID)
	if err != nil {
		return err
	}
	b := psql.Insert(TableMissions).
		Columns(missionColumns...).
		Values(id, mission.SpeciesID, mission.OnMission, mission.StartedAt, mission.Region).
		Suffix(`ON CONFLICT (user_id, species_id) DO UPDATE SET
			on_mission = EXCLUDED.on_mission,
			started_at = EXCLUDED.started_at,
			region = EXCLUDED.region`)
	if err := exec(ctx, t.tx, b); err != nil {
		return fmt.Errorf("failed to save mission: %w", err)
	}
	return nil
}

func (t *gameTx) GetPlot(ctx context.Context, userID string) (*domain.Plot, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	row, err := queryRow(ctx, t.tx, psql.Select("user_id", "planted_at", "harvested").
		From(TablePlots).
		Where(squirrel.Eq{"user_id": id}).
		Suffix(LockSuffix))
	if err != nil {
		return nil, err
	}
	var p domain.Plot
	if err := row.Scan(&p.UserID, &p.PlantedAt, &p.Harvested); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	return &p, nil
}

func (t *gameTx) SavePlot(ctx context.Context, plot domain.Plot) error {
	id, err := parseUserUUID(plot.UserID)
	if err != nil {
		return err
	}
	b := psql.Insert(TablePlots).
		Columns("user_id", "planted_at", "harvested").
		Values(id, plot.PlantedAt, plot.Harvested).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET planted_at = EXCLUDED.planted_at, harvested = EXCLUDED.harvested")
	if err := exec(ctx, t.tx, b); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
