package main

import (
	"context"
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/bootstrap"
	"github.com/osse101/DragonKeeper_Go/internal/database/postgres"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Usage() string {
	return "[catalog.yaml]"
}

func (c *SeedCommand) Description() string {
	return "Upsert the species catalog (embedded YAML unless a path is given)"
}

func (c *SeedCommand) Run(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	PrintHeader("Seeding species catalog")
	if path == "" {
		PrintInfo("Using the embedded catalog")
	}

	ctx := context.Background()
	pool, err := openPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := bootstrap.SyncSpeciesCatalog(ctx, postgres.NewStore(pool), path); err != nil {
		return err
	}
	PrintSuccess("Species catalog seeded")
	return nil
}
