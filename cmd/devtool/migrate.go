package main

import (
	"context"
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Usage() string {
	return ""
}

func (c *MigrateCommand) Description() string {
	return "Apply the embedded schema migrations"
}

func (c *MigrateCommand) Run(args []string) error {
	PrintHeader("Migrating database")
	ctx := context.Background()

	pool, err := openPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}
