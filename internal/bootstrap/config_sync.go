package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DragonKeeper_Go/internal/catalog"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// SyncSpeciesCatalog loads, validates and upserts the species catalog.
// An empty path uses the catalog embedded in the binary.
func SyncSpeciesCatalog(ctx context.Context, repo repository.Species, path string) error {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	cfg, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := catalog.Seed(ctx, repo, cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}
	return nil
}
