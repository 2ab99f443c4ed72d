package dragon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DragonKeeper_Go/internal/catalog"
	"github.com/osse101/DragonKeeper_Go/internal/database/memory"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
)

type fixture struct {
	store  *memory.Store
	svc    *service
	userID string
	clock  time.Time
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.UpsertSpecies(ctx, []domain.Species{
		{ID: 1, Name: "Mossback", Rarity: domain.RarityCommon, Weight: 10},
		{ID: 2, Name: "Wishwyrm", Rarity: domain.RarityLegendary, Weight: 1},
	}))

	f := &fixture{store: store, clock: t0}
	f.svc = &service{repo: store, catalog: catalog.New(store, time.Minute), now: func() time.Time { return f.clock }}

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	u := &domain.User{Username: "keeper", Email: "keeper@example.com"}
	require.NoError(t, tx.InsertUser(ctx, u))
	require.NoError(t, tx.SaveDragon(ctx, domain.NewDragon(u.ID, 1, t0)))
	inv := &domain.Inventory{}
	require.NoError(t, inventory.Add(inv, domain.ItemFood, 1))
	require.NoError(t, tx.UpdateInventory(ctx, u.ID, *inv))
	require.NoError(t, tx.Commit(ctx))
	f.userID = u.ID
	return f
}

func TestListDragons_PersistsDecay(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.clock = t0.Add(2 * time.Hour)

	views, err := f.svc.ListDragons(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Mossback", views[0].Species.Name)
	assert.Equal(t, 90, views[0].Dragon.Hunger)

	// Reloading at the same instant shows the same value.
	views, err = f.svc.ListDragons(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 90, views[0].Dragon.Hunger)
}

func TestCare_Feed(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.clock = t0.Add(2 * time.Hour)

	res, err := f.svc.Care(ctx, f.userID, "Mossback", ActionFeed)
	require.NoError(t, err)
	assert.Equal(t, 100, res.View.Dragon.Hunger)
	assert.Equal(t, 0, res.Inventory[domain.ItemFood])

	_, err = f.svc.Care(ctx, f.userID, "Mossback", ActionFeed)
	assert.ErrorIs(t, err, domain.ErrNoFood)
}

func TestCare_NotOwned(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Care(ctx, f.userID, "Wishwyrm", ActionPlay)
	assert.ErrorIs(t, err, domain.ErrDragonNotFound)

	_, err = f.svc.GetDragon(ctx, f.userID, "Nonexistent")
	assert.ErrorIs(t, err, domain.ErrDragonNotFound)
}

func TestCare_FailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Care(ctx, f.userID, "Mossback", ActionMedicine)
	assert.ErrorIs(t, err, domain.ErrNotSick)

	res, err := f.svc.GetDragon(ctx, f.userID, "Mossback")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inventory[domain.ItemFood])
}
