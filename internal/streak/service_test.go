package streak

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DragonKeeper_Go/internal/database/memory"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

func TestVisit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	last := Today(day0)
	u := &domain.User{Username: "v", Email: "v@example.com", Coins: 100, LoginStreak: 6, LastRewardDate: &last}
	require.NoError(t, tx.InsertUser(ctx, u))
	require.NoError(t, tx.Commit(ctx))

	clock := day0.AddDate(0, 0, 1)
	svc := &service{repo: store, now: func() time.Time { return clock }}

	home, err := svc.Visit(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, home.Reward.Claimed)
	assert.Equal(t, 1, home.Reward.Eggs)
	assert.Equal(t, 110, home.User.Coins)

	home, err = svc.Visit(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, home.Reward.Claimed)
	assert.Equal(t, 110, home.User.Coins)

	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	inv, err := tx.GetInventory(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, inventory.Quantity(inv, domain.ItemEgg))
}

func TestVisit_UnknownUser(t *testing.T) {
	_, err := NewService(memory.NewStore()).Visit(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
