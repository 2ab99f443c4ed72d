package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

func seedUser(t *testing.T, s *Store, username string) *domain.User {
	t.Helper()
	ctx := context.Background()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	u := &domain.User{Username: username, Email: username + "@example.com", Coins: domain.StartingCoins}
	require.NoError(t, tx.InsertUser(ctx, u))
	require.NoError(t, tx.Commit(ctx))
	return u
}

func TestCommitPublishesChanges(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	u := seedUser(t, s, "alice")
	require.NotEmpty(t, u.ID)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateInventory(ctx, u.ID, domain.Inventory{Stacks: []domain.InventoryStack{
		{ItemType: domain.ItemEgg, Quantity: 1},
		{ItemType: domain.ItemFood, Quantity: 0},
	}}))
	require.NoError(t, tx.Commit(ctx))

	tx, err = s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	inv, err := tx.GetInventory(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryStack{{ItemType: domain.ItemEgg, Quantity: 1}}, inv.Stacks, "zero stacks are dropped")
}

func TestRollbackDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	u := seedUser(t, s, "bob")

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, tx.SaveDragon(ctx, domain.NewDragon(u.ID, 3, now)))
	require.NoError(t, tx.Rollback(ctx))

	tx, err = s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	_, err = tx.GetDragon(ctx, u.ID, 3)
	assert.ErrorIs(t, err, domain.ErrDragonNotFound)
}

func TestDoubleFinishReportsClosed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
}

func TestInsertUserConflicts(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "carol")

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	err = tx.InsertUser(ctx, &domain.User{Username: "carol", Email: "other@example.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = tx.InsertUser(ctx, &domain.User{Username: "carol2", Email: "carol@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	u := seedUser(t, s, "dave")

	got, err := s.GetUserByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.GetUserByEmail(ctx, "dave@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, s.ConfirmEmail(ctx, u.ID))
	got, err = s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.EmailConfirmed)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMissionAndPlotAbsentAreNil(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	m, err := tx.GetMission(ctx, "u", 1)
	require.NoError(t, err)
	assert.Nil(t, m)

	p, err := tx.GetPlot(ctx, "u")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSpeciesCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.UpsertSpecies(ctx, []domain.Species{
		{ID: 2, Name: "Ember", Weight: 5},
		{ID: 1, Name: "Moss", Weight: 60},
	}))

	list, err := s.ListSpecies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Moss", list[0].Name)

	sp, err := s.GetSpeciesByName(ctx, "Ember")
	require.NoError(t, err)
	assert.Equal(t, 2, sp.ID)

	_, err = s.GetSpeciesByID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)

	assert.ErrorIs(t, s.UpsertSpecies(ctx, []domain.Species{{ID: 3, Name: "Void", Weight: 0}}), domain.ErrInvalidWeight)
}
