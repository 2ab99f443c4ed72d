package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

func newInv(stacks ...domain.InventoryStack) *domain.Inventory {
	return &domain.Inventory{UserID: "u1", Stacks: stacks}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		start     []domain.InventoryStack
		item      domain.ItemType
		qty       int
		wantQty   int
		wantLen   int
		wantError error
	}{
		{"new stack", nil, domain.ItemFood, 3, 3, 1, nil},
		{"merge into existing", []domain.InventoryStack{{ItemType: domain.ItemFood, Quantity: 2}}, domain.ItemFood, 3, 5, 1, nil},
		{"zero is a no-op", nil, domain.ItemToy, 0, 0, 0, nil},
		{"negative rejected", nil, domain.ItemToy, -1, 0, 0, domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInv(tt.start...)
			err := Add(inv, tt.item, tt.qty)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantQty, Quantity(inv, tt.item))
			assert.Len(t, inv.Stacks, tt.wantLen)
			assert.NoError(t, Validate(inv))
		})
	}
}

func TestRemove(t *testing.T) {
	t.Run("decrements", func(t *testing.T) {
		inv := newInv(domain.InventoryStack{ItemType: domain.ItemEgg, Quantity: 2})
		require.NoError(t, Remove(inv, domain.ItemEgg, 1))
		assert.Equal(t, 1, Quantity(inv, domain.ItemEgg))
	})

	t.Run("deletes stack at zero", func(t *testing.T) {
		inv := newInv(
			domain.InventoryStack{ItemType: domain.ItemEgg, Quantity: 1},
			domain.InventoryStack{ItemType: domain.ItemFood, Quantity: 4},
		)
		require.NoError(t, Remove(inv, domain.ItemEgg, 1))
		assert.Equal(t, []domain.InventoryStack{{ItemType: domain.ItemFood, Quantity: 4}}, inv.Stacks)
	})

	t.Run("insufficient leaves inventory untouched", func(t *testing.T) {
		inv := newInv(domain.InventoryStack{ItemType: domain.ItemToy, Quantity: 1})
		err := Remove(inv, domain.ItemToy, 2)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		assert.Equal(t, 1, Quantity(inv, domain.ItemToy))
	})

	t.Run("absent stack", func(t *testing.T) {
		inv := newInv()
		assert.ErrorIs(t, Remove(inv, domain.ItemSeed, 1), domain.ErrInsufficientQuantity)
		assert.Empty(t, inv.Stacks)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		assert.ErrorIs(t, Remove(newInv(), domain.ItemSeed, 0), domain.ErrInvalidQuantity)
	})
}

func TestConsume_WrapsBothErrors(t *testing.T) {
	err := Consume(newInv(), domain.ItemFood, domain.ErrNoFood)
	assert.ErrorIs(t, err, domain.ErrNoFood)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestAddBundle_SkipsZeros(t *testing.T) {
	inv := newInv()
	require.NoError(t, AddBundle(inv, domain.ItemBundle{domain.ItemFood: 5, domain.ItemToy: 0}))
	assert.Equal(t, []domain.InventoryStack{{ItemType: domain.ItemFood, Quantity: 5}}, inv.Stacks)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(newInv(domain.InventoryStack{ItemType: domain.ItemFood, Quantity: 0})), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, Validate(newInv(
		domain.InventoryStack{ItemType: domain.ItemFood, Quantity: 1},
		domain.InventoryStack{ItemType: domain.ItemFood, Quantity: 1},
	)), domain.ErrInvalidInput)
}

func TestCounts(t *testing.T) {
	counts := Counts(newInv(domain.InventoryStack{ItemType: domain.ItemSeed, Quantity: 7}))
	assert.Len(t, counts, len(domain.AllItemTypes))
	assert.Equal(t, 7, counts[domain.ItemSeed])
	assert.Equal(t, 0, counts[domain.ItemEgg])
}

// Any sequence of adds and removes keeps every stack positive.
func TestLedgerNeverStoresZero(t *testing.T) {
	inv := newInv()
	ops := []struct {
		add  bool
		item domain.ItemType
		qty  int
	}{
		{true, domain.ItemFood, 2},
		{false, domain.ItemFood, 1},
		{true, domain.ItemToy, 0},
		{false, domain.ItemFood, 1},
		{false, domain.ItemFood, 1},
		{true, domain.ItemEgg, 1},
		{false, domain.ItemEgg, 1},
	}
	for _, op := range ops {
		if op.add {
			_ = Add(inv, op.item, op.qty)
		} else {
			_ = Remove(inv, op.item, op.qty)
		}
		require.NoError(t, Validate(inv))
	}
	assert.Empty(t, inv.Stacks)
}
