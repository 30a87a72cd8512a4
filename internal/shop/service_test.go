package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjsong/item-simulator/internal/concurrency"
	"github.com/yjsong/item-simulator/internal/database/memory"
	"github.com/yjsong/item-simulator/internal/domain"
)

func newTestShop(t *testing.T) (Service, *memory.Store, *domain.Character) {
	t.Helper()

	store := memory.NewStore()
	character, err := store.CreateCharacter(context.Background(), "상인", domain.DefaultSkinID, nil)
	require.NoError(t, err)

	svc := NewService(store, store, concurrency.NewLockManager())
	return svc, store, character
}

func seedItem(t *testing.T, store *memory.Store, name string, price int) *domain.Item {
	t.Helper()

	id, err := store.InsertItem(context.Background(), &domain.Item{
		Name:             name,
		Price:            price,
		MountingLocation: domain.SlotHat,
	})
	require.NoError(t, err)

	item, err := store.GetItemByID(context.Background(), id)
	require.NoError(t, err)
	return item
}

func setGold(t *testing.T, store *memory.Store, characterID, gold int) {
	t.Helper()

	tx, err := store.BeginTx(context.Background())
	require.NoError(t, err)
	_, err = tx.LockCharacter(context.Background(), characterID)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateGold(context.Background(), characterID, gold))
	require.NoError(t, tx.Commit(context.Background()))
}

func inventoryCount(t *testing.T, store *memory.Store, characterID, itemID int) int {
	t.Helper()

	entries, err := store.GetInventory(context.Background(), characterID)
	require.NoError(t, err)
	for _, entry := range entries {
		if entry.ItemID == itemID {
			return entry.Count
		}
	}
	return 0
}

// The worked example: gold 500, item price 100 → buy 3 → gold 200, inv 3;
// sell 2 → gold 320, inv 1.
func TestShop_PurchaseThenSell(t *testing.T) {
	svc, store, character := newTestShop(t)
	ctx := context.Background()

	item := seedItem(t, store, "물약", 100)
	setGold(t, store, character.ID, 500)

	bought, err := svc.Purchase(ctx, character.ID, item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 200, bought.Gold)
	assert.Equal(t, -300, bought.GoldDelta)
	assert.Equal(t, 3, inventoryCount(t, store, character.ID, item.ID))

	sold, err := svc.Sell(ctx, character.ID, item.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 320, sold.Gold)
	assert.Equal(t, 120, sold.GoldDelta)
	assert.Equal(t, 1, inventoryCount(t, store, character.ID, item.ID))
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	svc, store, character := newTestShop(t)
	ctx := context.Background()

	item := seedItem(t, store, "물약", 100)
	setGold(t, store, character.ID, 250)

	_, err := svc.Purchase(ctx, character.ID, item.ID, 3)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Failed purchase leaves gold and inventory untouched
	after, err := store.GetCharacterByID(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, after.Gold)
	assert.Equal(t, 0, inventoryCount(t, store, character.ID, item.ID))
}

func TestPurchase_InvalidCount(t *testing.T) {
	svc, store, character := newTestShop(t)

	item := seedItem(t, store, "물약", 100)

	for _, count := range []int{0, -1, -100} {
		_, err := svc.Purchase(context.Background(), character.ID, item.ID, count)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "count %d", count)
	}
}

func TestPurchase_UnknownItem(t *testing.T) {
	svc, _, character := newTestShop(t)

	_, err := svc.Purchase(context.Background(), character.ID, 9999, 1)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestPurchase_UnknownCharacter(t *testing.T) {
	svc, store, _ := newTestShop(t)

	item := seedItem(t, store, "물약", 100)

	_, err := svc.Purchase(context.Background(), 9999, item.ID, 1)

	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestSell_InsufficientInventory(t *testing.T) {
	svc, store, character := newTestShop(t)
	ctx := context.Background()

	item := seedItem(t, store, "물약", 100)
	setGold(t, store, character.ID, 500)

	_, err := svc.Purchase(ctx, character.ID, item.ID, 1)
	require.NoError(t, err)

	_, err = svc.Sell(ctx, character.ID, item.ID, 2)

	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)

	// Failed sale leaves gold and inventory untouched
	after, err := store.GetCharacterByID(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, 400, after.Gold)
	assert.Equal(t, 1, inventoryCount(t, store, character.ID, item.ID))
}

func TestSell_FloorsOddProceeds(t *testing.T) {
	svc, store, character := newTestShop(t)
	ctx := context.Background()

	item := seedItem(t, store, "목걸이", 101)
	setGold(t, store, character.ID, 200)

	_, err := svc.Purchase(ctx, character.ID, item.ID, 1)
	require.NoError(t, err)

	sold, err := svc.Sell(ctx, character.ID, item.ID, 1)
	require.NoError(t, err)

	// 101 * 0.6 = 60.6, floored
	assert.Equal(t, 60, sold.GoldDelta)
	assert.Equal(t, 99+60, sold.Gold)
}

func TestSellProceeds(t *testing.T) {
	tests := []struct {
		name  string
		price int
		count int
		want  int
	}{
		{"even price", 100, 1, 60},
		{"odd price floors", 101, 1, 60},
		{"multiple copies before flooring", 101, 2, 121},
		{"free item", 0, 5, 0},
		{"minimum price", 100, 3, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SellProceeds(tt.price, tt.count))
		})
	}
}

func TestSell_InvalidCount(t *testing.T) {
	svc, store, character := newTestShop(t)

	item := seedItem(t, store, "물약", 100)

	_, err := svc.Sell(context.Background(), character.ID, item.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}
