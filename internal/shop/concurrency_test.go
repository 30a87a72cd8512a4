package shop

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjsong/item-simulator/internal/concurrency"
	"github.com/yjsong/item-simulator/internal/database/memory"
	"github.com/yjsong/item-simulator/internal/domain"
)

// Two simultaneous purchases with gold for exactly one: one must succeed and
// one must fail with insufficient funds, never a double spend.
func TestPurchase_ConcurrentDoubleSpend(t *testing.T) {
	svc, store, character := newTestShop(t)
	ctx := context.Background()

	item := seedItem(t, store, "물약", 100)
	setGold(t, store, character.ID, 100)

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Purchase(ctx, character.ID, item.ID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrInsufficientFunds):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one purchase may succeed")
	assert.Equal(t, 1, insufficient, "the other must see insufficient funds")

	after, err := store.GetCharacterByID(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Gold)
	assert.Equal(t, 1, inventoryCount(t, store, character.ID, item.ID))
}

// Hammering one character with mixed buys and sells must keep gold and
// inventory consistent: every accepted trade is reflected exactly once.
func TestShop_ConcurrentMixedTrades(t *testing.T) {
	svc, store, character := newTestShop(t)
	ctx := context.Background()

	item := seedItem(t, store, "물약", 100)
	setGold(t, store, character.ID, 10000)

	const workers = 8
	const tradesPerWorker = 10

	var wg sync.WaitGroup
	var mu sync.Mutex
	purchased, sold := 0, 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < tradesPerWorker; i++ {
				if w%2 == 0 {
					if _, err := svc.Purchase(ctx, character.ID, item.ID, 1); err == nil {
						mu.Lock()
						purchased++
						mu.Unlock()
					}
				} else {
					if _, err := svc.Sell(ctx, character.ID, item.ID, 1); err == nil {
						mu.Lock()
						sold++
						mu.Unlock()
					}
				}
			}
		}(w)
	}
	wg.Wait()

	after, err := store.GetCharacterByID(ctx, character.ID)
	require.NoError(t, err)

	wantGold := 10000 - purchased*100 + sold*60
	assert.Equal(t, wantGold, after.Gold)
	assert.Equal(t, purchased-sold, inventoryCount(t, store, character.ID, item.ID))
	assert.GreaterOrEqual(t, after.Gold, 0, "gold can never go negative")
}

// Trades on different characters proceed independently; the per-character
// lock does not serialize them against each other.
func TestShop_IndependentCharacters(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store, store, concurrency.NewLockManager())
	ctx := context.Background()

	item := seedItem(t, store, "물약", 100)

	a, err := store.CreateCharacter(ctx, "갑", domain.DefaultSkinID, nil)
	require.NoError(t, err)
	b, err := store.CreateCharacter(ctx, "을", domain.DefaultSkinID, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, id := range []int{a.ID, b.ID} {
		wg.Add(1)
		go func(characterID int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, err := svc.Purchase(ctx, characterID, item.ID, 1)
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range []int{a.ID, b.ID} {
		after, err := store.GetCharacterByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, memory.DefaultGold-20*100, after.Gold)
		assert.Equal(t, 20, inventoryCount(t, store, id, item.ID))
	}
}
