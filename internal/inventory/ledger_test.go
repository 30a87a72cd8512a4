package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjsong/item-simulator/internal/domain"
)

// fakeStore is a map-backed Store. Keys are (characterID, itemID).
type fakeStore struct {
	counts map[[2]int]int
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: make(map[[2]int]int)}
}

func (s *fakeStore) GetEntryCount(_ context.Context, characterID, itemID int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.counts[[2]int{characterID, itemID}], nil
}

func (s *fakeStore) SetEntryCount(_ context.Context, characterID, itemID, count int) error {
	if s.err != nil {
		return s.err
	}
	key := [2]int{characterID, itemID}
	if count == 0 {
		delete(s.counts, key)
		return nil
	}
	s.counts[key] = count
	return nil
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	require.NoError(t, Credit(ctx, store, 1, 10, 3))
	assert.Equal(t, 3, store.counts[[2]int{1, 10}])

	// Crediting an existing entry accumulates
	require.NoError(t, Credit(ctx, store, 1, 10, 2))
	assert.Equal(t, 5, store.counts[[2]int{1, 10}])
}

func TestCredit_InvalidCount(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	for _, count := range []int{0, -1} {
		err := Credit(ctx, store, 1, 10, count)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Empty(t, store.counts, "failed credit must not write")
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.counts[[2]int{1, 10}] = 5

	require.NoError(t, Debit(ctx, store, 1, 10, 2))
	assert.Equal(t, 3, store.counts[[2]int{1, 10}])
}

func TestDebit_ToZeroDeletesEntry(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.counts[[2]int{1, 10}] = 2

	require.NoError(t, Debit(ctx, store, 1, 10, 2))
	_, present := store.counts[[2]int{1, 10}]
	assert.False(t, present, "zero-count entry must be absent")
}

func TestDebit_Insufficient(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.counts[[2]int{1, 10}] = 1

	err := Debit(ctx, store, 1, 10, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.Equal(t, 1, store.counts[[2]int{1, 10}], "failed debit must leave state unchanged")

	// Absent entry behaves as count 0
	err = Debit(ctx, store, 1, 99, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestLedger_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.err = errors.New("connection refused")

	assert.Error(t, Credit(ctx, store, 1, 10, 1))
	assert.Error(t, Debit(ctx, store, 1, 10, 1))
}
