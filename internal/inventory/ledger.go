// Package inventory is the ledger of unequipped item copies. It only ever
// touches inventory entries; character stats, gold, and equipment belong to
// the callers' transactions.
package inventory

import (
	"context"
	"fmt"

	"github.com/yjsong/item-simulator/internal/domain"
)

// Store is the slice of a transaction the ledger needs. repository.GameTx
// satisfies it; tests use a map-backed fake.
type Store interface {
	// GetEntryCount returns 0 for an absent entry.
	GetEntryCount(ctx context.Context, characterID, itemID int) (int, error)
	// SetEntryCount upserts the entry; setting 0 deletes the row.
	SetEntryCount(ctx context.Context, characterID, itemID, count int) error
}

// Credit increases the entry's count by count, creating the entry if absent.
func Credit(ctx context.Context, store Store, characterID, itemID, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: credit count must be positive, got %d", domain.ErrInvalidQuantity, count)
	}

	current, err := store.GetEntryCount(ctx, characterID, itemID)
	if err != nil {
		return fmt.Errorf("failed to read inventory entry: %w", err)
	}

	if err := store.SetEntryCount(ctx, characterID, itemID, current+count); err != nil {
		return fmt.Errorf("failed to write inventory entry: %w", err)
	}
	return nil
}

// Debit decreases the entry's count by count. It fails without side effects
// when the character holds fewer than count unequipped copies; at zero the
// entry becomes absent.
func Debit(ctx context.Context, store Store, characterID, itemID, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: debit count must be positive, got %d", domain.ErrInvalidQuantity, count)
	}

	current, err := store.GetEntryCount(ctx, characterID, itemID)
	if err != nil {
		return fmt.Errorf("failed to read inventory entry: %w", err)
	}
	if current < count {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientInventory, current, count)
	}

	if err := store.SetEntryCount(ctx, characterID, itemID, current-count); err != nil {
		return fmt.Errorf("failed to write inventory entry: %w", err)
	}
	return nil
}
