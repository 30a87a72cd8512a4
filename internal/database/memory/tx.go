package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/yjsong/item-simulator/internal/domain"
)

// gameTx mutates the store in place while holding its lock. A snapshot of the
// mutable game state is taken at begin; Rollback restores it wholesale.
type gameTx struct {
	store    *Store
	closed   bool
	snapshot txSnapshot
	taken    bool
}

type txSnapshot struct {
	characters  map[int]domain.Character
	inventories map[int]map[int]int
	equipment   map[int]map[domain.MountingLocation]domain.EquippedItem
}

func (t *gameTx) snapshotOnce() {
	if t.taken {
		return
	}
	t.taken = true

	t.snapshot.characters = make(map[int]domain.Character, len(t.store.characters))
	for id, c := range t.store.characters {
		t.snapshot.characters[id] = c
	}
	t.snapshot.inventories = make(map[int]map[int]int, len(t.store.inventories))
	for id, inv := range t.store.inventories {
		copied := make(map[int]int, len(inv))
		for itemID, count := range inv {
			copied[itemID] = count
		}
		t.snapshot.inventories[id] = copied
	}
	t.snapshot.equipment = make(map[int]map[domain.MountingLocation]domain.EquippedItem, len(t.store.equipment))
	for id, eq := range t.store.equipment {
		copied := make(map[domain.MountingLocation]domain.EquippedItem, len(eq))
		for loc, row := range eq {
			copied[loc] = row
		}
		t.snapshot.equipment[id] = copied
	}
}

func (t *gameTx) Commit(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.store.mu.Unlock()
	return nil
}

func (t *gameTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	if t.taken {
		t.store.characters = t.snapshot.characters
		t.store.inventories = t.snapshot.inventories
		t.store.equipment = t.snapshot.equipment
	}
	t.store.mu.Unlock()
	return nil
}

func (t *gameTx) LockCharacter(ctx context.Context, characterID int) (*domain.Character, error) {
	if t.closed {
		return nil, errTxClosed
	}
	character, ok := t.store.characters[characterID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	t.snapshotOnce()
	return &character, nil
}

func (t *gameTx) UpdateStats(ctx context.Context, characterID int, stats domain.StatBlock) error {
	if t.closed {
		return errTxClosed
	}
	character, ok := t.store.characters[characterID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	character.Stats = stats
	character.UpdatedAt = time.Now()
	t.store.characters[characterID] = character
	return nil
}

func (t *gameTx) UpdateGold(ctx context.Context, characterID int, gold int) error {
	if t.closed {
		return errTxClosed
	}
	if gold < 0 {
		return fmt.Errorf("%w: gold cannot go negative", domain.ErrInsufficientFunds)
	}
	character, ok := t.store.characters[characterID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	character.Gold = gold
	character.UpdatedAt = time.Now()
	t.store.characters[characterID] = character
	return nil
}

func (t *gameTx) GetEntryCount(ctx context.Context, characterID, itemID int) (int, error) {
	if t.closed {
		return 0, errTxClosed
	}
	return t.store.inventories[characterID][itemID], nil
}

func (t *gameTx) SetEntryCount(ctx context.Context, characterID, itemID, count int) error {
	if t.closed {
		return errTxClosed
	}
	if count < 0 {
		return fmt.Errorf("%w: count cannot go negative", domain.ErrInsufficientInventory)
	}
	inv, ok := t.store.inventories[characterID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	if count == 0 {
		delete(inv, itemID)
		return nil
	}
	inv[itemID] = count
	return nil
}

func (t *gameTx) GetEquippedBySlot(ctx context.Context, characterID int, location domain.MountingLocation) (*domain.EquippedItem, error) {
	if t.closed {
		return nil, errTxClosed
	}
	row, ok := t.store.equipment[characterID][location]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (t *gameTx) GetEquippedByItem(ctx context.Context, characterID, itemID int) (*domain.EquippedItem, error) {
	if t.closed {
		return nil, errTxClosed
	}
	for _, row := range t.store.equipment[characterID] {
		if row.ItemID == itemID {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (t *gameTx) InsertEquipped(ctx context.Context, characterID int, equipped domain.EquippedItem) error {
	if t.closed {
		return errTxClosed
	}
	eq, ok := t.store.equipment[characterID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	if _, occupied := eq[equipped.MountingLocation]; occupied {
		return fmt.Errorf("slot %s already occupied", equipped.MountingLocation)
	}
	eq[equipped.MountingLocation] = equipped
	return nil
}

func (t *gameTx) DeleteEquipped(ctx context.Context, characterID int, location domain.MountingLocation) error {
	if t.closed {
		return errTxClosed
	}
	eq, ok := t.store.equipment[characterID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	if _, equipped := eq[location]; !equipped {
		return fmt.Errorf("%w: slot %s", domain.ErrNotEquipped, location)
	}
	delete(eq, location)
	return nil
}
