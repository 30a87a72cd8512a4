// Package equipment manages the equipped-item slots of a character. Equip and
// Unequip are the only writers of equipped state; both run the slot swap, the
// inventory move, and the stat delta in a single transaction.
package equipment

import (
	"context"
	"fmt"

	"github.com/yjsong/item-simulator/internal/concurrency"
	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/inventory"
	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/metrics"
	"github.com/yjsong/item-simulator/internal/repository"
)

// ItemResolver is the slice of the catalog the equipment service reads.
type ItemResolver interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
}

// EquipResult reports the outcome of an equip: the character's stats after the
// swap and, when the slot was occupied, the item that was displaced back into
// inventory.
type EquipResult struct {
	CharacterID      int                     `json:"characterId"`
	ItemID           int                     `json:"itemId"`
	ItemName         string                  `json:"itemName"`
	MountingLocation domain.MountingLocation `json:"mountingLocation"`
	Stats            domain.StatBlock        `json:"stats"`
	Unequipped       *domain.EquippedItem    `json:"unequipped,omitempty"`
}

// UnequipResult reports the character's stats after an unequip.
type UnequipResult struct {
	CharacterID int              `json:"characterId"`
	ItemID      int              `json:"itemId"`
	Stats       domain.StatBlock `json:"stats"`
}

// Service defines the interface for equipment operations
type Service interface {
	Equip(ctx context.Context, characterID, itemID int, location domain.MountingLocation) (*EquipResult, error)
	Unequip(ctx context.Context, characterID, itemID int) (*UnequipResult, error)
}

type service struct {
	repo  repository.Character
	items ItemResolver
	locks *concurrency.LockManager
}

// NewService creates a new equipment service
func NewService(repo repository.Character, items ItemResolver, locks *concurrency.LockManager) Service {
	return &service{
		repo:  repo,
		items: items,
		locks: locks,
	}
}

func (s *service) Equip(ctx context.Context, characterID, itemID int, location domain.MountingLocation) (*EquipResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Equip called", "characterID", characterID, "itemID", itemID, "location", location)

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.MountingLocation.Valid() {
		return nil, fmt.Errorf("%w: item %s has no mounting location", domain.ErrSlotMismatch, item.Name)
	}
	// The requested location is optional; when present it must agree with the
	// catalog.
	if location != "" && location != item.MountingLocation {
		return nil, fmt.Errorf("%w: requested %s, item mounts at %s", domain.ErrSlotMismatch, location, item.MountingLocation)
	}

	lock := s.locks.GetLock(concurrency.CharacterKey(characterID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.LockCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	stats := character.Stats

	// A second copy of an already-equipped item may be equipped only through
	// the occupant swap below; equipping into an occupied slot first runs the
	// unequip sequence for the occupant inside this same transaction.
	occupant, err := tx.GetEquippedBySlot(ctx, characterID, item.MountingLocation)
	if err != nil {
		return nil, err
	}
	if occupant != nil {
		stats, err = unequipLocked(ctx, tx, characterID, stats, occupant)
		if err != nil {
			return nil, err
		}
	}

	if err := inventory.Debit(ctx, tx, characterID, itemID, 1); err != nil {
		return nil, err
	}

	equipped := domain.EquippedItem{
		ItemID:           item.ID,
		ItemName:         item.Name,
		MountingLocation: item.MountingLocation,
		Stats:            item.Stats,
	}
	if err := tx.InsertEquipped(ctx, characterID, equipped); err != nil {
		return nil, err
	}

	stats = stats.Add(item.Stats)
	if err := tx.UpdateStats(ctx, characterID, stats); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsEquipped.WithLabelValues(string(item.MountingLocation)).Inc()
	log.Info("Item equipped", "characterID", characterID, "item", item.Name, "location", item.MountingLocation)

	return &EquipResult{
		CharacterID:      characterID,
		ItemID:           item.ID,
		ItemName:         item.Name,
		MountingLocation: item.MountingLocation,
		Stats:            stats,
		Unequipped:       occupant,
	}, nil
}

func (s *service) Unequip(ctx context.Context, characterID, itemID int) (*UnequipResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Unequip called", "characterID", characterID, "itemID", itemID)

	lock := s.locks.GetLock(concurrency.CharacterKey(characterID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.LockCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	equipped, err := tx.GetEquippedByItem(ctx, characterID, itemID)
	if err != nil {
		return nil, err
	}
	if equipped == nil {
		return nil, fmt.Errorf("%w: item %d", domain.ErrNotEquipped, itemID)
	}

	stats, err := unequipLocked(ctx, tx, characterID, character.Stats, equipped)
	if err != nil {
		return nil, err
	}
	if err := tx.UpdateStats(ctx, characterID, stats); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsUnequipped.WithLabelValues(string(equipped.MountingLocation)).Inc()
	log.Info("Item unequipped", "characterID", characterID, "itemID", itemID, "location", equipped.MountingLocation)

	return &UnequipResult{
		CharacterID: characterID,
		ItemID:      itemID,
		Stats:       stats,
	}, nil
}

// unequipLocked runs the unequip sequence inside an open transaction: delete
// the slot row, credit the copy back to inventory, and return stats with the
// equip-time snapshot subtracted. The caller persists the stats.
func unequipLocked(ctx context.Context, tx repository.GameTx, characterID int, stats domain.StatBlock, equipped *domain.EquippedItem) (domain.StatBlock, error) {
	if err := tx.DeleteEquipped(ctx, characterID, equipped.MountingLocation); err != nil {
		return stats, err
	}
	if err := inventory.Credit(ctx, tx, characterID, equipped.ItemID, 1); err != nil {
		return stats, err
	}
	return stats.Sub(equipped.Stats), nil
}
