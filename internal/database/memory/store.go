// Package memory is a map-backed store implementing the repository
// interfaces. It backs the service tests and local runs without Postgres;
// transaction semantics mirror the Postgres store, including per-store
// serialization of concurrent game transactions.
package memory

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/yjsong/item-simulator/internal/domain"
)

// Character creation defaults, matching the schema column defaults.
const (
	DefaultLevel = 1
	DefaultGold  = 10000
)

var defaultStats = domain.StatBlock{HP: 500, Power: 100, Defense: 50, Speed: 30}

// Store holds all game state in memory. It satisfies repository.Character and
// repository.Item.
type Store struct {
	mu sync.Mutex

	characters  map[int]domain.Character
	inventories map[int]map[int]int                                  // characterID -> itemID -> count
	equipment   map[int]map[domain.MountingLocation]domain.EquippedItem // characterID -> slot -> row
	items       map[int]domain.Item
	skins       map[int]domain.Skin

	nextCharacterID int
	nextItemID      int
	nextSkinID      int
}

// NewStore creates an empty store with the default skin preloaded.
func NewStore() *Store {
	s := &Store{
		characters:      make(map[int]domain.Character),
		inventories:     make(map[int]map[int]int),
		equipment:       make(map[int]map[domain.MountingLocation]domain.EquippedItem),
		items:           make(map[int]domain.Item),
		skins:           make(map[int]domain.Skin),
		nextCharacterID: 1,
		nextItemID:      1,
		nextSkinID:      1,
	}
	s.skins[domain.DefaultSkinID] = domain.Skin{
		ID:        domain.DefaultSkinID,
		Name:      "기본",
		CreatedAt: time.Now(),
	}
	return s
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

func (s *Store) itemName(itemID int) string {
	if item, ok := s.items[itemID]; ok {
		return item.Name
	}
	return ""
}

// inventoryLocked builds the sorted inventory view. Callers hold s.mu.
func (s *Store) inventoryLocked(characterID int) []domain.InventoryEntry {
	entries := make([]domain.InventoryEntry, 0, len(s.inventories[characterID]))
	for itemID, count := range s.inventories[characterID] {
		entries = append(entries, domain.InventoryEntry{
			ItemID:   itemID,
			ItemName: s.itemName(itemID),
			Count:    count,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ItemID < entries[j].ItemID })
	return entries
}

// equipmentLocked builds the equipment view in slot display order. Callers
// hold s.mu.
func (s *Store) equipmentLocked(characterID int) []domain.EquippedItem {
	equipped := make([]domain.EquippedItem, 0, len(s.equipment[characterID]))
	for _, loc := range domain.MountingLocations {
		if row, ok := s.equipment[characterID][loc]; ok {
			equipped = append(equipped, row)
		}
	}
	return equipped
}
