package repository

import (
	"context"

	"github.com/yjsong/item-simulator/internal/domain"
)

// Character defines persistence for character records and their per-character
// inventory and equipment state.
type Character interface {
	// CreateCharacter inserts the character and its starter inventory as one
	// atomic unit.
	CreateCharacter(ctx context.Context, name string, skinID int, starterItems []domain.Item) (*domain.Character, error)
	GetCharacterByID(ctx context.Context, characterID int) (*domain.Character, error)
	GetCharacterByName(ctx context.Context, name string) (*domain.Character, error)
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	// UpdateCharacter changes name and/or skin; nil pointers leave the field
	// untouched.
	UpdateCharacter(ctx context.Context, characterID int, name *string, skinID *int) (*domain.Character, error)
	// DeleteCharacter removes the character; inventory and equipment rows
	// cascade with it.
	DeleteCharacter(ctx context.Context, characterID int) error

	GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error)
	GetEquipment(ctx context.Context, characterID int) ([]domain.EquippedItem, error)

	BeginTx(ctx context.Context) (GameTx, error)
}

// GameTx is one atomic unit against a single character's economy state.
// Implementations must serialize conflicting transactions on the same
// character: LockCharacter blocks until any concurrent transaction holding
// that character commits or rolls back.
type GameTx interface {
	Tx

	// LockCharacter reads the character row and takes an exclusive lock on it
	// for the remainder of the transaction.
	LockCharacter(ctx context.Context, characterID int) (*domain.Character, error)
	UpdateStats(ctx context.Context, characterID int, stats domain.StatBlock) error
	UpdateGold(ctx context.Context, characterID int, gold int) error

	// GetEntryCount returns 0 for an absent inventory entry.
	GetEntryCount(ctx context.Context, characterID, itemID int) (int, error)
	// SetEntryCount upserts the entry; setting 0 deletes the row.
	SetEntryCount(ctx context.Context, characterID, itemID, count int) error

	// GetEquippedBySlot and GetEquippedByItem return (nil, nil) when the slot
	// is empty / the item is not equipped.
	GetEquippedBySlot(ctx context.Context, characterID int, location domain.MountingLocation) (*domain.EquippedItem, error)
	GetEquippedByItem(ctx context.Context, characterID, itemID int) (*domain.EquippedItem, error)
	InsertEquipped(ctx context.Context, characterID int, equipped domain.EquippedItem) error
	DeleteEquipped(ctx context.Context, characterID int, location domain.MountingLocation) error
}
