package domain

import "time"

// Character name length limits, enforced on create and rename.
const (
	CharacterNameMinLen = 1
	CharacterNameMaxLen = 50
)

// Character is one player character: identity, derived stats, and gold.
// Stats always equal base stats plus the deltas of every currently equipped
// item; every mutation of equipment updates them in the same transaction.
type Character struct {
	ID        int       `json:"characterId"`
	Name      string    `json:"name"`
	SkinID    int       `json:"skinId"`
	Level     int       `json:"level"`
	Stats     StatBlock `json:"stats"`
	Gold      int       `json:"gold"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// CharacterDetail is the full view returned by the detail endpoint: the
// character record plus its equipment and unequipped inventory.
type CharacterDetail struct {
	Character Character       `json:"character"`
	Equipment []EquippedItem  `json:"equipped"`
	Inventory []InventoryEntry `json:"inventory"`
}
