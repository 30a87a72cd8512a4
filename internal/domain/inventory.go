package domain

// InventoryEntry is the count of unequipped copies of one item held by a
// character. An entry with count zero is never stored; absence means zero.
type InventoryEntry struct {
	ItemID   int    `json:"itemId"`
	ItemName string `json:"itemName,omitempty"` // populated on read paths that join the catalog
	Count    int    `json:"count"`
}

// EquippedItem is the occupant of one equipment slot. Stats is a snapshot of
// the item's deltas taken at equip time; unequip subtracts exactly this
// snapshot, so a later catalog edit cannot unbalance the character.
type EquippedItem struct {
	ItemID           int              `json:"itemId"`
	ItemName         string           `json:"itemName,omitempty"`
	MountingLocation MountingLocation `json:"mountingLocation"`
	Stats            StatBlock        `json:"stats"`
}
