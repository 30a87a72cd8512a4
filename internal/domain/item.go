package domain

import "time"

// MountingLocation is an equipment slot category. A character can equip at
// most one item per location. The values match the catalog data, which uses
// the Korean slot names.
type MountingLocation string

const (
	SlotHat   MountingLocation = "모자"
	SlotArmor MountingLocation = "갑옷"
	SlotPants MountingLocation = "바지"
	SlotRobe  MountingLocation = "로브"
)

// MountingLocations lists every valid slot, in display order.
var MountingLocations = []MountingLocation{SlotHat, SlotArmor, SlotPants, SlotRobe}

// Valid reports whether m is one of the known slots.
func (m MountingLocation) Valid() bool {
	for _, loc := range MountingLocations {
		if m == loc {
			return true
		}
	}
	return false
}

// Item is a catalog entry. Catalog rows are immutable per version: the stat
// deltas a character gains from an equipped copy are snapshotted at equip time
// (see EquippedItem), so editing the catalog never rewrites equipped state.
type Item struct {
	ID               int              `json:"itemId"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Price            int              `json:"price"`
	Stats            StatBlock        `json:"stats"`
	MountingLocation MountingLocation `json:"mountingLocation"`
	CreatedAt        time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt,omitempty"`
}

// Skin is a cosmetic character appearance. Skin zero is the default applied
// when a character is created without one.
type Skin struct {
	ID          int       `json:"skinId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImgURL      string    `json:"imgurl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// DefaultSkinID is assigned when character creation omits a skin.
const DefaultSkinID = 0

// MinItemPrice is the catalog business rule: newly created items must cost at
// least this much. Existing rows may hold any non-negative price.
const MinItemPrice = 100
