package domain

// StatBlock holds the four combat stats used by both characters and items.
// For a character these are the derived stats (base plus all equipped deltas);
// for an item they are the deltas the item contributes while equipped.
type StatBlock struct {
	HP      int `json:"hp"`
	Power   int `json:"power"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Add returns the componentwise sum of s and other.
func (s StatBlock) Add(other StatBlock) StatBlock {
	return StatBlock{
		HP:      s.HP + other.HP,
		Power:   s.Power + other.Power,
		Defense: s.Defense + other.Defense,
		Speed:   s.Speed + other.Speed,
	}
}

// Sub returns s with other subtracted componentwise.
func (s StatBlock) Sub(other StatBlock) StatBlock {
	return StatBlock{
		HP:      s.HP - other.HP,
		Power:   s.Power - other.Power,
		Defense: s.Defense - other.Defense,
		Speed:   s.Speed - other.Speed,
	}
}

// IsZero reports whether every stat is zero.
func (s StatBlock) IsZero() bool {
	return s == StatBlock{}
}
