package config

const (
	// Configuration file paths
	ConfigPathItems       = "configs/items.json"
	ConfigPathSkins       = "configs/skins.json"
	ConfigPathItemSchema  = "configs/schemas/items.schema.json"
	ConfigPathSkinSchema  = "configs/schemas/skins.schema.json"

	// DefaultStarterItemPrefix selects the catalog items granted to
	// newly created characters by name prefix.
	DefaultStarterItemPrefix = "일반 가죽"
)
