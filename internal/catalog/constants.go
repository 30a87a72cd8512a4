package catalog

import "time"

// Item cache sizing. Catalogs are small; the cache mainly shields the hot
// equip/purchase read path.
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgItemCreated     = "Catalog item created"
	LogMsgItemUpdated     = "Catalog item updated"
	LogMsgItemDeleted     = "Catalog item deleted"
	LogMsgSkinCreated     = "Skin created"
	LogMsgSyncCompleted   = "Catalog sync completed"
	LogMsgSyncSkinsDone   = "Skin sync completed"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)
