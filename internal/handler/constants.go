package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests reference these constants.
const (
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidCharacterID = "Invalid character ID"
	ErrMsgInvalidItemID      = "Invalid item ID"
	ErrMsgInvalidSkinID      = "Invalid skin ID"
	ErrMsgNothingToUpdate    = "At least one field must be provided"

	// Success messages
	MsgCharacterCreated = "Character created"
	MsgCharacterUpdated = "Character updated"
	MsgCharacterDeleted = "Character deleted"
	MsgItemEquipped     = "Item equipped"
	MsgItemUnequipped   = "Item unequipped"
	MsgItemPurchased    = "Item purchased"
	MsgItemSold         = "Item sold"
	MsgItemCreated      = "Item created"
	MsgItemUpdated      = "Item updated"
	MsgItemDeleted      = "Item deleted"
	MsgSkinCreated      = "Skin created"
	MsgSkinUpdated      = "Skin updated"
	MsgSkinDeleted      = "Skin deleted"
)
