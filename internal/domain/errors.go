package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Lookup errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgSkinNotFound      = "skin not found"

	// Inventory errors
	ErrMsgInsufficientInventory = "insufficient inventory"

	// Equipment errors
	ErrMsgNotEquipped  = "item is not equipped"
	ErrMsgSlotMismatch = "mounting location does not match item"

	// Shop errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Validation errors
	ErrMsgInvalidQuantity = "invalid quantity"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgDuplicateName   = "character name already exists"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors.
// These are used consistently across all layers; wrap with
// fmt.Errorf("%w: details", domain.ErrXxx) for additional context.
var (
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrSkinNotFound      = errors.New(ErrMsgSkinNotFound)

	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)

	ErrNotEquipped  = errors.New(ErrMsgNotEquipped)
	ErrSlotMismatch = errors.New(ErrMsgSlotMismatch)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrDuplicateName   = errors.New(ErrMsgDuplicateName)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
