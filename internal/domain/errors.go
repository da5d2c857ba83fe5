package domain

import "errors"

var (
	ErrSavedInventoryNotFound  = errors.New("saved inventory not found")
	ErrEmptySavedInventory     = errors.New("saved inventory is empty")
	ErrInvalidItemRecord       = errors.New("invalid item record")
	ErrSlotOutOfRange          = errors.New("slot out of range")
	ErrClaimPointNotConfigured = errors.New("claim point not configured")
	ErrSavedInventoryFull      = errors.New("saved inventory is full")
	ErrSessionActive           = errors.New("claim session already active")
	ErrCorruptSavedInventory   = errors.New("corrupt saved inventory")
)
