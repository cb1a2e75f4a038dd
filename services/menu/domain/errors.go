package domain

import "errors"

// Sentinel errors for the menu domain. Use errors.Is() to check these.
var (
	// ErrMenuItemNotFound indicates no item carries the requested id.
	ErrMenuItemNotFound = errors.New("item not found")

	// ErrStorageIO indicates the menu document could not be read or written.
	ErrStorageIO = errors.New("menu storage i/o failed")

	// ErrMenuCorrupt indicates the stored menu document is not a valid JSON array of items.
	ErrMenuCorrupt = errors.New("menu data is not valid JSON")
)
