package repositories

import (
	"context"

	"github.com/ghuser/menuboard/services/menu/domain/models"
)

// MenuRepository is the persistence interface for the menu.
// The domain layer owns this interface; infrastructure implements it
// (JSON file, in-memory, Redis, PostgreSQL).
//
// Errors: ErrStorageIO and ErrMenuCorrupt from the domain package wrap
// backend failures; Update returns ErrMenuItemNotFound for unknown ids.
type MenuRepository interface {
	// List returns every item in insertion order.
	List(ctx context.Context) ([]models.MenuItem, error)

	// Create assigns a fresh id, applies creation defaults and appends the item.
	Create(ctx context.Context, draft models.Draft) (models.MenuItem, error)

	// Update overwrites the fields present in patch on the item with id.
	Update(ctx context.Context, id int64, patch models.Patch) (models.MenuItem, error)

	// Delete removes the item with id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id int64) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// IDGenerator hands out item ids that never collide with the ids in use.
type IDGenerator interface {
	// Next returns an id strictly greater than highestInUse.
	Next(highestInUse int64) int64
}
