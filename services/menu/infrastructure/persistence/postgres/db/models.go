package db

import (
	"database/sql"
)

// MenuItem is one row of menu_items. Position preserves insertion order.
// JSONB columns are scanned as raw bytes; nil means SQL NULL.
type MenuItem struct {
	Position  int64
	ID        int64
	Name      []byte
	Price     []byte
	Category  []byte
	Available []byte
	CreatedAt sql.NullTime
	UpdatedAt sql.NullTime
	Extra     []byte
}
