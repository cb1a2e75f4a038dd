package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/menuboard/services/menu/domain/models"
)

// Watermill topics published after a successful menu mutation.
const (
	TopicMenuItemCreated = "menu.item.created"
	TopicMenuItemUpdated = "menu.item.updated"
	TopicMenuItemDeleted = "menu.item.deleted"
)

// Topics lists every menu topic, for subscribers that want all of them.
var Topics = []string{TopicMenuItemCreated, TopicMenuItemUpdated, TopicMenuItemDeleted}

// eventVersion is the schema version; increment on breaking changes.
const eventVersion = 1

// MenuItemChangedEvent is the payload of every menu topic. Item is nil for deletions.
type MenuItemChangedEvent struct {
	EventID    uuid.UUID        `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int              `json:"version"`
	ItemID     int64            `json:"item_id"`
	Item       *models.MenuItem `json:"item,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewMenuItemChanged builds an event for itemID. Pass item=nil for deletions.
func NewMenuItemChanged(itemID int64, item *models.MenuItem, at time.Time) MenuItemChangedEvent {
	return MenuItemChangedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     itemID,
		Item:       item,
		OccurredAt: at.UTC(),
	}
}
